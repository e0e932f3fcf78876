package api

import (
	"github.com/freassets/curator/internal/assets"
	"github.com/freassets/curator/internal/classify"
	"github.com/freassets/curator/internal/corrections"
	"github.com/freassets/curator/internal/folders"
	"github.com/freassets/curator/internal/ingest"
	"github.com/freassets/curator/internal/metrics"
	"github.com/freassets/curator/internal/settings"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Settings    settings.System
	Corrections corrections.System
	Assets      assets.System
	Ingestor    assets.Ingestor
	Folders     folders.System
	Metrics     metrics.System
}

// NewDomain creates all domain systems from the API runtime. The ingestion
// pipeline binds the classification agent to the asset and settings systems,
// and folder sync feeds the same pipeline.
func NewDomain(runtime *Runtime) *Domain {
	settingsSystem := settings.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	correctionsSystem := corrections.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	assetsSystem := assets.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	classifier := classify.NewAgent(runtime.Agent, runtime.Logger)

	pipeline := ingest.New(
		assetsSystem,
		classifier,
		settingsSystem,
		runtime.Storage,
		runtime.Logger,
		runtime.IngestConcurrency,
	)

	foldersSystem := folders.New(
		runtime.Database.Connection(),
		runtime.Storage,
		pipeline,
		runtime.Logger,
		runtime.Pagination,
	)

	metricsSystem := metrics.New(
		assetsSystem,
		correctionsSystem,
		settingsSystem,
		runtime.Logger,
	)

	return &Domain{
		Settings:    settingsSystem,
		Corrections: correctionsSystem,
		Assets:      assetsSystem,
		Ingestor:    pipeline,
		Folders:     foldersSystem,
		Metrics:     metricsSystem,
	}
}
