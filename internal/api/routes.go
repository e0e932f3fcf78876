package api

import (
	"net/http"

	"github.com/freassets/curator/internal/config"
	"github.com/freassets/curator/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Assets.Handler(cfg.API.MaxUploadSizeBytes(), domain.Ingestor).Routes(),
		domain.Corrections.Handler().Routes(),
		domain.Folders.Handler().Routes(),
		domain.Settings.Handler().Routes(),
		domain.Metrics.Handler().Routes(),
	)
}
