package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/freassets/curator/internal/assets"
	"github.com/freassets/curator/internal/corrections"
	"github.com/freassets/curator/internal/review"
	"github.com/freassets/curator/internal/settings"
	"github.com/freassets/curator/internal/taxonomy"
)

const recentActivityLimit = 10

// Summary is the full metrics payload served to dashboards.
type Summary struct {
	Counts         assets.StatusCounts    `json:"counts"`
	AccuracyRate   float64                `json:"accuracy_rate"`
	OperatingMode  taxonomy.OperatingMode `json:"operating_mode"`
	Readiness      Readiness              `json:"readiness"`
	RecentActivity []Activity             `json:"recent_activity"`
}

// Activity is a trimmed correction entry for the recent-activity feed.
type Activity struct {
	ID        uuid.UUID     `json:"id"`
	FileName  string        `json:"file_name"`
	Action    review.Action `json:"action"`
	CreatedAt time.Time     `json:"created_at"`
}

// System defines the public contract for the metrics summary.
type System interface {
	Handler() *Handler
	Summary(ctx context.Context) (*Summary, error)
}

type aggregator struct {
	assets      assets.System
	corrections corrections.System
	settings    settings.System
	logger      *slog.Logger
}

// New creates a metrics aggregator over the asset, correction, and
// settings systems.
func New(
	assetSys assets.System,
	correctionSys corrections.System,
	settingSys settings.System,
	logger *slog.Logger,
) System {
	return &aggregator{
		assets:      assetSys,
		corrections: correctionSys,
		settings:    settingSys,
		logger:      logger.With("system", "metrics"),
	}
}

func (a *aggregator) Handler() *Handler {
	return NewHandler(a, a.logger)
}

func (a *aggregator) Summary(ctx context.Context) (*Summary, error) {
	counts, err := a.assets.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}

	current, err := a.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	recent, err := a.corrections.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("recent corrections: %w", err)
	}

	activity := make([]Activity, 0, len(recent))
	for _, c := range recent {
		activity = append(activity, Activity{
			ID:        c.ID,
			FileName:  c.FileName,
			Action:    c.ReviewAction,
			CreatedAt: c.CreatedAt,
		})
	}

	return &Summary{
		Counts:         counts,
		AccuracyRate:   AccuracyRate(counts.Approved, counts.Corrected),
		OperatingMode:  current.OperatingMode,
		Readiness:      Evaluate(counts.Approved, counts.Corrected),
		RecentActivity: activity,
	}, nil
}
