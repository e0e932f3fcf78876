package metrics

import (
	"log/slog"
	"net/http"

	"github.com/freassets/curator/pkg/handlers"
	"github.com/freassets/curator/pkg/routes"
)

// Handler provides the HTTP endpoint for the metrics summary.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "metrics"),
	}
}

// Routes returns the route group definition for metrics endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/metrics",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Summary},
		},
	}
}

// Summary returns live status counts, accuracy rate, and readiness signals.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sys.Summary(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}
