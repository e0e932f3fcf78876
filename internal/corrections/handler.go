package corrections

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/freassets/curator/pkg/handlers"
	"github.com/freassets/curator/pkg/pagination"
	"github.com/freassets/curator/pkg/routes"
)

// Handler provides HTTP endpoints over the correction log.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "corrections"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for correction endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/corrections",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/asset/{assetId}", Handler: h.ListByAsset},
		},
	}
}

// List returns a paginated list of corrections with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single correction by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	correction, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, correction)
}

// ListByAsset returns the full review history for one asset, newest first.
func (h *Handler) ListByAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(r.PathValue("assetId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	history, err := h.sys.ListByAsset(r.Context(), assetID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, history)
}
