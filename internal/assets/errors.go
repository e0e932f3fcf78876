package assets

import (
	"errors"
	"net/http"

	"github.com/freassets/curator/internal/classify"
	"github.com/freassets/curator/internal/review"
	"github.com/freassets/curator/internal/taxonomy"
)

// Domain errors for asset operations.
var (
	ErrNotFound     = errors.New("asset not found")
	ErrDuplicate    = errors.New("asset already indexed")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
	ErrInvalidFile  = errors.New("invalid file")
)

// MapHTTPStatus maps asset domain errors to appropriate HTTP status codes.
// Review and classification errors passing through asset operations map via
// their own packages.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidFile), errors.Is(err, taxonomy.ErrInvalidTagValue):
		return http.StatusBadRequest
	case errors.Is(err, review.ErrInvalidAction):
		return review.MapHTTPStatus(err)
	case errors.Is(err, classify.ErrParse), errors.Is(err, classify.ErrService):
		return classify.MapHTTPStatus(err)
	}
	return http.StatusInternalServerError
}
