package settings

import (
	"errors"
	"net/http"

	"github.com/freassets/curator/internal/taxonomy"
)

var (
	// ErrInvalidThreshold indicates a threshold outside [0, 100].
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 100")
	// ErrEmptyPatch indicates an update request carrying no fields.
	ErrEmptyPatch = errors.New("settings update must carry at least one field")
)

// MapHTTPStatus maps settings errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidThreshold) ||
		errors.Is(err, ErrEmptyPatch) ||
		errors.Is(err, taxonomy.ErrInvalidOperatingMode) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
