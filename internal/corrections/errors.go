package corrections

import (
	"errors"
	"net/http"
)

// Domain errors for correction log operations.
var (
	ErrNotFound  = errors.New("correction not found")
	ErrDuplicate = errors.New("correction already exists")
)

// MapHTTPStatus maps correction domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
