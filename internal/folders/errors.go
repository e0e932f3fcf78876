package folders

import (
	"errors"
	"net/http"
)

// Domain errors for folder operations.
var (
	ErrNotFound    = errors.New("folder not found")
	ErrDuplicate   = errors.New("folder already registered")
	ErrInvalidPath = errors.New("folder path must not be empty")
)

// MapHTTPStatus maps folder domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidPath) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
