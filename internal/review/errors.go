package review

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidAction indicates an unrecognized review action.
	ErrInvalidAction = errors.New("invalid review action")
	// ErrInvalidMode indicates an unrecognized operating mode.
	ErrInvalidMode = errors.New("invalid operating mode")
)

// MapHTTPStatus maps review errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidAction) || errors.Is(err, ErrInvalidMode) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
