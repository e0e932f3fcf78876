package classify

import (
	"errors"
	"net/http"
)

var (
	// ErrParse indicates the model produced output that could not be parsed
	// into a tag proposal.
	ErrParse = errors.New("classification response unparseable")
	// ErrService indicates the classification service call itself failed.
	ErrService = errors.New("classification service failure")
)

// MapHTTPStatus maps classification errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrParse) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrService) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
