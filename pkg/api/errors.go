package api

import (
	"errors"
	"net/http"

	"github.com/maestro-ai/maestro/pkg/services"
)

// mapServiceError translates service-layer errors into HTTP status codes.
func mapServiceError(err error) int {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrAlreadyResolved):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
