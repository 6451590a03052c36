package card

import (
	"context"
	"errors"
	"net/http"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
)

// HTTPError is the JSON error body.
type HTTPError struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// mapError translates domain sentinel errors into HTTP status codes.
// Unknown errors become 500.
func mapError(err error) (int, HTTPError) {
	body := HTTPError{Error: err.Error()}

	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		body.Field = invalid.Field
	}

	switch {
	case errors.Is(err, context.Canceled):
		// nginx's "client closed request"
		return 499, body
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, body
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownVariant):
		return http.StatusBadRequest, body
	}

	return http.StatusInternalServerError, body
}
