package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		reqErr       *ErrValidation
		fieldErr     *types.ValidationError
		schemaErr    *schemas.ValidationError
		precondition *extraction.PreconditionError
		decodeErr    *ingestion.DecodeError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &reqErr), errors.As(err, &fieldErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &precondition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ingestion.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ingestion.ErrEmptyDocument):
		return http.StatusUnprocessableEntity
	case errors.As(err, &decodeErr):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
