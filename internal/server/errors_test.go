package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "job", Message: "is required"}
	assert.Equal(t, "validation error: job - is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"field validation", &types.ValidationError{Field: "ExperienceYears", Message: "gte"}, http.StatusBadRequest},
		{"schema validation", &schemas.ValidationError{Schema: "job", Errors: []schemas.FieldError{{Field: "title", Message: "required"}}}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("rank: %w", &types.ValidationError{Field: "Title"}), http.StatusBadRequest},
		{"precondition", &extraction.PreconditionError{CandidateID: 1, Cause: extraction.ErrNoRawText}, http.StatusUnprocessableEntity},
		{"unsupported", &ingestion.DecodeError{FileName: "a.png", Cause: ingestion.ErrUnsupportedFormat}, http.StatusUnsupportedMediaType},
		{"too large", &ingestion.DecodeError{FileName: "a.pdf", Cause: ingestion.ErrTooLarge}, http.StatusRequestEntityTooLarge},
		{"empty document", &ingestion.DecodeError{FileName: "a.txt", Cause: ingestion.ErrEmptyDocument}, http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
