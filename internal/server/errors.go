package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedType indicates an upload that is not plain text
type ErrUnsupportedType struct {
	ContentType string
}

func (e *ErrUnsupportedType) Error() string {
	if e.ContentType == "" {
		return "Unsupported file type. Please upload a plain text resume."
	}
	return fmt.Sprintf("Unsupported file type %q. Please upload a plain text resume.", e.ContentType)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Analysis failures and anything unrecognized map to 500.
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		unsupportedErr *ErrUnsupportedType
		ingestErr      *ingestion.IngestError
		maxBytesErr    *http.MaxBytesError
	)

	switch {
	case errors.As(err, &maxBytesErr), errors.Is(err, extraction.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validationErr), errors.As(err, &unsupportedErr), errors.As(err, &ingestErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
