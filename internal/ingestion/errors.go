package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for documents that are not PDF, DOCX, HTML or plain text.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrEmptyDocument is returned when a document is empty or yields no text.
	ErrEmptyDocument = errors.New("document contains no text")
	// ErrTooLarge is returned when a document exceeds the size limit.
	ErrTooLarge = errors.New("document exceeds size limit")
)

// DecodeError reports a document that could not be turned into text.
type DecodeError struct {
	FileName string
	Format   Format
	Cause    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("failed to decode %s: %v", e.FileName, e.Cause)
	}
	return fmt.Sprintf("failed to decode %s as %s: %v", e.FileName, e.Format, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
