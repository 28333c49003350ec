// Package ingestion turns résumé documents into cleaned plain text ready for extraction.
package ingestion

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/textnorm"
)

// Format is a supported document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// DefaultMaxSize is the default upload limit in bytes.
const DefaultMaxSize = 10 << 20

// Document is a decoded résumé.
type Document struct {
	FileName string    `json:"file_name"`
	Format   Format    `json:"format"`
	Text     string    `json:"text"`
	Metadata *Metadata `json:"metadata"`
}

// DetectFormat picks the format from the file extension, falling back to content sniffing.
func DetectFormat(fileName string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".txt", ".md", ".markdown", ".text":
		return FormatText, nil
	}

	contentType := http.DetectContentType(data)
	switch {
	case strings.HasPrefix(contentType, "application/pdf"):
		return FormatPDF, nil
	case strings.HasPrefix(contentType, "text/html"):
		return FormatHTML, nil
	case strings.HasPrefix(contentType, "text/plain"):
		return FormatText, nil
	case strings.HasPrefix(contentType, "application/zip") && bytes.Contains(data, []byte("word/")):
		return FormatDOCX, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, contentType)
}

// DecodeBytes extracts and cleans the text of an in-memory document.
func DecodeBytes(fileName string, data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, &DecodeError{FileName: fileName, Cause: ErrEmptyDocument}
	}

	format, err := DetectFormat(fileName, data)
	if err != nil {
		return nil, &DecodeError{FileName: fileName, Cause: err}
	}

	var raw string
	switch format {
	case FormatPDF:
		raw, err = extractPDF(data)
	case FormatDOCX:
		raw, err = extractDOCX(data)
	case FormatHTML:
		raw, err = extractHTML(data)
	default:
		raw, err = extractText(data)
	}
	if err != nil {
		return nil, &DecodeError{FileName: fileName, Format: format, Cause: err}
	}

	text := textnorm.Clean(raw)
	if text == "" {
		return nil, &DecodeError{FileName: fileName, Format: format, Cause: ErrEmptyDocument}
	}

	return &Document{
		FileName: filepath.Base(fileName),
		Format:   format,
		Text:     text,
		Metadata: NewMetadata(text, filepath.Base(fileName), format, len(data)),
	}, nil
}

// DecodeFile reads and decodes the document at path. maxSize <= 0 means DefaultMaxSize.
func DecodeFile(path string, maxSize int64) (*Document, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() > maxSize {
		return nil, &DecodeError{FileName: filepath.Base(path), Cause: fmt.Errorf("%w: %d bytes > %d", ErrTooLarge, info.Size(), maxSize)}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return DecodeBytes(path, content)
}

func extractText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return strings.ToValidUTF8(string(data), " "), nil
	}
	return string(data), nil
}
