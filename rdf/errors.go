package rdf

import (
	"errors"
	"fmt"
	"io"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeInvalidStatement indicates a statement that cannot be serialized.
	ErrCodeInvalidStatement ErrorCode = "INVALID_STATEMENT"
	// ErrCodeInvalidIRI indicates an invalid IRI was encountered.
	ErrCodeInvalidIRI ErrorCode = "INVALID_IRI"
	// ErrCodeWriterFinished indicates use of a writer after Finish.
	ErrCodeWriterFinished ErrorCode = "WRITER_FINISHED"
	// ErrCodeFormatError indicates an encoder failed to start or finish a document.
	ErrCodeFormatError ErrorCode = "FORMAT_ERROR"
	// ErrCodeIOError indicates an I/O error.
	ErrCodeIOError ErrorCode = "IO_ERROR"
)

var (
	// ErrUnsupportedFormat indicates an unsupported format.
	ErrUnsupportedFormat = errors.New("unsupported RDF format")
	// ErrInvalidStatement indicates a triple or quad that cannot be serialized.
	ErrInvalidStatement = errors.New("rdf: invalid statement")
	// ErrInvalidIRI indicates malformed IRI text.
	ErrInvalidIRI = errors.New("rdf: invalid IRI")
	// ErrWriterFinished indicates a writer was used after Finish.
	ErrWriterFinished = errors.New("rdf: writer already finished")
)

// FormatError reports a failure of a specific encoder while opening, writing
// or finishing a document. Err keeps the underlying cause.
type FormatError struct {
	Format Format // Format name (e.g., "rdfxml", "turtle")
	Op     string // "open", "write", "flush" or "finish"
	Err    error  // Underlying error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Format, e.Op, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatError(format Format, op string, err error) error {
	if err == nil {
		return nil
	}
	return &FormatError{Format: format, Op: op, Err: err}
}

// Code returns the error code for an error.
// Returns empty string for nil errors or io.EOF.
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrInvalidIRI):
		return ErrCodeInvalidIRI
	case errors.Is(err, ErrInvalidStatement):
		return ErrCodeInvalidStatement
	case errors.Is(err, ErrWriterFinished):
		return ErrCodeWriterFinished
	}
	var formatErr *FormatError
	if errors.As(err, &formatErr) && formatErr.Op != "write" && formatErr.Op != "flush" {
		return ErrCodeFormatError
	}
	return ErrCodeIOError
}
