package results

import (
	"errors"
	"fmt"
)

// ErrMalformedResults matches every document-level parse failure.
var ErrMalformedResults = errors.New("malformed SPARQL results document")

// Kinds of malformed documents. A *SyntaxError matches its kind and
// ErrMalformedResults.
var (
	ErrUnexpectedTag         = errors.New("unexpected tag")
	ErrMustBeSelfClosing     = errors.New("element must be self-closing")
	ErrUnexpectedNamespace   = errors.New("unexpected namespace")
	ErrIncompleteDocument    = errors.New("incomplete document")
	ErrMissingAttribute      = errors.New("missing attribute")
	ErrDuplicateVariable     = errors.New("duplicate variable")
	ErrUnknownVariable       = errors.New("unknown variable")
	ErrDuplicateBindingValue = errors.New("duplicate binding value")
	ErrMissingBindingValue   = errors.New("missing binding value")
	ErrUnexpectedText        = errors.New("unexpected text")
	ErrInvalidTerm           = errors.New("invalid term")
	ErrInvalidXML            = errors.New("invalid XML")
)

// ErrRowLimitExceeded is returned when a document has more rows than allowed
// by WithMaxRows.
var ErrRowLimitExceeded = errors.New("row limit exceeded")

// SyntaxError describes a malformed results document.
type SyntaxError struct {
	Kind   error
	Msg    string
	Offset int64 // input offset of the offending token
	Err    error // underlying cause, if any
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("sparql results: %v: %s (offset %d)", e.Kind, e.Msg, e.Offset)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformedResults
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func syntaxErrorf(kind error, offset int64, format string, args ...any) *SyntaxError {
	return &SyntaxError{Kind: kind, Msg: fmt.Sprintf(format, args...), Offset: offset}
}
