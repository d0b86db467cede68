package domain

import "errors"

// Sentinel errors for use with errors.Is().
var (
	// ErrParse matches every ParseError.
	ErrParse = errors.New("parse error")

	// ErrMalformedInput indicates the raw bytes are not valid JSON or YAML.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidShape indicates well-formed input that does not describe a document.
	ErrInvalidShape = errors.New("invalid document shape")
)

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	// MalformedInput means the input could not be parsed at all.
	MalformedInput ParseErrorKind = iota
	// InvalidDocumentShape means the input parsed but is not document shaped.
	InvalidDocumentShape
)

// String returns the kind name.
func (k ParseErrorKind) String() string {
	switch k {
	case MalformedInput:
		return "malformed input"
	case InvalidDocumentShape:
		return "invalid document shape"
	default:
		return "unknown"
	}
}

// ParseError represents a failure to load a document.
type ParseError struct {
	// Kind tells syntax failures apart from shape failures
	Kind ParseErrorKind
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error: " + e.Kind.String()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Every ParseError matches
// ErrParse; the kind decides between ErrMalformedInput and ErrInvalidShape.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrParse:
		return true
	case ErrMalformedInput:
		return e.Kind == MalformedInput
	case ErrInvalidShape:
		return e.Kind == InvalidDocumentShape
	}
	return false
}
