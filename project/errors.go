package project

import (
	"errors"
	"fmt"
)

// ErrMissingField is wrapped by a ParseError when a required key is absent.
var ErrMissingField = errors.New("missing field")

// ErrInvalidUTF8 is wrapped by an IOError when the file is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// IOError means the configuration file could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read project config %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError means the content is not TOML or does not fit the schema.
// Line and Column are 1-based and zero when the decoder gave no position.
type ParseError struct {
	Line   int
	Column int
	// Detail is the decoder's multi-line rendering of the offending input,
	// empty when unavailable.
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse project config: line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse project config: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError means the document decoded but breaks a semantic rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid project config: " + e.Reason
}

// ErrorKind classifies an error returned by LoadConfig for logs and metrics:
// "io", "parse", "validation", or "unknown". A nil error is "ok".
func ErrorKind(err error) string {
	var (
		ioErr    *IOError
		parseErr *ParseError
		valErr   *ValidationError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ioErr):
		return "io"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &valErr):
		return "validation"
	default:
		return "unknown"
	}
}
