// Package sheeterrors provides the structured error types shared by the
// specsheet core.
//
// Callers can distinguish failure categories with errors.Is() against the
// sentinels, or inspect details with errors.As() against the typed errors:
//
//   - ParseError: the input bytes do not conform to the declared format
//   - UnsupportedFormatError: unknown format tag, or a document node with a
//     structurally wrong shape
//   - IOError: the destination artifact cannot be created or written
package sheeterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates the input could not be parsed as its declared format.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedFormat indicates an unknown format tag or a malformed
	// document shape that has no defensive default.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrIO indicates the output artifact could not be produced.
	ErrIO = errors.New("io failure")
)

// ParseError represents a failure to parse input bytes as the declared format.
type ParseError struct {
	// Format is the declared format tag ("json", "yaml", "yml")
	Format string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying parser error, if any
	Cause error
}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error category.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// UnsupportedFormatError represents either a format tag outside the supported
// set or a document node whose shape cannot be extracted from.
type UnsupportedFormatError struct {
	// Tag is the rejected format tag, empty for document-shape failures
	Tag string
	// Message provides context for document-shape failures
	Message string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("unsupported format %q: only json, yaml and yml are supported", e.Tag)
	}
	if e.Message != "" {
		return "unsupported document shape: " + e.Message
	}
	return "unsupported format"
}

// Is reports whether target matches this error category.
func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }

// IOError represents a failure to create or write the output artifact.
type IOError struct {
	// Path is the destination the writer was asked to produce
	Path string
	// Op names the failing operation ("create", "write", "rename")
	Op string
	// Cause is the underlying error
	Cause error
}

func (e *IOError) Error() string {
	msg := "io failure"
	if e.Op != "" {
		msg += " (" + e.Op + ")"
	}
	if e.Path != "" {
		msg += " on " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *IOError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error category.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// NewShapeError builds an UnsupportedFormatError for a document node that is
// present but structurally wrong, e.g. a sequence where a mapping is required.
func NewShapeError(format string, args ...any) *UnsupportedFormatError {
	return &UnsupportedFormatError{Message: fmt.Sprintf(format, args...)}
}
