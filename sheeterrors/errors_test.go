package sheeterrors

import (
	"errors"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Format:  "json",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error (json) at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ParseError{}
		if errors.Is(err, ErrUnsupportedFormat) {
			t.Error("ParseError should not match ErrUnsupportedFormat")
		}
		if errors.Is(err, ErrIO) {
			t.Error("ParseError should not match ErrIO")
		}
	})
}

func TestUnsupportedFormatError(t *testing.T) {
	t.Run("Error message with tag", func(t *testing.T) {
		err := &UnsupportedFormatError{Tag: "xml"}
		want := `unsupported format "xml": only json, yaml and yml are supported`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for document shape", func(t *testing.T) {
		err := NewShapeError("paths must be a mapping, got %T", []any{})
		want := "unsupported document shape: paths must be a mapping, got []interface {}"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnsupportedFormat", func(t *testing.T) {
		err := &UnsupportedFormatError{Tag: "xml"}
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Error("UnsupportedFormatError should match ErrUnsupportedFormat")
		}
	})
}

func TestIOError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := &IOError{Path: "/out/spec.csv", Op: "create", Cause: cause}
		want := "io failure (create) on /out/spec.csv: permission denied"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrIO", func(t *testing.T) {
		err := &IOError{}
		if !errors.Is(err, ErrIO) {
			t.Error("IOError should match ErrIO")
		}
	})

	t.Run("As extracts IOError", func(t *testing.T) {
		cause := errors.New("disk full")
		var err error = &IOError{Path: "out.csv", Op: "write", Cause: cause}

		var ioErr *IOError
		if !errors.As(err, &ioErr) {
			t.Fatal("As should extract IOError")
		}
		if ioErr.Op != "write" {
			t.Errorf("unexpected op: %s", ioErr.Op)
		}
	})
}
