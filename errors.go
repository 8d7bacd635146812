package basedir

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// MissingConfiguration indicates that neither an environment variable nor
	// a supplied fallback produced a usable path value.
	MissingConfiguration Kind = "missing_configuration"
	// PathEscape indicates a joined sub-path resolved outside its base
	// directory.
	PathEscape Kind = "path_escape"
	// Filesystem indicates a directory operation failed for a reason other
	// than the directory already existing.
	Filesystem Kind = "filesystem"
)

// Error wraps an error with kind and human-friendly message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err or any error it wraps is an *Error of the given
// kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func newError(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func wrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}
