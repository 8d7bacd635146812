// Copyright (c) 2025 Basedir
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package present formats library errors for user display.
package present

import (
	"errors"
	"fmt"

	"github.com/lengau/basedir"
)

// Error renders err as a single user-facing line, adding a hint for the
// well-known error kinds.
func Error(err error) string {
	if err == nil {
		return ""
	}
	var e *basedir.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	switch e.Kind {
	case basedir.MissingConfiguration:
		return fmt.Sprintf("%s (set the variable or supply a fallback)", e.Message)
	case basedir.PathEscape:
		return fmt.Sprintf("%s (sub-paths must stay inside the base directory)", e.Message)
	case basedir.Filesystem:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return err.Error()
}
