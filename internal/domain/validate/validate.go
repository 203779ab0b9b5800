// Package validate carries multi-violation validation errors from the
// services to the HTTP layer. A request is rejected as a whole: every
// violated constraint is collected and reported, and no part of the
// requested mutation is applied.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a validation failure naming every violated constraint.
type Error struct {
	Violations []string
}

// Add records one violation.
func (e *Error) Add(format string, args ...any) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}

// Err returns the error itself when violations were recorded, nil otherwise.
func (e *Error) Err() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

func (e *Error) Error() string {
	return strings.Join(e.Violations, "; ")
}

// AsError extracts a validation error from an error chain.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
