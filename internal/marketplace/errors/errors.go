// Package errors defines the sentinel error kinds the platform returns to
// callers. The HTTP layer maps them to status codes; everything else wraps
// them with %w and checks with errors.Is.
package errors

import (
	"fmt"
)

var (
	ErrNotFound     = fmt.Errorf("not found")
	ErrForbidden    = fmt.Errorf("forbidden")
	ErrConflict     = fmt.Errorf("conflict")
	ErrInvalidState = fmt.Errorf("invalid state")
	ErrInvalidInput = fmt.Errorf("invalid input")
)
