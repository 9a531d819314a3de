package booking

import (
	"fmt"
	"strings"
)

// ValidationError reports required groups with no selection. It blocks
// payload building; it is never raised for stale selection ids, which are
// dropped silently.
type ValidationError struct {
	MissingGroups []string // titles of unmet required groups
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required selections missing: %s", strings.Join(e.MissingGroups, ", "))
}

// NewValidationError builds a ValidationError from unmet group titles.
func NewValidationError(titles []string) error {
	return &ValidationError{MissingGroups: titles}
}
