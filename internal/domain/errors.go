package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that a referenced entity does not exist. It carries
// the entity type and the requested id so callers can render a 404-equivalent
// response. It unwraps to ErrNotFound.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found.", e.Entity)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Violation describes a single failed validation rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found for a request. It is an
// expected outcome, not a fault: services return it instead of writing
// anything, and callers inspect it with errors.As.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns the violation messages in rule order.
func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.Message
	}
	return out
}
