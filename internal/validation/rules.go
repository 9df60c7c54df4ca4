// Package validation decides whether a request is acceptable before it
// touches persisted state. Each request type has an explicit ordered rule
// list; evaluation runs every rule and aggregates all violations so a caller
// receives every actionable message at once.
package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"globoticket/internal/clock"
	"globoticket/internal/domain"
)

// MaxNameLength bounds event and category names.
const MaxNameLength = 50

// Violation messages are template-driven: the field name (and any configured
// bound) is substituted, never hardcoded per field.
const (
	requiredTemplate  = "%s is required."
	maxLengthTemplate = "%s must not exceed %d characters."
	futureTemplate    = "%s must be in the future."
	positiveTemplate  = "%s must be greater than zero."

	duplicateEventMessage = "An event with the same name and date already exists."
)

// Rule checks one aspect of a request. Rules that need persisted state use
// the caller's context; a non-nil error means the check itself failed and
// must propagate, not that the request is invalid.
type Rule func(ctx context.Context) ([]domain.Violation, error)

// Evaluate runs every rule in order and aggregates all violations. It never
// short-circuits on a failed rule; only a rule error aborts evaluation.
func Evaluate(ctx context.Context, rules []Rule) ([]domain.Violation, error) {
	var out []domain.Violation
	for _, rule := range rules {
		vs, err := rule(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return out, nil
}

// Required fails when the trimmed value is empty.
func Required(field, value string) Rule {
	return func(context.Context) ([]domain.Violation, error) {
		if strings.TrimSpace(value) == "" {
			return []domain.Violation{{Field: field, Message: fmt.Sprintf(requiredTemplate, field)}}, nil
		}
		return nil, nil
	}
}

// MaxLength fails when the value exceeds max characters.
func MaxLength(field, value string, max int) Rule {
	return func(context.Context) ([]domain.Violation, error) {
		if len(value) > max {
			return []domain.Violation{{Field: field, Message: fmt.Sprintf(maxLengthTemplate, field, max)}}, nil
		}
		return nil, nil
	}
}

// FutureDate fails when the value is unset or not strictly after the clock's
// current instant.
func FutureDate(field string, value time.Time, clk clock.Clock) Rule {
	return func(context.Context) ([]domain.Violation, error) {
		if value.IsZero() {
			return []domain.Violation{{Field: field, Message: fmt.Sprintf(requiredTemplate, field)}}, nil
		}
		if !value.After(clk.Now()) {
			return []domain.Violation{{Field: field, Message: fmt.Sprintf(futureTemplate, field)}}, nil
		}
		return nil, nil
	}
}

// PositiveAmount fails when the value is unset or not strictly positive. A
// zero amount yields both the required and the positive message, matching
// aggregate-everything evaluation.
func PositiveAmount(field string, value float64) Rule {
	return func(context.Context) ([]domain.Violation, error) {
		var out []domain.Violation
		if value == 0 {
			out = append(out, domain.Violation{Field: field, Message: fmt.Sprintf(requiredTemplate, field)})
		}
		if value <= 0 {
			out = append(out, domain.Violation{Field: field, Message: fmt.Sprintf(positiveTemplate, field)})
		}
		return out, nil
	}
}

// EventExistenceChecker is the slice of the event repository the uniqueness
// rule needs.
type EventExistenceChecker interface {
	ExistsWithNameAndDate(ctx context.Context, name string, date time.Time, excludeID string) (bool, error)
}

// UniqueEventNameAndDate fails when another persisted event already uses the
// same name and date. On update, excludeID must be the id of the event being
// updated so an unchanged name+date pair is not falsely rejected.
func UniqueEventNameAndDate(repo EventExistenceChecker, name string, date time.Time, excludeID string) Rule {
	return func(ctx context.Context) ([]domain.Violation, error) {
		exists, err := repo.ExistsWithNameAndDate(ctx, name, date, excludeID)
		if err != nil {
			return nil, fmt.Errorf("check event name and date: %w", err)
		}
		if exists {
			return []domain.Violation{{Field: "Name", Message: duplicateEventMessage}}, nil
		}
		return nil, nil
	}
}

// CreateEventRules is the ordered rule list for creating an event.
func CreateEventRules(repo EventExistenceChecker, req *domain.CreateEventRequest, clk clock.Clock) []Rule {
	return []Rule{
		Required("Name", req.Name),
		MaxLength("Name", req.Name, MaxNameLength),
		FutureDate("Date", req.Date, clk),
		PositiveAmount("Price", req.Price),
		UniqueEventNameAndDate(repo, req.Name, req.Date, ""),
	}
}

// UpdateEventRules is the ordered rule list for updating an event. The
// uniqueness check excludes the event's own id.
func UpdateEventRules(repo EventExistenceChecker, req *domain.UpdateEventRequest, clk clock.Clock) []Rule {
	return []Rule{
		Required("Name", req.Name),
		MaxLength("Name", req.Name, MaxNameLength),
		FutureDate("Date", req.Date, clk),
		PositiveAmount("Price", req.Price),
		UniqueEventNameAndDate(repo, req.Name, req.Date, req.ID),
	}
}

// CreateCategoryRules is the ordered rule list for creating a category.
func CreateCategoryRules(req *domain.CreateCategoryRequest) []Rule {
	return []Rule{
		Required("Name", req.Name),
		MaxLength("Name", req.Name, MaxNameLength),
	}
}
