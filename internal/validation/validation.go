// Package validation checks enumerated todo fields and canonicalizes dates.
package validation

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"todoapi/internal/models"
)

// DateLayout is the canonical due date representation.
const DateLayout = "2006-01-02"

// Error reports the field that failed validation. Its message is the text
// returned to API clients.
type Error struct {
	Field   string
	message string
}

func (e *Error) Error() string {
	return e.message
}

var (
	ErrInvalidStatus   = &Error{Field: "status", message: "Invalid Todo Status"}
	ErrInvalidPriority = &Error{Field: "priority", message: "Invalid Todo Priority"}
	ErrInvalidCategory = &Error{Field: "category", message: "Invalid Todo Category"}
	ErrInvalidDueDate  = &Error{Field: "dueDate", message: "Invalid Due Date"}
)

// Fields holds the candidate values taken from a query string or body.
type Fields struct {
	Status   string
	Priority string
	Category string
	DueDate  string
}

// Check validates f in the order status, priority, category, due date and
// returns the first failure. Empty values always pass. On success a
// non-empty DueDate is rewritten to DateLayout.
func Check(f *Fields) error {
	if !allowed(models.ValidStatuses, f.Status) {
		return ErrInvalidStatus
	}
	if !allowed(models.ValidPriorities, f.Priority) {
		return ErrInvalidPriority
	}
	if !allowed(models.ValidCategories, f.Category) {
		return ErrInvalidCategory
	}
	if f.DueDate != "" {
		date, err := CanonicalDate(f.DueDate)
		if err != nil {
			return err
		}
		f.DueDate = date
	}
	return nil
}

// strictLayouts are tried before falling back to dateparse so that unpadded
// ISO dates are never reinterpreted.
var strictLayouts = []string{
	DateLayout,
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
}

// CanonicalDate parses raw as a calendar date and formats it as DateLayout.
func CanonicalDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidDueDate
	}
	for _, layout := range strictLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return "", ErrInvalidDueDate
	}
	return t.Format(DateLayout), nil
}

func allowed(set map[string]struct{}, v string) bool {
	if v == "" {
		return true
	}
	_, ok := set[v]
	return ok
}
