package validation

import (
	"fmt"
	"strings"
)

// Error maps field names to the messages of the rules they violated.
type Error struct {
	Fields map[string][]string
	order  []string
}

// Required builds an error for a single missing field.
func Required(field string) *Error {
	errs := &Error{}
	errs.Add(field, fmt.Sprintf("The %s field is required.", label(field)))
	return errs
}

func (e *Error) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	if _, seen := e.Fields[field]; !seen {
		e.order = append(e.order, field)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Err returns e when it holds at least one violation and nil otherwise.
func (e *Error) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Has reports whether field has a violation.
func (e *Error) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// Message is the first violation followed by a count of the others.
func (e *Error) Message() string {
	if len(e.order) == 0 {
		return ""
	}
	message := e.Fields[e.order[0]][0]
	total := 0
	for _, messages := range e.Fields {
		total += len(messages)
	}
	switch remaining := total - 1; remaining {
	case 0:
		return message
	case 1:
		return message + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", message, remaining)
	}
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.order, ", ")
}
