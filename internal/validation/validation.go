package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Input is a decoded request payload keyed by field name.
type Input map[string]interface{}

// Rule describes the constraints of a single field.
type Rule struct {
	Field     string
	Required  bool
	MaxLength int
}

// Schema is an ordered list of rules. Every rule is checked, so one call
// reports all invalid fields.
type Schema []Rule

// Values holds the validated fields that were present in the input. A nil
// value means the field was sent as null or as a blank string.
type Values map[string]*string

// Lookup returns the value of field and whether it was present.
func (v Values) Lookup(field string) (*string, bool) {
	value, ok := v[field]
	return value, ok
}

// String returns the value of a required field, or "" when absent.
func (v Values) String(field string) string {
	if value := v[field]; value != nil {
		return *value
	}
	return ""
}

// Validate checks input against the schema and returns the accepted values
// or an *Error naming every invalid field.
func (s Schema) Validate(input Input) (Values, error) {
	errs := &Error{}
	values := s.Collect(input, errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// Collect checks input against the schema and appends violations to errs.
func (s Schema) Collect(input Input, errs *Error) Values {
	values := Values{}
	for _, rule := range s {
		raw, present := input[rule.Field]
		value, isString := raw.(string)
		if isString {
			value = strings.TrimSpace(value)
		}
		if raw == nil || (isString && value == "") {
			if rule.Required {
				errs.Add(rule.Field, fmt.Sprintf("The %s field is required.", label(rule.Field)))
			} else if present {
				values[rule.Field] = nil
			}
			continue
		}
		if !isString {
			errs.Add(rule.Field, fmt.Sprintf("The %s field must be a string.", label(rule.Field)))
			continue
		}
		if rule.MaxLength > 0 && utf8.RuneCountInString(value) > rule.MaxLength {
			errs.Add(rule.Field, fmt.Sprintf("The %s field must not be greater than %d characters.", label(rule.Field), rule.MaxLength))
			continue
		}
		values[rule.Field] = &value
	}
	return values
}

func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
