// Package normalize turns free-form form fields into typed values. All
// checks over one submission are collected and reported together; nothing
// here fails fast on the first bad field.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidationError lists every offending field of a submission in input
// order. It is always recovered at the controller: the submission is
// blocked, prior state stays untouched.
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return "invalid input: " + strings.Join(names, ", ")
}

// MissingFields returns the subset of field names whose reason is "required",
// preserving order.
func (e *ValidationError) MissingFields() []string {
	var out []string
	for _, f := range e.Fields {
		if f.Reason == "required" {
			out = append(out, f.Field)
		}
	}
	return out
}

// Field pairs a display name with its raw form value.
type Field struct {
	Name  string
	Value string
}

// Required reports every field whose trimmed value is empty, all at once and
// in the given order. Whitespace-only values count as missing.
func Required(fields ...Field) error {
	var verr ValidationError
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			verr.Fields = append(verr.Fields, FieldError{Field: f.Name, Reason: "required"})
		}
	}
	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}

// currencyReplacer strips the rupee sign and grouping separators. Both
// Indian (15,00,000) and western (1,500,000) grouping reduce to plain digits.
var currencyReplacer = strings.NewReplacer("₹", "", ",", "", " ", "")

// Currency parses an amount like "15,00,000" or "₹25,000" into a float.
func Currency(field, text string) (float64, error) {
	cleaned := currencyReplacer.Replace(strings.TrimSpace(text))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &ValidationError{Fields: []FieldError{{Field: field, Reason: "not numeric"}}}
	}
	return v, nil
}

// OptionalCurrency treats a blank field as zero.
func OptionalCurrency(field, text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	return Currency(field, text)
}

// Enum checks membership in the allowed value set.
func Enum(field, value string, allowed []string) (string, error) {
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	return "", &ValidationError{Fields: []FieldError{{
		Field:  field,
		Reason: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}}}
}

// PositiveInt parses an integer that must be > 0 (loan terms, horizons).
func PositiveInt(field, text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &ValidationError{Fields: []FieldError{{Field: field, Reason: "not numeric"}}}
	}
	if v <= 0 {
		return 0, &ValidationError{Fields: []FieldError{{Field: field, Reason: "must be positive"}}}
	}
	return v, nil
}

// Rate parses a non-negative percentage.
func Rate(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &ValidationError{Fields: []FieldError{{Field: field, Reason: "not numeric"}}}
	}
	if v < 0 {
		return 0, &ValidationError{Fields: []FieldError{{Field: field, Reason: "must not be negative"}}}
	}
	return v, nil
}

// Year parses a manufacturing year and bounds it to a plausible range.
// The upper bound allows next-year model years.
func Year(field, text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &ValidationError{Fields: []FieldError{{Field: field, Reason: "not numeric"}}}
	}
	maxYear := time.Now().Year() + 1
	if v < 1980 || v > maxYear {
		return 0, &ValidationError{Fields: []FieldError{{
			Field:  field,
			Reason: fmt.Sprintf("must be between 1980 and %d", maxYear),
		}}}
	}
	return v, nil
}

// Merge combines validation errors from several parses into one report,
// preserving field order. Non-validation errors pass through unchanged.
func Merge(errs ...error) error {
	var verr ValidationError
	for _, err := range errs {
		if err == nil {
			continue
		}
		ve, ok := err.(*ValidationError)
		if !ok {
			return err
		}
		verr.Fields = append(verr.Fields, ve.Fields...)
	}
	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}
