package bland

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAuth is returned when the client has no API token configured.
var ErrMissingAuth = errors.New("missing authorization token")

// MissingFieldError reports a required parameter that was empty or absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Field)
}

// MissingOneOfError reports a group of parameters where at least one must be set.
type MissingOneOfError struct {
	Fields []string
}

func (e *MissingOneOfError) Error() string {
	return fmt.Sprintf("at least one of %s must be provided", strings.Join(e.Fields, ", "))
}

// InvalidEnumError reports a value outside a field's allowed set.
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q, must be one of: %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// RangeError reports a numeric value outside its permitted range.
type RangeError struct {
	Field    string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	if e.Max <= e.Min {
		return fmt.Sprintf("%s must be at least %v, got %v", e.Field, e.Min, e.Value)
	}
	return fmt.Sprintf("%s must be between %v and %v, got %v", e.Field, e.Min, e.Max, e.Value)
}

// InvalidPhoneError reports a phone number that is not in E.164 form
// after cleaning.
type InvalidPhoneError struct {
	Number string
}

func (e *InvalidPhoneError) Error() string {
	return fmt.Sprintf("invalid phone number format: %s", e.Number)
}
