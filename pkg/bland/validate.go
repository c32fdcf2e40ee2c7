package bland

import (
	"regexp"
	"strings"
)

// Allowed values for enumerated fields.
var (
	ToolMethods      = []string{"GET", "POST", "PUT", "DELETE"}
	Models           = []string{"base", "turbo", "enhanced"}
	CallStatuses     = []string{"queued", "in_progress", "completed", "failed", "cancelled"}
	KeyTypes         = []string{"api_key", "password", "token", "secret"}
	BackgroundTracks = []string{"none", "office", "cafe", "restaurant"}
	SortOrders       = []string{"asc", "desc"}
)

var phonePattern = regexp.MustCompile(`^\+\d{10,15}$`)

// normalizePhone strips formatting characters (spaces, dashes, parentheses)
// from a phone number, keeping digits and a single leading plus, and
// validates the result against E.164 bounds (+ followed by 10-15 digits).
func normalizePhone(number string) (string, error) {
	var b strings.Builder
	for i, r := range number {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if !phonePattern.MatchString(cleaned) {
		return "", &InvalidPhoneError{Number: number}
	}
	return cleaned, nil
}

// checkEnum verifies value is one of allowed. Empty values pass; callers
// enforce presence separately.
func checkEnum(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &InvalidEnumError{Field: field, Value: value, Allowed: allowed}
}

// checkRange verifies value falls within [min, max]. Zero values pass;
// callers apply defaults before validating.
func checkRange(field string, value, min, max float64) error {
	if value == 0 {
		return nil
	}
	if value < min || value > max {
		return &RangeError{Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}

// normalizeToolMethod upper-cases an HTTP method and validates it against
// the set the provider accepts for custom tools. PATCH is deliberately
// not in that set.
func normalizeToolMethod(method string) (string, error) {
	m := strings.ToUpper(strings.TrimSpace(method))
	if err := checkEnum("method", m, ToolMethods); err != nil {
		return "", err
	}
	return m, nil
}
