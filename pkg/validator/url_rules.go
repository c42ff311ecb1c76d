package validator

import (
	"net/url"
	"slices"
	"strings"
)

// URLWithScheme validates an absolute URL whose scheme is one of schemes.
// Empty values pass; combine with Required when the value is mandatory.
func URLWithScheme(field, value string, schemes ...string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			u, err := url.Parse(value)
			if err != nil || u.Host == "" {
				return false
			}
			return slices.Contains(schemes, strings.ToLower(u.Scheme))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field":   field,
				"schemes": schemes,
			},
		},
	}
}

// When returns rule when cond is true and an always-passing rule otherwise.
func When(cond bool, rule Rule) Rule {
	if cond {
		return rule
	}
	return Rule{Check: func() bool { return true }, Error: rule.Error}
}
