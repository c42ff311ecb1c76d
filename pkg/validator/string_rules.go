package validator

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
)

// Required fails for empty or whitespace-only values.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !sanitizer.IsBlank(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredAny fails unless at least one of values is non-blank.
// The error is reported against the fields joined with "|".
func RequiredAny(fields []string, values ...string) Rule {
	field := strings.Join(fields, "|")
	return Rule{
		Check: func() bool {
			for _, v := range values {
				if !sanitizer.IsBlank(v) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "at least one value is required",
			TranslationKey: "validation.required_any",
			TranslationValues: map[string]any{
				"fields": fields,
			},
		},
	}
}

// MaxLen fails when value is longer than max runes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len([]rune(value)) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        "is too long",
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
