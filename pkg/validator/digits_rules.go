package validator

import (
	"fmt"

	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
)

// DigitsLen checks that value holds exactly n ASCII digits once formatting is stripped.
func DigitsLen(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return len(sanitizer.NormalizePhone(value)) == n
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain exactly %d digits", n),
			TranslationKey: "validation.digits_len",
			TranslationValues: map[string]any{
				"field":  field,
				"length": n,
			},
		},
	}
}

// DigitsLenBetween checks that the digit count of value lies in [min, max].
func DigitsLenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			l := len(sanitizer.NormalizePhone(value))
			return l >= min && l <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain between %d and %d digits", min, max),
			TranslationKey: "validation.digits_between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
