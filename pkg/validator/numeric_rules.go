package validator

import "fmt"

// Between validates that value lies in the closed range [min, max].
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
