package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// MatchesRegex validates value against a pre-compiled pattern.
// The value is matched as given; blank values fail.
func MatchesRegex(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid %s", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// HexColor validates a "#RRGGBB" color.
func HexColor(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return hexColorRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a hex color like #1A2B3C",
			TranslationKey: "validation.hex_color",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
