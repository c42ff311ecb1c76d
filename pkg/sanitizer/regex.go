package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// RE2 \D matches everything except ASCII 0-9, so non-Latin digits are dropped too.
	nonDigitRegex = regexp.MustCompile(`\D`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)
