package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace, including Unicode spaces and the byte order mark.
func Trim(s string) string {
	return strings.TrimFunc(s, isTrimmable)
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return Trim(s) == ""
}

func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// ToUpper converts s to upper case.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToLower converts s to lower case.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// SingleLine replaces line breaks and whitespace runs with a single space and trims the result.
func SingleLine(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
