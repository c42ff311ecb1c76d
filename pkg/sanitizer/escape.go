package sanitizer

import "strings"

// EscapeReserved prefixes a backslash to every backslash and to every rune of reserved found in s.
// Used by the MECARD format where `\ ; : ,` carry structural meaning.
func EscapeReserved(s, reserved string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\\' || strings.ContainsRune(reserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EscapeVCardText escapes a vCard 3.0 text value (RFC 2426 section 4):
// backslash, semicolon and comma are backslash-escaped and line breaks become the two characters `\n`.
func EscapeVCardText(s string) string {
	if s == "" {
		return s
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', ';', ',':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n', '\r':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
