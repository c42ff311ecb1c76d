package phone

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
)

const areaCodeLen = 2

// Digits strips every non-digit character from raw.
func Digits(raw string) string {
	return sanitizer.NormalizePhone(raw)
}

// Mask formats raw for display while the user types.
// Non-digits are dropped and the digits are truncated to s.MaxDigits().
// More than two digits open an area code "(DD) "; once the exchange is
// complete a hyphen separates it from the remaining digits.
func Mask(raw string, s Subtype) string {
	digits := sanitizer.TakeDigits(raw, s.MaxDigits())
	if len(digits) <= areaCodeLen {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + 5)
	b.WriteByte('(')
	b.WriteString(digits[:areaCodeLen])
	b.WriteString(") ")

	split := areaCodeLen + s.exchangeLen()
	if len(digits) <= split {
		b.WriteString(digits[areaCodeLen:])
		return b.String()
	}

	b.WriteString(digits[areaCodeLen:split])
	b.WriteByte('-')
	b.WriteString(digits[split:])
	return b.String()
}

// Complete reports whether raw holds exactly the digit count required by s.
func Complete(raw string, s Subtype) bool {
	return len(Digits(raw)) == s.MaxDigits()
}
