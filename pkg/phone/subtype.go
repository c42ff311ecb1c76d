package phone

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSubtype is returned by ParseSubtype for unrecognized values.
var ErrUnknownSubtype = errors.New("phone: unknown subtype")

// Subtype selects the expected digit count and the display mask.
type Subtype string

const (
	Fixed  Subtype = "fixed"
	Mobile Subtype = "mobile"
)

// Default is the subtype used when none is selected.
const Default = Mobile

// Subtypes lists the supported subtypes in display order.
func Subtypes() []Subtype {
	return []Subtype{Fixed, Mobile}
}

// ParseSubtype accepts "fixed"/"mobile" and the Portuguese "fixo"/"celular", case-insensitively.
// Empty input yields Default.
func ParseSubtype(s string) (Subtype, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Default, nil
	case "fixed", "fixo", "landline":
		return Fixed, nil
	case "mobile", "celular", "cell":
		return Mobile, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSubtype, s)
}

// MaxDigits returns the exact digit count of a complete number of this subtype.
// Unknown values are treated as Mobile.
func (s Subtype) MaxDigits() int {
	if s == Fixed {
		return 10
	}
	return 11
}

// exchangeLen is the number of subscriber digits placed before the hyphen.
func (s Subtype) exchangeLen() int {
	if s == Fixed {
		return 4
	}
	return 5
}

func (s Subtype) String() string {
	return string(s)
}

// Valid reports whether s is one of the declared subtypes.
func (s Subtype) Valid() bool {
	return s == Fixed || s == Mobile
}
