package payload

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/phone"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// ErrorKind classifies why filled-in input was rejected.
type ErrorKind string

const (
	KindNone               ErrorKind = ""
	KindInvalidURL         ErrorKind = "invalidUrl"
	KindInvalidWhatsApp    ErrorKind = "invalidWhatsapp"
	KindInvalidPhoneLength ErrorKind = "invalidPhoneLength"
	KindInvalidEmail       ErrorKind = "invalidEmail"
)

// errorKeyPrefix namespaces error kinds as translation keys ("errors.invalidUrl").
const errorKeyPrefix = "errors."

// TranslationKey returns the localization key of k, or "" for KindNone.
func (k ErrorKind) TranslationKey() string {
	if k == KindNone {
		return ""
	}
	return errorKeyPrefix + string(k)
}

func kindFromKey(key string) ErrorKind {
	kind := ErrorKind(strings.TrimPrefix(key, errorKeyPrefix))
	switch kind {
	case KindInvalidURL, KindInvalidWhatsApp, KindInvalidPhoneLength, KindInvalidEmail:
		return kind
	}
	return KindNone
}

// WhatsApp numbers carry country code, area code and subscriber number.
const (
	WhatsAppMinDigits = 11
	WhatsAppMaxDigits = 15
)

var (
	urlRegex = regexp.MustCompile(`^(http|https)://[^ "]+$`)
	// Unicode separators and the byte order mark count as whitespace.
	emailRegex = regexp.MustCompile(`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`)
)

// Result is the outcome of validating one content value.
// Valid is false with KindNone while a required field is still empty.
type Result struct {
	Valid bool      `json:"valid"`
	Error ErrorKind `json:"error,omitempty"`
}

// Incomplete reports the "not yet attempted" state: invalid without an error kind.
func (r Result) Incomplete() bool {
	return !r.Valid && r.Error == KindNone
}

// Err converts r to a sentinel error, nil when valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	switch r.Error {
	case KindInvalidURL:
		return ErrInvalidURL
	case KindInvalidWhatsApp:
		return ErrInvalidWhatsApp
	case KindInvalidPhoneLength:
		return ErrInvalidPhoneLength
	case KindInvalidEmail:
		return ErrInvalidEmail
	}
	return ErrIncomplete
}

// Validate checks c. Emptiness is judged on trimmed values while format checks
// run on the value as entered. A nil c is never valid.
func Validate(c Content) Result {
	if c == nil {
		return Result{}
	}

	err := validator.ApplyFirst(c.rules()...)
	if err == nil {
		return Result{Valid: true}
	}

	first, _ := validator.Extract(err).First()
	return Result{Error: kindFromKey(first.TranslationKey)}
}

// ValidateFields validates the field bag as content type t.
func ValidateFields(t ContentType, s phone.Subtype, f Fields) Result {
	return Validate(FromFields(t, s, f))
}

func (c URL) rules() []validator.Rule {
	return []validator.Rule{
		validator.Required(FieldURL, c.Address),
		validator.MatchesRegex(FieldURL, c.Address, urlRegex, "URL").
			WithKey(KindInvalidURL.TranslationKey()),
	}
}

func (c WhatsApp) rules() []validator.Rule {
	return []validator.Rule{
		validator.Required(FieldPhone, c.Phone),
		validator.DigitsLenBetween(FieldPhone, c.Phone, WhatsAppMinDigits, WhatsAppMaxDigits).
			WithKey(KindInvalidWhatsApp.TranslationKey()),
	}
}

func (c Phone) rules() []validator.Rule {
	return []validator.Rule{
		validator.Required(FieldPhone, c.Number),
		validator.DigitsLen(FieldPhone, c.Number, c.Subtype.MaxDigits()).
			WithKey(KindInvalidPhoneLength.TranslationKey()),
	}
}

func (c Text) rules() []validator.Rule {
	return []validator.Rule{validator.Required(FieldText, c.Body)}
}

func (c Email) rules() []validator.Rule {
	return []validator.Rule{
		validator.Required(FieldEmail, c.Address),
		validator.MatchesRegex(FieldEmail, c.Address, emailRegex, "email address").
			WithKey(KindInvalidEmail.TranslationKey()),
	}
}

func (c SMS) rules() []validator.Rule {
	return []validator.Rule{validator.Required(FieldPhone, c.Phone)}
}

func (c WiFi) rules() []validator.Rule {
	return []validator.Rule{validator.Required(FieldSSID, c.SSID)}
}

func (c Location) rules() []validator.Rule {
	return []validator.Rule{
		validator.Required(FieldLat, c.Lat),
		validator.Required(FieldLng, c.Lng),
	}
}

func (c VCard) rules() []validator.Rule {
	return Contact(c).rules()
}

func (c MeCard) rules() []validator.Rule {
	return Contact(c).rules()
}

func (c Contact) rules() []validator.Rule {
	return []validator.Rule{
		validator.RequiredAny([]string{FieldFirstName, FieldLastName}, c.FirstName, c.LastName),
	}
}
