package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/phone"
	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
)

// DefaultPayload is encoded when no content type is selected.
const DefaultPayload = "https://swapps.com.br"

const (
	smsSubjectPrefix = "Assunto: "
	// MECARD reserved characters, besides backslash.
	mecardReserved = `;:,`
)

type encodeOptions struct {
	legacy bool
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

// WithLegacyEncoding disables escaping of reserved characters in VCARD and
// MECARD payloads, reproducing codes generated by earlier versions byte for byte.
func WithLegacyEncoding() EncodeOption {
	return func(o *encodeOptions) {
		o.legacy = true
	}
}

// Encode returns the literal payload of c. It never fails: missing values encode
// as empty strings and a nil c encodes as DefaultPayload.
func Encode(c Content, opts ...EncodeOption) string {
	if c == nil {
		return DefaultPayload
	}

	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return c.encode(o)
}

// EncodeFields encodes the field bag as content type t.
func EncodeFields(t ContentType, f Fields, opts ...EncodeOption) string {
	return Encode(FromFields(t, phone.Default, f), opts...)
}

func (o encodeOptions) mecardText(s string) string {
	if o.legacy {
		return s
	}
	return sanitizer.EscapeReserved(s, mecardReserved)
}

func (o encodeOptions) vcardText(s string) string {
	if o.legacy {
		return s
	}
	return sanitizer.EscapeVCardText(s)
}

func (c URL) encode(encodeOptions) string {
	return c.Address
}

func (c WhatsApp) encode(encodeOptions) string {
	return "https://wa.me/" + phone.Digits(c.Phone)
}

func (c Phone) encode(encodeOptions) string {
	return "tel:" + phone.Digits(c.Number)
}

func (c Text) encode(encodeOptions) string {
	return c.Body
}

func (c Email) encode(encodeOptions) string {
	return "mailto:" + c.Address
}

func (c SMS) encode(encodeOptions) string {
	body := c.Body
	if c.Subject != "" {
		body = smsSubjectPrefix + c.Subject + "\n\n" + c.Body
	}
	return "SMSTO:" + phone.Digits(c.Phone) + ":" + body
}

// encode writes the SSID and password as entered, without escaping.
func (c WiFi) encode(encodeOptions) string {
	encryption := c.Encryption
	if encryption == "" {
		encryption = EncryptionWPA
	}
	return "WIFI:T:" + encryption +
		";S:" + c.SSID +
		";P:" + c.Password + ";;"
}

func (c Location) encode(encodeOptions) string {
	return "geo:" + orZero(c.Lat) + "," + orZero(c.Lng)
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// encode writes a vCard 3.0 record. The phone is kept as entered.
func (c VCard) encode(o encodeOptions) string {
	first, last := o.vcardText(c.FirstName), o.vcardText(c.LastName)
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + last + ";" + first,
		"FN:" + first + " " + last,
		"TEL;TYPE=CELL:" + o.vcardText(c.Phone),
		"EMAIL:" + o.vcardText(c.Email),
		"END:VCARD",
	}
	return strings.Join(lines, "\n")
}

func (c MeCard) encode(o encodeOptions) string {
	return "MECARD:N:" + o.mecardText(c.LastName) + "," + o.mecardText(c.FirstName) +
		";TEL:" + o.mecardText(c.Phone) +
		";EMAIL:" + o.mecardText(c.Email) + ";;"
}
