package payload

import (
	"fmt"
	"strings"
)

// ContentType is the semantic category of the data to encode.
type ContentType string

const (
	TypeURL      ContentType = "URL"
	TypeWhatsApp ContentType = "WHATSAPP"
	TypeText     ContentType = "TEXT"
	TypeEmail    ContentType = "EMAIL"
	TypePhone    ContentType = "PHONE"
	TypeSMS      ContentType = "SMS"
	TypeWiFi     ContentType = "WIFI"
	TypeLocation ContentType = "LOCATION"
	TypeVCard    ContentType = "VCARD"
	TypeMeCard   ContentType = "MECARD"
	TypeMP3      ContentType = "MP3"
	TypeVideo    ContentType = "VIDEO"
	TypePDF      ContentType = "PDF"
	TypeSocial   ContentType = "SOCIAL"
)

// displayOrder matches the order the types are offered to users.
var displayOrder = []ContentType{
	TypeURL, TypeWhatsApp, TypeText, TypeEmail, TypePhone, TypeSMS, TypeVCard,
	TypeMeCard, TypeLocation, TypeMP3, TypeWiFi, TypeVideo, TypePDF, TypeSocial,
}

// ContentTypes returns every content type in display order.
func ContentTypes() []ContentType {
	out := make([]ContentType, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// ParseContentType resolves s case-insensitively.
func ParseContentType(s string) (ContentType, error) {
	t := ContentType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

// Valid reports whether t is a declared content type.
func (t ContentType) Valid() bool {
	for _, known := range displayOrder {
		if t == known {
			return true
		}
	}
	return false
}

// IsURLAlias reports whether t shares URL validation and encoding.
func (t ContentType) IsURLAlias() bool {
	switch t {
	case TypeURL, TypeMP3, TypeVideo, TypePDF, TypeSocial:
		return true
	}
	return false
}

func (t ContentType) String() string {
	return string(t)
}

// Field names of the form field bag.
const (
	FieldURL        = "url"
	FieldPhone      = "phone"
	FieldText       = "text"
	FieldEmail      = "email"
	FieldSubject    = "subject"
	FieldBody       = "body"
	FieldSSID       = "ssid"
	FieldPassword   = "password"
	FieldEncryption = "encryption"
	FieldLat        = "lat"
	FieldLng        = "lng"
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
)

// FieldNames returns the fields read by content type t, in form order.
func FieldNames(t ContentType) []string {
	if t.IsURLAlias() {
		return []string{FieldURL}
	}
	switch t {
	case TypeWhatsApp, TypePhone:
		return []string{FieldPhone}
	case TypeText:
		return []string{FieldText}
	case TypeEmail:
		return []string{FieldEmail}
	case TypeSMS:
		return []string{FieldPhone, FieldSubject, FieldBody}
	case TypeWiFi:
		return []string{FieldSSID, FieldPassword, FieldEncryption}
	case TypeLocation:
		return []string{FieldLat, FieldLng}
	case TypeVCard, TypeMeCard:
		return []string{FieldFirstName, FieldLastName, FieldPhone, FieldEmail}
	}
	return nil
}

// Fields is the loosely typed form field bag. Missing keys read as "".
type Fields map[string]string

// Get returns the value of key, or "" when absent.
func (f Fields) Get(key string) string {
	if f == nil {
		return ""
	}
	return f[key]
}

// Clone returns an independent copy of f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// WiFi encryption modes offered by the form.
const (
	EncryptionWPA  = "WPA"
	EncryptionWEP  = "WEP"
	EncryptionNone = "nopass"
)

// Encryptions lists the WiFi encryption modes in form order.
func Encryptions() []string {
	return []string{EncryptionWPA, EncryptionWEP, EncryptionNone}
}
