package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/phone"
)

func TestValidateFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		typ     payload.ContentType
		subtype phone.Subtype
		fields  payload.Fields
		want    payload.Result
	}{
		{
			name:   "url valid",
			typ:    payload.TypeURL,
			fields: payload.Fields{"url": "https://example.com"},
			want:   payload.Result{Valid: true},
		},
		{
			name:   "url empty is incomplete",
			typ:    payload.TypeURL,
			fields: payload.Fields{},
			want:   payload.Result{},
		},
		{
			name:   "url whitespace is incomplete",
			typ:    payload.TypeURL,
			fields: payload.Fields{"url": "   "},
			want:   payload.Result{},
		},
		{
			name:   "url without scheme",
			typ:    payload.TypeURL,
			fields: payload.Fields{"url": "example.com"},
			want:   payload.Result{Error: payload.KindInvalidURL},
		},
		{
			name:   "url with surrounding space is checked as entered",
			typ:    payload.TypeURL,
			fields: payload.Fields{"url": " https://example.com"},
			want:   payload.Result{Error: payload.KindInvalidURL},
		},
		{
			name:   "mp3 alias shares url rules",
			typ:    payload.TypeMP3,
			fields: payload.Fields{"url": "ftp://example.com/a.mp3"},
			want:   payload.Result{Error: payload.KindInvalidURL},
		},
		{
			name:   "social alias valid",
			typ:    payload.TypeSocial,
			fields: payload.Fields{"url": "http://instagram.com/me"},
			want:   payload.Result{Valid: true},
		},
		{
			name:   "whatsapp 13 digits",
			typ:    payload.TypeWhatsApp,
			fields: payload.Fields{"phone": "5511999999999"},
			want:   payload.Result{Valid: true},
		},
		{
			name:   "whatsapp formatted 11 digits",
			typ:    payload.TypeWhatsApp,
			fields: payload.Fields{"phone": "(11) 99999-9999"},
			want:   payload.Result{Valid: true},
		},
		{
			name:   "whatsapp too short",
			typ:    payload.TypeWhatsApp,
			fields: payload.Fields{"phone": "123"},
			want:   payload.Result{Error: payload.KindInvalidWhatsApp},
		},
		{
			name:   "whatsapp too long",
			typ:    payload.TypeWhatsApp,
			fields: payload.Fields{"phone": "1234567890123456"},
			want:   payload.Result{Error: payload.KindInvalidWhatsApp},
		},
		{
			name:   "whatsapp letters only",
			typ:    payload.TypeWhatsApp,
			fields: payload.Fields{"phone": "abc"},
			want:   payload.Result{Error: payload.KindInvalidWhatsApp},
		},
		{
			name:    "phone mobile 11 digits",
			typ:     payload.TypePhone,
			subtype: phone.Mobile,
			fields:  payload.Fields{"phone": "(11) 98888-7777"},
			want:    payload.Result{Valid: true},
		},
		{
			name:    "phone fixed rejects 11 digits",
			typ:     payload.TypePhone,
			subtype: phone.Fixed,
			fields:  payload.Fields{"phone": "(11) 98888-7777"},
			want:    payload.Result{Error: payload.KindInvalidPhoneLength},
		},
		{
			name:    "phone fixed 10 digits",
			typ:     payload.TypePhone,
			subtype: phone.Fixed,
			fields:  payload.Fields{"phone": "(11) 3333-4444"},
			want:    payload.Result{Valid: true},
		},
		{
			name:   "text present",
			typ:    payload.TypeText,
			fields: payload.Fields{"text": "hello"},
			want:   payload.Result{Valid: true},
		},
		{
			name:   "text blank",
			typ:    payload.TypeText,
			fields: payload.Fields{"text": "\n\t"},
			want:   payload.Result{},
		},
		{
			name:   "text only byte order mark",
			typ:    payload.TypeText,
			fields: payload.Fields{"text": "\ufeff"},
			want:   payload.Result{},
		},
		{
			name:   "wifi ssid of no-break spaces",
			typ:    payload.TypeWiFi,
			fields: payload.Fields{"ssid": "\u00a0\u00a0"},
			want:   payload.Result{},
		},
		{
			name:   "email valid",
			typ:    payload.TypeEmail,
			fields: payload.Fields{"email": "ana@example.com"},
			want:   payload.Result{Valid: true},
		},
		{
			name:   "email without domain dot",
			typ:    payload.TypeEmail,
			fields: payload.Fields{"email": "ana@example"},
			want:   payload.Result{Error: payload.KindInvalidEmail},
		},
		{
			name:   "email with no-break space",
			typ:    payload.TypeEmail,
			fields: payload.Fields{"email": "ana\u00a0x@b.com"},
			want:   payload.Result{Error: payload.KindInvalidEmail},
		},
		{
			name:   "email with ideographic space in domain",
			typ:    payload.TypeEmail,
			fields: payload.Fields{"email": "ana@b\u3000c.com"},
			want:   payload.Result{Error: payload.KindInvalidEmail},
		},
		{
			name:   "email with byte order mark",
			typ:    payload.TypeEmail,
			fields: payload.Fields{"email": "ana@b.com\ufeff"},
			want:   payload.Result{Error: payload.KindInvalidEmail},
		},
		{
			name:   "sms needs only a phone",
			typ:    payload.TypeSMS,
			fields: payload.Fields{"phone": "x"},
			want:   payload.Result{Valid: true},
		},
		{
			name:   "wifi needs ssid",
			typ:    payload.TypeWiFi,
			fields: payload.Fields{"password": "secret"},
			want:   payload.Result{},
		},
		{
			name:   "wifi ssid present",
			typ:    payload.TypeWiFi,
			fields: payload.Fields{"ssid": "Home"},
			want:   payload.Result{Valid: true},
		},
		{
			name:   "location needs both coordinates",
			typ:    payload.TypeLocation,
			fields: payload.Fields{"lat": "-23.5"},
			want:   payload.Result{},
		},
		{
			name:   "location complete",
			typ:    payload.TypeLocation,
			fields: payload.Fields{"lat": "-23.5", "lng": "-46.6"},
			want:   payload.Result{Valid: true},
		},
		{
			name:   "vcard last name only",
			typ:    payload.TypeVCard,
			fields: payload.Fields{"lastName": "Silva"},
			want:   payload.Result{Valid: true},
		},
		{
			name:   "mecard no names",
			typ:    payload.TypeMeCard,
			fields: payload.Fields{"phone": "11999999999"},
			want:   payload.Result{},
		},
		{
			name:   "unknown type",
			typ:    payload.ContentType("FAX"),
			fields: payload.Fields{"url": "https://example.com"},
			want:   payload.Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, payload.ValidateFields(tt.typ, tt.subtype, tt.fields))
		})
	}
}

func TestValidateIgnoresOtherFields(t *testing.T) {
	t.Parallel()

	fields := payload.Fields{"url": "not a url", "ssid": "Home"}
	assert.True(t, payload.ValidateFields(payload.TypeWiFi, phone.Default, fields).Valid)
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	res := payload.Validate(nil)
	assert.False(t, res.Valid)
	assert.True(t, res.Incomplete())
}

func TestResultErr(t *testing.T) {
	t.Parallel()

	assert.NoError(t, payload.Result{Valid: true}.Err())
	assert.ErrorIs(t, payload.Result{}.Err(), payload.ErrIncomplete)
	assert.ErrorIs(t, payload.Result{Error: payload.KindInvalidURL}.Err(), payload.ErrInvalidURL)
	assert.ErrorIs(t, payload.Result{Error: payload.KindInvalidWhatsApp}.Err(), payload.ErrInvalidWhatsApp)
	assert.ErrorIs(t, payload.Result{Error: payload.KindInvalidPhoneLength}.Err(), payload.ErrInvalidPhoneLength)
	assert.ErrorIs(t, payload.Result{Error: payload.KindInvalidEmail}.Err(), payload.ErrInvalidEmail)
	assert.False(t, payload.Result{Error: payload.KindInvalidEmail}.Incomplete())
}

func TestErrorKindTranslationKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "errors.invalidUrl", payload.KindInvalidURL.TranslationKey())
	assert.Empty(t, payload.KindNone.TranslationKey())
}
