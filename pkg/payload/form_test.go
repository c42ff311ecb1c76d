package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/phone"
)

func TestNewForm(t *testing.T) {
	t.Parallel()

	f := payload.NewForm()
	assert.Equal(t, payload.TypeURL, f.Type())
	assert.Equal(t, phone.Mobile, f.PhoneSubtype())
	assert.Empty(t, f.Fields())
	assert.True(t, f.Validate().Incomplete())
}

func TestFormPhoneMasking(t *testing.T) {
	t.Parallel()

	f := payload.NewForm()
	f.SetType(payload.TypePhone)
	f.SetField(payload.FieldPhone, "11988887777")
	assert.Equal(t, "(11) 98888-7777", f.Field(payload.FieldPhone))
	assert.True(t, f.Validate().Valid)
	assert.Equal(t, "tel:11988887777", f.Encode())

	f.SetPhoneSubtype(phone.Fixed)
	assert.Equal(t, "(11) 9888-8777", f.Field(payload.FieldPhone))
	assert.True(t, f.Validate().Valid)

	f.SetField(payload.FieldPhone, "11988")
	assert.Equal(t, payload.Result{Error: payload.KindInvalidPhoneLength}, f.Validate())
}

func TestFormDoesNotMaskOtherTypes(t *testing.T) {
	t.Parallel()

	f := payload.NewForm(payload.WithInitialType(payload.TypeWhatsApp))
	f.SetField(payload.FieldPhone, "5511999999999")
	assert.Equal(t, "5511999999999", f.Field(payload.FieldPhone))
	assert.Equal(t, "https://wa.me/5511999999999", f.Encode())
}

func TestFormTypeSwitch(t *testing.T) {
	t.Parallel()

	t.Run("values survive by default", func(t *testing.T) {
		t.Parallel()
		f := payload.NewForm()
		f.SetField(payload.FieldURL, "https://example.com")
		f.SetType(payload.TypeWiFi)
		assert.True(t, f.Validate().Incomplete())
		f.SetType(payload.TypeURL)
		assert.Equal(t, "https://example.com", f.Encode())
	})

	t.Run("cleared when configured", func(t *testing.T) {
		t.Parallel()
		f := payload.NewForm(payload.WithClearOnSwitch())
		f.SetField(payload.FieldURL, "https://example.com")
		f.SetType(payload.TypeWiFi)
		f.SetType(payload.TypeURL)
		assert.Empty(t, f.Field(payload.FieldURL))
	})

	t.Run("unknown type ignored", func(t *testing.T) {
		t.Parallel()
		f := payload.NewForm()
		f.SetType("FAX")
		assert.Equal(t, payload.TypeURL, f.Type())
	})
}

func TestFormApplyTemplate(t *testing.T) {
	t.Parallel()

	f := payload.NewForm()
	f.SetType(payload.TypeWiFi)
	f.SetField(payload.FieldSSID, "Home")
	f.ApplyTemplate("https://whatsapp.com")

	assert.Equal(t, payload.TypeURL, f.Type())
	assert.Equal(t, payload.Fields{"url": "https://whatsapp.com"}, f.Fields())
	assert.True(t, f.Validate().Valid)
}

func TestFormEncodeOptions(t *testing.T) {
	t.Parallel()

	f := payload.NewForm(
		payload.WithInitialType(payload.TypeMeCard),
		payload.WithEncodeOptions(payload.WithLegacyEncoding()),
	)
	f.SetField(payload.FieldFirstName, "a;b")
	assert.Equal(t, "MECARD:N:,a;b;TEL:;EMAIL:;;", f.Encode())

	f.Reset()
	assert.Equal(t, payload.TypeMeCard, f.Type())
	assert.Empty(t, f.Fields())
}

func TestFormFieldsIsACopy(t *testing.T) {
	t.Parallel()

	f := payload.NewForm()
	f.SetField(payload.FieldURL, "https://example.com")
	fields := f.Fields()
	fields[payload.FieldURL] = "changed"
	assert.Equal(t, "https://example.com", f.Field(payload.FieldURL))
}
