package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "ssid", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "fgColor", Message: "must be a hex color"})

		assert.Equal(t, "validation failed: ssid: is required; fgColor: must be a hex color", errs.Error())
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("ssid", "Home"),
			validator.HexColor("fgColor", "#000000"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("ssid", " "),
			validator.HexColor("fgColor", "black"),
			validator.Between("logoSize", 0.9, 0.1, 0.5),
		)
		require.Error(t, err)

		verrs := validator.Extract(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"ssid", "fgColor", "logoSize"}, verrs.Fields())
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	})
}

func TestApplyFirst(t *testing.T) {
	t.Parallel()

	err := validator.ApplyFirst(
		validator.Required("phone", "123"),
		validator.DigitsLen("phone", "123", 10).WithKey("errors.invalidPhoneLength"),
		validator.HexColor("never", "evaluated"),
	)
	require.Error(t, err)

	first, ok := validator.Extract(err).First()
	require.True(t, ok)
	assert.Equal(t, "phone", first.Field)
	assert.Equal(t, "errors.invalidPhoneLength", first.TranslationKey)
	assert.Len(t, validator.Extract(err), 1)
}

func TestExtract(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.Extract(nil))
	assert.Nil(t, validator.Extract(errors.New("plain")))

	wrapped := fmt.Errorf("style: %w", validator.Apply(validator.Required("ssid", "")))
	verrs := validator.Extract(wrapped)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("ssid"))
	assert.False(t, verrs.Has("password"))
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	assert.Equal(t, map[string][]string{"ssid": {"validation.required"}}, verrs.Details())
}

func TestRuleOverrides(t *testing.T) {
	t.Parallel()

	rule := validator.Required("url", "").WithKey("errors.custom").WithMessage("custom message")
	assert.Equal(t, "errors.custom", rule.Error.TranslationKey)
	assert.Equal(t, "custom message", rule.Error.Message)

	original := validator.Required("url", "")
	assert.Equal(t, "validation.required", original.Error.TranslationKey)
}
