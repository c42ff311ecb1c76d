package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrkit/pkg/i18n"
)

func TestMatcher(t *testing.T) {
	t.Parallel()
	m := i18n.NewMatcher("pt", "en", "es", "fr")

	tests := []struct {
		name   string
		prefs  []string
		want   string
		wantOK bool
	}{
		{name: "exact", prefs: []string{"en"}, want: "en", wantOK: true},
		{name: "case insensitive", prefs: []string{"FR"}, want: "fr", wantOK: true},
		{name: "regional variant", prefs: []string{"pt-BR"}, want: "pt", wantOK: true},
		{name: "accept-language quality order", prefs: []string{"de-DE, es;q=0.9, en;q=0.8"}, want: "es", wantOK: true},
		{name: "first preference wins", prefs: []string{"fr", "en"}, want: "fr", wantOK: true},
		{name: "unsupported language", prefs: []string{"ja"}, want: "pt", wantOK: false},
		{name: "garbage", prefs: []string{"!!"}, want: "pt", wantOK: false},
		{name: "nothing", want: "pt", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := m.Match(tt.prefs...)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestMatcherDefaults(t *testing.T) {
	t.Parallel()

	m := i18n.NewMatcher()
	assert.Equal(t, i18n.DefaultLanguage, m.Default())
	assert.Equal(t, []string{i18n.DefaultLanguage}, m.Supported())

	m = i18n.NewMatcher("en", "pt")
	assert.Equal(t, "en", m.Default())

	long := strings.Repeat("x", 5000)
	got, ok := m.Match(long)
	assert.False(t, ok)
	assert.Equal(t, "en", got)
}
