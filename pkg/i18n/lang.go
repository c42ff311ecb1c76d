package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the Accept-Language header that is parsed.
const maxAcceptLanguageLength = 4096

// Matcher negotiates the best supported language for a list of preferences.
type Matcher struct {
	codes   []string
	matcher language.Matcher
}

// NewMatcher returns a matcher over supported codes; the first one is the fallback.
// With no codes it only ever returns DefaultLanguage.
func NewMatcher(supported ...string) *Matcher {
	if len(supported) == 0 {
		supported = []string{DefaultLanguage}
	}
	tags := make([]language.Tag, len(supported))
	codes := make([]string, len(supported))
	for i, code := range supported {
		tags[i] = language.Make(code)
		codes[i] = strings.ToLower(code)
	}
	return &Matcher{codes: codes, matcher: language.NewMatcher(tags)}
}

// Default returns the fallback language.
func (m *Matcher) Default() string {
	return m.codes[0]
}

// Supported returns the codes the matcher chooses from.
func (m *Matcher) Supported() []string {
	return append([]string(nil), m.codes...)
}

// Match returns the supported code closest to prefs, each either a single tag
// ("pt-BR") or a full Accept-Language value ("fr-CH, fr;q=0.9, en;q=0.8").
// ok is false, and the code is the default, when nothing matches.
func (m *Matcher) Match(prefs ...string) (code string, ok bool) {
	var tags []language.Tag
	for _, p := range prefs {
		if len(p) > maxAcceptLanguageLength {
			p = p[:maxAcceptLanguageLength]
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return m.Default(), false
	}

	_, idx, conf := m.matcher.Match(tags...)
	if conf == language.No {
		return m.Default(), false
	}
	return m.codes[idx], true
}
