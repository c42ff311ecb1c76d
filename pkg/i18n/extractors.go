package i18n

import (
	"net/http"
	"strings"
)

// ExtractorConfig names the request sources checked for an explicit language choice.
type ExtractorConfig struct {
	QueryParamName string
	CookieName     string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

// WithQueryParamName sets the query parameter checked first. Default "lang".
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithCookieName sets the cookie checked after the query parameter. Default "lang".
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// DefaultLangExtractor checks, in order, the query parameter, the cookie and the
// Accept-Language header, returning the first source m can match and m.Default()
// when none does.
func DefaultLangExtractor(m *Matcher, opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		QueryParamName: "lang",
		CookieName:     "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if m == nil {
		m = NewMatcher()
	}

	return func(r *http.Request) string {
		if lang := strings.TrimSpace(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
			if code, ok := m.Match(lang); ok {
				return code
			}
		}
		if c, err := r.Cookie(cfg.CookieName); err == nil {
			if lang := strings.TrimSpace(c.Value); lang != "" {
				if code, ok := m.Match(lang); ok {
					return code
				}
			}
		}
		if header := r.Header.Get("Accept-Language"); header != "" {
			if code, ok := m.Match(header); ok {
				return code
			}
		}
		return m.Default()
	}
}
