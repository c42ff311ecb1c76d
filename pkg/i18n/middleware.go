package i18n

import (
	"net/http"
)

// Middleware stores the request language in the context, retrievable with GetLocale.
// A nil extractor uses DefaultLangExtractor over DefaultLanguage only; an empty
// result falls back to DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor(nil)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
