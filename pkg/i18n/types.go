package i18n

import "net/http"

// LangExtractor returns the language of a request, or "" when it cannot tell.
type LangExtractor func(r *http.Request) string
