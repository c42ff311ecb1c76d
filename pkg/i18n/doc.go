// Package i18n translates user-facing messages.
//
// Translations are nested maps keyed by language code and loaded through a
// TranslationAdapter, usually an FSAdapter over YAML files:
//
//	# pt.yaml
//	pt:
//	  errors:
//	    invalidUrl: "URL inválida"
//	  validation:
//	    between: "%{field} deve estar entre %{min} e %{max}"
//
// Keys use dot notation ("errors.invalidUrl") and templates use named
// placeholders ("%{field}"). A missing key falls back to the default
// language and then to the key itself.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
//		i18n.WithDefaultLanguage("pt"))
//	msg := tr.T("en", "errors.invalidUrl")
//
// Language negotiation is handled by Matcher, built on golang.org/x/text/language,
// and Middleware stores the negotiated language in the request context:
//
//	m := i18n.NewMatcher(tr.SupportedLanguages()...)
//	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(m)))
//	msg := tr.Tc(r.Context(), "errors.invalidEmail")
package i18n
