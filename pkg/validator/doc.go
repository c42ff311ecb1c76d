// Package validator provides small, composable validation rules with
// translation-friendly error metadata.
//
// A Rule couples a boolean Check with a ValidationError describing the
// failure. Rules are evaluated with Apply, which collects every failure, or
// with ApplyFirst, which stops at the first one. Both return nil on success and
// a ValidationErrors value otherwise, so callers can use errors.As or the
// Extract helper to inspect field-level problems.
//
// Every error carries a TranslationKey. The defaults live under the
// "validation." namespace; WithKey and WithMessage override them when a caller
// needs its own message catalogue (the payload package maps its rules to the
// "errors.*" keys shown to end users).
//
// # Usage
//
//	err := validator.Apply(
//	    validator.OneOf("bodyShape", s.Body, bodyShapes),
//	    validator.HexColor("fgColor", s.Foreground),
//	    validator.Between("logoSize", s.LogoSize, 0.1, 0.5),
//	)
//	if verrs := validator.Extract(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.Field, translator.T(lang, e.TranslationKey))
//	    }
//	}
//
// The package holds no state and is safe for concurrent use.
package validator
