// Package sanitizer provides small, stateless helpers for cleaning and escaping
// user input before it is embedded into QR payloads.
//
// The functions are grouped conceptually into several areas:
//
//   - Strings – trimming (Unicode spaces and the byte order mark included), blank
//     detection and single-line normalisation.
//
//   - Format – phone number digit extraction that mirrors the behaviour of a
//     JavaScript `/\D/g` replacement (only ASCII digits survive).
//
//   - Escaping – backslash escaping of reserved characters used by the
//     informal text formats embedded in QR codes (vCard, MECARD).
//
// The higher-order Apply and Compose helpers allow the creation of
// sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.SingleLine,
//	)
//
//	safe := clean("  Ana \n Silva ") // "Ana Silva"
//
// The package has no state and depends only on the Go standard library.
package sanitizer
