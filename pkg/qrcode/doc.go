// Package qrcode renders payload strings into styled QR symbols.
//
// Matrix encoding and error correction are delegated to
// github.com/skip2/go-qrcode; every symbol uses the 25% recovery level (Q),
// which leaves room for a centered logo. On top of the module matrix the
// package lays out shapes (square, dotted or rounded modules and eyes), hides
// the modules under the logo and draws the result with one backend per format:
//
//   - PNG: anti-aliased raster with an optional left-to-right gradient.
//   - SVG: github.com/ajstarks/svgo, one even-odd path plus a linearGradient and an embedded logo.
//   - PDF: github.com/go-pdf/fpdf, one page with a vector path and the logo as an image.
//   - EPS: an EPSF-3.0 PostScript program using colorimage for the logo.
//
// SVG logos can only be embedded by the SVG backend; other formats ignore them
// and keep every module. Logos may also name a preset from style.Logos.
//
// # Usage
//
//	r := qrcode.NewRenderer(
//		qrcode.WithLogoLoader(qrcode.NewLogoLoader(qrcode.WithRemoteLogos(true))),
//		qrcode.WithCache(cache.NewMemoryStore(256), time.Hour),
//	)
//	out, err := r.Render(ctx, "https://example.com", style.Default(), style.FormatSVG, 1000)
//
// The simple helpers Generate and GenerateBase64Image produce plain PNG symbols
// and Terminal prints a symbol with block characters.
//
// # Errors
//
// Sentinel errors (ErrEmptyContent, ErrFailedToGenerateQRCode, ErrInvalidStyle,
// ErrUnsupportedFormat, ErrInvalidLogo, ErrRemoteLogoDisabled, ErrLogoFetch,
// ErrLogoTooLarge) are
// combined with the underlying cause using errors.Join; compare with errors.Is.
// Style validation failures also carry validator.ValidationErrors.
package qrcode
