// Package style describes the cosmetic parameters of a rendered QR symbol:
// module and eye shapes, colors, an optional linear gradient and a logo overlay.
//
// Style values are plain data. Validate checks them against the supported shapes
// and ranges, CheckExport rejects combinations an export format cannot represent,
// and the built-in templates provide ready-made presets:
//
//	s := style.Default()
//	if tpl, ok := style.FindTemplate("Mosaic"); ok {
//		s = tpl.Apply(s)
//	}
//	if err := s.CheckExport(style.FormatPDF); errors.Is(err, style.ErrGradientUnsupported) {
//		// ask for a solid color or another format
//	}
package style
