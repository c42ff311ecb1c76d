package qrcode

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// hexLineBytes is the number of image bytes per line of hex data (two chars each).
const hexLineBytes = 36

// encodeEPS writes an EPSF-3.0 program drawing the symbol with PostScript paths.
func encodeEPS(l *layout, pal palette, logo *Logo) []byte {
	size := num(l.size)
	box := int(math.Ceil(l.size))

	var b strings.Builder
	b.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	fmt.Fprintf(&b, "%%%%BoundingBox: 0 0 %d %d\n", box, box)
	fmt.Fprintf(&b, "%%%%HiResBoundingBox: 0 0 %s %s\n", size, size)
	b.WriteString("%%Creator: qrkit\n%%Title: QR Code\n%%LanguageLevel: 2\n%%Pages: 1\n%%EndComments\n")
	b.WriteString("%%Page: 1 1\ngsave\n")

	fmt.Fprintf(&b, "%s setrgbcolor\n0 0 %s %s rectfill\n", rgbOperands(pal.bg), size, size)
	if len(l.shapes) > 0 {
		fmt.Fprintf(&b, "%s setrgbcolor\nnewpath\n", rgbOperands(pal.fg))
		writePSPath(&b, l.shapes, l.size)
		b.WriteString("eofill\n")
	}

	if logo.Raster() && l.logo != nil {
		w, h, rgb := logoPixels(l, logo, pal.bg)
		fmt.Fprintf(&b, "gsave\n%s %s translate\n%s %s scale\n", num(l.logo.x), num(l.size-l.logo.y-l.logo.h), num(l.logo.w), num(l.logo.h))
		fmt.Fprintf(&b, "/picstr %d string def\n", w*3)
		fmt.Fprintf(&b, "%d %d 8 [%d 0 0 %d 0 %d]\n{currentfile picstr readhexstring pop} false 3 colorimage\n", w, h, w, -h, h)
		for i := 0; i < len(rgb); i += hexLineBytes {
			b.WriteString(hex.EncodeToString(rgb[i:min(i+hexLineBytes, len(rgb))]))
			b.WriteByte('\n')
		}
		b.WriteString("grestore\n")
	}

	b.WriteString("grestore\nshowpage\n%%EOF\n")
	return []byte(b.String())
}
