package qrcode

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// unit formats a color component in [0, 1] for PostScript operators.
func unit(c uint8) string {
	return strconv.FormatFloat(math.Round(float64(c)/255*1000)/1000, 'f', -1, 64)
}

func rgbOperands(c color.RGBA) string {
	return unit(c.R) + " " + unit(c.G) + " " + unit(c.B)
}

// writePSPath emits every shape as PostScript path operators with the y axis
// flipped to a bottom-left origin.
func writePSPath(b *strings.Builder, shapes []shape, size float64) {
	pt := func(p point) string {
		return num(p.x) + " " + num(size-p.y)
	}
	for _, sh := range shapes {
		for _, sub := range sh.subpaths() {
			for _, seg := range sub {
				switch seg.kind {
				case segMove:
					b.WriteString(pt(seg.pts[0]) + " moveto\n")
				case segLine:
					b.WriteString(pt(seg.pts[0]) + " lineto\n")
				case segCubic:
					b.WriteString(pt(seg.pts[0]) + " " + pt(seg.pts[1]) + " " + pt(seg.pts[2]) + " curveto\n")
				case segClose:
					b.WriteString("closepath\n")
				}
			}
		}
	}
}

// logoPixelSize returns the pixel size a logo is resampled to before it is embedded
// in a document. The width is capped to keep documents small.
func logoPixelSize(l *layout) (w, h int) {
	const maxPixels = 512
	w = clampInt(int(math.Round(l.logo.w)), 1, maxPixels)
	h = max(1, int(math.Round(float64(w)*l.logo.h/l.logo.w)))
	return w, h
}

// logoPixels returns the logo resampled for embedding in a PostScript program and
// flattened onto bg.
func logoPixels(l *layout, logo *Logo, bg color.RGBA) (w, h int, rgb []byte) {
	w, h = logoPixelSize(l)
	img := flatten(scaleNearest(logo.Image, w, h), bg)
	rgb = make([]byte, 0, w*h*3)
	for i := 0; i < len(img.Pix); i += 4 {
		rgb = append(rgb, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
	}
	return w, h, rgb
}
