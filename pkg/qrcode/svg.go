package qrcode

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

const gradientID = "qrkit-fill"

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func encodeSVG(l *layout, pal palette, logo *Logo) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	size := int(math.Round(l.size))
	canvas.Startview(size, size, 0, 0, size, size)

	fill := hexColor(pal.fg.R, pal.fg.G, pal.fg.B)
	if pal.gradient {
		// Runs left to right across the modules, as in the raster backend.
		canvas.Def()
		canvas.LinearGradient(gradientID, 0, 0, 100, 0, []svg.Offcolor{
			{Offset: 0, Color: fill, Opacity: 1},
			{Offset: 100, Color: hexColor(pal.end.R, pal.end.G, pal.end.B), Opacity: 1},
		})
		canvas.DefEnd()
		fill = "url(#" + gradientID + ")"
	}

	canvas.Rect(0, 0, size, size, attr("fill", hexColor(pal.bg.R, pal.bg.G, pal.bg.B)))

	if len(l.shapes) > 0 {
		canvas.Path(svgPath(l.shapes), attr("fill", fill), attr("fill-rule", "evenodd"))
	}

	if logo != nil && l.logo != nil {
		canvas.Image(
			int(math.Round(l.logo.x)), int(math.Round(l.logo.y)),
			int(math.Round(l.logo.w)), int(math.Round(l.logo.h)),
			logo.DataURI(),
			attr("preserveAspectRatio", "xMidYMid meet"),
		)
	}

	canvas.End()
	return buf.Bytes()
}

// attr formats an XML attribute; svgo copies arguments containing "=" verbatim.
func attr(name, value string) string {
	return name + `="` + value + `"`
}

func svgPath(shapes []shape) string {
	var b strings.Builder
	pt := func(p point) string {
		return num(p.x) + " " + num(p.y)
	}
	for _, sh := range shapes {
		for _, sub := range sh.subpaths() {
			for _, seg := range sub {
				switch seg.kind {
				case segMove:
					b.WriteString("M" + pt(seg.pts[0]))
				case segLine:
					b.WriteString("L" + pt(seg.pts[0]))
				case segCubic:
					b.WriteString("C" + pt(seg.pts[0]) + " " + pt(seg.pts[1]) + " " + pt(seg.pts[2]))
				case segClose:
					b.WriteString("Z")
				}
			}
		}
	}
	return b.String()
}
