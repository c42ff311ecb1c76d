package qrcode

import (
	"bytes"
	"errors"
	"image/png"

	"github.com/go-pdf/fpdf"
)

const pdfLogoName = "logo"

// encodePDF writes a single-page document whose page is the symbol, one point per pixel.
// Gradients are rejected before this point, so the foreground is solid.
func encodePDF(l *layout, pal palette, logo *Logo) ([]byte, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: l.size, Ht: l.size},
	})
	doc.SetProducer("qrkit", false)
	doc.SetTitle("QR Code", false)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetFillColor(int(pal.bg.R), int(pal.bg.G), int(pal.bg.B))
	doc.Rect(0, 0, l.size, l.size, "F")

	if len(l.shapes) > 0 {
		doc.SetFillColor(int(pal.fg.R), int(pal.fg.G), int(pal.fg.B))
		for _, sh := range l.shapes {
			for _, sub := range sh.subpaths() {
				for _, seg := range sub {
					switch seg.kind {
					case segMove:
						doc.MoveTo(seg.pts[0].x, seg.pts[0].y)
					case segLine:
						doc.LineTo(seg.pts[0].x, seg.pts[0].y)
					case segCubic:
						doc.CurveBezierCubicTo(seg.pts[0].x, seg.pts[0].y, seg.pts[1].x, seg.pts[1].y, seg.pts[2].x, seg.pts[2].y)
					case segClose:
						doc.ClosePath()
					}
				}
			}
		}
		doc.DrawPath("F*")
	}

	if logo.Raster() && l.logo != nil {
		data, err := logoPNG(l, logo)
		if err != nil {
			return nil, errors.Join(ErrFailedToGenerateQRCode, err)
		}
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader(pdfLogoName, opts, bytes.NewReader(data))
		doc.ImageOptions(pdfLogoName, l.logo.x, l.logo.y, l.logo.w, l.logo.h, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return buf.Bytes(), nil
}

// logoPNG resamples the logo and keeps its transparency, which fpdf turns into a soft mask.
func logoPNG(l *layout, logo *Logo) ([]byte, error) {
	w, h := logoPixelSize(l)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaleNearest(logo.Image, w, h)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
