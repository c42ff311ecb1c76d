package qrcode

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/dmitrymomot/qrkit/pkg/style"
)

// Sub-pixel sample offsets; four samples give each edge pixel five coverage levels.
var samples = [4]point{{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75}}

type palette struct {
	bg, fg, end color.RGBA
	gradient    bool
}

func newPalette(s style.Style) (palette, error) {
	bg, err := style.ParseHex(s.BgColor)
	if err != nil {
		return palette{}, err
	}
	fg, err := style.ParseHex(s.FgColor)
	if err != nil {
		return palette{}, err
	}
	p := palette{bg: bg, fg: fg, end: fg, gradient: s.Gradient}
	if s.Gradient {
		if p.end, err = style.ParseHex(s.GradientEnd()); err != nil {
			return palette{}, err
		}
	}
	return p, nil
}

// columns returns the foreground of every pixel column; gradients run left to right.
func (p palette) columns(size int) []color.RGBA {
	cols := make([]color.RGBA, size)
	for x := range cols {
		if p.gradient {
			cols[x] = style.Lerp(p.fg, p.end, (float64(x)+0.5)/float64(size))
		} else {
			cols[x] = p.fg
		}
	}
	return cols
}

func encodePNG(l *layout, pal palette, logo *Logo) ([]byte, error) {
	size := int(l.size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: pal.bg}, image.Point{}, draw.Src)

	cols := pal.columns(size)
	for _, sh := range l.shapes {
		b := sh.outer
		x0, y0 := clampInt(int(math.Floor(b.x)), 0, size), clampInt(int(math.Floor(b.y)), 0, size)
		x1, y1 := clampInt(int(math.Ceil(b.x+b.w)), 0, size), clampInt(int(math.Ceil(b.y+b.h)), 0, size)

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				covered := 0
				for _, o := range samples {
					if sh.contains(float64(x)+o.x, float64(y)+o.y) {
						covered++
					}
				}
				if covered > 0 {
					blend(img, x, y, cols[x], covered)
				}
			}
		}
	}

	if logo.Raster() && l.logo != nil {
		box := image.Rect(
			int(math.Round(l.logo.x)), int(math.Round(l.logo.y)),
			int(math.Round(l.logo.x+l.logo.w)), int(math.Round(l.logo.y+l.logo.h)),
		)
		scaled := scaleNearest(logo.Image, box.Dx(), box.Dy())
		draw.Draw(img, box, scaled, image.Point{}, draw.Over)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return buf.Bytes(), nil
}

// blend mixes c into the pixel at (x, y) weighted by covered/len(samples).
func blend(img *image.RGBA, x, y int, c color.RGBA, covered int) {
	i := img.PixOffset(x, y)
	n := len(samples)
	if covered >= n {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, 0xff
		return
	}
	mix := func(dst, src uint8) uint8 {
		return uint8((int(dst)*(n-covered) + int(src)*covered) / n)
	}
	img.Pix[i] = mix(img.Pix[i], c.R)
	img.Pix[i+1] = mix(img.Pix[i+1], c.G)
	img.Pix[i+2] = mix(img.Pix[i+2], c.B)
	img.Pix[i+3] = 0xff
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
