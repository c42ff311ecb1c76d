package qrcode

import "github.com/dmitrymomot/qrkit/pkg/style"

// previewSize is the canvas width the logo margin is expressed in.
const previewSize = 300.0

const eyeSize = 7

// layout is a symbol resolved into drawable primitives on a square canvas.
type layout struct {
	size   float64
	module float64
	shapes []shape
	// logo is the placement of the logo image, nil without a logo.
	logo *rect
}

// buildLayout positions every dark module of bitmap on a size×size canvas.
// logoAspect is the logo height/width ratio, or 0 when no logo is drawn.
func buildLayout(bitmap [][]bool, s style.Style, size int, logoAspect float64) *layout {
	n := len(bitmap)
	l := &layout{size: float64(size)}
	if n == 0 {
		return l
	}
	m := float64(size) / float64(n)
	l.module = m

	eyes := eyeOrigins(n)
	inEye := func(row, col int) bool {
		for _, e := range eyes {
			if row >= e[0] && row < e[0]+eyeSize && col >= e[1] && col < e[1]+eyeSize {
				return true
			}
		}
		return false
	}

	var hidden *rect
	if logoAspect > 0 {
		logo, keepOut := logoPlacement(n, m, float64(size), s, logoAspect)
		l.logo, hidden = &logo, &keepOut
	}

	visible := make([][]bool, n)
	for row := range n {
		visible[row] = make([]bool, n)
		for col := range n {
			if !bitmap[row][col] || inEye(row, col) {
				continue
			}
			cell := rect{x: float64(col) * m, y: float64(row) * m, w: m, h: m}
			if hidden != nil && cell.intersects(*hidden) {
				continue
			}
			visible[row][col] = true
		}
	}

	at := func(row, col int) bool {
		return row >= 0 && row < n && col >= 0 && col < n && visible[row][col]
	}
	for row := range n {
		for col := range n {
			if !visible[row][col] {
				continue
			}
			r := rect{
				x: float64(col) * m,
				y: float64(row) * m,
				w: m,
				h: m,
				r: bodyCorners(s.BodyShape, m, at(row-1, col), at(row, col+1), at(row+1, col), at(row, col-1)),
			}
			l.shapes = append(l.shapes, shape{outer: r.clampRadii()})
		}
	}

	for _, e := range eyes {
		l.shapes = append(l.shapes, eyeShapes(s, m, float64(e[1])*m, float64(e[0])*m)...)
	}
	return l
}

// eyeOrigins returns the top-left (row, col) of the three finder patterns.
func eyeOrigins(n int) [][2]int {
	far := n - QuietZone - eyeSize
	if far < QuietZone {
		return nil
	}
	return [][2]int{{QuietZone, QuietZone}, {QuietZone, far}, {far, QuietZone}}
}

// logoPlacement centers the logo and returns it with the clear area around it.
// The longer logo side spans LogoSize of the data area.
func logoPlacement(n int, m, size float64, s style.Style, aspect float64) (logo, keepOut rect) {
	side := s.LogoSize * float64(n-2*QuietZone) * m
	w, h := side, side*aspect
	if aspect > 1 {
		w, h = side/aspect, side
	}
	logo = rect{x: (size - w) / 2, y: (size - h) / 2, w: w, h: h}

	margin := float64(s.LogoMargin) * size / previewSize
	keepOut = rect{x: logo.x - margin, y: logo.y - margin, w: w + 2*margin, h: h + 2*margin}
	return logo, keepOut
}

// bodyCorners rounds the corners of a data module whose two adjacent sides have
// no dark neighbor, so connected runs keep straight joins.
func bodyCorners(shape style.BodyShape, m float64, top, right, bottom, left bool) corners {
	half := m / 2
	free := [4]bool{!top && !left, !top && !right, !bottom && !right, !bottom && !left}
	pick := func(radii corners) corners {
		for i := range radii {
			if !free[i] {
				radii[i] = 0
			}
		}
		return radii
	}

	switch shape {
	case style.BodyDots:
		return uniform(half)
	case style.BodyRounded:
		return pick(uniform(m * 0.3))
	case style.BodyExtraRounded:
		return pick(uniform(half))
	case style.BodyClassy:
		return pick(corners{half, 0, half, 0})
	case style.BodyClassyRounded:
		return pick(corners{half, m * 0.25, half, m * 0.25})
	}
	return corners{}
}

// eyeShapes returns the 7×7 ring and the 3×3 ball of a finder pattern at (x, y).
func eyeShapes(s style.Style, m, x, y float64) []shape {
	var outerR, innerR float64
	switch s.EyeFrameShape {
	case style.EyeFrameRounded:
		outerR, innerR = 1.6*m, 0.6*m
	case style.EyeFrameExtraRounded:
		outerR, innerR = 2.8*m, 1.8*m
	}
	frame := rect{x: x, y: y, w: eyeSize * m, h: eyeSize * m, r: uniform(outerR)}.clampRadii()
	hole := rect{x: x + m, y: y + m, w: 5 * m, h: 5 * m, r: uniform(innerR)}.clampRadii()

	var ballR float64
	if s.EyeBallShape == style.EyeBallRounded {
		ballR = 0.9 * m
	}
	ball := rect{x: x + 2*m, y: y + 2*m, w: 3 * m, h: 3 * m, r: uniform(ballR)}.clampRadii()

	return []shape{{outer: frame, hole: &hole}, {outer: ball}}
}
