package qrcode

// kappa places cubic Bézier control points so a quarter curve approximates a circle.
const kappa = 0.5522847498

type point struct{ x, y float64 }

// corners holds radii in the order top-left, top-right, bottom-right, bottom-left.
type corners [4]float64

func uniform(r float64) corners {
	return corners{r, r, r, r}
}

// rect is an axis-aligned rectangle in canvas pixels (origin top-left, y down)
// with an independent radius per corner.
type rect struct {
	x, y, w, h float64
	r          corners
}

func (r rect) clampRadii() rect {
	limit := min(r.w, r.h) / 2
	for i := range r.r {
		r.r[i] = min(max(r.r[i], 0), limit)
	}
	return r
}

func (r rect) intersects(o rect) bool {
	return r.x < o.x+o.w && o.x < r.x+r.w && r.y < o.y+o.h && o.y < r.y+r.h
}

// contains reports whether (px, py) lies inside the rounded rectangle.
func (r rect) contains(px, py float64) bool {
	if px < r.x || py < r.y || px > r.x+r.w || py > r.y+r.h {
		return false
	}
	outside := func(cx, cy, radius float64) bool {
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy > radius*radius
	}
	if tl := r.r[0]; tl > 0 && px < r.x+tl && py < r.y+tl && outside(r.x+tl, r.y+tl, tl) {
		return false
	}
	if tr := r.r[1]; tr > 0 && px > r.x+r.w-tr && py < r.y+tr && outside(r.x+r.w-tr, r.y+tr, tr) {
		return false
	}
	if br := r.r[2]; br > 0 && px > r.x+r.w-br && py > r.y+r.h-br && outside(r.x+r.w-br, r.y+r.h-br, br) {
		return false
	}
	if bl := r.r[3]; bl > 0 && px < r.x+bl && py > r.y+r.h-bl && outside(r.x+bl, r.y+r.h-bl, bl) {
		return false
	}
	return true
}

type segKind uint8

const (
	segMove segKind = iota
	segLine
	segCubic
	segClose
)

// segment is one path command. Line and move use pts[0]; cubic uses all three
// (two control points, then the end point).
type segment struct {
	kind segKind
	pts  [3]point
}

// path traces the outline clockwise starting after the top-left corner.
func (r rect) path() []segment {
	x, y, w, h := r.x, r.y, r.w, r.h
	tl, tr, br, bl := r.r[0], r.r[1], r.r[2], r.r[3]

	segs := make([]segment, 0, 10)
	add := func(kind segKind, pts ...point) {
		var s segment
		s.kind = kind
		copy(s.pts[:], pts)
		segs = append(segs, s)
	}

	add(segMove, point{x + tl, y})
	add(segLine, point{x + w - tr, y})
	if tr > 0 {
		add(segCubic, point{x + w - tr + kappa*tr, y}, point{x + w, y + tr - kappa*tr}, point{x + w, y + tr})
	}
	add(segLine, point{x + w, y + h - br})
	if br > 0 {
		add(segCubic, point{x + w, y + h - br + kappa*br}, point{x + w - br + kappa*br, y + h}, point{x + w - br, y + h})
	}
	add(segLine, point{x + bl, y + h})
	if bl > 0 {
		add(segCubic, point{x + bl - kappa*bl, y + h}, point{x, y + h - bl + kappa*bl}, point{x, y + h - bl})
	}
	add(segLine, point{x, y + tl})
	if tl > 0 {
		add(segCubic, point{x, y + tl - kappa*tl}, point{x + tl - kappa*tl, y}, point{x + tl, y})
	}
	add(segClose)
	return segs
}

// shape is a filled rounded rectangle, or a ring when hole is set.
type shape struct {
	outer rect
	hole  *rect
}

func (s shape) contains(px, py float64) bool {
	if !s.outer.contains(px, py) {
		return false
	}
	return s.hole == nil || !s.hole.contains(px, py)
}

// subpaths returns the outline followed by the hole; fill them with the even-odd rule.
func (s shape) subpaths() [][]segment {
	if s.hole == nil {
		return [][]segment{s.outer.path()}
	}
	return [][]segment{s.outer.path(), s.hole.path()}
}
