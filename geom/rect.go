package geom

import "math"

// Rect is an axis-aligned rectangle given by its bottom-left and
// top-right corners.
type Rect struct {
	BL Pt
	TR Pt
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.TR.X - r.BL.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.TR.Y - r.BL.Y }

// AspectRatio returns the smaller dimension divided by the larger one.
// An empty rectangle yields zero; an improperly ordered rectangle may
// yield a negative ratio.
func (r Rect) AspectRatio() float64 {
	wd, ht := r.Width(), r.Height()
	if math.Abs(wd) < Eps && math.Abs(ht) < Eps {
		return 0
	}
	if math.Abs(wd) <= math.Abs(ht) {
		return wd / ht
	}
	return ht / wd
}

// IsEmpty reports whether the rectangle degenerates to a line or point.
func (r Rect) IsEmpty() bool {
	return math.Abs(r.BL.X-r.TR.X) < Eps || math.Abs(r.BL.Y-r.TR.Y) < Eps
}

// Encloses reports whether p falls within the rectangle, padded by Eps.
func (r Rect) Encloses(p Pt) bool {
	return p.X >= r.BL.X-Eps && p.X <= r.TR.X+Eps &&
		p.Y >= r.BL.Y-Eps && p.Y <= r.TR.Y+Eps
}

// Include stretches the rectangle so that it encloses p.
func (r Rect) Include(p Pt) Rect {
	if r.BL.X > p.X {
		r.BL.X = p.X
	}
	if r.BL.Y > p.Y {
		r.BL.Y = p.Y
	}
	if r.TR.X < p.X {
		r.TR.X = p.X
	}
	if r.TR.Y < p.Y {
		r.TR.Y = p.Y
	}
	return r
}

// Bound returns the axis-aligned bounding box of the given points.
func Bound(p Pt, rest ...Pt) Rect {
	r := Rect{BL: p, TR: p}
	for _, q := range rest {
		r = r.Include(q)
	}
	return r
}
