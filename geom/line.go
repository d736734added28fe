package geom

import "math"

// Line represents an infinite line by a scalar D and the unit normal U,
// where D*U is the point on the line closest to the origin. If U is not
// a unit vector most operations are meaningless, so constructors
// normalize it.
type Line struct {
	D float64
	U Pt
}

// LineFromPoints returns the line through two distinct points.
func LineFromPoints(p1, p2 Pt) Line {
	u := p2.Sub(p1).Normalize().Rot90()
	return Line{D: p1.Dot(u), U: u}
}

// Fold reflects p about the line.
func (l Line) Fold(p Pt) Pt {
	return p.Add(l.U.Scale(2 * (l.D - p.Dot(l.U))))
}

// ParallelTo reports whether l and m are parallel within Eps.
func (l Line) ParallelTo(m Line) bool {
	return math.Abs(l.U.Dot(m.U.Rot90())) < Eps
}

// Eq reports whether l and m describe the same line, allowing for the
// (D, U) vs (-D, -U) ambiguity.
func (l Line) Eq(m Line) bool {
	return math.Abs(l.D-m.D*l.U.Dot(m.U)) < Eps &&
		math.Abs(l.U.Dot(m.U.Rot90())) < Eps
}

// Contains reports whether p lies on the line within Eps.
func (l Line) Contains(p Pt) bool {
	return math.Abs(l.D-p.Dot(l.U)) < Eps
}

// Intersect returns the intersection of l and m, or false if the lines
// are parallel within Eps.
func (l Line) Intersect(m Line) (Pt, bool) {
	denom := l.U.X*m.U.Y - l.U.Y*m.U.X
	if math.Abs(denom) < Eps {
		return Pt{}, false
	}
	return Pt{
		X: (l.D*m.U.Y - m.D*l.U.Y) / denom,
		Y: (m.D*l.U.X - l.D*m.U.X) / denom,
	}, true
}
