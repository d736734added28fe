package geom

// Paper is the sheet being folded: a rectangle with cached corners,
// edge lines and diagonals. The bottom-left corner sits at the origin.
type Paper struct {
	Rect

	Width  float64
	Height float64

	// WidthText and HeightText preserve the user-facing form of the
	// dimensions (an expression such as "sqrt(2)") for display by hosts.
	WidthText  string
	HeightText string

	BotLeft  Pt
	BotRight Pt
	TopLeft  Pt
	TopRight Pt

	TopEdge    Line
	LeftEdge   Line
	RightEdge  Line
	BottomEdge Line

	UpwardDiagonal   Line
	DownwardDiagonal Line
}

// NewPaper returns a Paper of the given dimensions with all incidental
// data filled in.
func NewPaper(width, height float64) *Paper {
	p := &Paper{}
	p.SetSize(width, height)
	return p
}

// SetSize resets the dimensions and recomputes corners, edges and
// diagonals.
func (p *Paper) SetSize(width, height float64) {
	p.BL = Pt{0, 0}
	p.TR = Pt{width, height}
	p.Width = width
	p.Height = height
	p.BotLeft = Pt{0, 0}
	p.BotRight = Pt{width, 0}
	p.TopLeft = Pt{0, height}
	p.TopRight = Pt{width, height}
	p.TopEdge = LineFromPoints(p.TopLeft, p.TopRight)
	p.LeftEdge = LineFromPoints(p.BotLeft, p.TopLeft)
	p.RightEdge = LineFromPoints(p.BotRight, p.TopRight)
	p.BottomEdge = LineFromPoints(p.BotLeft, p.BotRight)
	p.UpwardDiagonal = LineFromPoints(p.BotLeft, p.TopRight)
	p.DownwardDiagonal = LineFromPoints(p.TopLeft, p.BotRight)
}

// Corners returns the four corners in counterclockwise order starting
// from the bottom left.
func (p *Paper) Corners() []Pt {
	return []Pt{p.BotLeft, p.BotRight, p.TopRight, p.TopLeft}
}

// EdgeContains reports whether q lies on one of the four edge lines.
func (p *Paper) EdgeContains(q Pt) bool {
	return p.LeftEdge.Contains(q) || p.RightEdge.Contains(q) ||
		p.TopEdge.Contains(q) || p.BottomEdge.Contains(q)
}

// IsEdge reports whether l coincides with one of the four edges.
func (p *Paper) IsEdge(l Line) bool {
	return p.LeftEdge.Eq(l) || p.TopEdge.Eq(l) ||
		p.RightEdge.Eq(l) || p.BottomEdge.Eq(l)
}

// ClipLine clips l to the paper, returning the endpoints of the clipped
// segment. Returns false if the line misses the paper entirely.
func (p *Paper) ClipLine(l Line) (Pt, Pt, bool) {
	// Collect the points where l crosses the four edge lines inside the
	// paper.
	var ipts [4]Pt
	npts := 0
	for _, edge := range []Line{p.TopEdge, p.LeftEdge, p.RightEdge, p.BottomEdge} {
		if q, ok := edge.Intersect(l); ok && p.Encloses(q) {
			ipts[npts] = q
			npts++
		}
	}
	if npts == 0 {
		return Pt{}, Pt{}, false
	}

	// Parameterize the crossings along the line and keep the extremes.
	pt := l.U.Scale(l.D)
	up := l.U.Rot90()
	tmin := ipts[0].Sub(pt).Dot(up)
	tmax := tmin
	for i := 1; i < npts; i++ {
		tt := ipts[i].Sub(pt).Dot(up)
		if tt < tmin {
			tmin = tt
		}
		if tt > tmax {
			tmax = tt
		}
	}
	return pt.Add(up.Scale(tmin)), pt.Add(up.Scale(tmax)), true
}

// InteriorOverlaps reports whether l overlaps the interior of the
// paper. It is false when the line misses the paper, only grazes a
// corner, or only runs along an edge.
func (p *Paper) InteriorOverlaps(l Line) bool {
	pa, pb, ok := p.ClipLine(l)
	if !ok {
		return false
	}
	if pa.Sub(pb).Mag() < Eps {
		return false // hits at a single point (a corner)
	}
	if !Bound(pa, pb).IsEmpty() {
		return true
	}
	// The bounding box is degenerate, so the segment is horizontal or
	// vertical: it is interior iff its midpoint avoids every edge.
	mp := Mid(pa, pb)
	if p.TopEdge.Contains(mp) || p.BottomEdge.Contains(mp) ||
		p.LeftEdge.Contains(mp) || p.RightEdge.Contains(mp) {
		return false
	}
	return true
}

// MakesSkinnyFlap reports whether folding on l would leave a flap whose
// aspect ratio falls below minAspect. Such creases cannot be folded
// accurately, so callers reject them.
func (p *Paper) MakesSkinnyFlap(l Line, minAspect float64) bool {
	p1, p2, ok := p.ClipLine(l)
	if !ok {
		return true // a line that misses the paper is useless anyway
	}

	// Perpendicular bisector of the clipped segment; its clipped
	// endpoints give one sample point on either side of the fold line.
	lb := Line{U: l.U.Rot90()}
	lb.D = Mid(p1, p2).Dot(lb.U)
	bp1, bp2, ok := p.ClipLine(lb)
	if !ok {
		return true
	}

	if abs(Bound(p1, p2, bp1).AspectRatio()) < minAspect {
		return true
	}
	if abs(Bound(p1, p2, bp2).AspectRatio()) < minAspect {
		return true
	}
	return false
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
