package diagram

import (
	"math"
	"sort"

	"github.com/wesen/referencefinder/geom"
	"github.com/wesen/referencefinder/refdb"
)

// refStyle is the role a reference plays in the diagram being drawn.
type refStyle int

const (
	styleNormal refStyle = iota
	styleHilite
	styleAction
)

// Drawing happens in fixed passes so stacking comes out right: labels
// land on top of points, points on top of hilited lines, and those on
// top of plain creases.
const (
	passLines = iota
	passHLines
	passPoints
	passArrows
	passLabels
	numPasses
)

// DrawPaper paints the sheet itself.
func DrawPaper(d Dgmr, paper *geom.Paper) {
	d.DrawPoly(paper.Corners(), PolyWhite)
}

// DrawDiagram renders one block of the sequence onto d. References
// placed in earlier blocks appear in normal style; references the
// block introduces, and everything the action line aligns against,
// are hilited; the action line itself is drawn in action style with
// its fold arrow.
func DrawDiagram(d Dgmr, s *Sequence, b Block) {
	paper := s.db.Paper()
	DrawPaper(d, paper)

	act := s.Refs[b.Act]
	for pass := 0; pass < numPasses; pass++ {
		for i := 0; i < b.Act; i++ {
			r := s.Refs[i]
			if (i >= b.Def && s.isDerived(r)) || s.usesImmediate(act, r) {
				s.drawRef(d, r, styleHilite, pass)
			} else {
				s.drawRef(d, r, styleNormal, pass)
			}
		}
		s.drawRef(d, act, styleAction, pass)
	}
}

func (s *Sequence) drawRef(d Dgmr, r Ref, style refStyle, pass int) {
	if r.IsLine {
		s.drawLine(d, r, style, pass)
	} else {
		s.drawMark(d, r, style, pass)
	}
}

func (s *Sequence) drawMark(d Dgmr, r Ref, style refStyle, pass int) {
	m := s.db.Mark(r.Mark)
	if m.Kind == refdb.MarkOriginal {
		// Originals carry no label and show up only when the fold uses
		// them, in which case they read as hilited.
		if pass == passPoints && style != styleNormal {
			d.DrawPoint(m.P, PointHilite)
		}
		return
	}
	switch pass {
	case passPoints:
		switch style {
		case styleNormal:
			d.DrawPoint(m.P, PointNormal)
		case styleHilite:
			d.DrawPoint(m.P, PointHilite)
		case styleAction:
			d.DrawPoint(m.P, PointAction)
		}
	case passLabels:
		switch style {
		case styleHilite:
			d.DrawLabel(m.P, s.Label(r), LabelHilite)
		case styleAction:
			d.DrawLabel(m.P, s.Label(r), LabelAction)
		}
	}
}

func (s *Sequence) drawLine(d Dgmr, r Ref, style refStyle, pass int) {
	l := s.db.Line(r.Line)
	p1, p2, ok := s.db.Paper().ClipLine(l.L)
	if !ok {
		return
	}

	if l.Kind == refdb.LineOriginal {
		switch pass {
		case passLines:
			if style == styleNormal {
				d.DrawLine(p1, p2, LineCrease)
			}
		case passHLines:
			if style != styleNormal {
				d.DrawLine(p1, p2, LineHilite)
			}
		}
		return
	}

	switch pass {
	case passLines:
		if style == styleNormal {
			d.DrawLine(p1, p2, LineCrease)
		}
	case passHLines:
		switch style {
		case styleHilite:
			d.DrawLine(p1, p2, LineHilite)
		case styleAction:
			d.DrawLine(p1, p2, LineValley)
		}
	case passArrows:
		if style == styleAction {
			s.drawFoldArrows(d, l)
		}
	case passLabels:
		mp := geom.Mid(p1, p2)
		switch style {
		case styleHilite:
			d.DrawLabel(mp, s.Label(r), LabelHilite)
		case styleAction:
			d.DrawLabel(mp, s.Label(r), LabelAction)
		}
	}
}

// drawFoldArrows draws the arrows showing how the action fold is
// performed, from the axiom's alignment geometry.
func (s *Sequence) drawFoldArrows(d Dgmr, l *refdb.Line) {
	paper := s.db.Paper()
	switch l.Kind {
	case refdb.LineO1:
		// Mate two paper-interior points across the crease: walk the
		// perpendicular bisector of the connecting segment.
		p1 := s.db.Mark(l.M1).P
		p2 := s.db.Mark(l.M2).P
		mp := geom.Mid(p1, p2)
		lb := geom.Line{U: l.L.U.Rot90()}
		lb.D = mp.Dot(lb.U)
		p3, p4, ok := paper.ClipLine(lb)
		if !ok {
			return
		}
		t3 := math.Abs(p3.Sub(mp).Dot(l.L.U))
		t4 := math.Abs(p4.Sub(mp).Dot(l.L.U))
		dp := l.L.U.Scale(math.Min(t3, t4))
		DrawFoldAndUnfoldArrow(d, paper, mp.Add(dp), mp.Sub(dp))

	case refdb.LineO2:
		p1 := s.db.Mark(l.M1).P
		p2 := s.db.Mark(l.M2).P
		if l.Moves == refdb.MovesP1 {
			DrawFoldAndUnfoldArrow(d, paper, p1, p2)
		} else {
			DrawFoldAndUnfoldArrow(d, paper, p2, p1)
		}

	case refdb.LineO3:
		// Fold the midmost stretch of one line onto the other.
		l1 := s.db.Line(l.L1).L
		l2 := s.db.Line(l.L2).L
		p1a, p1b, ok1 := paper.ClipLine(l1)
		p2a, p2b, ok2 := paper.ClipLine(l2)
		if !ok1 || !ok2 {
			return
		}
		p2a = l.L.Fold(p2a)
		p2b = l.L.Fold(p2b)
		du1 := l1.U.Scale(l1.D)
		up1 := l1.U.Rot90()
		tvals := []float64{
			p1a.Sub(du1).Dot(up1),
			p1b.Sub(du1).Dot(up1),
			p2a.Sub(du1).Dot(up1),
			p2b.Sub(du1).Dot(up1),
		}
		sort.Float64s(tvals)
		p1c := du1.Add(up1.Scale(0.5 * (tvals[1] + tvals[2])))
		DrawFoldAndUnfoldArrow(d, paper, p1c, l.L.Fold(p1c))

	case refdb.LineO4:
		l1 := s.db.Line(l.L1).L
		p1, p2, ok := paper.ClipLine(l1)
		if !ok {
			return
		}
		pi, ok := l.L.Intersect(l1)
		if !ok {
			return
		}
		u1p := l1.U.Rot90()
		t1 := math.Abs(p1.Sub(pi).Dot(u1p))
		t2 := math.Abs(p2.Sub(pi).Dot(u1p))
		tmin := math.Min(t1, t2)
		DrawFoldAndUnfoldArrow(d, paper, pi.Add(u1p.Scale(tmin)), pi.Sub(u1p.Scale(tmin)))

	case refdb.LineO5:
		p1 := s.db.Mark(l.M1).P
		p1f := l.L.Fold(p1)
		if l.Moves == refdb.MovesP1 {
			DrawFoldAndUnfoldArrow(d, paper, p1, p1f)
		} else {
			DrawFoldAndUnfoldArrow(d, paper, p1f, p1)
		}

	case refdb.LineO6:
		p1a := s.db.Mark(l.M1).P
		p1b := l.L.Fold(p1a)
		p2a := s.db.Mark(l.M2).P
		p2b := l.L.Fold(p2a)
		switch l.Moves {
		case refdb.MovesP1P2:
			DrawFoldAndUnfoldArrow(d, paper, p1a, p1b)
			DrawFoldAndUnfoldArrow(d, paper, p2a, p2b)
		case refdb.MovesL1L2:
			DrawFoldAndUnfoldArrow(d, paper, p1b, p1a)
			DrawFoldAndUnfoldArrow(d, paper, p2b, p2a)
		case refdb.MovesP1L2:
			DrawFoldAndUnfoldArrow(d, paper, p1a, p1b)
			DrawFoldAndUnfoldArrow(d, paper, p2b, p2a)
		case refdb.MovesP2L1:
			DrawFoldAndUnfoldArrow(d, paper, p1b, p1a)
			DrawFoldAndUnfoldArrow(d, paper, p2a, p2b)
		}

	case refdb.LineO7:
		// The line-onto-itself arrow across l2, then the point arrow.
		l2 := s.db.Line(l.L2).L
		p1, p2, ok := paper.ClipLine(l2)
		if !ok {
			return
		}
		pi, ok := l.L.Intersect(l2)
		if !ok {
			return
		}
		u2p := l2.U.Rot90()
		t1 := math.Abs(p1.Sub(pi).Dot(u2p))
		t2 := math.Abs(p2.Sub(pi).Dot(u2p))
		tmin := math.Min(t1, t2)
		DrawFoldAndUnfoldArrow(d, paper, pi.Add(u2p.Scale(tmin)), pi.Sub(u2p.Scale(tmin)))

		p3 := s.db.Mark(l.M1).P
		p3p := l.L.Fold(p3)
		if l.Moves == refdb.MovesP1 {
			DrawFoldAndUnfoldArrow(d, paper, p3, p3p)
		} else {
			DrawFoldAndUnfoldArrow(d, paper, p3p, p3)
		}
	}
}
