package diagram

import (
	"math"

	"github.com/wesen/referencefinder/geom"
)

// arrowHalfAngle is the half-angle subtended by an arrow's arc.
const arrowHalfAngle = 30 * math.Pi / 180

// Arrow carries everything needed to draw a curved fold arrow between
// two points that mate when folded.
type Arrow struct {
	Center    geom.Pt
	Radius    float64
	FromAngle float64
	ToAngle   float64
	CCW       bool
	HeadSize  float64
	FromDir   geom.Pt
	ToDir     geom.Pt
}

// CalcArrow computes the arc and arrowhead geometry for an arrow from
// one point to another. Of the two candidate arc centers, the one
// farther from the paper's middle is chosen so the bulge always points
// into the sheet.
func CalcArrow(paper *geom.Paper, from, to geom.Pt) Arrow {
	tana := math.Tan(arrowHalfAngle)

	mp := geom.Mid(from, to)
	mu := to.Sub(from)
	mup := mu.Rot90().Scale(0.5 / tana) // midpoint to center of curvature

	sqmp := geom.Mid(paper.BotLeft, paper.TopRight)
	ctr1 := mp.Add(mup)
	ctr2 := mp.Sub(mup)
	var a Arrow
	if ctr1.Sub(sqmp).Mag() > ctr2.Sub(sqmp).Mag() {
		a.Center = ctr1
	} else {
		a.Center = ctr2
	}

	a.Radius = to.Sub(a.Center).Mag()

	fp := from.Sub(a.Center)
	a.FromAngle = math.Atan2(fp.Y, fp.X)
	tp := to.Sub(a.Center)
	a.ToAngle = math.Atan2(tp.Y, tp.X)

	ra := a.ToAngle - a.FromAngle
	for ra < 0 {
		ra += 2 * math.Pi
	}
	for ra > 2*math.Pi {
		ra -= 2 * math.Pi
	}
	a.CCW = ra < math.Pi

	// Arrowheads scale with the paper but shrink for short arrows.
	a.HeadSize = math.Min(paper.Width, paper.Height) * 0.15
	if ah := 0.4 * to.Sub(from).Mag(); a.HeadSize > ah {
		a.HeadSize = ah
	}

	dir := mu.Normalize()
	if a.CCW {
		a.ToDir = dir.RotCCW(arrowHalfAngle)
		a.FromDir = dir.Scale(-1).RotCCW(-arrowHalfAngle)
	} else {
		a.ToDir = dir.RotCCW(-arrowHalfAngle)
		a.FromDir = dir.Scale(-1).RotCCW(arrowHalfAngle)
	}
	return a
}

// DrawValleyArrowhead draws an open two-stroke arrowhead with its tip
// at loc, pointing along dir.
func DrawValleyArrowhead(d Dgmr, loc, dir geom.Pt, length float64) {
	d.DrawLine(loc, loc.Sub(dir.RotCCW(arrowHalfAngle).Scale(length)), LineArrow)
	d.DrawLine(loc, loc.Sub(dir.RotCCW(-arrowHalfAngle).Scale(length)), LineArrow)
}

// DrawMountainArrowhead draws a half-filled arrowhead with its tip at
// loc, pointing along dir.
func DrawMountainArrowhead(d Dgmr, loc, dir geom.Pt, length float64) {
	ldir := dir.Scale(length)
	d.DrawPoly([]geom.Pt{
		loc,
		loc.Sub(ldir.RotCCW(arrowHalfAngle)),
		loc.Sub(ldir.Scale(0.8)),
	}, PolyArrow)
}

// DrawUnfoldArrowhead draws a filled kite arrowhead with its tip at
// loc, pointing along dir.
func DrawUnfoldArrowhead(d Dgmr, loc, dir geom.Pt, length float64) {
	ldir := dir.Scale(length)
	d.DrawPoly([]geom.Pt{
		loc,
		loc.Sub(ldir.RotCCW(arrowHalfAngle)),
		loc.Sub(ldir.Scale(0.8)),
		loc.Sub(ldir.RotCCW(-arrowHalfAngle)),
	}, PolyArrow)
}

// DrawValleyArrow draws a curved valley-fold arrow from the moving
// point to its destination.
func DrawValleyArrow(d Dgmr, paper *geom.Paper, from, to geom.Pt) {
	a := CalcArrow(paper, from, to)
	d.DrawArc(a.Center, a.Radius, a.FromAngle, a.ToAngle, a.CCW, LineArrow)
	DrawValleyArrowhead(d, to, a.ToDir, a.HeadSize)
}

// DrawMountainArrow draws a curved mountain-fold arrow from the moving
// point to its destination.
func DrawMountainArrow(d Dgmr, paper *geom.Paper, from, to geom.Pt) {
	a := CalcArrow(paper, from, to)
	d.DrawArc(a.Center, a.Radius, a.FromAngle, a.ToAngle, a.CCW, LineArrow)
	DrawMountainArrowhead(d, to, a.ToDir, a.HeadSize)
}

// DrawUnfoldArrow draws a curved unfold arrow from the moving point to
// its destination.
func DrawUnfoldArrow(d Dgmr, paper *geom.Paper, from, to geom.Pt) {
	a := CalcArrow(paper, from, to)
	d.DrawArc(a.Center, a.Radius, a.FromAngle, a.ToAngle, a.CCW, LineArrow)
	DrawUnfoldArrowhead(d, to, a.ToDir, a.HeadSize)
}

// DrawFoldAndUnfoldArrow draws the double-headed arrow used for
// fold-and-unfold steps: a valley head at the destination and an
// unfold head back at the source.
func DrawFoldAndUnfoldArrow(d Dgmr, paper *geom.Paper, from, to geom.Pt) {
	a := CalcArrow(paper, from, to)
	d.DrawArc(a.Center, a.Radius, a.FromAngle, a.ToAngle, a.CCW, LineArrow)
	DrawValleyArrowhead(d, to, a.ToDir, a.HeadSize)
	DrawUnfoldArrowhead(d, from, a.FromDir, a.HeadSize)
}
