package diagram

import "github.com/wesen/referencefinder/geom"

// PointStyle selects how a point is drawn.
type PointStyle int

const (
	// PointNormal draws a previously placed point.
	PointNormal PointStyle = iota
	// PointHilite draws a point the current fold aligns against.
	PointHilite
	// PointAction draws a point created by the current fold.
	PointAction
)

// LineStyle selects how a line, arc or arrow stroke is drawn.
type LineStyle int

const (
	// LineCrease draws an existing crease.
	LineCrease LineStyle = iota
	// LineEdge draws the paper's edge.
	LineEdge
	// LineHilite draws a line the current fold aligns against.
	LineHilite
	// LineValley draws the fold line of the current action.
	LineValley
	// LineMountain draws a mountain fold.
	LineMountain
	// LineArrow draws arrow strokes and arcs.
	LineArrow
)

// PolyStyle selects how a filled polygon is drawn.
type PolyStyle int

const (
	// PolyWhite fills with the paper's white side.
	PolyWhite PolyStyle = iota
	// PolyColored fills with the paper's colored side.
	PolyColored
	// PolyArrow fills arrowheads.
	PolyArrow
)

// LabelStyle selects how a text label is drawn.
type LabelStyle int

const (
	// LabelNormal draws incidental text.
	LabelNormal LabelStyle = iota
	// LabelHilite labels an element the current fold aligns against.
	LabelHilite
	// LabelAction labels an element created by the current fold.
	LabelAction
)

// Dgmr is the primitive drawing surface a host supplies. All
// coordinates are in the paper's coordinate system; the host applies
// its own scaling and layout. Every composed operation in this package
// reduces to these five calls.
type Dgmr interface {
	DrawPoint(p geom.Pt, style PointStyle)
	DrawLine(from, to geom.Pt, style LineStyle)
	DrawArc(center geom.Pt, radius, fromAngle, toAngle float64, ccw bool, style LineStyle)
	DrawPoly(poly []geom.Pt, style PolyStyle)
	DrawLabel(p geom.Pt, text string, style LabelStyle)
}

// Options tune the verbal instructions.
type Options struct {
	// ClarifyAmbiguities adds disambiguating coordinates to
	// instructions with multiple solutions.
	ClarifyAmbiguities bool
	// AxiomsInDirections prefixes each folding instruction with its
	// axiom number, e.g. "[02] ".
	AxiomsInDirections bool
}

// DefaultOptions enables both clarifiers, the right choice for
// text-only output.
func DefaultOptions() Options {
	return Options{ClarifyAmbiguities: true, AxiomsInDirections: true}
}
