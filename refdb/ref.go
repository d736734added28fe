package refdb

import "github.com/wesen/referencefinder/geom"

// MarkID and LineID are stable handles into a database's mark and line
// arenas. A reference's parents are always flushed before the reference
// itself (parents have strictly smaller rank, and each rank's lines
// flush before its marks), so a stored handle is always resolvable.
type (
	// MarkID identifies a mark within its database.
	MarkID int
	// LineID identifies a line within its database.
	LineID int
)

// MarkKind discriminates the two mark variants.
type MarkKind uint8

const (
	// MarkOriginal is a named starting mark (a corner of the paper).
	MarkOriginal MarkKind = iota
	// MarkIntersection is the crossing of two reference lines.
	MarkIntersection
)

// LineKind discriminates the line variants: the named originals plus
// one variant per Huzita–Hatori axiom.
type LineKind uint8

const (
	// LineOriginal is a named starting line (an edge or diagonal).
	LineOriginal LineKind = iota
	// LineO1 is the crease through two points.
	LineO1
	// LineO2 brings one point onto another.
	LineO2
	// LineO3 brings one line onto another (an angle bisector).
	LineO3
	// LineO4 brings a line onto itself with the crease through a point.
	LineO4
	// LineO5 brings a point onto a line with the crease through a point.
	LineO5
	// LineO6 brings two points onto two lines (the cubic alignment).
	LineO6
	// LineO7 brings a line onto itself while a point lands on a line.
	LineO7
)

// AxiomNumber returns the Huzita–Hatori axiom number of a derived line
// kind, or 0 for originals.
func (k LineKind) AxiomNumber() int {
	if k == LineOriginal {
		return 0
	}
	return int(k)
}

// Mover records which side of an alignment physically moves during the
// fold. Visibility filtering constrains the choice; with visibility
// disabled the first-listed role moves.
type Mover uint8

const (
	// MovesNone is used by variants with no moving side (O1, O4).
	MovesNone Mover = iota
	// MovesP1 moves the first point.
	MovesP1
	// MovesP2 moves the second point.
	MovesP2
	// MovesL1 moves the first line.
	MovesL1
	// MovesL2 moves the second line.
	MovesL2
	// MovesP1P2 moves both points (O6, points on the same side).
	MovesP1P2
	// MovesL1L2 moves both lines (O6, points on the same side).
	MovesL1L2
	// MovesP1L2 moves the first point and second line (O6).
	MovesP1L2
	// MovesP2L1 moves the second point and first line (O6).
	MovesP2L1
)

// Mark is a reference point: an original corner or the intersection of
// two reference lines. Marks are immutable once stored.
type Mark struct {
	// P is the mark's position on the paper.
	P geom.Pt
	// Rank is the number of creases needed to construct the mark.
	Rank int
	// Key is the mark's bucket identifier; 0 means "not validated".
	Key int
	// Kind selects the variant.
	Kind MarkKind
	// Name is the display name of an original mark.
	Name string
	// L1 and L2 are the defining lines of an intersection mark.
	L1 LineID
	L2 LineID
}

func (m Mark) refKey() int  { return m.Key }
func (m Mark) refRank() int { return m.Rank }

// IsDerived reports whether the mark was constructed rather than given.
func (m Mark) IsDerived() bool { return m.Kind != MarkOriginal }

// Line is a reference line: an original edge or diagonal, or a crease
// derived by one of the axioms. Lines are immutable once stored.
//
// The parent fields in use depend on Kind:
//
//	LineO1: M1, M2          LineO5: M1, L1, M2, Root
//	LineO2: M1, M2          LineO6: M1, L1, M2, L2, Root
//	LineO3: L1, L2, Root    LineO7: L1, M1, L2
//	LineO4: L1, M1
type Line struct {
	// L is the line's geometry in canonical (D ≥ 0) form.
	L geom.Line
	// Rank is the number of creases needed to construct the line.
	Rank int
	// Key is the line's bucket identifier; 0 means "not validated".
	Key int
	// Kind selects the variant.
	Kind LineKind
	// Name is the display name of an original line.
	Name string
	// M1 and M2 are parent marks, L1 and L2 parent lines.
	M1 MarkID
	M2 MarkID
	L1 LineID
	L2 LineID
	// Root selects among multiple solutions of a multi-root axiom.
	Root int
	// Moves records the moving side of the alignment.
	Moves Mover
}

func (l Line) refKey() int  { return l.Key }
func (l Line) refRank() int { return l.Rank }

// IsDerived reports whether the line was constructed rather than given.
// The diagonals are rank 1 but still original.
func (l Line) IsDerived() bool { return l.Kind != LineOriginal }
