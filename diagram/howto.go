package diagram

import (
	"fmt"
	"strings"

	"github.com/wesen/referencefinder/geom"
	"github.com/wesen/referencefinder/refdb"
)

// fmtPt formats a point for instructions, chopping near-zero
// coordinates to zero.
func fmtPt(p geom.Pt, decimals int) string {
	p = p.Chop()
	return fmt.Sprintf("(%.*f,%.*f)", decimals, p.X, decimals, p.Y)
}

// Howto returns the natural-language instruction for folding r, or
// ("", false) for originals, which need no instruction.
func (s *Sequence) Howto(r Ref, opt Options) (string, bool) {
	if !s.isDerived(r) {
		return "", false
	}
	var sb strings.Builder
	if r.IsLine {
		s.lineHowto(&sb, r, opt)
	} else {
		s.markHowto(&sb, r, opt)
	}
	return sb.String(), true
}

func (s *Sequence) markHowto(sb *strings.Builder, r Ref, opt Options) {
	m := s.db.Mark(r.Mark)
	sb.WriteString("The intersection of ")
	sb.WriteString(s.Name(LineRef(m.L1)))
	sb.WriteString(" with ")
	sb.WriteString(s.Name(LineRef(m.L2)))
	sb.WriteString(" is ")
	sb.WriteString(s.Name(r))
	if opt.ClarifyAmbiguities {
		sb.WriteString(" = ")
		sb.WriteString(fmtPt(m.P, 4))
	}
}

func (s *Sequence) lineHowto(sb *strings.Builder, r Ref, opt Options) {
	l := s.db.Line(r.Line)
	if opt.AxiomsInDirections {
		fmt.Fprintf(sb, "[0%d] ", l.Kind.AxiomNumber())
	}
	switch l.Kind {
	case refdb.LineO1:
		sb.WriteString("Form a crease connecting ")
		sb.WriteString(s.Name(MarkRef(l.M1)))
		sb.WriteString(" with ")
		sb.WriteString(s.Name(MarkRef(l.M2)))

	case refdb.LineO2:
		sb.WriteString("Bring ")
		if l.Moves == refdb.MovesP1 {
			sb.WriteString(s.Name(MarkRef(l.M1)))
			sb.WriteString(" to ")
			sb.WriteString(s.Name(MarkRef(l.M2)))
		} else {
			sb.WriteString(s.Name(MarkRef(l.M2)))
			sb.WriteString(" to ")
			sb.WriteString(s.Name(MarkRef(l.M1)))
		}

	case refdb.LineO3:
		sb.WriteString("Fold ")
		if l.Moves == refdb.MovesL1 {
			sb.WriteString(s.Name(LineRef(l.L1)))
			sb.WriteString(" to ")
			sb.WriteString(s.Name(LineRef(l.L2)))
		} else {
			sb.WriteString(s.Name(LineRef(l.L2)))
			sb.WriteString(" to ")
			sb.WriteString(s.Name(LineRef(l.L1)))
		}
		sb.WriteString(", making ")
		sb.WriteString(s.Name(r))
		if opt.ClarifyAmbiguities {
			s.clarifyO3(sb, l)
		}
		return

	case refdb.LineO4:
		sb.WriteString("Fold ")
		sb.WriteString(s.Name(LineRef(l.L1)))
		sb.WriteString(" onto itself, making ")
		sb.WriteString(s.Name(r))
		sb.WriteString(" through ")
		sb.WriteString(s.Name(MarkRef(l.M1)))
		return

	case refdb.LineO5:
		sb.WriteString("Bring ")
		if l.Moves == refdb.MovesP1 {
			sb.WriteString(s.Name(MarkRef(l.M1)))
			sb.WriteString(" to ")
			sb.WriteString(s.Name(LineRef(l.L1)))
		} else {
			sb.WriteString(s.Name(LineRef(l.L1)))
			sb.WriteString(" to ")
			sb.WriteString(s.Name(MarkRef(l.M1)))
		}
		if opt.ClarifyAmbiguities {
			sb.WriteString(" so the crease goes through ")
			sb.WriteString(s.Name(MarkRef(l.M2)))
		}

	case refdb.LineO6:
		s.o6Howto(sb, l, opt)

	case refdb.LineO7:
		sb.WriteString("Bring ")
		sb.WriteString(s.Name(LineRef(l.L2)))
		sb.WriteString(" onto itself so that ")
		if l.Moves == refdb.MovesP1 {
			sb.WriteString(s.Name(MarkRef(l.M1)))
			sb.WriteString(" touches ")
			sb.WriteString(s.Name(LineRef(l.L1)))
		} else {
			sb.WriteString(s.Name(LineRef(l.L1)))
			sb.WriteString(" touches ")
			sb.WriteString(s.Name(MarkRef(l.M1)))
		}
	}
	sb.WriteString(", making ")
	sb.WriteString(s.Name(r))
}

// clarifyO3 names a point on the paper's edge that pins down which of
// the two bisectors the instruction means: the clipped endpoint of the
// fold line that is not the parents' intersection. Parallel parents
// have a single bisector and need no clarifier.
func (s *Sequence) clarifyO3(sb *strings.Builder, l *refdb.Line) {
	l1 := s.db.Line(l.L1).L
	l2 := s.db.Line(l.L2).L
	p, ok := l1.Intersect(l2)
	if !ok {
		return
	}
	pa, pb, ok := s.db.Paper().ClipLine(l.L)
	if !ok {
		return
	}
	sb.WriteString(" through ")
	if p.Eq(pa) {
		sb.WriteString(fmtPt(pb, 2))
	} else {
		sb.WriteString(fmtPt(pa, 2))
	}
}

func (s *Sequence) o6Howto(sb *strings.Builder, l *refdb.Line, opt Options) {
	foldP1 := l.L.Fold(s.db.Mark(l.M1).P)
	foldP2 := l.L.Fold(s.db.Mark(l.M2).P)
	sb.WriteString("Bring ")
	switch l.Moves {
	case refdb.MovesP1P2:
		sb.WriteString(s.Name(MarkRef(l.M1)))
		sb.WriteString(" to ")
		sb.WriteString(s.Name(LineRef(l.L1)))
		if opt.ClarifyAmbiguities {
			sb.WriteString(" at point ")
			sb.WriteString(fmtPt(foldP1, 2))
		}
		sb.WriteString(" and ")
		sb.WriteString(s.Name(MarkRef(l.M2)))
		sb.WriteString(" to ")
		sb.WriteString(s.Name(LineRef(l.L2)))

	case refdb.MovesL1L2:
		sb.WriteString(s.Name(LineRef(l.L1)))
		if opt.ClarifyAmbiguities {
			sb.WriteString(" so that point ")
			sb.WriteString(fmtPt(foldP1, 2))
		}
		sb.WriteString(" touches ")
		sb.WriteString(s.Name(MarkRef(l.M1)))
		sb.WriteString(" and ")
		sb.WriteString(s.Name(LineRef(l.L2)))
		sb.WriteString(" to ")
		sb.WriteString(s.Name(MarkRef(l.M2)))

	case refdb.MovesP1L2:
		sb.WriteString(s.Name(MarkRef(l.M1)))
		sb.WriteString(" to ")
		sb.WriteString(s.Name(LineRef(l.L1)))
		if opt.ClarifyAmbiguities {
			sb.WriteString(" at point ")
			sb.WriteString(fmtPt(foldP1, 2))
		}
		sb.WriteString(" and ")
		sb.WriteString(s.Name(LineRef(l.L2)))
		sb.WriteString(" to ")
		sb.WriteString(s.Name(MarkRef(l.M2)))

	case refdb.MovesP2L1:
		sb.WriteString(s.Name(LineRef(l.L1)))
		sb.WriteString(" to ")
		sb.WriteString(s.Name(MarkRef(l.M1)))
		sb.WriteString(" and ")
		sb.WriteString(s.Name(MarkRef(l.M2)))
		sb.WriteString(" to ")
		sb.WriteString(s.Name(LineRef(l.L2)))
		if opt.ClarifyAmbiguities {
			sb.WriteString(" at point ")
			sb.WriteString(fmtPt(foldP2, 2))
		}
	}
}
