package diagram

import (
	"strconv"

	"github.com/wesen/referencefinder/refdb"
)

// Ref points at either a mark or a line of a database. The zero value
// is the mark with handle 0; use MarkRef and LineRef.
type Ref struct {
	Line   refdb.LineID
	Mark   refdb.MarkID
	IsLine bool
}

// LineRef wraps a line handle.
func LineRef(id refdb.LineID) Ref { return Ref{Line: id, IsLine: true} }

// MarkRef wraps a mark handle.
func MarkRef(id refdb.MarkID) Ref { return Ref{Mark: id} }

// Sequence is the ordered list of references needed to fold one target
// reference: a topological linearization of the target's ancestor
// graph in which parents precede children, with the parents of each
// fold visited in the order that matches the folding narrative (the
// moving element comes last, so it reads as "bring X to Y").
//
// Building a sequence also numbers the derived references it contains,
// so that each can be named: A, B, C… for creases and P, Q, R… for
// points. Originals keep their names and get no label.
type Sequence struct {
	db   *refdb.Database
	Refs []Ref
	idx  map[Ref]int
}

// NewSequence linearizes the ancestors of target, ending with target
// itself.
func NewSequence(db *refdb.Database, target Ref) *Sequence {
	s := &Sequence{db: db, idx: make(map[Ref]int)}
	s.push(target)
	s.number()
	return s
}

// Database returns the database the sequence refers into.
func (s *Sequence) Database() *refdb.Database { return s.db }

// push recursively appends the parents of r, then r itself if not
// already present.
func (s *Sequence) push(r Ref) {
	if r.IsLine {
		l := s.db.Line(r.Line)
		switch l.Kind {
		case refdb.LineOriginal:
			// no parents
		case refdb.LineO1:
			s.push(MarkRef(l.M1))
			s.push(MarkRef(l.M2))
		case refdb.LineO2:
			if l.Moves == refdb.MovesP1 {
				s.push(MarkRef(l.M2))
				s.push(MarkRef(l.M1))
			} else {
				s.push(MarkRef(l.M1))
				s.push(MarkRef(l.M2))
			}
		case refdb.LineO3:
			if l.Moves == refdb.MovesL1 {
				s.push(LineRef(l.L2))
				s.push(LineRef(l.L1))
			} else {
				s.push(LineRef(l.L1))
				s.push(LineRef(l.L2))
			}
		case refdb.LineO4:
			s.push(MarkRef(l.M1))
			s.push(LineRef(l.L1))
		case refdb.LineO5:
			s.push(MarkRef(l.M2))
			if l.Moves == refdb.MovesP1 {
				s.push(LineRef(l.L1))
				s.push(MarkRef(l.M1))
			} else {
				s.push(MarkRef(l.M1))
				s.push(LineRef(l.L1))
			}
		case refdb.LineO6:
			switch l.Moves {
			case refdb.MovesP1P2:
				s.push(LineRef(l.L2))
				s.push(LineRef(l.L1))
				s.push(MarkRef(l.M2))
				s.push(MarkRef(l.M1))
			case refdb.MovesL1L2:
				s.push(MarkRef(l.M2))
				s.push(MarkRef(l.M1))
				s.push(LineRef(l.L2))
				s.push(LineRef(l.L1))
			case refdb.MovesP1L2:
				s.push(MarkRef(l.M2))
				s.push(LineRef(l.L1))
				s.push(LineRef(l.L2))
				s.push(MarkRef(l.M1))
			case refdb.MovesP2L1:
				s.push(LineRef(l.L2))
				s.push(MarkRef(l.M1))
				s.push(LineRef(l.L1))
				s.push(MarkRef(l.M2))
			}
		case refdb.LineO7:
			if l.Moves == refdb.MovesP1 {
				s.push(LineRef(l.L1))
				s.push(MarkRef(l.M1))
			} else {
				s.push(MarkRef(l.M1))
				s.push(LineRef(l.L1))
			}
			s.push(LineRef(l.L2))
		}
	} else {
		m := s.db.Mark(r.Mark)
		if m.Kind == refdb.MarkIntersection {
			s.push(LineRef(m.L1))
			s.push(LineRef(m.L2))
		}
	}
	s.pushUnique(r)
}

func (s *Sequence) pushUnique(r Ref) {
	if _, seen := s.idx[r]; seen {
		return
	}
	s.idx[r] = 0 // numbered later; 0 marks "present"
	s.Refs = append(s.Refs, r)
}

// number walks the finished sequence and gives each derived reference
// an index from its family's counter. Originals stay at zero.
func (s *Sequence) number() {
	marks, lines := 0, 0
	for _, r := range s.Refs {
		if r.IsLine {
			if s.db.Line(r.Line).IsDerived() {
				lines++
				s.idx[r] = lines
			}
		} else {
			if s.db.Mark(r.Mark).IsDerived() {
				marks++
				s.idx[r] = marks
			}
		}
	}
}

const (
	lineLabels = "ABCDEFGHIJ"
	markLabels = "PQRSTUVWXYZ"
)

// Label returns the single-letter label of a derived reference, or ""
// for originals.
func (s *Sequence) Label(r Ref) string {
	i := s.idx[r]
	if i == 0 {
		return ""
	}
	labels := markLabels
	if r.IsLine {
		labels = lineLabels
	}
	if i <= len(labels) {
		return string(labels[i-1])
	}
	// Sequences this long do not occur at sane ranks; stay total anyway.
	return string(labels[len(labels)-1]) + strconv.Itoa(i)
}

// Name returns how a reference is spoken of in instructions: an
// original's given name, or "line A" / "point P" for derived ones.
func (s *Sequence) Name(r Ref) string {
	if r.IsLine {
		l := s.db.Line(r.Line)
		if l.Kind == refdb.LineOriginal {
			return l.Name
		}
		return "line " + s.Label(r)
	}
	m := s.db.Mark(r.Mark)
	if m.Kind == refdb.MarkOriginal {
		return m.Name
	}
	return "point " + s.Label(r)
}

// isDerived reports whether the reference is constructed rather than
// original.
func (s *Sequence) isDerived(r Ref) bool {
	if r.IsLine {
		return s.db.Line(r.Line).IsDerived()
	}
	return s.db.Mark(r.Mark).IsDerived()
}

// isActionLine reports whether the reference is a derived line, i.e. a
// crease some diagram must show being made.
func (s *Sequence) isActionLine(r Ref) bool {
	return r.IsLine && s.db.Line(r.Line).IsDerived()
}

// usesImmediate reports whether r is a direct parent of act.
func (s *Sequence) usesImmediate(act, r Ref) bool {
	if act.IsLine {
		l := s.db.Line(act.Line)
		switch l.Kind {
		case refdb.LineO1, refdb.LineO2:
			return r == MarkRef(l.M1) || r == MarkRef(l.M2)
		case refdb.LineO3:
			return r == LineRef(l.L1) || r == LineRef(l.L2)
		case refdb.LineO4:
			return r == LineRef(l.L1) || r == MarkRef(l.M1)
		case refdb.LineO5:
			return r == MarkRef(l.M1) || r == LineRef(l.L1) || r == MarkRef(l.M2)
		case refdb.LineO6:
			return r == MarkRef(l.M1) || r == LineRef(l.L1) ||
				r == MarkRef(l.M2) || r == LineRef(l.L2)
		case refdb.LineO7:
			return r == LineRef(l.L1) || r == MarkRef(l.M1) || r == LineRef(l.L2)
		}
		return false
	}
	m := s.db.Mark(act.Mark)
	if m.Kind == refdb.MarkIntersection {
		return r == LineRef(m.L1) || r == LineRef(m.L2)
	}
	return false
}
