package diagram

import (
	"fmt"
	"io"

	"github.com/wesen/referencefinder/geom"
	"github.com/wesen/referencefinder/refdb"
)

// Verbal writes text-only folding instructions to a writer: for each
// solution, a header with its coordinates, error and rank, followed by
// the numbered step-by-step sequence.
type Verbal struct {
	W   io.Writer
	Opt Options
}

// NewVerbal returns a Verbal with the default clarifier options.
func NewVerbal(w io.Writer) Verbal {
	return Verbal{W: w, Opt: DefaultOptions()}
}

// WriteMarkList writes the solutions for a mark query against target.
func (v Verbal) WriteMarkList(db *refdb.Database, target geom.Pt, ids []refdb.MarkID) error {
	if _, err := fmt.Fprintln(v.W); err != nil {
		return err
	}
	for _, id := range ids {
		m := db.Mark(id)
		p := m.P.Chop()
		_, err := fmt.Fprintf(v.W, "Solution (%.4f,%.4f): err = %.4f (rank %d) \n",
			p.X, p.Y, db.MarkDistance(id, target), m.Rank)
		if err != nil {
			return err
		}
		if err := v.writeSequence(db, MarkRef(id)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(v.W)
	return err
}

// WriteLineList writes the solutions for a line query against target.
func (v Verbal) WriteLineList(db *refdb.Database, target geom.Line, ids []refdb.LineID) error {
	if _, err := fmt.Fprintln(v.W); err != nil {
		return err
	}
	for _, id := range ids {
		l := db.Line(id)
		u := l.L.U.Chop()
		_, err := fmt.Fprintf(v.W, "Solution (%.4f,(%.4f,%.4f)): err = %.4f (rank %d) \n",
			l.L.D, u.X, u.Y, db.LineDistance(id, target), l.Rank)
		if err != nil {
			return err
		}
		if err := v.writeSequence(db, LineRef(id)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(v.W)
	return err
}

// WriteSequence writes the numbered instructions for folding one
// reference, one sentence per line.
func (v Verbal) WriteSequence(db *refdb.Database, target Ref) error {
	return v.writeSequence(db, target)
}

func (v Verbal) writeSequence(db *refdb.Database, target Ref) error {
	seq := NewSequence(db, target)
	for _, r := range seq.Refs {
		if text, ok := seq.Howto(r, v.Opt); ok {
			if _, err := fmt.Fprintf(v.W, "%s.\n", text); err != nil {
				return err
			}
		}
	}
	return nil
}
