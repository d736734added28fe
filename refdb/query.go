package refdb

import (
	"fmt"

	"github.com/wesen/referencefinder/geom"
)

// scored pairs a candidate with its distance to the target, so the
// selection never computes a distance twice.
type scored struct {
	idx  int
	dist float64
	rank int
}

// better is the composite comparator: while either candidate is worse
// than GoodEnoughError, accuracy wins (rank breaks ties); once both are
// good enough, the lower rank, meaning the simpler fold, wins
// (accuracy breaks ties).
func (db *Database) better(a, b scored) bool {
	good := db.cfg.GoodEnoughError
	if a.dist > good || b.dist > good {
		if a.dist == b.dist {
			return a.rank < b.rank
		}
		return a.dist < b.dist
	}
	if a.rank == b.rank {
		return a.dist < b.dist
	}
	return a.rank < b.rank
}

// selectBest keeps the n best of count candidates under db.better,
// preserving earlier candidates on ties so results are deterministic.
func (db *Database) selectBest(count, n int, score func(int) scored) []scored {
	if n > count {
		n = count
	}
	if n <= 0 {
		return nil
	}
	best := make([]scored, 0, n)
	for i := 0; i < count; i++ {
		s := score(i)
		if len(best) == n && !db.better(s, best[n-1]) {
			continue
		}
		pos := len(best)
		for pos > 0 && db.better(s, best[pos-1]) {
			pos--
		}
		if len(best) < n {
			best = append(best, scored{})
		}
		copy(best[pos+1:], best[pos:])
		best[pos] = s
	}
	return best
}

// ValidateMark reports whether target is a legal mark query, naming the
// offending coordinate otherwise.
func (db *Database) ValidateMark(target geom.Pt) error {
	if target.X < 0 || target.X > db.paper.Width {
		return fmt.Errorf("%w: x coordinate should lie between 0 and %g",
			ErrTargetOutOfRange, db.paper.Width)
	}
	if target.Y < 0 || target.Y > db.paper.Height {
		return fmt.Errorf("%w: y coordinate should lie between 0 and %g",
			ErrTargetOutOfRange, db.paper.Height)
	}
	return nil
}

// ValidateLine reports whether the two points define a legal line
// query: they must be separated by at least Eps.
func (db *Database) ValidateLine(p1, p2 geom.Pt) error {
	if p1.Sub(p2).Mag() > geom.Eps {
		return nil
	}
	return fmt.Errorf("%w: the two points must be separated by at least %g",
		ErrDegenerateTarget, geom.Eps)
}

// BestMarks returns the handles of the n marks closest to target under
// the combined (accuracy, rank) criterion, best first. Fewer than n
// handles come back when the database is smaller than n; an empty
// database yields an empty list.
func (db *Database) BestMarks(target geom.Pt, n int) ([]MarkID, error) {
	if err := db.ValidateMark(target); err != nil {
		return nil, err
	}
	best := db.selectBest(len(db.marks.all), n, func(i int) scored {
		return scored{
			idx:  i,
			dist: db.MarkDistance(MarkID(i), target),
			rank: db.marks.all[i].Rank,
		}
	})
	out := make([]MarkID, len(best))
	for i, s := range best {
		out[i] = MarkID(s.idx)
	}
	return out, nil
}

// BestLines returns the handles of the n lines closest to target under
// the combined (accuracy, rank) criterion, best first.
func (db *Database) BestLines(target geom.Line, n int) ([]LineID, error) {
	best := db.selectBest(len(db.lines.all), n, func(i int) scored {
		return scored{
			idx:  i,
			dist: db.LineDistance(LineID(i), target),
			rank: db.lines.all[i].Rank,
		}
	})
	out := make([]LineID, len(best))
	for i, s := range best {
		out[i] = LineID(s.idx)
	}
	return out, nil
}

// BestLinesThrough validates the two points and searches for the line
// they define.
func (db *Database) BestLinesThrough(p1, p2 geom.Pt, n int) ([]LineID, error) {
	if err := db.ValidateLine(p1, p2); err != nil {
		return nil, err
	}
	return db.BestLines(geom.LineFromPoints(p1, p2), n)
}
