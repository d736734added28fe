package refdb

import (
	"math"

	"github.com/wesen/referencefinder/geom"
)

// Database owns every reference built for one configuration. It is
// immutable after Build returns; queries may run concurrently with one
// another but a rebuild produces a fresh Database rather than mutating
// an old one.
type Database struct {
	cfg   Config
	paper *geom.Paper
	lines container[Line]
	marks container[Mark]
}

// Config returns the configuration the database was built with.
func (db *Database) Config() Config { return db.cfg }

// Paper returns the sheet the database describes.
func (db *Database) Paper() *geom.Paper { return db.paper }

// NumLines counts all stored lines, flushed or pending.
func (db *Database) NumLines() int { return db.lines.total() }

// NumMarks counts all stored marks, flushed or pending.
func (db *Database) NumMarks() int { return db.marks.total() }

// Line resolves a line handle. The returned pointer aliases the arena;
// callers must not mutate it.
func (db *Database) Line(id LineID) *Line { return &db.lines.all[id] }

// Mark resolves a mark handle. The returned pointer aliases the arena;
// callers must not mutate it.
func (db *Database) Mark(id MarkID) *Mark { return &db.marks.all[id] }

// LinesOfRank returns the handles of all lines of the given rank, in
// construction order.
func (db *Database) LinesOfRank(rank int) []LineID {
	idxs := db.lines.atRank(rank)
	out := make([]LineID, len(idxs))
	for i, idx := range idxs {
		out[i] = LineID(idx)
	}
	return out
}

// MarksOfRank returns the handles of all marks of the given rank, in
// construction order.
func (db *Database) MarksOfRank(rank int) []MarkID {
	idxs := db.marks.atRank(rank)
	out := make([]MarkID, len(idxs))
	for i, idx := range idxs {
		out[i] = MarkID(idx)
	}
	return out
}

// MarkDistance returns the Euclidean distance from the mark to target.
func (db *Database) MarkDistance(id MarkID, target geom.Pt) float64 {
	return db.marks.all[id].P.Sub(target).Mag()
}

// LineDistance returns the "distance" between the line and target.
// With LineWorstCaseError set, it is the worst-case separation of the
// clipped endpoints of the two lines (a sentinel large value if either
// line misses the paper); otherwise the Pythagorean distance between
// the characteristic vectors.
func (db *Database) LineDistance(id LineID, target geom.Line) float64 {
	l := db.lines.all[id].L
	if db.cfg.LineWorstCaseError {
		p1a, p1b, ok1 := db.paper.ClipLine(l)
		p2a, p2b, ok2 := db.paper.ClipLine(target)
		if !ok1 || !ok2 {
			return 1 / geom.Eps
		}
		err1 := math.Max(p1a.Sub(p2a).Mag(), p1b.Sub(p2b).Mag())
		err2 := math.Max(p1a.Sub(p2b).Mag(), p1b.Sub(p2a).Mag())
		return math.Min(err1, err2)
	}
	du := l.U.Dot(target.U.Rot90())
	dd := l.D - target.D*l.U.Dot(target.U)
	return math.Sqrt(du*du + dd*dd)
}

// MarkOnEdge reports whether the mark lies on an edge of the paper.
func (db *Database) MarkOnEdge(id MarkID) bool {
	return db.paper.EdgeContains(db.marks.all[id].P)
}

// LineOnEdge reports whether the line coincides with an edge of the
// paper.
func (db *Database) LineOnEdge(id LineID) bool {
	return db.paper.IsEdge(db.lines.all[id].L)
}

// finishMark computes the bucket key for a validly constructed mark.
// Constructors call it last; a mark that fails validation keeps key 0
// and is discarded by the container.
func finishMark(m *Mark, cfg *Config, paper *geom.Paper) {
	fx := m.P.X / paper.Width
	fy := m.P.Y / paper.Height
	nx := int(math.Floor(0.5 + fx*float64(cfg.NumX)))
	ny := int(math.Floor(0.5 + fy*float64(cfg.NumY)))
	m.Key = 1 + nx*cfg.NumY + ny
}

// finishLine canonicalizes the line to D ≥ 0 and computes its bucket
// key from the discretized angle and distance. For D = 0 the angle is
// remapped so that u and -u land in the same bucket.
func finishLine(l *Line, cfg *Config, paper *geom.Paper) {
	if l.L.D < 0 {
		l.L.D = -l.L.D
		l.L.U.X = -l.L.U.X
		l.L.U.Y = -l.L.U.Y
	}
	fa := (1 + math.Atan2(l.L.U.Y, l.L.U.X)/math.Pi) / 2
	dmax := math.Hypot(paper.Width, paper.Height)
	fd := l.L.D / dmax
	nd := int(math.Floor(0.5 + fd*float64(cfg.NumD)))
	if nd == 0 {
		fa = math.Mod(2*fa, 1)
	}
	na := int(math.Floor(0.5 + fa*float64(cfg.NumA)))
	l.Key = 1 + na*cfg.NumD + nd
}
