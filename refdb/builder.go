package refdb

import (
	"errors"
	"fmt"

	"github.com/wesen/referencefinder/geom"
)

// errHalt is the internal cancellation signal raised when the progress
// callback answers Cancel or the build context is done. It unwinds to
// Build and never escapes it.
var errHalt = errors.New("refdb: build halted")

// builder carries the mutable state of one database construction.
type builder struct {
	db          *Database
	cfg         *Config
	paper       *geom.Paper
	opts        buildOptions
	curRank     int
	statusCount int
}

// Build constructs a reference database for the given configuration.
//
// Construction seeds the four edges and corners at rank 0 and the two
// diagonals at rank 1, then builds each rank from 1 through MaxRank by
// invoking the enabled axiom constructors in preference order (O3, O2,
// O7, O6, O5, O4, O1), followed by the intersection-mark pass.
// The order matters: the first constructor to produce a valid
// candidate for a bucket key owns it, and creases that avoid folding
// through a point are preferred because they are easier to fold
// accurately.
//
// A Cancel decision from the progress callback (or cancellation of the
// context supplied via WithContext) stops construction at the next
// check; the partially built database is flushed to a consistent state
// and returned without error.
func Build(cfg Config, opts ...Option) (*Database, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	paper := geom.NewPaper(cfg.PaperWidth, cfg.PaperHeight)
	paper.WidthText = cfg.PaperWidthText
	paper.HeightText = cfg.PaperHeightText
	if paper.WidthText == "" {
		paper.WidthText = fmt.Sprintf("%g", cfg.PaperWidth)
	}
	if paper.HeightText == "" {
		paper.HeightText = fmt.Sprintf("%g", cfg.PaperHeight)
	}

	db := &Database{
		cfg:   cfg,
		paper: paper,
		lines: newContainer[Line](cfg.MaxRank),
		marks: newContainer[Mark](cfg.MaxRank),
	}
	b := &builder{db: db, cfg: &db.cfg, paper: paper, opts: o}

	b.report(BuildInitializing)
	b.seedOriginals()

	for rank := 1; rank <= cfg.MaxRank; rank++ {
		if err := b.makeRank(rank); err != nil {
			// Cancelled: keep whatever the current pass produced.
			db.lines.flush()
			db.marks.flush()
			break
		}
	}

	db.lines.clearMaps()
	db.marks.clearMaps()
	b.report(BuildReady)

	return db, nil
}

// seedOriginals installs the rank-0 edges and corners and the rank-1
// diagonals, then flushes so rank-1 construction can see them.
func (b *builder) seedOriginals() {
	b.addOriginalLine(b.paper.BottomEdge, 0, "the bottom edge")
	b.addOriginalLine(b.paper.LeftEdge, 0, "the left edge")
	b.addOriginalLine(b.paper.RightEdge, 0, "the right edge")
	b.addOriginalLine(b.paper.TopEdge, 0, "the top edge")

	b.addOriginalMark(b.paper.BotLeft, 0, "the bottom left corner")
	b.addOriginalMark(b.paper.BotRight, 0, "the bottom right corner")
	b.addOriginalMark(b.paper.TopLeft, 0, "the top left corner")
	b.addOriginalMark(b.paper.TopRight, 0, "the top right corner")

	b.report(BuildRankComplete)

	// The diagonals are rank-1 originals; a rank-0 database has no room
	// for them.
	if b.cfg.MaxRank >= 1 {
		b.addOriginalLine(b.paper.UpwardDiagonal, 1, "the upward diagonal")
		b.addOriginalLine(b.paper.DownwardDiagonal, 1, "the downward diagonal")
	}

	b.db.lines.flush()
	b.db.marks.flush()
}

func (b *builder) addOriginalLine(gl geom.Line, rank int, name string) {
	l := Line{L: gl, Rank: rank, Kind: LineOriginal, Name: name}
	finishLine(&l, b.cfg, b.paper)
	b.db.lines.add(l)
}

func (b *builder) addOriginalMark(p geom.Pt, rank int, name string) {
	m := Mark{P: p, Rank: rank, Kind: MarkOriginal, Name: name}
	finishMark(&m, b.cfg, b.paper)
	b.db.marks.add(m)
}

// makeRank constructs every line and mark of the given rank.
func (b *builder) makeRank(rank int) error {
	b.curRank = rank

	// Lines that need no crease through a point go first, then lines
	// through a single point, then lines through two points.
	steps := []struct {
		enabled bool
		run     func(int) error
	}{
		{b.cfg.UseO3, b.makeAllO3},
		{b.cfg.UseO2, b.makeAllO2},
		{b.cfg.UseO7, b.makeAllO7},
		{b.cfg.UseO6, b.makeAllO6},
		{b.cfg.UseO5, b.makeAllO5},
		{b.cfg.UseO4, b.makeAllO4},
		{b.cfg.UseO1, b.makeAllO1},
	}
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		if err := step.run(rank); err != nil {
			return err
		}
	}
	b.db.lines.flush()

	if err := b.makeAllIntersections(rank); err != nil {
		return err
	}
	b.db.marks.flush()

	if b.report(BuildRankComplete) == Cancel {
		return errHalt
	}
	return nil
}

// report sends a snapshot to the progress callback, if any.
func (b *builder) report(phase BuildPhase) Decision {
	if b.opts.progress == nil {
		return Continue
	}
	return b.opts.progress(BuildInfo{
		Phase:    phase,
		Rank:     b.curRank,
		NumLines: b.db.NumLines(),
		NumMarks: b.db.NumMarks(),
	})
}

// checkStatus counts construction attempts and, every
// DatabaseStatusSkip of them, checks the context and emits a Working
// report. Returns errHalt when cancellation was requested.
func (b *builder) checkStatus() error {
	if b.statusCount < b.cfg.DatabaseStatusSkip {
		b.statusCount++
		return nil
	}
	b.statusCount = 0
	select {
	case <-b.opts.ctx.Done():
		return errHalt
	default:
	}
	if b.report(BuildWorking) == Cancel {
		return errHalt
	}
	return nil
}

// tryLine registers a candidate line if it was validly constructed,
// then performs the periodic status check.
func (b *builder) tryLine(l Line, ok bool) error {
	if ok {
		b.db.lines.add(l)
	}
	return b.checkStatus()
}

// tryMark registers a candidate mark if it was validly constructed,
// then performs the periodic status check.
func (b *builder) tryMark(m Mark, ok bool) error {
	if ok {
		b.db.marks.add(m)
	}
	return b.checkStatus()
}

func (b *builder) lineFull() bool { return b.db.lines.total() >= b.cfg.MaxLines }
func (b *builder) markFull() bool { return b.db.marks.total() >= b.cfg.MaxMarks }

// markOnEdge and lineOnEdge mirror the database accessors for use
// during construction.
func (b *builder) markOnEdge(id MarkID) bool {
	return b.paper.EdgeContains(b.db.marks.all[id].P)
}

func (b *builder) lineOnEdge(id LineID) bool {
	return b.paper.IsEdge(b.db.lines.all[id].L)
}
