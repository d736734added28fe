// Package refdb defines the configuration surface, progress reporting
// types and sentinel errors for database construction and search.
package refdb

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors surfaced by Build and the query functions.
var (
	// ErrBadDimensions indicates a non-positive paper width or height.
	ErrBadDimensions = errors.New("refdb: paper dimensions must be positive")

	// ErrKeyOverflow indicates that a key-division product does not fit
	// the key type.
	ErrKeyOverflow = errors.New("refdb: key divisions overflow the key type")

	// ErrNoAxioms indicates that every axiom has been disabled.
	ErrNoAxioms = errors.New("refdb: at least one axiom must be enabled")

	// ErrBadOption indicates an out-of-range threshold, cap or division.
	ErrBadOption = errors.New("refdb: invalid configuration value")

	// ErrTargetOutOfRange indicates a query target outside the paper.
	ErrTargetOutOfRange = errors.New("refdb: target outside the paper")

	// ErrDegenerateTarget indicates a target line whose two defining
	// points are closer than Eps.
	ErrDegenerateTarget = errors.New("refdb: target line points must be distinct")

	// ErrEmptyDatabase indicates a statistics run over a database with
	// no marks.
	ErrEmptyDatabase = errors.New("refdb: database contains no marks")
)

// Config collects every tunable of database construction. The zero
// value is not useful; start from DefaultConfig.
//
// A Config is copied into the database at Build time and never mutated
// afterwards, so one Config value may serve several builds.
type Config struct {
	// PaperWidth and PaperHeight are the sheet dimensions in arbitrary
	// units.
	PaperWidth  float64
	PaperHeight float64

	// PaperWidthText and PaperHeightText preserve the user-facing text
	// form of the dimensions for display. Empty means "use the number".
	PaperWidthText  string
	PaperHeightText string

	// MaxRank bounds the number of creases used to construct a
	// reference.
	MaxRank int

	// MaxLines and MaxMarks cap the total population of each family.
	MaxLines int
	MaxMarks int

	// NumX and NumY discretize mark coordinates into buckets; at most
	// one mark may occupy a bucket. NumA and NumD do the same for line
	// angle and distance.
	NumX int
	NumY int
	NumA int
	NumD int

	// GoodEnoughError is the accuracy below which search prefers lower
	// rank over marginally better accuracy.
	GoodEnoughError float64

	// MinAspectRatio is the skinny-flap cutoff: creases leaving a flap
	// with a smaller aspect ratio are rejected.
	MinAspectRatio float64

	// MinAngleSine is the minimum sine of the angle at which two lines
	// may intersect to define a mark.
	MinAngleSine float64

	// VisibilityMatters restricts alignments to those performable on
	// opaque paper.
	VisibilityMatters bool

	// LineWorstCaseError selects the worst-case endpoint metric for
	// line distances instead of the cheaper Pythagorean proxy.
	LineWorstCaseError bool

	// DatabaseStatusSkip is the number of construction attempts between
	// progress callbacks.
	DatabaseStatusSkip int

	// UseO1 through UseO7 enable the individual axioms.
	UseO1 bool
	UseO2 bool
	UseO3 bool
	UseO4 bool
	UseO5 bool
	UseO6 bool
	UseO7 bool
}

// DefaultConfig returns the canonical configuration: a unit square,
// rank ceiling 6, 500 000 references per family, 5000 key divisions on
// every bucket coordinate, and all seven axioms enabled.
func DefaultConfig() Config {
	return Config{
		PaperWidth:         1.0,
		PaperHeight:        1.0,
		MaxRank:            6,
		MaxLines:           500000,
		MaxMarks:           500000,
		NumX:               5000,
		NumY:               5000,
		NumA:               5000,
		NumD:               5000,
		GoodEnoughError:    0.005,
		MinAspectRatio:     0.100,
		MinAngleSine:       0.342, // sin 20°
		VisibilityMatters:  true,
		LineWorstCaseError: true,
		DatabaseStatusSkip: 200000,
		UseO1:              true,
		UseO2:              true,
		UseO3:              true,
		UseO4:              true,
		UseO5:              true,
		UseO6:              true,
		UseO7:              true,
	}
}

// Validate reports the first configuration error, or nil. Build calls
// this before doing any work, so overflow in key computation can never
// happen at construction time.
func (c Config) Validate() error {
	if c.PaperWidth <= 0 || c.PaperHeight <= 0 {
		return ErrBadDimensions
	}
	if c.MaxRank < 0 || c.MaxLines <= 0 || c.MaxMarks <= 0 {
		return ErrBadOption
	}
	if c.NumX <= 0 || c.NumY <= 0 || c.NumA <= 0 || c.NumD <= 0 {
		return ErrBadOption
	}
	if c.NumX >= math.MaxInt/c.NumY || c.NumA >= math.MaxInt/c.NumD {
		return ErrKeyOverflow
	}
	if c.GoodEnoughError < 0 || c.MinAspectRatio < 0 ||
		c.MinAngleSine < 0 || c.DatabaseStatusSkip <= 0 {
		return ErrBadOption
	}
	if !c.UseO1 && !c.UseO2 && !c.UseO3 && !c.UseO4 &&
		!c.UseO5 && !c.UseO6 && !c.UseO7 {
		return ErrNoAxioms
	}
	return nil
}

// Decision is a progress callback's verdict on whether work continues.
type Decision int

const (
	// Continue lets the engine keep working.
	Continue Decision = iota
	// Cancel asks the engine to stop at the next check; the work done
	// so far is kept consistent.
	Cancel
)

// BuildPhase identifies the stage a build progress report refers to.
type BuildPhase int

const (
	// BuildInitializing is reported once before any reference exists.
	BuildInitializing BuildPhase = iota
	// BuildWorking is reported every DatabaseStatusSkip attempts.
	BuildWorking
	// BuildRankComplete is reported after each rank's buffers flush.
	BuildRankComplete
	// BuildReady is reported once the database is complete.
	BuildReady
)

// BuildInfo is the snapshot passed to a build progress callback.
type BuildInfo struct {
	Phase    BuildPhase
	Rank     int
	NumLines int
	NumMarks int
}

// BuildFunc receives build progress and may cancel the build.
type BuildFunc func(BuildInfo) Decision

// StatPhase identifies the stage a statistics progress report refers to.
type StatPhase int

const (
	// StatBegin is reported before the first trial.
	StatBegin StatPhase = iota
	// StatWorking is reported after each trial with its error.
	StatWorking
	// StatDone is reported after the report text is composed.
	StatDone
)

// StatInfo is the snapshot passed to a statistics progress callback.
type StatInfo struct {
	Phase StatPhase
	Index int
	Error float64
}

// StatFunc receives statistics progress and may cancel the run.
type StatFunc func(StatInfo) Decision

// Option configures a single call to Build.
type Option func(*buildOptions)

type buildOptions struct {
	ctx      context.Context
	progress BuildFunc
}

func defaultBuildOptions() buildOptions {
	return buildOptions{ctx: context.Background()}
}

// WithContext attaches a context to the build; cancellation of the
// context stops construction at the next progress check, exactly as a
// Cancel decision from the progress callback would.
func WithContext(ctx context.Context) Option {
	return func(o *buildOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithProgress registers a callback invoked at the cadence set by
// Config.DatabaseStatusSkip and at every rank boundary.
func WithProgress(fn BuildFunc) Option {
	return func(o *buildOptions) {
		if fn != nil {
			o.progress = fn
		}
	}
}
