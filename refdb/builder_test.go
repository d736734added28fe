package refdb_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/referencefinder/geom"
	"github.com/wesen/referencefinder/refdb"
)

// smallConfig keeps test databases quick to build while exercising the
// full machinery.
func smallConfig(maxRank int) refdb.Config {
	cfg := refdb.DefaultConfig()
	cfg.MaxRank = maxRank
	cfg.MaxLines = 20000
	cfg.MaxMarks = 20000
	return cfg
}

// TestBuild_ConfigErrors verifies that bad configurations are rejected
// before any work happens.
func TestBuild_ConfigErrors(t *testing.T) {
	cfg := refdb.DefaultConfig()
	cfg.PaperWidth = 0
	_, err := refdb.Build(cfg)
	assert.ErrorIs(t, err, refdb.ErrBadDimensions, "zero width")

	cfg = refdb.DefaultConfig()
	cfg.NumX = math.MaxInt / 2
	cfg.NumY = 4
	_, err = refdb.Build(cfg)
	assert.ErrorIs(t, err, refdb.ErrKeyOverflow, "mark key overflow")

	cfg = refdb.DefaultConfig()
	cfg.NumA = math.MaxInt / 2
	cfg.NumD = 4
	_, err = refdb.Build(cfg)
	assert.ErrorIs(t, err, refdb.ErrKeyOverflow, "line key overflow")

	cfg = refdb.DefaultConfig()
	cfg.UseO1, cfg.UseO2, cfg.UseO3, cfg.UseO4 = false, false, false, false
	cfg.UseO5, cfg.UseO6, cfg.UseO7 = false, false, false
	_, err = refdb.Build(cfg)
	assert.ErrorIs(t, err, refdb.ErrNoAxioms, "all axioms disabled")

	cfg = refdb.DefaultConfig()
	cfg.GoodEnoughError = -1
	_, err = refdb.Build(cfg)
	assert.ErrorIs(t, err, refdb.ErrBadOption, "negative threshold")

	cfg = refdb.DefaultConfig()
	cfg.MaxLines = 0
	_, err = refdb.Build(cfg)
	assert.ErrorIs(t, err, refdb.ErrBadOption, "zero line cap")
}

// TestBuild_RankZero: with the rank ceiling at zero only the edges and
// corners exist.
func TestBuild_RankZero(t *testing.T) {
	cfg := smallConfig(0)
	db, err := refdb.Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, 4, db.NumLines(), "four edges")
	assert.Equal(t, 4, db.NumMarks(), "four corners")
	for _, id := range db.LinesOfRank(0) {
		assert.Equal(t, refdb.LineOriginal, db.Line(id).Kind)
	}
}

// TestBuild_OnlyO1 checks the reachable set of the
// crease-through-two-points axiom alone at rank 2 on the unit square:
// the edges and diagonals (all originals), the corners, and the center
// where the diagonals cross.
func TestBuild_OnlyO1(t *testing.T) {
	cfg := smallConfig(2)
	cfg.UseO2, cfg.UseO3, cfg.UseO4 = false, false, false
	cfg.UseO5, cfg.UseO6, cfg.UseO7 = false, false, false
	db, err := refdb.Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, 6, db.NumLines(), "edges plus diagonals")
	assert.Equal(t, 5, db.NumMarks(), "corners plus center")

	center := db.MarksOfRank(2)
	require.Len(t, center, 1)
	m := db.Mark(center[0])
	assert.True(t, m.P.Eq(geom.Pt{X: 0.5, Y: 0.5}), "rank-2 mark is the center")
	assert.Equal(t, refdb.MarkIntersection, m.Kind)
}

// TestBuild_Invariants checks the database-wide invariants after a
// default-axiom build: nonzero unique keys, correct derived ranks with
// resolvable parents, and the geometric predicates on every stored
// reference.
func TestBuild_Invariants(t *testing.T) {
	cfg := smallConfig(3)
	db, err := refdb.Build(cfg)
	require.NoError(t, err)

	paper := db.Paper()

	lineKeys := make(map[int]bool)
	for rank := 0; rank <= cfg.MaxRank; rank++ {
		for _, id := range db.LinesOfRank(rank) {
			l := db.Line(id)
			require.NotZero(t, l.Key, "stored line has a key")
			require.False(t, lineKeys[l.Key], "line keys are unique")
			lineKeys[l.Key] = true
			assert.Equal(t, rank, l.Rank)

			assert.GreaterOrEqual(t, l.L.D, 0.0, "canonical d >= 0")
			if l.IsDerived() {
				assert.True(t, paper.InteriorOverlaps(l.L), "crease overlaps interior")
				assert.False(t, paper.MakesSkinnyFlap(l.L, cfg.MinAspectRatio),
					"crease leaves no skinny flap")
			}

			if l.Kind == refdb.LineO1 || l.Kind == refdb.LineO2 {
				parents := db.Mark(l.M1).Rank + db.Mark(l.M2).Rank
				assert.Equal(t, 1+parents, l.Rank, "derived line rank")
			}
		}
	}

	markKeys := make(map[int]bool)
	for rank := 0; rank <= cfg.MaxRank; rank++ {
		for _, id := range db.MarksOfRank(rank) {
			m := db.Mark(id)
			require.NotZero(t, m.Key, "stored mark has a key")
			require.False(t, markKeys[m.Key], "mark keys are unique")
			markKeys[m.Key] = true
			assert.Equal(t, rank, m.Rank)

			if m.Kind == refdb.MarkIntersection {
				la := db.Line(m.L1)
				lb := db.Line(m.L2)
				assert.Equal(t, la.Rank+lb.Rank, m.Rank, "mark rank is parent sum")
				assert.True(t, paper.Encloses(m.P), "mark on the paper")
				sine := math.Abs(la.L.U.Dot(lb.L.U.Rot90()))
				assert.GreaterOrEqual(t, sine, cfg.MinAngleSine, "crossing angle")
			}
		}
	}
}

// TestBuild_O3FoldsParentsTogether: every stored bisector actually
// maps its first parent line onto its second.
func TestBuild_O3FoldsParentsTogether(t *testing.T) {
	db, err := refdb.Build(smallConfig(3))
	require.NoError(t, err)

	checked := 0
	for rank := 0; rank <= 3; rank++ {
		for _, id := range db.LinesOfRank(rank) {
			l := db.Line(id)
			if l.Kind != refdb.LineO3 {
				continue
			}
			l1 := db.Line(l.L1).L
			l2 := db.Line(l.L2).L
			// Fold two distinct points of l1 and check the images land
			// on l2.
			a := l1.U.Scale(l1.D)
			bPt := a.Add(l1.U.Rot90())
			assert.True(t, l2.Contains(l.L.Fold(a)), "image of l1 lies on l2")
			assert.True(t, l2.Contains(l.L.Fold(bPt)), "image of l1 lies on l2")
			checked++
		}
	}
	assert.Greater(t, checked, 0, "the database contains bisectors")
}

// TestBuild_Deterministic: two builds of the same configuration agree
// reference for reference.
func TestBuild_Deterministic(t *testing.T) {
	cfg := smallConfig(3)
	db1, err := refdb.Build(cfg)
	require.NoError(t, err)
	db2, err := refdb.Build(cfg)
	require.NoError(t, err)

	require.Equal(t, db1.NumLines(), db2.NumLines())
	require.Equal(t, db1.NumMarks(), db2.NumMarks())
	for rank := 0; rank <= cfg.MaxRank; rank++ {
		l1s := db1.LinesOfRank(rank)
		l2s := db2.LinesOfRank(rank)
		require.Equal(t, len(l1s), len(l2s), "line count at rank %d", rank)
		for i := range l1s {
			assert.Equal(t, db1.Line(l1s[i]).Key, db2.Line(l2s[i]).Key)
		}
		m1s := db1.MarksOfRank(rank)
		m2s := db2.MarksOfRank(rank)
		require.Equal(t, len(m1s), len(m2s), "mark count at rank %d", rank)
		for i := range m1s {
			assert.Equal(t, db1.Mark(m1s[i]).Key, db2.Mark(m2s[i]).Key)
		}
	}
}

// TestBuild_Progress checks the callback protocol: Initializing first,
// RankComplete per rank, Ready last, with cumulative counts.
func TestBuild_Progress(t *testing.T) {
	cfg := smallConfig(2)
	var phases []refdb.BuildPhase
	var lastInfo refdb.BuildInfo
	db, err := refdb.Build(cfg, refdb.WithProgress(func(info refdb.BuildInfo) refdb.Decision {
		phases = append(phases, info.Phase)
		lastInfo = info
		return refdb.Continue
	}))
	require.NoError(t, err)

	require.NotEmpty(t, phases)
	assert.Equal(t, refdb.BuildInitializing, phases[0])
	assert.Equal(t, refdb.BuildReady, phases[len(phases)-1])
	assert.Contains(t, phases, refdb.BuildRankComplete)
	assert.Equal(t, db.NumLines(), lastInfo.NumLines)
	assert.Equal(t, db.NumMarks(), lastInfo.NumMarks)
}

// TestBuild_Cancellation: cancelling from the Working callback returns
// a partial but queryable database.
func TestBuild_Cancellation(t *testing.T) {
	cfg := refdb.DefaultConfig()
	cfg.MaxRank = 10
	cfg.DatabaseStatusSkip = 500
	cancelled := false
	db, err := refdb.Build(cfg, refdb.WithProgress(func(info refdb.BuildInfo) refdb.Decision {
		if info.Phase == refdb.BuildWorking && info.Rank >= 2 {
			cancelled = true
			return refdb.Cancel
		}
		return refdb.Continue
	}))
	require.NoError(t, err, "cancellation is not an error")
	require.True(t, cancelled, "the Working callback fired at rank >= 2")

	assert.Greater(t, db.NumLines(), 0)
	assert.Greater(t, db.NumMarks(), 0)

	ids, err := db.BestMarks(geom.Pt{X: 0.5, Y: 0}, 3)
	require.NoError(t, err, "partial database answers queries")
	require.NotEmpty(t, ids)
	assert.True(t, db.Mark(ids[0]).P.Eq(geom.Pt{X: 0.5, Y: 0}),
		"the bottom-edge midpoint exists by rank 1")
}

// TestBuild_ContextCancel: a cancelled context stops the build the
// same way a Cancel decision does.
func TestBuild_ContextCancel(t *testing.T) {
	cfg := refdb.DefaultConfig()
	cfg.MaxRank = 10
	cfg.DatabaseStatusSkip = 500
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db, err := refdb.Build(cfg, refdb.WithContext(ctx))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, db.NumLines(), 4, "seeded originals survive")
}
