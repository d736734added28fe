package refdb_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/referencefinder/refdb"
)

// TestMesserCubeRoot validates the cubic alignment against Peter
// Messer's classical construction: the fold must carry the bottom-right
// corner to a point of the left edge at height y with (1-y)/y = ∛2.
func TestMesserCubeRoot(t *testing.T) {
	db, foldID, err := refdb.MesserCubeRoot()
	require.NoError(t, err)

	fold := db.Line(foldID)
	require.Equal(t, refdb.LineO6, fold.Kind)

	p := fold.L.Fold(db.Mark(fold.M1).P)
	require.True(t, db.Paper().LeftEdge.Contains(p), "the corner lands on the left edge")

	ratio := (1 - p.Y) / p.Y
	assert.InDelta(t, math.Cbrt(2), ratio, 1e-6,
		"the left edge is divided in the ratio cube-root-of-two to one")
}

// TestMesserCubeRoot_Parents checks the fold's recorded alignment: the
// bottom-right corner goes to the left edge while (1, 1/3) goes to the
// upper thirds line.
func TestMesserCubeRoot_Parents(t *testing.T) {
	db, foldID, err := refdb.MesserCubeRoot()
	require.NoError(t, err)

	fold := db.Line(foldID)
	p1 := db.Mark(fold.M1)
	assert.Equal(t, "bot right corner", p1.Name)

	l1 := db.Line(fold.L1)
	assert.Equal(t, "left edge", l1.Name)

	// The fold must actually perform the alignment it records.
	img1 := fold.L.Fold(p1.P)
	assert.True(t, l1.L.Contains(img1), "corner lands on the left edge")

	p2 := db.Mark(fold.M2)
	l2 := db.Line(fold.L2)
	img2 := fold.L.Fold(p2.P)
	assert.True(t, l2.L.Contains(img2), "(1,1/3) lands on the upper thirds line")
}
