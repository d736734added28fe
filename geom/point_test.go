package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wesen/referencefinder/geom"
)

// TestPt_Arithmetic covers the basic vector operations.
func TestPt_Arithmetic(t *testing.T) {
	p := geom.Pt{3, 4}
	q := geom.Pt{1, -2}

	assert.Equal(t, geom.Pt{4, 2}, p.Add(q), "Add")
	assert.Equal(t, geom.Pt{2, 6}, p.Sub(q), "Sub")
	assert.Equal(t, geom.Pt{6, 8}, p.Scale(2), "Scale")
	assert.Equal(t, -5.0, p.Dot(q), "Dot")
	assert.Equal(t, 25.0, p.Mag2(), "Mag2")
	assert.Equal(t, 5.0, p.Mag(), "Mag")
}

// TestPt_Rotations checks the 90° and arbitrary-angle rotations.
func TestPt_Rotations(t *testing.T) {
	p := geom.Pt{1, 0}
	assert.Equal(t, geom.Pt{0, 1}, p.Rot90(), "Rot90 of x-axis is y-axis")

	r := p.RotCCW(math.Pi / 2)
	assert.InDelta(t, 0, r.X, geom.Eps, "quarter turn X")
	assert.InDelta(t, 1, r.Y, geom.Eps, "quarter turn Y")
}

// TestPt_NormalizeChopEq covers unit scaling, chopping and tolerant
// equality.
func TestPt_NormalizeChopEq(t *testing.T) {
	n := geom.Pt{3, 4}.Normalize()
	assert.InDelta(t, 1, n.Mag(), geom.Eps, "normalized magnitude")

	c := geom.Pt{1e-12, 0.5}.Chop()
	assert.Equal(t, geom.Pt{0, 0.5}, c, "Chop zeroes tiny coordinates")

	assert.True(t, geom.Pt{0, 0}.Eq(geom.Pt{1e-9, -1e-9}), "Eq within Eps")
	assert.False(t, geom.Pt{0, 0}.Eq(geom.Pt{1e-7, 0}), "Eq beyond Eps")
}

// TestMid checks the midpoint helper.
func TestMid(t *testing.T) {
	assert.Equal(t, geom.Pt{0.5, 1}, geom.Mid(geom.Pt{0, 0}, geom.Pt{1, 2}))
}
