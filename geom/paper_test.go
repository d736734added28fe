package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/referencefinder/geom"
)

// TestNewPaper checks that corners, edges and diagonals are derived
// consistently from the dimensions.
func TestNewPaper(t *testing.T) {
	p := geom.NewPaper(1, 1)

	assert.Equal(t, geom.Pt{0, 0}, p.BotLeft)
	assert.Equal(t, geom.Pt{1, 1}, p.TopRight)
	assert.True(t, p.BottomEdge.Contains(geom.Pt{0.5, 0}))
	assert.True(t, p.LeftEdge.Contains(geom.Pt{0, 0.5}))
	assert.True(t, p.UpwardDiagonal.Contains(geom.Pt{0.5, 0.5}))
	assert.True(t, p.DownwardDiagonal.Contains(geom.Pt{0.5, 0.5}))
	assert.True(t, p.IsEdge(p.TopEdge))
	assert.False(t, p.IsEdge(p.UpwardDiagonal))
	assert.True(t, p.EdgeContains(geom.Pt{1, 0.25}))
	assert.False(t, p.EdgeContains(geom.Pt{0.5, 0.5}))
}

// TestPaper_ClipLine clips lines against the unit square.
func TestPaper_ClipLine(t *testing.T) {
	p := geom.NewPaper(1, 1)

	// A vertical line through x = 0.25 spans the full height.
	v := geom.LineFromPoints(geom.Pt{0.25, -5}, geom.Pt{0.25, 5})
	a, b, ok := p.ClipLine(v)
	require.True(t, ok)
	seg := geom.Bound(a, b)
	assert.True(t, seg.BL.Eq(geom.Pt{0.25, 0}), "bottom endpoint")
	assert.True(t, seg.TR.Eq(geom.Pt{0.25, 1}), "top endpoint")

	// A line far outside the paper misses entirely.
	far := geom.LineFromPoints(geom.Pt{5, 0}, geom.Pt{5, 1})
	_, _, ok = p.ClipLine(far)
	assert.False(t, ok, "line outside the paper")
}

// TestPaper_InteriorOverlaps covers the corner-graze and
// edge-coincident rejections.
func TestPaper_InteriorOverlaps(t *testing.T) {
	p := geom.NewPaper(1, 1)

	assert.True(t, p.InteriorOverlaps(p.UpwardDiagonal), "diagonal crosses interior")
	assert.False(t, p.InteriorOverlaps(p.BottomEdge), "edge is not interior")

	// x + y = 0 touches the paper only at the bottom-left corner.
	graze := geom.LineFromPoints(geom.Pt{-1, 1}, geom.Pt{1, -1})
	assert.False(t, p.InteriorOverlaps(graze), "corner graze is not interior")

	mid := geom.LineFromPoints(geom.Pt{0.5, 0}, geom.Pt{0.5, 1})
	assert.True(t, p.InteriorOverlaps(mid), "interior vertical line")
}

// TestPaper_MakesSkinnyFlap checks the aspect-ratio cutoff on the unit
// square.
func TestPaper_MakesSkinnyFlap(t *testing.T) {
	p := geom.NewPaper(1, 1)
	const minAspect = 0.1

	near := geom.LineFromPoints(geom.Pt{0.001, 0}, geom.Pt{0.001, 1})
	assert.True(t, p.MakesSkinnyFlap(near, minAspect), "sliver next to the left edge")

	center := geom.LineFromPoints(geom.Pt{0.5, 0}, geom.Pt{0.5, 1})
	assert.False(t, p.MakesSkinnyFlap(center, minAspect), "book fold is fine")

	assert.False(t, p.MakesSkinnyFlap(p.UpwardDiagonal, minAspect), "diagonal fold is fine")
}
