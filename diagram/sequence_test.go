package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/referencefinder/diagram"
	"github.com/wesen/referencefinder/geom"
	"github.com/wesen/referencefinder/refdb"
)

// buildDB constructs the shared two-crease test database.
func buildDB(t *testing.T, maxRank int) *refdb.Database {
	t.Helper()
	cfg := refdb.DefaultConfig()
	cfg.MaxRank = maxRank
	cfg.MaxLines = 20000
	cfg.MaxMarks = 20000
	db, err := refdb.Build(cfg)
	require.NoError(t, err)
	return db
}

// bottomMidpoint finds the mark at (0.5, 0) in the database.
func bottomMidpoint(t *testing.T, db *refdb.Database) refdb.MarkID {
	t.Helper()
	ids, err := db.BestMarks(geom.Pt{X: 0.5, Y: 0}, 1)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	require.True(t, db.Mark(ids[0]).P.Eq(geom.Pt{X: 0.5, Y: 0}))
	return ids[0]
}

// TestNewSequence_BottomMidpoint walks the ancestor linearization of
// the bottom-edge midpoint: the edges involved, the center crease, and
// the intersection mark last.
func TestNewSequence_BottomMidpoint(t *testing.T) {
	db := buildDB(t, 2)
	target := diagram.MarkRef(bottomMidpoint(t, db))
	seq := diagram.NewSequence(db, target)

	require.Len(t, seq.Refs, 5, "three edges, one crease, one mark")
	assert.Equal(t, target, seq.Refs[len(seq.Refs)-1], "target comes last")

	// Parents precede children throughout.
	seen := make(map[diagram.Ref]bool)
	for _, r := range seq.Refs {
		if r.IsLine {
			l := db.Line(r.Line)
			if l.Kind == refdb.LineO3 {
				assert.True(t, seen[diagram.LineRef(l.L1)], "parent line before child")
				assert.True(t, seen[diagram.LineRef(l.L2)], "parent line before child")
			}
		} else {
			m := db.Mark(r.Mark)
			if m.Kind == refdb.MarkIntersection {
				assert.True(t, seen[diagram.LineRef(m.L1)], "parent line before mark")
				assert.True(t, seen[diagram.LineRef(m.L2)], "parent line before mark")
			}
		}
		seen[r] = true
	}
}

// TestSequence_LabelsAndNames: derived references get letters, while
// originals keep their names and stay unlabelled.
func TestSequence_LabelsAndNames(t *testing.T) {
	db := buildDB(t, 2)
	seq := diagram.NewSequence(db, diagram.MarkRef(bottomMidpoint(t, db)))

	var lineLabels, markLabels []string
	for _, r := range seq.Refs {
		label := seq.Label(r)
		if label == "" {
			continue
		}
		if r.IsLine {
			lineLabels = append(lineLabels, label)
		} else {
			markLabels = append(markLabels, label)
		}
	}
	assert.Equal(t, []string{"A"}, lineLabels)
	assert.Equal(t, []string{"P"}, markLabels)

	assert.Equal(t, "the bottom edge", seq.Name(seq.Refs[0]))
	assert.Equal(t, "point P", seq.Name(seq.Refs[len(seq.Refs)-1]))
}

// TestSequence_Howto pins the instruction text for the midpoint
// construction.
func TestSequence_Howto(t *testing.T) {
	db := buildDB(t, 2)
	seq := diagram.NewSequence(db, diagram.MarkRef(bottomMidpoint(t, db)))
	opt := diagram.DefaultOptions()

	_, ok := seq.Howto(seq.Refs[0], opt)
	assert.False(t, ok, "originals need no instruction")

	var texts []string
	for _, r := range seq.Refs {
		if text, ok := seq.Howto(r, opt); ok {
			texts = append(texts, text)
		}
	}
	require.Len(t, texts, 2)
	assert.Equal(t, "[03] Fold the right edge to the left edge, making line A", texts[0])
	assert.Equal(t,
		"The intersection of the bottom edge with line A is point P = (0.5000,0.0000)",
		texts[1])
}

// TestSequence_HowtoWithoutClarifiers drops axiom prefixes and
// coordinate clarifiers.
func TestSequence_HowtoWithoutClarifiers(t *testing.T) {
	db := buildDB(t, 2)
	seq := diagram.NewSequence(db, diagram.MarkRef(bottomMidpoint(t, db)))
	opt := diagram.Options{}

	var texts []string
	for _, r := range seq.Refs {
		if text, ok := seq.Howto(r, opt); ok {
			texts = append(texts, text)
		}
	}
	require.Len(t, texts, 2)
	assert.Equal(t, "Fold the right edge to the left edge, making line A", texts[0])
	assert.Equal(t,
		"The intersection of the bottom edge with line A is point P", texts[1])
}

// TestSequence_Blocks partitions the midpoint sequence into the fold
// diagram and the closing intersection diagram.
func TestSequence_Blocks(t *testing.T) {
	db := buildDB(t, 2)
	seq := diagram.NewSequence(db, diagram.MarkRef(bottomMidpoint(t, db)))

	blocks := seq.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, diagram.Block{Def: 0, Act: 3}, blocks[0])
	assert.Equal(t, diagram.Block{Def: 4, Act: 4}, blocks[1])

	opt := diagram.DefaultOptions()
	assert.Equal(t,
		"[03] Fold the right edge to the left edge, making line A. ",
		seq.Caption(blocks[0], opt))
	assert.Equal(t,
		"The intersection of the bottom edge with line A is point P = (0.5000,0.0000). ",
		seq.Caption(blocks[1], opt))
}

// TestSequence_OriginalTarget: a corner needs no folds, but still gets
// one (empty) diagram.
func TestSequence_OriginalTarget(t *testing.T) {
	db := buildDB(t, 1)
	ids, err := db.BestMarks(geom.Pt{X: 0, Y: 0}, 1)
	require.NoError(t, err)
	seq := diagram.NewSequence(db, diagram.MarkRef(ids[0]))

	require.Len(t, seq.Refs, 1)
	blocks := seq.Blocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, diagram.Block{Def: 0, Act: 0}, blocks[0])
	assert.Empty(t, seq.Caption(blocks[0], diagram.DefaultOptions()))
}
