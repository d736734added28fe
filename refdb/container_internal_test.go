package refdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMark(key, rank int) Mark {
	return Mark{Key: key, Rank: rank, Kind: MarkIntersection}
}

// TestContainer_AddRejectsInvalidAndDuplicate checks the two discard
// rules: key 0 means "construction failed", and a key may be owned by
// at most one reference across all ranks and the buffer.
func TestContainer_AddRejectsInvalidAndDuplicate(t *testing.T) {
	c := newContainer[Mark](3)

	assert.False(t, c.add(newTestMark(0, 1)), "key 0 is never stored")
	assert.True(t, c.add(newTestMark(42, 1)), "fresh key accepted")
	assert.False(t, c.add(newTestMark(42, 2)), "buffered key rejected")
	assert.Equal(t, 1, c.total())

	c.flush()
	assert.False(t, c.add(newTestMark(42, 3)), "flushed key rejected")
	assert.Equal(t, 1, c.total())
}

// TestContainer_FlushPreservesInsertionOrder checks that flushing keeps
// buffer order in both the arena and the per-rank lists, so rebuilds
// are deterministic.
func TestContainer_FlushPreservesInsertionOrder(t *testing.T) {
	c := newContainer[Mark](2)
	require.True(t, c.add(newTestMark(30, 1)))
	require.True(t, c.add(newTestMark(10, 2)))
	require.True(t, c.add(newTestMark(20, 1)))
	c.flush()

	assert.Equal(t, 3, len(c.all))
	assert.Equal(t, 30, c.all[0].Key, "arena keeps insertion order")
	assert.Equal(t, 10, c.all[1].Key)
	assert.Equal(t, 20, c.all[2].Key)

	assert.Equal(t, []int{0, 2}, c.atRank(1), "rank list in insertion order")
	assert.Equal(t, []int{1}, c.atRank(2))
	assert.Nil(t, c.atRank(5), "out-of-range rank is empty")
}

// TestContainer_BufferDefersVisibility checks that pending references
// count toward total but are not iterable by rank until flushed.
func TestContainer_BufferDefersVisibility(t *testing.T) {
	c := newContainer[Mark](2)
	require.True(t, c.add(newTestMark(7, 1)))

	assert.Equal(t, 1, c.total())
	assert.Empty(t, c.atRank(1), "buffered refs stay out of rank lists")

	c.flush()
	assert.Equal(t, 1, c.total())
	assert.Len(t, c.atRank(1), 1)
}

// TestContainer_ClearMaps checks that releasing the key maps keeps the
// arena intact.
func TestContainer_ClearMaps(t *testing.T) {
	c := newContainer[Mark](1)
	require.True(t, c.add(newTestMark(5, 0)))
	c.flush()
	c.clearMaps()

	assert.Equal(t, 1, len(c.all), "arena survives clearMaps")
	assert.Len(t, c.atRank(0), 1, "rank lists survive clearMaps")
}
