package refdb

// keyed is the behavior a container needs from its element type.
type keyed interface {
	refKey() int
	refRank() int
}

// container stores one family of references (marks or lines). It keeps
//
//   - all: the flat arena, in flush order; a reference's index here is
//     its public ID;
//   - ranks: per-rank lists of arena indices, preserving insertion
//     order, used to drive the constructors' rank enumeration;
//   - maps: per-rank key→index maps, used for the uniqueness test and
//     released once building finishes;
//   - buf/order: the pending additions of the current construction
//     pass.
//
// Constructors iterate the rank lists while producing new candidates,
// so new references must not land in those lists mid-pass: candidates
// accumulate in the buffer and move into the rank structures only at
// flush, which the builder calls at rank boundaries.
type container[R keyed] struct {
	all   []R
	ranks [][]int
	maps  []map[int]int
	buf   map[int]R
	order []int
}

func newContainer[R keyed](maxRank int) container[R] {
	c := container[R]{
		ranks: make([][]int, maxRank+1),
		maps:  make([]map[int]int, maxRank+1),
		buf:   make(map[int]R),
	}
	for i := range c.maps {
		c.maps[i] = make(map[int]int)
	}
	return c
}

// total counts the flushed and pending references together; population
// caps compare against this.
func (c *container[R]) total() int { return len(c.all) + len(c.order) }

// contains reports whether any rank map or the buffer already owns key.
func (c *container[R]) contains(key int) bool {
	for _, m := range c.maps {
		if _, ok := m[key]; ok {
			return true
		}
	}
	_, ok := c.buf[key]
	return ok
}

// add buffers r if it was validly constructed (nonzero key) and its key
// is unowned. Reports whether r was accepted.
func (c *container[R]) add(r R) bool {
	key := r.refKey()
	if key == 0 || c.contains(key) {
		return false
	}
	c.buf[key] = r
	c.order = append(c.order, key)
	return true
}

// flush moves the buffered references into the arena and the rank
// structures, preserving insertion order.
func (c *container[R]) flush() {
	for _, key := range c.order {
		r := c.buf[key]
		idx := len(c.all)
		c.all = append(c.all, r)
		c.ranks[r.refRank()] = append(c.ranks[r.refRank()], idx)
		c.maps[r.refRank()][key] = idx
	}
	c.buf = make(map[int]R)
	c.order = c.order[:0]
}

// atRank returns the arena indices of the flushed references of the
// given rank, in insertion order.
func (c *container[R]) atRank(rank int) []int {
	if rank < 0 || rank >= len(c.ranks) {
		return nil
	}
	return c.ranks[rank]
}

// clearMaps releases the key maps once construction is done; the arena
// and rank lists remain for queries and sequence reconstruction.
func (c *container[R]) clearMaps() {
	for i := range c.maps {
		c.maps[i] = nil
	}
}
