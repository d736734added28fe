package refdb

import "math"

// newMarkIntersection crosses two reference lines. The crossing must
// fall on the paper, and the lines must meet at an angle whose sine is
// at least MinAngleSine; near-parallel crossings make imprecise
// reference points.
func (b *builder) newMarkIntersection(l1, l2 LineID) (Mark, bool) {
	ll1 := b.geomLine(l1)
	ll2 := b.geomLine(l2)

	p, ok := ll1.Intersect(ll2)
	if !ok {
		return Mark{}, false
	}
	if !b.paper.Encloses(p) {
		return Mark{}, false
	}
	if math.Abs(ll1.U.Dot(ll2.U.Rot90())) < b.cfg.MinAngleSine {
		return Mark{}, false
	}

	m := Mark{
		P:    p,
		Rank: b.db.lines.all[l1].Rank + b.db.lines.all[l2].Rank,
		Kind: MarkIntersection,
		L1:   l1,
		L2:   l2,
	}
	finishMark(&m, b.cfg, b.paper)
	return m, true
}

// makeAllIntersections builds every intersection mark of the given
// rank; a mark's rank is the sum of its parent line ranks. Runs after
// the rank's lines have flushed, so same-rank lines participate.
func (b *builder) makeAllIntersections(rank int) error {
	for irank := 0; irank <= rank/2; irank++ {
		jrank := rank - irank
		same := irank == jrank
		lis := b.db.lines.atRank(irank)
		ljs := b.db.lines.atRank(jrank)
		for ii, li := range lis {
			inner := ljs
			if same {
				inner = lis[:ii]
			}
			for _, lj := range inner {
				if b.markFull() {
					return nil
				}
				m, ok := b.newMarkIntersection(LineID(li), LineID(lj))
				if err := b.tryMark(m, ok); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
