package refdb

import "github.com/wesen/referencefinder/geom"

// newLineO1 creases through the two marks m1 and m2. Always visible;
// rejected only when it would leave a skinny flap.
func (b *builder) newLineO1(m1, m2 MarkID) (Line, bool) {
	p1 := b.db.marks.all[m1].P
	p2 := b.db.marks.all[m2].P

	u := p2.Sub(p1).Rot90().Normalize()
	l := Line{
		L:    geom.Line{D: p1.Add(p2).Dot(u) * 0.5, U: u},
		Rank: 1 + b.db.marks.all[m1].Rank + b.db.marks.all[m2].Rank,
		Kind: LineO1,
		M1:   m1,
		M2:   m2,
	}
	if b.paper.MakesSkinnyFlap(l.L, b.cfg.MinAspectRatio) {
		return Line{}, false
	}
	finishLine(&l, b.cfg, b.paper)
	return l, true
}

// makeAllO1 builds every crease-through-two-points of the given rank.
// The pair enumeration is symmetric, so within equal parent ranks each
// unordered pair is visited once.
func (b *builder) makeAllO1(rank int) error {
	for irank := 0; irank <= (rank-1)/2; irank++ {
		jrank := rank - 1 - irank
		same := irank == jrank
		mis := b.db.marks.atRank(irank)
		mjs := b.db.marks.atRank(jrank)
		for ii, mi := range mis {
			inner := mjs
			if same {
				inner = mis[:ii]
			}
			for _, mj := range inner {
				if b.lineFull() {
					return nil
				}
				l, ok := b.newLineO1(MarkID(mi), MarkID(mj))
				if err := b.tryLine(l, ok); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
