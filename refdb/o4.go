package refdb

import "github.com/wesen/referencefinder/geom"

// newLineO4 brings line l1 onto itself with the crease through mark
// m1, i.e. the perpendicular to l1 through the point. Always visible.
// The foot of the perpendicular must land on the paper or the fold
// cannot be aligned against l1.
func (b *builder) newLineO4(l1 LineID, m1 MarkID) (Line, bool) {
	ll1 := b.geomLine(l1)
	p1 := b.db.marks.all[m1].P

	u := ll1.U.Rot90()
	l := Line{
		L:    geom.Line{D: p1.Dot(u), U: u},
		Rank: 1 + b.db.lines.all[l1].Rank + b.db.marks.all[m1].Rank,
		Kind: LineO4,
		L1:   l1,
		M1:   m1,
	}

	proj := p1.Add(ll1.U.Scale(ll1.D - p1.Dot(ll1.U)))
	if !b.paper.Encloses(proj) {
		return Line{}, false
	}
	if b.paper.MakesSkinnyFlap(l.L, b.cfg.MinAspectRatio) {
		return Line{}, false
	}
	finishLine(&l, b.cfg, b.paper)
	return l, true
}

// makeAllO4 builds every line-to-self-through-point crease of the
// given rank. The pairing is asymmetric (one line, one mark), so all
// rank splits are enumerated.
func (b *builder) makeAllO4(rank int) error {
	for irank := 0; irank <= rank-1; irank++ {
		jrank := rank - 1 - irank
		for _, li := range b.db.lines.atRank(irank) {
			for _, mj := range b.db.marks.atRank(jrank) {
				if b.lineFull() {
					return nil
				}
				l, ok := b.newLineO4(LineID(li), MarkID(mj))
				if err := b.tryLine(l, ok); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
