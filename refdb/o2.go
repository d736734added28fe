package refdb

import "github.com/wesen/referencefinder/geom"

// newLineO2 brings mark m1 onto mark m2, creasing their perpendicular
// bisector. With visibility enforced, whichever of the two points lies
// on an edge becomes the mover; if neither does, the alignment cannot
// be performed on opaque paper and is rejected.
func (b *builder) newLineO2(m1, m2 MarkID) (Line, bool) {
	p1 := b.db.marks.all[m1].P
	p2 := b.db.marks.all[m2].P

	u := p2.Sub(p1).Normalize()
	l := Line{
		L:    geom.Line{D: p1.Add(p2).Dot(u) * 0.5, U: u},
		Rank: 1 + b.db.marks.all[m1].Rank + b.db.marks.all[m2].Rank,
		Kind: LineO2,
		M1:   m1,
		M2:   m2,
	}

	if b.cfg.VisibilityMatters {
		switch {
		case b.markOnEdge(m1):
			l.Moves = MovesP1
		case b.markOnEdge(m2):
			l.Moves = MovesP2
		default:
			return Line{}, false
		}
	} else {
		l.Moves = MovesP1
	}

	if b.paper.MakesSkinnyFlap(l.L, b.cfg.MinAspectRatio) {
		return Line{}, false
	}
	finishLine(&l, b.cfg, b.paper)
	return l, true
}

// makeAllO2 builds every point-to-point crease of the given rank.
func (b *builder) makeAllO2(rank int) error {
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
				l, ok := b.newLineO2(MarkID(mi), MarkID(mj))
				if err := b.tryLine(l, ok); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
