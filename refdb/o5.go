package refdb

import (
	"math"

	"github.com/wesen/referencefinder/geom"
)

// newLineO5 brings mark m1 onto line l1 with the crease through mark
// m2. There are up to two solutions (root 0 and 1), the intersections
// of l1 with the circle about p2 through p1. A tangent circle collapses
// the two roots into one, so root 1 is skipped. Alignments where either
// point already lies on l1 are trivial and rejected.
func (b *builder) newLineO5(m1 MarkID, l1 LineID, m2 MarkID, root int) (Line, bool) {
	p1 := b.db.marks.all[m1].P
	ll1 := b.geomLine(l1)
	p2 := b.db.marks.all[m2].P

	if ll1.Contains(p1) || ll1.Contains(p2) {
		return Line{}, false
	}

	a := ll1.D - p2.Dot(ll1.U)
	b2 := p2.Sub(p1).Mag2() - a*a
	if b2 < 0 {
		return Line{}, false // the circle misses the line
	}
	bb := math.Sqrt(b2)
	if bb < geom.Eps && root == 1 {
		return Line{}, false // tangent case: roots coincide
	}

	p1p := p2.Add(ll1.U.Scale(a))
	if root == 0 {
		p1p = p1p.Add(ll1.U.Rot90().Scale(bb))
	} else {
		p1p = p1p.Sub(ll1.U.Rot90().Scale(bb))
	}
	if !b.paper.Encloses(p1p) {
		return Line{}, false
	}

	u := p1p.Sub(p1).Normalize()
	l := Line{
		L: geom.Line{D: p2.Dot(u), U: u},
		Rank: 1 + b.db.marks.all[m1].Rank + b.db.lines.all[l1].Rank +
			b.db.marks.all[m2].Rank,
		Kind: LineO5,
		M1:   m1,
		L1:   l1,
		M2:   m2,
		Root: root,
	}

	if b.cfg.VisibilityMatters {
		switch {
		case b.markOnEdge(m1):
			l.Moves = MovesP1
		case b.lineOnEdge(l1):
			l.Moves = MovesL1
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

// makeAllO5 builds every point-to-line-through-point crease of the
// given rank, registering both roots of every admissible triple. The
// two marks come from the same container, so the only excluded triples
// are those where they are the same mark.
func (b *builder) makeAllO5(rank int) error {
	for irank := 0; irank <= rank-1; irank++ {
		for jrank := 0; jrank <= rank-1-irank; jrank++ {
			krank := rank - 1 - irank - jrank
			for ii, mi := range b.db.marks.atRank(irank) {
				for _, lj := range b.db.lines.atRank(jrank) {
					for kk, mk := range b.db.marks.atRank(krank) {
						if irank == krank && ii == kk {
							continue
						}
						for root := 0; root < 2; root++ {
							if b.lineFull() {
								return nil
							}
							l, ok := b.newLineO5(MarkID(mi), LineID(lj), MarkID(mk), root)
							if err := b.tryLine(l, ok); err != nil {
								return err
							}
						}
					}
				}
			}
		}
	}
	return nil
}
