package refdb

import (
	"math"

	"github.com/wesen/referencefinder/geom"
)

// newLineO7 brings line l2 onto itself while mark m1 lands on line l1:
// the crease is perpendicular to l2 and positioned so that the image of
// p1 falls on l1. No solution exists when the crease direction is
// parallel to l1.
//
// With visibility enforced, the fold-line endpoint on the p1 side of
// l2 belongs to the flap that carries the moving element: p1 may move
// only if its side is the shorter one, l1 only if its side is the
// longer one.
func (b *builder) newLineO7(l1 LineID, m1 MarkID, l2 LineID) (Line, bool) {
	ll1 := b.geomLine(l1)
	p1 := b.db.marks.all[m1].P
	ll2 := b.geomLine(l2)

	u := ll2.U.Rot90()
	uf1 := u.Dot(ll1.U)
	if math.Abs(uf1) < geom.Eps {
		return Line{}, false // parallel, no solution
	}
	d := (ll1.D + 2*p1.Dot(u)*uf1 - p1.Dot(ll1.U)) / (2 * uf1)
	gl := geom.Line{D: d, U: u}

	pt, ok := gl.Intersect(ll2)
	if !ok || !b.paper.Encloses(pt) {
		return Line{}, false
	}
	p1p := gl.Fold(p1)
	if !b.paper.Encloses(p1p) {
		return Line{}, false
	}
	if ll1.Contains(p1) {
		return Line{}, false // alignment would be ill-defined
	}

	l := Line{
		L: gl,
		Rank: 1 + b.db.lines.all[l1].Rank + b.db.marks.all[m1].Rank +
			b.db.lines.all[l2].Rank,
		Kind: LineO7,
		L1:   l1,
		M1:   m1,
		L2:   l2,
	}

	if b.cfg.VisibilityMatters {
		lp1, lp2, ok := b.paper.ClipLine(gl)
		if !ok {
			return Line{}, false
		}
		dir := u.Rot90()
		t1 := lp1.Sub(pt).Dot(dir)
		t2 := lp2.Sub(pt).Dot(dir)
		tp := p1.Sub(pt).Dot(dir)
		if t1*tp < 0 {
			t1, t2 = t2, t1
		}
		// t1 now parameterizes the endpoint on the p1 side of l2.
		switch {
		case b.markOnEdge(m1) && math.Abs(t1) <= math.Abs(t2):
			l.Moves = MovesP1
		case b.lineOnEdge(l1) && math.Abs(t1) >= math.Abs(t2):
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

// makeAllO7 builds every line-to-self-point-to-line crease of the given
// rank. The two lines come from the same container, so triples where
// they coincide are skipped.
func (b *builder) makeAllO7(rank int) error {
	for irank := 0; irank <= rank-1; irank++ {
		for jrank := 0; jrank <= rank-1-irank; jrank++ {
			krank := rank - 1 - irank - jrank
			for ii, li := range b.db.lines.atRank(irank) {
				for _, mj := range b.db.marks.atRank(jrank) {
					for kk, lk := range b.db.lines.atRank(krank) {
						if irank == krank && ii == kk {
							continue
						}
						if b.lineFull() {
							return nil
						}
						l, ok := b.newLineO7(LineID(li), MarkID(mj), LineID(lk))
						if err := b.tryLine(l, ok); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}
