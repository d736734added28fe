package refdb

import (
	"math"

	"github.com/wesen/referencefinder/geom"
)

// cubeRoot returns the real cube root for both positive and negative
// arguments.
func cubeRoot(x float64) float64 {
	if x >= 0 {
		return math.Pow(x, 1.0/3)
	}
	return -math.Pow(-x, 1.0/3)
}

// o6Roots sets up the cubic whose real roots parameterize the fold
// point on l1 for the simultaneous alignment p1→l1, p2→l2, and returns
// them in a fixed order (first the principal root, then the remaining
// ones). Degenerate tuples (a point already on its line, coincident
// points or lines, an ill-formed equation) yield no roots.
func (b *builder) o6Roots(m1 MarkID, l1 LineID, m2 MarkID, l2 LineID) []float64 {
	p1 := b.db.marks.all[m1].P
	ll1 := b.geomLine(l1)
	p2 := b.db.marks.all[m2].P
	ll2 := b.geomLine(l2)
	u1, d1 := ll1.U, ll1.D
	u2, d2 := ll2.U, ll2.D
	u1p := u1.Rot90()

	if ll1.Contains(p1) || ll2.Contains(p2) {
		return nil
	}
	if p1.Eq(p2) || ll1.Eq(ll2) {
		return nil
	}

	v1 := p1.Add(u1.Scale(d1)).Sub(p2.Scale(2))
	v2 := u1.Scale(d1).Sub(p1)

	c1 := p2.Dot(u2) - d2
	c2 := 2 * v2.Dot(u1p)
	c3 := v2.Dot(v2)
	c4 := v1.Add(v2).Dot(u1p)
	c5 := v1.Dot(v2)
	c6 := u1p.Dot(u2)
	c7 := v2.Dot(u2)

	// The equation is a·r³ + b·r² + c·r + d == 0; its order depends on
	// which leading coefficient is the first non-negligible one.
	a := c6
	bq := c1 + c4*c6 + c7
	c := c1*c2 + c5*c6 + c4*c7
	d := c1*c3 + c5*c7

	switch {
	case math.Abs(a) > geom.Eps: // cubic: Cardano's formula
		a2 := bq / a
		a1 := c / a
		a0 := d / a

		q := (3*a1 - a2*a2) / 9
		r := (9*a2*a1 - 27*a0 - 2*a2*a2*a2) / 54
		disc := q*q*q + r*r
		uu := -a2 / 3

		if disc > 0 { // one real root
			rd := math.Sqrt(disc)
			s := cubeRoot(r + rd)
			t := cubeRoot(r - rd)
			return []float64{uu + s + t}
		}
		if math.Abs(disc) < geom.Eps { // two real roots
			s := cubeRoot(r)
			return []float64{uu + 2*s, uu - s}
		}
		// three real roots
		rd := math.Sqrt(-disc)
		phi := math.Atan2(rd, r) / 3
		rs := math.Pow(r*r-disc, 1.0/6)
		sr := rs * math.Cos(phi)
		si := rs * math.Sin(phi)
		return []float64{uu + 2*sr, uu - sr - math.Sqrt(3)*si, uu - sr + math.Sqrt(3)*si}

	case math.Abs(bq) > geom.Eps: // quadratic
		disc := c*c - 4*bq*d
		q1 := -c / (2 * bq)
		if disc < 0 {
			return nil
		}
		if math.Abs(disc) < geom.Eps {
			return []float64{q1}
		}
		q2 := math.Sqrt(disc) / (2 * bq)
		return []float64{q1 + q2, q1 - q2}

	case math.Abs(c) > geom.Eps: // linear
		return []float64{-d / c}

	default: // ill-formed equation, no variables left
		return nil
	}
}

// newLineO6 validates one root of the cubic alignment: the images of
// both points must land on the paper, and with visibility enforced the
// moving pair is determined by whether p1 and p2 sit on the same side
// of the fold line (same side: both points or both lines move;
// opposite sides: one of each moves).
func (b *builder) newLineO6(m1 MarkID, l1 LineID, m2 MarkID, l2 LineID, root int, rc float64) (Line, bool) {
	p1 := b.db.marks.all[m1].P
	ll1 := b.geomLine(l1)
	p2 := b.db.marks.all[m2].P

	p1p := ll1.U.Scale(ll1.D).Add(ll1.U.Rot90().Scale(rc))
	if p1p.Eq(p1) {
		return Line{}, false // p1 must be off the fold line
	}

	u := p1p.Sub(p1).Normalize()
	d := u.Dot(geom.Mid(p1p, p1))
	gl := geom.Line{D: d, U: u}
	p2p := gl.Fold(p2)

	if !b.paper.Encloses(p1p) || !b.paper.Encloses(p2p) {
		return Line{}, false
	}

	l := Line{
		L: gl,
		Rank: 1 + b.db.marks.all[m1].Rank + b.db.lines.all[l1].Rank +
			b.db.marks.all[m2].Rank + b.db.lines.all[l2].Rank,
		Kind: LineO6,
		M1:   m1,
		L1:   l1,
		M2:   m2,
		L2:   l2,
		Root: root,
	}

	sameSide := (p1.Dot(u)-d)*(p2.Dot(u)-d) >= 0
	if b.cfg.VisibilityMatters {
		p1e, p2e := b.markOnEdge(m1), b.markOnEdge(m2)
		l1e, l2e := b.lineOnEdge(l1), b.lineOnEdge(l2)
		switch {
		case sameSide && p1e && p2e:
			l.Moves = MovesP1P2
		case sameSide && l1e && l2e:
			l.Moves = MovesL1L2
		case !sameSide && p1e && l2e:
			l.Moves = MovesP1L2
		case !sameSide && p2e && l1e:
			l.Moves = MovesP2L1
		default:
			return Line{}, false
		}
	} else {
		if sameSide {
			l.Moves = MovesP1P2
		} else {
			l.Moves = MovesP1L2
		}
	}

	if b.paper.MakesSkinnyFlap(l.L, b.cfg.MinAspectRatio) {
		return Line{}, false
	}
	finishLine(&l, b.cfg, b.paper)
	return l, true
}

// makeAllO6 builds every two-points-to-two-lines crease of the given
// rank. The parent ranks split into a point-sum and a line-sum; point
// order is irrelevant (diagonal rule) while line order matters, so the
// lines vary over all splits.
func (b *builder) makeAllO6(rank int) error {
	for psrank := 0; psrank <= rank-1; psrank++ {
		lsrank := rank - 1 - psrank
		for irank := 0; irank <= psrank/2; irank++ {
			jrank := psrank - irank
			psame := irank == jrank
			mis := b.db.marks.atRank(irank)
			mjs := b.db.marks.atRank(jrank)
			for krank := 0; krank <= lsrank; krank++ {
				lrank := lsrank - krank
				lks := b.db.lines.atRank(krank)
				lls := b.db.lines.atRank(lrank)
				for ii, mi := range mis {
					inner := mjs
					if psame {
						inner = mis[:ii]
					}
					for _, mj := range inner {
						for kk, lk := range lks {
							for ll, llid := range lls {
								if krank == lrank && kk == ll {
									continue // l1 and l2 must be distinct
								}
								roots := b.o6Roots(MarkID(mi), LineID(lk), MarkID(mj), LineID(llid))
								for root, rc := range roots {
									if b.lineFull() {
										return nil
									}
									l, ok := b.newLineO6(MarkID(mi), LineID(lk), MarkID(mj), LineID(llid), root, rc)
									if err := b.tryLine(l, ok); err != nil {
										return err
									}
								}
							}
						}
					}
				}
			}
		}
	}
	return nil
}
