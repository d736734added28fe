package refdb

import "github.com/wesen/referencefinder/geom"

// newLineO3 brings line l1 onto line l2, creasing one of their two
// angle bisectors (root 0 or 1). Parallel lines have a single solution,
// assigned to root 0.
//
// With visibility enforced an on-edge parent moves; if neither parent
// is an edge, the alignment is still allowed when one parent's clipped
// endpoints both fold onto the paper, since the fold can then be sighted
// through the moving flap's boundary.
func (b *builder) newLineO3(l1, l2 LineID, root int) (Line, bool) {
	ll1 := b.db.lines.all[l1].L
	ll2 := b.db.lines.all[l2].L

	l := Line{
		Rank: 1 + b.db.lines.all[l1].Rank + b.db.lines.all[l2].Rank,
		Kind: LineO3,
		L1:   l1,
		L2:   l2,
		Root: root,
	}

	if ll1.ParallelTo(ll2) {
		if root != 0 {
			return Line{}, false // a single bisector only
		}
		l.L.U = ll1.U
		l.L.D = 0.5 * (ll1.D + ll2.D*ll2.U.Dot(ll1.U))
	} else {
		if root == 0 {
			l.L.U = ll1.U.Add(ll2.U).Normalize()
		} else {
			l.L.U = ll1.U.Sub(ll2.U).Normalize()
		}
		q, _ := ll1.Intersect(ll2)
		l.L.D = q.Dot(l.L.U)
	}

	if !b.paper.InteriorOverlaps(l.L) {
		return Line{}, false
	}

	if b.cfg.VisibilityMatters {
		switch {
		case b.lineOnEdge(l1):
			l.Moves = MovesL1
		case b.lineOnEdge(l2):
			l.Moves = MovesL2
		default:
			if lp1, lp2, ok := b.paper.ClipLine(ll1); ok &&
				b.paper.Encloses(l.L.Fold(lp1)) && b.paper.Encloses(l.L.Fold(lp2)) {
				l.Moves = MovesL1
			} else if lp1, lp2, ok := b.paper.ClipLine(ll2); ok &&
				b.paper.Encloses(l.L.Fold(lp1)) && b.paper.Encloses(l.L.Fold(lp2)) {
				l.Moves = MovesL2
			} else {
				return Line{}, false
			}
		}
	} else {
		l.Moves = MovesL1
	}

	if b.paper.MakesSkinnyFlap(l.L, b.cfg.MinAspectRatio) {
		return Line{}, false
	}
	finishLine(&l, b.cfg, b.paper)
	return l, true
}

// makeAllO3 builds every line-to-line bisector of the given rank,
// trying both roots of each pair.
func (b *builder) makeAllO3(rank int) error {
	for irank := 0; irank <= (rank-1)/2; irank++ {
		jrank := rank - 1 - irank
		same := irank == jrank
		lis := b.db.lines.atRank(irank)
		ljs := b.db.lines.atRank(jrank)
		for ii, li := range lis {
			inner := ljs
			if same {
				inner = lis[:ii]
			}
			for _, lj := range inner {
				for root := 0; root < 2; root++ {
					if b.lineFull() {
						return nil
					}
					l, ok := b.newLineO3(LineID(li), LineID(lj), root)
					if err := b.tryLine(l, ok); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// geomLine is a small accessor used by several constructors.
func (b *builder) geomLine(id LineID) geom.Line { return b.db.lines.all[id].L }
