// Package refdb builds and searches the reference database at the heart
// of referencefinder.
//
// A database holds every mark (point) and line reachable from a sheet's
// edges, corners and diagonals within a bounded number of creases
// (the rank), enumerated with the seven Huzita–Hatori single-fold
// axioms. Construction is exhaustive but pruned three ways:
//
//   - geometric validity: every crease must overlap the paper's
//     interior, must not leave a flap skinnier than MinAspectRatio, and
//     every alignment's moving points must land on the paper;
//   - visibility: with VisibilityMatters set, alignments must be
//     performable on opaque paper, so the moving elements must lie on an
//     edge where they can be seen;
//   - bucketed uniqueness: each reference is keyed by discretizing its
//     coordinates (NumX×NumY buckets for marks, NumA×NumD for lines) and
//     at most one reference may own a bucket; the first constructor to
//     produce a valid candidate for a key wins, and the invocation order
//     of the constructors is chosen so that easier-to-fold creases win.
//
// Build drives construction rank by rank, reporting progress through an
// optional callback that may cancel cooperatively; a cancelled build
// returns a smaller but internally consistent database. BestMarks and
// BestLines search the finished database under a combined
// (accuracy, rank) criterion: once two candidates are both within
// GoodEnoughError of the target, the lower-rank (simpler-to-fold) one
// is preferred.
//
// Errors (sentinel):
//
//	– ErrBadDimensions   if a paper dimension is not positive.
//	– ErrKeyOverflow     if a key-division product overflows int.
//	– ErrNoAxioms        if every axiom is disabled.
//	– ErrBadOption       if a threshold, cap or division is out of range.
//	– ErrTargetOutOfRange if a query target lies off the paper.
//	– ErrDegenerateTarget if a target line's defining points coincide.
//	– ErrEmptyDatabase   if statistics are requested with no marks built.
package refdb
