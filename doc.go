// Package referencefinder computes short origami folding sequences that
// approximately locate an arbitrary point or line on a rectangular sheet
// of paper.
//
// 🚀 What is referencefinder?
//
//	A pure-Go engine that exhaustively enumerates the marks and creases
//	reachable from a sheet's edges, corners and diagonals using the seven
//	Huzita–Hatori single-fold axioms, then searches that database for the
//	folding sequence closest to a requested target:
//		• Geometry: points, canonical (unit-normal, distance) lines, the Paper
//		• Database: rank-bounded construction, bucketed deduplication, pruning
//		• Axioms: O1–O7 line constructors plus line×line intersection marks
//		• Search: best-N query under a combined (accuracy, rank) criterion
//		• Diagrams: folding-sequence reconstruction, captions, fold arrows
//
// ✨ Why choose referencefinder?
//
//   - Deterministic – identical configuration rebuilds an identical database
//   - Cooperative – progress hooks with cancellation, no hidden goroutines
//   - Pure Go – no cgo; rendering happens through a small callback interface
//   - Extensible – plug your own renderer into the diagram package
//
// Under the hood, everything is organized under three subpackages:
//
//	geom/    — Pt, Line, Rect and Paper primitives with clipping predicates
//	refdb/   — the reference database: build, query, statistics
//	diagram/ — folding sequences, verbal instructions and diagram layout
//
// Quick ASCII example:
//
//	    +───────+        Target (0.5, 0): fold the right edge to the
//	    │       │        left edge, then take the crease's intersection
//	    │   ·   │        with the bottom edge.
//	    +───●───+
//
// See the Example functions of refdb and diagram for runnable usage, and
// refdb.MesserCubeRoot for Peter Messer's crease-only construction of
// the cube root of two.
//
//	go get github.com/wesen/referencefinder/refdb
package referencefinder
