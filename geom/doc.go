// Package geom provides the plane-geometry primitives used by the
// reference database: 2-vector points, lines in canonical
// (unit-normal, signed-distance) form, axis-aligned rectangles, and the
// Paper aggregate with its clipping and flap predicates.
//
// A Line is stored as (D, U) where U is a unit normal and D*U is the
// point on the line closest to the origin. (D, U) and (-D, -U) describe
// the same line; Paper keeps its edges and diagonals as built (the right
// edge has D < 0), and the database canonicalizes to D ≥ 0 before
// keying. All equality tests use the shared tolerance Eps.
package geom
