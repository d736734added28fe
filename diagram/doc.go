// Package diagram turns a reference from the database into something a
// person can fold: an ordered sequence of ancestor references, numbered
// labels (A, B, C… for creases, P, Q, R… for points), natural-language
// folding instructions, and a paginated list of diagram blocks rendered
// through a small callback interface.
//
// Rendering is host-agnostic. A host implements Dgmr, five primitive
// operations for points, lines, arcs, polygons and labels, and the
// package composes everything else on top, including the curved
// fold-and-unfold arrows. The bundled Verbal renderer writes text-only
// instructions to an io.Writer, suitable for console hosts.
package diagram
