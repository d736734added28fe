package refdb

import (
	"fmt"

	"github.com/wesen/referencefinder/geom"
)

// MesserCubeRoot builds Peter Messer's crease-only construction of the
// cube root of two on a unit square and returns the database holding it
// together with the handle of the final fold line.
//
// The construction pins marks at the third points of the vertical
// edges, creases the two horizontal thirds lines through them, then
// performs the two-points-to-two-lines alignment that carries the
// bottom-right corner to the left edge and (1, 1/3) to the upper
// thirds line. The corner's image on the left edge divides that edge
// in the ratio ∛2 : 1 (the part above it to the part below it).
func MesserCubeRoot() (*Database, LineID, error) {
	cfg := DefaultConfig()
	paper := geom.NewPaper(cfg.PaperWidth, cfg.PaperHeight)
	paper.WidthText = "1"
	paper.HeightText = "1"

	db := &Database{
		cfg:   cfg,
		paper: paper,
		lines: newContainer[Line](cfg.MaxRank),
		marks: newContainer[Mark](cfg.MaxRank),
	}
	b := &builder{db: db, cfg: &db.cfg, paper: paper, opts: defaultBuildOptions()}

	b.addOriginalLine(paper.BottomEdge, 0, "bottom edge")
	b.addOriginalLine(paper.LeftEdge, 0, "left edge")
	b.addOriginalLine(paper.RightEdge, 0, "right edge")
	b.addOriginalLine(paper.TopEdge, 0, "top edge")

	b.addOriginalMark(paper.BotLeft, 0, "bot left corner")
	b.addOriginalMark(paper.BotRight, 0, "bot right corner")
	b.addOriginalMark(paper.TopLeft, 0, "top left corner")
	b.addOriginalMark(paper.TopRight, 0, "top right corner")

	b.addOriginalMark(geom.Pt{X: 0, Y: 1.0 / 3}, 0, "(0, 1/3)")
	b.addOriginalMark(geom.Pt{X: 1, Y: 1.0 / 3}, 0, "(1, 1/3)")
	b.addOriginalMark(geom.Pt{X: 0, Y: 2.0 / 3}, 0, "(0, 2/3)")
	b.addOriginalMark(geom.Pt{X: 1, Y: 2.0 / 3}, 0, "(1, 2/3)")
	db.lines.flush()
	db.marks.flush()

	const (
		leftEdge     = LineID(1)
		botRight     = MarkID(1)
		thirdRight   = MarkID(5)
		lowerThirdsA = MarkID(4)
		upperThirdsA = MarkID(6)
		upperThirdsB = MarkID(7)
	)

	lower, ok := b.newLineO1(lowerThirdsA, thirdRight)
	if !ok {
		return nil, 0, fmt.Errorf("refdb: lower thirds crease is invalid")
	}
	db.lines.add(lower)
	upper, ok := b.newLineO1(upperThirdsA, upperThirdsB)
	if !ok {
		return nil, 0, fmt.Errorf("refdb: upper thirds crease is invalid")
	}
	db.lines.add(upper)
	db.lines.flush()

	upperID := LineID(5)

	roots := b.o6Roots(botRight, leftEdge, thirdRight, upperID)
	if len(roots) == 0 {
		return nil, 0, fmt.Errorf("refdb: cube root alignment has no solution")
	}
	fold, ok := b.newLineO6(botRight, leftEdge, thirdRight, upperID, 0, roots[0])
	if !ok {
		return nil, 0, fmt.Errorf("refdb: cube root fold failed validation")
	}
	db.lines.add(fold)
	db.lines.flush()

	db.lines.clearMaps()
	db.marks.clearMaps()

	return db, LineID(6), nil
}
