package refdb_test

import (
	"fmt"

	"github.com/wesen/referencefinder/geom"
	"github.com/wesen/referencefinder/refdb"
)

// ExampleBuild constructs a two-crease database on a unit square and
// looks up the center of the paper, which the two diagonals pin down
// exactly.
func ExampleBuild() {
	cfg := refdb.DefaultConfig()
	cfg.MaxRank = 2

	db, err := refdb.Build(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ids, err := db.BestMarks(geom.Pt{X: 0.5, Y: 0.5}, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m := db.Mark(ids[0])
	fmt.Printf("(%.1f,%.1f) rank %d err %.4f\n",
		m.P.X, m.P.Y, m.Rank, db.MarkDistance(ids[0], geom.Pt{X: 0.5, Y: 0.5}))
	// Output:
	// (0.5,0.5) rank 2 err 0.0000
}

// ExampleDatabase_BestLines folds the horizontal quarter line, showing
// that line targets work the same way as mark targets.
func ExampleDatabase_BestLines() {
	cfg := refdb.DefaultConfig()
	cfg.MaxRank = 3

	db, err := refdb.Build(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	target := geom.Line{D: 0.25, U: geom.Pt{X: 0, Y: 1}}
	ids, err := db.BestLines(target, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	l := db.Line(ids[0])
	u := l.L.U.Chop()
	fmt.Printf("d=%.2f u=(%.0f,%.0f) rank %d\n", l.L.D, u.X, u.Y, l.Rank)
	// Output:
	// d=0.25 u=(0,1) rank 2
}
