package refdb

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/wesen/referencefinder/geom"
)

// CalcStatistics measures the accuracy of the database's marks over
// numTrials uniformly random target points. Each trial finds the single
// best mark for its point and records the error; the report histograms
// the errors into numBuckets buckets of width bucketSize and lists the
// empirical percentiles.
//
// The rng drives the trial points, so a fixed-seed source reproduces a
// run exactly; a nil rng falls back to a fixed seed. The progress
// callback, if any, sees StatBegin, one StatWorking per trial carrying
// the trial's error, and StatDone; answering Cancel truncates the run
// to the trials already measured.
func (db *Database) CalcStatistics(numTrials, numBuckets int, bucketSize float64, rng *rand.Rand, progress StatFunc) (string, error) {
	if numTrials <= 0 || numBuckets <= 0 || bucketSize <= 0 {
		return "", ErrBadOption
	}
	if len(db.marks.all) == 0 {
		return "", ErrEmptyDatabase
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	if progress != nil {
		progress(StatInfo{Phase: StatBegin})
	}

	buckets := make([]int, numBuckets)
	errs := make([]float64, 0, numTrials)

	actTrials := numTrials
	for i := 0; i < numTrials; i++ {
		testPt := geom.Pt{
			X: rng.Float64() * db.paper.Width,
			Y: rng.Float64() * db.paper.Height,
		}

		// The statistic is raw accuracy, so the closest mark wins here
		// regardless of rank.
		e := math.Inf(1)
		for j := range db.marks.all {
			if d := db.MarkDistance(MarkID(j), testPt); d < e {
				e = d
			}
		}
		errs = append(errs, e)

		bi := int(e / bucketSize)
		if bi >= numBuckets {
			bi = numBuckets - 1
		}
		buckets[bi]++

		if progress != nil &&
			progress(StatInfo{Phase: StatWorking, Index: i, Error: e}) == Cancel {
			actTrials = i + 1
			break
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Distribution of errors for %d trials:\n", actTrials)
	total := 0
	for i := 0; i < numBuckets-1; i++ {
		total += buckets[i]
		fmt.Fprintf(&sb, "error < %.3f = %d (%.1f%%)\n",
			bucketSize*float64(i+1), total,
			100*float64(total)/float64(actTrials))
	}
	fmt.Fprintf(&sb, "error > %.3f = %d (%.1f%%)\n",
		bucketSize*float64(numBuckets-1), actTrials-total,
		100*float64(actTrials-total)/float64(actTrials))

	sort.Float64s(errs)
	sb.WriteString("\nDistribution of errors:\n")
	for _, p := range []int{10, 20, 50, 80, 90, 95, 99} {
		q := stat.Quantile(float64(p)/100, stat.Empirical, errs, nil)
		fmt.Fprintf(&sb, "%dth percentile :%.4f\n", p, q)
	}

	if progress != nil {
		progress(StatInfo{Phase: StatDone})
	}
	return sb.String(), nil
}
