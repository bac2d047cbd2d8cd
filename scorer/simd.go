// Package scorer implements the full SIMD scorer (spec.md §4.4), its
// traceback operations (§4.5), and the greedy left-to-right fallback used
// for candidates too long for any bucket (§4.6).
package scorer

import (
	"bytes"

	"github.com/coregx/fuzzymatch/lane"
	"github.com/coregx/fuzzymatch/scoring"
)

// Result is the output of scoring one bucket drain: a column-major batch
// of L candidates sharing width W.
type Result struct {
	Scores   []uint16
	Exact    []bool
	Haystack *lane.Haystack
	// Matrix holds one row per needle character when traceback was
	// requested, nil otherwise (spec.md §4.4 step 4: "retained iff the
	// caller needs typo counts or indices").
	Matrix [][][]uint16
}

// Score runs the full alignment recurrence for one needle against one
// bucket of candidates, all sharing bucket width w and lane count l.
// candidates must have length l; unused trailing lanes (a partially
// filled final bucket drain) should be padded with empty byte slices by
// the caller.
func Score(needle []byte, candidates [][]byte, w, l int, maxTypos *uint16, needTraceback bool, s scoring.Scoring) *Result {
	padded := lane.PadCandidates(candidates, w)
	cols := lane.Interleave(padded, w, l)
	hc := lane.PrecomputeHaystack(cols, w, l)

	needleClassified := make([]lane.Classified, len(needle))
	for i, b := range needle {
		needleClassified[i] = lane.Classify(b)
	}
	n := len(needleClassified)

	var prevRow [][]uint16
	runningMax := make([]uint16, l)

	var matrix [][][]uint16
	if needTraceback {
		matrix = make([][][]uint16, n)
	}

	for i, nc := range needleClassified {
		start, end := 0, w
		if maxTypos != nil {
			t := int(*maxTypos)
			start = i - t
			if start < 0 {
				start = 0
			}
			end = w + i + t - n
			if end > w {
				end = w
			}
			if end < start {
				end = start
			}
		}

		row := lane.StepNeedleChar(prevRow, nc, hc, start, end, s)
		for j := start; j < end; j++ {
			for ln := 0; ln < l; ln++ {
				if row[j][ln] > runningMax[ln] {
					runningMax[ln] = row[j][ln]
				}
			}
		}
		if needTraceback {
			matrix[i] = row
		}
		prevRow = row
	}

	exact := make([]bool, l)
	for ln := 0; ln < l && ln < len(candidates); ln++ {
		if bytes.Equal(candidates[ln], needle) {
			exact[ln] = true
			runningMax[ln] += s.ExactMatchBonus
		}
	}

	return &Result{Scores: runningMax, Exact: exact, Haystack: hc, Matrix: matrix}
}
