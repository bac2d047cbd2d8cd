package incremental

import (
	"github.com/coregx/fuzzymatch/lane"
	"github.com/coregx/fuzzymatch/scoring"
)

// unfiltered is the "never" sentinel for filteredAt (spec.md §3 "Incremental
// candidate state": filtered_at records the needle-prefix length a
// candidate was first rejected at, or "never").
const unfiltered = -1

// candidate is one retained haystack's incremental scoring state (spec.md
// §3 "Incremental candidate state", §4.8). Unlike the one-shot scorer,
// which batches L candidates per bucket into a single lane-parallel call,
// each candidate here keeps its own single-lane matrix: the one-shot
// bucket batches candidates that arrive together in one call, but an
// incremental candidate's matrix must survive independently across many
// separate match_needle calls, truncated and extended at its own pace as
// the prefilter may re-filter or re-admit it independently of its
// bucket-mates. lane.StepNeedleChar takes its lane count L from the
// Haystack it is given; L=1 is a valid, fully correct specialization of
// the same recurrence.
type candidate struct {
	data   []byte // zero-padded to width
	rawLen int
	width  int
	index  uint32

	haystack *lane.Haystack // precomputed once; independent of query

	// matrix holds one row per committed needle character, in the same
	// [row][column][lane] shape scorer.Result.Matrix uses (lane 0 only),
	// so the existing traceback helpers apply unmodified. Each row is
	// self-contained: lane.StepNeedleChar's affine-gap masks reset at the
	// top of every needle character rather than persisting across rows
	// (spec.md §4.11), so truncating the matrix back to an earlier row
	// needs no extra bookkeeping beyond the rows themselves.
	matrix []scorerRow

	filtered   bool
	filteredAt int
}

// scorerRow is one needle-character row: w columns, each a single-lane
// score vector. Kept as its own name for readability; it is exactly
// lane.StepNeedleChar's return shape with l=1.
type scorerRow = [][]uint16

func newCandidate(index uint32, haystack []byte, width int) *candidate {
	padded := make([]byte, width)
	copy(padded, haystack)

	cols := make([][]byte, width)
	for j := 0; j < width; j++ {
		cols[j] = padded[j : j+1]
	}

	return &candidate{
		data:       padded,
		rawLen:     len(haystack),
		width:      width,
		index:      index,
		haystack:   lane.PrecomputeHaystack(cols, width, 1),
		filteredAt: unfiltered,
	}
}

// shouldReconsider reports whether this candidate should be re-run against
// a query whose common prefix with the previous query has length p
// (spec.md §4.11: filtered(k) -> active when the common prefix length
// drops below k).
func (c *candidate) shouldReconsider(p int) bool {
	return !c.filtered || c.filteredAt > p
}

// markFiltered records a prefilter rejection at prefix length p.
func (c *candidate) markFiltered(p int) {
	c.filtered = true
	c.filteredAt = p
}

// markActive clears a prior rejection once the candidate is reconsidered.
func (c *candidate) markActive() {
	c.filtered = false
	c.filteredAt = unfiltered
}

// truncate drops committed rows beyond prefix length p (spec.md §4.8
// step 2).
func (c *candidate) truncate(p int) {
	if p > len(c.matrix) {
		p = len(c.matrix)
	}
	c.matrix = c.matrix[:p]
}

// extend runs the recurrence for every needle character beyond the rows
// already committed, appending one row per character (spec.md §4.8 step
// 2's "extend by evaluating the inner recurrence for each needle
// character beyond P").
//
// Unlike scorer.Score, this always scans the full column range instead of
// narrowing to the max_typos band: the band's bounds depend on the total
// needle length n, which changes from call to call, while rows committed
// under an earlier, differently-sized query are kept as-is across a
// truncate. Banding here would risk reusing a row whose columns outside
// its original (now-stale) band were never computed. Always scanning the
// full width keeps every retained row correct regardless of how much the
// query has grown or shrunk since it was computed, at the cost of the
// one-shot scorer's band-narrowing optimization.
func (c *candidate) extend(needleClassified []lane.Classified, s scoring.Scoring) {
	n := len(needleClassified)
	w := c.width

	for i := len(c.matrix); i < n; i++ {
		var prevRow scorerRow
		if i > 0 {
			prevRow = c.matrix[i-1]
		}
		row := lane.StepNeedleChar(prevRow, needleClassified[i], c.haystack, 0, w, s)
		c.matrix = append(c.matrix, row)
	}
}

// bestScore returns the maximum cell value across the whole retained
// matrix: the running-max the one-shot scorer tracks incrementally within
// one call, recomputed here since rows may have come from several
// separate match_needle calls.
func (c *candidate) bestScore() uint16 {
	var best uint16
	for _, row := range c.matrix {
		for j := 0; j < c.width; j++ {
			if v := row[j][0]; v > best {
				best = v
			}
		}
	}
	return best
}
