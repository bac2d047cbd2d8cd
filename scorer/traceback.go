package scorer

import "slices"

// cellGetter reads a score-matrix cell, returning 0 out of bounds — the
// same sentinel-zero convention the recurrence uses for the row/column
// before the matrix starts (spec.md §4.3 step 1).
type cellGetter func(i, j int) uint16

// Indices returns the matched haystack positions for one lane, sorted
// ascending, by walking the retained score matrix backwards from its
// global maximum (spec.md §4.5 "Indices"). Returns nil if no traceback
// matrix was retained or the lane's best score is zero.
func (r *Result) Indices(ln int) []uint32 {
	n := len(r.Matrix)
	if n == 0 {
		return nil
	}
	w := r.Haystack.W

	bestI, bestJ, best, found := 0, 0, uint16(0), false
	for i := 0; i < n; i++ {
		for j := 0; j < w; j++ {
			v := r.Matrix[i][j][ln]
			if !found || v > best {
				best, bestI, bestJ, found = v, i, j, true
			}
		}
	}
	if !found || best == 0 {
		return nil
	}

	get := func(i, j int) uint16 {
		if i < 0 || j < 0 || i >= n || j >= w {
			return 0
		}
		return r.Matrix[i][j][ln]
	}
	return traceIndices(get, bestI, bestJ)
}

func traceIndices(get cellGetter, i, j int) []uint32 {
	var indices []uint32
	score := get(i, j)
	for score > 0 {
		var diag, up, left uint16
		if i > 0 && j > 0 {
			diag = get(i-1, j-1)
		}
		if j > 0 {
			up = get(i, j-1)
		}
		if i > 0 {
			left = get(i-1, j)
		}

		switch {
		case diag >= up && diag >= left:
			if diag < score {
				indices = append(indices, uint32(j))
			}
			score = diag
			i--
			j--
		case up >= left:
			// Crossing a haystack gap: the cell the gap started from is
			// recorded by the diagonal step taken out of it.
			score = up
			j--
		default:
			score = left
			i--
		}
		if i < 0 || j < 0 {
			break
		}
	}
	slices.Sort(indices)
	return indices
}

// TypoCount returns the number of typos the traceback reports for one
// lane (spec.md §4.5 "Typo count"): diagonal mismatches, skipped needle
// characters ("left" steps), and skipped haystack characters ("up"
// steps), starting from the argmax of the final needle-character row.
func (r *Result) TypoCount(ln int) int {
	n := len(r.Matrix)
	if n == 0 {
		return 0
	}
	w := r.Haystack.W

	get := func(i, j int) uint16 {
		if i < 0 || j < 0 || i >= n || j >= w {
			return 0
		}
		return r.Matrix[i][j][ln]
	}
	return typoCount(get, n, w)
}

func typoCount(get cellGetter, n, w int) int {
	if n == 0 || w == 0 {
		return 0
	}
	i := n - 1
	j, best := 0, get(n-1, 0)
	for jj := 1; jj < w; jj++ {
		if v := get(n-1, jj); v > best {
			best, j = v, jj
		}
	}
	score := best
	typos := 0
	for i > 0 {
		var diag, up, left uint16
		if i > 0 && j > 0 {
			diag = get(i-1, j-1)
		}
		if j > 0 {
			up = get(i, j-1)
		}
		if i > 0 {
			left = get(i-1, j)
		}

		switch {
		case diag >= up && diag >= left:
			if diag >= score {
				typos++
			}
			score = diag
			i--
			if j > 0 {
				j--
			}
		case up >= left:
			typos++ // skipped haystack char
			score = up
			j--
		default:
			typos++ // skipped needle char
			score = left
			i--
		}
		if i < 0 || j < 0 {
			break
		}
	}
	// The walk stops on needle row 0; a zero score there means the first
	// needle character itself did not match.
	if score == 0 {
		typos++
	}
	return typos
}
