package lane

import "github.com/coregx/fuzzymatch/scoring"

// NewRow allocates a row of w haystack columns, each holding l lane
// scores, all initialized to zero.
func NewRow(w, l int) [][]uint16 {
	row := make([][]uint16, w)
	buf := make([]uint16, w*l)
	for j := 0; j < w; j++ {
		row[j] = buf[j*l : j*l+l]
	}
	return row
}

// StepNeedleChar runs one needle character across haystack columns
// [start,end) of hc, against prevRow (the previous needle row's score
// columns, or nil on the first needle character), and returns the new
// row (spec.md §4.3).
//
// Both affine-gap masks — "up" (skipped haystack byte, tracked by
// upGapOpen) and "left" (skipped needle byte, tracked by leftGapOpen) —
// start "open" at the top of every needle character and are swept
// left-to-right across this row's columns; neither is retained or
// threaded in from a previous row (spec.md §4.11: the Gotoh automaton
// resets per row, it does not persist state across needle characters).
//
// Columns outside [start, end) are left at zero in the returned row: the
// scan-band pruning in scorer.Score (spec.md §4.4 step 3) only narrows the
// band when max_typos bounds which alignments can possibly terminate
// legally, so cells outside it cannot contribute to any retained result.
func StepNeedleChar(prevRow [][]uint16, needle Classified, hc *Haystack, start, end int, s scoring.Scoring) [][]uint16 {
	l := hc.L
	outRow := NewRow(hc.W, l)

	upAccum := make([]uint16, l)
	upGapOpen := make([]bool, l)
	leftGapOpen := make([]bool, l)
	for i := range upGapOpen {
		upGapOpen[i] = true
		leftGapOpen[i] = true
	}

	for j := start; j < end; j++ {
		col := &hc.Columns[j]
		for lane := 0; lane < l; lane++ {
			var diag, left uint16
			if prevRow != nil {
				if j > 0 {
					diag = prevRow[j-1][lane]
				}
				left = prevRow[j][lane]
			}

			baseMatch := s.MatchScore
			switch {
			case j == 0:
				baseMatch += s.PrefixBonus
			case j == 1 && hc.Col0NonLetter[lane] && diag == 0:
				baseMatch = s.MatchScore + s.OffsetPrefixBonus
			default:
				if col.CapBonusEligible[lane] {
					baseMatch += s.CapitalizationBonus
				}
				if col.DelimBonusEligible[lane] {
					baseMatch += s.DelimiterBonus
				}
			}

			var diagScore uint16
			if needle.Lower == col.Lower[lane] {
				add := baseMatch
				if needle.IsUpper == col.IsUpper[lane] {
					add += s.MatchingCaseBonus
				}
				diagScore = diag + add
			} else if diag > s.MismatchPenalty {
				diagScore = diag - s.MismatchPenalty
			}

			upGapPenalty := s.GapExtendPenalty
			if upGapOpen[lane] {
				upGapPenalty = s.GapOpenPenalty
			}
			var upScore uint16
			if upAccum[lane] > upGapPenalty {
				upScore = upAccum[lane] - upGapPenalty
			}

			leftGapPenalty := s.GapExtendPenalty
			if leftGapOpen[lane] {
				leftGapPenalty = s.GapOpenPenalty
			}
			var leftScore uint16
			if left > leftGapPenalty {
				leftScore = left - leftGapPenalty
			}

			cell := diagScore
			if upScore > cell {
				cell = upScore
			}
			if leftScore > cell {
				cell = leftScore
			}

			// A gap mask re-opens (true) on the next step unless this
			// cell was resolved by continuing that same direction's gap
			// with no tying diagonal alternative (spec.md §4.3, §4.11).
			diagTied := cell == diagScore
			upGapOpen[lane] = cell != upScore || diagTied
			leftGapOpen[lane] = cell != leftScore || diagTied
			upAccum[lane] = cell
			outRow[j][lane] = cell
		}
	}
	return outRow
}
