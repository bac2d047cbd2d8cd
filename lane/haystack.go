package lane

// Column is the per-column, per-lane classification of one haystack byte
// position, precomputed once (independent of the needle) and reused for
// every needle character during the recurrence (spec.md §4.1, §4.3).
type Column struct {
	// Lower holds the case-folded byte for each lane.
	Lower []byte
	// IsUpper reports, per lane, whether the raw byte was upper-case.
	IsUpper []bool
	// CapBonusEligible reports, per lane, whether this column qualifies
	// for CAPITALIZATION_BONUS: current upper, previous lower, and not the
	// prefix column.
	CapBonusEligible []bool
	// DelimBonusEligible reports, per lane, whether this column qualifies
	// for DELIMITER_BONUS: previous byte was a delimiter, current is not,
	// and the delimiter-bonus state machine is armed (spec.md §4.11).
	DelimBonusEligible []bool
}

// Haystack is the full set of precomputed columns for one bucket drain,
// plus the column-0 fact the offset-prefix rule (spec.md §4.3 step 2)
// needs: whether the true first byte of each lane is punctuation.
type Haystack struct {
	W       int
	L       int
	Columns []Column
	// Col0NonLetter reports, per lane, whether the column-0 byte is
	// neither an upper nor a lower ASCII letter.
	Col0NonLetter []bool
}

// PrecomputeHaystack classifies every column of an already-interleaved
// lane matrix (see Interleave). cols must have length w, each entry length
// l.
func PrecomputeHaystack(cols [][]byte, w, l int) *Haystack {
	h := &Haystack{W: w, L: l, Columns: make([]Column, w), Col0NonLetter: make([]bool, l)}

	prevIsDelim := make([]bool, l)
	prevIsLower := make([]bool, l)
	armed := make([]bool, l) // true once a non-delimiter column has been seen

	for j := 0; j < w; j++ {
		raw := cols[j]
		col := Column{
			Lower:              make([]byte, l),
			IsUpper:            make([]bool, l),
			CapBonusEligible:   make([]bool, l),
			DelimBonusEligible: make([]bool, l),
		}
		for i := 0; i < l; i++ {
			lower, isUpper, isLower, isDelim := classifyWithDelim(raw[i])
			col.Lower[i] = lower
			col.IsUpper[i] = isUpper

			if j > 0 {
				col.CapBonusEligible[i] = isUpper && prevIsLower[i]
				col.DelimBonusEligible[i] = prevIsDelim[i] && !isDelim && armed[i]
			}
			if j == 0 {
				h.Col0NonLetter[i] = !isUpper && !isLower
			}

			if !isDelim {
				armed[i] = true
			}
			prevIsDelim[i] = isDelim
			prevIsLower[i] = isLower
		}
		h.Columns[j] = col
	}
	return h
}
