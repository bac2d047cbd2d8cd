package scorer

import (
	"bytes"

	"github.com/coregx/fuzzymatch/lane"
	"github.com/coregx/fuzzymatch/scoring"
)

// Greedy scores a candidate too long for any bucket (spec.md §4.6):
// a linear-time, left-to-right, case-insensitive scan that advances to the
// first remaining match for each needle character, failing if one runs
// out. Its affine-gap accounting is a documented approximation of the DP
// recurrence in lane.StepNeedleChar and is not required to agree with it
// (spec.md §9 "Open questions").
//
// Returns ok=false if the needle cannot be found as a (possibly
// discontiguous, order-preserving) subsequence of haystack.
func Greedy(needle, haystack []byte, s scoring.Scoring) (score uint16, indices []uint32, ok bool) {
	if len(needle) == 0 {
		return 0, nil, true
	}

	var total int64
	indices = make([]uint32, 0, len(needle))
	hpos := 0

	for _, nb := range needle {
		nLower := lane.ToLower(nb)
		nUpper := lane.IsUpper(nb)

		matchIdx := -1
		for p := hpos; p < len(haystack); p++ {
			if lane.ToLower(haystack[p]) == nLower {
				matchIdx = p
				break
			}
		}
		if matchIdx == -1 {
			return 0, nil, false
		}

		if skip := matchIdx - hpos; skip > 0 {
			total -= int64(s.GapOpenPenalty) + int64(skip-1)*int64(s.GapExtendPenalty)
		}

		add := int64(s.MatchScore)
		if matchIdx == 0 {
			add += int64(s.PrefixBonus)
		}
		hb := haystack[matchIdx]
		if nUpper == lane.IsUpper(hb) {
			add += int64(s.MatchingCaseBonus)
		}
		if matchIdx > 0 {
			prev := haystack[matchIdx-1]
			if lane.IsUpper(hb) && lane.IsLower(prev) {
				add += int64(s.CapitalizationBonus)
			}
			if scoring.IsDelimiter(prev) && !scoring.IsDelimiter(hb) {
				add += int64(s.DelimiterBonus)
			}
		}
		total += add

		indices = append(indices, uint32(matchIdx))
		hpos = matchIdx + 1
	}

	if bytes.Equal(needle, haystack) {
		total += int64(s.ExactMatchBonus)
	}
	if total < 0 {
		total = 0
	}
	return uint16(total), indices, true
}
