// Package scoring holds the numeric bonuses, penalties, and delimiter set
// that drive the alignment scorer, plus the Scoring and Options records
// callers use to override them.
package scoring

// Default scoring constants, all in the u16 domain. Under them the
// worst-case score for the widest candidate of every bucket width (see
// lane.Ladder) fits the 16-bit score cells the scorer uses; see
// Scoring.MaxCellScore and lane.Validate.
const (
	MatchScore       uint16 = 12
	MismatchPenalty  uint16 = 6
	GapOpenPenalty   uint16 = 5
	GapExtendPenalty uint16 = 1

	// PrefixBonus is added on haystack column 0 only.
	PrefixBonus uint16 = 12

	// OffsetPrefixBonus applies at haystack column 1 when column 0 is
	// punctuation (neither upper nor lower) and the diagonal predecessor
	// is zero — a "prefix-like" match one character in, e.g. needle "a"
	// against haystack "-a". Spec.md leaves the exact value open; this
	// module sets it equal to PrefixBonus so the offset-prefix case reads
	// as "still a prefix match, just one column late".
	OffsetPrefixBonus uint16 = 12

	// DelimiterBonus applies when the previous haystack byte was a
	// delimiter, the current byte is not, and at least one non-delimiter
	// byte has already been seen (the "armed" state, see
	// lane.PrecomputeHaystack).
	DelimiterBonus uint16 = 4

	// CapitalizationBonus applies when the current haystack byte is
	// upper-case and the previous one is lower-case; suppressed on the
	// prefix column.
	CapitalizationBonus uint16 = 4

	// MatchingCaseBonus applies when the needle and haystack bytes agree
	// on case (both upper, or both lower/non-letter).
	MatchingCaseBonus uint16 = 4

	// ExactMatchBonus is added once to the final score when the candidate
	// bytes equal the needle bytes exactly.
	ExactMatchBonus uint16 = 8
)

// Delimiters is the default delimiter byte set used by classification and
// the scorer: space, slash, dot, comma, underscore, dash.
var Delimiters = [...]byte{' ', '/', '.', ',', '_', '-'}

// ReferenceDelimiters additionally includes the colon, matching the scalar
// reference scorer used as a correctness oracle in tests (spec.md §3).
var ReferenceDelimiters = [...]byte{' ', '/', '.', ',', '_', '-', ':'}

// IsDelimiter reports whether b is one of the default delimiter bytes.
func IsDelimiter(b byte) bool {
	for _, d := range Delimiters {
		if b == d {
			return true
		}
	}
	return false
}

// IsReferenceDelimiter reports whether b is a delimiter under the scalar
// reference scorer's (wider) delimiter set.
func IsReferenceDelimiter(b byte) bool {
	for _, d := range ReferenceDelimiters {
		if b == d {
			return true
		}
	}
	return false
}
