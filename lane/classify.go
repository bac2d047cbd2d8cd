// Package lane implements the lane-parallel primitives of the scorer: byte
// classification, the interleave transpose that turns a batch of candidate
// strings into column-major lane vectors, and the inner alignment
// recurrence that steps one needle character across a haystack column.
//
// "Lane" follows spec.md's usage: one lane is one candidate string. A
// bucket of L candidates is processed together, one vector register worth
// of work standing in for L independent byte comparisons.
package lane

import "github.com/coregx/fuzzymatch/scoring"

// IsUpper reports whether b is an ASCII upper-case letter.
func IsUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// IsLower reports whether b is an ASCII lower-case letter.
func IsLower(b byte) bool { return b >= 'a' && b <= 'z' }

// ToLower folds b to lower-case if it is an ASCII upper-case letter,
// leaving every other byte untouched. This mirrors the SWAR "OR 0x20"
// trick the teacher's simd.memchrGeneric family uses for branchless ASCII
// folding.
func ToLower(b byte) byte {
	if IsUpper(b) {
		return b | 0x20
	}
	return b
}

// Classified is the per-byte classification of a needle character
// (computed once per character, spec.md §4.1). Haystack bytes are
// classified separately, once per column by PrecomputeHaystack, and
// reused across every needle character — see Column.
type Classified struct {
	Lower   byte
	IsUpper bool
}

// Classify computes a Classified value for a single byte.
func Classify(b byte) Classified {
	return Classified{Lower: ToLower(b), IsUpper: IsUpper(b)}
}

// classifyWithDelim additionally reports delimiter membership, used while
// precomputing haystack columns.
func classifyWithDelim(b byte) (lower byte, isUpper, isLower, isDelim bool) {
	return ToLower(b), IsUpper(b), IsLower(b), scoring.IsDelimiter(b)
}
