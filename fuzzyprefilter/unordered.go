package fuzzyprefilter

import "github.com/coregx/fuzzymatch/lane"

// MatchUnordered reports whether every distinct byte in needle occurs
// somewhere in haystack, ignoring order and ignoring how many times each
// byte repeats in needle (original_source/src/prefilter/simd/sensitive/unordered.rs
// matches a needle character against a whole 16-byte chunk at a time and
// does not track which haystack position satisfied it, so a haystack
// byte can satisfy more than one repeated needle byte — e.g. needle
// "aaa" accepts haystack "aa"). This portable backend reproduces that
// per-character presence test directly rather than the reference's
// chunk-by-chunk scan, and accepts every haystack that scan accepts. A
// candidate this rejects lacks at least one needle character entirely; it
// may still share other characters with needle and so have a positive
// alignment score.
func MatchUnordered(needle, haystack []byte) bool {
	present := presentSet(haystack, lane.ToLower)
	for _, nb := range needle {
		if !present[lane.ToLower(nb)] {
			return false
		}
	}
	return true
}

// MatchUnorderedInsensitive is an alias kept for symmetry with the
// ordered API: MatchUnordered already folds case.
func MatchUnorderedInsensitive(needle, haystack []byte) bool {
	return MatchUnordered(needle, haystack)
}

// MatchUnorderedTypos is MatchUnordered relaxed to tolerate up to
// maxTypos distinct needle bytes missing from haystack entirely.
func MatchUnorderedTypos(needle, haystack []byte, maxTypos uint16) bool {
	present := presentSet(haystack, lane.ToLower)
	missing := 0
	seen := map[byte]bool{}
	for _, nb := range needle {
		lb := lane.ToLower(nb)
		if seen[lb] {
			continue
		}
		seen[lb] = true
		if !present[lb] {
			missing++
			if missing > int(maxTypos) {
				return false
			}
		}
	}
	return true
}

// MatchUnorderedTyposInsensitive is kept for API symmetry with the
// reference's case-sensitive/insensitive pairing; MatchUnorderedTypos
// already folds case.
func MatchUnorderedTyposInsensitive(needle, haystack []byte, maxTypos uint16) bool {
	return MatchUnorderedTypos(needle, haystack, maxTypos)
}

func presentSet(haystack []byte, fold func(byte) byte) [256]bool {
	var present [256]bool
	for _, b := range haystack {
		present[fold(b)] = true
	}
	return present
}
