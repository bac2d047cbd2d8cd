package fuzzyprefilter

import "github.com/coregx/fuzzymatch/lane"

// MatchOrdered reports whether needle occurs in haystack as an
// order-preserving (not necessarily contiguous) subsequence, scanning
// haystack once left to right. This is the portable scalar backend; the
// reference implementation additionally has 16-lane SIMD variants that
// scan whole chunks at a time, but the accept/reject outcome is the
// same (original_source/src/prefilter/scalar.rs).
func MatchOrdered(needle, haystack []byte) bool {
	hi := 0
	for _, nb := range needle {
		for {
			if hi == len(haystack) {
				return false
			}
			if haystack[hi] == nb {
				hi++
				break
			}
			hi++
		}
	}
	return true
}

// MatchOrderedInsensitive is MatchOrdered with case-insensitive byte
// comparison.
func MatchOrderedInsensitive(needle, haystack []byte) bool {
	hi := 0
	for _, nb := range needle {
		nl := lane.ToLower(nb)
		for {
			if hi == len(haystack) {
				return false
			}
			if lane.ToLower(haystack[hi]) == nl {
				hi++
				break
			}
			hi++
		}
	}
	return true
}

// MatchOrderedTypos is MatchOrdered relaxed to tolerate up to maxTypos
// needle characters that cannot be found before haystack runs out: each
// time that happens, the scan restarts from the beginning of haystack
// rather than failing outright (original_source/src/prefilter/scalar.rs
// match_haystack_typos).
func MatchOrderedTypos(needle, haystack []byte, maxTypos uint16) bool {
	hi, typos := 0, 0
	for _, nb := range needle {
		for {
			if hi == len(haystack) {
				typos++
				if typos > int(maxTypos) {
					return false
				}
				hi = 0
				break
			}
			if haystack[hi] == nb {
				hi++
				break
			}
			hi++
		}
	}
	return true
}

// MatchOrderedTyposInsensitive is MatchOrderedTypos with case-insensitive
// byte comparison.
func MatchOrderedTyposInsensitive(needle, haystack []byte, maxTypos uint16) bool {
	hi, typos := 0, 0
	for _, nb := range needle {
		nl := lane.ToLower(nb)
		for {
			if hi == len(haystack) {
				typos++
				if typos > int(maxTypos) {
					return false
				}
				hi = 0
				break
			}
			if lane.ToLower(haystack[hi]) == nl {
				hi++
				break
			}
			hi++
		}
	}
	return true
}
