package fuzzyprefilter

// Filter bundles a needle against the prefilter dispatch rule spec.md
// §4.7 step 3 describes, precomputing the needle-derived state each
// variant needs (its lowercase form and bitmask) once per query rather
// than once per candidate:
//
//   - maxTypos == 0: the strict ordered subsequence scan.
//   - maxTypos == 1: the typo-tolerant ordered scan.
//   - maxTypos == nil, or >= 2: the bitmask scan, which is the only
//     variant cheap enough to be worth running once per-character
//     typo budgets grow past one (spec.md §4.9).
type Filter struct {
	needleLower []byte
	needleMask  uint64
	maxTypos    *uint16
}

// New builds a Filter for needle. maxTypos, if non-nil, is the
// options.max_typos budget driving which scan New selects.
func New(needle []byte, maxTypos *uint16) *Filter {
	lower := make([]byte, len(needle))
	for i, b := range needle {
		lower[i] = lowerByte(b)
	}
	return &Filter{
		needleLower: lower,
		needleMask:  StringToBitmask(needle),
		maxTypos:    maxTypos,
	}
}

// Accept runs the dispatch rule against haystack, folding case. It
// returns false when haystack is missing needle characters (or, for the
// ordered scans, their order) beyond the typo budget; such a haystack can
// still have a nonzero alignment score from a partial match.
func (p *Filter) Accept(haystack []byte) bool {
	if p.maxTypos != nil {
		switch *p.maxTypos {
		case 0:
			return MatchOrderedInsensitive(p.needleLower, haystack)
		case 1:
			return MatchOrderedTyposInsensitive(p.needleLower, haystack, 1)
		}
	}
	return MatchBitmask(p.needleMask, StringToBitmask(haystack), p.maxTypos)
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 0x20
	}
	return b
}
