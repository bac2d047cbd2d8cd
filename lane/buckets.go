package lane

import "github.com/coregx/fuzzymatch/scoring"

// BucketSpec describes one (width, lane count) pair from the spec.md §3
// bucket ladder, plus the cell-type width it was sized for.
type BucketSpec struct {
	Width    int
	Lanes    int
	CellBits int // 8 or 16; informational, see Validate
}

// Ladder is the fixed sequence of bucket specs spec.md §3 defines: six
// 16-lane u8-sized buckets for short candidates, then thirteen 8-lane
// u16-sized buckets up to the 1024-byte ceiling.
var Ladder = []BucketSpec{
	{Width: 4, Lanes: 16, CellBits: 8},
	{Width: 8, Lanes: 16, CellBits: 8},
	{Width: 12, Lanes: 16, CellBits: 8},
	{Width: 16, Lanes: 16, CellBits: 8},
	{Width: 20, Lanes: 16, CellBits: 8},
	{Width: 24, Lanes: 16, CellBits: 8},
	{Width: 32, Lanes: 8, CellBits: 16},
	{Width: 48, Lanes: 8, CellBits: 16},
	{Width: 64, Lanes: 8, CellBits: 16},
	{Width: 96, Lanes: 8, CellBits: 16},
	{Width: 128, Lanes: 8, CellBits: 16},
	{Width: 160, Lanes: 8, CellBits: 16},
	{Width: 192, Lanes: 8, CellBits: 16},
	{Width: 224, Lanes: 8, CellBits: 16},
	{Width: 256, Lanes: 8, CellBits: 16},
	{Width: 384, Lanes: 8, CellBits: 16},
	{Width: 512, Lanes: 8, CellBits: 16},
	{Width: 768, Lanes: 8, CellBits: 16},
	{Width: 1024, Lanes: 8, CellBits: 16},
}

// MaxWidth is the widest candidate the ladder accepts; longer candidates
// fall back to the greedy matcher (spec.md §4.6, §4.7 step 2).
var MaxWidth = Ladder[len(Ladder)-1].Width

// BucketFor returns the bucket spec of smallest width >= length, and false
// if length exceeds MaxWidth.
func BucketFor(length int) (BucketSpec, bool) {
	for _, b := range Ladder {
		if length <= b.Width {
			return b, true
		}
	}
	return BucketSpec{}, false
}

// Validate checks the spec.md §3 overflow invariant for every rung of the
// ladder under the given scoring configuration: the worst-case score for
// the widest candidate in a bucket must fit in a 16-bit Go cell (this
// implementation always stores cells as uint16 internally — see
// DESIGN.md — so the check is against 1<<16, not the nominal 8-bit cell
// width some rungs were historically sized for).
func Validate(s scoring.Scoring) error {
	for _, b := range Ladder {
		if s.MaxCellScore(b.Width) >= 1<<16 {
			return &scoring.ConfigError{
				Field:   "Scoring",
				Message: "bucket width overflows the u16 score cell; reduce the scoring constants",
			}
		}
	}
	return nil
}
