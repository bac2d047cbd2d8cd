// Package bucket groups same-length-class candidates for batched SIMD
// scoring (spec.md §4.7 step 4, §4.8): a bucket accepts candidates up to
// its lane count, and is drained — scored as one batch — whenever it
// fills or the caller forces a flush at end of input.
package bucket

import (
	"github.com/coregx/fuzzymatch/lane"
	"github.com/coregx/fuzzymatch/scorer"
	"github.com/coregx/fuzzymatch/scoring"
)

// Bucket accumulates up to Spec.Lanes candidates of length <= Spec.Width.
type Bucket struct {
	Spec       lane.BucketSpec
	candidates [][]byte
	indices    []uint32
}

// New returns an empty bucket for the given spec.
func New(spec lane.BucketSpec) *Bucket {
	b := &Bucket{Spec: spec}
	b.candidates = make([][]byte, 0, spec.Lanes)
	b.indices = make([]uint32, 0, spec.Lanes)
	return b
}

// Len returns the number of candidates currently accepted.
func (b *Bucket) Len() int { return len(b.candidates) }

// Full reports whether the bucket has reached its lane count.
func (b *Bucket) Full() bool { return len(b.candidates) >= b.Spec.Lanes }

// Accept adds a candidate, identified by its position in the original
// haystack list. The caller must not call Accept on a full bucket.
func (b *Bucket) Accept(haystackIndex uint32, data []byte) {
	b.candidates = append(b.candidates, data)
	b.indices = append(b.indices, haystackIndex)
}

// Reset empties the bucket for reuse.
func (b *Bucket) Reset() {
	b.candidates = b.candidates[:0]
	b.indices = b.indices[:0]
}

// Drain scores every accepted candidate as one lane-parallel batch
// (padding unused trailing lanes with empty placeholders) and empties the
// bucket. It returns the scoring result alongside the original haystack
// indices of the candidates that occupy lanes [0, len(indices)).
func (b *Bucket) Drain(needle []byte, maxTypos *uint16, needTraceback bool, s scoring.Scoring) (*scorer.Result, []uint32) {
	l := b.Spec.Lanes
	padded := make([][]byte, l)
	copy(padded, b.candidates)

	res := scorer.Score(needle, padded, b.Spec.Width, l, maxTypos, needTraceback, s)
	idxs := append([]uint32(nil), b.indices...)
	b.Reset()
	return res, idxs
}
