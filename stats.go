package fuzzymatch

import "sync/atomic"

// Stats tracks execution counters for one matching pass, in place of the
// logging this package never does (mirroring meta.Engine.Stats): how many
// buckets were drained, how many candidates a prefilter rejected before
// they ever reached the scorer, and how many candidates the scorer itself
// ran.
type Stats struct {
	// BucketsDrained counts lane-parallel batch scoring calls on the
	// one-shot dispatcher (one per bucket.Drain, spec.md §4.7 step 4/5).
	// The incremental Matcher, which scores each candidate into its own
	// retained matrix rather than batching bucket-mates into one call,
	// counts its per-width candidate groups here instead.
	BucketsDrained uint64

	// PrefilterRejections counts candidates the prefilter rejected before
	// they reached a bucket or the greedy fallback (spec.md §4.9).
	PrefilterRejections uint64

	// CandidatesScored counts candidates actually run through the scorer
	// (lane-batched or greedy), regardless of whether they passed the
	// min-score or typo-budget filters afterward.
	CandidatesScored uint64
}

// add accumulates src's counters into s. Used to merge per-shard stats
// from MatchListParallel's workers (spec.md §4.10), each of which runs its
// own dispatcher.
func (s *Stats) add(src Stats) {
	atomic.AddUint64(&s.BucketsDrained, src.BucketsDrained)
	atomic.AddUint64(&s.PrefilterRejections, src.PrefilterRejections)
	atomic.AddUint64(&s.CandidatesScored, src.CandidatesScored)
}

func (s *Stats) load() Stats {
	return Stats{
		BucketsDrained:      atomic.LoadUint64(&s.BucketsDrained),
		PrefilterRejections: atomic.LoadUint64(&s.PrefilterRejections),
		CandidatesScored:    atomic.LoadUint64(&s.CandidatesScored),
	}
}
