package fuzzymatch

import (
	"slices"
	"sync"

	"github.com/coregx/fuzzymatch/internal/batchqueue"
	"github.com/coregx/fuzzymatch/internal/conv"
)

// minCandidatesPerThread is the per-typo-budget threshold spec.md §4.10
// gives for sharding: typo-tolerant runs need traceback and so do more
// work per candidate, which amortises thread overhead worse, hence the
// stricter (smaller) thresholds as the typo budget grows.
func minCandidatesPerThread(maxTypos *uint16) int {
	switch {
	case maxTypos == nil:
		return 5000
	case *maxTypos == 0:
		return 3000
	default:
		return 2000
	}
}

// batchSize is the per-writer batch granularity for both collector
// variants (spec.md §4.10 step 3).
const batchSize = 256

// MatchListParallel is MatchList sharded across up to maxThreads worker
// goroutines (spec.md §4.10). Each worker receives a contiguous slice of
// haystacks and runs the same one-shot pipeline MatchList uses, writing
// survivors into a collector shared across workers instead of a private
// slice.
//
// If the computed thread count is 1, this falls back to MatchList
// directly; the result sequence is then in MatchList's order. Otherwise
// the result sequence is in completion order, not input order — sort
// via opts.Sort if a stable order is required.
//
// The returned Stats sums every shard's dispatcher counters (§ AMBIENT
// STACK): each shard runs its own dispatcher internally, so BucketsDrained
// and CandidatesScored reflect the whole call, not any one shard.
func MatchListParallel(needle []byte, haystacks [][]byte, opts Options, maxThreads int) ([]Match, Stats) {
	if len(needle) == 0 {
		return MatchList(needle, haystacks, opts)
	}

	threadCount := len(haystacks) / minCandidatesPerThread(opts.MaxTypos)
	if threadCount > maxThreads {
		threadCount = maxThreads
	}
	if threadCount < 1 {
		threadCount = 1
	}
	if threadCount == 1 {
		return MatchList(needle, haystacks, opts)
	}

	itemsPerThread := (len(haystacks) + threadCount - 1) / threadCount

	if opts.MaxTypos != nil {
		return matchListParallelExpandable(needle, haystacks, opts, threadCount, itemsPerThread)
	}
	return matchListParallelFixed(needle, haystacks, opts, threadCount, itemsPerThread)
}

func matchListParallelFixed(needle []byte, haystacks [][]byte, opts Options, threadCount, itemsPerThread int) ([]Match, Stats) {
	q := batchqueue.NewFixed[Match](len(haystacks), batchSize, threadCount)

	var wg sync.WaitGroup
	var total Stats
	for start := 0; start < len(haystacks); start += itemsPerThread {
		end := start + itemsPerThread
		if end > len(haystacks) {
			end = len(haystacks)
		}
		shard := haystacks[start:end]
		base := conv.IntToUint32(start)

		wg.Add(1)
		go func(shard [][]byte, base uint32) {
			defer wg.Done()
			total.add(runShard(needle, shard, base, opts, q.Writer()))
		}(shard, base)
	}
	wg.Wait()

	out := q.Finalize()
	return finishParallel(out, opts), total.load()
}

func matchListParallelExpandable(needle []byte, haystacks [][]byte, opts Options, threadCount, itemsPerThread int) ([]Match, Stats) {
	q := batchqueue.NewExpandable[Match](batchSize)

	var wg sync.WaitGroup
	var total Stats
	for start := 0; start < len(haystacks); start += itemsPerThread {
		end := start + itemsPerThread
		if end > len(haystacks) {
			end = len(haystacks)
		}
		shard := haystacks[start:end]
		base := conv.IntToUint32(start)

		wg.Add(1)
		go func(shard [][]byte, base uint32) {
			defer wg.Done()
			total.add(runShard(needle, shard, base, opts, q.Writer()))
		}(shard, base)
	}
	wg.Wait()

	out := q.Finalize()
	return finishParallel(out, opts), total.load()
}

// matchSink is the subset of batchqueue's writer API a shard needs: it is
// satisfied by both *batchqueue.FixedWriter[Match] and
// *batchqueue.ExpandableWriter[Match].
type matchSink interface {
	Push(Match)
	Close()
}

// runShard runs the one-shot pipeline over one contiguous slice of
// haystacks (spec.md §4.10 step 2), rebasing each local index by base so
// IndexInHaystack stays a position in the original, unsharded slice, then
// hands the shard's survivors to the shared collector. It returns this
// shard's own dispatcher counters for the caller to fold into the overall
// Stats.
func runShard(needle []byte, shard [][]byte, base uint32, opts Options, sink matchSink) Stats {
	d := newDispatcher(needle, opts)
	for i, h := range shard {
		d.submit(base+conv.IntToUint32(i), h)
	}
	for _, m := range d.finish() {
		sink.Push(m)
	}
	sink.Close()
	return d.stats.load()
}

func finishParallel(out []Match, opts Options) []Match {
	if opts.Sort {
		slices.SortFunc(out, func(a, b Match) int { return int(b.Score) - int(a.Score) })
	}
	return out
}
