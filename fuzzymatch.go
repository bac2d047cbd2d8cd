// Package fuzzymatch implements a high-throughput fuzzy string matcher:
// a Smith-Waterman-style local alignment with affine gap penalties,
// evaluated lane-parallel across a length-bucketed ladder of SIMD-style
// batches, with cheap prefiltering ahead of the scorer and an
// incremental matcher for repeatedly querying the same candidate set.
//
// Basic usage:
//
//	opts := fuzzymatch.DefaultOptions()
//	matches, _ := fuzzymatch.MatchList([]byte("mtchr"), candidates, opts)
//
// For a fixed candidate set queried many times (e.g. an interactive
// fuzzy-finder UI), build an incremental.Matcher once with
// incremental.New and call MatchNeedle on every keystroke; successive queries that share a
// prefix skip re-scoring the shared portion.
package fuzzymatch

import (
	"slices"
	"sync/atomic"

	"github.com/coregx/fuzzymatch/bucket"
	"github.com/coregx/fuzzymatch/fuzzyprefilter"
	"github.com/coregx/fuzzymatch/internal/conv"
	"github.com/coregx/fuzzymatch/lane"
	"github.com/coregx/fuzzymatch/scorer"
	"github.com/coregx/fuzzymatch/scoring"
)

// Options configures a MatchList, MatchListParallel, or MatchIndices
// call. It is a thin alias of scoring.Options so callers of this
// package's public API never need to import the scoring package
// directly for the common case.
type Options = scoring.Options

// DefaultOptions returns sensible defaults: prefiltering and default
// scoring enabled, no typo limit, min score 0, sorting disabled.
func DefaultOptions() Options { return scoring.DefaultOptions() }

// Match is one candidate's scoring result.
type Match struct {
	// IndexInHaystack is the candidate's position in the haystacks slice
	// passed to the call that produced this Match.
	IndexInHaystack uint32
	// Score is the candidate's alignment score; higher is a better match.
	Score uint16
	// Exact reports whether the candidate's bytes equal the needle's.
	Exact bool
	// Indices holds the matched haystack byte positions, ascending, when
	// the call computed a traceback: always for MatchIndices and the
	// incremental matcher, and for MatchList/MatchListParallel only when
	// opts.MaxTypos is set. Nil otherwise.
	Indices []uint32
}

// MatchList scores every haystack against needle and returns the
// survivors (spec.md §4.7), alongside the dispatcher's execution
// counters (§ AMBIENT STACK: no logging, Stats instead). An empty needle
// returns one zero-scored, non-exact Match per candidate, in input order
// (spec.md §6), and a zero Stats — no dispatcher runs.
//
// Candidates longer than lane.MaxWidth fall back to the linear-time
// greedy scorer (spec.md §4.6) rather than being dropped.
func MatchList(needle []byte, haystacks [][]byte, opts Options) ([]Match, Stats) {
	if len(needle) == 0 {
		out := make([]Match, len(haystacks))
		for i := range haystacks {
			out[i] = Match{IndexInHaystack: conv.IntToUint32(i)}
		}
		return out, Stats{}
	}

	d := newDispatcher(needle, opts)
	for i, h := range haystacks {
		d.submit(conv.IntToUint32(i), h)
	}
	out := d.finish()

	if opts.Sort {
		slices.SortFunc(out, func(a, b Match) int { return int(b.Score) - int(a.Score) })
	}
	return out, d.stats.load()
}

// MatchIndices scores a single needle/haystack pair and returns full
// traceback (spec.md §6 match_indices). Returns nil if the candidate is
// filtered out by min score or typo budget, or if needle is empty.
func MatchIndices(needle, haystack []byte, opts Options) *Match {
	if len(needle) == 0 {
		return nil
	}
	if len(haystack) > lane.MaxWidth {
		score, indices, ok := scorer.Greedy(needle, haystack, opts.Scoring)
		if !ok {
			return nil
		}
		m := &Match{Score: score, Exact: string(needle) == string(haystack), Indices: indices}
		if !passesFilters(*m, opts) {
			return nil
		}
		return m
	}

	spec, ok := lane.BucketFor(len(haystack))
	if !ok {
		return nil
	}
	b := bucket.New(spec)
	b.Accept(0, haystack)
	res, _ := b.Drain(needle, opts.MaxTypos, true, opts.Scoring)

	m := Match{Score: res.Scores[0], Exact: res.Exact[0], Indices: res.Indices(0)}
	if opts.MaxTypos != nil && res.TypoCount(0) > int(*opts.MaxTypos) {
		return nil
	}
	if !passesFilters(m, opts) {
		return nil
	}
	return &m
}

// passesFilters applies the min-score gate of spec.md §4.7 step 6. The
// typo-budget gate is applied by the callers, which compare the
// traceback's TypoCount against opts.MaxTypos before calling this.
func passesFilters(m Match, opts Options) bool {
	if m.Score < opts.MinScore {
		return false
	}
	return true
}

// dispatcher drives the one-shot length-bucketed pipeline (spec.md
// §4.7): candidates are routed into a bucket per lane.Ladder entry, a
// bucket is drained as soon as it fills, and any candidate wider than
// lane.MaxWidth goes straight to the greedy fallback instead of a
// bucket.
type dispatcher struct {
	// stats MUST be first field for proper 8-byte alignment of its
	// uint64 counters on 32-bit platforms (mirrors meta.Engine.stats).
	stats Stats

	needle        []byte
	opts          Options
	needTraceback bool
	filter        *fuzzyprefilter.Filter
	buckets       map[lane.BucketSpec]*bucket.Bucket
	out           []Match
}

func newDispatcher(needle []byte, opts Options) *dispatcher {
	d := &dispatcher{
		needle:        needle,
		opts:          opts,
		needTraceback: opts.MaxTypos != nil,
		buckets:       make(map[lane.BucketSpec]*bucket.Bucket, len(lane.Ladder)),
	}
	if opts.Prefilter {
		d.filter = fuzzyprefilter.New(needle, opts.MaxTypos)
	}
	return d
}

func (d *dispatcher) submit(index uint32, haystack []byte) {
	if len(haystack) > lane.MaxWidth {
		d.submitGreedy(index, haystack)
		return
	}
	spec, ok := lane.BucketFor(len(haystack))
	if !ok {
		d.submitGreedy(index, haystack)
		return
	}
	if d.filter != nil && !d.filter.Accept(haystack) {
		atomic.AddUint64(&d.stats.PrefilterRejections, 1)
		return
	}

	b, ok := d.buckets[spec]
	if !ok {
		b = bucket.New(spec)
		d.buckets[spec] = b
	}
	b.Accept(index, haystack)
	if b.Full() {
		d.drain(b)
	}
}

func (d *dispatcher) submitGreedy(index uint32, haystack []byte) {
	atomic.AddUint64(&d.stats.CandidatesScored, 1)
	score, indices, ok := scorer.Greedy(d.needle, haystack, d.opts.Scoring)
	if !ok {
		return
	}
	m := Match{IndexInHaystack: index, Score: score, Exact: string(d.needle) == string(haystack)}
	if d.needTraceback {
		m.Indices = indices
	}
	if passesFilters(m, d.opts) {
		d.out = append(d.out, m)
	}
}

func (d *dispatcher) drain(b *bucket.Bucket) {
	n := b.Len()
	atomic.AddUint64(&d.stats.BucketsDrained, 1)
	atomic.AddUint64(&d.stats.CandidatesScored, uint64(n))
	res, idxs := b.Drain(d.needle, d.opts.MaxTypos, d.needTraceback, d.opts.Scoring)
	for ln := 0; ln < n; ln++ {
		m := Match{IndexInHaystack: idxs[ln], Score: res.Scores[ln], Exact: res.Exact[ln]}
		if d.opts.MaxTypos != nil {
			if res.TypoCount(ln) > int(*d.opts.MaxTypos) {
				continue
			}
		}
		if d.needTraceback {
			m.Indices = res.Indices(ln)
		}
		if passesFilters(m, d.opts) {
			d.out = append(d.out, m)
		}
	}
}

// finish drains every non-empty bucket and returns the accumulated
// results (spec.md §4.7 step 5).
func (d *dispatcher) finish() []Match {
	for _, b := range d.buckets {
		if b.Len() > 0 {
			d.drain(b)
		}
	}
	return d.out
}
