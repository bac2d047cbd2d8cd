// Package incremental implements the stateful matcher (spec.md §4.8):
// built once against a fixed candidate list, it retains a growable score
// matrix per candidate across successive MatchNeedle calls so that
// extending a query by appending characters only scores the new rows,
// reusing whatever prefix the previous query already computed.
package incremental

import (
	"bytes"
	"sort"

	"github.com/coregx/fuzzymatch"
	"github.com/coregx/fuzzymatch/fuzzyprefilter"
	"github.com/coregx/fuzzymatch/internal/conv"
	"github.com/coregx/fuzzymatch/lane"
	"github.com/coregx/fuzzymatch/scorer"
)

// Matcher is a fixed candidate set grouped into length buckets, each
// candidate retaining its own score matrix between queries. A Matcher is
// single-threaded by design: its candidates are mutated in place on every
// MatchNeedle call (spec.md §5).
type Matcher struct {
	buckets  map[int][]*candidate
	overlong []*overlongCandidate

	prevQuery []byte

	// stats accumulates across every MatchNeedle call on this Matcher,
	// unlike the one-shot dispatcher's per-call Stats (§ AMBIENT STACK:
	// no logging, Stats instead, mirroring meta.Engine.Stats). Plain
	// fields suffice since Matcher is documented single-threaded.
	stats fuzzymatch.Stats
}

// Stats returns the counters accumulated across every MatchNeedle call
// made on this Matcher so far.
func (m *Matcher) Stats() fuzzymatch.Stats {
	return m.stats
}

// ResetStats zeroes the accumulated counters.
func (m *Matcher) ResetStats() {
	m.stats = fuzzymatch.Stats{}
}

// overlongCandidate is a haystack too wide for any bucket in the ladder;
// it carries no retained matrix and is simply re-scored with the greedy
// fallback on every query (spec.md §4.6, §4.12: "never crash" for
// out-of-ladder candidates).
type overlongCandidate struct {
	index uint32
	data  []byte
}

// New builds a Matcher over haystacks, bucketing each by the same width
// ladder the one-shot dispatcher uses (spec.md §4.8). Candidates wider
// than lane.MaxWidth are kept in a side list scored fresh by the greedy
// matcher on every query, since there is no bucketed matrix for them to
// retain (mirrors the one-shot path's own greedy fallback, spec.md §4.6).
func New(haystacks [][]byte) *Matcher {
	m := &Matcher{buckets: make(map[int][]*candidate)}
	for i, h := range haystacks {
		index := conv.IntToUint32(i)
		spec, ok := lane.BucketFor(len(h))
		if !ok {
			data := make([]byte, len(h))
			copy(data, h)
			m.overlong = append(m.overlong, &overlongCandidate{index: index, data: data})
			continue
		}
		c := newCandidate(index, h, spec.Width)
		m.buckets[spec.Width] = append(m.buckets[spec.Width], c)
	}
	return m
}

// MatchNeedle scores query against every retained candidate, reusing the
// common prefix with the previous query (spec.md §4.8). An empty query is
// a usage error here (unlike the one-shot API, where it trivially matches
// everything) since there is no meaningful "previous query" baseline to
// diff an empty string against.
func (m *Matcher) MatchNeedle(query []byte, opts fuzzymatch.Options) []fuzzymatch.Match {
	if len(query) == 0 {
		panic("incremental: MatchNeedle requires a non-empty query")
	}

	p := commonPrefixLen(query, m.prevQuery)

	needleClassified := make([]lane.Classified, len(query))
	for i, b := range query {
		needleClassified[i] = lane.Classify(b)
	}

	var filter *fuzzyprefilter.Filter
	if opts.Prefilter {
		filter = fuzzyprefilter.New(query, opts.MaxTypos)
	}

	var out []fuzzymatch.Match
	for _, bucket := range m.buckets {
		m.stats.BucketsDrained++
		for _, c := range bucket {
			if match, ok := m.tryMatch(c, query, needleClassified, p, filter, opts); ok {
				out = append(out, match)
			}
		}
	}
	for _, c := range m.overlong {
		m.stats.CandidatesScored++
		if match, ok := tryMatchOverlong(c, query, opts); ok {
			out = append(out, match)
		}
	}

	m.prevQuery = append(m.prevQuery[:0], query...)

	if opts.Sort {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	}
	return out
}

func (m *Matcher) tryMatch(c *candidate, query []byte, needleClassified []lane.Classified, p int, filter *fuzzyprefilter.Filter, opts fuzzymatch.Options) (fuzzymatch.Match, bool) {
	if !c.shouldReconsider(p) {
		return fuzzymatch.Match{}, false
	}

	if filter != nil && !filter.Accept(c.data[:c.rawLen]) {
		c.markFiltered(p)
		m.stats.PrefilterRejections++
		return fuzzymatch.Match{}, false
	}
	c.markActive()
	m.stats.CandidatesScored++

	c.truncate(p)
	c.extend(needleClassified, opts.Scoring)

	score := c.bestScore()
	exact := bytes.Equal(c.data[:c.rawLen], query)
	if exact {
		score += opts.Scoring.ExactMatchBonus
	}
	if score < opts.MinScore {
		return fuzzymatch.Match{}, false
	}

	res := &scorer.Result{Matrix: c.matrix, Haystack: c.haystack}
	if opts.MaxTypos != nil && res.TypoCount(0) > int(*opts.MaxTypos) {
		return fuzzymatch.Match{}, false
	}

	return fuzzymatch.Match{
		IndexInHaystack: c.index,
		Score:           score,
		Exact:           exact,
		Indices:         res.Indices(0),
	}, true
}

func tryMatchOverlong(c *overlongCandidate, query []byte, opts fuzzymatch.Options) (fuzzymatch.Match, bool) {
	haystack := c.data
	score, indices, ok := scorer.Greedy(query, haystack, opts.Scoring)
	if !ok {
		return fuzzymatch.Match{}, false
	}
	exact := bytes.Equal(haystack, query)
	if score < opts.MinScore {
		return fuzzymatch.Match{}, false
	}
	return fuzzymatch.Match{
		IndexInHaystack: c.index,
		Score:           score,
		Exact:           exact,
		Indices:         indices,
	}, true
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
