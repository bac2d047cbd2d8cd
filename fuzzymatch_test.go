package fuzzymatch

import (
	"testing"
)

func score(t *testing.T, needle, haystack string) uint16 {
	t.Helper()
	opts := DefaultOptions()
	opts.Prefilter = false
	m := MatchIndices([]byte(needle), []byte(haystack), opts)
	if m == nil {
		return 0
	}
	return m.Score
}

// TestConcreteScenarios checks spec.md §8's scored examples, using
// CHAR_SCORE = MATCH_SCORE + MATCHING_CASE_BONUS = 16 as the baseline
// per-character contribution for a same-case letter match.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name   string
		needle string
		hay    string
		want   uint16
	}{
		{"plain middle match", "b", "abc", 16},
		{"prefix", "a", "abc", 16 + 12},
		{"prefix plus exact", "abc", "abc", 3*16 + 12 + 8},
		{"delimiter bonus", "b", "a-b", 16 + 4},
		{"single gap", "test", "Uterst", 4*16 - 5},
		{"gap of length two", "test", "Uterrst", 4*16 - 5 - 1},
		{"capitalization bonus", "D", "forDist", 16 + 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := score(t, c.needle, c.hay)
			if got != c.want {
				t.Errorf("score(%q, %q) = %d, want %d", c.needle, c.hay, got, c.want)
			}
		})
	}
}

// TestExactMatchInvariant checks spec.md §8 invariant 1:
// score(N, N) = |N|*(MATCH_SCORE + MATCHING_CASE_BONUS) + PREFIX_BONUS + EXACT_MATCH_BONUS.
func TestExactMatchInvariant(t *testing.T) {
	for _, n := range []string{"a", "ab", "abcdef", "Needle"} {
		want := uint16(len(n))*16 + 12 + 8
		got := score(t, n, n)
		if got != want {
			t.Errorf("score(%q, %q) = %d, want %d", n, n, got, want)
		}
	}
}

// TestEmptyNeedleScoresZero checks spec.md §8 invariant 2: score("", H) = 0,
// realized here through the one-shot API's documented empty-needle
// semantics (every candidate returned with score 0, spec.md §6).
func TestEmptyNeedleScoresZero(t *testing.T) {
	haystacks := [][]byte{[]byte("abc"), []byte(""), []byte("anything")}
	out, _ := MatchList(nil, haystacks, DefaultOptions())
	if len(out) != len(haystacks) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(haystacks))
	}
	for i, m := range out {
		if m.Score != 0 || m.Exact {
			t.Errorf("out[%d] = %+v, want score 0, non-exact", i, m)
		}
		if m.IndexInHaystack != uint32(i) {
			t.Errorf("out[%d].IndexInHaystack = %d, want %d", i, m.IndexInHaystack, i)
		}
	}
}

// TestPrefixBeatsDelimiter checks spec.md §8 scenario 8: a needle matching
// as a true prefix scores higher than the same needle matching right after
// a delimiter further into the haystack.
func TestPrefixBeatsDelimiter(t *testing.T) {
	prefixScore := score(t, "swap", "swap(test)")
	delimScore := score(t, "swap", "iter_swap(test)")
	if !(prefixScore > delimScore) {
		t.Errorf("prefix score %d should exceed delimiter score %d", prefixScore, delimScore)
	}
}

// TestOffsetPrefix checks spec.md §8: score("a", "-a") > score("a", "-b-a").
func TestOffsetPrefix(t *testing.T) {
	close := score(t, "a", "-a")
	far := score(t, "a", "-b-a")
	if !(close > far) {
		t.Errorf("score(a, -a) = %d should exceed score(a, -b-a) = %d", close, far)
	}
}

// TestPrefixBonusAppliedOnceWithCaseMatch checks that a same-case match on
// column 0 earns the matching-case bonus and the prefix bonus exactly once
// each: the case match neither removes nor doubles the prefix bonus.
func TestPrefixBonusAppliedOnceWithCaseMatch(t *testing.T) {
	// "A" against "Abc": column 0 still only gets MATCH_SCORE +
	// MATCHING_CASE_BONUS + PREFIX_BONUS once; the rule only ever adds
	// PREFIX_BONUS on column 0, never doubles it based on case.
	got := score(t, "A", "Abc")
	want := uint16(12 + 4 + 12) // MATCH_SCORE + MATCHING_CASE_BONUS + PREFIX_BONUS
	if got != want {
		t.Errorf("score(A, Abc) = %d, want %d", got, want)
	}
}

// TestMatchListOrdering checks spec.md §8: match_list with three identical
// candidates returns them in input order by default, and in descending
// score order (here all tied) once Sort is requested.
func TestMatchListOrdering(t *testing.T) {
	haystacks := [][]byte{[]byte("match"), []byte("match"), []byte("match")}

	opts := DefaultOptions()
	out, _ := MatchList([]byte("match"), haystacks, opts)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	for i, m := range out {
		if m.IndexInHaystack != uint32(i) {
			t.Errorf("input-order out[%d].IndexInHaystack = %d, want %d", i, m.IndexInHaystack, i)
		}
	}

	opts.Sort = true
	sorted, _ := MatchList([]byte("match"), haystacks, opts)
	if len(sorted) != 3 {
		t.Fatalf("len(sorted) = %d, want 3", len(sorted))
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Score > sorted[i-1].Score {
			t.Errorf("sorted[%d].Score = %d > sorted[%d].Score = %d", i, sorted[i].Score, i-1, sorted[i-1].Score)
		}
	}
}

// TestMinScoreFilter checks that candidates scoring below MinScore are
// dropped from MatchList's output.
func TestMinScoreFilter(t *testing.T) {
	haystacks := [][]byte{[]byte("needle"), []byte("zzzzzz")}
	opts := DefaultOptions()
	opts.MinScore = 1
	out, _ := MatchList([]byte("needle"), haystacks, opts)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].IndexInHaystack != 0 {
		t.Errorf("out[0].IndexInHaystack = %d, want 0", out[0].IndexInHaystack)
	}
}

// TestMatchIndicesOverlongFallsBackToGreedy exercises the greedy fallback
// for haystacks wider than lane.MaxWidth (spec.md §4.6, §4.7 step 2).
func TestMatchIndicesOverlongFallsBackToGreedy(t *testing.T) {
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'x'
	}
	copy(long[100:], []byte("needle"))

	m := MatchIndices([]byte("needle"), long, DefaultOptions())
	if m == nil {
		t.Fatal("MatchIndices returned nil for a candidate containing the needle")
	}
	if len(m.Indices) != len("needle") {
		t.Fatalf("len(m.Indices) = %d, want %d", len(m.Indices), len("needle"))
	}
}

// TestMaxTyposRejectsOverBudget checks that a candidate whose traceback
// reports more typos than opts.MaxTypos is dropped.
func TestMaxTyposRejectsOverBudget(t *testing.T) {
	opts := DefaultOptions()
	zero := uint16(0)
	opts.MaxTypos = &zero
	opts.Prefilter = false

	// "test" against "Uterst" requires a one-character gap: at least one
	// typo under any reasonable traceback, so a zero-typo budget rejects it.
	m := MatchIndices([]byte("test"), []byte("Uterst"), opts)
	if m != nil {
		t.Errorf("expected MatchIndices to reject an over-budget typo count, got %+v", m)
	}
}

// TestMatchIndicesEmptyNeedle checks that an empty needle returns nil from
// MatchIndices (unlike MatchList's empty-needle semantics).
func TestMatchIndicesEmptyNeedle(t *testing.T) {
	if m := MatchIndices(nil, []byte("abc"), DefaultOptions()); m != nil {
		t.Errorf("MatchIndices(nil, ...) = %+v, want nil", m)
	}
}

// TestMatchListStats checks that MatchList's returned Stats accounts for
// every candidate exactly once, split between prefilter rejections and
// candidates actually scored, and that disabling the prefilter routes
// every candidate to the scorer instead.
func TestMatchListStats(t *testing.T) {
	haystacks := [][]byte{[]byte("needle"), []byte("zzzzzz"), []byte("zzzzzzzz")}

	opts := DefaultOptions()
	_, stats := MatchList([]byte("needle"), haystacks, opts)
	if got := stats.CandidatesScored + stats.PrefilterRejections; got != uint64(len(haystacks)) {
		t.Errorf("CandidatesScored(%d) + PrefilterRejections(%d) = %d, want %d",
			stats.CandidatesScored, stats.PrefilterRejections, got, len(haystacks))
	}
	if stats.PrefilterRejections == 0 {
		t.Error("expected the prefilter to reject at least one non-matching candidate")
	}

	opts.Prefilter = false
	_, noFilterStats := MatchList([]byte("needle"), haystacks, opts)
	if noFilterStats.PrefilterRejections != 0 {
		t.Errorf("PrefilterRejections = %d with prefilter disabled, want 0", noFilterStats.PrefilterRejections)
	}
	if noFilterStats.CandidatesScored != uint64(len(haystacks)) {
		t.Errorf("CandidatesScored = %d with prefilter disabled, want %d", noFilterStats.CandidatesScored, len(haystacks))
	}
	if noFilterStats.BucketsDrained == 0 {
		t.Error("expected at least one bucket drain")
	}
}
