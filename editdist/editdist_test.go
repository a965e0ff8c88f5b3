package editdist_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sequtil/kmerisle/editdist"
	"github.com/sequtil/kmerisle/kmer"
)

// mustEncode is a test helper.
func mustEncode(t *testing.T, s string) kmer.Kmer {
	t.Helper()
	x, err := kmer.Encode(s)
	require.NoError(t, err)
	return x
}

// refDist is a straightforward full-matrix Levenshtein over strings,
// used as the oracle for the single-row engine.
func refDist(a, b string) int {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := dp[i-1][j-1] + cost
			if d := dp[i-1][j] + 1; d < best {
				best = d
			}
			if d := dp[i][j-1] + 1; d < best {
				best = d
			}
			dp[i][j] = best
		}
	}
	return dp[n][m]
}

// TestDist_Known pins a handful of hand-checked distances.
func TestDist_Known(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"AAAA", "AAAA", 0},
		{"AAAA", "AAAT", 1},
		{"AAAA", "TTTT", 4},
		{"ACGT", "AGT", 1},
		{"ACGT", "TACGT", 1},
		{"ACG", "GCA", 2},
		{"A", "T", 1},
	}
	for _, c := range cases {
		a, b := mustEncode(t, c.a), mustEncode(t, c.b)
		got := editdist.Bounded(a, len(c.a), b, len(c.b), -1)
		assert.Equal(t, c.want, got, "dist(%q, %q)", c.a, c.b)
	}
}

// TestDist_ZeroAndSymmetric checks d(x,x)=0 and d(a,b)=d(b,a) over random
// pairs of possibly different lengths.
func TestDist_ZeroAndSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		la, lb := 1+rng.Intn(8), 1+rng.Intn(8)
		a := kmer.Kmer(rng.Uint64() & (1<<(uint(la)<<1) - 1))
		b := kmer.Kmer(rng.Uint64() & (1<<(uint(lb)<<1) - 1))

		assert.Zero(t, editdist.Bounded(a, la, a, la, -1))
		assert.Equal(t,
			editdist.Bounded(a, la, b, lb, -1),
			editdist.Bounded(b, lb, a, la, -1),
			"symmetry for %s/%s", kmer.Decode(a, la), kmer.Decode(b, lb))
	}
}

// TestDist_Triangle samples triples and checks
// d(a,c) ≤ d(a,b) + d(b,c).
func TestDist_Triangle(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		la, lb, lc := 1+rng.Intn(6), 1+rng.Intn(6), 1+rng.Intn(6)
		a := kmer.Kmer(rng.Uint64() & (1<<(uint(la)<<1) - 1))
		b := kmer.Kmer(rng.Uint64() & (1<<(uint(lb)<<1) - 1))
		c := kmer.Kmer(rng.Uint64() & (1<<(uint(lc)<<1) - 1))

		ab := editdist.Bounded(a, la, b, lb, -1)
		bc := editdist.Bounded(b, lb, c, lc, -1)
		ac := editdist.Bounded(a, la, c, lc, -1)
		assert.LessOrEqual(t, ac, ab+bc)
	}
}

// TestDist_MatchesReference cross-checks the packed engine against a
// full-matrix string oracle on random inputs.
func TestDist_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 500; i++ {
		la, lb := 1+rng.Intn(7), 1+rng.Intn(7)
		a := kmer.Kmer(rng.Uint64() & (1<<(uint(la)<<1) - 1))
		b := kmer.Kmer(rng.Uint64() & (1<<(uint(lb)<<1) - 1))
		sa, sb := kmer.Decode(a, la), kmer.Decode(b, lb)

		assert.Equal(t, refDist(sa, sb), editdist.Bounded(a, la, b, lb, -1),
			"dist(%q, %q)", sa, sb)
	}
}

// TestBounded_Contract verifies the early-exit guarantees over random
// pairs and bounds: a result below maxD is exact, a result at or above
// maxD never exceeds the true distance and implies the truth is at least
// maxD.
func TestBounded_Contract(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 2000; i++ {
		la, lb := 1+rng.Intn(7), 1+rng.Intn(7)
		a := kmer.Kmer(rng.Uint64() & (1<<(uint(la)<<1) - 1))
		b := kmer.Kmer(rng.Uint64() & (1<<(uint(lb)<<1) - 1))
		maxD := rng.Intn(8)

		truth := editdist.Bounded(a, la, b, lb, -1)
		got := editdist.Bounded(a, la, b, lb, maxD)

		require.LessOrEqual(t, got, truth, "never above the truth")
		if truth <= maxD {
			require.Equal(t, truth, got, "true distance within the bound must be exact")
		} else {
			require.GreaterOrEqual(t, got, maxD, "over-bound result must certify ≥ maxD")
		}
	}
}

// TestDist_Convenience checks the same-length shorthand.
func TestDist_Convenience(t *testing.T) {
	a, b := mustEncode(t, "ACCA"), mustEncode(t, "TCCT")
	assert.Equal(t, 2, editdist.Dist(a, b, 4))
}

// TestBoundedStrings mirrors the packed contract on raw strings.
func TestBoundedStrings(t *testing.T) {
	assert.Equal(t, 0, editdist.BoundedStrings("ACGT", "ACGT", -1))
	assert.Equal(t, 2, editdist.BoundedStrings("ACG", "GCA", -1))
	assert.Equal(t, 1, editdist.BoundedStrings("ACGT", "ACG", -1))

	// Bounded: truth 4 with maxD 2 must come back ≥ 2 and ≤ 4.
	got := editdist.BoundedStrings("AAAA", "TTTT", 2)
	assert.GreaterOrEqual(t, got, 2)
	assert.LessOrEqual(t, got, 4)
}

// TestBounded_IgnoresTags verifies tagged operands compare by payload.
func TestBounded_IgnoresTags(t *testing.T) {
	a := mustEncode(t, "ACG")
	b := mustEncode(t, "ACT")
	assert.Equal(t, 1, editdist.Bounded(a.Short(), 3, b, 3, -1))
	assert.Equal(t, 1, editdist.Bounded(a, 3, b.Long(), 3, -1))
}
