package mis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sequtil/kmerisle/editdist"
	"github.com/sequtil/kmerisle/kmer"
	"github.com/sequtil/kmerisle/mis"
)

// TestGreedy_IndependentAndMaximal checks the two defining properties on
// the full k=3 space with d=1: members are pairwise more than d apart,
// and every key of the space is within d of some member.
func TestGreedy_IndependentAndMaximal(t *testing.T) {
	set, err := mis.Greedy(3, 1)
	require.NoError(t, err)
	require.NotEmpty(t, set)

	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			d := editdist.Dist(set[i], set[j], 3)
			assert.Greater(t, d, 1, "members %s and %s too close",
				kmer.Decode(set[i], 3), kmer.Decode(set[j], 3))
		}
	}

	for x := kmer.Kmer(0); x < 64; x++ {
		covered := false
		for _, m := range set {
			if editdist.Bounded(x, 3, m, 3, 2) <= 1 {
				covered = true
				break
			}
		}
		assert.True(t, covered, "key %s uncovered", kmer.Decode(x, 3))
	}
}

// TestGreedy_FirstMemberAndDeterminism pins the scan order: key 0 is
// always kept, and two runs agree member for member.
func TestGreedy_FirstMemberAndDeterminism(t *testing.T) {
	a, err := mis.Greedy(3, 1)
	require.NoError(t, err)
	b, err := mis.Greedy(3, 1)
	require.NoError(t, err)

	assert.Equal(t, kmer.Kmer(0), a[0])
	assert.Equal(t, a, b)
}

// TestGreedy_WideDistanceShrinksSet sanity-checks the distance knob: at
// d ≥ k a single member covers everything.
func TestGreedy_WideDistanceShrinksSet(t *testing.T) {
	set, err := mis.Greedy(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []kmer.Kmer{0}, set)
}

// TestGreedy_BadK covers the range check.
func TestGreedy_BadK(t *testing.T) {
	_, err := mis.Greedy(0, 1)
	assert.ErrorIs(t, err, mis.ErrBadK)
	_, err = mis.Greedy(32, 1)
	assert.ErrorIs(t, err, mis.ErrBadK)
}
