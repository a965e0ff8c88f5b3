package assign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sequtil/kmerisle/assign"
	"github.com/sequtil/kmerisle/kmer"
)

// TestNew_SizesAndInitialState verifies the 4^length allocation and that
// every slot starts Unassigned.
func TestNew_SizesAndInitialState(t *testing.T) {
	tb, err := assign.New(3)
	require.NoError(t, err)

	assert.Equal(t, 3, tb.Length())
	assert.Equal(t, uint64(64), tb.Size())
	for i := uint64(0); i < tb.Size(); i++ {
		require.Equal(t, assign.Unassigned, tb.Get(kmer.Kmer(i)))
	}
}

// TestNew_RejectsBadLength covers both bounds.
func TestNew_RejectsBadLength(t *testing.T) {
	_, err := assign.New(0)
	assert.ErrorIs(t, err, assign.ErrLength)
	_, err = assign.New(kmer.MaxK + 1)
	assert.ErrorIs(t, err, assign.ErrLength)
}

// TestMarkVisited_MonotoneTransition verifies Unassigned→Visited happens
// once and later states are untouched.
func TestMarkVisited_MonotoneTransition(t *testing.T) {
	tb, err := assign.New(2)
	require.NoError(t, err)
	x := kmer.Kmer(5)

	assert.True(t, tb.MarkVisited(x))
	assert.Equal(t, assign.Visited, tb.Get(x))
	assert.False(t, tb.MarkVisited(x), "second mark is a no-op")

	tb.Commit(x, 7)
	assert.False(t, tb.MarkVisited(x), "terminal state is immutable")
	assert.Equal(t, int32(7), tb.Get(x))
}

// TestCommit_FromSeedAndFromVisited covers both legal source states, and
// Gray as a terminal value.
func TestCommit_FromSeedAndFromVisited(t *testing.T) {
	tb, err := assign.New(2)
	require.NoError(t, err)

	tb.Commit(kmer.Kmer(0), 0) // center seeding from Unassigned
	assert.Equal(t, int32(0), tb.Get(kmer.Kmer(0)))

	tb.MarkVisited(kmer.Kmer(1))
	tb.Commit(kmer.Kmer(1), assign.Gray)
	assert.Equal(t, assign.Gray, tb.Get(kmer.Kmer(1)))
}

// TestCommit_SingleWriterViolationPanics pins the double-commit assertion:
// it guards a scheduling invariant, so it must fail loudly.
func TestCommit_SingleWriterViolationPanics(t *testing.T) {
	tb, err := assign.New(2)
	require.NoError(t, err)
	tb.MarkVisited(kmer.Kmer(3))
	tb.Commit(kmer.Kmer(3), 1)

	assert.Panics(t, func() { tb.Commit(kmer.Kmer(3), 2) })
	assert.Panics(t, func() { tb.Commit(kmer.Kmer(2), assign.Visited) },
		"Visited is not a terminal value")
}

// TestCommit_IgnoresTags verifies tagged keys address their payload slot.
func TestCommit_IgnoresTags(t *testing.T) {
	tb, err := assign.New(2)
	require.NoError(t, err)
	x := kmer.Kmer(9)

	tb.MarkVisited(x.Short())
	assert.Equal(t, assign.Visited, tb.Get(x))
	tb.Commit(x.Long(), 4)
	assert.Equal(t, int32(4), tb.Get(x))
}

// TestEachAssigned_SkipsUnfinalized verifies only Gray and id states are
// emitted, in increasing key order.
func TestEachAssigned_SkipsUnfinalized(t *testing.T) {
	tb, err := assign.New(2)
	require.NoError(t, err)

	tb.Commit(kmer.Kmer(2), 0)
	tb.MarkVisited(kmer.Kmer(4)) // visited only: must not appear
	tb.MarkVisited(kmer.Kmer(7))
	tb.Commit(kmer.Kmer(7), assign.Gray)

	var keys []kmer.Kmer
	var vals []int32
	tb.EachAssigned(func(x kmer.Kmer, v int32) {
		keys = append(keys, x)
		vals = append(vals, v)
	})

	assert.Equal(t, []kmer.Kmer{2, 7}, keys)
	assert.Equal(t, []int32{0, assign.Gray}, vals)
}
