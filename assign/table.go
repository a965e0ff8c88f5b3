// Package assign holds the flat per-length assignment tables that back the
// island partition: one int32 state slot per key of a fixed length.
package assign

import (
	"errors"

	"github.com/sequtil/kmerisle/kmer"
)

// Assignment states. A slot moves Unassigned → Visited → {Gray | id ≥ 0}
// and never backwards; Gray and island ids are terminal.
const (
	// Unassigned marks a key never reached by any traversal.
	Unassigned int32 = -3

	// Visited marks a key reached by BFS but not yet finalized.
	Visited int32 = -2

	// Gray marks a key deliberately left without an island id.
	Gray int32 = -1
)

// Sentinel errors.
var (
	// ErrLength is returned for a key length outside 1..kmer.MaxK.
	ErrLength = errors.New("assign: key length must be between 1 and 31")
)

// Table maps every key of one fixed length to its assignment state.
// It is allocated at full 4^length size up front, so lookups and writes are
// single array accesses. Exactly one writer may commit a given key's
// terminal state; Commit enforces that with a monotonicity check.
type Table struct {
	length int
	slots  []int32
}

// New allocates a Table for keys of the given length, every slot
// Unassigned. Memory: 4^length slots of 4 bytes. Returns ErrLength when
// length is outside 1..kmer.MaxK.
func New(length int) (*Table, error) {
	if length < 1 || length > kmer.MaxK {
		return nil, ErrLength
	}
	slots := make([]int32, uint64(1)<<(uint(length)<<1))
	for i := range slots {
		slots[i] = Unassigned
	}
	return &Table{length: length, slots: slots}, nil
}

// Length returns the key length this table covers.
func (t *Table) Length() int { return t.length }

// Size returns the number of slots, 4^length.
func (t *Table) Size() uint64 { return uint64(len(t.slots)) }

// Get returns the state of key x. Tags are ignored; the caller is
// responsible for addressing the table of the matching length.
func (t *Table) Get(x kmer.Kmer) int32 {
	return t.slots[x.Value()]
}

// MarkVisited moves x from Unassigned to Visited and reports whether it did.
// A key in any later state is left untouched.
func (t *Table) MarkVisited(x kmer.Kmer) bool {
	i := x.Value()
	if t.slots[i] != Unassigned {
		return false
	}
	t.slots[i] = Visited
	return true
}

// Commit finalizes x to v, which must be Gray or an island id ≥ 0.
// The current state must be Unassigned (seeding) or Visited; committing a
// key twice violates the single-writer invariant and panics, since it can
// only be caused by a scheduling bug, never by input.
func (t *Table) Commit(x kmer.Kmer, v int32) {
	if v < Gray {
		panic("assign: Commit value must be Gray or an island id")
	}
	i := x.Value()
	if t.slots[i] > Visited {
		panic("assign: key committed twice")
	}
	t.slots[i] = v
}

// EachAssigned calls fn for every finalized key (state Gray or id ≥ 0) in
// increasing key order. Keys that only reached Visited are skipped.
func (t *Table) EachAssigned(fn func(x kmer.Kmer, v int32)) {
	for i, v := range t.slots {
		if v > Visited {
			fn(kmer.Kmer(i), v)
		}
	}
}
