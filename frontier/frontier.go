// Package frontier provides a deduplicating per-round key collector for
// layered traversals: keys inserted during the current round accumulate in
// a pending generation, and a generation swap promotes them to the current
// layer while the dedup memory persists across rounds.
package frontier

import "github.com/sequtil/kmerisle/kmer"

// Set collects keys one BFS generation at a time. Insertions go to the
// pending generation; Swap promotes pending to current. A key is accepted
// at most once over the lifetime of the Set (until Reset), regardless of
// the generation it arrived in.
//
// Set is the explicit-dedup realization of frontier collection: it is
// independent of any global assignment state, which makes it safe for
// localized probes that must revisit keys owned by other islands without
// committing anything. The zero value is not usable; call New.
type Set struct {
	seen map[kmer.Kmer]struct{}
	cur  []kmer.Kmer
	next []kmer.Kmer
}

// New returns an empty Set with capacity hints sized for hint keys.
func New(hint int) *Set {
	return &Set{
		seen: make(map[kmer.Kmer]struct{}, hint),
		cur:  make([]kmer.Kmer, 0, hint),
		next: make([]kmer.Kmer, 0, hint),
	}
}

// InsertIfNew adds x to the pending generation unless it was ever inserted
// before. Reports whether x was new. Complexity: O(1) expected.
func (s *Set) InsertIfNew(x kmer.Kmer) bool {
	if _, ok := s.seen[x]; ok {
		return false
	}
	s.seen[x] = struct{}{}
	s.next = append(s.next, x)
	return true
}

// Seed inserts x directly into the current layer, bypassing the pending
// generation. Used for the distance-0 positions of a traversal.
func (s *Set) Seed(x kmer.Kmer) bool {
	if _, ok := s.seen[x]; ok {
		return false
	}
	s.seen[x] = struct{}{}
	s.cur = append(s.cur, x)
	return true
}

// Swap promotes the pending generation to current and clears pending.
// The dedup memory is untouched. Complexity: O(1).
func (s *Set) Swap() {
	s.cur, s.next = s.next, s.cur[:0]
}

// Current returns the keys of the current layer in insertion order.
// The slice is owned by the Set and valid until the next Swap or Reset.
func (s *Set) Current() []kmer.Kmer { return s.cur }

// Len reports the number of keys in the current layer.
func (s *Set) Len() int { return len(s.cur) }

// Reset empties the Set entirely, dedup memory included, retaining
// allocated capacity where possible.
func (s *Set) Reset() {
	clear(s.seen)
	s.cur = s.cur[:0]
	s.next = s.next[:0]
}
