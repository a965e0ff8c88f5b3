// Package mis computes a maximal independent set of the k-mer graph whose
// edges connect keys within a given edit distance. A greedy single pass
// over the whole 4^k space: a key joins the set iff no already-kept key
// covers it. The resulting set is independent (pairwise distances > d) and
// maximal (every key of the space is within d of some member).
//
// This is a demonstration collaborator of the island partition — a cheap
// way to produce well-separated center lists — not part of its
// correctness-guaranteed core.
package mis

import (
	"errors"

	"github.com/sequtil/kmerisle/editdist"
	"github.com/sequtil/kmerisle/kmer"
)

// ErrBadK is returned when k is outside 1..kmer.MaxK.
var ErrBadK = errors.New("mis: k out of range")

// Greedy scans keys 0..4^k−1 in order and keeps each key that no kept key
// covers within edit distance d. Deterministic; the scan around the most
// recent hit exploits the locality of consecutive packed keys, so the
// common case touches only a few members.
//
// Time: O(4^k · |MIS| · k²) worst case, far less in practice.
// The full enumeration makes this practical only for small k.
func Greedy(k, d int) ([]kmer.Kmer, error) {
	if k < 1 || k > kmer.MaxK {
		return nil, ErrBadK
	}

	size := uint64(1) << (uint(k) << 1)
	set := []kmer.Kmer{0}
	lastHit := 0

	for i := uint64(1); i < size; i++ {
		x := kmer.Kmer(i)
		if j, ok := coveredBy(x, k, d, set, lastHit); ok {
			lastHit = j
			continue
		}
		set = append(set, x)
		lastHit = len(set) - 1
	}

	return set, nil
}

// coveredBy looks for a set member within distance d of x, scanning
// outward from the most recent hit: consecutive candidates tend to be
// covered by nearby members. Returns the member index on a hit.
func coveredBy(x kmer.Kmer, k, d int, set []kmer.Kmer, lastHit int) (int, bool) {
	for off := 0; ; off++ {
		lo, hi := lastHit-off, lastHit+off
		if lo < 0 && hi >= len(set) {
			return 0, false
		}
		if hi < len(set) && within(x, set[hi], k, d) {
			return hi, true
		}
		if off > 0 && lo >= 0 && within(x, set[lo], k, d) {
			return lo, true
		}
	}
}

// within reports dist(a, b) ≤ d, computed with the bound d+1 so the DP can
// bail out as soon as coverage is excluded.
func within(a, b kmer.Kmer, k, d int) bool {
	return editdist.Bounded(a, k, b, k, d+1) <= d
}
