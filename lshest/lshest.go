// Package lshest estimates, by sampling, how often two keys at a given
// edit distance collide under a center-list hashing: each key carries the
// list of centers it was assigned to with their distances, and two keys
// collide when the lists share a center.
//
// This is a randomized, statistical collaborator of the island partition —
// it reports observed collision rates per distance and makes no
// correctness claim.
package lshest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/sequtil/kmerisle/kmer"
)

// Sentinel errors.
var (
	// ErrBadList indicates a malformed center-list line.
	ErrBadList = errors.New("lshest: malformed center list")

	// ErrBadParams indicates unusable estimation parameters.
	ErrBadParams = errors.New("lshest: samples and distances must be positive")
)

// CenterDist is one entry of a key's center list.
type CenterDist struct {
	Center int32
	Dist   int
}

// HashLists maps every key of the k-length space to its center list.
// Keys outside any explored ball carry an empty list and never collide.
type HashLists struct {
	K     int
	Lists [][]CenterDist
}

// Load reads the center-list file produced by an assign-all run: one line
// per key, `<decoded> <count> <center> <dist> [<center> <dist> ...]`.
func Load(path string, k int) (*HashLists, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lshest: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, k)
}

// Parse is Load over an arbitrary reader.
func Parse(r io.Reader, k int) (*HashLists, error) {
	h := &HashLists{
		K:     k,
		Lists: make([][]CenterDist, uint64(1)<<(uint(k)<<1)),
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d", ErrBadList, line)
		}
		key, err := kmer.Encode(fields[0])
		if err != nil || len(fields[0]) != k {
			return nil, fmt.Errorf("%w: line %d: bad key %q", ErrBadList, line, fields[0])
		}
		ct, err := strconv.Atoi(fields[1])
		if err != nil || ct < 0 || len(fields) != 2+2*ct {
			return nil, fmt.Errorf("%w: line %d: count %q", ErrBadList, line, fields[1])
		}
		list := make([]CenterDist, 0, ct)
		for i := 0; i < ct; i++ {
			c, err1 := strconv.Atoi(fields[2+2*i])
			d, err2 := strconv.Atoi(fields[3+2*i])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("%w: line %d: pair %d", ErrBadList, line, i)
			}
			list = append(list, CenterDist{Center: int32(c), Dist: d})
		}
		h.Lists[key] = list
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lshest: read: %w", err)
	}

	return h, nil
}

// ShareCenter reports whether the center lists of s and t intersect —
// the collision predicate of the estimator.
func (h *HashLists) ShareCenter(s, t kmer.Kmer) bool {
	for _, a := range h.Lists[s.Value()] {
		for _, b := range h.Lists[t.Value()] {
			if a.Center == b.Center {
				return true
			}
		}
	}
	return false
}

// Estimate samples, for every distance d = 1..maxDist, n random key pairs
// at edit distance at most d and returns the fraction of sampled pairs
// that share a center. Deterministic for a fixed rng seed.
func (h *HashLists) Estimate(maxDist, n int, rng *rand.Rand) ([]float64, error) {
	if maxDist < 1 || n < 1 {
		return nil, ErrBadParams
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}

	rates := make([]float64, maxDist)
	for d := 1; d <= maxDist; d++ {
		hits := 0
		for i := 0; i < n; i++ {
			s := RandomKmer(h.K, rng)
			t := RandomEdit(s, h.K, d, rng)
			if h.ShareCenter(s, t) {
				hits++
			}
		}
		rates[d-1] = float64(hits) / float64(n)
	}
	return rates, nil
}
