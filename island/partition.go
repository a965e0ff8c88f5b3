package island

import (
	"fmt"

	"github.com/sequtil/kmerisle/assign"
	"github.com/sequtil/kmerisle/centers"
	"github.com/sequtil/kmerisle/frontier"
	"github.com/sequtil/kmerisle/kmer"
)

// Partition builds the locality-sensitive hashing function for the
// k-length key space anchored at the given centers: center i seeds island
// i, islands grow one edit-distance radius per round up to ⌊q/2⌋, and
// every reached key is committed to its island id or to the gray area.
//
// The result satisfies, for all keys s, t with defined assignments ≥ 0:
//
//	dist(s, t) < p  ⇒  same id   (local agreement)
//	dist(s, t) > q  ⇒  different id   (separation)
//
// p > q yields no quality guarantee (most keys gray out) but is not an
// error. Returns ErrBadK for k outside 1..31, ErrBadCenter for a seed that
// does not fit the key space or repeats, ErrOptionViolation for bad
// options, or a table allocation failure from the configured factory.
//
// Complexity is bounded by the explored ball, not 4^k: each frontier key
// generates at most 3k substitutions, k deletions and 4k insertions per
// round over ⌊q/2⌋ rounds.
func Partition(k, p, q int, cs []kmer.Kmer, opts ...Option) (*Result, error) {
	if k < 1 || k > kmer.MaxK {
		return nil, fmt.Errorf("%w: k=%d", ErrBadK, k)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r, err := newRun(k, p, q, o)
	if err != nil {
		return nil, err
	}
	for i, c := range cs {
		if c != c.Value() || uint64(c) >= r.ht.Size() {
			return nil, fmt.Errorf("%w: center %d", ErrBadCenter, i)
		}
		if r.ht.Get(c) != assign.Unassigned {
			return nil, fmt.Errorf("%w: center %d repeats an earlier seed", ErrBadCenter, i)
		}
		r.ht.Commit(c, int32(i))
		r.islands = append(r.islands, &isle{
			id:    int32(i),
			seeds: []kmer.Kmer{c},
			layer: []kmer.Kmer{c},
		})
	}
	if r.strategy == CheckByCenters {
		r.linkNeighbors()
	}

	r.rounds()
	return &Result{K: k, Kmers: r.ht}, nil
}

// PartitionCliques is Partition with multi-seeded islands: all members of
// clique i occupy distance-0 positions of island i under the shared id.
// Members of length k−1 (tagged) enter the initial frontier as short keys.
// The conflict test is always the neighbor probe; the centers-precomputed
// list has no single anchor to sort around.
func PartitionCliques(k, p, q int, cls []centers.Clique, opts ...Option) (*Result, error) {
	if k < 2 || k > kmer.MaxK {
		return nil, fmt.Errorf("%w: k=%d", ErrBadK, k)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.strategy = CheckByNeighbors

	r, err := newRun(k, p, q, o)
	if err != nil {
		return nil, err
	}
	for i, cl := range cls {
		is := &isle{id: int32(i)}
		for _, c := range cl.Members {
			if c.IsLong() {
				return nil, fmt.Errorf("%w: clique %d carries a long tag", ErrBadCenter, i)
			}
			if c.IsShort() {
				v := c.Value()
				if uint64(v) >= uint64(len(r.shortSeen)) {
					return nil, fmt.Errorf("%w: clique %d", ErrBadCenter, i)
				}
				// Short seeds only steer the traversal; they carry no
				// assignment of their own in a fixed-length run.
				r.shortSeen[v] = true
			} else {
				if uint64(c) >= r.ht.Size() {
					return nil, fmt.Errorf("%w: clique %d", ErrBadCenter, i)
				}
				if r.ht.Get(c) != assign.Unassigned {
					return nil, fmt.Errorf("%w: clique %d repeats an earlier seed", ErrBadCenter, i)
				}
				r.ht.Commit(c, int32(i))
			}
			is.seeds = append(is.seeds, c)
			is.layer = append(is.layer, c)
		}
		r.islands = append(r.islands, is)
	}

	r.rounds()
	return &Result{K: k, Kmers: r.ht}, nil
}

// newRun allocates the shared state of a fixed-length partition.
func newRun(k, p, q int, o Options) (*run, error) {
	ht, err := o.tables(k)
	if err != nil {
		return nil, err
	}
	var shortSeen []bool
	if k > 1 {
		shortSeen = make([]bool, uint64(1)<<(uint(k-1)<<1))
	} else {
		// k=1 deletes to the empty string; one slot suffices.
		shortSeen = make([]bool, 1)
	}
	return &run{
		k:         k,
		p:         p,
		q:         q,
		strategy:  o.strategy,
		ht:        ht,
		shortSeen: shortSeen,
		probe:     frontier.New(64),
	}, nil
}
