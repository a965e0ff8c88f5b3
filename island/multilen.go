package island

import (
	"fmt"

	"github.com/sequtil/kmerisle/assign"
	"github.com/sequtil/kmerisle/frontier"
	"github.com/sequtil/kmerisle/kmer"
)

// multiRun carries the mutable state of a multi-length partition: one
// assignment table per handled key length. Conflict tests run per length
// bucket; the buckets are connected by the single-edit edges linking a
// k-mer to its (k−1)- and (k+1)-length neighbors.
type multiRun struct {
	k, p, q int

	short   *assign.Table // (k−1)-length keys
	mid     *assign.Table // k-length keys
	long    *assign.Table // (k+1)-length keys
	islands []*isle
	probe   *frontier.Set
}

// PartitionMultiLength grows and assigns the (k−1)-, k- and (k+1)-length
// key spaces in parallel from k-length centers. Growth edges: a k-mer
// spawns insertions into the long space, deletions into the short space
// and substitutions in its own; a short key spawns insertions back into
// the k-length space; long keys are frontier dead ends. The conflict test
// is the neighbor probe of radius p−1 across all three buckets.
//
// Requires 2 ≤ k ≤ 30 so that all three lengths stay packable; otherwise
// returns ErrBadK. Centers must be plain k-mers.
func PartitionMultiLength(k, p, q int, cs []kmer.Kmer, opts ...Option) (*MultiResult, error) {
	if k < 2 || k > kmer.MaxK-1 {
		return nil, fmt.Errorf("%w: k=%d (multi-length needs 2..%d)", ErrBadK, k, kmer.MaxK-1)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &multiRun{k: k, p: p, q: q, probe: frontier.New(64)}
	var err error
	if r.short, err = o.tables(k - 1); err != nil {
		return nil, err
	}
	if r.mid, err = o.tables(k); err != nil {
		return nil, err
	}
	if r.long, err = o.tables(k + 1); err != nil {
		return nil, err
	}

	for i, c := range cs {
		if c != c.Value() || uint64(c) >= r.mid.Size() {
			return nil, fmt.Errorf("%w: center %d", ErrBadCenter, i)
		}
		if r.mid.Get(c) != assign.Unassigned {
			return nil, fmt.Errorf("%w: center %d repeats an earlier seed", ErrBadCenter, i)
		}
		r.mid.Commit(c, int32(i))
		r.islands = append(r.islands, &isle{
			id:    int32(i),
			seeds: []kmer.Kmer{c},
			layer: []kmer.Kmer{c},
		})
	}

	r.rounds()
	return &MultiResult{K: k, Short: r.short, Kmers: r.mid, Long: r.long}, nil
}

// table selects the assignment table matching a key's length tag.
func (r *multiRun) table(s kmer.Kmer) *assign.Table {
	switch {
	case s.IsShort():
		return r.short
	case s.IsLong():
		return r.long
	default:
		return r.mid
	}
}

// grow replaces the island's frontier with the one-edit-farther keys of
// all three length buckets, marking each new key Visited in its bucket.
func (r *multiRun) grow(is *isle) {
	if len(is.layer) == 0 {
		return
	}
	next := make([]kmer.Kmer, 0, len(is.layer))
	for _, s := range is.layer {
		switch {
		case s.IsShort():
			kmer.VisitInsertions(s.Value(), r.k-1, func(x kmer.Kmer) {
				if r.mid.MarkVisited(x) {
					next = append(next, x)
				}
			})
		case s.IsLong():
			// Long keys do not expand; they are reachable endpoints only.
		default:
			kmer.VisitInsertions(s, r.k, func(x kmer.Kmer) {
				if r.long.MarkVisited(x) {
					next = append(next, x.Long())
				}
			})
			kmer.VisitDeletions(s, r.k, func(x kmer.Kmer) {
				if r.short.MarkVisited(x) {
					next = append(next, x.Short())
				}
			})
			kmer.VisitSubstitutions(s, r.k, func(x kmer.Kmer) {
				if r.mid.MarkVisited(x) {
					next = append(next, x)
				}
			})
		}
	}
	is.layer = next
}

// conflict probes the ball of radius p−1 around candidate s across all
// three buckets and reports whether any touched key is finally assigned to
// an island other than id.
func (r *multiRun) conflict(s kmer.Kmer, id int32) bool {
	depth := r.p - 1
	if depth <= 0 {
		return false
	}

	fr := r.probe
	fr.Reset()
	fr.Seed(s)

	conflict := false
	check := func(t *assign.Table, x kmer.Kmer) {
		if v := t.Get(x); v >= 0 && v != id {
			conflict = true
		}
	}

	for ; depth > 0; depth-- {
		for _, cur := range fr.Current() {
			switch {
			case cur.IsShort():
				kmer.VisitInsertions(cur.Value(), r.k-1, func(x kmer.Kmer) {
					check(r.mid, x)
					fr.InsertIfNew(x)
				})
			case cur.IsLong():
				kmer.VisitDeletions(cur.Value(), r.k+1, func(x kmer.Kmer) {
					check(r.mid, x)
					fr.InsertIfNew(x)
				})
			default:
				kmer.VisitInsertions(cur, r.k, func(x kmer.Kmer) {
					check(r.long, x)
					fr.InsertIfNew(x.Long())
				})
				kmer.VisitDeletions(cur, r.k, func(x kmer.Kmer) {
					check(r.short, x)
					fr.InsertIfNew(x.Short())
				})
				kmer.VisitSubstitutions(cur, r.k, func(x kmer.Kmer) {
					check(r.mid, x)
					fr.InsertIfNew(x)
				})
			}
			if conflict {
				return true
			}
		}
		fr.Swap()
	}
	return false
}

// rounds drives the synchronized multi-length growth; every island
// advances one radius before any starts the next, and every fresh key of
// any bucket is finalized at the radius that reached it.
func (r *multiRun) rounds() {
	for radius := 1; radius <= r.q>>1; radius++ {
		for _, is := range r.islands {
			r.grow(is)
			for _, s := range is.layer {
				t := r.table(s)
				if t.Get(s) > assign.Visited {
					continue
				}
				if r.conflict(s, is.id) {
					t.Commit(s, assign.Gray)
				} else {
					t.Commit(s, is.id)
				}
			}
		}
	}
}
