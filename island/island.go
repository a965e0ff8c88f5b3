// Package island grows center-anchored islands over the packed k-mer space
// with a round-synchronized BFS and commits every reached key to exactly
// one island id or to the gray area.
package island

import (
	"sort"

	"github.com/sequtil/kmerisle/assign"
	"github.com/sequtil/kmerisle/editdist"
	"github.com/sequtil/kmerisle/frontier"
	"github.com/sequtil/kmerisle/kmer"
)

// neighbor is one entry of an island's precomputed center list: another
// center close enough (≤ p+q) to ever force a gray decision, with its
// distance to this island's own center.
type neighbor struct {
	center kmer.Kmer
	dist   int
}

// isle is one island: a stable id, its seed set, and the current BFS
// frontier. The frontier holds k-mers untagged and (k−1)-mers tagged and is
// replaced wholesale every round.
type isle struct {
	id        int32
	seeds     []kmer.Kmer
	layer     []kmer.Kmer
	neighbors []neighbor // CheckByCenters only
}

// run carries the mutable state of one fixed-length partition.
type run struct {
	k, p, q  int
	strategy Strategy

	ht        *assign.Table // k-length assignment table
	shortSeen []bool        // growth dedup for the (k−1)-length layer keys
	islands   []*isle
	probe     *frontier.Set // reused across conflict probes
}

// grow replaces the island's frontier with the keys exactly one edit
// farther out that no traversal has seen yet: every k-mer spawns its
// deletions (entering the layer tagged short) and substitutions, every
// short key spawns its insertions back into the k-length space. New k-mers
// are marked Visited in the shared table, which is what keeps every key in
// exactly one island's frontier globally.
func (r *run) grow(is *isle) {
	if len(is.layer) == 0 {
		return
	}
	next := make([]kmer.Kmer, 0, len(is.layer))
	for _, s := range is.layer {
		if s.IsShort() {
			kmer.VisitInsertions(s.Value(), r.k-1, func(x kmer.Kmer) {
				if r.ht.MarkVisited(x) {
					next = append(next, x)
				}
			})
			continue
		}
		kmer.VisitDeletions(s, r.k, func(x kmer.Kmer) {
			if !r.shortSeen[x] {
				r.shortSeen[x] = true
				next = append(next, x.Short())
			}
		})
		kmer.VisitSubstitutions(s, r.k, func(x kmer.Kmer) {
			if r.ht.MarkVisited(x) {
				next = append(next, x)
			}
		})
	}
	is.layer = next
}

// linkNeighbors precomputes, for every island, the other centers within
// combined distance p+q of its own center, sorted from closest to
// farthest. Centers farther than p+q can never force a gray decision: by
// the triangle inequality dist(s, c_j) − dist(s, c_i) > p for every s
// within radius q/2 of c_i. Ties are broken by island id to keep runs
// deterministic. Complexity: O(m²·k²) for m centers.
func (r *run) linkNeighbors() {
	limit := r.p + r.q
	for i, a := range r.islands {
		for j := i + 1; j < len(r.islands); j++ {
			b := r.islands[j]
			d := editdist.Bounded(a.seeds[0], r.k, b.seeds[0], r.k, limit+1)
			if d <= limit {
				a.neighbors = append(a.neighbors, neighbor{center: b.seeds[0], dist: d})
				b.neighbors = append(b.neighbors, neighbor{center: a.seeds[0], dist: d})
			}
		}
	}
	for _, is := range r.islands {
		sort.SliceStable(is.neighbors, func(x, y int) bool {
			return is.neighbors[x].dist < is.neighbors[y].dist
		})
	}
}

// conflictWithCenters reports whether candidate s, reached at the given
// radius from this island's center, lies too close to a competing center:
// any listed center c_j with dist(s, c_j) − radius < p qualifies. The scan
// stops at the first qualifying neighbor; the distance computation is
// bounded by p+radius, beyond which the strict comparison cannot hold.
func (r *run) conflictWithCenters(is *isle, s kmer.Kmer, radius int) bool {
	bound := r.p + radius
	for i := range is.neighbors {
		d := editdist.Bounded(s, r.k, is.neighbors[i].center, r.k, bound)
		if d-radius < r.p {
			return true
		}
	}
	return false
}

// conflictWithNeighbors probes the ball of radius p−1 around candidate s
// (its own length position included via the tag) and reports whether it
// touches any key finally assigned to an island other than id. The probe
// walks the same mixed k/(k−1) edit graph as growth but with its own
// dedup set, because it must be free to revisit keys owned elsewhere
// without committing anything.
func (r *run) conflictWithNeighbors(s kmer.Kmer, id int32) bool {
	depth := r.p - 1
	if depth <= 0 {
		return false
	}

	fr := r.probe
	fr.Reset()
	fr.Seed(s)

	conflict := false
	hit := func(x kmer.Kmer) {
		if v := r.ht.Get(x); v >= 0 && v != id {
			conflict = true
		}
		fr.InsertIfNew(x)
	}

	for ; depth > 0; depth-- {
		for _, cur := range fr.Current() {
			if cur.IsShort() {
				kmer.VisitInsertions(cur.Value(), r.k-1, hit)
			} else {
				// Short keys carry no assignment in a fixed-length
				// run, so deletions only feed the next probe layer.
				kmer.VisitDeletions(cur, r.k, func(x kmer.Kmer) {
					fr.InsertIfNew(x.Short())
				})
				kmer.VisitSubstitutions(cur, r.k, hit)
			}
			if conflict {
				return true
			}
		}
		fr.Swap()
	}
	return false
}

// conflict dispatches the configured strategy for candidate s reached at
// radius by island is.
func (r *run) conflict(is *isle, s kmer.Kmer, radius int) bool {
	if r.strategy == CheckByCenters {
		return r.conflictWithCenters(is, s, radius)
	}
	return r.conflictWithNeighbors(s, is.id)
}

// rounds drives the synchronized growth: every island advances one radius,
// in id order, before any island starts the next radius. That fairness is
// what bounds each island's diameter by q — a key finalized at radius r has
// seen the influence of every competing center at radius r.
func (r *run) rounds() {
	for radius := 1; radius <= r.q>>1; radius++ {
		for _, is := range r.islands {
			r.grow(is)
			for _, s := range is.layer {
				// Only k-mers are finalized here; short keys exist to
				// carry the traversal across the deletion edges.
				if s.IsShort() || r.ht.Get(s) > assign.Visited {
					continue
				}
				if r.conflict(is, s, radius) {
					r.ht.Commit(s, assign.Gray)
				} else {
					r.ht.Commit(s, is.id)
				}
			}
		}
	}
}
