// Package island implements the center-anchored BFS partitioning of the
// k-mer space: a locality-sensitive hashing function h mapping packed keys
// to island ids.
//
// Given parameters p and q and an ordered list of centers (or cliques of
// co-seeded centers), the partition guarantees for all keys s, t with
// h(s), h(t) ≥ 0:
//
//   - Local agreement: dist(s, t) < p ⇒ h(s) = h(t)
//   - Separation:      dist(s, t) > q ⇒ h(s) ≠ h(t)
//
// where dist is the Levenshtein distance. Both properties are achieved
// with purely local computation: islands grow breadth-first one edit
// radius per round up to ⌊q/2⌋ (bounding each island's diameter by q), and
// a per-key conflict test keeps a gray buffer of local width at least p
// between islands. Keys in the gray buffer get the assignment -1; keys the
// traversal never finalizes stay out of the output entirely.
//
// The rounds are synchronized: every island advances one radius, in id
// order, before any island starts the next. Without that fairness a fast
// island could finalize keys deep inside a slower island's q-ball and
// break separation.
//
// Two conflict tests are provided (see Strategy), plus a clique-seeded
// entry point and a multi-length variant that grows and assigns the
// (k−1)- and (k+1)-length spaces alongside the k-length one. The
// strategies meet the same two guarantees but draw gray boundaries
// differently; outputs are not expected to be identical across them.
//
// Everything is single-threaded and deterministic: identical inputs
// produce byte-identical output files.
package island
