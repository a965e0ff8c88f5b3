// Package kmerisle partitions the combinatorial space of all length-k
// strings over {A,C,G,T} into center-anchored islands, yielding a
// locality-sensitive hashing function for approximate-neighbor bucketing
// in large-scale sequence comparison.
//
// Two guarantees hold for every pair of assigned keys s, t:
//
//	edit(s, t) < p  ⇒  same island
//	edit(s, t) > q  ⇒  different islands
//
// achieved with purely local, incremental computation — the 4^k space is
// never materialized beyond the flat assignment tables.
//
// The module is organized as one package per concern:
//
//	kmer/     — 2-bit packed keys, encode/decode, single-edit neighbors
//	editdist/ — bounded single-row Levenshtein engine
//	frontier/ — deduplicating per-round key collection with generation swap
//	assign/   — flat per-length assignment tables + allocation retry policy
//	island/   — the round-synchronized BFS partition, three strategies
//	centers/  — center-list and clique input parsing
//	mis/      — greedy maximal independent set (center-list generator)
//	lshest/   — sampling collision-rate estimator for center lists
//
// The kmerisle command under cmd/ ties the pieces into a batch tool:
// one subcommand per partition strategy, plus the mis and lsh helpers.
package kmerisle
