// Package kmer packs sequences over the alphabet {A,C,G,T} into unsigned
// integers, 2 bits per base, and enumerates single-edit neighbors of a
// packed key without materializing strings.
package kmer

// bases maps a 2-bit code to its character. The inverse mapping is
// A=0, C=1, G=2, T=3.
var bases = [4]byte{'A', 'C', 'G', 'T'}

// Encode packs s into a Kmer. The first character of s lands in the most
// significant occupied bit pair. Returns ErrLength when len(s) is outside
// 1..MaxK and ErrInvalidSymbol on any character outside {A,C,G,T}.
// Complexity: O(len(s)).
func Encode(s string) (Kmer, error) {
	if len(s) < 1 || len(s) > MaxK {
		return 0, ErrLength
	}
	var x Kmer
	for i := 0; i < len(s); i++ {
		var code Kmer
		switch s[i] {
		case 'A':
			code = 0
		case 'C':
			code = 1
		case 'G':
			code = 2
		case 'T':
			code = 3
		default:
			return 0, ErrInvalidSymbol
		}
		x = x<<2 | code
	}
	return x, nil
}

// Decode unpacks the low k bases of x into a string. It is the exact
// inverse of Encode for any valid k-length input: Decode(Encode(s), len(s))
// == s. Tags are ignored. Complexity: O(k).
func Decode(x Kmer, k int) string {
	x = x.Value()
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = bases[x&3]
		x >>= 2
	}
	return string(buf)
}

// VisitSubstitutions calls fn for every key obtained from the k-length key x
// by substituting one base, including the 4 identity substitutions that
// reproduce x itself; callers dedup via their visited structures.
// Emits 4k values. Complexity: O(k).
func VisitSubstitutions(x Kmer, k int, fn func(Kmer)) {
	x = x.Value()
	for j := 1; j <= k; j++ {
		shift := uint(j-1) << 1
		head := (x >> (shift + 2)) << (shift + 2)
		tail := (1<<shift - 1) & x
		for b := Kmer(0); b < 4; b++ {
			fn(head | b<<shift | tail)
		}
	}
}

// VisitDeletions calls fn for every (k−1)-length key obtained from the
// k-length key x by deleting one base. Emits k values (with duplicates when
// x has equal adjacent bases). The emitted keys are untagged. Complexity: O(k).
func VisitDeletions(x Kmer, k int, fn func(Kmer)) {
	x = x.Value()
	for j := 0; j < k; j++ {
		shift := uint(j) << 1
		head := (x >> (shift + 2)) << shift
		tail := (1<<shift - 1) & x
		fn(head | tail)
	}
}

// VisitInsertions calls fn for every (k+1)-length key obtained from the
// k-length key x by inserting one base at any of the k+1 positions.
// Emits 4(k+1) values. The emitted keys are untagged. Complexity: O(k).
func VisitInsertions(x Kmer, k int, fn func(Kmer)) {
	x = x.Value()
	for j := 0; j <= k; j++ {
		shift := uint(j) << 1
		head := (x >> shift) << (shift + 2)
		tail := (1<<shift - 1) & x
		for b := Kmer(0); b < 4; b++ {
			fn(head | b<<shift | tail)
		}
	}
}
