// Package editdist computes Levenshtein distances between packed k-mer
// keys, optionally bounded for early exit.
package editdist

import "github.com/sequtil/kmerisle/kmer"

// Bounded computes the Levenshtein distance (insertion, deletion,
// substitution) between the packed keys a of length lenA and b of length
// lenB. The operands may have different lengths and the result is symmetric
// in them.
//
// If maxD >= 0 the computation stops as soon as the running diagonal cell
// reaches maxD. The contract: a result below maxD is the exact distance;
// a result at or above maxD only certifies that the true distance is at
// least that large. Strict comparisons against maxD therefore never see a
// false exact value below the truth. Pass a negative maxD for the exact
// distance.
//
// Algorithm: single-row DP. The row spans the longer operand; the shorter
// one drives the outer loop. Because row values along a diagonal never
// decrease, the diagonal cell is a valid lower bound for the final
// distance, which justifies the early exit.
//
// Time: O(lenA·lenB), Memory: O(max(lenA,lenB)).
func Bounded(a kmer.Kmer, lenA int, b kmer.Kmer, lenB int, maxD int) int {
	a, b = a.Value(), b.Value()
	if lenA > lenB {
		a, lenA, b, lenB = b, lenB, a, lenA
	}
	// The length gap is a lower bound on the distance.
	diag := lenB - lenA
	if maxD >= 0 && diag >= maxD {
		return diag
	}

	row := make([]int, lenB+1)
	for j := range row {
		row[j] = j
	}

	ac := a
	for i := 1; i <= lenA; i, ac = i+1, ac>>2 {
		diag++
		prevDiag := row[0]
		row[0] = i

		bc := b
		for j := 1; j <= lenB; j, bc = j+1, bc>>2 {
			cur := prevDiag
			if ac&3 != bc&3 {
				cur++
			}
			if del := row[j] + 1; del < cur {
				cur = del
			}
			if ins := row[j-1] + 1; ins < cur {
				cur = ins
			}
			prevDiag = row[j]
			row[j] = cur
		}

		if maxD >= 0 && row[diag] >= maxD {
			break
		}
	}

	return row[diag]
}

// Dist computes the exact Levenshtein distance between two keys of the same
// length k. Shorthand for Bounded(a, k, b, k, -1).
func Dist(a, b kmer.Kmer, k int) int {
	return Bounded(a, k, b, k, -1)
}

// BoundedStrings is Bounded over raw byte strings instead of packed keys.
// Identical DP and early-exit contract; used where operands are not
// 2-bit-packable (sampling tools, tests against a reference).
func BoundedStrings(a, b string, maxD int) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	diag := len(b) - len(a)
	if maxD >= 0 && diag >= maxD {
		return diag
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag++
		prevDiag := row[0]
		row[0] = i

		for j := 1; j <= len(b); j++ {
			cur := prevDiag
			if a[i-1] != b[j-1] {
				cur++
			}
			if del := row[j] + 1; del < cur {
				cur = del
			}
			if ins := row[j-1] + 1; ins < cur {
				cur = ins
			}
			prevDiag = row[j]
			row[j] = cur
		}

		if maxD >= 0 && row[diag] >= maxD {
			break
		}
	}

	return row[diag]
}
