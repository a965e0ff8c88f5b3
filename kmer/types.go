// Package kmer defines the packed k-mer key type and its error set.
package kmer

import "errors"

// Sentinel errors for encoding.
var (
	// ErrInvalidSymbol is returned when a character outside {A,C,G,T} is encountered.
	ErrInvalidSymbol = errors.New("kmer: symbol outside {A,C,G,T}")

	// ErrLength is returned when a sequence length is outside 1..MaxK.
	ErrLength = errors.New("kmer: length must be between 1 and 31")
)

// MaxK is the longest sequence a Kmer can pack: 31 bases at 2 bits each
// leave the two top bits free for length tags.
const MaxK = 31

// Kmer is a sequence over {A,C,G,T} packed into an unsigned integer,
// 2 bits per base, most significant pair = first base.
//
// The two highest bits are length tags used by multi-length traversals:
// TagShort marks a value holding a key one base shorter than the ambient
// length k, TagLong one base longer. An untagged value is a plain k-mer.
// The packed payload itself never reaches those bits for k ≤ MaxK.
type Kmer uint64

const (
	// TagShort marks a (k−1)-length key.
	TagShort Kmer = 1 << 63

	// TagLong marks a (k+1)-length key.
	TagLong Kmer = 1 << 62

	tagMask = TagShort | TagLong
)

// IsShort reports whether x carries the (k−1)-length tag.
func (x Kmer) IsShort() bool { return x&TagShort != 0 }

// IsLong reports whether x carries the (k+1)-length tag.
func (x Kmer) IsLong() bool { return x&TagLong != 0 }

// Short returns x tagged as a (k−1)-length key.
func (x Kmer) Short() Kmer { return x | TagShort }

// Long returns x tagged as a (k+1)-length key.
func (x Kmer) Long() Kmer { return x | TagLong }

// Value strips any length tag and returns the packed payload.
func (x Kmer) Value() Kmer { return x &^ tagMask }
