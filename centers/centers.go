// Package centers loads the center and clique input files that seed a
// partition run. Centers receive stable ids 0..m−1 in file order.
//
// Center file format: the first line holds the integer count m; each of the
// m following lines holds one exact k-character string over {A,C,G,T}.
//
// Clique file format: the first line holds the clique count m; each of the
// m following lines holds the whitespace-separated members of one clique.
// A member of length k is a plain k-mer; a member of length k−1 is loaded
// with the short-length tag. All members of a line share one island id.
package centers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sequtil/kmerisle/kmer"
)

// Sentinel errors for malformed input. Both are fatal load errors: a
// partition run never starts from a partially parsed center list.
var (
	// ErrCount indicates a missing or non-numeric leading count line.
	ErrCount = errors.New("centers: malformed count line")

	// ErrRecord indicates a center line that is absent, has the wrong
	// length, or contains a symbol outside {A,C,G,T}.
	ErrRecord = errors.New("centers: malformed center record")
)

// Clique is a group of co-seeded centers sharing one island id.
// Members of length k−1 carry kmer.TagShort.
type Clique struct {
	Members []kmer.Kmer
}

// Load reads a center file and returns the centers in file order.
// The returned index is the island id. Malformed input is a fatal error
// wrapping ErrCount or ErrRecord with the offending line number.
func Load(path string, k int) ([]kmer.Kmer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("centers: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, k)
}

// Parse is Load over an arbitrary reader.
func Parse(r io.Reader, k int) ([]kmer.Kmer, error) {
	sc := bufio.NewScanner(r)
	m, err := readCount(sc)
	if err != nil {
		return nil, err
	}

	out := make([]kmer.Kmer, 0, m)
	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d centers, got %d", ErrRecord, m, i)
		}
		line := strings.TrimSpace(sc.Text())
		if len(line) != k {
			return nil, fmt.Errorf("%w: line %d: want length %d, got %d", ErrRecord, i+2, k, len(line))
		}
		c, err := kmer.Encode(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrRecord, i+2, err)
		}
		out = append(out, c)
	}

	return out, sc.Err()
}

// LoadCliques reads a clique file and returns the cliques in file order.
// The returned index is the shared island id of each clique.
func LoadCliques(path string, k int) ([]Clique, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("centers: open %s: %w", path, err)
	}
	defer f.Close()
	return ParseCliques(f, k)
}

// ParseCliques is LoadCliques over an arbitrary reader.
func ParseCliques(r io.Reader, k int) ([]Clique, error) {
	sc := bufio.NewScanner(r)
	m, err := readCount(sc)
	if err != nil {
		return nil, err
	}

	out := make([]Clique, 0, m)
	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d cliques, got %d", ErrRecord, m, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: line %d: empty clique", ErrRecord, i+2)
		}
		cl := Clique{Members: make([]kmer.Kmer, 0, len(fields))}
		for _, s := range fields {
			c, err := kmer.Encode(s)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrRecord, i+2, err)
			}
			switch len(s) {
			case k:
				// plain k-mer
			case k - 1:
				c = c.Short()
			default:
				return nil, fmt.Errorf("%w: line %d: member length %d, want %d or %d",
					ErrRecord, i+2, len(s), k, k-1)
			}
			cl.Members = append(cl.Members, c)
		}
		out = append(out, cl)
	}

	return out, sc.Err()
}

// Write emits centers in the Load input format: count line, then one
// decoded k-mer per line. Inverse of Parse for untagged centers.
func Write(w io.Writer, cs []kmer.Kmer, k int) error {
	if _, err := fmt.Fprintf(w, "%d\n", len(cs)); err != nil {
		return err
	}
	for _, c := range cs {
		if _, err := fmt.Fprintln(w, kmer.Decode(c, k)); err != nil {
			return err
		}
	}
	return nil
}

// readCount consumes and parses the leading count line.
func readCount(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrCount, err)
		}
		return 0, fmt.Errorf("%w: empty input", ErrCount)
	}
	m, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || m < 0 {
		return 0, fmt.Errorf("%w: %q", ErrCount, strings.TrimSpace(sc.Text()))
	}
	return m, nil
}
