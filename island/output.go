package island

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sequtil/kmerisle/assign"
	"github.com/sequtil/kmerisle/kmer"
)

// WriteHash emits the hashing function as one line per finally assigned
// key: the decoded string and its assignment, an island id ≥ 0 or -1 for
// gray. Keys that only reached the visited state are omitted. Lines appear
// in increasing key order, so identical inputs always produce
// byte-identical output.
func (r *Result) WriteHash(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeTable(bw, r.Kmers, r.K)
	return bw.Flush()
}

// WriteHash emits the three length buckets of a multi-length run, grouped
// under literal section headers.
func (r *MultiResult) WriteHash(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "k-mers")
	writeTable(bw, r.Kmers, r.K)
	fmt.Fprintln(bw, "(k-1)-mers")
	writeTable(bw, r.Short, r.K-1)
	fmt.Fprintln(bw, "(k+1)-mers")
	writeTable(bw, r.Long, r.K+1)
	return bw.Flush()
}

// writeTable emits every finalized key of one table. Errors stick to the
// buffered writer and surface at Flush.
func writeTable(bw *bufio.Writer, t *assign.Table, length int) {
	t.EachAssigned(func(x kmer.Kmer, v int32) {
		fmt.Fprintf(bw, "%s %d\n", kmer.Decode(x, length), v)
	})
}

// OutputFilename builds the conventional output name for a run:
// h{k}-{p}-{q}-{tag}.hash-{suffix}, where tag is the first four bytes of
// the centers file basename with its extension stripped. Suffixes in use:
// v2 for the centers-precomputed strategy, c for cliques, v4 for
// multi-length.
func OutputFilename(k, p, q int, centersPath, suffix string) string {
	tag := filepath.Base(centersPath)
	tag = strings.TrimSuffix(tag, filepath.Ext(tag))
	if len(tag) > 4 {
		tag = tag[:4]
	}
	return fmt.Sprintf("h%d-%d-%d-%s.hash-%s", k, p, q, tag, suffix)
}
