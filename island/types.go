// Package island defines options and error definitions for the
// center-anchored partition of the k-mer space.
package island

import (
	"errors"
	"fmt"

	"github.com/sequtil/kmerisle/assign"
)

// Sentinel errors for partition runs.
var (
	// ErrBadK is returned when k is outside the packable range for the
	// requested mode (1..31 fixed-length; 2..30 multi-length, which must
	// also address the (k−1)- and (k+1)-length tables).
	ErrBadK = errors.New("island: k out of range")

	// ErrBadCenter is returned when a seed does not fit the key space of
	// its length.
	ErrBadCenter = errors.New("island: center outside the key space")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("island: invalid option supplied")
)

// Strategy selects the conflict test run on every freshly reached key.
// The strategies honor the same two guarantees (local agreement below p,
// separation above q) but draw the gray boundary differently; they are
// independent heuristics, not interchangeable-with-identical-output.
type Strategy int

const (
	// CheckByCenters precomputes, per island, the other centers within
	// combined distance p+q and tests candidates against that sorted
	// list. Cheap per candidate, quadratic in the number of centers once.
	CheckByCenters Strategy = iota

	// CheckByNeighbors probes a bounded BFS ball of radius p−1 around the
	// candidate and looks for keys finally assigned elsewhere. No pairwise
	// center precomputation, higher per-candidate cost.
	CheckByNeighbors
)

// TableFactory allocates the assignment table for one key length.
// The default factory is assign.New, which fails fast; deployments wanting
// the wait-forever allocation policy substitute a factory built on
// assign.NewRetry.
type TableFactory func(length int) (*assign.Table, error)

// Option configures a partition run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// run starts.
type Options struct {
	strategy Strategy
	tables   TableFactory

	err error
}

// Option mutates Options.
type Option func(*Options)

// defaultOptions returns the baseline configuration: CheckByCenters,
// fail-fast table allocation.
func defaultOptions() Options {
	return Options{
		strategy: CheckByCenters,
		tables:   assign.New,
	}
}

// WithStrategy selects the conflict test.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != CheckByCenters && s != CheckByNeighbors {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, s)
			return
		}
		o.strategy = s
	}
}

// WithTableFactory replaces the assignment-table allocator.
// A nil factory is an option violation.
func WithTableFactory(f TableFactory) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("%w: nil table factory", ErrOptionViolation)
			return
		}
		o.tables = f
	}
}

// Result is the hashing function produced by a fixed-length run: the
// assignment table for the k-length space. Keys that were never finalized
// stay out of any emitted output.
type Result struct {
	K     int
	Kmers *assign.Table
}

// MultiResult is the hashing function produced by a multi-length run:
// one table per handled key length.
type MultiResult struct {
	K     int
	Short *assign.Table // (k−1)-mers
	Kmers *assign.Table // k-mers
	Long  *assign.Table // (k+1)-mers
}
