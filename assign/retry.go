package assign

import (
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/sequtil/kmerisle/kmer"
)

// AllocFunc attempts to allocate n int32 slots. The default allocator
// never returns an error; deployments that probe available memory before
// committing to a multi-gigabyte table can substitute their own.
type AllocFunc func(n uint64) ([]int32, error)

// defaultAlloc allocates with make. On a healthy heap this either succeeds
// or the runtime terminates the process; the retry path exists for
// allocators that report pressure instead.
func defaultAlloc(n uint64) ([]int32, error) {
	return make([]int32, n), nil
}

// NewRetry allocates a Table like New, but drives the allocation through
// the supplied backoff policy: every failed attempt is logged and retried
// after the next backoff interval. With an exponential backoff whose
// MaxElapsedTime is zero the call never gives up — the table either
// arrives or the run is killed externally, which is the wanted behavior
// for unattended batch jobs on shared machines.
//
// alloc may be nil, selecting the default make-based allocator.
// Invalid lengths fail fast with ErrLength before any attempt.
func NewRetry(length int, alloc AllocFunc, policy backoff.BackOff, log logrus.FieldLogger) (*Table, error) {
	if length < 1 || length > kmer.MaxK {
		return nil, ErrLength
	}
	if alloc == nil {
		alloc = defaultAlloc
	}

	n := uint64(1) << (uint(length) << 1)
	var slots []int32
	op := func() error {
		var err error
		slots, err = alloc(n)
		return err
	}
	notify := func(err error, wait time.Duration) {
		log.WithError(err).WithFields(logrus.Fields{
			"length": length,
			"slots":  n,
			"wait":   wait,
		}).Warn("assignment table allocation failed, backing off")
	}
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}

	for i := range slots {
		slots[i] = Unassigned
	}
	return &Table{length: length, slots: slots}, nil
}

// NeverStop returns the backoff policy used by the batch CLI: exponential
// growth capped at maxInterval, no elapsed-time limit, so allocation under
// memory pressure waits indefinitely rather than failing the run.
func NeverStop(initial, maxInterval time.Duration) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = initial
	eb.MaxInterval = maxInterval
	eb.MaxElapsedTime = 0
	return eb
}
