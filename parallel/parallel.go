// Package parallel splits a unit of work across a fixed set of workers.
//
// Exec runs worker 0 on the calling goroutine and workers 1..count-1 on
// their own goroutines, then waits for all of them. There is no work
// stealing and no cancellation: every worker runs its partition to
// completion. Failures (returned errors and panics) are collected per
// worker and reported together after the join.
package parallel

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrPanic marks a worker failure caused by a recovered panic.
var ErrPanic = errors.New("parallel: worker panicked")

// WorkerError reports the failure of a single worker.
type WorkerError struct {
	ID  int
	Err error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("parallel: worker %d: %v", e.ID, e.Err)
}

func (e *WorkerError) Unwrap() error { return e.Err }

// WorkFunc processes the partition owned by worker id out of count workers.
type WorkFunc func(id, count int) error

// DefaultWorkers returns half the available hardware parallelism, at least 1.
func DefaultWorkers() int {
	return max(1, runtime.NumCPU()/2)
}

// Exec runs work once per worker id in [0, count) and returns after every
// worker has finished. A count <= 0 selects DefaultWorkers.
//
// The returned error joins one *WorkerError per failed worker, ordered by id,
// or is nil when all workers succeeded.
func Exec(work WorkFunc, count int) error {
	if count <= 0 {
		count = DefaultWorkers()
	}

	errs := make([]error, count)

	var g errgroup.Group
	for id := 1; id < count; id++ {
		g.Go(func() error {
			errs[id] = run(work, id, count)
			return nil
		})
	}
	errs[0] = run(work, 0, count)
	_ = g.Wait()

	return errors.Join(errs...)
}

func run(work WorkFunc, id, count int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &WorkerError{ID: id, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()
	if werr := work(id, count); werr != nil {
		return &WorkerError{ID: id, Err: werr}
	}
	return nil
}

// Range returns the half-open slice [lo, hi) of n items owned by worker id
// when n items are split evenly across count workers.
func Range(n, id, count int) (lo, hi int) {
	if count <= 0 || n <= 0 {
		return 0, 0
	}
	return n * id / count, n * (id + 1) / count
}
