// Package testutil holds fixtures and helpers shared by package tests.
package testutil

import (
	"sync"

	dErrors "agegate/pkg/domain-errors"
)

// ConcurrentResult tracks outcomes of concurrent test operations.
type ConcurrentResult struct {
	Successes int32
	Rejected  int32
	// Failures holds every error that was not a rejection, in completion order.
	Failures []error
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Rejected + int32(len(r.Failures))
}

// RunConcurrent runs fn once per index in its own goroutine and waits for all.
// Errors carrying CodeValidation or CodeInvalidInput count as Rejected.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		res ConcurrentResult
	)
	for i := range goroutines {
		wg.Go(func() {
			err := fn(i)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				res.Successes++
			case isRejection(err):
				res.Rejected++
			default:
				res.Failures = append(res.Failures, err)
			}
		})
	}
	wg.Wait()
	return &res
}

func isRejection(err error) bool {
	code, ok := dErrors.CodeOf(err)
	return ok && (code == dErrors.CodeValidation || code == dErrors.CodeInvalidInput)
}
