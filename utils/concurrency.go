package utils

import (
	"context"
	"net/http"
	"sync"

	"github.com/temanskyM/scheduler-manager/res"
	"golang.org/x/sync/semaphore"
)

// Concurrency runs do for every index in [0, count) with at most semWeight
// calls in flight. The first error set cancels the context handed to the
// remaining calls and is returned.
func Concurrency(
	ctx context.Context,
	semWeight int64,
	count int,
	do func(ctx context.Context, index int, setError func(errRes *res.ErrorRes)),
) *res.ErrorRes {
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr *res.ErrorRes

	sem := semaphore.NewWeighted(semWeight)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	setError := func(errRes *res.ErrorRes) {
		once.Do(func() {
			firstErr = errRes
			cancel()
		})
	}

	for i := 0; i < count; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			setError(&res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusServiceUnavailable,
			})
			break
		}
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			defer sem.Release(1)

			do(ctx, index, setError)
		}(i)
	}
	wg.Wait()
	return firstErr
}
