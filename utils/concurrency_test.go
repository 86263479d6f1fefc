package utils

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temanskyM/scheduler-manager/res"
)

func TestConcurrencyRunsAll(t *testing.T) {
	results := make([]int, 8)
	var inFlight, maxInFlight int32

	errRes := Concurrency(context.Background(), 2, len(results), func(ctx context.Context, index int, setError func(*res.ErrorRes)) {
		current := atomic.AddInt32(&inFlight, 1)
		for {
			seen := atomic.LoadInt32(&maxInFlight)
			if current <= seen || atomic.CompareAndSwapInt32(&maxInFlight, seen, current) {
				break
			}
		}
		results[index] = index * index
		atomic.AddInt32(&inFlight, -1)
	})

	require.Nil(t, errRes)
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49}, results)
	assert.LessOrEqual(t, atomic.LoadInt32(&maxInFlight), int32(2))
}

func TestConcurrencyReturnsFirstError(t *testing.T) {
	failure := errors.New("boom")

	errRes := Concurrency(context.Background(), 1, 4, func(ctx context.Context, index int, setError func(*res.ErrorRes)) {
		if index == 1 {
			setError(&res.ErrorRes{Err: failure, StatusCode: http.StatusBadGateway})
		}
	})

	require.NotNil(t, errRes)
	assert.ErrorIs(t, errRes, failure)
	assert.Equal(t, http.StatusBadGateway, errRes.StatusCode)
}
