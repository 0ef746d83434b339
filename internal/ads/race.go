package ads

import (
	"context"
	"time"
)

// race runs op against a timer. The first to settle wins; a late result
// from op is discarded, op itself is not cancelled.
func race[T any](ctx context.Context, timeout time.Duration, timeoutErr error, op func(context.Context) (T, error)) (T, error) {
	type result struct {
		val T
		err error
	}

	// Buffered so a losing op can still complete and exit
	resultCh := make(chan result, 1)
	go func() {
		val, err := op(ctx)
		resultCh <- result{val, err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var zero T
	select {
	case res := <-resultCh:
		return res.val, res.err
	case <-timer.C:
		return zero, timeoutErr
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
