package concurrent

import (
	"context"
	"time"
)

// WaitForValue calls fetch every tick until it returns a non-zero value or an error.
// It returns the zero value without an error if timeout elapses first.
// The error of the parent context is returned if it is canceled.
func WaitForValue[T comparable](
	ctx context.Context,
	timeout time.Duration,
	tick time.Duration,
	fetch func(context.Context) (T, error),
) (T, error) {
	var zero T

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		value, err := fetch(ctx)
		if err != nil {
			return zero, err
		}
		if value != zero {
			return value, nil
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-timer.C:
			return zero, nil
		case <-ticker.C:
		}
	}
}
