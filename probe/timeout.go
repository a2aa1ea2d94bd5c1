package probe

import (
	"context"
	"errors"
	"time"

	"github.com/jonwraymond/appcheck/health"
)

// DefaultTimeout bounds a network probe when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// WithTimeout bounds fn to d. If fn has not returned when d elapses, the
// wrapped check fails with ErrTimeout and fn is left to finish on its own
// goroutine with a cancelled context.
func WithTimeout(d time.Duration, fn health.CheckFunc) health.CheckFunc {
	if d <= 0 {
		d = DefaultTimeout
	}
	return func(ctx context.Context) (bool, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		type outcome struct {
			ok  bool
			err error
		}
		done := make(chan outcome, 1)

		go func() {
			// A panic here would escape the runner's recover on this goroutine.
			defer func() {
				if v := recover(); v != nil {
					done <- outcome{err: &health.PanicError{Value: v}}
				}
			}()
			ok, err := fn(ctx)
			done <- outcome{ok: ok, err: err}
		}()

		select {
		case out := <-done:
			return out.ok, out.err
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return false, ErrTimeout
			}
			return false, ctx.Err()
		}
	}
}

func orDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}
