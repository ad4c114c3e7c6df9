package internal

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/semaphore"
)

// PanicError carries a panic recovered from a concurrently dispatched
// handler, so one panicking handler cannot take down its siblings or the
// process.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panicked: %v", e.Value)
}

// DispatchSync invokes every connection in order, waiting for each handler
// to return before starting the next. The first error stops the remaining
// handlers and is returned as-is.
func DispatchSync(ctx context.Context, conns []*Conn, payload any) error {
	for _, c := range conns {
		if err := c.handler(ctx, payload); err != nil {
			return err
		}
	}

	return nil
}

// DispatchAsync starts every handler concurrently and joins all of them
// before returning. Errors and recovered panics are combined; one failing
// handler never prevents the others from running to completion. A non-nil
// sem bounds how many handlers run at once.
func DispatchAsync(ctx context.Context, conns []*Conn, payload any, sem *semaphore.Weighted) error {
	// one slot per handler, no lock needed
	errs := make([]error, len(conns))

	var wg sync.WaitGroup
	for i, c := range conns {
		wg.Go(func() {
			if sem != nil {
				// acquire without the emit ctx: a canceled ctx must not
				// drop deliveries
				_ = sem.Acquire(context.Background(), 1)
				defer sem.Release(1)
			}

			errs[i] = invoke(ctx, c, payload)
		})
	}
	wg.Wait()

	return multierr.Combine(errs...)
}

func invoke(ctx context.Context, c *Conn, payload any) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()

	return c.handler(ctx, payload)
}
