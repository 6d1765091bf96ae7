package invoicing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// runAsync is an indirection over safeAsync so tests can execute
// background work synchronously.
var runAsync = safeAsync

// safeAsync runs fn in a goroutine bounded by timeout and logs its failure.
// Used for work the caller does not wait on, such as following a detached sweep.
func safeAsync(op string, timeout time.Duration, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}
