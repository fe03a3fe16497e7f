package contxt

import (
	"context"
	"time"
)

// NewContext returns a context that expires after timeout. Used for publish
// paths that must not block a poll cycle indefinitely.
func NewContext(timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
