package backend

import (
	"context"
	"sync"

	"recruit-backend/internal/shared/metrics"
)

// Latest runs fetches where only the most recent request matters. Starting a
// new call cancels the context of the previous one, and a call that finishes
// after being replaced returns ErrSuperseded instead of its result.
type Latest[K comparable, T any] struct {
	mu     sync.Mutex
	seq    uint64
	key    K
	active bool
	cancel context.CancelFunc
}

// Call is one registered run of a Latest. Finish must be called once the
// work done under Context is over.
type Call[K comparable, T any] struct {
	l      *Latest[K, T]
	seq    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// Context is cancelled when a newer call starts.
func (c *Call[K, T]) Context() context.Context {
	return c.ctx
}

// Finish releases the call and returns value and err if the call is still the
// most recent one, ErrSuperseded otherwise.
func (c *Call[K, T]) Finish(value T, err error) (T, error) {
	defer c.cancel()
	c.l.mu.Lock()
	current := c.l.seq == c.seq
	if current {
		c.l.active = false
		c.l.cancel = nil
	}
	c.l.mu.Unlock()

	if !current {
		metrics.IncStaleResult()
		var zero T
		return zero, ErrSuperseded
	}
	return value, err
}

// Start registers a call for key and cancels the previous one. Registration
// order is the order in which results win, so callers that keep related state
// may call Start while holding their own lock.
func (l *Latest[K, T]) Start(ctx context.Context, key K) *Call[K, T] {
	runCtx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	l.key = key
	l.active = true
	l.cancel = cancel
	return &Call[K, T]{l: l, seq: l.seq, ctx: runCtx, cancel: cancel}
}

// Do runs fn for key. The returned value is fn's result only if no other call
// started in the meantime.
func (l *Latest[K, T]) Do(ctx context.Context, key K, fn func(context.Context) (T, error)) (T, error) {
	call := l.Start(ctx, key)
	value, err := fn(call.Context())
	return call.Finish(value, err)
}

// Pending reports the key of the in-flight call, if any.
func (l *Latest[K, T]) Pending() (K, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.active {
		var zero K
		return zero, false
	}
	return l.key, true
}

// Cancel abandons the in-flight call. Its result will be reported as
// superseded.
func (l *Latest[K, T]) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	l.active = false
	l.cancel = nil
}
