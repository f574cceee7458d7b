package resolve

import (
	"context"
	"errors"
	"sync"

	"github.com/vidresolve/vidresolve/source"
)

// ErrSuperseded is returned by Latest when a newer resolution started before this one finished.
var ErrSuperseded = errors.New("superseded by a newer request")

// Latest serializes resolutions for a single consumer, such as an interactive prompt.
// Starting a resolution cancels the one in flight, and a stale result is never returned.
type Latest struct {
	resolver *Resolver

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewLatest wraps r.
func NewLatest(r *Resolver) *Latest {
	return &Latest{resolver: r}
}

// Resolve behaves like Resolver.Resolve but fails with ErrSuperseded once a newer call begins.
func (l *Latest) Resolve(ctx context.Context, raw string) (*source.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.mu.Unlock()

	result, err := l.resolver.Resolve(ctx, raw)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		return nil, ErrSuperseded
	}
	l.cancel = nil

	return result, err
}
