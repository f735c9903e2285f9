package prefetcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/osmosis-labs/psq/log"
)

// IntervalPrefetcher periodically computes a value and hands it to a
// consumer. Fetch errors are logged and skipped; the consumer keeps
// serving the previous value, which simply grows stale until the next
// successful fetch.
type IntervalPrefetcher[T any] struct {
	fetchFn   func(ctx context.Context) (T, error)
	consumeFn func(T)
	interval  time.Duration
	logger    log.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewIntervalPrefetcher creates a prefetcher that runs fetchFn every
// interval and feeds the result to consumeFn.
func NewIntervalPrefetcher[T any](fetchFn func(ctx context.Context) (T, error), consumeFn func(T), interval time.Duration, logger log.Logger) *IntervalPrefetcher[T] {
	if interval <= 0 {
		panic("interval must be greater than 0")
	}

	return &IntervalPrefetcher[T]{
		fetchFn:   fetchFn,
		consumeFn: consumeFn,
		interval:  interval,
		logger:    logger,

		done: make(chan struct{}),
	}
}

// Start runs an immediate fetch and then the periodic loop.
// It blocks until Close is called or ctx is cancelled, so it is
// expected to run in its own goroutine.
func (p *IntervalPrefetcher[T]) Start(ctx context.Context) {
	p.prefetch(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.prefetch(ctx)
		case <-ctx.Done():
			return
		case <-p.done:
			return
		}
	}
}

// Close stops the periodic loop.
func (p *IntervalPrefetcher[T]) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}

func (p *IntervalPrefetcher[T]) prefetch(ctx context.Context) {
	value, err := p.fetchFn(ctx)
	if err != nil {
		p.logger.Error("prefetch failed", zap.Error(err))
		return
	}

	p.consumeFn(value)
}
