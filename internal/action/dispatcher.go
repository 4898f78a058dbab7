// Package action dispatches single-record state transitions against the
// backend with a per-record in-flight guard.
package action

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "console/internal/domain/errors"
	"console/internal/errors"
	"console/internal/listing"
)

// ErrInFlight is returned when the same record already has a mutation in
// flight. The duplicate submission is rejected outright, not coalesced:
// two rapid clicks must produce exactly one outbound request.
var ErrInFlight = domainerrors.ErrActionInFlight

// Dispatcher performs mutations for one resource and merges results into
// the resource's feed. The guard is an atomic check-and-set on the record
// key, held for the duration of the request; a disabled button alone would
// not survive the re-render races the original console had.
type Dispatcher[T any] struct {
	mu       sync.Mutex
	inflight map[string]struct{}
	feed     *listing.Feed[T]
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher bound to feed. A nil feed is allowed
// for resources without a cached listing.
func NewDispatcher[T any](feed *listing.Feed[T], logger *slog.Logger) *Dispatcher[T] {
	return &Dispatcher[T]{
		inflight: make(map[string]struct{}),
		feed:     feed,
		logger:   logger,
	}
}

// Do runs mutate under the in-flight guard for key. On success the
// returned record replaces its counterpart in the feed; on failure the
// feed is left exactly as it was.
func (d *Dispatcher[T]) Do(ctx context.Context, key string, mutate func(ctx context.Context) (*T, error)) (*T, error) {
	if !d.acquire(key) {
		d.logger.Debug("rejecting duplicate action", slog.String("key", key))

		return nil, errors.WithStack(ErrInFlight)
	}
	defer d.release(key)

	result, err := mutate(ctx)
	if err != nil {
		return nil, err
	}

	if d.feed != nil && result != nil {
		d.feed.Replace(*result)
	}

	return result, nil
}

// DoRemove runs remove under the in-flight guard for key and drops the
// record from the feed on success.
func (d *Dispatcher[T]) DoRemove(ctx context.Context, key string, remove func(ctx context.Context) error) error {
	if !d.acquire(key) {
		d.logger.Debug("rejecting duplicate action", slog.String("key", key))

		return errors.WithStack(ErrInFlight)
	}
	defer d.release(key)

	if err := remove(ctx); err != nil {
		return err
	}

	if d.feed != nil {
		d.feed.Remove(key)
	}

	return nil
}

// acquire is the atomic check-and-set of the guard.
func (d *Dispatcher[T]) acquire(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, busy := d.inflight[key]; busy {
		return false
	}
	d.inflight[key] = struct{}{}

	return true
}

func (d *Dispatcher[T]) release(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.inflight, key)
}
