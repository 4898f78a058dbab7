// Package listing implements the one paginated list abstraction shared by
// every console resource. The original console repeated a fetch-on-mount
// effect per page and never guarded against out-of-order completions; the
// feed centralizes both.
package listing

import (
	"context"
	"log/slog"
	"sync"

	"console/internal/domain/repository"
)

// FetchFunc retrieves one page of a resource.
type FetchFunc[T any] func(ctx context.Context, query repository.ListQuery) (*repository.Page[T], error)

// Snapshot is the feed's current visible state. On a refetch failure Items
// still holds the last successful page so the screen does not blank; only
// a first-load failure leaves Items empty.
type Snapshot[T any] struct {
	Items      []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
	Err        error
	Loaded     bool // at least one fetch has succeeded
}

// Feed is a paginated view over one resource listing. Results are applied
// in request-issue order: a response belonging to a superseded request is
// discarded, so a slow early response can never overwrite a newer page.
type Feed[T any] struct {
	mu     sync.Mutex
	fetch  FetchFunc[T]
	keyOf  func(T) string
	logger *slog.Logger

	issued uint64
	snap   Snapshot[T]
}

// NewFeed creates a feed over fetch; keyOf extracts a record's identity for
// Replace and Remove.
func NewFeed[T any](fetch FetchFunc[T], keyOf func(T) string, logger *slog.Logger) *Feed[T] {
	return &Feed[T]{
		fetch:  fetch,
		keyOf:  keyOf,
		logger: logger,
	}
}

// Load fetches the requested page and applies it unless a newer request has
// been issued in the meantime (last-request-wins). A page beyond the last
// known TotalPages is clamped before the request goes out.
func (f *Feed[T]) Load(ctx context.Context, query repository.ListQuery) (Snapshot[T], error) {
	query = query.Normalize()

	f.mu.Lock()
	if f.snap.Loaded && f.snap.TotalPages > 0 && query.Page > f.snap.TotalPages {
		query.Page = f.snap.TotalPages
	}
	f.issued++
	seq := f.issued
	f.mu.Unlock()

	page, err := f.fetch(ctx, query)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.issued {
		// A newer request was issued while this one was in flight; its
		// result is stale regardless of completion order.
		f.logger.Debug("discarding stale list response",
			slog.Uint64("seq", seq),
			slog.Uint64("latest", f.issued),
		)

		return f.snapshotLocked(), nil
	}

	if err != nil {
		f.snap.Err = err
		if !f.snap.Loaded {
			f.snap.Items = nil
			f.snap.Total = 0
			f.snap.Page = query.Page
			f.snap.Limit = query.Limit
			f.snap.TotalPages = 0
		}

		return f.snapshotLocked(), err
	}

	f.snap = Snapshot[T]{
		Items:      page.Items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
		Loaded:     true,
	}

	return f.snapshotLocked(), nil
}

// Snapshot returns the current visible state.
func (f *Feed[T]) Snapshot() Snapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.snapshotLocked()
}

// Replace swaps the single record with the same key for item, after a
// completed mutation. It reports whether the record was on the current page.
func (f *Feed[T]) Replace(item T) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := f.keyOf(item)
	for i := range f.snap.Items {
		if f.keyOf(f.snap.Items[i]) == key {
			f.snap.Items[i] = item

			return true
		}
	}

	return false
}

// Find returns the record with the given key from the current page.
func (f *Feed[T]) Find(key string) (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.snap.Items {
		if f.keyOf(f.snap.Items[i]) == key {
			return f.snap.Items[i], true
		}
	}

	var zero T

	return zero, false
}

// Remove drops the record with the given key after a hard delete and
// adjusts the pagination totals.
func (f *Feed[T]) Remove(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.snap.Items {
		if f.keyOf(f.snap.Items[i]) != key {
			continue
		}

		f.snap.Items = append(f.snap.Items[:i], f.snap.Items[i+1:]...)
		if f.snap.Total > 0 {
			f.snap.Total--
		}
		if f.snap.Limit > 0 {
			f.snap.TotalPages = (f.snap.Total + f.snap.Limit - 1) / f.snap.Limit
		}

		return true
	}

	return false
}

func (f *Feed[T]) snapshotLocked() Snapshot[T] {
	snap := f.snap
	snap.Items = make([]T, len(f.snap.Items))
	copy(snap.Items, f.snap.Items)

	return snap
}
