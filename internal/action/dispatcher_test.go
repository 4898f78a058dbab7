package action

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"console/internal/domain/repository"
	"console/internal/errors"
	"console/internal/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID     string
	Status string
}

func recordKey(r record) string { return r.ID }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadedFeed(t *testing.T, items ...record) *listing.Feed[record] {
	t.Helper()

	fetch := func(ctx context.Context, q repository.ListQuery) (*repository.Page[record], error) {
		return &repository.Page[record]{
			Items:      items,
			Total:      len(items),
			Page:       1,
			Limit:      len(items),
			TotalPages: 1,
		}, nil
	}

	feed := listing.NewFeed(fetch, recordKey, discardLogger())
	_, err := feed.Load(context.Background(), repository.ListQuery{Page: 1})
	require.NoError(t, err)

	return feed
}

func TestDispatcher_DuplicateSubmissionIssuesOneRequest(t *testing.T) {
	feed := loadedFeed(t, record{ID: "w1", Status: "PENDING"})
	dispatcher := NewDispatcher(feed, discardLogger())

	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := dispatcher.Do(context.Background(), "w1", func(ctx context.Context) (*record, error) {
			calls.Add(1)
			close(entered)
			<-release

			return &record{ID: "w1", Status: "APPROVED"}, nil
		})
		assert.NoError(t, err)
	}()

	<-entered

	// The second click lands while the first request is in flight.
	_, err := dispatcher.Do(context.Background(), "w1", func(ctx context.Context) (*record, error) {
		calls.Add(1)

		return &record{ID: "w1", Status: "APPROVED"}, nil
	})
	assert.True(t, errors.Is(err, ErrInFlight))

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	got, ok := feed.Find("w1")
	require.True(t, ok)
	assert.Equal(t, "APPROVED", got.Status)
}

func TestDispatcher_GuardIsPerRecord(t *testing.T) {
	feed := loadedFeed(t, record{ID: "a", Status: "PENDING"}, record{ID: "b", Status: "PENDING"})
	dispatcher := NewDispatcher(feed, discardLogger())

	entered := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = dispatcher.Do(context.Background(), "a", func(ctx context.Context) (*record, error) {
			close(entered)
			<-release

			return &record{ID: "a", Status: "APPROVED"}, nil
		})
	}()

	<-entered

	// A different record is not blocked by a's in-flight request.
	_, err := dispatcher.Do(context.Background(), "b", func(ctx context.Context) (*record, error) {
		return &record{ID: "b", Status: "REJECTED"}, nil
	})
	assert.NoError(t, err)

	close(release)
	wg.Wait()
}

func TestDispatcher_FailureLeavesFeedUntouched(t *testing.T) {
	feed := loadedFeed(t, record{ID: "p1", Status: "PENDING"})
	dispatcher := NewDispatcher(feed, discardLogger())

	before, ok := feed.Find("p1")
	require.True(t, ok)

	_, err := dispatcher.Do(context.Background(), "p1", func(ctx context.Context) (*record, error) {
		return nil, errors.New("backend rejected the mutation")
	})
	assert.Error(t, err)

	after, ok := feed.Find("p1")
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestDispatcher_GuardReleasedAfterFailure(t *testing.T) {
	dispatcher := NewDispatcher[record](nil, discardLogger())

	_, err := dispatcher.Do(context.Background(), "x", func(ctx context.Context) (*record, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	// The key must be usable again once the failed request returned.
	result, err := dispatcher.Do(context.Background(), "x", func(ctx context.Context) (*record, error) {
		return &record{ID: "x", Status: "APPROVED"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", result.Status)
}

func TestDispatcher_DoRemoveDropsRecord(t *testing.T) {
	feed := loadedFeed(t, record{ID: "p1", Status: "PENDING"}, record{ID: "p2", Status: "APPROVED"})
	dispatcher := NewDispatcher(feed, discardLogger())

	err := dispatcher.DoRemove(context.Background(), "p1", func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)

	_, ok := feed.Find("p1")
	assert.False(t, ok)
	assert.Len(t, feed.Snapshot().Items, 1)
}
