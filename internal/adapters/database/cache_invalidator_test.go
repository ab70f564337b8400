package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

type channelEventBus struct {
	events chan *entities.PathwayEvent
}

func (b *channelEventBus) Publish(ctx context.Context, channel string, event *entities.PathwayEvent) error {
	b.events <- event
	return nil
}

func (b *channelEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.PathwayEvent, error) {
	return b.events, nil
}

func (b *channelEventBus) Unsubscribe(ctx context.Context, channel string) error { return nil }

func (b *channelEventBus) Close() error { return nil }

// recordingCache reports deletions on a channel so the test can wait for the
// subscriber goroutine without sleeping
type recordingCache struct {
	deleted chan string
}

func (c *recordingCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, apperrors.NewNotFoundError("cache miss")
}

func (c *recordingCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	return nil
}

func (c *recordingCache) Delete(ctx context.Context, key string) error {
	c.deleted <- key
	return nil
}

func (c *recordingCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.deleted <- pattern
	return nil
}

func (c *recordingCache) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

func collectDeletions(t *testing.T, deleted <-chan string, n int) []string {
	t.Helper()
	var got []string
	for len(got) < n {
		select {
		case key := <-deleted:
			got = append(got, key)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for deletion %d of %d", len(got)+1, n)
		}
	}
	return got
}

func TestCacheInvalidator_DropsKeysOnPathwayEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := &channelEventBus{events: make(chan *entities.PathwayEvent, 1)}
	cache := &recordingCache{deleted: make(chan string, 8)}

	invalidator := NewCacheInvalidator(bus, cache)
	require.NoError(t, invalidator.Start(ctx))

	require.NoError(t, bus.Publish(ctx, "pathway:updates", &entities.PathwayEvent{
		ID:        "ev-1",
		Type:      entities.PathwayEventUpdated,
		PathwayID: "pw-1",
	}))

	got := collectDeletions(t, cache.deleted, 3)
	assert.Contains(t, got, pathwayCacheKey("pw-1"))
	assert.Contains(t, got, pathwaySlugGlob)
	assert.Contains(t, got, pathwayListGlob)
}

func TestCacheInvalidator_IgnoresEventsWithoutPathwayID(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := &channelEventBus{events: make(chan *entities.PathwayEvent, 2)}
	cache := &recordingCache{deleted: make(chan string, 8)}

	invalidator := NewCacheInvalidator(bus, cache)
	require.NoError(t, invalidator.Start(ctx))

	require.NoError(t, bus.Publish(ctx, "pathway:updates", &entities.PathwayEvent{ID: "ev-1", Type: entities.PathwayEventUpdated}))
	require.NoError(t, bus.Publish(ctx, "pathway:updates", &entities.PathwayEvent{ID: "ev-2", Type: entities.PathwayEventUpdated, PathwayID: "pw-2"}))

	got := collectDeletions(t, cache.deleted, 3)
	assert.Contains(t, got, pathwayCacheKey("pw-2"))
	assert.NotContains(t, got, pathwayCacheKey(""))
}
