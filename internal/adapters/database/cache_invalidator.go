package database

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/providers"
)

const pathwaySlugGlob = "pathway:slug:*"

// CacheInvalidator subscribes to pathway lifecycle events and drops cached
// pathway entries. The cached adapter invalidates its own writes; this covers
// writes made by other instances sharing the cache.
type CacheInvalidator struct {
	eventBus providers.EventBus
	cache    providers.CacheProvider
}

// NewCacheInvalidator creates a new cache invalidator
func NewCacheInvalidator(eventBus providers.EventBus, cache providers.CacheProvider) *CacheInvalidator {
	return &CacheInvalidator{
		eventBus: eventBus,
		cache:    cache,
	}
}

// Start subscribes to the pathway update channel and consumes events until
// the context is cancelled or the channel closes
func (i *CacheInvalidator) Start(ctx context.Context) error {
	events, err := i.eventBus.Subscribe(ctx, providers.EventChannelPathwayUpdates)
	if err != nil {
		return err
	}

	go i.run(ctx, events)
	return nil
}

func (i *CacheInvalidator) run(ctx context.Context, events <-chan *entities.PathwayEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			i.invalidate(ctx, event)
		}
	}
}

// invalidate drops the id key plus the slug and list key spaces. The event
// does not carry the slug, so slug keys are cleared by pattern.
func (i *CacheInvalidator) invalidate(ctx context.Context, event *entities.PathwayEvent) {
	if event == nil || event.PathwayID == "" {
		return
	}

	if err := i.cache.Delete(ctx, pathwayCacheKey(event.PathwayID)); err != nil {
		log.Warn().Str("pathway_id", event.PathwayID).Err(err).Msg("Failed to invalidate pathway cache entry")
	}
	if err := i.cache.DeleteByPattern(ctx, pathwaySlugGlob); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate pathway slug cache entries")
	}
	if err := i.cache.DeleteByPattern(ctx, pathwayListGlob); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate pathway list cache entries")
	}
}
