package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/providers"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
)

// CachedPathwayAdapter wraps PathwayAdapter with caching. Pathway metadata is
// read-mostly; node reads stay uncached so tree queries always see the latest
// write.
type CachedPathwayAdapter struct {
	adapter repositories.PathwayRepository
	cache   providers.CacheProvider
}

// NewCachedPathwayAdapter creates a new cached pathway adapter
func NewCachedPathwayAdapter(adapter repositories.PathwayRepository, cache providers.CacheProvider) repositories.PathwayRepository {
	return &CachedPathwayAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	pathwayByIDTTL  = 300 // 5 minutes for single pathway
	pathwayListTTL  = 180 // 3 minutes for listings
	pathwayListGlob = "pathways:list:*"
)

func pathwayCacheKey(id string) string {
	return fmt.Sprintf("pathway:%s", id)
}

func pathwaySlugCacheKey(slug string) string {
	return fmt.Sprintf("pathway:slug:%s", slug)
}

func pathwayListCacheKey(filter repositories.PathwayFilter) string {
	active, published := "any", "any"
	if filter.IsActive != nil {
		active = fmt.Sprintf("%t", *filter.IsActive)
	}
	if filter.IsPublished != nil {
		published = fmt.Sprintf("%t", *filter.IsPublished)
	}
	return fmt.Sprintf("pathways:list:%s:%s:%s:%d:%s",
		active, published, filter.ConditionCode, filter.First, filter.After)
}

// GetByID retrieves a pathway by ID with caching
func (a *CachedPathwayAdapter) GetByID(ctx context.Context, id string) (*entities.ClinicalPathway, error) {
	cacheKey := pathwayCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var pathway entities.ClinicalPathway
		if err := json.Unmarshal(cached, &pathway); err == nil {
			return &pathway, nil
		}
		log.Warn().Str("key", cacheKey).Msg("Failed to unmarshal cached pathway")
	}

	pathway, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.storeAsync(cacheKey, pathway, pathwayByIDTTL)
	return pathway, nil
}

// GetBySlug retrieves a pathway by slug with caching
func (a *CachedPathwayAdapter) GetBySlug(ctx context.Context, slug string) (*entities.ClinicalPathway, error) {
	cacheKey := pathwaySlugCacheKey(slug)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var pathway entities.ClinicalPathway
		if err := json.Unmarshal(cached, &pathway); err == nil {
			return &pathway, nil
		}
		log.Warn().Str("key", cacheKey).Msg("Failed to unmarshal cached pathway")
	}

	pathway, err := a.adapter.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	a.storeAsync(cacheKey, pathway, pathwayByIDTTL)
	return pathway, nil
}

// GetByIDs delegates to the underlying adapter. The dataloader layer already
// batches these per request, so a second cache tier buys little here.
func (a *CachedPathwayAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.ClinicalPathway, error) {
	return a.adapter.GetByIDs(ctx, ids)
}

// List retrieves pathways with short-TTL caching keyed by filter and cursor
func (a *CachedPathwayAdapter) List(ctx context.Context, filter repositories.PathwayFilter) (*repositories.PathwayPage, error) {
	cacheKey := pathwayListCacheKey(filter)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var page repositories.PathwayPage
		if err := json.Unmarshal(cached, &page); err == nil {
			return &page, nil
		}
		log.Warn().Str("key", cacheKey).Msg("Failed to unmarshal cached pathway page")
	}

	page, err := a.adapter.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	a.storeAsync(cacheKey, page, pathwayListTTL)
	return page, nil
}

// Update delegates and invalidates cached reads for the pathway
func (a *CachedPathwayAdapter) Update(ctx context.Context, pathway *entities.ClinicalPathway, expectedVersion *int) error {
	if err := a.adapter.Update(ctx, pathway, expectedVersion); err != nil {
		return err
	}
	a.invalidate(ctx, pathway.ID, pathway.Slug)
	return nil
}

// Delete delegates and invalidates cached reads for the pathway
func (a *CachedPathwayAdapter) Delete(ctx context.Context, id string) error {
	pathway, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := a.adapter.Delete(ctx, id); err != nil {
		return err
	}
	a.invalidate(ctx, id, pathway.Slug)
	return nil
}

// SetPublished delegates and invalidates cached reads for the pathway
func (a *CachedPathwayAdapter) SetPublished(ctx context.Context, id string, published bool) (*entities.ClinicalPathway, error) {
	pathway, err := a.adapter.SetPublished(ctx, id, published)
	if err != nil {
		return nil, err
	}
	a.invalidate(ctx, id, pathway.Slug)
	return pathway, nil
}

// Create delegates and invalidates cached listings
func (a *CachedPathwayAdapter) Create(ctx context.Context, pathway *entities.ClinicalPathway) error {
	if err := a.adapter.Create(ctx, pathway); err != nil {
		return err
	}
	a.invalidateLists(ctx)
	return nil
}

func (a *CachedPathwayAdapter) storeAsync(key string, value interface{}, ttl int) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		data, err := json.Marshal(value)
		if err != nil {
			return
		}
		if err := a.cache.Set(bgCtx, key, data, ttl); err != nil {
			log.Warn().Str("key", key).Err(err).Msg("Failed to cache pathway data")
		}
	}()
}

func (a *CachedPathwayAdapter) invalidate(ctx context.Context, id, slug string) {
	if err := a.cache.Delete(ctx, pathwayCacheKey(id)); err != nil {
		log.Warn().Str("pathway_id", id).Err(err).Msg("Failed to invalidate pathway cache")
	}
	if slug != "" {
		if err := a.cache.Delete(ctx, pathwaySlugCacheKey(slug)); err != nil {
			log.Warn().Str("slug", slug).Err(err).Msg("Failed to invalidate pathway slug cache")
		}
	}
	a.invalidateLists(ctx)
}

func (a *CachedPathwayAdapter) invalidateLists(ctx context.Context) {
	if err := a.cache.DeleteByPattern(ctx, pathwayListGlob); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate pathway list cache")
	}
}
