// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"clinic_backend/internal/feature/scheduling/domain/entity"
	"clinic_backend/internal/feature/scheduling/usecase"
)

// CachingClinicRepository decorates a ClinicRepository with a Redis read-through
// cache for lookups by id. Writes go to the inner repository first and then drop
// the cached entry. A nil Redis client disables caching.
//
// Invalidation is not atomic with the read-through fill: a FindByID miss that
// read the row before a concurrent Update or Delete may store the old value after
// the eviction, and it is then served until the TTL expires. Keep the TTL short.
// Writes made inside a transaction are evicted by CachingUnitOfWork.
type CachingClinicRepository struct {
	inner     usecase.ClinicRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ClinicRepository = (*CachingClinicRepository)(nil)

// NewCachingClinicRepository decorates a ClinicRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "clinics".
func NewCachingClinicRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ClinicRepository, namespace string) *CachingClinicRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "clinics"
	}
	return &CachingClinicRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingClinicRepository) Create(ctx context.Context, clinic *entity.Clinic) error {
	return c.inner.Create(ctx, clinic)
}

// FindByID checks the cache first and falls back to the inner repository.
// Errors, including not found, are never cached.
func (c *CachingClinicRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Clinic, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Clinic
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Best effort
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// ListByUser is not cached: membership changes are not visible to this decorator.
func (c *CachingClinicRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Clinic, error) {
	return c.inner.ListByUser(ctx, userID)
}

func (c *CachingClinicRepository) Update(ctx context.Context, id uuid.UUID, patch entity.ClinicPatch) (*entity.Clinic, error) {
	out, err := c.inner.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, id)
	return out, nil
}

func (c *CachingClinicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachingClinicRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(id)).Err()
}

func (c *CachingClinicRepository) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", c.namespace, id)
}
