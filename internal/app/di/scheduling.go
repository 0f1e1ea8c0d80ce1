// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"clinic_backend/internal/feature/scheduling/adapters"
	"clinic_backend/internal/feature/scheduling/usecase"
	"clinic_backend/internal/platform/cache"
)

const clinicCacheNamespace = "clinics"

// NewRepositories returns the store's repositories. If Redis is available,
// clinic lookups go through the Redis cache.
func NewRepositories(store *adapters.Store, rdb *redis.Client, ttl time.Duration) usecase.Repositories {
	repos := store.Repositories()
	if rdb != nil {
		repos.Clinics = cache.NewCachingClinicRepository(rdb, ttl, repos.Clinics, clinicCacheNamespace)
	}
	return repos
}

// NewUnitOfWork returns the store's transaction runner. If Redis is available,
// clinics written inside a transaction are evicted from the cache after commit.
func NewUnitOfWork(store *adapters.Store, rdb *redis.Client) usecase.UnitOfWork {
	if rdb == nil {
		return store
	}
	return cache.NewCachingUnitOfWork(rdb, store, clinicCacheNamespace)
}

// NewScheduler wires the scheduling usecase over store with the optional clinic cache.
func NewScheduler(store *adapters.Store, rdb *redis.Client, ttl time.Duration) (usecase.Scheduler, usecase.Repositories) {
	repos := NewRepositories(store, rdb, ttl)
	return usecase.NewSchedulingUsecase(NewUnitOfWork(store, rdb), repos), repos
}
