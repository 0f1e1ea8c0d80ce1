package cache

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"clinic_backend/internal/feature/scheduling/domain/entity"
	"clinic_backend/internal/feature/scheduling/usecase"
)

// CachingUnitOfWork keeps the clinic cache consistent with writes made inside
// transactions. Clinics updated or deleted in Do are dropped from the cache once
// the transaction commits. Reads inside Do bypass the cache.
type CachingUnitOfWork struct {
	inner     usecase.UnitOfWork
	rdb       *redis.Client
	namespace string
}

var _ usecase.UnitOfWork = (*CachingUnitOfWork)(nil)

// NewCachingUnitOfWork decorates inner. namespace must match the one given to
// NewCachingClinicRepository; empty means "clinics".
func NewCachingUnitOfWork(rdb *redis.Client, inner usecase.UnitOfWork, namespace string) *CachingUnitOfWork {
	if namespace == "" {
		namespace = "clinics"
	}
	return &CachingUnitOfWork{inner: inner, rdb: rdb, namespace: namespace}
}

func (u *CachingUnitOfWork) Do(ctx context.Context, fn func(repos usecase.Repositories) error) error {
	if u.rdb == nil {
		return u.inner.Do(ctx, fn)
	}

	tracker := &touchedClinics{}
	err := u.inner.Do(ctx, func(repos usecase.Repositories) error {
		tracker.reset()
		repos.Clinics = &trackingClinicRepository{ClinicRepository: repos.Clinics, touched: tracker}
		return fn(repos)
	})
	if err != nil {
		return err
	}

	for _, id := range tracker.ids() {
		_ = u.rdb.Del(ctx, u.namespace+":"+id.String()).Err()
	}
	return nil
}

// touchedClinics collects the ids written during one transaction attempt.
type touchedClinics struct {
	mu  sync.Mutex
	set map[uuid.UUID]struct{}
}

func (t *touchedClinics) add(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.set == nil {
		t.set = make(map[uuid.UUID]struct{})
	}
	t.set[id] = struct{}{}
}

func (t *touchedClinics) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.set = nil
}

func (t *touchedClinics) ids() []uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]uuid.UUID, 0, len(t.set))
	for id := range t.set {
		out = append(out, id)
	}
	return out
}

type trackingClinicRepository struct {
	usecase.ClinicRepository
	touched *touchedClinics
}

func (r *trackingClinicRepository) Update(ctx context.Context, id uuid.UUID, patch entity.ClinicPatch) (*entity.Clinic, error) {
	r.touched.add(id)
	return r.ClinicRepository.Update(ctx, id, patch)
}

func (r *trackingClinicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.touched.add(id)
	return r.ClinicRepository.Delete(ctx, id)
}
