package adapters

import (
	"context"

	"gorm.io/gorm"

	"clinic_backend/internal/feature/scheduling/usecase"
)

// Store owns the database handle and hands out repositories bound to it.
type Store struct {
	db *gorm.DB
}

var _ usecase.UnitOfWork = (*Store)(nil)

// NewStore creates a Store over db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Repositories returns repositories that run each call in its own implicit transaction.
func (s *Store) Repositories() usecase.Repositories {
	return newRepositories(s.db)
}

// Do runs fn inside a database transaction. Repositories passed to fn share the transaction.
func (s *Store) Do(ctx context.Context, fn func(repos usecase.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}

func newRepositories(db *gorm.DB) usecase.Repositories {
	return usecase.Repositories{
		Users:        NewUserPostgres(db),
		Clinics:      NewClinicPostgres(db),
		Memberships:  NewMembershipPostgres(db),
		Doctors:      NewDoctorPostgres(db),
		Patients:     NewPatientPostgres(db),
		Appointments: NewAppointmentPostgres(db),
	}
}
