// Package usecase implements the scheduling business rules that span more than one record.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"clinic_backend/internal/feature/scheduling/domain/entity"
)

// The repository interfaces below are defined by the consumer (usecase), not the provider (adapters).
//
// Every method returns errors from the domain taxonomy: domain.ErrNotFound for an
// unknown id, a *domain.ValidationError for rejected input, domain.ErrUniquenessViolation
// and domain.ErrReferentialIntegrity for constraint failures.

// UserRepository stores the principals memberships point at.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Delete removes the user and, through the storage cascade, its memberships.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClinicRepository abstracts the persistence layer for clinics.
type ClinicRepository interface {
	Create(ctx context.Context, clinic *entity.Clinic) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Clinic, error)

	// ListByUser returns the clinics the user is a member of, ordered by name.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Clinic, error)

	// Update applies the patch and returns the stored clinic.
	Update(ctx context.Context, id uuid.UUID, patch entity.ClinicPatch) (*entity.Clinic, error)

	// Delete removes the clinic and everything scoped to it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// MembershipRepository abstracts the persistence layer for user_to_clinics rows.
type MembershipRepository interface {
	// Grant inserts a membership. A second grant for the same pair is a uniqueness violation.
	Grant(ctx context.Context, membership *entity.Membership) error
	Exists(ctx context.Context, userID, clinicID uuid.UUID) (bool, error)
	Revoke(ctx context.Context, userID, clinicID uuid.UUID) error
	ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*entity.Membership, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error)
}

// DoctorRepository abstracts the persistence layer for doctors.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*entity.Doctor, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.DoctorPatch) (*entity.Doctor, error)

	// Delete removes the doctor and its appointments.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PatientRepository abstracts the persistence layer for patients.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// FindByEmail looks a patient up by its system-wide unique email.
	FindByEmail(ctx context.Context, email string) (*entity.Patient, error)
	ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*entity.Patient, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.PatientPatch) (*entity.Patient, error)

	// Delete removes the patient and its appointments.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AppointmentRepository abstracts the persistence layer for appointments.
// List methods return appointments ordered by date, earliest first.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindDetailed returns the appointment with its clinic, doctor and patient loaded.
	FindDetailed(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*entity.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entity.Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.AppointmentPatch) (*entity.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repositories groups the repositories that share one database handle.
type Repositories struct {
	Users        UserRepository
	Clinics      ClinicRepository
	Memberships  MembershipRepository
	Doctors      DoctorRepository
	Patients     PatientRepository
	Appointments AppointmentRepository
}

// UnitOfWork runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
