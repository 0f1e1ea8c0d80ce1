package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"clinic_backend/internal/feature/scheduling/domain"
	"clinic_backend/internal/feature/scheduling/domain/entity"
)

// Scheduler is the service layer over the repositories. It owns the rules that
// span more than one record: clinic ownership, membership checks and same-clinic
// appointments.
type Scheduler interface {
	OpenClinic(ctx context.Context, ownerID uuid.UUID, clinic *entity.Clinic) error
	Authorize(ctx context.Context, userID, clinicID uuid.UUID) error
	BookAppointment(ctx context.Context, a *entity.Appointment) error
	ChangeAppointment(ctx context.Context, id uuid.UUID, patch entity.AppointmentPatch) (*entity.Appointment, error)
}

var _ Scheduler = (*schedulingUsecase)(nil)

// schedulingUsecase enforces the rules that involve more than one record.
type schedulingUsecase struct {
	uow   UnitOfWork
	repos Repositories
}

// NewSchedulingUsecase creates a schedulingUsecase. repos serve reads outside a
// transaction; uow provides transactional repositories for writes.
func NewSchedulingUsecase(uow UnitOfWork, repos Repositories) *schedulingUsecase {
	return &schedulingUsecase{uow: uow, repos: repos}
}

// OpenClinic creates the clinic and grants its owner a membership in one transaction.
func (u *schedulingUsecase) OpenClinic(ctx context.Context, ownerID uuid.UUID, clinic *entity.Clinic) error {
	if clinic == nil {
		return errors.New("clinic is nil")
	}
	if err := clinic.ValidateNew(); err != nil {
		return err
	}
	if ownerID == uuid.Nil {
		return domain.NewValidationError("membership", "user_id", "required")
	}
	return u.uow.Do(ctx, func(repos Repositories) error {
		if err := repos.Clinics.Create(ctx, clinic); err != nil {
			return fmt.Errorf("create clinic: %w", err)
		}
		m := &entity.Membership{UserID: ownerID, ClinicID: clinic.ID}
		if err := repos.Memberships.Grant(ctx, m); err != nil {
			return fmt.Errorf("grant owner membership: %w", err)
		}
		return nil
	})
}

// Authorize returns domain.ErrAccessDenied unless the user is a member of the clinic.
func (u *schedulingUsecase) Authorize(ctx context.Context, userID, clinicID uuid.UUID) error {
	ok, err := u.repos.Memberships.Exists(ctx, userID, clinicID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAccessDenied
	}
	return nil
}

// BookAppointment creates an appointment whose doctor and patient both belong to its clinic.
func (u *schedulingUsecase) BookAppointment(ctx context.Context, a *entity.Appointment) error {
	if a == nil {
		return errors.New("appointment is nil")
	}
	if err := a.ValidateNew(); err != nil {
		return err
	}
	return u.uow.Do(ctx, func(repos Repositories) error {
		if err := checkParticipants(ctx, repos, a.ClinicID, a.DoctorID, a.PatientID); err != nil {
			return err
		}
		return repos.Appointments.Create(ctx, a)
	})
}

// ChangeAppointment applies the patch after checking that a reassigned doctor
// or patient belongs to the appointment's clinic.
func (u *schedulingUsecase) ChangeAppointment(ctx context.Context, id uuid.UUID, patch entity.AppointmentPatch) (*entity.Appointment, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	var updated *entity.Appointment
	err := u.uow.Do(ctx, func(repos Repositories) error {
		current, err := repos.Appointments.FindByID(ctx, id)
		if err != nil {
			return err
		}
		doctorID, patientID := current.DoctorID, current.PatientID
		if patch.DoctorID != nil {
			doctorID = *patch.DoctorID
		}
		if patch.PatientID != nil {
			patientID = *patch.PatientID
		}
		if patch.DoctorID != nil || patch.PatientID != nil {
			if err := checkParticipants(ctx, repos, current.ClinicID, doctorID, patientID); err != nil {
				return err
			}
		}
		updated, err = repos.Appointments.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// checkParticipants loads the doctor and patient and verifies they work at clinicID.
// A missing doctor or patient is a referential integrity failure.
func checkParticipants(ctx context.Context, repos Repositories, clinicID, doctorID, patientID uuid.UUID) error {
	doctor, err := repos.Doctors.FindByID(ctx, doctorID)
	if err != nil {
		return asMissingReference("doctor", doctorID, err)
	}
	patient, err := repos.Patients.FindByID(ctx, patientID)
	if err != nil {
		return asMissingReference("patient", patientID, err)
	}
	if doctor.ClinicID != clinicID || patient.ClinicID != clinicID {
		return domain.ErrClinicMismatch
	}
	return nil
}

func asMissingReference(entity string, id uuid.UUID, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrReferentialIntegrity)
	}
	return err
}
