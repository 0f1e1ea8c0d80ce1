package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic_backend/internal/feature/scheduling/domain/entity"
	"clinic_backend/internal/feature/scheduling/usecase"
)

type appointmentPostgres struct {
	db *gorm.DB
}

var _ usecase.AppointmentRepository = (*appointmentPostgres)(nil)

// NewAppointmentPostgres creates a new instance of appointmentPostgres.
func NewAppointmentPostgres(db *gorm.DB) *appointmentPostgres {
	return &appointmentPostgres{db: db}
}

// Create inserts the appointment. It does not check that the doctor and
// patient belong to the clinic; usecase.Scheduler does that before calling it.
func (r *appointmentPostgres) Create(ctx context.Context, a *entity.Appointment) error {
	if a == nil {
		return errNilRecord
	}
	if err := a.ValidateNew(); err != nil {
		return err
	}
	m := appointmentModelFromEntity(a)
	m.ID = uuid.New()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return translate("appointment", err)
	}
	a.ID, a.CreatedAt, a.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *appointmentPostgres) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var m AppointmentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate("appointment", err)
	}
	return m.ToEntity(), nil
}

func (r *appointmentPostgres) FindDetailed(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var m AppointmentModel
	if err := r.db.WithContext(ctx).
		Preload("Clinic").
		Preload("Doctor").
		Preload("Patient").
		Where("id = ?", id).
		First(&m).Error; err != nil {
		return nil, translate("appointment", err)
	}
	return m.ToEntity(), nil
}

func (r *appointmentPostgres) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*entity.Appointment, error) {
	return r.listWhere(ctx, "clinic_id = ?", clinicID)
}

func (r *appointmentPostgres) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entity.Appointment, error) {
	return r.listWhere(ctx, "doctor_id = ?", doctorID)
}

func (r *appointmentPostgres) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Appointment, error) {
	return r.listWhere(ctx, "patient_id = ?", patientID)
}

func (r *appointmentPostgres) listWhere(ctx context.Context, query string, args ...any) ([]*entity.Appointment, error) {
	var rows []AppointmentModel
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, translate("appointment", err)
	}
	return toEntities(rows, (*AppointmentModel).ToEntity), nil
}

func (r *appointmentPostgres) Update(ctx context.Context, id uuid.UUID, patch entity.AppointmentPatch) (*entity.Appointment, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if err := updateByID(ctx, r.db, &AppointmentModel{}, "appointment", id, patch.Columns()); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *appointmentPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteWhere(ctx, r.db, &AppointmentModel{}, "appointment", "id = ?", id)
}
