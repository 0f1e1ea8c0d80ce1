package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic_backend/internal/feature/scheduling/domain/entity"
	"clinic_backend/internal/feature/scheduling/usecase"
)

type patientPostgres struct {
	db *gorm.DB
}

var _ usecase.PatientRepository = (*patientPostgres)(nil)

// NewPatientPostgres creates a new instance of patientPostgres.
func NewPatientPostgres(db *gorm.DB) *patientPostgres {
	return &patientPostgres{db: db}
}

// Create inserts the patient. A duplicate email surfaces as domain.ErrUniquenessViolation.
func (r *patientPostgres) Create(ctx context.Context, p *entity.Patient) error {
	if p == nil {
		return errNilRecord
	}
	if err := p.ValidateNew(); err != nil {
		return err
	}
	m := patientModelFromEntity(p)
	m.ID = uuid.New()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return translate("patient", err)
	}
	p.ID, p.CreatedAt, p.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *patientPostgres) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var m PatientModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate("patient", err)
	}
	return m.ToEntity(), nil
}

func (r *patientPostgres) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	var m PatientModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, translate("patient", err)
	}
	return m.ToEntity(), nil
}

func (r *patientPostgres) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*entity.Patient, error) {
	var rows []PatientModel
	if err := r.db.WithContext(ctx).
		Where("clinic_id = ?", clinicID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, translate("patient", err)
	}
	return toEntities(rows, (*PatientModel).ToEntity), nil
}

func (r *patientPostgres) Update(ctx context.Context, id uuid.UUID, patch entity.PatientPatch) (*entity.Patient, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if err := updateByID(ctx, r.db, &PatientModel{}, "patient", id, patch.Columns()); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *patientPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteWhere(ctx, r.db, &PatientModel{}, "patient", "id = ?", id)
}
