package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic_backend/internal/feature/scheduling/domain/entity"
	"clinic_backend/internal/feature/scheduling/usecase"
)

type doctorPostgres struct {
	db *gorm.DB
}

var _ usecase.DoctorRepository = (*doctorPostgres)(nil)

// NewDoctorPostgres creates a new instance of doctorPostgres.
func NewDoctorPostgres(db *gorm.DB) *doctorPostgres {
	return &doctorPostgres{db: db}
}

func (r *doctorPostgres) Create(ctx context.Context, d *entity.Doctor) error {
	if d == nil {
		return errNilRecord
	}
	if err := d.ValidateNew(); err != nil {
		return err
	}
	m := doctorModelFromEntity(d)
	m.ID = uuid.New()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return translate("doctor", err)
	}
	d.ID, d.CreatedAt, d.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *doctorPostgres) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var m DoctorModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate("doctor", err)
	}
	return m.ToEntity(), nil
}

func (r *doctorPostgres) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*entity.Doctor, error) {
	var rows []DoctorModel
	if err := r.db.WithContext(ctx).
		Where("clinic_id = ?", clinicID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, translate("doctor", err)
	}
	return toEntities(rows, (*DoctorModel).ToEntity), nil
}

func (r *doctorPostgres) Update(ctx context.Context, id uuid.UUID, patch entity.DoctorPatch) (*entity.Doctor, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if err := updateByID(ctx, r.db, &DoctorModel{}, "doctor", id, patch.Columns()); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *doctorPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteWhere(ctx, r.db, &DoctorModel{}, "doctor", "id = ?", id)
}
