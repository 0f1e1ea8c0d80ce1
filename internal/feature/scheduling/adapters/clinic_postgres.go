package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic_backend/internal/feature/scheduling/domain/entity"
	"clinic_backend/internal/feature/scheduling/usecase"
)

type clinicPostgres struct {
	db *gorm.DB
}

var _ usecase.ClinicRepository = (*clinicPostgres)(nil)

// NewClinicPostgres creates a new instance of clinicPostgres.
func NewClinicPostgres(db *gorm.DB) *clinicPostgres {
	return &clinicPostgres{db: db}
}

func (r *clinicPostgres) Create(ctx context.Context, c *entity.Clinic) error {
	if c == nil {
		return errNilRecord
	}
	if err := c.ValidateNew(); err != nil {
		return err
	}
	m := clinicModelFromEntity(c)
	m.ID = uuid.New()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return translate("clinic", err)
	}
	c.ID, c.CreatedAt, c.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *clinicPostgres) FindByID(ctx context.Context, id uuid.UUID) (*entity.Clinic, error) {
	var m ClinicModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate("clinic", err)
	}
	return m.ToEntity(), nil
}

// ListByUser returns the clinics the user holds a membership for, ordered by name.
func (r *clinicPostgres) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Clinic, error) {
	var rows []ClinicModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN user_to_clinics ON user_to_clinics.clinic_id = clinics.id").
		Where("user_to_clinics.user_id = ?", userID).
		Order("clinics.name ASC").
		Find(&rows).Error; err != nil {
		return nil, translate("clinic", err)
	}
	return toEntities(rows, (*ClinicModel).ToEntity), nil
}

func (r *clinicPostgres) Update(ctx context.Context, id uuid.UUID, patch entity.ClinicPatch) (*entity.Clinic, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if err := updateByID(ctx, r.db, &ClinicModel{}, "clinic", id, patch.Columns()); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes the clinic with its doctors, patients, appointments and memberships.
func (r *clinicPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteWhere(ctx, r.db, &ClinicModel{}, "clinic", "id = ?", id)
}
