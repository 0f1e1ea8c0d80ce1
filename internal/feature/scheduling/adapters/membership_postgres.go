package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic_backend/internal/feature/scheduling/domain/entity"
	"clinic_backend/internal/feature/scheduling/usecase"
)

type membershipPostgres struct {
	db *gorm.DB
}

var _ usecase.MembershipRepository = (*membershipPostgres)(nil)

// NewMembershipPostgres creates a new instance of membershipPostgres.
func NewMembershipPostgres(db *gorm.DB) *membershipPostgres {
	return &membershipPostgres{db: db}
}

// Grant inserts the membership. Granting the same pair twice violates the primary key.
func (r *membershipPostgres) Grant(ctx context.Context, mb *entity.Membership) error {
	if mb == nil {
		return errNilRecord
	}
	if err := mb.ValidateNew(); err != nil {
		return err
	}
	m := membershipModelFromEntity(mb)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return translate("membership", err)
	}
	mb.CreatedAt, mb.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *membershipPostgres) Exists(ctx context.Context, userID, clinicID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&MembershipModel{}).
		Where("user_id = ? AND clinic_id = ?", userID, clinicID).
		Count(&count).Error
	if err != nil {
		return false, translate("membership", err)
	}
	return count > 0, nil
}

func (r *membershipPostgres) Revoke(ctx context.Context, userID, clinicID uuid.UUID) error {
	return deleteWhere(ctx, r.db, &MembershipModel{}, "membership", "user_id = ? AND clinic_id = ?", userID, clinicID)
}

// ListByClinic returns the members of a clinic, oldest grant first.
func (r *membershipPostgres) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*entity.Membership, error) {
	var rows []MembershipModel
	if err := r.db.WithContext(ctx).
		Where("clinic_id = ?", clinicID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, translate("membership", err)
	}
	return toEntities(rows, (*MembershipModel).ToEntity), nil
}

// ListByUser returns the user's memberships with the clinic loaded.
func (r *membershipPostgres) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	var rows []MembershipModel
	if err := r.db.WithContext(ctx).
		Preload("Clinic").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, translate("membership", err)
	}
	return toEntities(rows, (*MembershipModel).ToEntity), nil
}
