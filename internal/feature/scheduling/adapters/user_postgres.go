// Package adapters provides the GORM repository implementations for the scheduling feature.
package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinic_backend/internal/feature/scheduling/domain/entity"
	"clinic_backend/internal/feature/scheduling/usecase"
)

// userPostgres is a GORM implementation of the UserRepository interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new instance of userPostgres.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts a user row with a freshly generated id.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errNilRecord
	}
	if err := u.ValidateNew(); err != nil {
		return err
	}
	m := &UserModel{ID: uuid.New()}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate("user", err)
	}
	u.ID = m.ID
	return nil
}

// FindByID retrieves a user by id.
func (r *userPostgres) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate("user", err)
	}
	return m.ToEntity(), nil
}

// Delete removes the user. Its memberships go with it.
func (r *userPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteWhere(ctx, r.db, &UserModel{}, "user", "id = ?", id)
}
