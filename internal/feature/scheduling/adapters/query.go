package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinic_backend/internal/feature/scheduling/domain"
)

var errNilRecord = errors.New("record is nil")

// updateByID writes cols to the row with the given id and always advances updated_at.
// It returns domain.ErrNotFound when no row matched.
func updateByID(ctx context.Context, db *gorm.DB, model any, entity string, id uuid.UUID, cols map[string]any) error {
	cols["updated_at"] = time.Now()
	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return translate(entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}
	return nil
}

// deleteWhere issues a single DELETE and relies on the foreign keys to cascade.
func deleteWhere(ctx context.Context, db *gorm.DB, model any, entity string, query string, args ...any) error {
	result := db.WithContext(ctx).Where(query, args...).Delete(model)
	if result.Error != nil {
		return translate(entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}
	return nil
}

func toEntities[M any, E any](rows []M, convert func(*M) *E) []*E {
	out := make([]*E, len(rows))
	for i := range rows {
		out[i] = convert(&rows[i])
	}
	return out
}
