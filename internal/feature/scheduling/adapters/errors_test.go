package adapters

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"clinic_backend/internal/feature/scheduling/domain"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil stays nil", err: nil, want: nil},
		{name: "record not found", err: gorm.ErrRecordNotFound, want: domain.ErrNotFound},
		{name: "wrapped record not found", err: fmt.Errorf("query: %w", gorm.ErrRecordNotFound), want: domain.ErrNotFound},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505", ConstraintName: "idx_patients_email"}, want: domain.ErrUniquenessViolation},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503", ConstraintName: "fk_clinics_doctors"}, want: domain.ErrReferentialIntegrity},
		{name: "postgres not null", err: &pgconn.PgError{Code: "23502", ColumnName: "name"}, want: domain.ErrValidation},
		{name: "postgres check", err: &pgconn.PgError{Code: "23514", ConstraintName: "chk_patients_sex"}, want: domain.ErrValidation},
		{name: "postgres bad uuid text", err: &pgconn.PgError{Code: "22P02"}, want: domain.ErrValidation},
		{name: "sqlite unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: domain.ErrUniquenessViolation},
		{name: "sqlite primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, want: domain.ErrUniquenessViolation},
		{name: "sqlite foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, want: domain.ErrReferentialIntegrity},
		{name: "sqlite not null", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, want: domain.ErrValidation},
		{name: "sqlite check", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, want: domain.ErrValidation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translate("patient", tt.err)

			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("unknown errors pass through", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, other, translate("patient", other))
		pg := &pgconn.PgError{Code: "40001"}
		assert.Equal(t, error(pg), translate("patient", pg))
	})
}

func TestTranslate_NotNullNamesColumn(t *testing.T) {
	t.Parallel()

	err := translate("doctor", &pgconn.PgError{Code: "23502", ColumnName: "specialty"})

	var ve *domain.ValidationError
	if assert.True(t, errors.As(err, &ve)) {
		assert.Equal(t, "doctor", ve.Entity)
		assert.Equal(t, "required", ve.Fields["specialty"])
	}
}
