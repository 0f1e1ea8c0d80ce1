package adapters

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"clinic_backend/internal/feature/scheduling/domain"
)

// PostgreSQL SQLSTATE codes mapped onto the domain taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgInvalidTextRepr     = "22P02"
)

// translate maps driver and GORM errors onto the domain error taxonomy.
// Errors it does not recognise are returned unchanged.
func translate(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: %s", entity, domain.ErrUniquenessViolation, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", entity, domain.ErrReferentialIntegrity, pgErr.ConstraintName)
		case pgNotNullViolation:
			return domain.NewValidationError(entity, pgErr.ColumnName, "required")
		case pgCheckViolation, pgInvalidTextRepr:
			return fmt.Errorf("%s: %w: %s", entity, domain.ErrValidation, pgErr.Message)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%s: %w: %s", entity, domain.ErrUniquenessViolation, liteErr.Error())
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%s: %w", entity, domain.ErrReferentialIntegrity)
		case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%s: %w: %s", entity, domain.ErrValidation, liteErr.Error())
		}
	}
	return err
}
