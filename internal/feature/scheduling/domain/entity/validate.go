package entity

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"clinic_backend/internal/feature/scheduling/domain"
)

// Rule names reported in domain.ValidationError for checks the validator tags do not cover.
const (
	RuleSystemAssigned = "system_assigned"
	RuleRequired       = "required"
	RuleConflict       = "conflict"
)

var validate = newValidator()

// newValidator reports field names using their json tag, which matches the storage column name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrors runs the struct tags of s and collects the failures by field name.
func fieldErrors(s any) (map[string]string, error) {
	fields := map[string]string{}
	err := validate.Struct(s)
	if err == nil {
		return fields, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields, nil
}

func validateStruct(entity string, s any) error {
	fields, err := fieldErrors(s)
	if err != nil {
		return err
	}
	return asError(entity, fields)
}

// validateNew validates a record about to be inserted. Identity and timestamps
// belong to the storage layer, so a caller-supplied value is a validation failure.
func validateNew(entity string, s any, id uuid.UUID, createdAt, updatedAt time.Time) error {
	fields, err := fieldErrors(s)
	if err != nil {
		return err
	}
	if id != uuid.Nil {
		fields["id"] = RuleSystemAssigned
	}
	if !createdAt.IsZero() {
		fields["created_at"] = RuleSystemAssigned
	}
	if !updatedAt.IsZero() {
		fields["updated_at"] = RuleSystemAssigned
	}
	return asError(entity, fields)
}

func asError(entity string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Entity: entity, Fields: fields}
}
