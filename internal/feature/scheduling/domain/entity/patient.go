package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sex is the enumerated sex of a patient.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// Valid reports whether s is one of the three accepted values.
func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexOther:
		return true
	}
	return false
}

// Patient belongs to one clinic. The email is unique across all clinics.
type Patient struct {
	ID          uuid.UUID `json:"id"`
	ClinicID    uuid.UUID `json:"clinic_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	PhoneNumber string    `json:"phone_number" validate:"required"`
	Sex         Sex       `json:"sex" validate:"required,oneof=male female other"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Clinic       *Clinic       `json:"clinic,omitempty" validate:"-"`
	Appointments []Appointment `json:"appointments,omitempty" validate:"-"`
}

// ValidateNew validates a patient before insertion.
func (p *Patient) ValidateNew() error {
	return validateNew("patient", p, p.ID, p.CreatedAt, p.UpdatedAt)
}

// PatientPatch is a partial update of a patient. Nil fields are left untouched.
type PatientPatch struct {
	Name        *string `json:"name" validate:"omitnil,min=1"`
	Email       *string `json:"email" validate:"omitnil,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitnil,min=1"`
	Sex         *Sex    `json:"sex" validate:"omitnil,oneof=male female other"`
}

// Validate rejects blanking required fields and out-of-range sex values.
func (p PatientPatch) Validate() error {
	return validateStruct("patient", p)
}

// Columns returns the column assignments of the patch.
func (p PatientPatch) Columns() map[string]any {
	cols := map[string]any{}
	setString(cols, "name", p.Name)
	setString(cols, "email", p.Email)
	setString(cols, "phone_number", p.PhoneNumber)
	if p.Sex != nil {
		cols["sex"] = string(*p.Sex)
	}
	return cols
}
