package entity

import (
	"time"

	"github.com/google/uuid"
)

// Clinic is the tenant boundary. Every doctor, patient, appointment and
// membership is scoped to exactly one clinic and is deleted with it.
type Clinic struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Doctors      []Doctor      `json:"doctors,omitempty" validate:"-"`
	Patients     []Patient     `json:"patients,omitempty" validate:"-"`
	Appointments []Appointment `json:"appointments,omitempty" validate:"-"`
	Memberships  []Membership  `json:"memberships,omitempty" validate:"-"`
}

// ValidateNew validates a clinic before insertion.
func (c *Clinic) ValidateNew() error {
	return validateNew("clinic", c, c.ID, c.CreatedAt, c.UpdatedAt)
}

// ClinicPatch is a partial update of a clinic. Nil fields are left untouched.
type ClinicPatch struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
}

// Validate rejects blanking the required name.
func (p ClinicPatch) Validate() error {
	return validateStruct("clinic", p)
}

// Columns returns the column assignments of the patch.
func (p ClinicPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	return cols
}
