package entity

import (
	"time"

	"github.com/google/uuid"
)

// Membership grants a user access to a clinic.
// The (user_id, clinic_id) pair is the primary key, so a user holds at most one
// membership per clinic.
type Membership struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	ClinicID  uuid.UUID `json:"clinic_id" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User   *User   `json:"user,omitempty" validate:"-"`
	Clinic *Clinic `json:"clinic,omitempty" validate:"-"`
}

// ValidateNew validates a membership before insertion.
func (m *Membership) ValidateNew() error {
	return validateNew("membership", m, uuid.Nil, m.CreatedAt, m.UpdatedAt)
}
