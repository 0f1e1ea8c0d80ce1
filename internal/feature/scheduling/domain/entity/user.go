// Package entity defines the persistent records of the scheduling feature
// and the relationship graph between them.
package entity

import (
	"github.com/google/uuid"
)

// User is an authentication principal. Identity is managed by an external
// authentication layer; the store only keeps the id so memberships can reference it.
type User struct {
	// ID is a random UUID assigned on creation.
	ID uuid.UUID `json:"id"`

	// Memberships are removed together with the user.
	Memberships []Membership `json:"memberships,omitempty" validate:"-"`
}

// ValidateNew checks that the caller left the system-assigned id empty.
func (u *User) ValidateNew() error {
	if u.ID != uuid.Nil {
		return asError("user", map[string]string{"id": RuleSystemAssigned})
	}
	return nil
}
