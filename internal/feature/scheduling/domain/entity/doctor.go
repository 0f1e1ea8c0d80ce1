package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a practitioner working at one clinic.
//
// The availability fields are free text (for example "1" / "5" for weekdays and
// "08:00:00" / "18:00:00" for times). Their format and ordering are not checked here.
type Doctor struct {
	ID             uuid.UUID `json:"id"`
	ClinicID       uuid.UUID `json:"clinic_id" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	AvatarImageURL *string   `json:"avatar_image_url,omitempty"`

	AvailableFromWeekDay string `json:"available_from_week_day" validate:"required"`
	AvailableToWeekDay   string `json:"available_to_week_day" validate:"required"`
	AvailableFromTime    string `json:"available_from_time" validate:"required"`
	AvailableToTime      string `json:"available_to_time" validate:"required"`

	// AppointmentPriceInCents is the price in the minor currency unit.
	AppointmentPriceInCents int    `json:"appointment_price_in_cents" validate:"gte=0"`
	Specialty               string `json:"specialty" validate:"required"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Clinic       *Clinic       `json:"clinic,omitempty" validate:"-"`
	Appointments []Appointment `json:"appointments,omitempty" validate:"-"`
}

// ValidateNew validates a doctor before insertion.
func (d *Doctor) ValidateNew() error {
	return validateNew("doctor", d, d.ID, d.CreatedAt, d.UpdatedAt)
}

// DoctorPatch is a partial update of a doctor. Nil fields are left untouched.
// Setting ClearAvatarImageURL stores NULL in the optional avatar column.
type DoctorPatch struct {
	Name                    *string `json:"name" validate:"omitnil,min=1"`
	AvatarImageURL          *string `json:"avatar_image_url"`
	ClearAvatarImageURL     bool    `json:"-"`
	AvailableFromWeekDay    *string `json:"available_from_week_day" validate:"omitnil,min=1"`
	AvailableToWeekDay      *string `json:"available_to_week_day" validate:"omitnil,min=1"`
	AvailableFromTime       *string `json:"available_from_time" validate:"omitnil,min=1"`
	AvailableToTime         *string `json:"available_to_time" validate:"omitnil,min=1"`
	AppointmentPriceInCents *int    `json:"appointment_price_in_cents" validate:"omitnil,gte=0"`
	Specialty               *string `json:"specialty" validate:"omitnil,min=1"`
}

// Validate rejects blanking required fields and contradictory avatar changes.
func (p DoctorPatch) Validate() error {
	fields, err := fieldErrors(p)
	if err != nil {
		return err
	}
	if p.ClearAvatarImageURL && p.AvatarImageURL != nil {
		fields["avatar_image_url"] = RuleConflict
	}
	return asError("doctor", fields)
}

// Columns returns the column assignments of the patch.
func (p DoctorPatch) Columns() map[string]any {
	cols := map[string]any{}
	setString(cols, "name", p.Name)
	setString(cols, "avatar_image_url", p.AvatarImageURL)
	if p.ClearAvatarImageURL {
		cols["avatar_image_url"] = nil
	}
	setString(cols, "available_from_week_day", p.AvailableFromWeekDay)
	setString(cols, "available_to_week_day", p.AvailableToWeekDay)
	setString(cols, "available_from_time", p.AvailableFromTime)
	setString(cols, "available_to_time", p.AvailableToTime)
	if p.AppointmentPriceInCents != nil {
		cols["appointment_price_in_cents"] = *p.AppointmentPriceInCents
	}
	setString(cols, "specialty", p.Specialty)
	return cols
}

func setString(cols map[string]any, column string, v *string) {
	if v != nil {
		cols[column] = *v
	}
}
