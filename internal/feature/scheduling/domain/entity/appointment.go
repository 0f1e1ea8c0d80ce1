package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment links a clinic, a patient and a doctor at a point in time.
// The schema does not require the doctor and patient to belong to ClinicID;
// the scheduling usecase checks that before writing.
type Appointment struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date" validate:"required"`
	ClinicID  uuid.UUID `json:"clinic_id" validate:"required"`
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Clinic  *Clinic  `json:"clinic,omitempty" validate:"-"`
	Patient *Patient `json:"patient,omitempty" validate:"-"`
	Doctor  *Doctor  `json:"doctor,omitempty" validate:"-"`
}

// ValidateNew validates an appointment before insertion.
func (a *Appointment) ValidateNew() error {
	return validateNew("appointment", a, a.ID, a.CreatedAt, a.UpdatedAt)
}

// AppointmentPatch is a partial update of an appointment. Nil fields are left untouched.
// The clinic of an appointment cannot change.
type AppointmentPatch struct {
	Date      *time.Time `json:"date"`
	PatientID *uuid.UUID `json:"patient_id"`
	DoctorID  *uuid.UUID `json:"doctor_id"`
}

// Validate rejects zero dates and nil identifiers.
func (p AppointmentPatch) Validate() error {
	fields := map[string]string{}
	if p.Date != nil && p.Date.IsZero() {
		fields["date"] = RuleRequired
	}
	if p.PatientID != nil && *p.PatientID == uuid.Nil {
		fields["patient_id"] = RuleRequired
	}
	if p.DoctorID != nil && *p.DoctorID == uuid.Nil {
		fields["doctor_id"] = RuleRequired
	}
	return asError("appointment", fields)
}

// Columns returns the column assignments of the patch.
func (p AppointmentPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Date != nil {
		cols["date"] = *p.Date
	}
	if p.PatientID != nil {
		cols["patient_id"] = *p.PatientID
	}
	if p.DoctorID != nil {
		cols["doctor_id"] = *p.DoctorID
	}
	return cols
}
