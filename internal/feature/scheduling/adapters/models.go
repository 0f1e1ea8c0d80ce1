package adapters

import (
	"time"

	"github.com/google/uuid"

	"clinic_backend/internal/feature/scheduling/domain/entity"
)

// Every foreign key is ON DELETE CASCADE. The constraint is declared on both
// ends of each association; GORM emits it once, on the child table.

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Memberships []MembershipModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ClinicModel is the GORM model for the clinics table.
type ClinicModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Doctors      []DoctorModel      `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE"`
	Patients     []PatientModel     `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE"`
	Appointments []AppointmentModel `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE"`
	Memberships  []MembershipModel  `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (ClinicModel) TableName() string {
	return "clinics"
}

// MembershipModel is the GORM model for the user_to_clinics join table.
type MembershipModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClinicID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User   *UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Clinic *ClinicModel `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (MembershipModel) TableName() string {
	return "user_to_clinics"
}

// DoctorModel is the GORM model for the doctors table.
type DoctorModel struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClinicID                uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                    string    `gorm:"type:text;not null"`
	AvatarImageURL          *string   `gorm:"type:text"`
	AvailableFromWeekDay    string    `gorm:"type:text;not null"`
	AvailableToWeekDay      string    `gorm:"type:text;not null"`
	AvailableFromTime       string    `gorm:"type:text;not null"`
	AvailableToTime         string    `gorm:"type:text;not null"`
	AppointmentPriceInCents int       `gorm:"not null"`
	Specialty               string    `gorm:"type:text;not null"`
	CreatedAt               time.Time `gorm:"not null"`
	UpdatedAt               time.Time `gorm:"not null"`

	Clinic       *ClinicModel       `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE"`
	Appointments []AppointmentModel `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (DoctorModel) TableName() string {
	return "doctors"
}

// PatientModel is the GORM model for the patients table.
type PatientModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClinicID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:text;not null"`
	Email       string    `gorm:"type:text;not null;uniqueIndex"`
	PhoneNumber string    `gorm:"type:text;not null"`
	Sex         string    `gorm:"type:text;not null;check:chk_patients_sex,sex IN ('male','female','other')"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Clinic       *ClinicModel       `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE"`
	Appointments []AppointmentModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}

// AppointmentModel is the GORM model for the appointments table.
type AppointmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date      time.Time `gorm:"not null;index"`
	ClinicID  uuid.UUID `gorm:"type:uuid;not null;index"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Clinic  *ClinicModel  `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE"`
	Patient *PatientModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Doctor  *DoctorModel  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}

// Models lists every model in dependency order, leaves first.
func Models() []any {
	return []any{
		&UserModel{},
		&ClinicModel{},
		&MembershipModel{},
		&DoctorModel{},
		&PatientModel{},
		&AppointmentModel{},
	}
}

func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{ID: m.ID}
}

func (m *ClinicModel) ToEntity() *entity.Clinic {
	return &entity.Clinic{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m *MembershipModel) ToEntity() *entity.Membership {
	e := &entity.Membership{
		UserID:    m.UserID,
		ClinicID:  m.ClinicID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.User != nil {
		e.User = m.User.ToEntity()
	}
	if m.Clinic != nil {
		e.Clinic = m.Clinic.ToEntity()
	}
	return e
}

func (m *DoctorModel) ToEntity() *entity.Doctor {
	e := &entity.Doctor{
		ID:                      m.ID,
		ClinicID:                m.ClinicID,
		Name:                    m.Name,
		AvatarImageURL:          m.AvatarImageURL,
		AvailableFromWeekDay:    m.AvailableFromWeekDay,
		AvailableToWeekDay:      m.AvailableToWeekDay,
		AvailableFromTime:       m.AvailableFromTime,
		AvailableToTime:         m.AvailableToTime,
		AppointmentPriceInCents: m.AppointmentPriceInCents,
		Specialty:               m.Specialty,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
	if m.Clinic != nil {
		e.Clinic = m.Clinic.ToEntity()
	}
	return e
}

func (m *PatientModel) ToEntity() *entity.Patient {
	e := &entity.Patient{
		ID:          m.ID,
		ClinicID:    m.ClinicID,
		Name:        m.Name,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Sex:         entity.Sex(m.Sex),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Clinic != nil {
		e.Clinic = m.Clinic.ToEntity()
	}
	return e
}

func (m *AppointmentModel) ToEntity() *entity.Appointment {
	e := &entity.Appointment{
		ID:        m.ID,
		Date:      m.Date,
		ClinicID:  m.ClinicID,
		PatientID: m.PatientID,
		DoctorID:  m.DoctorID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Clinic != nil {
		e.Clinic = m.Clinic.ToEntity()
	}
	if m.Patient != nil {
		e.Patient = m.Patient.ToEntity()
	}
	if m.Doctor != nil {
		e.Doctor = m.Doctor.ToEntity()
	}
	return e
}

func clinicModelFromEntity(c *entity.Clinic) *ClinicModel {
	return &ClinicModel{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func membershipModelFromEntity(m *entity.Membership) *MembershipModel {
	return &MembershipModel{UserID: m.UserID, ClinicID: m.ClinicID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func doctorModelFromEntity(d *entity.Doctor) *DoctorModel {
	return &DoctorModel{
		ID:                      d.ID,
		ClinicID:                d.ClinicID,
		Name:                    d.Name,
		AvatarImageURL:          d.AvatarImageURL,
		AvailableFromWeekDay:    d.AvailableFromWeekDay,
		AvailableToWeekDay:      d.AvailableToWeekDay,
		AvailableFromTime:       d.AvailableFromTime,
		AvailableToTime:         d.AvailableToTime,
		AppointmentPriceInCents: d.AppointmentPriceInCents,
		Specialty:               d.Specialty,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
	}
}

func patientModelFromEntity(p *entity.Patient) *PatientModel {
	return &PatientModel{
		ID:          p.ID,
		ClinicID:    p.ClinicID,
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Sex:         string(p.Sex),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func appointmentModelFromEntity(a *entity.Appointment) *AppointmentModel {
	return &AppointmentModel{
		ID:        a.ID,
		Date:      a.Date,
		ClinicID:  a.ClinicID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
