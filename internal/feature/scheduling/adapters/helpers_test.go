package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clinic_backend/internal/feature/scheduling/domain/entity"
	"clinic_backend/internal/platform/db"
)

// setupTestDB prepares an in-memory SQLite database with foreign keys enforced.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(db.Config{Driver: db.DriverSQLite, SQLitePath: ":memory:"}, zerolog.Nop())
	require.NoError(t, err, "failed to initialize test database")

	err = db.Migrate(gdb, Models()...)
	require.NoError(t, err, "failed to migrate tables")

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, gdb *gorm.DB) *entity.User {
	t.Helper()
	u := &entity.User{}
	require.NoError(t, NewUserPostgres(gdb).Create(context.Background(), u), "failed to seed user")
	return u
}

func seedClinic(t *testing.T, gdb *gorm.DB, name string) *entity.Clinic {
	t.Helper()
	c := &entity.Clinic{Name: name}
	require.NoError(t, NewClinicPostgres(gdb).Create(context.Background(), c), "failed to seed clinic")
	return c
}

func newDoctor(clinic *entity.Clinic, name string) *entity.Doctor {
	return &entity.Doctor{
		ClinicID:                clinic.ID,
		Name:                    name,
		AvailableFromWeekDay:    "1",
		AvailableToWeekDay:      "5",
		AvailableFromTime:       "08:00:00",
		AvailableToTime:         "18:00:00",
		AppointmentPriceInCents: 15000,
		Specialty:               "Cardiology",
	}
}

func seedDoctor(t *testing.T, gdb *gorm.DB, clinic *entity.Clinic, name string) *entity.Doctor {
	t.Helper()
	d := newDoctor(clinic, name)
	require.NoError(t, NewDoctorPostgres(gdb).Create(context.Background(), d), "failed to seed doctor")
	return d
}

func newPatient(clinic *entity.Clinic, name, email string) *entity.Patient {
	return &entity.Patient{
		ClinicID:    clinic.ID,
		Name:        name,
		Email:       email,
		PhoneNumber: "11999990000",
		Sex:         entity.SexFemale,
	}
}

func seedPatient(t *testing.T, gdb *gorm.DB, clinic *entity.Clinic, name, email string) *entity.Patient {
	t.Helper()
	p := newPatient(clinic, name, email)
	require.NoError(t, NewPatientPostgres(gdb).Create(context.Background(), p), "failed to seed patient")
	return p
}

func seedAppointment(t *testing.T, gdb *gorm.DB, clinic *entity.Clinic, doctor *entity.Doctor, patient *entity.Patient, date time.Time) *entity.Appointment {
	t.Helper()
	a := &entity.Appointment{
		Date:      date,
		ClinicID:  clinic.ID,
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
	}
	require.NoError(t, NewAppointmentPostgres(gdb).Create(context.Background(), a), "failed to seed appointment")
	return a
}

func countRows(t *testing.T, gdb *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
