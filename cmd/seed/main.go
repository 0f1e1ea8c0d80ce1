// Command seed creates one demo tenant: an owner, a clinic, a doctor, a patient and an appointment.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"clinic_backend/internal/app/di"
	"clinic_backend/internal/feature/scheduling/adapters"
	"clinic_backend/internal/feature/scheduling/domain/entity"
	"clinic_backend/internal/feature/scheduling/usecase"
	"clinic_backend/internal/platform/db"
	"clinic_backend/internal/platform/logger"
	platformredis "clinic_backend/internal/platform/redis"
)

func main() {
	_ = godotenv.Load()

	logCfg, err := logger.LoadConfigFromEnv()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid logger config")
	}
	log := logger.New(logCfg, os.Stdout)

	dbCfg, err := db.LoadConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid database config")
	}
	redisCfg, err := platformredis.LoadConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid redis config")
	}

	gdb, err := db.Open(dbCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := db.Migrate(gdb, adapters.Models()...); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	rdb, err := platformredis.NewRedisClient(ctx, redisCfg, log)
	if err != nil {
		log.Warn().Msg("redis unavailable, running without cache")
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	uc, repos := di.NewScheduler(adapters.NewStore(gdb), rdb, redisCfg.CacheTTL)

	if err := run(ctx, repos, uc, log); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed ok")
}

func run(ctx context.Context, repos usecase.Repositories, uc usecase.Scheduler, log zerolog.Logger) error {
	owner := &entity.User{}
	if err := repos.Users.Create(ctx, owner); err != nil {
		return fmt.Errorf("create owner: %w", err)
	}

	clinic := &entity.Clinic{Name: "Demo Clinic"}
	if err := uc.OpenClinic(ctx, owner.ID, clinic); err != nil {
		return fmt.Errorf("open clinic: %w", err)
	}

	doctor := &entity.Doctor{
		ClinicID:                clinic.ID,
		Name:                    "Dr. Ana Souza",
		AvailableFromWeekDay:    "1",
		AvailableToWeekDay:      "5",
		AvailableFromTime:       "08:00:00",
		AvailableToTime:         "18:00:00",
		AppointmentPriceInCents: 15000,
		Specialty:               "Cardiology",
	}
	if err := repos.Doctors.Create(ctx, doctor); err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}

	patient := &entity.Patient{
		ClinicID:    clinic.ID,
		Name:        "Maria Silva",
		Email:       fmt.Sprintf("patient-%s@example.com", owner.ID.String()[:8]),
		PhoneNumber: "+55 11 99999-0000",
		Sex:         entity.SexFemale,
	}
	if err := repos.Patients.Create(ctx, patient); err != nil {
		return fmt.Errorf("create patient: %w", err)
	}

	appointment := &entity.Appointment{
		Date:      time.Now().Add(24 * time.Hour).Truncate(time.Hour),
		ClinicID:  clinic.ID,
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
	}
	if err := uc.BookAppointment(ctx, appointment); err != nil {
		return fmt.Errorf("book appointment: %w", err)
	}

	if err := uc.Authorize(ctx, owner.ID, clinic.ID); err != nil {
		return fmt.Errorf("authorize owner: %w", err)
	}
	// Warms the clinic cache.
	if _, err := repos.Clinics.FindByID(ctx, clinic.ID); err != nil {
		return fmt.Errorf("load clinic: %w", err)
	}

	log.Info().
		Str("user_id", owner.ID.String()).
		Str("clinic_id", clinic.ID.String()).
		Str("doctor_id", doctor.ID.String()).
		Str("patient_id", patient.ID.String()).
		Str("appointment_id", appointment.ID.String()).
		Msg("demo tenant created")
	return nil
}
