// Command server serves the health, readiness and metrics endpoints of the clinic backend.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"clinic_backend/internal/app/router"
	"clinic_backend/internal/feature/scheduling/adapters"
	"clinic_backend/internal/platform/db"
	"clinic_backend/internal/platform/http/handler"
	"clinic_backend/internal/platform/logger"
	"clinic_backend/internal/platform/metrics"
	platformredis "clinic_backend/internal/platform/redis"
)

type serverConfig struct {
	Port            string        `envconfig:"HTTP_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

func loadServerConfig() (serverConfig, error) {
	var cfg serverConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return serverConfig{}, err
	}
	return cfg, nil
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	logCfg, err := logger.LoadConfigFromEnv()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid logger config")
	}
	log := logger.New(logCfg, os.Stdout)

	srvCfg, err := loadServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid server config")
	}
	dbCfg, err := db.LoadConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid database config")
	}
	redisCfg, err := platformredis.LoadConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid redis config")
	}

	// db
	gdb, err := db.Open(dbCfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", dbCfg.Driver).Msg("failed to open database")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	plugin, err := metrics.NewGormPlugin(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics plugin")
	}
	if err := gdb.Use(plugin); err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics plugin")
	}

	if dbCfg.RunMigrations {
		if err := db.Migrate(gdb, adapters.Models()...); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
		log.Info().Msg("migrations applied")
	}

	checks := map[string]handler.Check{"database": handler.DatabaseCheck(gdb)}

	// Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	rdb, err := platformredis.NewRedisClient(ctx, redisCfg, log)
	cancel()
	if err != nil {
		log.Warn().Msg("redis unavailable, running without cache")
	}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close redis client")
			}
		}()
		checks["redis"] = handler.RedisCheck(rdb)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", srvCfg.Port),
		Handler:           router.NewRouter(log, reg, checks),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), srvCfg.ShutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}
