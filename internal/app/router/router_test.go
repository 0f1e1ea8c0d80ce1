package router

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"clinic_backend/internal/platform/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	probe := prometheus.NewCounter(prometheus.CounterOpts{Name: "clinic_probe_total", Help: "probe"})
	reg.MustRegister(probe)
	probe.Inc()

	var logs bytes.Buffer
	checks := map[string]handler.Check{
		"database": func(ctx context.Context) error { return errors.New("db down") },
	}
	r := NewRouter(zerolog.New(&logs), reg, checks)

	tests := []struct {
		name         string
		path         string
		expectedCode int
		contains     string
	}{
		{name: "healthz", path: "/healthz", expectedCode: http.StatusOK, contains: `"ok"`},
		{name: "readyz reports failed check", path: "/readyz", expectedCode: http.StatusServiceUnavailable, contains: "db down"},
		{name: "metrics exposes registry", path: "/metrics", expectedCode: http.StatusOK, contains: "clinic_probe_total 1"},
		{name: "unknown route", path: "/clinics", expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}

	assert.Contains(t, logs.String(), `"level":"error"`, "503 should be logged at error level")
	assert.Contains(t, logs.String(), `"path":"/clinics"`)
}
