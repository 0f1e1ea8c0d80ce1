package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func serveReadiness(t *testing.T, checks map[string]Check) (*httptest.ResponseRecorder, readinessResponse) {
	t.Helper()

	r := gin.New()
	r.GET("/readyz", Readiness(checks))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var body readinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name           string
		checks         map[string]Check
		expectedCode   int
		expectedStatus string
		expectedChecks map[string]string
	}{
		{
			name:           "success: no checks",
			checks:         map[string]Check{},
			expectedCode:   http.StatusOK,
			expectedStatus: "ok",
			expectedChecks: map[string]string{},
		},
		{
			name:           "success: all checks pass",
			checks:         map[string]Check{"database": ok, "redis": ok},
			expectedCode:   http.StatusOK,
			expectedStatus: "ok",
			expectedChecks: map[string]string{"database": "ok", "redis": "ok"},
		},
		{
			name:           "failure: one dependency down",
			checks:         map[string]Check{"database": ok, "redis": down},
			expectedCode:   http.StatusServiceUnavailable,
			expectedStatus: "unavailable",
			expectedChecks: map[string]string{"database": "ok", "redis": "connection refused"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, body := serveReadiness(t, tt.checks)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.Equal(t, tt.expectedChecks, body.Checks)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}

func TestDatabaseCheck(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	check := DatabaseCheck(db)
	require.NoError(t, check(context.Background()))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.Error(t, check(context.Background()))
}

func TestRedisCheck(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectPing().SetVal("PONG")
	mock.ExpectPing().SetErr(errors.New("redis down"))

	check := RedisCheck(rdb)

	assert.NoError(t, check(context.Background()))
	assert.EqualError(t, check(context.Background()), "redis down")
	assert.NoError(t, mock.ExpectationsWereMet())
}
