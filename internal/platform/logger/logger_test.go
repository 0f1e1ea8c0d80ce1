package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfigFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestNew(t *testing.T) {
	t.Run("success: json format honours level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(Config{Level: "warn", Format: "json"}, &buf)

		log.Info().Msg("dropped")
		log.Warn().Str("clinic", "c1").Msg("kept")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, "kept", entry["message"])
		assert.Equal(t, "c1", entry["clinic"])
	})

	t.Run("success: unknown level falls back to info", func(t *testing.T) {
		log := New(Config{Level: "loud", Format: "json"}, &bytes.Buffer{})
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})

	t.Run("success: console format is not json", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(Config{Level: "info"}, &buf)

		log.Info().Msg("hello")

		assert.Contains(t, buf.String(), "hello")
		assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})
}

func TestGorm_Trace(t *testing.T) {
	fc := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name      string
		level     gormlogger.LogLevel
		slow      time.Duration
		begin     time.Time
		err       error
		wantLevel string
		wantMsg   string
	}{
		{name: "success: error is logged", level: gormlogger.Warn, begin: time.Now(), err: errors.New("boom"), wantLevel: "error", wantMsg: "query failed"},
		{name: "success: record not found is not an error", level: gormlogger.Warn, begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "success: slow query warns", level: gormlogger.Warn, slow: time.Millisecond, begin: time.Now().Add(-time.Second), wantLevel: "warn", wantMsg: "slow query"},
		{name: "success: info level traces every query", level: gormlogger.Info, begin: time.Now(), wantLevel: "debug", wantMsg: "query"},
		{name: "success: silent logs nothing", level: gormlogger.Silent, begin: time.Now(), err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := zerolog.New(&buf).Level(zerolog.DebugLevel)
			g := NewGorm(base, tt.level, tt.slow)

			g.Trace(context.Background(), tt.begin, fc, tt.err)

			if tt.wantMsg == "" {
				assert.Empty(t, buf.String())
				return
			}
			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantMsg, entry["message"])
			assert.Equal(t, "SELECT 1", entry["sql"])
			assert.Equal(t, "gorm", entry["component"])
		})
	}
}

func TestGorm_LogMode(t *testing.T) {
	var buf bytes.Buffer
	g := NewGorm(zerolog.New(&buf), gormlogger.Silent, 0)

	loud := g.LogMode(gormlogger.Info)
	loud.Info(context.Background(), "migrated %d tables", 6)
	g.Info(context.Background(), "ignored")

	assert.Contains(t, buf.String(), "migrated 6 tables")
	assert.NotContains(t, buf.String(), "ignored")
}
