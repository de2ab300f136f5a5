package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendados/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "America/Lima", cfg.Schedule.Timezone)
	assert.Equal(t, 30, cfg.Schedule.DaysAhead)
	assert.Equal(t, "09:00", cfg.Schedule.OpenTime)
	assert.Equal(t, "20:00", cfg.Schedule.CloseTime)
	assert.Equal(t, "noop", cfg.Notify.Provider)
	assert.Equal(t, time.Hour, cfg.S3.PresignExpiry)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AGENDADOS_DB_HOST", "db.internal")
	t.Setenv("AGENDADOS_REMINDER_CONCURRENCY", "9")
	t.Setenv("AGENDADOS_CORS_ALLOWED_ORIGINS", "https://a.pe, https://b.pe,")
	t.Setenv("AGENDADOS_SCHEDULE_CLOSE_TIME", "19:30")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 9, cfg.Reminder.Concurrency)
	assert.Equal(t, []string{"https://a.pe", "https://b.pe"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "19:30", cfg.Schedule.CloseTime)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)

	t.Setenv("AGENDADOS_SERVER_PORT", ":7070")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestLoad_NegativeDaysAhead(t *testing.T) {
	t.Setenv("AGENDADOS_SCHEDULE_DAYS_AHEAD", "-1")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := config.DBConfig{Host: "h", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", cfg.DSN())
}
