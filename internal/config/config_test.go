package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/ana")
	for _, k := range []string{
		"CHAPTERHUB_DB", "CHAPTERHUB_USER", "CHAPTERHUB_TZ", "CHAPTERHUB_SIX_WEEK_GRID",
		"CHAPTERHUB_DEMO_TASKS", "CHAPTERHUB_RECURRENCE_HORIZON_DAYS", "CHAPTERHUB_LOG_USE_CASES",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/home/ana/.chapterhub/chapterhub.db", cfg.DBPath)
	assert.Equal(t, "user-1", cfg.UserID)
	assert.Equal(t, time.Local, cfg.Location)
	assert.False(t, cfg.SixWeekGrid)
	assert.Equal(t, 3, cfg.DemoTasks)
	assert.Equal(t, 90*24*time.Hour, cfg.RecurrenceHorizon)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CHAPTERHUB_DB", "/tmp/hub.db")
	t.Setenv("CHAPTERHUB_USER", "ben")
	t.Setenv("CHAPTERHUB_TZ", "Europe/Berlin")
	t.Setenv("CHAPTERHUB_SIX_WEEK_GRID", "true")
	t.Setenv("CHAPTERHUB_DEMO_TASKS", "0")
	t.Setenv("CHAPTERHUB_RECURRENCE_HORIZON_DAYS", "30")
	t.Setenv("CHAPTERHUB_LOG_USE_CASES", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/hub.db", cfg.DBPath)
	assert.Equal(t, "ben", cfg.UserID)
	assert.Equal(t, "Europe/Berlin", cfg.Location.String())
	assert.True(t, cfg.SixWeekGrid)
	assert.Equal(t, 0, cfg.DemoTasks)
	assert.Equal(t, 30*24*time.Hour, cfg.RecurrenceHorizon)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CHAPTERHUB_DB", "/tmp/hub.db")
	t.Setenv("CHAPTERHUB_TZ", "Mars/Olympus")
	t.Setenv("CHAPTERHUB_SIX_WEEK_GRID", "maybe")
	t.Setenv("CHAPTERHUB_DEMO_TASKS", "-4")
	t.Setenv("CHAPTERHUB_RECURRENCE_HORIZON_DAYS", "zero")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Local, cfg.Location)
	assert.False(t, cfg.SixWeekGrid)
	assert.Equal(t, 3, cfg.DemoTasks)
	assert.Equal(t, 90*24*time.Hour, cfg.RecurrenceHorizon)
}
