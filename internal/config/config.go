package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds runtime settings for the chapterhub CLI.
type Config struct {
	DBPath            string
	UserID            string
	Location          *time.Location
	SixWeekGrid       bool
	DemoTasks         int
	RecurrenceHorizon time.Duration
	LogUseCases       bool
}

// Default returns the settings used when no environment overrides are set.
// DBPath is left empty; Load fills it in from the home directory.
func Default() Config {
	return Config{
		UserID:            "user-1",
		Location:          time.Local,
		SixWeekGrid:       false,
		DemoTasks:         3,
		RecurrenceHorizon: 90 * 24 * time.Hour,
		LogUseCases:       false,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or invalid values. It only fails when no database path
// is configured and the home directory cannot be found.
func Load() (Config, error) {
	cfg := Default()

	if v := os.Getenv("CHAPTERHUB_DB"); v != "" {
		cfg.DBPath = v
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".chapterhub", "chapterhub.db")
	}
	if v := os.Getenv("CHAPTERHUB_USER"); v != "" {
		cfg.UserID = v
	}
	if v := os.Getenv("CHAPTERHUB_TZ"); v != "" {
		if loc, err := time.LoadLocation(v); err == nil {
			cfg.Location = loc
		}
	}
	if v := os.Getenv("CHAPTERHUB_SIX_WEEK_GRID"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SixWeekGrid = b
		}
	}
	if v := os.Getenv("CHAPTERHUB_DEMO_TASKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.DemoTasks = n
		}
	}
	if v := os.Getenv("CHAPTERHUB_RECURRENCE_HORIZON_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RecurrenceHorizon = time.Duration(n) * 24 * time.Hour
		}
	}
	if v := os.Getenv("CHAPTERHUB_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}

	return cfg, nil
}
