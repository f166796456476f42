package config

import (
	"os"
	"strconv"
	"strings"
)

// Config keeps runtime settings for the tracker daemon.
type Config struct {
	DatabaseURL  string
	SeedDemoData bool
	// SummaryTime is the HH:MM wall-clock time of the daily summary job.
	// Empty disables the job.
	SummaryTime string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SeedDemoData: parseBool(os.Getenv("SEED_DEMO_DATA"), true),
		SummaryTime:  strings.TrimSpace(os.Getenv("SUMMARY_TIME")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "habit_tracker.db"
	}

	return cfg, nil
}

func parseBool(raw string, fallback bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
