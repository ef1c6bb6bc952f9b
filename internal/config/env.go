package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AppConfig holds process settings read from the environment.
type AppConfig struct {
	SettingsPath string
	Debounce     time.Duration
	LogLevel     string
	EventBuffer  int
}

// FromEnv reads ANNOTATION_REVIEW_* variables, falling back to defaults.
func FromEnv() AppConfig {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	defaultPath := filepath.Join(homeDir, ".annotation-review", "settings.json")

	return AppConfig{
		SettingsPath: getenv("ANNOTATION_REVIEW_SETTINGS_PATH", defaultPath),
		Debounce:     time.Duration(getenvInt("ANNOTATION_REVIEW_DEBOUNCE_MS", 300)) * time.Millisecond,
		LogLevel:     getenv("ANNOTATION_REVIEW_LOG_LEVEL", "info"),
		EventBuffer:  getenvInt("ANNOTATION_REVIEW_EVENT_BUFFER", 500),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
