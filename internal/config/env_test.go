package config

import (
	"testing"
	"time"
)

// TestFromEnvDefaults checks fallbacks when nothing is set.
func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("ANNOTATION_REVIEW_SETTINGS_PATH", "")
	t.Setenv("ANNOTATION_REVIEW_DEBOUNCE_MS", "")
	t.Setenv("ANNOTATION_REVIEW_LOG_LEVEL", "")
	t.Setenv("ANNOTATION_REVIEW_EVENT_BUFFER", "")

	cfg := FromEnv()
	if cfg.SettingsPath == "" {
		t.Fatal("expected non-empty settings path")
	}
	if cfg.Debounce != 300*time.Millisecond {
		t.Fatalf("debounce = %v, want 300ms", cfg.Debounce)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q, want info", cfg.LogLevel)
	}
	if cfg.EventBuffer != 500 {
		t.Fatalf("event buffer = %d, want 500", cfg.EventBuffer)
	}
}

// TestFromEnvOverrides checks explicit values and invalid integers.
func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ANNOTATION_REVIEW_SETTINGS_PATH", "/tmp/review/settings.yaml")
	t.Setenv("ANNOTATION_REVIEW_DEBOUNCE_MS", "50")
	t.Setenv("ANNOTATION_REVIEW_LOG_LEVEL", "debug")
	t.Setenv("ANNOTATION_REVIEW_EVENT_BUFFER", "lots")

	cfg := FromEnv()
	if cfg.SettingsPath != "/tmp/review/settings.yaml" {
		t.Fatalf("settings path = %q", cfg.SettingsPath)
	}
	if cfg.Debounce != 50*time.Millisecond {
		t.Fatalf("debounce = %v, want 50ms", cfg.Debounce)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.LogLevel)
	}
	if cfg.EventBuffer != 500 {
		t.Fatalf("event buffer = %d, want fallback 500", cfg.EventBuffer)
	}
}
