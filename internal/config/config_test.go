package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Keep a developer's real ~/.restless out of the test.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Request.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d, want 30", cfg.Request.TimeoutSeconds)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", cfg.Timeout())
	}
	if cfg.Terminal.MinWidth != 80 || cfg.Terminal.MinHeight != 24 {
		t.Errorf("minimum terminal = %dx%d, want 80x24", cfg.Terminal.MinWidth, cfg.Terminal.MinHeight)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("request:\n  timeout_seconds: 5\ntabs:\n  default_url: https://api.example.com\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Request.TimeoutSeconds != 5 {
		t.Errorf("timeout = %d, want 5", cfg.Request.TimeoutSeconds)
	}
	if cfg.Tabs.DefaultURL != "https://api.example.com" {
		t.Errorf("default url = %q", cfg.Tabs.DefaultURL)
	}
	// Unset fields keep their defaults.
	if cfg.Terminal.MinWidth != 80 {
		t.Errorf("min width = %d, want default 80", cfg.Terminal.MinWidth)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(":\tnot yaml at all ["), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}

func TestLoad_NonPositiveTimeoutFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("request:\n  timeout_seconds: 0\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Request.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d, want fallback 30", cfg.Request.TimeoutSeconds)
	}
}
