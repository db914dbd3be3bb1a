package tui

import (
	"testing"

	"restless/internal/config"
)

// CreateTestModel creates a Model instance for testing with default
// configuration and one tab.
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	cfg := &config.Config{
		Request:  config.RequestConfig{TimeoutSeconds: 5},
		Terminal: config.TerminalConfig{MinWidth: 80, MinHeight: 24},
	}

	m := New(cfg)
	m.width = 100
	m.height = 40
	m.resizeViews()
	return m
}

// AssertModelField verifies a single model field against an expected value
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
