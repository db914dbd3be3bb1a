// Package config loads the optional Restless configuration file and
// provides defaults for everything it omits.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Request  RequestConfig  `mapstructure:"request"`
	Terminal TerminalConfig `mapstructure:"terminal"`
	Tabs     TabsConfig     `mapstructure:"tabs"`
	Log      LogConfig      `mapstructure:"log"`
}

// RequestConfig bounds outbound HTTP calls.
type RequestConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TerminalConfig holds the minimum usable terminal geometry.
type TerminalConfig struct {
	MinWidth  int `mapstructure:"min_width"`
	MinHeight int `mapstructure:"min_height"`
}

// TabsConfig controls how fresh tabs are seeded.
type TabsConfig struct {
	DefaultURL string `mapstructure:"default_url"`
}

// LogConfig controls file logging. The TUI owns stdout, so logs always
// go to a file.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Request.TimeoutSeconds) * time.Second
}

// Dir returns the Restless configuration directory (~/.restless).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".restless"), nil
}

// Load reads configuration from the given file, or from
// ~/.restless/config.yaml when path is empty. A missing file is not an
// error; a malformed one is. Settings can be overridden through
// RESTLESS_* environment variables (e.g. RESTLESS_REQUEST_TIMEOUT_SECONDS).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("request.timeout_seconds", 30)
	v.SetDefault("terminal.min_width", 80)
	v.SetDefault("terminal.min_height", 24)
	v.SetDefault("tabs.default_url", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("RESTLESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if dir, err := Dir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Request.TimeoutSeconds <= 0 {
		cfg.Request.TimeoutSeconds = 30
	}
	if cfg.Log.File == "" {
		if dir, err := Dir(); err == nil {
			cfg.Log.File = filepath.Join(dir, "restless.log")
		}
	}

	return &cfg, nil
}
