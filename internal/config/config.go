// Package config loads the easwatch configuration from the usual
// hierarchy: environment variables over a local config file over the
// global ~/.easwatch/config.json over built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gbertoni/easwatch/internal/notify"
)

// MonitorConfig holds the poll-loop settings.
type MonitorConfig struct {
	// URL is the exam page to watch
	URL string `koanf:"url" validate:"required,url"`

	// PollInterval is the delay between checks, in seconds
	PollInterval int `koanf:"poll_interval" validate:"min=5,max=86400"`

	// Timeout bounds each page fetch, in seconds
	Timeout int `koanf:"timeout" validate:"min=1,max=600"`

	// LogFile is the debug log destination; empty disables file logging
	LogFile string `koanf:"log_file"`
}

// Configuration is the full easwatch configuration.
type Configuration struct {
	Monitor       MonitorConfig      `koanf:"monitor"`
	Notifications notify.Config      `koanf:"notifications"`
	Email         notify.EmailConfig `koanf:"email"`
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".easwatch", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config %s: %w", localConfigPath, err)
			}
		}
	}

	// Environment variables win
	k.Load(env.Provider("EASWATCH_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// SMTP settings are only mandatory once the email channel is on
	if cfg.Notifications.EmailEnabled {
		if err := validateEmail(cfg.Email); err != nil {
			return nil, err
		}
	}

	cfg.Monitor.LogFile = expandHomePath(cfg.Monitor.LogFile)
	cfg.Notifications.SoundFile = expandHomePath(cfg.Notifications.SoundFile)

	return &cfg, nil
}

func validateEmail(cfg notify.EmailConfig) error {
	var missing []string
	if cfg.SMTPHost == "" {
		missing = append(missing, "email.smtp_host")
	}
	if cfg.SMTPUser == "" {
		missing = append(missing, "email.smtp_user")
	}
	if cfg.SMTPPassword == "" {
		missing = append(missing, "email.smtp_password")
	}
	if cfg.Recipient == "" {
		missing = append(missing, "email.recipient")
	}
	if len(missing) > 0 {
		return fmt.Errorf("email notifications enabled but missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: EASWATCH_MONITOR_POLL_INTERVAL -> monitor.poll_interval
// (only the first underscore separates the section).
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "EASWATCH_"))
	return strings.Replace(key, "_", ".", 1)
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
