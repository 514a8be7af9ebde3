// Package config provides configuration file support for tomato.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/balkashynov/tomato/internal/parser"
	"github.com/balkashynov/tomato/internal/pomodoro"
)

const (
	appName      = "tomato"
	fileName     = "config.yaml"
	defaultLevel = "info"
)

// Config represents the tomato configuration file
type Config struct {
	Focus                string `yaml:"focus"`
	ShortBreak           string `yaml:"short_break"`
	LongBreak            string `yaml:"long_break"`
	Tick                 string `yaml:"tick"`
	SessionsPerLongBreak int    `yaml:"sessions_per_long_break"`

	// KeepAwake prevents system sleep while a cycle is in progress
	KeepAwake bool `yaml:"keep_awake"`

	Notifications NotificationsConfig `yaml:"notifications"`
	History       HistoryConfig       `yaml:"history"`
	Log           LogConfig           `yaml:"log"`
}

// NotificationsConfig selects the completion notifiers
type NotificationsConfig struct {
	Desktop bool `yaml:"desktop"`
	Bell    bool `yaml:"bell"`
}

// HistoryConfig configures the completion history database
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // empty means ~/.tomato/history.db
}

// LogConfig configures logging behavior
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty means ~/.tomato/tomato.log
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Focus:                "25m",
		ShortBreak:           "5m",
		LongBreak:            "15m",
		Tick:                 "1s",
		SessionsPerLongBreak: 4,
		KeepAwake:            true,
		Notifications: NotificationsConfig{
			Desktop: true,
			Bell:    true,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: defaultLevel,
		},
	}
}

// Path returns the config file location under the user config directory
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

// Load reads the config file at path. Missing files yield the defaults and
// missing keys keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the config file to path
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// ClockConfig converts the file values into a validated clock configuration
func (c *Config) ClockConfig() (pomodoro.Config, error) {
	var out pomodoro.Config

	focus, err := parser.ParseDuration(c.Focus)
	if err != nil {
		return out, fmt.Errorf("focus: %w", err)
	}
	shortBreak, err := parser.ParseDuration(c.ShortBreak)
	if err != nil {
		return out, fmt.Errorf("short_break: %w", err)
	}
	longBreak, err := parser.ParseDuration(c.LongBreak)
	if err != nil {
		return out, fmt.Errorf("long_break: %w", err)
	}
	tick := pomodoro.DefaultConfig().Tick
	if c.Tick != "" {
		tick, err = parser.ParseDuration(c.Tick)
		if err != nil {
			return out, fmt.Errorf("tick: %w", err)
		}
	}

	out = pomodoro.Config{
		Focus:                focus,
		ShortBreak:           shortBreak,
		LongBreak:            longBreak,
		Tick:                 tick,
		SessionsPerLongBreak: c.SessionsPerLongBreak,
	}
	if err := out.Validate(); err != nil {
		return pomodoro.Config{}, err
	}
	return out, nil
}
