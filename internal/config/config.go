// Package config provides configuration management for yojanasathi.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

const (
	// DefaultPort is the HTTP listen port.
	DefaultPort = 9340
	// DefaultLanguage is the UI language for new sessions.
	DefaultLanguage = "en"
	// DefaultReplyDelayMinMs and DefaultReplyDelayMaxMs bound the simulated
	// assistant thinking delay.
	DefaultReplyDelayMinMs = 800
	DefaultReplyDelayMaxMs = 1200
)

// Config holds runtime settings. Loaded once from the settings file with
// environment overrides applied on top.
type Config struct {
	Port            int    `json:"port"`
	DefaultLanguage string `json:"default_language"`
	ReplyDelayMinMs int    `json:"reply_delay_min_ms"`
	ReplyDelayMaxMs int    `json:"reply_delay_max_ms"`
	CatalogPath     string `json:"catalog_path,omitempty"`
	LogLevel        string `json:"log_level"`
}

// ReplyDelayBounds returns the delay bounds as durations.
func (c *Config) ReplyDelayBounds() (min, max time.Duration) {
	return time.Duration(c.ReplyDelayMinMs) * time.Millisecond,
		time.Duration(c.ReplyDelayMaxMs) * time.Millisecond
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Port:            DefaultPort,
		DefaultLanguage: DefaultLanguage,
		ReplyDelayMinMs: DefaultReplyDelayMinMs,
		ReplyDelayMaxMs: DefaultReplyDelayMaxMs,
		LogLevel:        "info",
	}
}

// DataDir returns the yojanasathi data directory under the user's home.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".yojanasathi"
	}
	return filepath.Join(home, ".yojanasathi")
}

// SettingsPath returns the settings file path.
func SettingsPath() string {
	return filepath.Join(DataDir(), "settings.json")
}

// EnsureDataDir creates the data directory if missing.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0o755)
}

// EnsureSettings writes a default settings file if none exists.
func EnsureSettings() error {
	path := SettingsPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	data, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// EnsureAll creates the data directory and settings file.
func EnsureAll() error {
	if err := EnsureDataDir(); err != nil {
		return err
	}
	return EnsureSettings()
}

// Load reads the settings file and applies environment overrides. Missing
// or partial files fall back to defaults field by field.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(SettingsPath())
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		fillDefaults(cfg)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.Port == 0 {
		cfg.Port = def.Port
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = def.DefaultLanguage
	}
	if cfg.ReplyDelayMinMs == 0 {
		cfg.ReplyDelayMinMs = def.ReplyDelayMinMs
	}
	if cfg.ReplyDelayMaxMs == 0 {
		cfg.ReplyDelayMaxMs = def.ReplyDelayMaxMs
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("YOJANASATHI_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("YOJANASATHI_LANGUAGE"); v != "" {
		cfg.DefaultLanguage = v
	}
	if v := os.Getenv("YOJANASATHI_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("YOJANASATHI_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

var (
	global     *Config
	globalOnce sync.Once
)

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	globalOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		global = cfg
	})
	return global
}
