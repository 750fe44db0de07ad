// Package config loads phonix settings from a YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings. Game preferences seed the session
// state only when no persisted value exists.
type Config struct {
	DBPath    string `yaml:"db_path"`
	WordsFile string `yaml:"words_file"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`

	DailyGoal  int     `yaml:"daily_goal"`
	VoiceSpeed float64 `yaml:"voice_speed"`
	SFXEnabled bool    `yaml:"sfx_enabled"`
	Autoplay   bool    `yaml:"autoplay"`

	RefillDelay        time.Duration `yaml:"refill_delay"`
	RecognitionTimeout time.Duration `yaml:"recognition_timeout"`
	SnapshotKeep       int           `yaml:"snapshot_keep"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:           "info",
		DailyGoal:          10,
		VoiceSpeed:         0.8,
		SFXEnabled:         true,
		Autoplay:           true,
		RefillDelay:        3 * time.Second,
		RecognitionTimeout: 8 * time.Second,
		SnapshotKeep:       5,
	}
}

// DefaultPath resolves the config file path:
// $XDG_CONFIG_HOME/phonix/config.yaml, falling back to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "phonix", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	if c.DailyGoal <= 0 {
		return fmt.Errorf("daily_goal must be > 0, got %d", c.DailyGoal)
	}
	if c.VoiceSpeed <= 0 || c.VoiceSpeed > 2 {
		return fmt.Errorf("voice_speed must be in (0, 2], got %g", c.VoiceSpeed)
	}
	if c.RefillDelay < 0 {
		return fmt.Errorf("refill_delay must be >= 0, got %s", c.RefillDelay)
	}
	if c.RecognitionTimeout <= 0 {
		return fmt.Errorf("recognition_timeout must be > 0, got %s", c.RecognitionTimeout)
	}
	if c.SnapshotKeep <= 0 {
		return fmt.Errorf("snapshot_keep must be > 0, got %d", c.SnapshotKeep)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PHONIX_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("PHONIX_WORDS"); v != "" {
		c.WordsFile = v
	}
	if v := os.Getenv("PHONIX_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PHONIX_DAILY_GOAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PHONIX_DAILY_GOAL: %w", err)
		}
		c.DailyGoal = n
	}
	return nil
}
