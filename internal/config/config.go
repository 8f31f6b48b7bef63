// ABOUTME: Workout tracker configuration management.
// ABOUTME: Loads a JSON file, applies environment overrides and resolves the database path.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"

	"github.com/harperreed/workouts/internal/storage"
)

// DBFileName is the database file inside the data directory.
const DBFileName = "database.db"

// Config stores workout tracker configuration.
type Config struct {
	// DataDir is the directory holding database.db.
	// Supports ~ expansion. Defaults to ~/.workout_track.
	DataDir string `json:"data_dir,omitempty" env:"WORKOUTS_DATA_DIR"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty" env:"WORKOUTS_LOG_LEVEL"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the store's own data directory.
func (c *Config) GetDataDir() (string, error) {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBPath returns the path of the database file.
func (c *Config) GetDBPath() (string, error) {
	dir, err := c.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DBFileName), nil
}

// GetLogLevel parses LogLevel, defaulting to warn.
func (c *Config) GetLogLevel() (log.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "":
		return log.WarnLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.WarnLevel, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
}

// OpenProvider returns a lazily opened database provider for the configured path.
func (c *Config) OpenProvider(logger *log.Logger) (*storage.Provider, error) {
	dbPath, err := c.GetDBPath()
	if err != nil {
		return nil, err
	}
	return storage.NewProvider(dbPath, storage.WithLogger(logger)), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return expanded, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := homedir.Dir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "workouts", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(GetConfigPath())
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
