// Package config loads the wayfare configuration: defaults, then an
// optional YAML file, then environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	DBPath            string  `yaml:"db_path"`
	MaxActivities     int     `yaml:"max_activities"`
	TrashSize         int     `yaml:"trash_size"`
	SnapshotHistory   int     `yaml:"snapshot_history"`
	SnapshotRetention int     `yaml:"snapshot_retention"` // persisted snapshots kept in SQLite
	HighCostThreshold float64 `yaml:"high_cost_threshold"`
	Debug             bool    `yaml:"debug"`
}

func defaultConfig() *Config {
	return &Config{
		MaxActivities:     1000,
		TrashSize:         10,
		SnapshotHistory:   10,
		SnapshotRetention: 20,
		HighCostThreshold: 500,
	}
}

// Load reads the configuration from path, falling back to defaults when the
// file is absent, then applies environment overrides. An empty path uses
// ~/.wayfare/config.yaml.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".wayfare", "config.yaml")
		}
	}

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".wayfare", "wayfare.db")
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("WAYFARE_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("WAYFARE_MAX_ACTIVITIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxActivities = n
		}
	}
	if v := os.Getenv("WAYFARE_TRASH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TrashSize = n
		}
	}
	if v := os.Getenv("WAYFARE_SNAPSHOT_HISTORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.SnapshotHistory = n
		}
	}
	if v := os.Getenv("WAYFARE_SNAPSHOT_RETENTION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.SnapshotRetention = n
		}
	}
	if v := os.Getenv("WAYFARE_HIGH_COST"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			c.HighCostThreshold = f
		}
	}
	if v := os.Getenv("WAYFARE_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}
