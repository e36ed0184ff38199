package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const HistoryDBFile = "history.db"

type Config struct {
	History HistoryConfig `json:"history"`
}

// Keep == 0 means the history table is never pruned.
type HistoryConfig struct {
	Enabled bool   `json:"enabled"`
	DBPath  string `json:"dbPath,omitempty"`
	Keep    int    `json:"keep,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Enabled: false,
			Keep:    0,
		},
	}
}

func ConfigDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".primefactor")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

func (c *Config) HistoryDBPath() string {
	if c.History.DBPath != "" {
		return c.History.DBPath
	}
	return filepath.Join(ConfigDir(), HistoryDBFile)
}

func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if enabled := os.Getenv("PRIMEFACTOR_HISTORY_ENABLED"); enabled != "" {
		if parsed, err := strconv.ParseBool(enabled); err == nil {
			cfg.History.Enabled = parsed
		}
	}
	if dbPath := os.Getenv("PRIMEFACTOR_HISTORY_DB_PATH"); dbPath != "" {
		cfg.History.DBPath = dbPath
	}
	if keep := os.Getenv("PRIMEFACTOR_HISTORY_KEEP"); keep != "" {
		if parsed, err := strconv.Atoi(keep); err == nil {
			cfg.History.Keep = parsed
		}
	}

	if cfg.History.Keep < 0 {
		cfg.History.Keep = 0
	}

	return cfg, nil
}
