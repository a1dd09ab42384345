package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Generator GeneratorConfig `toml:"generator"`
	Tickets   TicketsConfig   `toml:"tickets"`
	Update    UpdateConfig    `toml:"update"`
}

// GeneratorConfig holds file-level defaults for the generation flags
type GeneratorConfig struct {
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	MaxLength   int     `toml:"max_length"`
	MaxCommits  int     `toml:"max_commits"`
	// Base branch to compare against; empty means auto-detect main/master
	Base string `toml:"base"`
}

type TicketsConfig struct {
	// Prefixes whitelists ticket prefixes accepted from branch names
	Prefixes []string `toml:"prefixes"`
}

type UpdateConfig struct {
	Enabled        bool      `toml:"enabled"`
	LastCheck      time.Time `toml:"last_check"`
	SkippedVersion string    `toml:"skipped_version"`
	Repo           string    `toml:"repo"`
}

// defaultTicketPrefixes are the prefixes accepted when the config lists none
var defaultTicketPrefixes = []string{"CRU-", "JIRA-", "TASK-", "BUG-", "FEATURE-", "FIX-"}

func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Model:       "tiny-llama",
			Temperature: 0.7,
			MaxLength:   50,
			MaxCommits:  20,
		},
		Tickets: TicketsConfig{
			Prefixes: defaultTicketPrefixes,
		},
		Update: UpdateConfig{
			Enabled: true,
			Repo:    "wahlandcase/attuned.prtitle",
		},
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "prtitle.toml"), nil
}

func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// TicketPrefixes returns the configured whitelist, falling back to the defaults
func (c *Config) TicketPrefixes() []string {
	if len(c.Tickets.Prefixes) == 0 {
		return defaultTicketPrefixes
	}
	return c.Tickets.Prefixes
}

// ShouldCheckForUpdate returns true if update check is enabled and 24h since last check
func (c *Config) ShouldCheckForUpdate() bool {
	if !c.Update.Enabled {
		return false
	}
	return time.Since(c.Update.LastCheck) > 24*time.Hour
}

// RecordUpdateCheck updates the last check time
func (c *Config) RecordUpdateCheck() {
	c.Update.LastCheck = time.Now()
}
