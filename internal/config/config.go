package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Moxfield deck API configuration
	Moxfield MoxfieldConfig `toml:"moxfield"`

	// Commander Spellbook combo API configuration
	Spellbook SpellbookConfig `toml:"spellbook"`

	// CMC scoring configuration
	Scoring ScoringConfig `toml:"scoring"`

	// Curated list file configuration
	Lists ListsConfig `toml:"lists"`

	// API server configuration
	Server ServerConfig `toml:"server"`

	// Logging configuration
	Log LogConfig `toml:"log"`
}

// MoxfieldConfig contains deck fetching settings.
type MoxfieldConfig struct {
	BaseURL string `toml:"base_url"` // Deck API base URL
	Timeout string `toml:"timeout"`  // Request timeout (e.g., "30s")
}

// SpellbookConfig contains combo lookup settings.
type SpellbookConfig struct {
	URL       string `toml:"url"`        // find-my-combos endpoint
	Timeout   string `toml:"timeout"`    // Request timeout (e.g., "20s")
	CSRFToken string `toml:"csrf_token"` // Empty = $COMMANDERSPELLBOOK_CSRF or built-in default
}

// ScoringConfig contains CMC point bounds.
type ScoringConfig struct {
	MinPoints int `toml:"min_points"` // Lowest legal point total (inclusive)
	MaxPoints int `toml:"max_points"` // Highest legal point total (inclusive)
}

// ListsConfig contains curated list file paths.
type ListsConfig struct {
	Reserved     string `toml:"reserved"`      // Reserved List file
	GameChangers string `toml:"game_changers"` // Game Changers file
}

// ServerConfig contains API server settings.
type ServerConfig struct {
	Port int `toml:"port"` // Listen port
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json or console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Moxfield: MoxfieldConfig{
			BaseURL: "https://api2.moxfield.com/v2/decks/all",
			Timeout: "30s",
		},
		Spellbook: SpellbookConfig{
			URL:       "https://backend.commanderspellbook.com/find-my-combos",
			Timeout:   "20s",
			CSRFToken: "",
		},
		Scoring: ScoringConfig{
			MinPoints: 40,
			MaxPoints: 100,
		},
		Lists: ListsConfig{
			Reserved:     "reserved_list.txt",
			GameChangers: "game_changers.txt",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".deckwarden")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	return LoadFile(path)
}

// LoadFile loads the configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Moxfield.BaseURL == "" {
		return fmt.Errorf("moxfield base URL cannot be empty")
	}

	if _, err := time.ParseDuration(c.Moxfield.Timeout); err != nil {
		return fmt.Errorf("invalid moxfield timeout %q: %w", c.Moxfield.Timeout, err)
	}

	if c.Spellbook.URL == "" {
		return fmt.Errorf("spellbook URL cannot be empty")
	}

	if _, err := time.ParseDuration(c.Spellbook.Timeout); err != nil {
		return fmt.Errorf("invalid spellbook timeout %q: %w", c.Spellbook.Timeout, err)
	}

	if c.Scoring.MinPoints < 0 {
		return fmt.Errorf("min points cannot be negative: %d", c.Scoring.MinPoints)
	}

	if c.Scoring.MaxPoints < c.Scoring.MinPoints {
		return fmt.Errorf("max points %d cannot be below min points %d", c.Scoring.MaxPoints, c.Scoring.MinPoints)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	return nil
}

// GetMoxfieldTimeout returns the deck request timeout as a duration.
func (c *Config) GetMoxfieldTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Moxfield.Timeout)
}

// GetSpellbookTimeout returns the combo request timeout as a duration.
func (c *Config) GetSpellbookTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Spellbook.Timeout)
}

// ResolveCSRFToken returns the Spellbook CSRF token, falling back to the
// COMMANDERSPELLBOOK_CSRF environment variable and then a fixed default.
func (c *Config) ResolveCSRFToken() string {
	if c.Spellbook.CSRFToken != "" {
		return c.Spellbook.CSRFToken
	}
	if env := os.Getenv("COMMANDERSPELLBOOK_CSRF"); env != "" {
		return env
	}
	return "default_token"
}
