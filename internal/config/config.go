package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StyleLong  = "long"
	StyleShort = "short"
)

var (
	ErrUnknownKey   = errors.New("unknown config key")
	ErrInvalidValue = errors.New("invalid config value")
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config represents the application configuration
type Config struct {
	CardStyle string `toml:"card_style"`
	Color     bool   `toml:"color"`
	Decks     int    `toml:"decks"`
	LogLevel  string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		CardStyle: StyleLong,
		Color:     true,
		Decks:     1,
		LogLevel:  "warn",
	}
}

// Validate checks that every setting holds a supported value
func (c *Config) Validate() error {
	if c.CardStyle != StyleLong && c.CardStyle != StyleShort {
		return fmt.Errorf("%w: card_style must be %q or %q, got %q", ErrInvalidValue, StyleLong, StyleShort, c.CardStyle)
	}
	if c.Decks < 1 {
		return fmt.Errorf("%w: decks must be at least 1, got %d", ErrInvalidValue, c.Decks)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("%w: log_level must be one of %s, got %q", ErrInvalidValue, strings.Join(logLevels, ", "), c.LogLevel)
	}
	return nil
}

// Keys returns the settable config keys in sorted order
func Keys() []string {
	keys := []string{"card_style", "color", "decks", "log_level"}
	sort.Strings(keys)
	return keys
}

// Set updates a single setting from its string form
func (c *Config) Set(key, value string) error {
	updated := *c
	switch key {
	case "card_style":
		updated.CardStyle = strings.ToLower(value)
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: color: %v", ErrInvalidValue, err)
		}
		updated.Color = b
	case "decks":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: decks: %v", ErrInvalidValue, err)
		}
		updated.Decks = n
	case "log_level":
		updated.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err := updated.Validate(); err != nil {
		return err
	}
	*c = updated
	return nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "blackjack", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing.
// Settings outside their supported range are an error.
func LoadConfig() (*Config, error) {
	config, err := ReadConfig()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", GetConfigFilePath(), err)
	}

	return config, nil
}

// ReadConfig loads the config file like LoadConfig but does not validate the
// settings, so a file holding a bad value can still be read and repaired.
func ReadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	// Keys missing from the file keep their defaults
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig writes the default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetValue reads the config, updates one key and writes it back. The result
// must validate as a whole, so fixing one bad key works but a second bad key
// still blocks the write.
func SetValue(key, value string) (*Config, error) {
	config, err := ReadConfig()
	if err != nil {
		return nil, err
	}

	if err := config.Set(key, value); err != nil {
		return nil, err
	}

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
