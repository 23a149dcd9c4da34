package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	storage "github.com/inference-gateway/keybinds/internal/infra/storage"
	logger "github.com/inference-gateway/keybinds/internal/logger"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the project-local configuration file
const DefaultConfigPath = ".keybinds/config.yaml"

// Config represents the keybinds configuration
type Config struct {
	Storage     storage.Config    `yaml:"storage" mapstructure:"storage"`
	Logging     LoggingConfig     `yaml:"logging" mapstructure:"logging"`
	Keybindings KeybindingsConfig `yaml:"keybindings" mapstructure:"keybindings"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// KeybindingsConfig contains settings for the keybinding store
type KeybindingsConfig struct {
	// StorageKey names the storage slot holding the serialized mapping
	StorageKey string `yaml:"storage_key" mapstructure:"storage_key"`
	// LegacyLabels keeps the lower-case label table in sync with the mapping
	LegacyLabels bool `yaml:"legacy_labels" mapstructure:"legacy_labels"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: storage.Config{
			Type: "file",
			File: storage.FileConfig{
				Dir: ".keybinds",
			},
			SQLite: storage.SQLiteConfig{
				Path: ".keybinds/keybinds.db",
			},
			Postgres: storage.PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "keybinds",
				SSLMode:  "disable",
			},
			Redis: storage.RedisConfig{
				Host:   "localhost",
				Port:   6379,
				Prefix: "keybinds:",
			},
		},
		Logging: LoggingConfig{
			Debug: false,
		},
		Keybindings: KeybindingsConfig{
			StorageKey:   "keybindings",
			LegacyLabels: true,
		},
	}
}

// LoadConfig loads configuration from file
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = getDefaultConfigPath()
		logger.Debug("Using default config path", "path", configPath)
	} else {
		logger.Debug("Using custom config path", "path", configPath)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Debug("Config file not found, using default configuration", "path", configPath)
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		logger.Error("Failed to read config file", "path", configPath, "error", err)
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		logger.Error("Failed to parse config file", "path", configPath, "error", err)
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	logger.Debug("Successfully loaded config", "path", configPath, "storage_type", config.Storage.Type)
	return config, nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error("Failed to create config directory", "dir", dir, "error", err)
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.YAML()
	if err != nil {
		return err
	}

	logger.Debug("Writing config file", "path", configPath, "size", len(data))
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		logger.Error("Failed to write config file", "path", configPath, "error", err)
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// YAML renders the configuration with two-space indentation
func (c *Config) YAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to close YAML encoder: %w", err)
	}

	return buf.Bytes(), nil
}

func getDefaultConfigPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return DefaultConfigPath
	}
	return filepath.Join(wd, DefaultConfigPath)
}
