package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// EnvPrefix prefixes every environment override, e.g. KEYBINDS_STORAGE_TYPE
const EnvPrefix = "KEYBINDS"

// NewViper creates a viper instance layered as defaults < config file < environment.
// A .env file in the working directory is loaded first when present.
func NewViper(configPath string) *viper.Viper {
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())

	if configPath == "" {
		configPath = DefaultConfigPath
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// FromViper reads the config file, if any, and decodes the layered configuration
func FromViper(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	s := cfg.Storage
	v.SetDefault("storage.type", s.Type)
	v.SetDefault("storage.file.dir", s.File.Dir)
	v.SetDefault("storage.sqlite.path", s.SQLite.Path)
	v.SetDefault("storage.postgres.host", s.Postgres.Host)
	v.SetDefault("storage.postgres.port", s.Postgres.Port)
	v.SetDefault("storage.postgres.database", s.Postgres.Database)
	v.SetDefault("storage.postgres.username", s.Postgres.Username)
	v.SetDefault("storage.postgres.password", s.Postgres.Password)
	v.SetDefault("storage.postgres.ssl_mode", s.Postgres.SSLMode)
	v.SetDefault("storage.redis.host", s.Redis.Host)
	v.SetDefault("storage.redis.port", s.Redis.Port)
	v.SetDefault("storage.redis.database", s.Redis.Database)
	v.SetDefault("storage.redis.username", s.Redis.Username)
	v.SetDefault("storage.redis.password", s.Redis.Password)
	v.SetDefault("storage.redis.prefix", s.Redis.Prefix)
	v.SetDefault("storage.redis.ttl", s.Redis.TTL)

	v.SetDefault("logging.debug", cfg.Logging.Debug)

	v.SetDefault("keybindings.storage_key", cfg.Keybindings.StorageKey)
	v.SetDefault("keybindings.legacy_labels", cfg.Keybindings.LegacyLabels)
}
