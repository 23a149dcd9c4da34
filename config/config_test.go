package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("storage defaults", func(t *testing.T) {
		testStorageDefaults(t, cfg)
	})
	t.Run("logging defaults", func(t *testing.T) {
		if cfg.Logging.Debug {
			t.Error("Expected debug logging to be disabled by default")
		}
	})
	t.Run("keybindings defaults", func(t *testing.T) {
		if cfg.Keybindings.StorageKey != "keybindings" {
			t.Errorf("Expected storage key 'keybindings', got %q", cfg.Keybindings.StorageKey)
		}
		if !cfg.Keybindings.LegacyLabels {
			t.Error("Expected legacy labels to be enabled by default")
		}
	})
}

func testStorageDefaults(t *testing.T, cfg *Config) {
	if cfg.Storage.Type != "file" {
		t.Errorf("Expected storage type 'file', got %q", cfg.Storage.Type)
	}
	if cfg.Storage.File.Dir != ".keybinds" {
		t.Errorf("Expected file dir '.keybinds', got %q", cfg.Storage.File.Dir)
	}
	if cfg.Storage.Postgres.Port != 5432 {
		t.Errorf("Expected postgres port 5432, got %d", cfg.Storage.Postgres.Port)
	}
	if cfg.Storage.Redis.Prefix != "keybinds:" {
		t.Errorf("Expected redis prefix 'keybinds:', got %q", cfg.Storage.Redis.Prefix)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectError bool
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "partial config keeps defaults",
			content: `
storage:
  type: sqlite
  sqlite:
    path: /tmp/keybinds.db
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Storage.Type != "sqlite" {
					t.Errorf("Expected storage type 'sqlite', got %q", cfg.Storage.Type)
				}
				if cfg.Storage.SQLite.Path != "/tmp/keybinds.db" {
					t.Errorf("Expected sqlite path '/tmp/keybinds.db', got %q", cfg.Storage.SQLite.Path)
				}
				if cfg.Keybindings.StorageKey != "keybindings" {
					t.Errorf("Expected default storage key, got %q", cfg.Keybindings.StorageKey)
				}
			},
		},
		{
			name: "keybinding settings",
			content: `
keybindings:
  storage_key: profile-2
  legacy_labels: false
logging:
  debug: true
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Keybindings.StorageKey != "profile-2" {
					t.Errorf("Expected storage key 'profile-2', got %q", cfg.Keybindings.StorageKey)
				}
				if cfg.Keybindings.LegacyLabels {
					t.Error("Expected legacy labels to be disabled")
				}
				if !cfg.Logging.Debug {
					t.Error("Expected debug logging to be enabled")
				}
			},
		},
		{
			name:        "invalid yaml",
			content:     "storage: [unclosed",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}

			cfg, err := LoadConfig(configPath)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Storage.Type != DefaultConfig().Storage.Type {
		t.Errorf("Expected default storage type, got %q", cfg.Storage.Type)
	}
}

func TestSaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Storage.Type = "redis"
	cfg.Storage.Redis.TTL = 60
	cfg.Keybindings.StorageKey = "arena"

	if err := cfg.SaveConfig(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("Loaded config differs from saved config:\nsaved:  %+v\nloaded: %+v", cfg, loaded)
	}
}

func TestFromViper(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		v := NewViper(filepath.Join(t.TempDir(), "config.yaml"))

		cfg, err := FromViper(v)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if *cfg != *DefaultConfig() {
			t.Errorf("Expected default config, got %+v", cfg)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		content := "storage:\n  type: sqlite\nkeybindings:\n  storage_key: from-file\n"
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}

		t.Setenv("KEYBINDS_STORAGE_TYPE", "memory")
		t.Setenv("KEYBINDS_KEYBINDINGS_LEGACY_LABELS", "false")

		cfg, err := FromViper(NewViper(configPath))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Storage.Type != "memory" {
			t.Errorf("Expected env override 'memory', got %q", cfg.Storage.Type)
		}
		if cfg.Keybindings.StorageKey != "from-file" {
			t.Errorf("Expected storage key from file, got %q", cfg.Keybindings.StorageKey)
		}
		if cfg.Keybindings.LegacyLabels {
			t.Error("Expected env to disable legacy labels")
		}
	})

	t.Run("unreadable config", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(configPath, []byte("storage: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}

		v := viper.New()
		v.SetConfigFile(configPath)
		if _, err := FromViper(v); err == nil {
			t.Error("Expected error but got none")
		}
	})
}
