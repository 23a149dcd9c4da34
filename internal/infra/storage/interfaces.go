package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under the key
var ErrNotFound = errors.New("storage: key not found")

// KV defines a durable key-value slot store
type KV interface {
	// Get returns the raw bytes stored under key, or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Close closes the storage connection
	Close() error

	// Health checks if the storage is healthy and reachable
	Health(ctx context.Context) error
}

// Config contains configuration for storage backends
type Config struct {
	// Type specifies the storage backend type (memory, file, sqlite, postgres, redis)
	Type string `json:"type" yaml:"type" mapstructure:"type"`

	// File specific configuration
	File FileConfig `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`

	// SQLite specific configuration
	SQLite SQLiteConfig `json:"sqlite,omitempty" yaml:"sqlite,omitempty" mapstructure:"sqlite"`

	// Postgres specific configuration
	Postgres PostgresConfig `json:"postgres,omitempty" yaml:"postgres,omitempty" mapstructure:"postgres"`

	// Redis specific configuration
	Redis RedisConfig `json:"redis,omitempty" yaml:"redis,omitempty" mapstructure:"redis"`
}

// FileConfig contains file backend configuration
type FileConfig struct {
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// SQLiteConfig contains SQLite-specific configuration
type SQLiteConfig struct {
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// PostgresConfig contains Postgres-specific configuration
type PostgresConfig struct {
	Host     string `json:"host" yaml:"host" mapstructure:"host"`
	Port     int    `json:"port" yaml:"port" mapstructure:"port"`
	Database string `json:"database" yaml:"database" mapstructure:"database"`
	Username string `json:"username" yaml:"username" mapstructure:"username"`
	Password string `json:"password" yaml:"password" mapstructure:"password"`
	SSLMode  string `json:"ssl_mode" yaml:"ssl_mode" mapstructure:"ssl_mode"`
}

// RedisConfig contains Redis-specific configuration
type RedisConfig struct {
	Host     string `json:"host" yaml:"host" mapstructure:"host"`
	Port     int    `json:"port" yaml:"port" mapstructure:"port"`
	Database int    `json:"database" yaml:"database" mapstructure:"database"`
	Password string `json:"password,omitempty" yaml:"password,omitempty" mapstructure:"password"`
	Username string `json:"username,omitempty" yaml:"username,omitempty" mapstructure:"username"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty" mapstructure:"prefix"`
	TTL      int    `json:"ttl,omitempty" yaml:"ttl,omitempty" mapstructure:"ttl"` // TTL in seconds, 0 means no expiration
}
