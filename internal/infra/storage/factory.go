package storage

import (
	"fmt"
)

// NewStorage creates a new storage instance based on the provided configuration
func NewStorage(config Config) (KV, error) {
	switch config.Type {
	case "memory":
		return NewMemoryStorage(), nil
	case "", "file":
		return NewFileStorage(config.File)
	case "sqlite":
		return NewSQLiteStorage(config.SQLite)
	case "postgres":
		return NewPostgresStorage(config.Postgres)
	case "redis":
		return NewRedisStorage(config.Redis)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", config.Type)
	}
}
