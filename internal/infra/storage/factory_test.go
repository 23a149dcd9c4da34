package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestNewStorage(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		config   Config
		wantType any
		wantErr  bool
	}{
		{
			name:     "memory",
			config:   Config{Type: "memory"},
			wantType: &MemoryStorage{},
		},
		{
			name:     "file",
			config:   Config{Type: "file", File: FileConfig{Dir: filepath.Join(dir, "file")}},
			wantType: &FileStorage{},
		},
		{
			name:     "empty type falls back to file",
			config:   Config{File: FileConfig{Dir: filepath.Join(dir, "default")}},
			wantType: &FileStorage{},
		},
		{
			name:     "sqlite",
			config:   Config{Type: "sqlite", SQLite: SQLiteConfig{Path: filepath.Join(dir, "kv.db")}},
			wantType: &SQLiteStorage{},
		},
		{
			name:    "unsupported",
			config:  Config{Type: "etcd"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := NewStorage(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			t.Cleanup(func() { _ = kv.Close() })
			assert.IsType(t, tt.wantType, kv)
		})
	}
}

func TestRedisStorage_KeyLayout(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer func() { _ = client.Close() }()

	s := newRedisStorage(client, RedisConfig{})
	assert.Equal(t, "keybinds:keybindings", s.slotKey("keybindings"))
	assert.Equal(t, time.Duration(0), s.ttl)

	s = newRedisStorage(client, RedisConfig{Prefix: "game:", TTL: 60})
	assert.Equal(t, "game:keybindings", s.slotKey("keybindings"))
	assert.Equal(t, time.Minute, s.ttl)
}

func TestPostgresDSN(t *testing.T) {
	dsn := postgresDSN(PostgresConfig{Host: "db", Port: 5432, Username: "u", Password: "p", Database: "game"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=game sslmode=disable", dsn)
}
