package storage

import (
	"context"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

// runKVContract exercises the behaviour every KV backend must share
func runKVContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	t.Run("Health Check", func(t *testing.T) {
		assert.NoError(t, kv.Health(ctx))
	})

	t.Run("Missing key", func(t *testing.T) {
		_, err := kv.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "keybindings", []byte(`{"interact":"KeyE"}`)))

		value, err := kv.Get(ctx, "keybindings")
		require.NoError(t, err)
		assert.JSONEq(t, `{"interact":"KeyE"}`, string(value))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "keybindings", []byte(`{"interact":"KeyR"}`)))

		value, err := kv.Get(ctx, "keybindings")
		require.NoError(t, err)
		assert.JSONEq(t, `{"interact":"KeyR"}`, string(value))
	})

	t.Run("Keys are independent", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "other/slot", []byte("x")))

		value, err := kv.Get(ctx, "keybindings")
		require.NoError(t, err)
		assert.JSONEq(t, `{"interact":"KeyR"}`, string(value))

		value, err = kv.Get(ctx, "other/slot")
		require.NoError(t, err)
		assert.Equal(t, "x", string(value))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, kv.Delete(ctx, "keybindings"))

		_, err := kv.Get(ctx, "keybindings")
		assert.ErrorIs(t, err, ErrNotFound)

		assert.NoError(t, kv.Delete(ctx, "keybindings"), "deleting a missing key is not an error")
	})
}

func TestMemoryStorage_Contract(t *testing.T) {
	runKVContract(t, NewMemoryStorage())
}

func TestFileStorage_Contract(t *testing.T) {
	kv, err := NewFileStorage(FileConfig{Dir: filepath.Join(t.TempDir(), "slots")})
	require.NoError(t, err)

	runKVContract(t, kv)
}

func TestSQLiteStorage_Contract(t *testing.T) {
	kv, err := NewSQLiteStorage(SQLiteConfig{Path: filepath.Join(t.TempDir(), "keybinds.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	runKVContract(t, kv)
}

func TestMemoryStorage_ReturnsCopies(t *testing.T) {
	kv := NewMemoryStorage()
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", value))
	value[0] = 'z'

	stored, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(stored))

	stored[1] = 'z'
	again, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keybinds.db")
	ctx := context.Background()

	first, err := NewSQLiteStorage(SQLiteConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "keybindings", []byte(`{"chat":"KeyY"}`)))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStorage(SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	value, err := second.Get(ctx, "keybindings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"chat":"KeyY"}`, string(value))
}

func TestSQLiteStorage_RequiresPath(t *testing.T) {
	_, err := NewSQLiteStorage(SQLiteConfig{})
	assert.Error(t, err)
}

func TestFileStorage_EscapesKeys(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileStorage(FileConfig{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "a%2Fb.json"), kv.slotPath("a/b"))
}
