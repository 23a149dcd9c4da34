package storage

import (
	"context"
	"sync"
)

// MemoryStorage implements KV using in-memory storage
// Values live only as long as the process, which suits tests and throwaway sessions
type MemoryStorage struct {
	values map[string][]byte
	mutex  sync.RWMutex
}

// NewMemoryStorage creates a new in-memory storage instance
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string][]byte),
	}
}

// Get returns a copy of the value stored under key
func (m *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, exists := m.values[key]
	if !exists {
		return nil, ErrNotFound
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return valueCopy, nil
}

// Set stores a copy of value under key
func (m *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	m.values[key] = valueCopy

	return nil
}

// Delete removes the value stored under key
func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.values, key)
	return nil
}

// Close closes the storage connection (no-op for memory storage)
func (m *MemoryStorage) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values = make(map[string][]byte)
	return nil
}

// Health checks if the storage is healthy and reachable
func (m *MemoryStorage) Health(ctx context.Context) error {
	return nil
}
