package keybinds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	storage "github.com/inference-gateway/keybinds/internal/infra/storage"
	logger "github.com/inference-gateway/keybinds/internal/logger"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// StorageKey is the default storage slot holding the serialized mapping
const StorageKey = "keybindings"

// Store loads, saves and broadcasts the keybinding mapping.
// Every mapping it returns has been through Sanitize.
type Store struct {
	kv     storage.KV
	key    string
	events *Broadcaster
	legacy *LegacyLabels
	mu     sync.Mutex
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithStorageKey overrides the storage slot name
func WithStorageKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithBroadcaster publishes change signals on b instead of the process-wide broadcaster
func WithBroadcaster(b *Broadcaster) StoreOption {
	return func(s *Store) {
		if b != nil {
			s.events = b
		}
	}
}

// WithLegacyLabels keeps the legacy label table in sync on every load and save
func WithLegacyLabels(l *LegacyLabels) StoreOption {
	return func(s *Store) {
		s.legacy = l
	}
}

// NewStore creates a store backed by kv
func NewStore(kv storage.KV, opts ...StoreOption) *Store {
	s := &Store{
		kv:     kv,
		key:    StorageKey,
		events: Changes(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage slot name
func (s *Store) Key() string {
	return s.key
}

// Events returns the broadcaster signalled after every save
func (s *Store) Events() *Broadcaster {
	return s.events
}

// Legacy returns the legacy label table, which may be nil
func (s *Store) Legacy() *LegacyLabels {
	return s.legacy
}

// Snapshot is the stored state as found in storage
type Snapshot struct {
	Raw     []byte
	Found   bool
	Mapping Mapping
	Report  Report
}

// Inspect reads the stored mapping without side effects.
// The error is non-nil only when storage itself failed; Mapping is always usable.
func (s *Store) Inspect(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read(ctx)
}

// Load returns the stored mapping, falling back to defaults when storage is empty,
// unreadable or corrupt
func (s *Store) Load(ctx context.Context) Mapping {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Save sanitizes m, persists it on a best-effort basis, refreshes the legacy labels
// and broadcasts a change signal. It returns the mapping actually in effect.
func (s *Store) Save(ctx context.Context, m Mapping) Mapping {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, m)
}

// Reset restores the default mapping
func (s *Store) Reset(ctx context.Context) Mapping {
	return s.Save(ctx, DefaultMapping())
}

func (s *Store) load(ctx context.Context) Mapping {
	snap, _ := s.read(ctx)
	s.legacy.Sync(snap.Mapping)
	return snap.Mapping
}

func (s *Store) read(ctx context.Context) (Snapshot, error) {
	log := logger.Component(ctx, "keybinds")

	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return Snapshot{Mapping: DefaultMapping()}, nil
	}
	if err != nil {
		log.Warn("failed to read keybindings, using defaults", zap.String("key", s.key), zap.Error(err))
		return Snapshot{Mapping: DefaultMapping()}, fmt.Errorf("failed to read keybindings: %w", err)
	}

	snap := Snapshot{Raw: data, Found: true}
	if !gjson.ValidBytes(data) {
		log.Warn("stored keybindings are not valid JSON, using defaults", zap.String("key", s.key))
		snap.Mapping = DefaultMapping()
		snap.Report = Report{Malformed: true}
		return snap, nil
	}

	snap.Mapping, snap.Report = SanitizeWithReport(gjson.ParseBytes(data).Value())
	if !snap.Report.Clean() {
		log.Warn("repaired stored keybindings",
			zap.String("key", s.key),
			zap.Int("repairs", len(snap.Report.Repairs)),
			zap.Strings("unknown", snap.Report.Unknown),
			zap.Bool("malformed", snap.Report.Malformed))
	}

	return snap, nil
}

func (s *Store) save(ctx context.Context, m Mapping) Mapping {
	log := logger.Component(ctx, "keybinds")
	sanitized := Sanitize(m)

	data, err := json.Marshal(sanitized)
	if err == nil {
		err = s.kv.Set(ctx, s.key, data)
	}
	if err != nil {
		log.Warn("failed to persist keybindings", zap.String("key", s.key), zap.Error(err))
	}

	s.legacy.Sync(sanitized)
	s.events.Publish()

	log.Debug("keybindings saved", zap.String("key", s.key), zap.String("event", s.events.Name()))
	return sanitized
}
