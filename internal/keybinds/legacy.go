package keybinds

import (
	"strings"
	"sync"
)

// TOGGLE_MUTE is not rebindable and always shows this label
const legacyMuteLabel = "n"

var legacyFields = []struct {
	field  string
	action ActionID
}{
	{"INTERACT", Interact},
	{"DROP", Drop},
	{"SPRINT", Sprint},
	{"CHAT", Chat},
	{"PLAYER_LIST", PlayerList},
	{"WEAPONS_HUD", WeaponsHUD},
	{"QUICK_SWITCH", QuickSwitch},
	{"TOGGLE_INSTRUCTIONS", ControlsPanel},
}

// LegacyLabels is the lower-case label table read by display code that predates
// canonical tokens. A nil *LegacyLabels ignores every call.
type LegacyLabels struct {
	mu     sync.RWMutex
	labels map[string]string
}

// NewLegacyLabels creates a table pre-filled from the default mapping
func NewLegacyLabels() *LegacyLabels {
	l := &LegacyLabels{labels: make(map[string]string, len(legacyFields)+1)}
	l.Sync(DefaultMapping())
	return l
}

// Sync mirrors the bindings of m into the legacy fields
func (l *LegacyLabels) Sync(m Mapping) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, f := range legacyFields {
		if token, ok := m[f.action]; ok {
			l.labels[f.field] = strings.ToLower(Format(token))
		}
	}
	l.labels["TOGGLE_MUTE"] = legacyMuteLabel
}

// Get returns the label stored for field
func (l *LegacyLabels) Get(field string) (string, bool) {
	if l == nil {
		return "", false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	label, ok := l.labels[field]
	return label, ok
}

// Snapshot returns a copy of the whole table
func (l *LegacyLabels) Snapshot() map[string]string {
	if l == nil {
		return nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]string, len(l.labels))
	for field, label := range l.labels {
		out[field] = label
	}
	return out
}
