package keybinds

import (
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func TestNewLegacyLabels(t *testing.T) {
	labels := NewLegacyLabels()

	assert.Equal(t, map[string]string{
		"INTERACT":            "e",
		"DROP":                "g",
		"SPRINT":              "shift",
		"CHAT":                "enter",
		"PLAYER_LIST":         "tab",
		"WEAPONS_HUD":         "f",
		"QUICK_SWITCH":        "q",
		"TOGGLE_INSTRUCTIONS": "i",
		"TOGGLE_MUTE":         "n",
	}, labels.Snapshot())
}

func TestLegacyLabels_Sync(t *testing.T) {
	labels := NewLegacyLabels()

	m := DefaultMapping()
	m[Interact] = "KeyR"
	m[Sprint] = Control
	m[ControlsPanel] = "Numpad5"
	labels.Sync(m)

	interact, ok := labels.Get("INTERACT")
	assert.True(t, ok)
	assert.Equal(t, "r", interact)

	sprint, _ := labels.Get("SPRINT")
	assert.Equal(t, "ctrl", sprint)

	instructions, _ := labels.Get("TOGGLE_INSTRUCTIONS")
	assert.Equal(t, "num 5", instructions)

	mute, _ := labels.Get("TOGGLE_MUTE")
	assert.Equal(t, "n", mute)

	_, ok = labels.Get("MOVE_UP")
	assert.False(t, ok)
}

func TestLegacyLabels_Nil(t *testing.T) {
	var labels *LegacyLabels

	assert.NotPanics(t, func() { labels.Sync(DefaultMapping()) })

	_, ok := labels.Get("INTERACT")
	assert.False(t, ok)
	assert.Nil(t, labels.Snapshot())
}

func TestLegacyLabels_SnapshotIsCopy(t *testing.T) {
	labels := NewLegacyLabels()

	snapshot := labels.Snapshot()
	snapshot["INTERACT"] = "x"

	interact, _ := labels.Get("INTERACT")
	assert.Equal(t, "e", interact)
}
