package keybinds

import (
	"testing"

	logger "github.com/inference-gateway/keybinds/internal/logger"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestCapture_IdleIgnoresKeys(t *testing.T) {
	s := newTestStore(t)
	c := NewCapture(s.Store)

	outcome, err := c.Handle(logger.NopContext(), KeyEvent{Code: "KeyR", Key: "r"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, outcome)
	assert.Equal(t, DefaultMapping(), s.Load(logger.NopContext()))
}

func TestCapture_BindsAndReturnsToIdle(t *testing.T) {
	s := newTestStore(t)
	c := NewCapture(s.Store)
	ctx := logger.NopContext()

	require.NoError(t, c.Begin(Interact))
	id, listening := c.Listening()
	assert.True(t, listening)
	assert.Equal(t, Interact, id)

	outcome, err := c.Handle(ctx, KeyEvent{Code: "KeyR", Key: "r"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeBound, outcome)

	_, listening = c.Listening()
	assert.False(t, listening)
	assert.Equal(t, Token("KeyR"), s.Load(ctx)[Interact])
}

func TestCapture_RejectionKeepsListening(t *testing.T) {
	s := newTestStore(t)
	c := NewCapture(s.Store)
	ctx := logger.NopContext()

	require.NoError(t, c.Begin(Interact))

	outcome, err := c.Handle(ctx, KeyEvent{Code: "Enter", Key: "Enter"})
	assert.Equal(t, OutcomeRejected, outcome)
	requireRebindError(t, err, RejectConflict)

	outcome, err = c.Handle(ctx, KeyEvent{Code: "Digit3", Key: "3"})
	assert.Equal(t, OutcomeRejected, outcome)
	requireRebindError(t, err, RejectReserved)

	id, listening := c.Listening()
	assert.True(t, listening)
	assert.Equal(t, Interact, id)
	assert.Equal(t, DefaultMapping(), s.Load(ctx))
}

func TestCapture_EscapeCancels(t *testing.T) {
	s := newTestStore(t)
	c := NewCapture(s.Store)
	ctx := logger.NopContext()
	sub := s.events.Subscribe()

	require.NoError(t, c.Begin(Chat))

	outcome, err := c.Handle(ctx, KeyEvent{Code: "Escape", Key: "Escape"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, outcome)

	_, listening := c.Listening()
	assert.False(t, listening)
	assert.Equal(t, DefaultMapping(), s.Load(ctx))
	assert.False(t, received(sub))
}

func TestCapture_BeginAndCancel(t *testing.T) {
	s := newTestStore(t)
	c := NewCapture(s.Store)

	err := c.Begin("fly")
	requireRebindError(t, err, RejectUnknownAction)
	_, listening := c.Listening()
	assert.False(t, listening)

	require.NoError(t, c.Begin(Interact))
	require.NoError(t, c.Begin(Heal))
	id, _ := c.Listening()
	assert.Equal(t, Heal, id)

	c.Cancel()
	outcome, err := c.Handle(logger.NopContext(), KeyEvent{Code: "KeyR"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, outcome)
}

func TestCaptureOutcome_String(t *testing.T) {
	assert.Equal(t, "ignored", OutcomeIgnored.String())
	assert.Equal(t, "bound", OutcomeBound.String())
	assert.Equal(t, "cancelled", OutcomeCancelled.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "CaptureOutcome(9)", CaptureOutcome(9).String())
}
