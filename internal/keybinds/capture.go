package keybinds

import (
	"context"
	"fmt"
)

// CaptureOutcome is the result of feeding one key press to a Capture
type CaptureOutcome int

const (
	// OutcomeIgnored means no capture was pending
	OutcomeIgnored CaptureOutcome = iota
	// OutcomeBound means the key was accepted and the capture ended
	OutcomeBound
	// OutcomeCancelled means the escape signal ended the capture without changes
	OutcomeCancelled
	// OutcomeRejected means the key was refused and the capture keeps listening
	OutcomeRejected
)

func (o CaptureOutcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeBound:
		return "bound"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeRejected:
		return "rejected"
	default:
		return fmt.Sprintf("CaptureOutcome(%d)", int(o))
	}
}

// Capture is the rebind listening mode: Idle until Begin, then Listening(action)
// until a key is accepted or the capture is cancelled. Rejected keys leave it listening.
// While listening, callers should route key presses to Handle instead of gameplay.
type Capture struct {
	store     *Store
	action    ActionID
	listening bool
}

// NewCapture creates an idle capture writing to store
func NewCapture(store *Store) *Capture {
	return &Capture{store: store}
}

// Begin starts listening for a new key for id. Beginning while already
// listening retargets the capture.
func (c *Capture) Begin(id ActionID) error {
	if _, ok := Lookup(id); !ok {
		return &RebindError{Kind: RejectUnknownAction, Action: id}
	}
	c.action = id
	c.listening = true
	return nil
}

// Cancel returns to Idle without side effects
func (c *Capture) Cancel() {
	c.action = ""
	c.listening = false
}

// Listening returns the action awaiting a key, if any
func (c *Capture) Listening() (ActionID, bool) {
	return c.action, c.listening
}

// Handle feeds one key press to the capture. An Escape press cancels.
// The returned error is the advisory rejection for OutcomeRejected.
func (c *Capture) Handle(ctx context.Context, ev KeyEvent) (CaptureOutcome, error) {
	if !c.listening {
		return OutcomeIgnored, nil
	}

	if token, ok := NormalizeEvent(ev); ok && token == Escape {
		c.Cancel()
		return OutcomeCancelled, nil
	}

	if _, err := c.store.RebindEvent(ctx, c.action, ev); err != nil {
		return OutcomeRejected, err
	}

	c.Cancel()
	return OutcomeBound, nil
}
