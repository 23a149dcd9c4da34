package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	keybinds "github.com/inference-gateway/keybinds/internal/keybinds"
	logger "github.com/inference-gateway/keybinds/internal/logger"
	"go.uber.org/zap"
)

// Reporter is told about every key press the capture handled
type Reporter func(outcome keybinds.CaptureOutcome, err error)

// RunCapture puts capture into listening mode for id and feeds it key presses
// from screen until a key is bound, Escape cancels, or ctx is done.
// The screen must already be initialized; it is left open for the caller to finalize.
func RunCapture(ctx context.Context, screen tcell.Screen, capture *keybinds.Capture, id keybinds.ActionID, report Reporter) (keybinds.CaptureOutcome, error) {
	if err := capture.Begin(id); err != nil {
		return keybinds.OutcomeIgnored, err
	}
	defer capture.Cancel()

	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	log := logger.Component(ctx, "terminal")
	prompt := fmt.Sprintf("Press a key for %s (ESC to cancel)", keybinds.Label(id))
	draw(screen, prompt)

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return keybinds.OutcomeCancelled, fmt.Errorf("screen closed while capturing %s", id)
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return keybinds.OutcomeCancelled, err
			}
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, prompt)
		case *tcell.EventKey:
			event := EventFromTcell(ev)
			log.Debug("captured key", zap.String("code", event.Code), zap.String("key", event.Key))

			outcome, err := capture.Handle(ctx, event)
			if report != nil {
				report(outcome, err)
			}

			switch outcome {
			case keybinds.OutcomeBound, keybinds.OutcomeCancelled:
				return outcome, nil
			case keybinds.OutcomeRejected:
				draw(screen, prompt, err.Error())
			}
		}
	}
}

func draw(screen tcell.Screen, lines ...string) {
	screen.Clear()
	for y, line := range lines {
		for x, r := range []rune(line) {
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
	}
	screen.Show()
}
