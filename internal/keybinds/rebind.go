package keybinds

import (
	"context"
	"fmt"

	logger "github.com/inference-gateway/keybinds/internal/logger"
	"go.uber.org/zap"
)

// RejectKind classifies why a rebind was refused
type RejectKind string

const (
	RejectUnknownAction RejectKind = "unknown_action"
	RejectUnsupported   RejectKind = "unsupported"
	RejectReserved      RejectKind = "reserved"
	RejectConflict      RejectKind = "conflict"
	RejectDisplaced     RejectKind = "displaced"
)

// RebindError is an advisory rejection. The mapping is unchanged whenever one is returned.
type RebindError struct {
	Kind   RejectKind
	Action ActionID
	Raw    string
	Token  Token
	// Owner is the action holding Token for RejectConflict and RejectDisplaced
	Owner ActionID
}

func (e *RebindError) Error() string {
	switch e.Kind {
	case RejectUnknownAction:
		return fmt.Sprintf("unknown action %q", e.Action)
	case RejectUnsupported:
		return fmt.Sprintf("unsupported key %q", e.Raw)
	case RejectReserved:
		return fmt.Sprintf("%s is a reserved key", Format(e.Token))
	case RejectConflict:
		return fmt.Sprintf("%s is already bound to %s", Format(e.Token), Label(e.Owner))
	case RejectDisplaced:
		return fmt.Sprintf("%s is the default key of %s and cannot be reassigned", Format(e.Token), Label(e.Owner))
	default:
		return fmt.Sprintf("cannot bind %s", e.Raw)
	}
}

// Rebind assigns the key named by raw to action id and persists the result
func (s *Store) Rebind(ctx context.Context, id ActionID, raw string) (Mapping, error) {
	token, ok := Normalize(raw)
	return s.rebind(ctx, id, raw, token, ok)
}

// RebindEvent assigns the physical key of a captured key press to action id
func (s *Store) RebindEvent(ctx context.Context, id ActionID, ev KeyEvent) (Mapping, error) {
	token, ok := NormalizeEvent(ev)
	return s.rebind(ctx, id, ev.Code, token, ok)
}

func (s *Store) rebind(ctx context.Context, id ActionID, raw string, token Token, normalized bool) (Mapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.load(ctx)

	if err := checkRebind(current, id, raw, token, normalized); err != nil {
		logger.Component(ctx, "keybinds").Debug("rebind rejected",
			zap.String("action", string(id)),
			zap.String("raw", raw),
			zap.String("reason", string(err.Kind)))
		return current, err
	}

	candidate := current.Clone()
	candidate[id] = token
	return s.save(ctx, candidate), nil
}

// checkRebind validates a rebind of id to token against the current mapping
func checkRebind(current Mapping, id ActionID, raw string, token Token, normalized bool) *RebindError {
	if _, known := Lookup(id); !known {
		return &RebindError{Kind: RejectUnknownAction, Action: id, Raw: raw}
	}
	if !normalized {
		return &RebindError{Kind: RejectUnsupported, Action: id, Raw: raw}
	}
	if IsReserved(token) {
		return &RebindError{Kind: RejectReserved, Action: id, Raw: raw, Token: token}
	}
	if owner, taken := FindConflict(current, id, token); taken {
		return &RebindError{Kind: RejectConflict, Action: id, Raw: raw, Token: token, Owner: owner}
	}

	candidate := current.Clone()
	candidate[id] = token
	preview, report := SanitizeWithReport(candidate)
	if preview[id] != token {
		err := &RebindError{Kind: RejectDisplaced, Action: id, Raw: raw, Token: token}
		for _, repair := range report.Repairs {
			if repair.Action == id {
				err.Owner = repair.Owner
			}
		}
		return err
	}

	return nil
}
