package keybinds

// ActionID identifies one rebindable game action
type ActionID string

// Token is a canonical binding token naming a physical key or a logical key group
type Token string

// Mapping assigns a token to every registered action.
// Values returned by Sanitize, DefaultMapping and the Store are complete,
// injective and free of reserved tokens.
type Mapping map[ActionID]Token

// Clone returns an independent copy of the mapping
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for id, token := range m {
		out[id] = token
	}
	return out
}

// Equal reports whether both mappings hold the same bindings
func (m Mapping) Equal(other Mapping) bool {
	if len(m) != len(other) {
		return false
	}
	for id, token := range m {
		if other[id] != token {
			return false
		}
	}
	return true
}

// Unidentified is the code reported by capture sources for keys without a physical identity
const Unidentified = "Unidentified"

// KeyEvent is a live key press as delivered by a capture source
type KeyEvent struct {
	// Code is the physical key identity, e.g. "KeyE", "ShiftLeft", "Numpad4"
	Code string
	// Key is the logical value produced by the key, e.g. "e", "Shift"
	Key string
}
