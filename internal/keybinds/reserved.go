package keybinds

// MapToggle is wired to the map overlay and can never be rebound
const MapToggle Token = "KeyM"

// reservedTokens can never be assigned to any action
var reservedTokens = func() []Token {
	tokens := []Token{Escape}
	tokens = append(tokens, digitTokens...)
	tokens = append(tokens, numpadTokens...)
	return append(tokens, MapToggle)
}()

var reservedCodes = func() map[string]struct{} {
	codes := make(map[string]struct{}, len(reservedTokens))
	for _, token := range reservedTokens {
		for _, code := range PhysicalCodes(token) {
			codes[code] = struct{}{}
		}
	}
	return codes
}()

// ReservedSet returns the tokens that can never be bound
func ReservedSet() []Token {
	out := make([]Token, len(reservedTokens))
	copy(out, reservedTokens)
	return out
}

// IsReserved reports whether any physical key behind token is reserved
func IsReserved(token Token) bool {
	for _, code := range PhysicalCodes(token) {
		if _, ok := reservedCodes[code]; ok {
			return true
		}
	}
	return false
}

// FindConflict returns the first action, other than id, whose binding occupies candidate.
// Actions are scanned in registry order so the reported owner is stable.
func FindConflict(m Mapping, id ActionID, candidate Token) (ActionID, bool) {
	for _, action := range registry {
		if action.ID == id {
			continue
		}
		bound, ok := m[action.ID]
		if ok && overlaps(bound, candidate) {
			return action.ID, true
		}
	}
	return "", false
}
