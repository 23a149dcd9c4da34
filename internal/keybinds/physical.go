package keybinds

// logicalGroups lists the physical left/right codes behind each logical modifier token
var logicalGroups = map[Token][]string{
	Shift:   {"ShiftLeft", "ShiftRight"},
	Control: {"ControlLeft", "ControlRight"},
	Alt:     {"AltLeft", "AltRight"},
	Meta:    {"MetaLeft", "MetaRight"},
}

// IsLogical reports whether token stands for more than one physical key
func IsLogical(token Token) bool {
	_, ok := logicalGroups[token]
	return ok
}

// PhysicalCodes expands a token into the physical key identities it covers.
// The result is never empty.
func PhysicalCodes(token Token) []string {
	if codes, ok := logicalGroups[token]; ok {
		out := make([]string, len(codes))
		copy(out, codes)
		return out
	}
	return []string{string(token)}
}

// Matches reports whether a key press activates the binding token
func Matches(token Token, ev KeyEvent) bool {
	for _, code := range PhysicalCodes(token) {
		if code == ev.Code {
			return true
		}
	}
	return false
}

// overlaps reports whether two tokens share at least one physical key
func overlaps(a, b Token) bool {
	if a == b {
		return true
	}
	for _, left := range PhysicalCodes(a) {
		for _, right := range PhysicalCodes(b) {
			if left == right {
				return true
			}
		}
	}
	return false
}
