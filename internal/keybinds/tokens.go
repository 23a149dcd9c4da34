package keybinds

import (
	"strings"
)

// Logical modifier groups
const (
	Shift   Token = "Shift"
	Control Token = "Control"
	Alt     Token = "Alt"
	Meta    Token = "Meta"
)

// Named keys
const (
	Escape    Token = "Escape"
	Enter     Token = "Enter"
	Tab       Token = "Tab"
	Space     Token = "Space"
	Backspace Token = "Backspace"
	Delete    Token = "Delete"
	Home      Token = "Home"
	End       Token = "End"
	PageUp    Token = "PageUp"
	PageDown  Token = "PageDown"
	Insert    Token = "Insert"

	ArrowUp    Token = "ArrowUp"
	ArrowDown  Token = "ArrowDown"
	ArrowLeft  Token = "ArrowLeft"
	ArrowRight Token = "ArrowRight"
)

var (
	namedKeys       = []Token{Enter, Tab, Space, Backspace, Delete, Home, End, PageUp, PageDown, Insert}
	arrowKeys       = []Token{ArrowUp, ArrowDown, ArrowLeft, ArrowRight}
	bracketKeys     = []Token{"BracketLeft", "BracketRight"}
	punctuationKeys = []Token{"Comma", "Period", "Slash", "Semicolon", "Quote", "Backquote", "Minus", "Equal", "Backslash"}
)

// aliases collapse alternate spellings and left/right codes onto one token.
// Keys are lower case; lookups are case-insensitive.
var aliases = map[string]Token{
	"shift":        Shift,
	"shiftleft":    Shift,
	"shiftright":   Shift,
	"ctrl":         Control,
	"control":      Control,
	"controlleft":  Control,
	"controlright": Control,
	"alt":          Alt,
	"option":       Alt,
	"altleft":      Alt,
	"altright":     Alt,
	"meta":         Meta,
	"cmd":          Meta,
	"command":      Meta,
	"super":        Meta,
	"metaleft":     Meta,
	"metaright":    Meta,
	"osleft":       Meta,
	"osright":      Meta,
	"esc":          Escape,
	"escape":       Escape,
	"space":        Space,
	"spacebar":     Space,
	" ":            Space,
}

// letterTokens, digitTokens and numpadTokens hold the single-key families
var (
	letterTokens = rangeTokens("Key", 'A', 'Z')
	digitTokens  = rangeTokens("Digit", '0', '9')
	numpadTokens = rangeTokens("Numpad", '0', '9')
)

// whitelist maps the lower-cased spelling of every structurally valid key to its canonical token
var whitelist = func() map[string]Token {
	families := [][]Token{letterTokens, digitTokens, numpadTokens, arrowKeys, namedKeys, bracketKeys, punctuationKeys}

	w := make(map[string]Token)
	for _, family := range families {
		for _, token := range family {
			w[strings.ToLower(string(token))] = token
		}
	}
	return w
}()

func rangeTokens(prefix string, first, last rune) []Token {
	tokens := make([]Token, 0, last-first+1)
	for r := first; r <= last; r++ {
		tokens = append(tokens, Token(prefix+string(r)))
	}
	return tokens
}

// Normalize converts a raw key identifier into its canonical token.
// Aliases are checked first, then the structural whitelist; anything else is rejected.
func Normalize(raw string) (Token, bool) {
	if token, ok := aliases[raw]; ok {
		return token, true
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	if token, ok := aliases[lower]; ok {
		return token, true
	}
	if token, ok := whitelist[lower]; ok {
		return token, true
	}

	return "", false
}

// NormalizeEvent converts a captured key press into a canonical token using its physical identity.
// Events without a resolvable physical key are rejected.
func NormalizeEvent(ev KeyEvent) (Token, bool) {
	code := strings.TrimSpace(ev.Code)
	if code == "" || strings.EqualFold(code, Unidentified) {
		return "", false
	}
	return Normalize(code)
}

// Vocabulary returns every canonical token the normalizer can produce, grouped by family
func Vocabulary() []Token {
	families := [][]Token{
		letterTokens, digitTokens, numpadTokens, arrowKeys, namedKeys,
		bracketKeys, punctuationKeys, {Shift, Control, Alt, Meta, Escape},
	}

	var out []Token
	for _, family := range families {
		out = append(out, family...)
	}
	return out
}
