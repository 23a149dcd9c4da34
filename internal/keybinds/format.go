package keybinds

import (
	"strings"
)

// displayNames holds labels for named and logical keys
var displayNames = map[Token]string{
	Shift:   "SHIFT",
	Control: "CTRL",
	Alt:     "ALT",
	Meta:    "META",

	Escape:    "ESC",
	Enter:     "ENTER",
	Tab:       "TAB",
	Space:     "SPACE",
	Backspace: "BACKSPACE",
	Delete:    "DEL",
	Home:      "HOME",
	End:       "END",
	PageUp:    "PGUP",
	PageDown:  "PGDN",
	Insert:    "INS",

	ArrowUp:    "UP",
	ArrowDown:  "DOWN",
	ArrowLeft:  "LEFT",
	ArrowRight: "RIGHT",

	"BracketLeft":  "[",
	"BracketRight": "]",
	"Comma":        ",",
	"Period":       ".",
	"Slash":        "/",
	"Semicolon":    ";",
	"Quote":        "'",
	"Backquote":    "`",
	"Minus":        "-",
	"Equal":        "=",
	"Backslash":    "\\",
}

// Format renders a token as a short human-readable label
func Format(token Token) string {
	s := string(token)

	if suffix, ok := singleCharSuffix(s, "Key", 'A', 'Z'); ok {
		return suffix
	}
	if suffix, ok := singleCharSuffix(s, "Digit", '0', '9'); ok {
		return suffix
	}
	if suffix, ok := singleCharSuffix(s, "Numpad", '0', '9'); ok {
		return "NUM " + suffix
	}
	if name, ok := displayNames[token]; ok {
		return name
	}

	return strings.ToUpper(s)
}

func singleCharSuffix(s, prefix string, lo, hi byte) (string, bool) {
	if len(s) != len(prefix)+1 || !strings.HasPrefix(s, prefix) {
		return "", false
	}
	c := s[len(prefix)]
	if c < lo || c > hi {
		return "", false
	}
	return s[len(prefix):], true
}
