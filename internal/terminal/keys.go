package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	keybinds "github.com/inference-gateway/keybinds/internal/keybinds"
)

// specialKeys maps non-character terminal keys to physical codes and key values
var specialKeys = map[tcell.Key]keybinds.KeyEvent{
	tcell.KeyEnter:      {Code: "Enter", Key: "Enter"},
	tcell.KeyTab:        {Code: "Tab", Key: "Tab"},
	tcell.KeyBacktab:    {Code: "Tab", Key: "Tab"},
	tcell.KeyBackspace:  {Code: "Backspace", Key: "Backspace"},
	tcell.KeyBackspace2: {Code: "Backspace", Key: "Backspace"},
	tcell.KeyDelete:     {Code: "Delete", Key: "Delete"},
	tcell.KeyHome:       {Code: "Home", Key: "Home"},
	tcell.KeyEnd:        {Code: "End", Key: "End"},
	tcell.KeyPgUp:       {Code: "PageUp", Key: "PageUp"},
	tcell.KeyPgDn:       {Code: "PageDown", Key: "PageDown"},
	tcell.KeyInsert:     {Code: "Insert", Key: "Insert"},
	tcell.KeyUp:         {Code: "ArrowUp", Key: "ArrowUp"},
	tcell.KeyDown:       {Code: "ArrowDown", Key: "ArrowDown"},
	tcell.KeyLeft:       {Code: "ArrowLeft", Key: "ArrowLeft"},
	tcell.KeyRight:      {Code: "ArrowRight", Key: "ArrowRight"},
	tcell.KeyEscape:     {Code: "Escape", Key: "Escape"},
}

// runeCodes maps printable characters, shifted or not, to the US-layout key that produces them
var runeCodes = map[rune]string{
	' ': "Space",

	',': "Comma", '<': "Comma",
	'.': "Period", '>': "Period",
	'/': "Slash", '?': "Slash",
	';': "Semicolon", ':': "Semicolon",
	'\'': "Quote", '"': "Quote",
	'`': "Backquote", '~': "Backquote",
	'-': "Minus", '_': "Minus",
	'=': "Equal", '+': "Equal",
	'\\': "Backslash", '|': "Backslash",
	'[': "BracketLeft", '{': "BracketLeft",
	']': "BracketRight", '}': "BracketRight",

	')': "Digit0", '!': "Digit1", '@': "Digit2", '#': "Digit3", '$': "Digit4",
	'%': "Digit5", '^': "Digit6", '&': "Digit7", '*': "Digit8", '(': "Digit9",
}

// EventFromTcell translates a terminal key press into a KeyEvent.
// Terminals deliver characters rather than scan codes, so the physical code is
// inferred from a US layout. Modifier keys pressed alone never reach the
// terminal, and keys without a known physical identity report keybinds.Unidentified.
func EventFromTcell(ev *tcell.EventKey) keybinds.KeyEvent {
	if ev == nil {
		return keybinds.KeyEvent{Code: keybinds.Unidentified, Key: keybinds.Unidentified}
	}

	if ev.Key() != tcell.KeyRune {
		if known, ok := specialKeys[ev.Key()]; ok {
			return known
		}
		return keybinds.KeyEvent{Code: keybinds.Unidentified, Key: ev.Name()}
	}

	r := ev.Rune()
	key := string(r)

	switch {
	case r >= 'a' && r <= 'z':
		return keybinds.KeyEvent{Code: "Key" + strings.ToUpper(key), Key: key}
	case r >= 'A' && r <= 'Z':
		return keybinds.KeyEvent{Code: "Key" + key, Key: key}
	case r >= '0' && r <= '9':
		return keybinds.KeyEvent{Code: "Digit" + key, Key: key}
	}

	if code, ok := runeCodes[r]; ok {
		return keybinds.KeyEvent{Code: code, Key: key}
	}
	return keybinds.KeyEvent{Code: keybinds.Unidentified, Key: key}
}
