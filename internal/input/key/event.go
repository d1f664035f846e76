package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune reports whether this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar reports whether this is a printable character with no Ctrl
// or Alt held. Shift alone does not count; it is already folded into
// the rune.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && e.Modifiers&(ModCtrl|ModAlt) == 0
}

// IsCtrl reports whether this is Ctrl plus the given character.
func (e Event) IsCtrl(r rune) bool {
	return e.Modifiers.HasCtrl() && e.Key == KeyRune && e.Rune == r
}

// String returns a canonical representation such as "a", "C-d" or
// "Enter". Used in logs.
func (e Event) String() string {
	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			parts = append(parts, "Space")
		} else {
			parts = append(parts, string(e.Rune))
		}
	} else {
		parts = append(parts, e.Key.String())
	}
	return strings.Join(parts, "-")
}
