// Package key defines terminal key events independently of the
// backend that produced them. The dispatcher consumes these; the
// renderer backend translates tcell events into them.
package key

import "fmt"

// Key identifies a keyboard key. Character keys use KeyRune with the
// character in Event.Rune.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys; the character itself is in
	// Event.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", uint16(k))
	}
}

// Modifier is a bitmask of modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// HasCtrl reports whether Ctrl is held.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt reports whether Alt is held.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// HasShift reports whether Shift is held.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }
