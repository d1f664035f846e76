// Package mode enumerates the editor's modal states and maps each one
// to the buffer plane its input edits.
package mode

import "github.com/avadine/kyo/internal/engine/buffer"

// Mode is a modal input state. Every key event is interpreted by the
// handler for the current mode.
type Mode uint8

const (
	// Normal interprets keys as motions and operators.
	Normal Mode = iota

	// Insert types characters into the text plane.
	Insert

	// Visual extends a character-wise selection with motions.
	Visual

	// VisualLine extends a line-wise selection with motions.
	VisualLine

	// FindForward edits a search pattern applied below the cursor.
	FindForward

	// FindBackward edits a search pattern applied above the cursor.
	FindBackward

	// Command edits an ex-style command on the prompt line.
	Command
)

// String returns the mode's status-bar name.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case VisualLine:
		return "VISUAL LINE"
	case FindForward, FindBackward:
		return "FIND"
	case Command:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Plane returns the buffer plane this mode's input operates on.
// Prompt-driven modes share the command plane; everything else edits
// the text plane.
func (m Mode) Plane() buffer.Plane {
	switch m {
	case FindForward, FindBackward, Command:
		return buffer.PlaneCommand
	default:
		return buffer.PlaneText
	}
}

// IsVisual reports whether m is one of the selection modes.
func (m Mode) IsVisual() bool {
	return m == Visual || m == VisualLine
}

// IsPrompt reports whether m reads a line on the command plane.
func (m Mode) IsPrompt() bool {
	return m.Plane() == buffer.PlaneCommand
}
