// Package cursor tracks the caret position, the anchor used by
// selections, and the saved text position while a prompt mode owns
// the cursor.
package cursor

import (
	"github.com/avadine/kyo/internal/engine/buffer"
	"github.com/avadine/kyo/internal/input/mode"
)

// Cursor is a position within the active plane plus the bookkeeping
// mode changes need. Motions only clamp toward the origin; clamping
// against buffer extents happens once per dispatch cycle, after the
// buffer has settled.
type Cursor struct {
	pos  buffer.LineCol
	prev buffer.LineCol

	// anchor is the fixed end of a selection, and doubles as the
	// saved text position while a prompt mode parks the cursor on
	// the command plane.
	anchor buffer.LineCol
}

// New returns a cursor at the origin.
func New() *Cursor {
	return &Cursor{}
}

// Pos returns the current position.
func (c *Cursor) Pos() buffer.LineCol {
	return c.pos
}

// PrevPos returns the position before the most recent Go.
func (c *Cursor) PrevPos() buffer.LineCol {
	return c.prev
}

// Anchor returns the selection anchor, or the saved text position
// while a prompt mode is active.
func (c *Cursor) Anchor() buffer.LineCol {
	return c.anchor
}

// Go moves the cursor to an absolute position, remembering where it
// came from.
func (c *Cursor) Go(to buffer.LineCol) {
	c.prev = c.pos
	c.pos = to
}

// Up moves n lines toward the first line, stopping at it.
func (c *Cursor) Up(n int) {
	c.Go(buffer.LineCol{Line: max(0, c.pos.Line-n), Col: c.pos.Col})
}

// Down moves n lines away from the first line. The dispatcher clamps
// against the last line afterward.
func (c *Cursor) Down(n int) {
	c.Go(buffer.LineCol{Line: c.pos.Line + n, Col: c.pos.Col})
}

// Left moves n columns toward the start of the line, stopping at it.
func (c *Cursor) Left(n int) {
	c.Go(buffer.LineCol{Line: c.pos.Line, Col: max(0, c.pos.Col-n)})
}

// Right moves n columns toward the end of the line. The dispatcher
// clamps against the line length afterward.
func (c *Cursor) Right(n int) {
	c.Go(buffer.LineCol{Line: c.pos.Line, Col: c.pos.Col + n})
}

// ModChange adjusts cursor state for a mode transition. Entering a
// selection mode drops the anchor at the current position (line start
// for line-wise selections). Entering a prompt mode saves the text
// position and parks the cursor at the prompt origin; leaving one
// restores it.
func (c *Cursor) ModChange(from, to mode.Mode) {
	switch {
	case to == mode.Visual:
		c.anchor = c.pos
	case to == mode.VisualLine:
		c.anchor = buffer.LineCol{Line: c.pos.Line}
		c.pos.Col = 0
	case to.IsPrompt() && !from.IsPrompt():
		c.anchor = c.pos
		c.Go(buffer.LineCol{})
	case !to.IsPrompt() && from.IsPrompt():
		c.Go(c.anchor)
	}
}
