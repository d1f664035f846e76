// Package viewport maps buffer positions to screen coordinates and
// decides when the visible window scrolls to follow the cursor.
package viewport

import "github.com/avadine/kyo/internal/engine/buffer"

// reservedRows are terminal rows at the bottom the text area never
// uses: the status bar and the message/prompt bar.
const reservedRows = 2

// Viewport is the visible window onto the text plane. TopLeft is the
// buffer position rendered at the upper-left corner of the text area;
// the gutter occupies the leftmost columns.
type Viewport struct {
	topLeft buffer.LineCol
	width   int
	height  int
	gutter  int
	margin  int
}

// New creates a viewport for a terminal of the given size. gutter is
// the width of the line-number column; margin is the minimum distance
// the cursor keeps from the top and bottom edges while scrolling.
func New(width, height, gutter, margin int) *Viewport {
	return &Viewport{width: width, height: height, gutter: gutter, margin: margin}
}

// Resize records a new terminal size.
func (v *Viewport) Resize(width, height int) {
	v.width = width
	v.height = height
}

// TopLeft returns the buffer position at the window's upper-left.
func (v *Viewport) TopLeft() buffer.LineCol {
	return v.topLeft
}

// Width returns the full terminal width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the full terminal height.
func (v *Viewport) Height() int {
	return v.height
}

// Gutter returns the width of the line-number column.
func (v *Viewport) Gutter() int {
	return v.gutter
}

// TextHeight returns the number of rows available for buffer text.
func (v *Viewport) TextHeight() int {
	return max(1, v.height-reservedRows)
}

// TextWidth returns the number of columns available for buffer text.
func (v *Viewport) TextWidth() int {
	return max(1, v.width-v.gutter)
}

// BottomLine returns the last buffer line inside the window.
func (v *Viewport) BottomLine() int {
	return v.topLeft.Line + v.TextHeight() - 1
}

// MoveUp scrolls n lines toward the start of the buffer.
func (v *Viewport) MoveUp(n int) {
	v.topLeft.Line = max(0, v.topLeft.Line-n)
}

// MoveDown scrolls n lines toward the end of the buffer.
func (v *Viewport) MoveDown(n int) {
	v.topLeft.Line += n
}

// ScrollTop scrolls so the given line sits at the top edge.
func (v *Viewport) ScrollTop(line int) {
	v.topLeft.Line = max(0, line)
}

// ScrollBottom scrolls so the given line sits at the bottom edge.
func (v *Viewport) ScrollBottom(line int) {
	v.topLeft.Line = max(0, line-v.TextHeight()+1)
}

// Center scrolls so the given line sits in the middle of the text
// area, or as close as the start of the buffer allows.
func (v *Viewport) Center(line int) {
	v.topLeft.Line = max(0, line-v.TextHeight()/2)
}

// Contains reports whether pos is inside the visible text area.
func (v *Viewport) Contains(pos buffer.LineCol) bool {
	return pos.Line >= v.topLeft.Line && pos.Line <= v.BottomLine() &&
		pos.Col >= v.topLeft.Col && pos.Col < v.topLeft.Col+v.TextWidth()
}

// ViewCursor translates a buffer position into terminal coordinates,
// accounting for the scroll offset and the gutter.
func (v *Viewport) ViewCursor(pos buffer.LineCol) (x, y int) {
	return pos.Col - v.topLeft.Col + v.gutter, pos.Line - v.topLeft.Line
}

// Control scrolls the window to follow the cursor. A cursor still
// inside the window is nudged the minimum amount needed to keep it
// margin lines from the vertical edges; a cursor that left the window
// re-centers it. Near the start of the buffer the margin gives way;
// line 0 never scrolls below the top edge.
func (v *Viewport) Control(cur buffer.LineCol) {
	switch {
	case cur.Line < v.topLeft.Line || cur.Line > v.BottomLine():
		// A jump that leaves the window re-centers on the cursor.
		v.Center(cur.Line)
	case cur.Line < v.topLeft.Line+v.margin:
		v.topLeft.Line = max(0, cur.Line-v.margin)
	case cur.Line > v.BottomLine()-v.margin:
		v.topLeft.Line = max(0, cur.Line+v.margin-v.TextHeight()+1)
	}

	if cur.Col < v.topLeft.Col {
		v.topLeft.Col = cur.Col
	} else if cur.Col >= v.topLeft.Col+v.TextWidth() {
		v.topLeft.Col = cur.Col - v.TextWidth() + 1
	}
}
