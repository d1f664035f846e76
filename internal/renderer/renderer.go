// Package renderer paints the editor state onto a terminal screen:
// the text window with its line-number gutter, the visual selection,
// the status bar and the message/prompt bar.
package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/avadine/kyo/internal/editor"
	"github.com/avadine/kyo/internal/engine/buffer"
	"github.com/avadine/kyo/internal/engine/viewport"
)

// Screen is the drawing surface the renderer needs. The terminal
// backend satisfies it; tests use an in-memory grid.
type Screen interface {
	Size() (int, int)
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	ShowCursor(x, y int)
	Show()
}

// Renderer draws frames. It holds no state between frames beyond its
// styles and the session title.
type Renderer struct {
	screen Screen
	title  string

	styleText      tcell.Style
	styleGutter    tcell.Style
	styleCursorNum tcell.Style
	styleSelection tcell.Style
	styleStatus    tcell.Style
	styleMessage   tcell.Style
}

// New creates a renderer over the given screen.
func New(screen Screen) *Renderer {
	def := tcell.StyleDefault
	return &Renderer{
		screen:         screen,
		styleText:      def,
		styleGutter:    def.Foreground(tcell.ColorGray),
		styleCursorNum: def.Bold(true),
		styleSelection: def.Reverse(true),
		styleStatus:    def.Reverse(true),
		styleMessage:   def,
	}
}

// SetTitle sets the name shown in the status bar, normally the file
// being edited.
func (r *Renderer) SetTitle(title string) {
	r.title = title
}

// Render paints one frame. message appears in the bottom bar unless a
// prompt is open, in which case the prompt line wins.
func (r *Renderer) Render(e *editor.Editor, message string) {
	r.screen.Clear()

	view := e.Viewport()
	lines := e.Buffer().Text()
	top := view.TopLeft()
	curLine := e.TextPos().Line
	sel, hasSel := e.Selection()

	for row := 0; row < view.TextHeight(); row++ {
		lineno := top.Line + row
		if lineno >= len(lines) {
			r.drawRune(0, row, '~', r.styleGutter)
			continue
		}
		r.drawGutter(row, lineno, curLine, view.Gutter())
		r.drawLine(row, lineno, lines[lineno], top.Col, view, sel, hasSel)
	}

	r.drawStatus(e)
	r.drawMessageBar(e, message)
	r.placeCursor(e)
	r.screen.Show()
}

// drawGutter writes a relative line number, right-aligned, with the
// absolute number on the cursor's own line.
func (r *Renderer) drawGutter(row, lineno, curLine, width int) {
	if width == 0 {
		return
	}
	n := lineno - curLine
	style := r.styleGutter
	if n < 0 {
		n = -n
	}
	if lineno == curLine {
		n = lineno + 1
		style = r.styleCursorNum
	}
	num := fmt.Sprintf("%*d ", width-1, n)
	for i, ch := range num {
		if i >= width {
			break
		}
		r.drawRune(i, row, ch, style)
	}
}

func (r *Renderer) drawLine(row, lineno int, line string, leftCol int, view *viewport.Viewport, sel buffer.Selection, hasSel bool) {
	runes := []rune(line)
	for i := 0; i < view.TextWidth(); i++ {
		col := leftCol + i
		if col >= len(runes) {
			break
		}
		style := r.styleText
		if hasSel && inSelection(sel, buffer.LineCol{Line: lineno, Col: col}) {
			style = r.styleSelection
		}
		r.drawRune(view.Gutter()+i, row, runes[col], style)
	}
}

// inSelection reports whether a cell falls inside the selection,
// inclusive of both endpoints.
func inSelection(sel buffer.Selection, pos buffer.LineCol) bool {
	if pos.Line < sel.Start.Line || pos.Line > sel.End.Line {
		return false
	}
	if sel.LineInSelection(pos.Line) {
		return true
	}
	if pos.Line == sel.Start.Line && pos.Col < sel.Start.Col {
		return false
	}
	if pos.Line == sel.End.Line && pos.Col > sel.End.Col {
		return false
	}
	return true
}

// drawStatus paints the mode, title and cursor position on the
// second-to-last row.
func (r *Renderer) drawStatus(e *editor.Editor) {
	width, height := r.screen.Size()
	row := height - 2
	if row < 0 {
		return
	}
	pos := e.TextPos()
	left := fmt.Sprintf(" %s ", e.Mode())
	if r.title != "" {
		left += fmt.Sprintf(" %s ", r.title)
	}
	right := fmt.Sprintf(" %s ", pos)

	for x := 0; x < width; x++ {
		r.drawRune(x, row, ' ', r.styleStatus)
	}
	r.drawText(0, row, left, r.styleStatus)
	r.drawText(max(0, width-len([]rune(right))), row, right, r.styleStatus)
}

// drawMessageBar paints the bottom row: the open prompt, or the most
// recent notification.
func (r *Renderer) drawMessageBar(e *editor.Editor, message string) {
	_, height := r.screen.Size()
	row := height - 1
	if row < 0 {
		return
	}
	text := message
	if prompt := e.CommandLine(); prompt != "" {
		text = prompt
	}
	r.drawText(0, row, text, r.styleMessage)
}

// placeCursor positions the terminal cursor on the text area or the
// prompt line.
func (r *Renderer) placeCursor(e *editor.Editor) {
	_, height := r.screen.Size()
	if e.Mode().IsPrompt() {
		r.screen.ShowCursor(e.Pos().Col, height-1)
		return
	}
	x, y := e.Viewport().ViewCursor(e.Pos())
	r.screen.ShowCursor(x, y)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	for i, ch := range []rune(text) {
		if x+i >= width {
			break
		}
		r.drawRune(x+i, y, ch, style)
	}
}

func (r *Renderer) drawRune(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, y, ch, style)
}
