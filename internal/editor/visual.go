package editor

import (
	"github.com/avadine/kyo/internal/engine/buffer"
	"github.com/avadine/kyo/internal/input/key"
	"github.com/avadine/kyo/internal/input/mode"
)

// handleVisual extends the selection with motions and resolves the
// operators that consume it.
func (e *Editor) handleVisual(ev key.Event) error {
	if ev.Key == key.KeyEscape {
		e.pending.reset()
		e.count.reset()
		e.setMode(mode.Normal)
		return nil
	}

	if e.pending.active {
		e.handlePendingKey(ev)
		return nil
	}

	if ev.IsRune() && (ev.Rune >= '1' && ev.Rune <= '9' || ev.Rune == '0' && e.count.active) {
		e.count.push(ev.Rune)
		return nil
	}
	if e.motion(ev) {
		e.count.reset()
		return nil
	}
	if !ev.IsRune() {
		return nil
	}

	switch ev.Rune {
	case 'v':
		if e.mode == mode.Visual {
			e.setMode(mode.Normal)
		} else {
			e.setMode(mode.Visual)
		}
	case 'V':
		if e.mode == mode.VisualLine {
			e.setMode(mode.Normal)
		} else {
			e.setMode(mode.VisualLine)
		}
	case 'y':
		e.yankSelection()
	case 'd', 'x':
		e.deleteSelection()
	case '"':
		e.pending.set('"')
	}
	if !e.pending.active {
		e.count.reset()
	}
	return nil
}

// selectionSpan converts the visual selection into the half-open
// range the buffer operates on, plus whether it is line-wise.
func (e *Editor) selectionSpan() (from, to buffer.LineCol, linewise bool, ok bool) {
	sel, ok := e.Selection()
	if !ok {
		return buffer.LineCol{}, buffer.LineCol{}, false, false
	}
	linewise = e.mode == mode.VisualLine
	from, to = sel.Start, sel.End
	if !linewise {
		to.Col = min(to.Col+1, e.buf.MaxCol(to))
	}
	return from, to, linewise, true
}

// yankSelection copies the selection into the selected register and
// drops back to normal mode.
func (e *Editor) yankSelection() {
	from, to, linewise, ok := e.selectionSpan()
	if !ok {
		return
	}
	text, err := e.buf.GetText(from, to)
	if err != nil {
		e.notify(err.Error())
		return
	}
	if linewise {
		text += "\n"
	}
	if err := e.regs.Yank(e.takeRegName(), text); err != nil {
		e.notify(err.Error())
	}
	e.setMode(mode.Normal)
	e.cur.Go(from)
}

// deleteSelection removes the selection, records it, and drops back
// to normal mode.
func (e *Editor) deleteSelection() {
	from, to, linewise, ok := e.selectionSpan()
	if !ok {
		return
	}
	text, err := e.buf.GetText(from, to)
	if err != nil {
		e.notify(err.Error())
		return
	}
	if linewise {
		text += "\n"
	}
	if err := e.buf.DeleteSelection(from, to); err != nil {
		e.notify(err.Error())
		return
	}
	e.recordDeleted(text)
	e.setMode(mode.Normal)
	e.cur.Go(from)
}
