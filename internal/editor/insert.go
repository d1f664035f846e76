package editor

import (
	"errors"

	"github.com/avadine/kyo/internal/engine/buffer"
	"github.com/avadine/kyo/internal/input/key"
	"github.com/avadine/kyo/internal/input/mode"
)

// tabWidth is how many spaces a Tab inserts.
const tabWidth = 4

// handleInsert types characters into the active plane.
func (e *Editor) handleInsert(ev key.Event) error {
	switch ev.Key {
	case key.KeyEscape:
		e.setMode(mode.Normal)
		return nil
	case key.KeyEnter:
		if pos, err := e.buf.InsertNewline(e.cur.Pos()); err == nil {
			e.cur.Go(pos)
		}
		return nil
	case key.KeyBackspace:
		pos, err := e.buf.Delete(e.cur.Pos())
		if err != nil {
			// Backspace at the start of the buffer has nothing to
			// remove; swallow it.
			if !errors.Is(err, buffer.ErrNothingToDelete) {
				e.notify(err.Error())
			}
			return nil
		}
		e.cur.Go(pos)
		return nil
	case key.KeyTab:
		pos := e.cur.Pos()
		for i := 0; i < tabWidth; i++ {
			next, err := e.buf.Insert(pos, ' ')
			if err != nil {
				return nil
			}
			pos = next
		}
		e.cur.Go(pos)
		return nil
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight, key.KeyHome, key.KeyEnd:
		e.motion(ev)
		return nil
	}

	if !ev.IsChar() {
		return nil
	}
	pos, err := e.buf.Insert(e.cur.Pos(), ev.Rune)
	if err != nil {
		e.notify(err.Error())
		return nil
	}
	e.cur.Go(pos)
	return nil
}
