package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avadine/kyo/internal/engine/buffer"
	"github.com/avadine/kyo/internal/input/key"
	"github.com/avadine/kyo/internal/input/mode"
)

// CommandLine returns the prompt contents, sentinel included, for
// rendering. Empty outside the prompt modes.
func (e *Editor) CommandLine() string {
	if !e.mode.IsPrompt() {
		return ""
	}
	return e.buf.CommandText()
}

// handleCommand edits the ex-style command line.
func (e *Editor) handleCommand(ev key.Event) error {
	switch ev.Key {
	case key.KeyEscape:
		e.leavePrompt()
		return nil
	case key.KeyEnter:
		entry := strings.TrimPrefix(e.buf.CommandText(), ":")
		e.leavePrompt()
		e.cmdHist.add(entry)
		e.persistHistory(historyCommand, entry)
		return e.execCommand(entry)
	case key.KeyUp:
		e.recall(e.cmdHist, true)
		return nil
	case key.KeyDown:
		e.recall(e.cmdHist, false)
		return nil
	}
	e.editPrompt(ev, e.cmdHist)
	return nil
}

// handleFind edits the search pattern and runs it on Enter. Each
// direction keeps its own history ring.
func (e *Editor) handleFind(ev key.Event) error {
	h, kind := e.findHistory()
	switch ev.Key {
	case key.KeyEscape:
		e.leavePrompt()
		return nil
	case key.KeyEnter:
		backward := e.mode == mode.FindBackward
		pat := strings.TrimPrefix(e.buf.CommandText(), string(promptSentinel(e.mode)))
		e.leavePrompt()
		if pat == "" {
			e.notify("empty find query")
			return nil
		}
		h.add(pat)
		e.persistHistory(kind, pat)
		e.search = lastSearch{pattern: pat, backward: backward}
		e.findFrom(e.cur.Pos(), pat, backward)
		return nil
	case key.KeyUp:
		e.recall(h, true)
		return nil
	case key.KeyDown:
		e.recall(h, false)
		return nil
	}
	e.editPrompt(ev, h)
	return nil
}

// findHistory picks the history ring and store bucket for the active
// find direction.
func (e *Editor) findHistory() (*history, string) {
	if e.mode == mode.FindBackward {
		return e.findBackHist, historyFindBack
	}
	return e.findFwdHist, historyFindFwd
}

// editPrompt applies the editing keys shared by the prompt modes.
// Any edit rewinds history navigation to the line being typed.
func (e *Editor) editPrompt(ev key.Event, h *history) {
	switch {
	case ev.Key == key.KeyBackspace:
		pos, err := e.buf.Delete(e.cur.Pos())
		if err != nil {
			return
		}
		e.cur.Go(pos)
		h.reset()
		// Erasing the sentinel abandons the prompt.
		if e.buf.IsCommandEmpty() {
			e.leavePrompt()
		}
	case ev.Key == key.KeyLeft:
		// The sentinel stays to the left of the cursor.
		if e.cur.Pos().Col > 1 {
			e.cur.Left(1)
		}
	case ev.Key == key.KeyRight:
		pos := e.cur.Pos()
		if pos.Col < e.buf.MaxCol(pos) {
			e.cur.Right(1)
		}
	case ev.IsChar():
		pos, err := e.buf.Insert(e.cur.Pos(), ev.Rune)
		if err != nil {
			return
		}
		e.cur.Go(pos)
		h.reset()
	}
}

// recall replaces the prompt with an adjacent history entry. Stepping
// past the newest entry restores an empty prompt.
func (e *Editor) recall(h *history, older bool) {
	var entry string
	var ok bool
	if older {
		entry, ok = h.prev()
		if !ok {
			return
		}
	} else {
		entry, _ = h.next()
	}
	text := string(promptSentinel(e.mode)) + entry
	e.buf.ReplaceCommandText(text)
	e.cur.Go(buffer.LineCol{Col: len([]rune(text))})
}

// leavePrompt restores normal mode and the saved text cursor.
func (e *Editor) leavePrompt() {
	e.buf.ClearCommand()
	e.cmdHist.reset()
	e.findFwdHist.reset()
	e.findBackHist.reset()
	e.setMode(mode.Normal)
}

// persistHistory writes an executed prompt entry through to the
// history store when one is wired.
func (e *Editor) persistHistory(kind, entry string) {
	if e.hist == nil || entry == "" {
		return
	}
	if err := e.hist.Add(kind, entry); err != nil {
		e.notify(fmt.Sprintf("saving history: %v", err))
	}
}

// execCommand runs a submitted command line.
func (e *Editor) execCommand(entry string) error {
	cmd := strings.TrimSpace(entry)
	switch cmd {
	case "":
		return nil
	case "q", "q!":
		return ErrQuit
	case "w":
		e.saveFile()
		return nil
	case "wq", "x":
		if e.saveFile() {
			return ErrQuit
		}
		return nil
	}
	if n, err := strconv.Atoi(cmd); err == nil {
		e.cur.Go(buffer.LineCol{Line: max(0, n-1)})
		return nil
	}
	e.notify(fmt.Sprintf("not an editor command: %s", cmd))
	return nil
}

// saveFile writes the text plane out, reporting success.
func (e *Editor) saveFile() bool {
	if e.save == nil {
		e.notify("no file to write")
		return false
	}
	if err := e.save(e.buf.Text()); err != nil {
		e.notify(fmt.Sprintf("write failed: %v", err))
		return false
	}
	e.notify("written")
	return true
}
