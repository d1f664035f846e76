package editor

import (
	"fmt"
	"strings"

	"github.com/avadine/kyo/internal/engine/buffer"
	"github.com/avadine/kyo/internal/engine/pattern"
	"github.com/avadine/kyo/internal/input/key"
	"github.com/avadine/kyo/internal/input/mode"
)

// handleNormal interprets keys as motions, operators and mode
// switches.
func (e *Editor) handleNormal(ev key.Event) error {
	if ev.Key == key.KeyEscape {
		if e.pending.active || e.count.active || e.regName != 0 {
			e.pending.reset()
			e.count.reset()
			e.regName = 0
			return nil
		}
		if e.cfg.QuitOnEsc {
			return ErrQuit
		}
		return nil
	}

	if e.pending.active {
		e.handlePendingKey(ev)
		return nil
	}

	switch {
	case ev.IsCtrl('d'):
		e.scrollHalf(1)
		e.count.reset()
		return nil
	case ev.IsCtrl('u'):
		e.scrollHalf(-1)
		e.count.reset()
		return nil
	case ev.IsCtrl('r'):
		e.redo()
		e.count.reset()
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
	case 'i':
		e.setMode(mode.Insert)
	case 'I':
		e.motionFirstNonBlank()
		e.setMode(mode.Insert)
	case 'a':
		e.cur.Right(1)
		e.setMode(mode.Insert)
	case 'A':
		e.motionLineEnd()
		e.setMode(mode.Insert)
	case 'o':
		e.openLineBelow()
	case 'O':
		e.openLineAbove()
	case 'v':
		e.setMode(mode.Visual)
	case 'V':
		e.setMode(mode.VisualLine)
	case ':':
		e.enterPrompt(mode.Command)
	case '/':
		e.enterPrompt(mode.FindForward)
	case '?':
		e.enterPrompt(mode.FindBackward)
	case 'x':
		e.deleteUnderCursor()
	case 'X':
		e.deleteBeforeCursor()
	case 'p':
		e.paste()
	case 'u':
		e.undo()
	case 'n':
		e.repeatSearch(false)
	case 'N':
		e.repeatSearch(true)
	case 'd', 'g', 'y', 'z', 'r', 't', 'T', 'f', 'F', '"':
		e.pending.set(ev.Rune)
	}
	// A count only carries into an operator still waiting for its
	// second key; everything else either spent it or ignores it.
	if !e.pending.active {
		e.count.reset()
	}
	return nil
}

// handlePendingKey resolves the second key of a two-key command.
func (e *Editor) handlePendingKey(ev key.Event) {
	op := e.pending.take()
	if !ev.IsRune() {
		e.count.reset()
		return
	}
	arg := ev.Rune

	switch op {
	case 'd':
		if arg == 'd' {
			e.deleteLines(e.count.take())
		} else if arg == 'w' {
			e.deleteWord()
		}
	case 'y':
		if arg == 'y' {
			e.yankLines(e.count.take())
		}
	case 'g':
		if arg == 'g' {
			line := 0
			if n, ok := e.count.peek(); ok {
				e.count.take()
				line = n - 1
			}
			e.cur.Go(buffer.LineCol{Line: max(0, line), Col: e.cur.Pos().Col})
		}
	case 'z':
		switch arg {
		case 'z':
			e.view.Center(e.cur.Pos().Line)
		case 't':
			e.view.ScrollTop(e.cur.Pos().Line)
		case 'b':
			e.view.ScrollBottom(e.cur.Pos().Line)
		}
	case 'r':
		e.replaceUnderCursor(arg)
	case 'f':
		e.charSearch(arg, false, false)
	case 'F':
		e.charSearch(arg, true, false)
	case 't':
		e.charSearch(arg, false, true)
	case 'T':
		e.charSearch(arg, true, true)
	case '"':
		if arg >= 'a' && arg <= 'z' {
			e.regName = arg
		} else {
			e.notify(fmt.Sprintf("invalid register: %c", arg))
		}
	}
	// The register prefix passes a count along to the command that
	// follows it; a resolved command is done with its count.
	if op != '"' {
		e.count.reset()
	}
}

// scrollHalf moves the cursor a configured jump in the given
// direction and re-centers the window on it.
func (e *Editor) scrollHalf(dir int) {
	if dir > 0 {
		e.cur.Down(e.cfg.ScrollJump)
	} else {
		e.cur.Up(e.cfg.ScrollJump)
	}
	e.clampCursor()
	e.view.Center(e.cur.Pos().Line)
}

// openLineBelow splits at the end of the current line and enters
// insert mode on the fresh one.
func (e *Editor) openLineBelow() {
	pos := e.cur.Pos()
	next, err := e.buf.InsertNewline(buffer.LineCol{Line: pos.Line, Col: e.buf.MaxCol(pos)})
	if err != nil {
		return
	}
	e.cur.Go(next)
	e.setMode(mode.Insert)
}

// openLineAbove splits at the start of the current line, leaving an
// empty line in its place, and enters insert mode there.
func (e *Editor) openLineAbove() {
	pos := e.cur.Pos()
	if _, err := e.buf.InsertNewline(buffer.LineCol{Line: pos.Line}); err != nil {
		return
	}
	e.cur.Go(buffer.LineCol{Line: pos.Line})
	e.setMode(mode.Insert)
}

// deleteUnderCursor removes count characters starting at the cursor,
// bounded by the end of the line, and records them.
func (e *Editor) deleteUnderCursor() {
	n := e.count.take()
	pos := e.cur.Pos()
	end := min(pos.Col+n, e.buf.MaxCol(pos))
	if end <= pos.Col {
		return
	}
	to := buffer.LineCol{Line: pos.Line, Col: end}
	text, err := e.buf.GetText(pos, to)
	if err != nil {
		return
	}
	// Backspace after the span keeps a lone character's line alive.
	for i := end; i > pos.Col; i-- {
		if _, err := e.buf.Delete(buffer.LineCol{Line: pos.Line, Col: i}); err != nil {
			return
		}
	}
	e.recordDeleted(text)
}

// deleteBeforeCursor removes count characters before the cursor,
// never crossing the start of the line.
func (e *Editor) deleteBeforeCursor() {
	for n := e.count.take(); n > 0; n-- {
		pos := e.cur.Pos()
		if pos.Col == 0 {
			return
		}
		next, err := e.buf.Delete(pos)
		if err != nil {
			return
		}
		e.cur.Go(next)
	}
}

// deleteLines removes count whole lines from the cursor down,
// recording them line-wise.
func (e *Editor) deleteLines(n int) {
	pos := e.cur.Pos()
	last := min(pos.Line+n-1, e.buf.MaxLine())
	lines, err := e.buf.Window(buffer.LineCol{Line: pos.Line}, buffer.LineCol{Line: last})
	if err != nil {
		return
	}
	for i := pos.Line; i <= last; i++ {
		if err := e.buf.DeleteLine(pos.Line); err != nil {
			return
		}
	}
	e.recordDeleted(strings.Join(lines, "\n") + "\n")
	e.cur.Go(buffer.LineCol{Line: pos.Line})
}

// deleteWord removes from the cursor to the next word boundary.
func (e *Editor) deleteWord() {
	e.count.take()
	from := e.cur.Pos()
	e.motionWord()
	to := e.cur.Pos()
	e.cur.Go(from)
	if !from.Before(to) {
		return
	}
	text, err := e.buf.GetText(from, to)
	if err != nil {
		return
	}
	if err := e.buf.DeleteSelection(from, to); err != nil {
		return
	}
	e.recordDeleted(text)
}

// yankLines copies count whole lines into the selected register.
func (e *Editor) yankLines(n int) {
	pos := e.cur.Pos()
	last := min(pos.Line+n-1, e.buf.MaxLine())
	lines, err := e.buf.Window(buffer.LineCol{Line: pos.Line}, buffer.LineCol{Line: last})
	if err != nil {
		return
	}
	if err := e.regs.Yank(e.takeRegName(), strings.Join(lines, "\n")+"\n"); err != nil {
		e.notify(err.Error())
	}
}

// recordDeleted routes removed text to the selected named register,
// or onto the numbered ring.
func (e *Editor) recordDeleted(text string) {
	if name := e.takeRegName(); name != 0 {
		if err := e.regs.Yank(name, text); err != nil {
			e.notify(err.Error())
		}
		return
	}
	e.regs.Push(text)
}

// paste inserts register contents after the cursor. Text ending in a
// newline is treated line-wise and opens below the current line.
func (e *Editor) paste() {
	text, err := e.regs.Get(e.takeRegName())
	if err != nil {
		e.notify(err.Error())
		return
	}
	pos := e.cur.Pos()
	if strings.HasSuffix(text, "\n") {
		next, err := e.buf.InsertText(pos, strings.TrimSuffix(text, "\n"), true)
		if err != nil {
			return
		}
		e.cur.Go(next)
		return
	}
	at := buffer.LineCol{Line: pos.Line, Col: min(pos.Col+1, e.buf.MaxCol(pos))}
	end, err := e.buf.InsertText(at, text, false)
	if err != nil {
		return
	}
	e.cur.Go(buffer.LineCol{Line: end.Line, Col: max(0, end.Col-1)})
}

// replaceUnderCursor overwrites count characters with copies of r.
func (e *Editor) replaceUnderCursor(r rune) {
	n := e.count.take()
	pos := e.cur.Pos()
	if pos.Col+n > e.buf.MaxCol(pos) {
		e.notify(fmt.Sprintf("cannot replace %d characters here", n))
		return
	}
	to := buffer.LineCol{Line: pos.Line, Col: pos.Col + n}
	if err := e.buf.Replace(pos, to, strings.Repeat(string(r), n)); err != nil {
		e.notify(err.Error())
	}
}

// charSearch implements f, F, t and T: jump to (or just short of) the
// next occurrence of a character.
func (e *Editor) charSearch(r rune, backward, till bool) {
	pos := e.cur.Pos()
	hit := pos
	var err error
	for n := e.count.take(); n > 0; n-- {
		if backward {
			hit, err = e.buf.RFind(pattern.Char(r), pos)
		} else {
			hit, err = e.buf.Find(pattern.Char(r), buffer.LineCol{Line: pos.Line, Col: pos.Col + 1})
		}
		if err != nil {
			e.notify(fmt.Sprintf("character not found: %c", r))
			return
		}
		pos = hit
	}
	if till {
		if backward {
			hit.Col++
		} else {
			hit.Col = max(0, hit.Col-1)
		}
	}
	e.cur.Go(hit)
}

// undo rolls back the last text edit.
func (e *Editor) undo() {
	pos, err := e.buf.Undo(e.cur.Pos())
	if err != nil {
		e.notify("already at oldest change")
		return
	}
	e.cur.Go(pos)
}

// redo reapplies the last undone edit.
func (e *Editor) redo() {
	pos, err := e.buf.Redo(e.cur.Pos())
	if err != nil {
		e.notify("already at newest change")
		return
	}
	e.cur.Go(pos)
}

// repeatSearch reruns the last find, optionally reversed.
func (e *Editor) repeatSearch(reverse bool) {
	if e.search.pattern == "" {
		e.notify("no previous search")
		return
	}
	backward := e.search.backward != reverse
	e.findFrom(e.cur.Pos(), e.search.pattern, backward)
}

// findFrom searches for a literal pattern around pos and moves the
// cursor to the match.
func (e *Editor) findFrom(pos buffer.LineCol, pat string, backward bool) {
	var hit buffer.LineCol
	var err error
	if backward {
		hit, err = e.buf.RFind(pattern.Literal(pat), pos)
	} else {
		hit, err = e.buf.Find(pattern.Literal(pat), buffer.LineCol{Line: pos.Line, Col: pos.Col + 1})
	}
	if err != nil {
		e.notify(fmt.Sprintf("pattern not found: %s", pat))
		return
	}
	e.cur.Go(hit)
}
