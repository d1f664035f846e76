package editor

import (
	"unicode"

	"github.com/avadine/kyo/internal/engine/buffer"
	"github.com/avadine/kyo/internal/engine/pattern"
	"github.com/avadine/kyo/internal/input/key"
)

// Character classes for word motions.
var (
	notWord  = pattern.Predicate(func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
	blank    = pattern.Predicate(unicode.IsSpace)
	notBlank = pattern.Predicate(func(r rune) bool { return !unicode.IsSpace(r) })
)

// motion applies the motions shared by normal and visual mode.
// Reports whether the event was one of them.
func (e *Editor) motion(ev key.Event) bool {
	if !ev.IsRune() {
		switch ev.Key {
		case key.KeyUp:
			e.cur.Up(e.count.take())
		case key.KeyDown:
			e.cur.Down(e.count.take())
		case key.KeyLeft:
			e.cur.Left(e.count.take())
		case key.KeyRight:
			e.cur.Right(e.count.take())
		case key.KeyHome:
			e.cur.Go(buffer.LineCol{Line: e.cur.Pos().Line})
		case key.KeyEnd:
			e.motionLineEnd()
		default:
			return false
		}
		return true
	}

	switch ev.Rune {
	case 'h':
		e.cur.Left(e.count.take())
	case 'j':
		e.cur.Down(e.count.take())
	case 'k':
		e.cur.Up(e.count.take())
	case 'l':
		e.cur.Right(e.count.take())
	case '0':
		e.cur.Go(buffer.LineCol{Line: e.cur.Pos().Line})
	case '$':
		e.motionLineEnd()
	case '_':
		e.motionFirstNonBlank()
	case 'w':
		for n := e.count.take(); n > 0; n-- {
			e.motionWord()
		}
	case 'W':
		for n := e.count.take(); n > 0; n-- {
			e.motionBigWord()
		}
	case 'G':
		e.motionGoLine()
	default:
		return false
	}
	return true
}

// motionLineEnd puts the cursor past the last character; the clamp
// step squares it against the line.
func (e *Editor) motionLineEnd() {
	pos := e.cur.Pos()
	e.cur.Go(buffer.LineCol{Line: pos.Line, Col: e.buf.MaxCol(pos)})
}

// motionFirstNonBlank moves to the first non-whitespace character of
// the current line, or column 0 on a blank line.
func (e *Editor) motionFirstNonBlank() {
	pos := e.cur.Pos()
	line, err := e.buf.Line(pos.Line)
	if err != nil {
		return
	}
	col := 0
	if c, ok := notBlank.Match(line, 0); ok {
		col = c
	}
	e.cur.Go(buffer.LineCol{Line: pos.Line, Col: col})
}

// motionGoLine handles G: with a count it is an absolute line jump,
// without one it goes to the last line.
func (e *Editor) motionGoLine() {
	line := e.buf.MaxLine()
	if n, ok := e.count.peek(); ok {
		e.count.take()
		line = n - 1
	}
	e.cur.Go(buffer.LineCol{Line: max(0, line)})
}

// motionWord advances to the next word boundary: skip any whitespace
// first, then stop on the next character that is not part of a word.
func (e *Editor) motionWord() {
	pos := e.cur.Pos()
	from := buffer.LineCol{Line: pos.Line, Col: pos.Col + 1}
	start, err := e.buf.Find(notBlank, from)
	if err != nil {
		e.motionLineEnd()
		return
	}
	hit, err := e.buf.Find(notWord, start)
	if err != nil {
		e.motionLineEnd()
		return
	}
	e.cur.Go(hit)
}

// motionBigWord advances past the next whitespace run to the first
// character after it.
func (e *Editor) motionBigWord() {
	pos := e.cur.Pos()
	from := buffer.LineCol{Line: pos.Line, Col: pos.Col + 1}
	ws, err := e.buf.Find(blank, from)
	if err != nil {
		e.motionLineEnd()
		return
	}
	hit, err := e.buf.Find(notBlank, ws)
	if err != nil {
		e.motionLineEnd()
		return
	}
	e.cur.Go(hit)
}
