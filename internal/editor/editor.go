// Package editor dispatches key events to the current mode's handler
// and owns the session state those handlers share: buffer, cursor,
// viewport, registers, prompt histories and the pending-key machinery.
package editor

import (
	"github.com/avadine/kyo/internal/config"
	"github.com/avadine/kyo/internal/engine/buffer"
	"github.com/avadine/kyo/internal/engine/cursor"
	"github.com/avadine/kyo/internal/engine/register"
	"github.com/avadine/kyo/internal/engine/viewport"
	"github.com/avadine/kyo/internal/input/key"
	"github.com/avadine/kyo/internal/input/mode"
)

// Notifier receives user-visible diagnostics such as "pattern not
// found". Handlers report through it instead of failing the dispatch.
type Notifier interface {
	Notify(msg string)
}

// HistoryStore persists prompt history across sessions. A nil store
// keeps history in memory only.
type HistoryStore interface {
	Add(kind, entry string) error
	List(kind string, limit int) ([]string, error)
}

// History bucket names.
const (
	historyFindFwd  = "find-forward"
	historyFindBack = "find-backward"
	historyCommand  = "command"
)

// Options configures a new Editor.
type Options struct {
	// Lines is the initial content of the text plane.
	Lines []string

	// Width and Height give the initial terminal size.
	Width, Height int

	// Config holds the user options; zero value gets the defaults.
	Config config.Config

	// Notifier receives diagnostics. Required.
	Notifier Notifier

	// History persists prompt history. Optional.
	History HistoryStore

	// Save writes the text plane out, for the :w command. Optional.
	Save func(lines []string) error
}

// lastSearch remembers the most recent find so n and N can repeat it.
type lastSearch struct {
	pattern  string
	backward bool
}

// Editor is the modal dispatcher.
type Editor struct {
	buf   *buffer.Buffer
	cur   *cursor.Cursor
	view  *viewport.Viewport
	regs  *register.Registers
	mode  mode.Mode
	notes Notifier
	cfg   config.Config

	hist HistoryStore
	save func(lines []string) error

	count   countState
	pending pendingOp

	// regName is the register selected by a " prefix, consumed by the
	// next yank, delete or paste.
	regName rune

	findFwdHist  *history
	findBackHist *history
	cmdHist      *history
	search       lastSearch
}

// New builds an editor over the given content. The viewport is sized
// for the given terminal and the prompt histories are seeded from the
// history store when one is provided.
func New(opts Options) *Editor {
	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}
	e := &Editor{
		buf:          buffer.New(opts.Lines),
		cur:          cursor.New(),
		view:         viewport.New(opts.Width, opts.Height, cfg.GutterWidth, cfg.ScrollMargin),
		regs:         register.New(),
		mode:         mode.Normal,
		notes:        opts.Notifier,
		cfg:          cfg,
		hist:         opts.History,
		save:         opts.Save,
		findFwdHist:  newHistory(cfg.HistoryLimit),
		findBackHist: newHistory(cfg.HistoryLimit),
		cmdHist:      newHistory(cfg.HistoryLimit),
	}
	if e.hist != nil {
		if entries, err := e.hist.List(historyFindFwd, cfg.HistoryLimit); err == nil {
			e.findFwdHist.seed(entries)
		}
		if entries, err := e.hist.List(historyFindBack, cfg.HistoryLimit); err == nil {
			e.findBackHist.seed(entries)
		}
		if entries, err := e.hist.List(historyCommand, cfg.HistoryLimit); err == nil {
			e.cmdHist.seed(entries)
		}
	}
	return e
}

// Mode returns the current modal state.
func (e *Editor) Mode() mode.Mode {
	return e.mode
}

// Buffer returns the underlying buffer, for rendering.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Viewport returns the window state, for rendering.
func (e *Editor) Viewport() *viewport.Viewport {
	return e.view
}

// Pos returns the cursor position on the active plane.
func (e *Editor) Pos() buffer.LineCol {
	return e.cur.Pos()
}

// TextPos returns the cursor position on the text plane, regardless
// of whether a prompt currently owns the cursor.
func (e *Editor) TextPos() buffer.LineCol {
	if e.mode.IsPrompt() {
		return e.cur.Anchor()
	}
	return e.cur.Pos()
}

// Selection returns the active visual selection, normalized, and
// whether one exists. Line-wise selections span whole lines.
func (e *Editor) Selection() (buffer.Selection, bool) {
	if !e.mode.IsVisual() {
		return buffer.Selection{}, false
	}
	sel := buffer.Selection{Start: e.cur.Anchor(), End: e.cur.Pos()}.Normalized()
	if e.mode == mode.VisualLine {
		sel.Start.Col = 0
		sel.End.Col = e.buf.MaxCol(sel.End)
	}
	return sel, true
}

// Resize records a new terminal size.
func (e *Editor) Resize(width, height int) {
	e.view.Resize(width, height)
	e.settle()
}

// HandleKey runs one dispatch cycle: the current mode interprets the
// event, then the cursor is clamped to the buffer and the viewport
// follows it. The only non-nil return is ErrQuit.
func (e *Editor) HandleKey(ev key.Event) error {
	var err error
	switch e.mode {
	case mode.Normal:
		err = e.handleNormal(ev)
	case mode.Insert:
		err = e.handleInsert(ev)
	case mode.Visual, mode.VisualLine:
		err = e.handleVisual(ev)
	case mode.Command:
		err = e.handleCommand(ev)
	case mode.FindForward, mode.FindBackward:
		err = e.handleFind(ev)
	}
	if err != nil {
		return err
	}
	e.settle()
	return nil
}

// setMode transitions between modes, moving the cursor bookkeeping
// and the active plane together. Entering a prompt mode starts from
// an empty prompt line.
func (e *Editor) setMode(to mode.Mode) {
	from := e.mode
	e.cur.ModChange(from, to)
	e.mode = to
	e.buf.SetPlane(to.Plane())
	if to.IsPrompt() && !from.IsPrompt() {
		e.buf.ClearCommand()
	}
}

// promptSentinel is the leading character shown in the prompt for
// each prompt mode.
func promptSentinel(m mode.Mode) rune {
	switch m {
	case mode.FindForward:
		return '/'
	case mode.FindBackward:
		return '?'
	default:
		return ':'
	}
}

// enterPrompt switches to a prompt mode and injects its sentinel as
// the first prompt character.
func (e *Editor) enterPrompt(m mode.Mode) {
	e.setMode(m)
	if pos, err := e.buf.Insert(buffer.LineCol{}, promptSentinel(m)); err == nil {
		e.cur.Go(pos)
	}
}

// settle clamps the cursor to the buffer and scrolls the viewport
// after it. Prompt modes pin the cursor to the prompt line, which
// needs no scrolling.
func (e *Editor) settle() {
	if e.mode.IsPrompt() {
		return
	}
	e.clampCursor()
	e.view.Control(e.cur.Pos())
}

// clampCursor bounds the cursor to existing lines and columns.
// Motions deliberately overshoot; this is the single place positions
// are squared against the buffer.
func (e *Editor) clampCursor() {
	pos := e.cur.Pos()
	clamped := pos
	clamped.Line = min(clamped.Line, e.buf.MaxLine())
	clamped.Col = min(clamped.Col, e.buf.MaxCol(clamped))
	if clamped != pos {
		e.cur.Go(clamped)
	}
}

// notify forwards a diagnostic when a sink is wired.
func (e *Editor) notify(msg string) {
	if e.notes != nil {
		e.notes.Notify(msg)
	}
}

// takeRegName consumes the register selected by a " prefix, or 0 for
// the default register.
func (e *Editor) takeRegName() rune {
	name := e.regName
	e.regName = 0
	return name
}
