package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/avadine/kyo/internal/config"
	"github.com/avadine/kyo/internal/editor"
	"github.com/avadine/kyo/internal/renderer"
	"github.com/avadine/kyo/internal/renderer/backend"
	"github.com/avadine/kyo/internal/store"
)

// Options configures a session.
type Options struct {
	// Path is the file being edited; empty opens a scratch buffer.
	Path string

	// Config holds the loaded user options.
	Config config.Config

	// Store persists prompt history. Optional.
	Store *store.Store

	// Logger receives diagnostics; nil disables logging.
	Logger *Logger
}

// App owns the terminal session: backend, renderer, dispatcher and
// the notification shown in the message bar.
type App struct {
	opts Options
	term *backend.Terminal
	log  *Logger

	// message is the pending notification; it survives until the
	// next key press.
	message string
}

// New prepares a session. The terminal is not touched until Run.
func New(opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	term, err := backend.NewTerminal()
	if err != nil {
		return nil, fmt.Errorf("allocating terminal: %w", err)
	}
	return &App{opts: opts, term: term, log: opts.Logger}, nil
}

// Notify queues a user-visible diagnostic for the message bar.
func (a *App) Notify(msg string) {
	a.message = msg
	a.log.Debug("notify: %s", msg)
}

// Run takes over the terminal and processes events until the user
// quits. The terminal is restored on every exit path, including
// panics.
func (a *App) Run() error {
	lines, err := readLines(a.opts.Path)
	if err != nil {
		return err
	}

	if err := a.term.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer a.term.Fini()

	width, height := a.term.Size()
	ed := editor.New(editor.Options{
		Lines:    lines,
		Width:    width,
		Height:   height,
		Config:   a.opts.Config,
		Notifier: a,
		History:  a.history(),
		Save:     a.saver(),
	})
	rend := renderer.New(a.term)
	if a.opts.Path != "" {
		rend.SetTitle(a.opts.Path)
	}

	a.log.Info("session started: %q, %dx%d", a.opts.Path, width, height)

	for {
		rend.Render(ed, a.message)
		switch ev := a.term.PollEvent().(type) {
		case backend.KeyEvent:
			a.message = ""
			if err := ed.HandleKey(ev.Key); err != nil {
				a.log.Info("session ended: %v", err)
				return nil
			}
		case backend.ResizeEvent:
			ed.Resize(ev.Width, ev.Height)
		case backend.InterruptEvent:
			a.log.Warn("interrupted")
			return nil
		}
	}
}

// history adapts the optional store to the dispatcher's interface
// without handing it a typed nil.
func (a *App) history() editor.HistoryStore {
	if a.opts.Store == nil {
		return nil
	}
	return a.opts.Store
}

// saver returns the :w implementation for the opened file, or nil
// for a scratch buffer.
func (a *App) saver() func(lines []string) error {
	path := a.opts.Path
	if path == "" {
		return nil
	}
	return func(lines []string) error {
		data := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		a.log.Info("wrote %s (%d lines)", path, len(lines))
		return nil
	}
}

// readLines loads the file to edit. A missing or empty path yields a
// scratch buffer.
func readLines(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")
	// A trailing newline is a line terminator, not an extra line.
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}
