// Package backend wraps tcell behind the small surface the renderer
// and the event loop need, translating tcell events into the
// editor's key events.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/avadine/kyo/internal/input/key"
)

// Event is a terminal event delivered to the event loop.
type Event interface {
	isEvent()
}

// KeyEvent wraps a translated key press.
type KeyEvent struct {
	Key key.Event
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width, Height int
}

// InterruptEvent reports an external interrupt or screen teardown.
type InterruptEvent struct{}

func (KeyEvent) isEvent()       {}
func (ResizeEvent) isEvent()    {}
func (InterruptEvent) isEvent() {}

// Terminal drives a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal allocates a terminal backend. Init must be called
// before use.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init takes over the terminal.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Fini restores the terminal to its previous state. Safe to call
// after a failed Init.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Clear erases the pending frame.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// SetContent places a rune at the given cell.
func (t *Terminal) SetContent(x, y int, r rune, style tcell.Style) {
	t.screen.SetContent(x, y, r, nil, style)
}

// ShowCursor positions the hardware cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

// Show flushes the pending frame to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// PollEvent blocks for the next event, collapsing tcell's event
// types into the loop's slim set. Unknown events report as a nil-key
// KeyEvent the dispatcher ignores.
func (t *Terminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return KeyEvent{Key: translateKey(ev)}
		case *tcell.EventResize:
			w, h := ev.Size()
			return ResizeEvent{Width: w, Height: h}
		case *tcell.EventInterrupt:
			return InterruptEvent{}
		case nil:
			// Screen was finalized.
			return InterruptEvent{}
		default:
			// Mouse, paste and focus events are not handled.
		}
	}
}

// translateKey maps a tcell key event onto the editor's event type.
func translateKey(ev *tcell.EventKey) key.Event {
	var mods key.Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= key.ModShift
	}

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	default:
		// tcell reports Ctrl-letter combinations as dedicated key
		// codes; unfold them back into a rune plus the modifier.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods|key.ModCtrl)
		}
		return key.Event{}
	}
}
