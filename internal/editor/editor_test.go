package editor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/avadine/kyo/internal/config"
	"github.com/avadine/kyo/internal/engine/buffer"
	"github.com/avadine/kyo/internal/input/key"
	"github.com/avadine/kyo/internal/input/mode"
)

type noteRecorder struct {
	msgs []string
}

func (n *noteRecorder) Notify(msg string) {
	n.msgs = append(n.msgs, msg)
}

func newTestEditor(t *testing.T, lines []string) (*Editor, *noteRecorder) {
	t.Helper()
	notes := &noteRecorder{}
	e := New(Options{
		Lines:    lines,
		Width:    80,
		Height:   24,
		Notifier: notes,
	})
	return e, notes
}

// press feeds each rune as its own key event, failing the test on any
// error.
func press(t *testing.T, e *Editor, keys string) {
	t.Helper()
	for _, r := range keys {
		if err := e.HandleKey(key.NewRuneEvent(r, key.ModNone)); err != nil {
			t.Fatalf("HandleKey(%q) error: %v", r, err)
		}
	}
}

func pressSpecial(t *testing.T, e *Editor, k key.Key) {
	t.Helper()
	if err := e.HandleKey(key.NewSpecialEvent(k, key.ModNone)); err != nil {
		t.Fatalf("HandleKey(%v) error: %v", k, err)
	}
}

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestCountedMotion(t *testing.T) {
	e, _ := newTestEditor(t, numberedLines(30))
	press(t, e, "12j")
	if e.Pos().Line != 12 {
		t.Errorf("line = %d, want 12", e.Pos().Line)
	}
	press(t, e, "3k")
	if e.Pos().Line != 9 {
		t.Errorf("line = %d, want 9", e.Pos().Line)
	}
}

func TestMotionClampsToBuffer(t *testing.T) {
	e, _ := newTestEditor(t, []string{"ab", "c"})
	press(t, e, "h")
	if e.Pos() != (buffer.LineCol{}) {
		t.Errorf("pos = %v, want origin", e.Pos())
	}
	press(t, e, "99l")
	if e.Pos().Col != 2 {
		t.Errorf("col = %d, want clamp to 2", e.Pos().Col)
	}
	press(t, e, "99j")
	if e.Pos().Line != 1 {
		t.Errorf("line = %d, want clamp to 1", e.Pos().Line)
	}
}

func TestGoToLine(t *testing.T) {
	e, _ := newTestEditor(t, numberedLines(30))
	press(t, e, "G")
	if e.Pos().Line != 29 {
		t.Errorf("G: line = %d, want 29", e.Pos().Line)
	}
	press(t, e, "5G")
	if e.Pos().Line != 4 {
		t.Errorf("5G: line = %d, want 4", e.Pos().Line)
	}
	press(t, e, "gg")
	if e.Pos().Line != 0 {
		t.Errorf("gg: line = %d, want 0", e.Pos().Line)
	}
	press(t, e, "10gg")
	if e.Pos().Line != 9 {
		t.Errorf("10gg: line = %d, want 9", e.Pos().Line)
	}
}

func TestGoToTopKeepsColumn(t *testing.T) {
	e, _ := newTestEditor(t, []string{"alpha beta", "gamma delta"})
	press(t, e, "j3l")
	press(t, e, "gg")
	if e.Pos() != (buffer.LineCol{Line: 0, Col: 3}) {
		t.Errorf("gg: pos = %v, want {0 3}", e.Pos())
	}
}

func TestCountDoesNotOutliveCommand(t *testing.T) {
	e, _ := newTestEditor(t, numberedLines(10))
	press(t, e, "3i")
	pressSpecial(t, e, key.KeyEscape)
	press(t, e, "j")
	if e.Pos().Line != 1 {
		t.Errorf("line = %d, want 1", e.Pos().Line)
	}
}

func TestLineMotions(t *testing.T) {
	e, _ := newTestEditor(t, []string{"  indented text"})
	press(t, e, "$")
	if e.Pos().Col != 15 {
		t.Errorf("$: col = %d, want 15", e.Pos().Col)
	}
	press(t, e, "0")
	if e.Pos().Col != 0 {
		t.Errorf("0: col = %d, want 0", e.Pos().Col)
	}
	press(t, e, "_")
	if e.Pos().Col != 2 {
		t.Errorf("_: col = %d, want 2", e.Pos().Col)
	}
}

func TestWordMotion(t *testing.T) {
	e, _ := newTestEditor(t, []string{"foo bar.baz qux"})
	press(t, e, "w")
	if e.Pos().Col != 3 {
		t.Errorf("w: col = %d, want 3 (the space)", e.Pos().Col)
	}
	press(t, e, "w")
	if e.Pos().Col != 7 {
		t.Errorf("w: col = %d, want 7 (the dot)", e.Pos().Col)
	}
	press(t, e, "W")
	if e.Pos().Col != 12 {
		t.Errorf("W: col = %d, want 12", e.Pos().Col)
	}
}

func TestDeleteCharAndPasteSwaps(t *testing.T) {
	e, _ := newTestEditor(t, []string{"abcd"})
	press(t, e, "xp")
	if diff := cmp.Diff([]string{"bacd"}, e.Buffer().Text()); diff != "" {
		t.Errorf("xp (-want +got):\n%s", diff)
	}
}

func TestDeleteLines(t *testing.T) {
	e, _ := newTestEditor(t, []string{"one", "two", "three"})
	press(t, e, "dd")
	if diff := cmp.Diff([]string{"two", "three"}, e.Buffer().Text()); diff != "" {
		t.Errorf("dd (-want +got):\n%s", diff)
	}
	press(t, e, "2dd")
	if diff := cmp.Diff([]string{""}, e.Buffer().Text()); diff != "" {
		t.Errorf("2dd (-want +got):\n%s", diff)
	}
}

func TestDeletedLinePastesBelow(t *testing.T) {
	e, _ := newTestEditor(t, []string{"one", "two", "three"})
	press(t, e, "ddp")
	if diff := cmp.Diff([]string{"two", "one", "three"}, e.Buffer().Text()); diff != "" {
		t.Errorf("ddp (-want +got):\n%s", diff)
	}
	if e.Pos() != (buffer.LineCol{Line: 1}) {
		t.Errorf("pos = %v, want 1:0", e.Pos())
	}
}

func TestUndoRedo(t *testing.T) {
	e, _ := newTestEditor(t, []string{"one", "two"})
	press(t, e, "dd")
	press(t, e, "u")
	if diff := cmp.Diff([]string{"one", "two"}, e.Buffer().Text()); diff != "" {
		t.Errorf("after u (-want +got):\n%s", diff)
	}
	if err := e.HandleKey(key.NewRuneEvent('r', key.ModCtrl)); err != nil {
		t.Fatalf("HandleKey error: %v", err)
	}
	if diff := cmp.Diff([]string{"two"}, e.Buffer().Text()); diff != "" {
		t.Errorf("after C-r (-want +got):\n%s", diff)
	}
}

func TestUndoPastOldestNotifies(t *testing.T) {
	e, notes := newTestEditor(t, []string{"one"})
	press(t, e, "u")
	if len(notes.msgs) != 1 {
		t.Fatalf("notifications = %v, want one", notes.msgs)
	}
}

func TestCharFindAndReplace(t *testing.T) {
	e, _ := newTestEditor(t, []string{"abc x def"})
	press(t, e, "fx")
	if e.Pos().Col != 4 {
		t.Errorf("fx: col = %d, want 4", e.Pos().Col)
	}
	press(t, e, "0tx")
	if e.Pos().Col != 3 {
		t.Errorf("tx: col = %d, want 3", e.Pos().Col)
	}
	press(t, e, "0rz")
	if line, _ := e.Buffer().Line(0); line != "zbc x def" {
		t.Errorf("rz: line = %q", line)
	}
}

func TestCharFindWithCount(t *testing.T) {
	e, _ := newTestEditor(t, []string{"a x b x c"})
	press(t, e, "2fx")
	if e.Pos().Col != 6 {
		t.Errorf("2fx: col = %d, want 6", e.Pos().Col)
	}
	press(t, e, "$2Fx")
	if e.Pos().Col != 2 {
		t.Errorf("2Fx: col = %d, want 2", e.Pos().Col)
	}
}

func TestReplacePastLineEndNotifies(t *testing.T) {
	e, notes := newTestEditor(t, []string{"ab"})
	press(t, e, "3rz")
	if line, _ := e.Buffer().Line(0); line != "ab" {
		t.Errorf("line = %q, want untouched", line)
	}
	if len(notes.msgs) != 1 {
		t.Fatalf("notifications = %v, want one", notes.msgs)
	}
}

func TestYankLinesAndPaste(t *testing.T) {
	e, _ := newTestEditor(t, []string{"one", "two"})
	press(t, e, "yyp")
	if diff := cmp.Diff([]string{"one", "one", "two"}, e.Buffer().Text()); diff != "" {
		t.Errorf("yyp (-want +got):\n%s", diff)
	}
}

func TestNamedRegister(t *testing.T) {
	e, _ := newTestEditor(t, []string{"one", "two"})
	press(t, e, "\"ayy")
	press(t, e, "j\"ap")
	if diff := cmp.Diff([]string{"one", "two", "one"}, e.Buffer().Text()); diff != "" {
		t.Errorf("named register paste (-want +got):\n%s", diff)
	}
}

func TestVisualYank(t *testing.T) {
	e, _ := newTestEditor(t, []string{"hello world"})
	press(t, e, "vlllly")
	if e.Mode() != mode.Normal {
		t.Errorf("mode = %v, want normal after y", e.Mode())
	}
	got, err := e.regs.Get(0)
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if got != "hello" {
		t.Errorf("yanked %q, want %q", got, "hello")
	}
}

func TestVisualLineDelete(t *testing.T) {
	e, _ := newTestEditor(t, []string{"one", "two", "three"})
	press(t, e, "jVd")
	if diff := cmp.Diff([]string{"one", "three"}, e.Buffer().Text()); diff != "" {
		t.Errorf("Vd (-want +got):\n%s", diff)
	}
	if got, err := e.regs.Get('1'); err != nil || got != "two\n" {
		t.Errorf("ring slot 1 = %q, %v, want %q", got, err, "two\n")
	}
}

func TestVisualSelectionSpansMotion(t *testing.T) {
	e, _ := newTestEditor(t, []string{"one", "two", "three"})
	press(t, e, "vj")
	sel, ok := e.Selection()
	if !ok {
		t.Fatalf("no selection in visual mode")
	}
	want := buffer.Selection{Start: buffer.LineCol{}, End: buffer.LineCol{Line: 1}}
	if sel != want {
		t.Errorf("selection = %v, want %v", sel, want)
	}
}

func TestInsertMode(t *testing.T) {
	e, _ := newTestEditor(t, []string{"world"})
	press(t, e, "ihello ")
	if e.Mode() != mode.Insert {
		t.Fatalf("mode = %v, want insert", e.Mode())
	}
	pressSpecial(t, e, key.KeyEscape)
	if e.Mode() != mode.Normal {
		t.Errorf("mode = %v, want normal after Esc", e.Mode())
	}
	if line, _ := e.Buffer().Line(0); line != "hello world" {
		t.Errorf("line = %q, want %q", line, "hello world")
	}
}

func TestInsertEnterSplitsLine(t *testing.T) {
	e, _ := newTestEditor(t, []string{"oneTwo"})
	press(t, e, "llli")
	pressSpecial(t, e, key.KeyEnter)
	if diff := cmp.Diff([]string{"one", "Two"}, e.Buffer().Text()); diff != "" {
		t.Errorf("split (-want +got):\n%s", diff)
	}
	if e.Pos() != (buffer.LineCol{Line: 1}) {
		t.Errorf("pos = %v, want 1:0", e.Pos())
	}
}

func TestInsertBackspaceAtOriginIsHarmless(t *testing.T) {
	e, notes := newTestEditor(t, []string{"abc"})
	press(t, e, "i")
	pressSpecial(t, e, key.KeyBackspace)
	if len(notes.msgs) != 0 {
		t.Errorf("notifications = %v, want none", notes.msgs)
	}
	if line, _ := e.Buffer().Line(0); line != "abc" {
		t.Errorf("line = %q, want unchanged", line)
	}
}

func TestOpenLineBelow(t *testing.T) {
	e, _ := newTestEditor(t, []string{"one"})
	press(t, e, "o")
	if e.Mode() != mode.Insert {
		t.Errorf("mode = %v, want insert", e.Mode())
	}
	if e.Pos() != (buffer.LineCol{Line: 1}) {
		t.Errorf("pos = %v, want 1:0", e.Pos())
	}
	if diff := cmp.Diff([]string{"one", ""}, e.Buffer().Text()); diff != "" {
		t.Errorf("o (-want +got):\n%s", diff)
	}
}

func TestAppendAtLineEnd(t *testing.T) {
	e, _ := newTestEditor(t, []string{"ab"})
	press(t, e, "A!")
	if line, _ := e.Buffer().Line(0); line != "ab!" {
		t.Errorf("line = %q, want %q", line, "ab!")
	}
}

func TestQuitCommand(t *testing.T) {
	e, _ := newTestEditor(t, []string{"x"})
	press(t, e, ":q")
	err := e.HandleKey(key.NewSpecialEvent(key.KeyEnter, key.ModNone))
	if !errors.Is(err, ErrQuit) {
		t.Errorf("error = %v, want ErrQuit", err)
	}
}

func TestGoToLineCommand(t *testing.T) {
	e, _ := newTestEditor(t, numberedLines(30))
	press(t, e, ":15")
	pressSpecial(t, e, key.KeyEnter)
	if e.Pos().Line != 14 {
		t.Errorf("line = %d, want 14", e.Pos().Line)
	}
}

func TestUnknownCommandNotifies(t *testing.T) {
	e, notes := newTestEditor(t, []string{"x"})
	press(t, e, ":nope")
	pressSpecial(t, e, key.KeyEnter)
	if len(notes.msgs) != 1 {
		t.Fatalf("notifications = %v, want one", notes.msgs)
	}
}

func TestWriteCommand(t *testing.T) {
	var saved []string
	notes := &noteRecorder{}
	e := New(Options{
		Lines:    []string{"keep", "me"},
		Width:    80,
		Height:   24,
		Notifier: notes,
		Save: func(lines []string) error {
			saved = append([]string(nil), lines...)
			return nil
		},
	})
	press(t, e, ":w")
	pressSpecial(t, e, key.KeyEnter)
	if diff := cmp.Diff([]string{"keep", "me"}, saved); diff != "" {
		t.Errorf("saved (-want +got):\n%s", diff)
	}
}

func TestCommandEscCancels(t *testing.T) {
	e, _ := newTestEditor(t, []string{"abc"})
	press(t, e, "ll:")
	if e.Mode() != mode.Command {
		t.Fatalf("mode = %v, want command", e.Mode())
	}
	pressSpecial(t, e, key.KeyEscape)
	if e.Mode() != mode.Normal {
		t.Errorf("mode = %v, want normal", e.Mode())
	}
	if e.Pos() != (buffer.LineCol{Col: 2}) {
		t.Errorf("pos = %v, want restored 0:2", e.Pos())
	}
}

func TestBackspacingSentinelLeavesPrompt(t *testing.T) {
	e, _ := newTestEditor(t, []string{"abc"})
	press(t, e, ":")
	pressSpecial(t, e, key.KeyBackspace)
	if e.Mode() != mode.Normal {
		t.Errorf("mode = %v, want normal", e.Mode())
	}
}

func TestSearch(t *testing.T) {
	e, notes := newTestEditor(t, []string{"alpha beta", "gamma delta", "beta again"})
	press(t, e, "/beta")
	pressSpecial(t, e, key.KeyEnter)
	if e.Pos() != (buffer.LineCol{Line: 0, Col: 6}) {
		t.Errorf("pos = %v, want 0:6", e.Pos())
	}
	press(t, e, "n")
	if e.Pos() != (buffer.LineCol{Line: 2, Col: 0}) {
		t.Errorf("n: pos = %v, want 2:0", e.Pos())
	}
	press(t, e, "n")
	if len(notes.msgs) != 1 {
		t.Errorf("notifications = %v, want one not-found", notes.msgs)
	}
	press(t, e, "N")
	if e.Pos() != (buffer.LineCol{Line: 0, Col: 6}) {
		t.Errorf("N: pos = %v, want 0:6", e.Pos())
	}
}

func TestSearchBackward(t *testing.T) {
	e, _ := newTestEditor(t, []string{"beta", "middle", "beta"})
	press(t, e, "G?beta")
	pressSpecial(t, e, key.KeyEnter)
	if e.Pos() != (buffer.LineCol{Line: 0, Col: 0}) {
		t.Errorf("pos = %v, want 0:0", e.Pos())
	}
}

func TestEmptyFindNotifies(t *testing.T) {
	e, notes := newTestEditor(t, []string{"x"})
	press(t, e, "/")
	pressSpecial(t, e, key.KeyEnter)
	if e.Mode() != mode.Normal {
		t.Errorf("mode = %v, want normal", e.Mode())
	}
	if len(notes.msgs) != 1 {
		t.Fatalf("notifications = %v, want one", notes.msgs)
	}
}

func TestFindHistoryPerDirection(t *testing.T) {
	e, _ := newTestEditor(t, []string{"alpha", "beta"})
	press(t, e, "/beta")
	pressSpecial(t, e, key.KeyEnter)

	press(t, e, "?")
	pressSpecial(t, e, key.KeyUp)
	if got := e.CommandLine(); got != "?" {
		t.Errorf("backward prompt = %q, forward entries must not leak in", got)
	}
	pressSpecial(t, e, key.KeyEscape)

	press(t, e, "/")
	pressSpecial(t, e, key.KeyUp)
	if got := e.CommandLine(); got != "/beta" {
		t.Errorf("forward prompt = %q, want %q", got, "/beta")
	}
}

func TestPromptHistoryRecall(t *testing.T) {
	e, _ := newTestEditor(t, numberedLines(30))
	press(t, e, ":15")
	pressSpecial(t, e, key.KeyEnter)
	press(t, e, ":")
	pressSpecial(t, e, key.KeyUp)
	if got := e.CommandLine(); got != ":15" {
		t.Errorf("CommandLine() = %q, want %q", got, ":15")
	}
	pressSpecial(t, e, key.KeyDown)
	if got := e.CommandLine(); got != ":" {
		t.Errorf("CommandLine() = %q, want bare prompt", got)
	}
}

func TestEscQuitsByDefault(t *testing.T) {
	e, _ := newTestEditor(t, []string{"x"})
	err := e.HandleKey(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	if !errors.Is(err, ErrQuit) {
		t.Errorf("error = %v, want ErrQuit", err)
	}
}

func TestEscFirstCancelsPending(t *testing.T) {
	e, _ := newTestEditor(t, []string{"x"})
	press(t, e, "3d")
	pressSpecial(t, e, key.KeyEscape)
	err := e.HandleKey(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	if !errors.Is(err, ErrQuit) {
		t.Errorf("second Esc error = %v, want ErrQuit", err)
	}
}

func TestEscQuitDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.QuitOnEsc = false
	e := New(Options{Lines: []string{"x"}, Width: 80, Height: 24, Config: cfg, Notifier: &noteRecorder{}})
	if err := e.HandleKey(key.NewSpecialEvent(key.KeyEscape, key.ModNone)); err != nil {
		t.Errorf("Esc error = %v, want nil", err)
	}
}

func TestHalfScreenScroll(t *testing.T) {
	e, _ := newTestEditor(t, numberedLines(100))
	if err := e.HandleKey(key.NewRuneEvent('d', key.ModCtrl)); err != nil {
		t.Fatalf("HandleKey error: %v", err)
	}
	if e.Pos().Line != 25 {
		t.Errorf("line = %d, want 25", e.Pos().Line)
	}
	if top := e.Viewport().TopLeft().Line; top != 14 {
		t.Errorf("top = %d, want centered at 14", top)
	}
	if err := e.HandleKey(key.NewRuneEvent('u', key.ModCtrl)); err != nil {
		t.Fatalf("HandleKey error: %v", err)
	}
	if e.Pos().Line != 0 {
		t.Errorf("line = %d, want 0", e.Pos().Line)
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	e, _ := newTestEditor(t, numberedLines(100))
	press(t, e, "50j")
	view := e.Viewport()
	top, bottom := view.TopLeft().Line, view.BottomLine()
	if e.Pos().Line < top || e.Pos().Line > bottom {
		t.Errorf("cursor line %d outside window [%d, %d]", e.Pos().Line, top, bottom)
	}
	// A jump past the window puts the cursor mid-screen.
	if top != 39 {
		t.Errorf("top = %d, want re-centered at 39", top)
	}
}

func TestSeededHistory(t *testing.T) {
	hist := &fakeHistory{entries: map[string][]string{
		historyCommand: {"42"},
	}}
	e := New(Options{Lines: numberedLines(50), Width: 80, Height: 24, Notifier: &noteRecorder{}, History: hist})
	press(t, e, ":")
	pressSpecial(t, e, key.KeyUp)
	if got := e.CommandLine(); got != ":42" {
		t.Errorf("CommandLine() = %q, want %q", got, ":42")
	}
}

type fakeHistory struct {
	entries map[string][]string
}

func (f *fakeHistory) Add(kind, entry string) error {
	f.entries[kind] = append(f.entries[kind], entry)
	return nil
}

func (f *fakeHistory) List(kind string, limit int) ([]string, error) {
	return f.entries[kind], nil
}
