package key

import "testing"

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewRuneEvent('d', ModCtrl), "C-d"},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter"},
		{NewSpecialEvent(KeyEscape, ModShift), "S-Escape"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsChar(t *testing.T) {
	if !NewRuneEvent('x', ModNone).IsChar() {
		t.Errorf("plain rune not a char")
	}
	if !NewRuneEvent('X', ModShift).IsChar() {
		t.Errorf("shifted rune not a char")
	}
	if NewRuneEvent('x', ModCtrl).IsChar() {
		t.Errorf("ctrl rune reported as char")
	}
	if NewSpecialEvent(KeyEnter, ModNone).IsChar() {
		t.Errorf("special key reported as char")
	}
}

func TestIsCtrl(t *testing.T) {
	ev := NewRuneEvent('d', ModCtrl)
	if !ev.IsCtrl('d') {
		t.Errorf("IsCtrl('d') = false")
	}
	if ev.IsCtrl('u') {
		t.Errorf("IsCtrl('u') = true for C-d")
	}
	if NewRuneEvent('d', ModNone).IsCtrl('d') {
		t.Errorf("IsCtrl true without modifier")
	}
}
