package pattern

import (
	"testing"
	"unicode"
)

func TestLiteralMatch(t *testing.T) {
	tests := []struct {
		name    string
		p       Literal
		line    string
		fromCol int
		want    int
		wantOK  bool
	}{
		{name: "at start", p: "foo", line: "foobar", fromCol: 0, want: 0, wantOK: true},
		{name: "after offset", p: "foo", line: "foofoo", fromCol: 1, want: 3, wantOK: true},
		{name: "offset past match", p: "foo", line: "foobar", fromCol: 1, wantOK: false},
		{name: "absent", p: "baz", line: "foobar", fromCol: 0, wantOK: false},
		{name: "offset past end", p: "foo", line: "foo", fromCol: 4, wantOK: false},
		{name: "multibyte prefix", p: "bar", line: "héllo bar", fromCol: 0, want: 6, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.p.Match(tt.line, tt.fromCol)
			if ok != tt.wantOK {
				t.Fatalf("Match ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Match = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLiteralRMatch(t *testing.T) {
	tests := []struct {
		name      string
		p         Literal
		line      string
		beforeCol int
		want      int
		wantOK    bool
	}{
		{name: "last occurrence", p: "foo", line: "foofoo", beforeCol: 6, want: 3, wantOK: true},
		{name: "bounded by col", p: "foo", line: "foofoo", beforeCol: 5, want: 0, wantOK: true},
		{name: "nothing before", p: "foo", line: "foobar", beforeCol: 2, wantOK: false},
		{name: "col past end clamps", p: "bar", line: "bar", beforeCol: 10, want: 0, wantOK: true},
		{name: "multibyte prefix", p: "bar", line: "héllo bar", beforeCol: 9, want: 6, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.p.RMatch(tt.line, tt.beforeCol)
			if ok != tt.wantOK {
				t.Fatalf("RMatch ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("RMatch = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChar(t *testing.T) {
	c := Char('l')
	if got, ok := c.Match("hello", 0); !ok || got != 2 {
		t.Errorf("Match = %d, %v, want 2, true", got, ok)
	}
	if got, ok := c.Match("hello", 3); !ok || got != 3 {
		t.Errorf("Match from 3 = %d, %v, want 3, true", got, ok)
	}
	if _, ok := c.Match("hello", 4); ok {
		t.Errorf("Match from 4 ok = true, want false")
	}
	if got, ok := c.RMatch("hello", 5); !ok || got != 3 {
		t.Errorf("RMatch = %d, %v, want 3, true", got, ok)
	}
	if got, ok := c.RMatch("hello", 3); !ok || got != 2 {
		t.Errorf("RMatch before 3 = %d, %v, want 2, true", got, ok)
	}
	if _, ok := c.RMatch("hello", 2); ok {
		t.Errorf("RMatch before 2 ok = true, want false")
	}
	if c.Empty() {
		t.Errorf("Empty() = true for Char")
	}
}

func TestPredicate(t *testing.T) {
	digits := Predicate(unicode.IsDigit)
	if got, ok := digits.Match("ab1c2", 0); !ok || got != 2 {
		t.Errorf("Match = %d, %v, want 2, true", got, ok)
	}
	if got, ok := digits.Match("ab1c2", 3); !ok || got != 4 {
		t.Errorf("Match from 3 = %d, %v, want 4, true", got, ok)
	}
	if got, ok := digits.RMatch("ab1c2", 4); !ok || got != 2 {
		t.Errorf("RMatch before 4 = %d, %v, want 2, true", got, ok)
	}
	if _, ok := digits.RMatch("abc", 3); ok {
		t.Errorf("RMatch ok = true, want false")
	}
}

func TestEmpty(t *testing.T) {
	if !Literal("").Empty() {
		t.Errorf("empty Literal Empty() = false")
	}
	if Literal("x").Empty() {
		t.Errorf("non-empty Literal Empty() = true")
	}
	if !Predicate(nil).Empty() {
		t.Errorf("nil Predicate Empty() = false")
	}
}
