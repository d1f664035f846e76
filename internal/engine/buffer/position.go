package buffer

import "fmt"

// LineCol represents a line and column position in a plane.
// Both Line and Col are 0-indexed. Col is measured in runes
// from the start of the line.
type LineCol struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the position.
func (p LineCol) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Positions are ordered lexicographically by (line, col).
func (p LineCol) Compare(other LineCol) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p LineCol) Before(other LineCol) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p LineCol) After(other LineCol) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the origin (0:0).
func (p LineCol) IsZero() bool {
	return p.Line == 0 && p.Col == 0
}

// Add returns the component-wise sum of p and other.
func (p LineCol) Add(other LineCol) LineCol {
	return LineCol{Line: p.Line + other.Line, Col: p.Col + other.Col}
}

// Sub returns the component-wise difference of p and other,
// saturating each component at 0. Used for viewport math.
func (p LineCol) Sub(other LineCol) LineCol {
	return LineCol{
		Line: max(0, p.Line-other.Line),
		Col:  max(0, p.Col-other.Col),
	}
}

// Selection is a raw anchor pair over a plane. Start and End are in
// whatever order the user dragged them; call Normalized before treating
// them as an ordered range.
type Selection struct {
	Start LineCol
	End   LineCol
}

// Normalized returns the selection with Start <= End.
func (s Selection) Normalized() Selection {
	if s.End.Before(s.Start) {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// LineInSelection reports whether line lies strictly inside the
// selection's line span. Lines holding the anchor points are excluded;
// they are partially selected and highlighted column-wise instead.
func (s Selection) LineInSelection(line int) bool {
	return s.Start.Line < line && line < s.End.Line
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}
