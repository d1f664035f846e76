package buffer

import "github.com/avadine/kyo/internal/engine/pattern"

// Find scans the active plane for p, starting at from (inclusive) and
// moving forward line by line. Returns the position of the first
// match or ErrPatternNotFound.
func (b *Buffer) Find(p pattern.Pattern, from LineCol) (LineCol, error) {
	if p == nil || p.Empty() {
		return LineCol{}, ErrInvalidInput
	}
	if from.Line < 0 || from.Line >= len(b.lines()) {
		return LineCol{}, ErrInvalidPosition
	}
	lines := b.lines()
	fromCol := from.Col
	for line := from.Line; line < len(lines); line++ {
		if col, ok := p.Match(lines[line], fromCol); ok {
			return LineCol{Line: line, Col: col}, nil
		}
		fromCol = 0
	}
	return LineCol{}, ErrPatternNotFound
}

// RFind scans backward for p, starting strictly before from and
// moving toward the start of the plane. Returns the position of the
// nearest preceding match or ErrPatternNotFound.
func (b *Buffer) RFind(p pattern.Pattern, from LineCol) (LineCol, error) {
	if p == nil || p.Empty() {
		return LineCol{}, ErrInvalidInput
	}
	if from.Line < 0 || from.Line >= len(b.lines()) {
		return LineCol{}, ErrInvalidPosition
	}
	lines := b.lines()
	beforeCol := from.Col
	for line := from.Line; line >= 0; line-- {
		if col, ok := p.RMatch(lines[line], beforeCol); ok {
			return LineCol{Line: line, Col: col}, nil
		}
		if line > 0 {
			beforeCol = lineLen(lines[line-1])
		}
	}
	return LineCol{}, ErrPatternNotFound
}
