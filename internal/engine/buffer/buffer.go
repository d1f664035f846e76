package buffer

import "strings"

// Buffer owns three independent line collections (planes) plus the
// bounded undo/redo history for the Text plane. All positions are
// rune-addressed LineCol values; every operation validates its
// arguments and returns a sentinel error on misuse.
//
// The Buffer has no notion of modes. The dispatcher selects the plane
// subsequent operations target via SetPlane.
type Buffer struct {
	planes [3][]string
	active Plane

	past   snapshotStack
	future snapshotStack
}

// New creates a buffer whose Text plane holds a copy of lines.
// An empty or nil slice yields a single empty line; a plane always
// has at least one line.
func New(lines []string) *Buffer {
	b := &Buffer{}
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.planes[PlaneText] = append([]string(nil), lines...)
	b.planes[PlaneCommand] = []string{""}
	b.planes[PlaneScratch] = []string{""}
	return b
}

// SetPlane routes subsequent operations to the given plane.
func (b *Buffer) SetPlane(p Plane) {
	b.active = p
}

// ActivePlane returns the plane operations currently target.
func (b *Buffer) ActivePlane() Plane {
	return b.active
}

func (b *Buffer) lines() []string {
	return b.planes[b.active]
}

func (b *Buffer) setLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.planes[b.active] = lines
}

// LineCount returns the number of lines in the active plane.
func (b *Buffer) LineCount() int {
	return len(b.lines())
}

// MaxLine returns the last valid line index of the active plane.
func (b *Buffer) MaxLine() int {
	return len(b.lines()) - 1
}

// Line returns the contents of the given line of the active plane.
func (b *Buffer) Line(n int) (string, error) {
	if n < 0 || n >= len(b.lines()) {
		return "", ErrInvalidLineNumber
	}
	return b.lines()[n], nil
}

// MaxCol returns the rightmost valid column of the line at pos,
// i.e. the rune length of that line. Out-of-range lines report 0.
func (b *Buffer) MaxCol(pos LineCol) int {
	if pos.Line < 0 || pos.Line >= len(b.lines()) {
		return 0
	}
	return lineLen(b.lines()[pos.Line])
}

// Window returns the whole lines of the active plane between from.Line
// and to.Line inclusive, clipped to the plane. Used by the renderer.
func (b *Buffer) Window(from, to LineCol) ([]string, error) {
	if from.Line > to.Line {
		return nil, ErrInvalidRange
	}
	lines := b.lines()
	lo := max(0, from.Line)
	hi := min(to.Line, len(lines)-1)
	if lo > hi {
		return nil, nil
	}
	out := make([]string, hi-lo+1)
	copy(out, lines[lo:hi+1])
	return out, nil
}

// Text returns a copy of the full Text plane, regardless of the
// active plane. This is the persistence-boundary accessor.
func (b *Buffer) Text() []string {
	return append([]string(nil), b.planes[PlaneText]...)
}

// validate checks that pos addresses an existing line and a column in
// [0, line length]. The column one past the last rune is valid: it is
// the insertion point at end of line.
func (b *Buffer) validate(pos LineCol) error {
	if pos.Line < 0 || pos.Line >= len(b.lines()) {
		return ErrInvalidPosition
	}
	if pos.Col < 0 || pos.Col > lineLen(b.lines()[pos.Line]) {
		return ErrInvalidPosition
	}
	return nil
}

// commit records the current Text plane and the caller's cursor
// position in the undo history and invalidates the redo stack.
// Only Text-plane mutations are recorded; command prompt editing
// must not pollute undo history.
func (b *Buffer) commit(pos LineCol) {
	if b.active != PlaneText {
		return
	}
	b.past.push(snapshot{lines: append([]string(nil), b.planes[PlaneText]...), pos: pos})
	b.future.clear()
}

// Insert places a single rune at pos and returns the position just
// after it.
func (b *Buffer) Insert(pos LineCol, r rune) (LineCol, error) {
	if err := b.validate(pos); err != nil {
		return LineCol{}, err
	}
	b.commit(pos)
	lines := b.lines()
	runes := []rune(lines[pos.Line])
	runes = append(runes[:pos.Col], append([]rune{r}, runes[pos.Col:]...)...)
	lines[pos.Line] = string(runes)
	return LineCol{Line: pos.Line, Col: pos.Col + 1}, nil
}

// InsertText splices text into the active plane at pos.
//
// With asNewline false the text is spliced into the line at pos.Col;
// a multi-line text splits the line there and shifts subsequent lines
// down. The returned position is the end of the inserted text.
//
// With asNewline true the text is inserted as whole new line(s)
// immediately below pos.Line, and the returned position is the start
// of the first new line.
func (b *Buffer) InsertText(pos LineCol, text string, asNewline bool) (LineCol, error) {
	if err := b.validate(pos); err != nil {
		return LineCol{}, err
	}
	b.commit(pos)
	parts := strings.Split(text, "\n")
	lines := b.lines()

	if asNewline {
		tail := append([]string(nil), lines[pos.Line+1:]...)
		lines = append(lines[:pos.Line+1], append(parts, tail...)...)
		b.setLines(lines)
		return LineCol{Line: pos.Line + 1, Col: 0}, nil
	}

	runes := []rune(lines[pos.Line])
	prefix, suffix := string(runes[:pos.Col]), string(runes[pos.Col:])
	if len(parts) == 1 {
		lines[pos.Line] = prefix + parts[0] + suffix
		return LineCol{Line: pos.Line, Col: pos.Col + lineLen(parts[0])}, nil
	}

	spliced := make([]string, 0, len(parts))
	spliced = append(spliced, prefix+parts[0])
	spliced = append(spliced, parts[1:len(parts)-1]...)
	last := parts[len(parts)-1]
	end := LineCol{Line: pos.Line + len(parts) - 1, Col: lineLen(last)}
	spliced = append(spliced, last+suffix)

	tail := append([]string(nil), lines[pos.Line+1:]...)
	lines = append(lines[:pos.Line], append(spliced, tail...)...)
	b.setLines(lines)
	return end, nil
}

// InsertNewline splits the line after pos: the line keeps the text
// before pos.Col and the remainder moves to a new line at pos.Line+1.
// Returns the start of the new line.
func (b *Buffer) InsertNewline(pos LineCol) (LineCol, error) {
	if err := b.validate(pos); err != nil {
		return LineCol{}, err
	}
	b.commit(pos)
	lines := b.lines()
	runes := []rune(lines[pos.Line])
	prefix, suffix := string(runes[:pos.Col]), string(runes[pos.Col:])

	tail := append([]string(nil), lines[pos.Line+1:]...)
	lines = append(lines[:pos.Line], append([]string{prefix, suffix}, tail...)...)
	b.setLines(lines)
	return LineCol{Line: pos.Line + 1, Col: 0}, nil
}

// Delete removes the character before pos, backspace-style, and
// returns the resulting position. At column 0 the line is merged into
// the end of the previous one and the cursor lands at the old end of
// that line. At the very start of the plane there is nothing to
// remove and the ErrNothingToDelete sentinel is returned.
func (b *Buffer) Delete(pos LineCol) (LineCol, error) {
	if err := b.validate(pos); err != nil {
		return LineCol{}, err
	}
	lines := b.lines()

	if pos.Col > 0 {
		b.commit(pos)
		runes := []rune(lines[pos.Line])
		lines[pos.Line] = string(append(runes[:pos.Col-1], runes[pos.Col:]...))
		return LineCol{Line: pos.Line, Col: pos.Col - 1}, nil
	}

	if pos.Line == 0 {
		return LineCol{}, ErrNothingToDelete
	}

	b.commit(pos)
	prevLen := lineLen(lines[pos.Line-1])
	lines[pos.Line-1] += lines[pos.Line]
	b.setLines(append(lines[:pos.Line], lines[pos.Line+1:]...))
	return LineCol{Line: pos.Line - 1, Col: prevLen}, nil
}

// DeleteSelection removes the half-open range [from, to). When the
// range covers whole lines (from.Col is 0 and to.Col reaches the end
// of its line) the lines themselves are removed; otherwise the prefix
// of from.Line is spliced onto the suffix of to.Line.
func (b *Buffer) DeleteSelection(from, to LineCol) error {
	if to.Before(from) {
		return ErrInvalidRange
	}
	if err := b.validate(from); err != nil {
		return ErrInvalidRange
	}
	if err := b.validate(to); err != nil {
		return ErrInvalidRange
	}
	b.commit(from)
	lines := b.lines()

	if from.Col == 0 && to.Col >= lineLen(lines[to.Line]) {
		b.setLines(append(lines[:from.Line], lines[to.Line+1:]...))
		return nil
	}

	fromRunes := []rune(lines[from.Line])
	toRunes := []rune(lines[to.Line])
	lines[from.Line] = string(fromRunes[:from.Col]) + string(toRunes[to.Col:])
	b.setLines(append(lines[:from.Line+1], lines[to.Line+1:]...))
	return nil
}

// DeleteLine removes a whole line from the active plane. Deleting the
// only line leaves a single empty one.
func (b *Buffer) DeleteLine(line int) error {
	lines := b.lines()
	if line < 0 || line >= len(lines) {
		return ErrInvalidLineNumber
	}
	b.commit(LineCol{Line: line})
	b.setLines(append(lines[:line], lines[line+1:]...))
	return nil
}

// Replace substitutes the range [from, to) with text, preserving the
// prefix before from and the suffix after to and expanding or
// contracting the line count as needed. Empty text is a caller error;
// removal goes through DeleteSelection instead.
func (b *Buffer) Replace(from, to LineCol, text string) error {
	if text == "" {
		return ErrInvalidInput
	}
	if to.Before(from) {
		return ErrInvalidRange
	}
	if err := b.validate(from); err != nil {
		return ErrInvalidRange
	}
	if err := b.validate(to); err != nil {
		return ErrInvalidRange
	}
	b.commit(from)
	lines := b.lines()

	prefix := string([]rune(lines[from.Line])[:from.Col])
	suffix := string([]rune(lines[to.Line])[to.Col:])
	parts := strings.Split(text, "\n")

	var spliced []string
	if len(parts) == 1 {
		spliced = []string{prefix + parts[0] + suffix}
	} else {
		spliced = make([]string, 0, len(parts))
		spliced = append(spliced, prefix+parts[0])
		spliced = append(spliced, parts[1:len(parts)-1]...)
		spliced = append(spliced, parts[len(parts)-1]+suffix)
	}

	tail := append([]string(nil), lines[to.Line+1:]...)
	b.setLines(append(lines[:from.Line], append(spliced, tail...)...))
	return nil
}

// GetText returns the text in [from, to), joining interior full lines
// with newlines.
func (b *Buffer) GetText(from, to LineCol) (string, error) {
	if to.Before(from) {
		return "", ErrInvalidRange
	}
	if err := b.validate(from); err != nil {
		return "", ErrInvalidRange
	}
	if err := b.validate(to); err != nil {
		return "", ErrInvalidRange
	}
	lines := b.lines()

	if from.Line == to.Line {
		runes := []rune(lines[from.Line])
		return string(runes[from.Col:to.Col]), nil
	}

	var sb strings.Builder
	sb.WriteString(string([]rune(lines[from.Line])[from.Col:]))
	sb.WriteByte('\n')
	for _, line := range lines[from.Line+1 : to.Line] {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(string([]rune(lines[to.Line])[:to.Col]))
	return sb.String(), nil
}

// Undo restores the most recent Text-plane snapshot. The caller's
// current cursor position is stored with the displaced content so a
// later Redo can restore it; the returned position is the one recorded
// when the undone edit was made.
func (b *Buffer) Undo(pos LineCol) (LineCol, error) {
	sn, ok := b.past.pop()
	if !ok {
		return LineCol{}, ErrNowhereToGo
	}
	b.future.push(snapshot{lines: b.planes[PlaneText], pos: pos})
	b.planes[PlaneText] = sn.lines
	return sn.pos, nil
}

// Redo reverses the most recent Undo. See Undo for the cursor
// position contract.
func (b *Buffer) Redo(pos LineCol) (LineCol, error) {
	sn, ok := b.future.pop()
	if !ok {
		return LineCol{}, ErrNowhereToGo
	}
	b.past.push(snapshot{lines: b.planes[PlaneText], pos: pos})
	b.planes[PlaneText] = sn.lines
	return sn.pos, nil
}

// CommandText returns the contents of the command prompt line.
func (b *Buffer) CommandText() string {
	return b.planes[PlaneCommand][0]
}

// ReplaceCommandText overwrites the command prompt line.
func (b *Buffer) ReplaceCommandText(text string) {
	b.planes[PlaneCommand] = []string{text}
}

// ClearCommand resets the command prompt to a single empty line.
func (b *Buffer) ClearCommand() {
	b.planes[PlaneCommand] = []string{""}
}

// IsCommandEmpty reports whether the command prompt holds no text.
func (b *Buffer) IsCommandEmpty() bool {
	return b.planes[PlaneCommand][0] == ""
}

func lineLen(line string) int {
	return len([]rune(line))
}
