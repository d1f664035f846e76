// Package pattern provides a uniform search abstraction over literal
// strings, single characters, and character predicates. The buffer's
// find operations accept any Pattern and walk lines with it, so motion
// code can search for "foo", for 'x', or for "the next non-blank"
// through one interface.
package pattern

import "strings"

// Pattern locates matches within a single line of text. Implementations
// report rune columns; a match at the start of the slice being examined
// is column 0 of that slice plus the caller's offset.
type Pattern interface {
	// Match returns the rune column of the first match in line at or
	// after fromCol, and whether one exists.
	Match(line string, fromCol int) (int, bool)

	// RMatch returns the rune column of the last match strictly before
	// beforeCol, and whether one exists.
	RMatch(line string, beforeCol int) (int, bool)

	// Empty reports whether the pattern can never match anything,
	// e.g. a zero-length literal. Searching with an empty pattern is
	// a caller error.
	Empty() bool
}

// Literal matches an exact, case-sensitive substring.
type Literal string

// Match implements Pattern.
func (l Literal) Match(line string, fromCol int) (int, bool) {
	runes := []rune(line)
	if fromCol > len(runes) {
		return 0, false
	}
	idx := strings.Index(string(runes[fromCol:]), string(l))
	if idx < 0 {
		return 0, false
	}
	// Index is in bytes within the tail; convert back to runes.
	return fromCol + len([]rune(string(runes[fromCol:])[:idx])), true
}

// RMatch implements Pattern.
func (l Literal) RMatch(line string, beforeCol int) (int, bool) {
	runes := []rune(line)
	if beforeCol > len(runes) {
		beforeCol = len(runes)
	}
	head := string(runes[:beforeCol])
	idx := strings.LastIndex(head, string(l))
	if idx < 0 {
		return 0, false
	}
	return len([]rune(head[:idx])), true
}

// Empty implements Pattern.
func (l Literal) Empty() bool {
	return len(l) == 0
}

// Char matches a single rune.
type Char rune

// Match implements Pattern.
func (c Char) Match(line string, fromCol int) (int, bool) {
	for i, r := range []rune(line) {
		if i >= fromCol && r == rune(c) {
			return i, true
		}
	}
	return 0, false
}

// RMatch implements Pattern.
func (c Char) RMatch(line string, beforeCol int) (int, bool) {
	runes := []rune(line)
	if beforeCol > len(runes) {
		beforeCol = len(runes)
	}
	for i := beforeCol - 1; i >= 0; i-- {
		if runes[i] == rune(c) {
			return i, true
		}
	}
	return 0, false
}

// Empty implements Pattern.
func (c Char) Empty() bool {
	return false
}

// Predicate matches any rune for which the function returns true.
type Predicate func(rune) bool

// Match implements Pattern.
func (p Predicate) Match(line string, fromCol int) (int, bool) {
	for i, r := range []rune(line) {
		if i >= fromCol && p(r) {
			return i, true
		}
	}
	return 0, false
}

// RMatch implements Pattern.
func (p Predicate) RMatch(line string, beforeCol int) (int, bool) {
	runes := []rune(line)
	if beforeCol > len(runes) {
		beforeCol = len(runes)
	}
	for i := beforeCol - 1; i >= 0; i-- {
		if p(runes[i]) {
			return i, true
		}
	}
	return 0, false
}

// Empty implements Pattern.
func (p Predicate) Empty() bool {
	return p == nil
}
