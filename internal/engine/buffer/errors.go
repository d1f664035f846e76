package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrInvalidPosition indicates a position outside the plane's bounds.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidRange indicates an unordered or out-of-bounds range.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidLineNumber indicates a line number outside the plane.
	ErrInvalidLineNumber = errors.New("invalid line number")

	// ErrInvalidInput indicates a malformed argument, e.g. an empty
	// search query or empty replacement text.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPatternNotFound indicates a search exhausted the plane
	// without a match. Expected and recoverable.
	ErrPatternNotFound = errors.New("pattern not found")

	// ErrNowhereToGo indicates an empty undo or redo stack.
	// Expected and recoverable.
	ErrNowhereToGo = errors.New("nowhere to go")

	// ErrNothingToDelete is the harmless no-op sentinel returned when
	// deleting at the very start of a plane. Callers absorb it silently;
	// it must never be treated as a fatal condition.
	ErrNothingToDelete = errors.New("nothing to delete")
)
