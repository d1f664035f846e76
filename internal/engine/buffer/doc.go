// Package buffer implements the editor's text storage: three
// independent planes of lines (text, command prompt, scratch), edit
// operations addressed by rune-based line/column positions, pattern
// search across lines, and a bounded undo/redo history for the text
// plane.
package buffer
