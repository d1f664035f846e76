package editor

import "errors"

// ErrQuit is returned by HandleKey when the user asked to leave the
// editor. The event loop treats it as a clean shutdown signal, not a
// failure.
var ErrQuit = errors.New("editor: quit requested")
