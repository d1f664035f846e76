package editor

// history is a bounded list of prompt entries with a navigation
// pointer for Up/Down recall. Entries are stored oldest first; the
// pointer sits one past the newest entry while the user is typing.
type history struct {
	entries []string
	limit   int
	pos     int
}

func newHistory(limit int) *history {
	if limit <= 0 {
		limit = 50
	}
	return &history{limit: limit, pos: 0}
}

// seed loads persisted entries, oldest first.
func (h *history) seed(entries []string) {
	if len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}
	h.entries = append([]string(nil), entries...)
	h.pos = len(h.entries)
}

// add records an executed entry and rewinds navigation. Consecutive
// duplicates collapse.
func (h *history) add(entry string) {
	if entry == "" {
		h.reset()
		return
	}
	if n := len(h.entries); n == 0 || h.entries[n-1] != entry {
		h.entries = append(h.entries, entry)
		if len(h.entries) > h.limit {
			h.entries = h.entries[1:]
		}
	}
	h.reset()
}

// reset points navigation back at "newest", i.e. the line being
// typed. Called whenever the user edits the prompt.
func (h *history) reset() {
	h.pos = len(h.entries)
}

// prev steps toward older entries.
func (h *history) prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// next steps toward newer entries. Stepping past the newest reports
// false; the caller restores the empty prompt.
func (h *history) next() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return "", false
	}
	return h.entries[h.pos], true
}
