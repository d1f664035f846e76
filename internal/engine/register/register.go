// Package register stores yanked and deleted text. Named registers
// a-z hold text the user explicitly yanked into them; the numbered
// ring keeps the last yank in slot 0 and the most recent deletions in
// slots 1-9.
package register

import "errors"

// ringSize bounds the numbered register ring.
const ringSize = 10

// Sentinel errors for register access.
var (
	ErrInvalidRegister = errors.New("register: no such register")
	ErrEmptyRegister   = errors.New("register: register is empty")
)

// Registers is the full register file.
type Registers struct {
	named map[rune]string

	// ring[0] is the last yank; deletions shift into ring[1:].
	ring []string

	// unnamed tracks the most recent yank or deletion, whichever
	// came last. Plain p pastes from here.
	unnamed string
}

// New returns an empty register file.
func New() *Registers {
	return &Registers{named: make(map[rune]string)}
}

// Yank stores text from a yank operation. With name 0 the text goes
// to numbered slot 0, replacing the previous yank; with a lowercase
// letter it goes to that named register.
func (r *Registers) Yank(name rune, text string) error {
	if name == 0 {
		if len(r.ring) == 0 {
			r.ring = append(r.ring, "")
		}
		r.ring[0] = text
		r.unnamed = text
		return nil
	}
	if name < 'a' || name > 'z' {
		return ErrInvalidRegister
	}
	r.named[name] = text
	return nil
}

// Push records deleted text in the numbered ring. It enters at slot 1
// and shifts older deletions toward slot 9; slot 0, the last yank, is
// never displaced.
func (r *Registers) Push(text string) {
	if len(r.ring) == 0 {
		r.ring = append(r.ring, "")
	}
	rest := append([]string{text}, r.ring[1:]...)
	if len(rest) > ringSize-1 {
		rest = rest[:ringSize-1]
	}
	r.ring = append(r.ring[:1], rest...)
	r.unnamed = text
}

// Get reads a register. Name 0 addresses the unnamed register, which
// holds the most recent yank or deletion; '0' addresses the last-yank
// slot; '1' through '9' address the deletion ring; lowercase letters
// address named registers. Reading a register that holds nothing
// returns ErrEmptyRegister.
func (r *Registers) Get(name rune) (string, error) {
	switch {
	case name == 0:
		if r.unnamed == "" {
			return "", ErrEmptyRegister
		}
		return r.unnamed, nil
	case name >= '0' && name <= '9':
		idx := int(name - '0')
		if idx >= len(r.ring) || r.ring[idx] == "" {
			return "", ErrEmptyRegister
		}
		return r.ring[idx], nil
	case name >= 'a' && name <= 'z':
		text, ok := r.named[name]
		if !ok {
			return "", ErrEmptyRegister
		}
		return text, nil
	default:
		return "", ErrInvalidRegister
	}
}
