package editor

// maxCount bounds how far a numeric prefix can multiply a command.
// Larger prefixes clamp rather than stalling the editor.
const maxCount = 10000

// countState accumulates a numeric prefix one digit at a time.
// A leading 0 is never a digit; normal mode treats it as the
// line-start motion.
type countState struct {
	n      int
	active bool
}

// push appends a decimal digit.
func (c *countState) push(d rune) {
	c.active = true
	c.n = c.n*10 + int(d-'0')
	if c.n > maxCount {
		c.n = maxCount
	}
}

// take consumes the accumulated count, defaulting to 1.
func (c *countState) take() int {
	if !c.active {
		return 1
	}
	n := c.n
	c.reset()
	if n < 1 {
		n = 1
	}
	return n
}

// peek reports the count without consuming it, and whether one was
// typed at all.
func (c *countState) peek() (int, bool) {
	return c.n, c.active
}

func (c *countState) reset() {
	c.n = 0
	c.active = false
}
