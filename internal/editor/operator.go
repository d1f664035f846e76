package editor

// pendingOp holds a prefix key waiting for its argument, such as the
// d in dd, the f in fx, or the " in "ay. At most one prefix is
// pending at a time; Escape discards it.
type pendingOp struct {
	op     rune
	active bool
}

// set arms the prefix.
func (p *pendingOp) set(op rune) {
	p.op = op
	p.active = true
}

// take consumes the pending prefix.
func (p *pendingOp) take() rune {
	op := p.op
	p.reset()
	return op
}

func (p *pendingOp) reset() {
	p.op = 0
	p.active = false
}
