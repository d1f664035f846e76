package buffer

// maxSnapshots caps the undo and redo stacks. Oldest entries are
// dropped first once the cap is exceeded.
const maxSnapshots = 1000

// snapshot pairs a full copy of the Text plane with the cursor
// position at the time of the edit, so undo restores both.
type snapshot struct {
	lines []string
	pos   LineCol
}

// snapshotStack is a bounded LIFO of plane snapshots.
type snapshotStack struct {
	entries []snapshot
}

func (s *snapshotStack) push(sn snapshot) {
	s.entries = append(s.entries, sn)
	if len(s.entries) > maxSnapshots {
		s.entries = s.entries[len(s.entries)-maxSnapshots:]
	}
}

func (s *snapshotStack) pop() (snapshot, bool) {
	if len(s.entries) == 0 {
		return snapshot{}, false
	}
	sn := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return sn, true
}

func (s *snapshotStack) clear() {
	s.entries = s.entries[:0]
}

func (s *snapshotStack) Len() int {
	return len(s.entries)
}
