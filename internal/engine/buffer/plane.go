package buffer

// Plane identifies which of the buffer's line collections an
// operation targets.
type Plane uint8

const (
	// PlaneText is the main document text.
	PlaneText Plane = iota

	// PlaneCommand is the single-line command/find prompt.
	PlaneCommand

	// PlaneScratch is the transient terminal scratch area.
	PlaneScratch
)

// String returns a human-readable plane name.
func (p Plane) String() string {
	switch p {
	case PlaneText:
		return "text"
	case PlaneCommand:
		return "command"
	case PlaneScratch:
		return "scratch"
	default:
		return "unknown"
	}
}
