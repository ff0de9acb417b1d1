package status

import "github.com/erbsland-dev/erbsland-maze-go/geometry"

// Kind identifies which phase boundary an Event marks, per spec.md §4.8.
type Kind int

const (
	LayoutComputed Kind = iota
	AttemptStarted
	PathsCarved
	IslandsFilled
	Joined
	VerifyOk
	VerifyFailed
	Aborted
	Completed
	// Warning carries a non-fatal ErrorMark collected while ignore_errors
	// is set, per SPEC_FULL.md §3.1.
	Warning
)

// String renders the event kind for log output.
func (k Kind) String() string {
	switch k {
	case LayoutComputed:
		return "layout_computed"
	case AttemptStarted:
		return "attempt_started"
	case PathsCarved:
		return "paths_carved"
	case IslandsFilled:
		return "islands_filled"
	case Joined:
		return "joined"
	case VerifyOk:
		return "verify_ok"
	case VerifyFailed:
		return "verify_failed"
	case Aborted:
		return "aborted"
	case Completed:
		return "completed"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// ErrorMark is a located, non-fatal problem recorded instead of aborting
// when ignore_errors is set, per the reference generator's ErrorMark
// record (SPEC_FULL.md §3.1).
type ErrorMark struct {
	Location geometry.RoomLocation
	Size     geometry.RoomSize
	Message  string
}

// Event is one status notification. Only the fields relevant to Kind are
// populated; the rest are zero.
type Event struct {
	Kind Kind

	// LayoutComputed
	NX, NY int
	CellMM float64

	// AttemptStarted
	Attempt int

	// IslandsFilled
	IslandCount int

	// Joined
	PathA, PathB int

	// VerifyFailed
	Reason string

	// Aborted
	AbortKind error

	// Warning
	Mark ErrorMark
}

// Sink receives Event notifications inline. Implementations must not
// block, per spec.md §5.
type Sink func(Event)

// Emit calls sink with e if sink is non-nil, so callers can pass a nil
// Sink to mean "no status reporting" without a nil check at every call
// site.
func Emit(sink Sink, e Event) {
	if sink != nil {
		sink(e)
	}
}
