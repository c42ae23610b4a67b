package capture

// State is the capture lifecycle state. All status flags live here; there are
// no side-channel booleans to drift out of sync.
type State int

const (
	StateIdle State = iota
	StateInitializing
	StateCapturing
	StatePaused
	StateProcessing
	StateEnhancing
	StateFinalizing
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitializing:
		return "initializing"
	case StateCapturing:
		return "capturing"
	case StatePaused:
		return "paused"
	case StateProcessing:
		return "processing"
	case StateEnhancing:
		return "enhancing"
	case StateFinalizing:
		return "finalizing"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
