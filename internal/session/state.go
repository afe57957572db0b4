package session

// LoadingState is the state of the most recent generation request.
type LoadingState int

const (
	Idle    LoadingState = iota // No request yet
	Loading                     // Waiting for the latest request
	Success                     // Latest request produced the current story
	Error                       // Latest request failed
)

func (s LoadingState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome describes what one answer did.
type Outcome struct {
	// Awarded is true when this answer solved the challenge.
	Awarded bool

	// Correct mirrors the challenge state after the answer.
	Correct bool
}
