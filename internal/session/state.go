package session

import "time"

// Phase is a named state in the per-user conversation state machine
type Phase int

const (
	// PhaseIdle is the initial and terminal phase; no add flow is active
	PhaseIdle Phase = iota
	// PhaseAwaitingCategory means the user triggered an add and must pick
	// a category
	PhaseAwaitingCategory
	// PhaseAwaitingText means a category is chosen and the next text
	// message becomes the task
	PhaseAwaitingText
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingCategory:
		return "awaiting_category"
	case PhaseAwaitingText:
		return "awaiting_text"
	default:
		return "unknown"
	}
}

// State tracks one user's progress through the add-task flow. It is owned
// exclusively by that user's session and never shared.
type State struct {
	Phase           Phase
	PendingCategory string
	UpdatedAt       time.Time
}
