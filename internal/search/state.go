package search

import (
	"errors"
	"fmt"
	"time"
)

// State is a step in the lifecycle of one search request.
type State string

const (
	StateIdle        State = "idle"
	StateClassifying State = "classifying"
	StateDispatching State = "dispatching"
	StateMerging     State = "merging"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// ErrInvalidTransition is returned when an invalid state transition is attempted.
var ErrInvalidTransition = errors.New("invalid state transition")

// ValidTransitions defines allowed state transitions.
// Key is the current state, value is the list of valid next states.
var ValidTransitions = map[State][]State{
	StateIdle:        {StateClassifying},
	StateClassifying: {StateDispatching, StateFailed},
	StateDispatching: {StateMerging, StateFailed},
	StateMerging:     {StateDone},
}

// CanTransition checks if a transition from one state to another is valid.
func CanTransition(from, to State) bool {
	validTargets, ok := ValidTransitions[from]
	if !ok {
		return false
	}

	for _, target := range validTargets {
		if target == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s State) bool {
	return s == StateDone || s == StateFailed
}

// Transition represents a state change with metadata.
type Transition struct {
	RequestID string
	From      State
	To        State
	Reason    string
	Timestamp time.Time
}

// NewTransition creates a new transition record.
func NewTransition(requestID string, from, to State, reason string) Transition {
	return Transition{
		RequestID: requestID,
		From:      from,
		To:        to,
		Reason:    reason,
		Timestamp: time.Now(),
	}
}

// IsValid returns true if this transition is allowed by the state machine.
func (t Transition) IsValid() bool {
	return CanTransition(t.From, t.To)
}

// StateDescription returns a human-readable description of a state.
func StateDescription(s State) string {
	switch s {
	case StateIdle:
		return "Idle - request received, not yet started"
	case StateClassifying:
		return "Classifying - deciding what the query refers to"
	case StateDispatching:
		return "Dispatching - fetching entity data from the node"
	case StateMerging:
		return "Merging - assembling result entries"
	case StateDone:
		return "Done - envelope returned"
	case StateFailed:
		return "Failed - request abandoned before completion"
	default:
		return "Unknown state"
	}
}

// lifecycle tracks the state of one request and reports each step.
type lifecycle struct {
	requestID string
	state     State
	notify    func(Transition)
}

func newLifecycle(requestID string, notify func(Transition)) *lifecycle {
	return &lifecycle{requestID: requestID, state: StateIdle, notify: notify}
}

func (l *lifecycle) advance(to State, reason string) error {
	if IsTerminal(l.state) {
		return fmt.Errorf("%w: request already %s", ErrInvalidTransition, l.state)
	}
	t := NewTransition(l.requestID, l.state, to, reason)
	if !t.IsValid() {
		return ErrInvalidTransition
	}
	l.state = to
	if l.notify != nil {
		l.notify(t)
	}
	return nil
}
