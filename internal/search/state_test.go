package search

import (
	"errors"
	"strings"
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateIdle, StateClassifying, true},
		{StateClassifying, StateDispatching, true},
		{StateClassifying, StateFailed, true},
		{StateDispatching, StateMerging, true},
		{StateDispatching, StateFailed, true},
		{StateMerging, StateDone, true},
		{StateIdle, StateDone, false},
		{StateMerging, StateFailed, false},
		{StateDone, StateIdle, false},
		{StateFailed, StateClassifying, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, s := range []State{StateDone, StateFailed} {
		if !IsTerminal(s) {
			t.Errorf("expected %s to be terminal", s)
		}
		if len(ValidTransitions[s]) != 0 {
			t.Errorf("expected no transitions out of %s", s)
		}
	}
}

func TestLifecycleRejectsInvalidStep(t *testing.T) {
	var seen []Transition
	l := newLifecycle("req", func(tr Transition) { seen = append(seen, tr) })

	if err := l.advance(StateDone, "skip"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if l.state != StateIdle {
		t.Errorf("state changed on invalid transition: %s", l.state)
	}
	if len(seen) != 0 {
		t.Errorf("callback fired on invalid transition")
	}
}

func TestLifecycleStopsAtTerminalState(t *testing.T) {
	l := newLifecycle("req", nil)
	for _, s := range []State{StateClassifying, StateDispatching, StateMerging, StateDone} {
		if err := l.advance(s, ""); err != nil {
			t.Fatalf("advance to %s: %v", s, err)
		}
	}

	err := l.advance(StateFailed, "late")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if !strings.Contains(err.Error(), "already done") {
		t.Errorf("unexpected error text %q", err)
	}
	if l.state != StateDone {
		t.Errorf("expected done, got %s", l.state)
	}
}

func TestStateDescription(t *testing.T) {
	if StateDescription(State("bogus")) != "Unknown state" {
		t.Error("expected fallback description")
	}
	if StateDescription(StateDispatching) == "Unknown state" {
		t.Error("expected description for dispatching")
	}
}
