package model

import (
	"fmt"
	"slices"
)

// State is a step of one intake attempt.
type State string

const (
	StateStart            State = "START"
	StateEmailSubmitted   State = "EMAIL_SUBMITTED"
	StateIdentityResolved State = "IDENTITY_RESOLVED"
	StateContactWritten   State = "CONTACT_WRITTEN"
	StateTicketOpened     State = "TICKET_OPENED"
	StateHandedToWidget   State = "HANDED_TO_WIDGET"
	StateError            State = "ERROR"
)

var transitions = map[State][]State{
	StateStart:            {StateEmailSubmitted},
	StateEmailSubmitted:   {StateIdentityResolved},
	StateIdentityResolved: {StateContactWritten},
	StateContactWritten:   {StateTicketOpened},
	StateTicketOpened:     {StateHandedToWidget},
}

// CanTransition reports whether to may follow s. ERROR follows any state but
// HANDED_TO_WIDGET and ERROR, which are terminal.
func (s State) CanTransition(to State) bool {
	if s.IsTerminal() {
		return false
	}

	if to == StateError {
		return true
	}

	return slices.Contains(transitions[s], to)
}

func (s State) IsTerminal() bool {
	return s == StateHandedToWidget || s == StateError
}

// Flow tracks one attempt through the states. It is not safe for concurrent use.
type Flow struct {
	email   string
	state   State
	visitor VisitorKind
	trail   []State
}

func NewFlow(email string) *Flow {
	return &Flow{
		email: email,
		state: StateStart,
		trail: []State{StateStart},
	}
}

// Advance moves the flow to the next state.
func (f *Flow) Advance(to State) error {
	if !f.state.CanTransition(to) {
		return fmt.Errorf("illegal intake transition %s -> %s", f.state, to)
	}

	f.state = to
	f.trail = append(f.trail, to)

	return nil
}

// Resolve records the identity outcome together with IDENTITY_RESOLVED.
func (f *Flow) Resolve(kind VisitorKind) error {
	if err := f.Advance(StateIdentityResolved); err != nil {
		return err
	}

	f.visitor = kind

	return nil
}

// Fail moves the flow to ERROR and hands back err for the caller to return.
// The state before the failure stays available through FailedAt.
func (f *Flow) Fail(err error) error {
	if f.state != StateError {
		f.trail = append(f.trail, StateError)
		f.state = StateError
	}

	return err
}

// FailedAt is the last state reached before ERROR, or empty if the flow has not failed.
func (f *Flow) FailedAt() State {
	if f.state != StateError || len(f.trail) < 2 {
		return ""
	}

	return f.trail[len(f.trail)-2]
}

func (f *Flow) State() State {
	return f.state
}

func (f *Flow) Visitor() VisitorKind {
	return f.visitor
}

func (f *Flow) Email() string {
	return f.email
}

// Trail returns the visited states in order.
func (f *Flow) Trail() []State {
	return slices.Clone(f.trail)
}
