package guard

import (
	"errors"
	"fmt"
)

// State is the deletion dialog state of one list view.
type State string

const (
	Idle       State = "IDLE"
	Confirming State = "CONFIRMING"
)

// Op names a guard transition.
type Op string

const (
	OpRequest Op = "request_delete"
	OpCancel  Op = "cancel"
	OpConfirm Op = "confirm"
)

// validTransitions maps each state to the operations it accepts and the
// state each one leads to. Confirm's target only applies when removal
// succeeds.
var validTransitions = map[State]map[Op]State{
	Idle:       {OpRequest: Confirming},
	Confirming: {OpCancel: Idle, OpConfirm: Idle},
}

// ErrInvalidStateTransition is matched by every *InvalidTransitionError.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// InvalidTransitionError reports an operation the current state rejects.
type InvalidTransitionError struct {
	From State
	Op   Op
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.From)
}

// Is makes errors.Is(err, ErrInvalidStateTransition) hold.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidStateTransition
}

func next(from State, op Op) (State, error) {
	to, ok := validTransitions[from][op]
	if !ok {
		return from, &InvalidTransitionError{From: from, Op: op}
	}
	return to, nil
}

// StateChange is the payload of guard state events.
type StateChange struct {
	Kind string
	ID   string
	From State
	To   State
}
