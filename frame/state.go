// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import "fmt"

// State is a Driver state.
type State int

// Driver states.
const (
	// StateIdle is the state between ticks.
	StateIdle State = iota
	// StateAwaitingRedraw waits for the window's redraw signal while
	// pumping platform events.
	StateAwaitingRedraw
	// StateAcquiring asks the surface for a presentable image.
	StateAcquiring
	// StateBuilding runs the UI frame.
	StateBuilding
	// StateSubmitting records and submits the GPU commands.
	StateSubmitting
	// StatePresenting hands the image back for display.
	StatePresenting
	// StateTerminated is final.
	StateTerminated
)

var stateNames = [...]string{
	StateIdle:           "Idle",
	StateAwaitingRedraw: "AwaitingRedraw",
	StateAcquiring:      "Acquiring",
	StateBuilding:       "Building",
	StateSubmitting:     "Submitting",
	StatePresenting:     "Presenting",
	StateTerminated:     "Terminated",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// validTransitions lists the edges of the state machine. Terminated is
// reachable from every state and is not listed.
var validTransitions = map[State][]State{
	StateIdle:           {StateAwaitingRedraw},
	StateAwaitingRedraw: {StateAcquiring},
	StateAcquiring:      {StateBuilding, StateIdle},
	StateBuilding:       {StateSubmitting, StateIdle},
	StateSubmitting:     {StatePresenting, StateIdle},
	StatePresenting:     {StateIdle},
}

// CanTransition reports whether the driver may move from one state to
// another.
func CanTransition(from, to State) bool {
	if from == StateTerminated {
		return false
	}
	if to == StateTerminated {
		return true
	}
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
