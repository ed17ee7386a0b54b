// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workflow

// State is a node of the booking loop.
type State int

const (
	StateSelectAircraft State = iota
	StateListing
	StateMainMenu
	StateCreating
	StateDeleting
	StateReselecting
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateSelectAircraft:
		return "select_aircraft"
	case StateListing:
		return "listing"
	case StateMainMenu:
		return "main_menu"
	case StateCreating:
		return "creating"
	case StateDeleting:
		return "deleting"
	case StateReselecting:
		return "reselecting"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Outcome tells why the loop stopped.
type Outcome int

const (
	// OutcomeExited means the user left through an exit option or declined
	// a selection prompt.
	OutcomeExited Outcome = iota

	// OutcomeNoAircraft means no usable aircraft was available.
	OutcomeNoAircraft
)

func (o Outcome) String() string {
	if o == OutcomeNoAircraft {
		return "no_aircraft"
	}
	return "exited"
}
