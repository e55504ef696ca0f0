package installer

import "github.com/aurelab/mgsetup/internal/messages"

// State is a position in the installer's linear stage machine:
// Dependencies -> VirtualEnv -> Packages -> Done, with a single failure
// transition from any stage to Aborted.
type State int

const (
	// StateDependencies installs native system libraries.
	StateDependencies State = iota
	// StateVirtualEnv provisions the Python virtual environment.
	StateVirtualEnv
	// StatePackages installs the pinned Python packages.
	StatePackages
	// StateDone is the terminal success state.
	StateDone
	// StateAborted is the terminal failure state.
	StateAborted
)

// Next returns the state that follows on success. Terminal states return
// themselves.
func (s State) Next() State {
	switch s {
	case StateDependencies:
		return StateVirtualEnv
	case StateVirtualEnv:
		return StatePackages
	case StatePackages:
		return StateDone
	default:
		return s
	}
}

// Terminal reports whether the state ends the run.
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted
}

// Name returns the operator-facing stage name.
func (s State) Name() string {
	switch s {
	case StateDependencies:
		return messages.StageNameDependencies
	case StateVirtualEnv:
		return messages.StageNameVirtualEnv
	case StatePackages:
		return messages.StageNamePackages
	case StateDone:
		return "done"
	default:
		return "aborted"
	}
}
