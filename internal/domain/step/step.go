package step

import (
	"context"
	"fmt"
)

// Name identifies a provisioning step
type Name string

// String returns the step name as a string
func (n Name) String() string {
	return string(n)
}

// State represents where a step is in its lifecycle
type State int

const (
	StatePending State = iota
	StateRunning
	StateDone
	StateAborted
)

// String returns a human-readable state
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Step is one declarative operation of the provisioning workflow.
// Apply performs the mutation; Probe reports whether the step's
// postcondition already holds on the host. Probe may be nil when the
// postcondition cannot be observed cheaply.
type Step struct {
	Name        Name
	Description string
	// Needs lists steps whose postconditions this step assumes
	Needs []Name
	// Diagnostic is the message printed when the step fails.
	// Several of these are fixed, historical strings.
	Diagnostic string
	Apply      func(ctx context.Context) error
	Probe      func(ctx context.Context) (bool, error)
}

// AbortError is the terminal failure of a provisioning run.
// It names the step that failed and carries its fixed diagnostic.
type AbortError struct {
	Step       Name
	Diagnostic string
	Err        error
}

// Error returns the step diagnostic
func (e *AbortError) Error() string {
	return e.Diagnostic
}

// Unwrap returns the underlying command error
func (e *AbortError) Unwrap() error {
	return e.Err
}

// Result records the outcome of a single step in a run
type Result struct {
	Name  Name
	State State
	Err   error
}

// abort builds the terminal error for a failed step
func abort(s *Step, err error) *AbortError {
	diag := s.Diagnostic
	if diag == "" {
		diag = fmt.Sprintf("Step %s failed", s.Name)
	}
	return &AbortError{Step: s.Name, Diagnostic: diag, Err: err}
}
