// Package flow holds the lifecycle of a single user submission.
//
//	idle ──Begin──▶ submitting ──Succeed──▶ success ──Reset──▶ idle
//	                    │                                 ▲
//	                    └──Fail──▶ error ──Begin──▶ …     │
//	                                  └──────Reset────────┘
package flow

import (
	"errors"
	"fmt"
)

type State string

const (
	Idle       State = "idle"
	Submitting State = "submitting"
	Succeeded  State = "success"
	Failed     State = "error"
)

var (
	ErrIllegalTransition = errors.New("illegal submission transition")
	// ErrInFlight is returned by Begin while a submission is already running.
	ErrInFlight = errors.New("submission already in flight")
)

// Submission is the state of one form instance. Error is only set in Failed.
type Submission struct {
	State State  `json:"state"`
	Error string `json:"error,omitempty"`
}

func New() Submission {
	return Submission{State: Idle}
}

// Begin moves to Submitting from Idle, or from Failed on resubmission.
func (s *Submission) Begin() error {
	switch s.State {
	case Idle, Failed:
		s.State = Submitting
		s.Error = ""
		return nil
	case Submitting:
		return ErrInFlight
	default:
		return illegal(s.State, Submitting)
	}
}

func (s *Submission) Succeed() error {
	if s.State != Submitting {
		return illegal(s.State, Succeeded)
	}

	s.State = Succeeded
	s.Error = ""

	return nil
}

func (s *Submission) Fail(message string) error {
	if s.State != Submitting {
		return illegal(s.State, Failed)
	}

	s.State = Failed
	s.Error = message

	return nil
}

// Reset returns a finished submission to Idle. Resetting an idle submission is a no-op.
func (s *Submission) Reset() error {
	switch s.State {
	case Idle, Succeeded, Failed:
		s.State = Idle
		s.Error = ""
		return nil
	default:
		return illegal(s.State, Idle)
	}
}

func (s Submission) InFlight() bool {
	return s.State == Submitting
}

func illegal(from, to State) error {
	return fmt.Errorf("%w: %s to %s", ErrIllegalTransition, from, to)
}
