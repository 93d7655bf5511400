package view

import (
	"context"
	"sync"
	"time"

	"github.com/FidelisKagashe26/godcares/core"
)

const (
	SubmitErrorMessage  = "Imeshindwa kutuma. Tafadhali jaribu tena."
	InvalidFormMessage  = "Tafadhali rekebisha sehemu zilizoonyeshwa."
	SubmitStatusForm    = "form"
	SubmitStatusPending = "submitting"
	SubmitStatusSuccess = "success"
	SubmitStatusError   = "error"
)

// SubmissionState is what a form renders.
type SubmissionState struct {
	Status       string            `json:"status"`
	Error        string            `json:"error,omitempty"`
	Fields       map[string]string `json:"fields,omitempty"`
	ResetAfterMs int64             `json:"reset_after_ms,omitempty"`
}

// Submission drives one form: Form -> Submitting -> Success | Error.
// After a success the form is reset (and onReset called) once the reset delay has elapsed.
// Nothing prevents two concurrent submits; each one reaches the API.
type Submission struct {
	mu         sync.Mutex
	state      SubmissionState
	resetDelay time.Duration
	onReset    func()
	timer      *time.Timer

	afterFunc func(time.Duration, func()) *time.Timer // mockable
}

func NewSubmission(resetDelay time.Duration, onReset func()) *Submission {
	return &Submission{
		state:      SubmissionState{Status: SubmitStatusForm},
		resetDelay: resetDelay,
		onReset:    onReset,
		afterFunc:  time.AfterFunc,
	}
}

// Submit runs send once and records the outcome. The returned error is send's error.
func (s *Submission) Submit(ctx context.Context, send func(ctx context.Context) error) error {
	s.mu.Lock()
	s.stopTimer()
	s.state = SubmissionState{Status: SubmitStatusPending}
	s.mu.Unlock()

	err := send(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = failedSubmission(err)
		return err
	}
	s.state = SubmissionState{Status: SubmitStatusSuccess, ResetAfterMs: s.resetDelay.Milliseconds()}
	s.timer = s.afterFunc(s.resetDelay, s.reset)
	return nil
}

func failedSubmission(err error) SubmissionState {
	if fields, ok := core.FieldErrors(err); ok {
		return SubmissionState{Status: SubmitStatusError, Error: InvalidFormMessage, Fields: fields}
	}
	msg := SubmitErrorMessage
	if apiErr, ok := core.AsAPIError(err); ok && apiErr.Detail != "" {
		msg = apiErr.Detail
	}
	return SubmissionState{Status: SubmitStatusError, Error: msg}
}

func (s *Submission) reset() {
	s.mu.Lock()
	s.state = SubmissionState{Status: SubmitStatusForm}
	s.timer = nil
	onReset := s.onReset
	s.mu.Unlock()

	if onReset != nil {
		onReset()
	}
}

func (s *Submission) State() SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close cancels a pending reset.
func (s *Submission) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
}

func (s *Submission) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
