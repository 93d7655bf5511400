package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrLastStage    = errors.New("already at the last stage")
	ErrBackward     = errors.New("stages only move forward")
	ErrUnknownStage = errors.New("unknown stage")
)

// Stepper is a linear wizard over named stages, e.g. Detail -> Checkout -> Success.
type Stepper struct {
	mu     sync.Mutex
	stages []string
	idx    int
	trail  []string
}

func NewStepper(stages ...string) *Stepper {
	if len(stages) == 0 {
		panic("view.NewStepper: no stages")
	}
	return &Stepper{stages: stages, trail: []string{stages[0]}}
}

func (s *Stepper) Stage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stages[s.idx]
}

func (s *Stepper) Is(stage string) bool { return s.Stage() == stage }

// Done reports whether the wizard reached its last stage.
func (s *Stepper) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx == len(s.stages)-1
}

// Trail lists every stage visited since the last Reset.
func (s *Stepper) Trail() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.trail...)
}

func (s *Stepper) Advance() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx == len(s.stages)-1 {
		return s.stages[s.idx], ErrLastStage
	}
	s.idx++
	s.trail = append(s.trail, s.stages[s.idx])
	return s.stages[s.idx], nil
}

// AdvanceTo jumps forward to stage, skipping the stages in between.
func (s *Stepper) AdvanceTo(stage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.stages {
		if st != stage {
			continue
		}
		if i <= s.idx {
			return errors.Wrap(ErrBackward, fmt.Sprintf("%s -> %s", s.stages[s.idx], stage))
		}
		s.idx = i
		s.trail = append(s.trail, stage)
		return nil
	}
	return errors.Wrap(ErrUnknownStage, stage)
}

// AdvanceAfter waits delay (the "verifying" animation) then advances.
func (s *Stepper) AdvanceAfter(ctx context.Context, delay time.Duration) (string, error) {
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return s.Stage(), ctx.Err()
	case <-t.C:
	}
	return s.Advance()
}

func (s *Stepper) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx = 0
	s.trail = []string{s.stages[0]}
}
