package lesson

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/view"
)

// Quiz session stages.
const (
	StageIntro    = "intro"
	StageQuestion = "question"
	StageResult   = "result"
)

var ErrBadOption = errors.New("option out of range")

// QuizSession steps one visitor through a lesson quiz, one question at a time.
type QuizSession struct {
	mu      sync.Mutex
	lesson  Lesson
	steps   *view.Stepper
	current int
	answers []int
	result  Result
}

func NewQuizSession(l Lesson) *QuizSession {
	return &QuizSession{
		lesson: l,
		steps:  view.NewStepper(StageIntro, StageQuestion, StageResult),
	}
}

func (s *QuizSession) Stage() string { return s.steps.Stage() }

// Start leaves the intro. A lesson without questions goes straight to the result.
func (s *QuizSession) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lesson.Quiz) == 0 {
		s.result = Grade(nil, nil)
		return s.steps.AdvanceTo(StageResult)
	}
	s.answers = make([]int, 0, len(s.lesson.Quiz))
	return s.steps.AdvanceTo(StageQuestion)
}

// Current returns the question on screen and its position.
func (s *QuizSession) Current() (QuizQuestion, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.steps.Is(StageQuestion) {
		return QuizQuestion{}, 0, false
	}
	return s.lesson.Quiz[s.current], s.current, true
}

// Answer records the chosen option and moves on; after the last question the quiz is graded.
func (s *QuizSession) Answer(option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.steps.Is(StageQuestion) {
		return errors.Wrapf(view.ErrUnknownStage, "answer in %s", s.steps.Stage())
	}
	if option < 0 || option >= len(s.lesson.Quiz[s.current].Options) {
		return ErrBadOption
	}
	s.answers = append(s.answers, option)
	s.current++
	if s.current < len(s.lesson.Quiz) {
		return nil
	}
	s.result = Grade(s.lesson.Quiz, s.answers)
	return s.steps.AdvanceTo(StageResult)
}

func (s *QuizSession) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.steps.Is(StageResult)
}

// Retry restarts from the intro.
func (s *QuizSession) Retry() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps.Reset()
	s.current = 0
	s.answers = nil
	s.result = Result{}
}
