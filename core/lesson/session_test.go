package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizSession(t *testing.T) {
	s := NewQuizSession(Lesson{ID: "l", Quiz: quizOf(1, 0, 2)})
	assert.Equal(t, StageIntro, s.Stage())

	_, _, ok := s.Current()
	assert.False(t, ok, "no question before start")
	assert.Error(t, s.Answer(0))

	require.NoError(t, s.Start())
	q, idx, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Len(t, q.Options, 4)

	assert.Equal(t, ErrBadOption, s.Answer(4))
	assert.Equal(t, ErrBadOption, s.Answer(-1))

	require.NoError(t, s.Answer(1))
	require.NoError(t, s.Answer(1))
	_, partial := s.Result()
	assert.False(t, partial)

	require.NoError(t, s.Answer(2))
	assert.Equal(t, StageResult, s.Stage())
	res, done := s.Result()
	assert.True(t, done)
	assert.Equal(t, Result{Total: 3, Correct: 2, Score: 67}, res)

	s.Retry()
	assert.Equal(t, StageIntro, s.Stage())
	require.NoError(t, s.Start())
	for _, opt := range []int{1, 0, 2} {
		require.NoError(t, s.Answer(opt))
	}
	res, _ = s.Result()
	assert.True(t, res.Passed)
	assert.Equal(t, 100, res.Score)
}

func TestQuizSession_EmptyQuiz(t *testing.T) {
	s := NewQuizSession(Lesson{ID: "l"})
	require.NoError(t, s.Start())
	res, done := s.Result()
	assert.True(t, done)
	assert.Equal(t, Result{}, res)
}
