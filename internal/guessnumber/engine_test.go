package guessnumber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sequence(values ...int) func() int {
	i := 0
	return func() int {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestMissThenHit(t *testing.T) {
	e := New(sequence(42, 17))
	require.Equal(t, Default, e.Guess())
	require.Equal(t, PromptHint, e.Hint())

	res := e.SubmitGuess(10)
	require.Equal(t, Greater, res.Feedback)
	require.Equal(t, 1, res.Attempts)
	require.Equal(t, 1, e.Attempts())
	require.Equal(t, GreaterHint, e.Hint())

	res = e.SubmitGuess(90)
	require.Equal(t, Smaller, res.Feedback)
	require.Equal(t, 2, e.Attempts())
	require.Equal(t, SmallerHint, e.Hint())

	res = e.SubmitGuess(42)
	require.True(t, res.Won())
	require.Equal(t, 2, res.Attempts, "winning guess is not counted")
	require.Equal(t, 0, e.Attempts())
	require.Equal(t, Default, e.Guess())
	require.Equal(t, PromptHint, e.Hint())
	require.Equal(t, 1, e.Wins())

	// new target is 17
	require.Equal(t, Smaller, e.SubmitGuess(42).Feedback)
	require.True(t, e.SubmitGuess(17).Won())
}

func TestTargetStableWithinRound(t *testing.T) {
	e := New(sequence(30, 70))
	for i := 0; i < 5; i++ {
		require.Equal(t, Greater, e.SubmitGuess(29).Feedback)
	}
	require.Equal(t, 5, e.Attempts())
	require.True(t, e.SubmitGuess(30).Won())
}

func TestGuessIsClamped(t *testing.T) {
	e := New(sequence(1))
	e.SetGuess(-5)
	require.Equal(t, Min, e.Guess())
	e.SetGuess(500)
	require.Equal(t, Max, e.Guess())
	e.Adjust(10)
	require.Equal(t, Max, e.Guess())
	e.Adjust(-1000)
	require.Equal(t, Min, e.Guess())

	res := e.SubmitGuess(0)
	require.True(t, res.Won())
	require.Equal(t, Min, res.Guess)
}

func TestDrawIsClampedAndDefaultRandom(t *testing.T) {
	e := New(sequence(1000))
	require.True(t, e.SubmitGuess(Max).Won())

	r := New(nil)
	for i := 0; i < 200; i++ {
		res := r.Submit()
		require.NotZero(t, res.Feedback)
	}
}

func TestResetAbandonsRound(t *testing.T) {
	e := New(sequence(50, 60))
	e.SubmitGuess(10)
	e.Adjust(7)
	e.Reset()
	require.Equal(t, 0, e.Attempts())
	require.Equal(t, Default, e.Guess())
	require.Equal(t, 0, e.Wins())
	require.Equal(t, Greater, e.Submit().Feedback)
}
