package tictactoe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func play(t *testing.T, e *Engine, cells ...int) Status {
	t.Helper()
	var st Status
	for _, c := range cells {
		var err error
		st, err = e.Place(c)
		require.NoError(t, err, "place %d", c)
	}
	return st
}

func TestTurnAlternatesWhileInProgress(t *testing.T) {
	e := New(Cross)
	want := Cross
	for _, cell := range []int{4, 0, 8, 2, 6} {
		require.Equal(t, want, e.Turn())
		st, err := e.Place(cell)
		require.NoError(t, err)
		if cell != 6 {
			require.Equal(t, InProgress, st)
		}
		want = want.Other()
	}
}

func TestOccupiedCellIsRejectedWithoutChange(t *testing.T) {
	e := New(Cross)
	play(t, e, 4)
	before := e.Board()
	turn := e.Turn()

	_, err := e.Place(4)
	require.ErrorIs(t, err, ErrCellOccupied)
	require.Equal(t, before, e.Board())
	require.Equal(t, turn, e.Turn())
	require.Equal(t, InProgress, e.Status())
}

func TestRowWinIncrementsScore(t *testing.T) {
	e := New(Cross)
	// X X _ / O O _ / _ _ _, then X takes cell 2.
	play(t, e, 0, 3, 1, 4)
	require.Equal(t, Cross, e.Turn())

	st, err := e.Place(2)
	require.NoError(t, err)
	require.Equal(t, Won, st)
	require.Equal(t, Cross, e.Winner())
	require.Equal(t, 1, e.Score(Cross))
	require.Equal(t, 0, e.Score(Nought))
	require.Equal(t, Nought, e.Turn())
}

func TestDiagonalWinForNought(t *testing.T) {
	e := New(Cross)
	st := play(t, e, 0, 2, 1, 4, 8, 6)
	require.Equal(t, Won, st)
	require.Equal(t, Nought, e.Winner())
	require.Equal(t, 1, e.Score(Nought))
}

func TestFullBoardWithoutLineIsDraw(t *testing.T) {
	e := New(Cross)
	// X O X / X O O / O X X
	st := play(t, e, 0, 1, 2, 4, 3, 5, 7, 6, 8)
	require.Equal(t, Draw, st)
	require.Equal(t, Empty, e.Winner())
	require.Zero(t, e.Score(Cross))
	require.Zero(t, e.Score(Nought))
}

func TestWinOnLastCellIsNotDraw(t *testing.T) {
	e := New(Cross)
	// X O X / O X O / O X X: the ninth mark completes the diagonal.
	st := play(t, e, 0, 1, 2, 3, 4, 5, 7, 6, 8)
	require.Equal(t, Won, st)
	require.Equal(t, Cross, e.Winner())
}

func TestPlacementAfterRoundOverIsRejected(t *testing.T) {
	e := New(Cross)
	play(t, e, 0, 3, 1, 4, 2)
	before := e.Board()

	_, err := e.Place(8)
	require.True(t, errors.Is(err, ErrRoundOver))
	require.Equal(t, before, e.Board())
}

func TestOutOfRange(t *testing.T) {
	e := New(Cross)
	for _, idx := range []int{-1, 9, 100} {
		_, err := e.Place(idx)
		require.ErrorIs(t, err, ErrOutOfRange)
	}
	_, err := e.PlaceAt(3, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, Cross, e.Turn())
}

func TestResetKeepsScoresAndRestoresFirstTurn(t *testing.T) {
	e := New(Nought)
	require.Equal(t, Nought, e.Turn())
	play(t, e, 0, 3, 1, 4, 2)
	require.Equal(t, 1, e.Score(Nought))

	e.Reset()
	require.Equal(t, InProgress, e.Status())
	require.Equal(t, Nought, e.Turn())
	require.Equal(t, [Size][Size]Mark{}, e.Board())
	require.Equal(t, 1, e.Score(Nought))
}

func TestNewDefaultsToCross(t *testing.T) {
	require.Equal(t, Cross, New(Empty).FirstTurn())
	require.Equal(t, "X", Cross.String())
	require.Equal(t, "O", Nought.String())
	require.Equal(t, "", Empty.String())
}
