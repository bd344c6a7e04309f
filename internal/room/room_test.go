package room

import (
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/pkg/proto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedCalculator plays the queued cells in order.
type fixedCalculator struct {
	cells []int
	calls int
}

func (c *fixedCalculator) CalculateNextMove(board game.Board, mark game.PlayerMark, difficulty bot.Difficulty) (int, bool) {
	if c.calls >= len(c.cells) {
		return 0, false
	}
	cell := c.cells[c.calls]
	c.calls++
	return cell, true
}

func playAll(t *testing.T, r *Room, cells ...int) {
	t.Helper()
	for _, cell := range cells {
		_, err := r.Play(cell)
		require.NoError(t, err, "cell %d", cell)
	}
}

func TestNewRoom(t *testing.T) {
	r := NewRoom("room-1", ModeComputer, bot.Hard)

	assert.Equal(t, game.Board{}, r.Current())
	assert.Equal(t, game.PlayerX, r.Next())
	assert.False(t, r.IsOver())
	assert.False(t, r.CanUndo())
	assert.Equal(t, "X to move", r.StatusMessage())
	assert.Equal(t, proto.Scores{}, r.Scores)
}

func TestPlay(t *testing.T) {
	t.Run("Alternates marks", func(t *testing.T) {
		r := NewRoom("r", ModeTwoPlayer, bot.Hard)
		playAll(t, r, 0, 4)

		assert.Equal(t, game.Board{game.PlayerX, "", "", "", game.PlayerO, "", "", "", ""}, r.Current())
		assert.Equal(t, game.PlayerX, r.Next())
		assert.Equal(t, 2, r.MoveCount())
	})

	t.Run("Rejects occupied cell", func(t *testing.T) {
		r := NewRoom("r", ModeTwoPlayer, bot.Hard)
		playAll(t, r, 0)

		_, err := r.Play(0)
		require.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, game.PlayerO, r.Next())
	})

	t.Run("Rejects invalid cell", func(t *testing.T) {
		r := NewRoom("r", ModeTwoPlayer, bot.Hard)
		for _, cell := range []int{-1, 9, 20} {
			_, err := r.Play(cell)
			require.ErrorIs(t, err, ErrInvalidCell)
		}
	})

	t.Run("Locks the human out on the computer's turn", func(t *testing.T) {
		r := NewRoom("r", ModeComputer, bot.Hard)
		playAll(t, r, 0)

		assert.True(t, r.ComputerToMove())
		_, err := r.Play(1)
		require.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("Win scores once and ends the round", func(t *testing.T) {
		r := NewRoom("r", ModeTwoPlayer, bot.Hard)
		playAll(t, r, 0, 3, 1, 4)

		verdict, err := r.Play(2)
		require.NoError(t, err)
		assert.Equal(t, game.Verdict{Outcome: game.Win, Winner: game.PlayerX, Line: game.Line{0, 1, 2}}, verdict)
		assert.Equal(t, proto.Scores{X: 1}, r.Scores)
		assert.Equal(t, "X wins this round!", r.StatusMessage())

		_, err = r.Play(5)
		require.ErrorIs(t, err, ErrGameFinished)
		assert.Equal(t, proto.Scores{X: 1}, r.Scores)
	})

	t.Run("Draw scores a draw", func(t *testing.T) {
		r := NewRoom("r", ModeTwoPlayer, bot.Hard)
		// X O X / X O O / O X X
		playAll(t, r, 0, 1, 2, 4, 3, 5, 7, 6)

		verdict, err := r.Play(8)
		require.NoError(t, err)
		assert.Equal(t, game.Draw, verdict.Outcome)
		assert.Equal(t, proto.Scores{Draws: 1}, r.Scores)
		assert.Equal(t, "It's a draw.", r.StatusMessage())
	})
}

func TestPlayComputer(t *testing.T) {
	t.Run("Places the calculated move as O", func(t *testing.T) {
		r := NewRoom("r", ModeComputer, bot.Hard)
		playAll(t, r, 0)

		cell, verdict, err := r.PlayComputer(&fixedCalculator{cells: []int{4}})
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Equal(t, game.InProgress, verdict.Outcome)
		assert.Equal(t, game.PlayerO, r.Current()[4])
		assert.Equal(t, game.PlayerX, r.Next())
	})

	t.Run("Refuses on the human's turn", func(t *testing.T) {
		r := NewRoom("r", ModeComputer, bot.Hard)
		_, _, err := r.PlayComputer(&fixedCalculator{cells: []int{4}})
		require.ErrorIs(t, err, ErrNotComputerTurn)
	})

	t.Run("Refuses in two player mode", func(t *testing.T) {
		r := NewRoom("r", ModeTwoPlayer, bot.Hard)
		playAll(t, r, 0)
		_, _, err := r.PlayComputer(&fixedCalculator{cells: []int{4}})
		require.ErrorIs(t, err, ErrNotComputerTurn)
	})

	t.Run("No move available", func(t *testing.T) {
		r := NewRoom("r", ModeComputer, bot.Hard)
		playAll(t, r, 0)
		_, _, err := r.PlayComputer(&fixedCalculator{})
		require.ErrorIs(t, err, ErrNoMoveAvailable)
	})

	t.Run("Occupied cell from calculator is rejected", func(t *testing.T) {
		r := NewRoom("r", ModeComputer, bot.Hard)
		playAll(t, r, 0)
		_, _, err := r.PlayComputer(&fixedCalculator{cells: []int{0}})
		require.ErrorIs(t, err, ErrCellOccupied)
	})

	t.Run("Computer win scores for O", func(t *testing.T) {
		r := NewRoom("r", ModeComputer, bot.Hard)
		calc := &fixedCalculator{cells: []int{3, 4, 5}}
		playAll(t, r, 0)
		_, _, err := r.PlayComputer(calc)
		require.NoError(t, err)
		playAll(t, r, 1)
		_, _, err = r.PlayComputer(calc)
		require.NoError(t, err)
		playAll(t, r, 8)
		_, verdict, err := r.PlayComputer(calc)
		require.NoError(t, err)

		assert.Equal(t, game.PlayerO, verdict.Winner)
		assert.Equal(t, proto.Scores{O: 1}, r.Scores)
		assert.False(t, r.ComputerToMove())
	})
}

func TestPlayComputer_WithBot(t *testing.T) {
	r := NewRoom("r", ModeComputer, bot.Hard)
	playAll(t, r, 0)

	cell, _, err := r.PlayComputer(bot.NewMoveCalculator(nil))
	require.NoError(t, err)
	assert.Equal(t, 4, cell, "hard bot answers a corner with the center")
}

func TestUndo(t *testing.T) {
	t.Run("Nothing to undo on a fresh board", func(t *testing.T) {
		r := NewRoom("r", ModeTwoPlayer, bot.Hard)
		require.ErrorIs(t, r.Undo(), ErrNothingToUndo)
	})

	t.Run("Pops the last move and flips the turn", func(t *testing.T) {
		r := NewRoom("r", ModeTwoPlayer, bot.Hard)
		playAll(t, r, 0, 4)

		require.NoError(t, r.Undo())
		assert.Equal(t, game.Board{game.PlayerX}, r.Current())
		assert.Equal(t, game.PlayerO, r.Next())
		assert.True(t, r.CanUndo())
	})

	t.Run("In computer mode undo takes back the computer's reply and the human's move", func(t *testing.T) {
		r := NewRoom("r", ModeComputer, bot.Hard)
		calc := &fixedCalculator{cells: []int{4, 8}}
		playAll(t, r, 0)
		_, _, err := r.PlayComputer(calc)
		require.NoError(t, err)
		playAll(t, r, 2)
		_, _, err = r.PlayComputer(calc)
		require.NoError(t, err)

		require.NoError(t, r.Undo())
		assert.Equal(t, game.Board{game.PlayerX, "", "", "", game.PlayerO, "", "", "", ""}, r.Current())
		assert.Equal(t, game.PlayerX, r.Next())
		assert.False(t, r.ComputerToMove())

		require.NoError(t, r.Undo())
		assert.Equal(t, game.Board{}, r.Current())
		assert.Equal(t, game.PlayerX, r.Next())
		assert.False(t, r.CanUndo())
	})

	t.Run("In computer mode undo during the computer's turn takes back one move", func(t *testing.T) {
		r := NewRoom("r", ModeComputer, bot.Hard)
		playAll(t, r, 0)
		require.True(t, r.ComputerToMove())

		require.NoError(t, r.Undo())
		assert.Equal(t, game.Board{}, r.Current())
		assert.Equal(t, game.PlayerX, r.Next())
	})

	t.Run("Refused after the round ends", func(t *testing.T) {
		r := NewRoom("r", ModeTwoPlayer, bot.Hard)
		playAll(t, r, 0, 3, 1, 4, 2)

		assert.False(t, r.CanUndo())
		require.ErrorIs(t, r.Undo(), ErrGameFinished)
		assert.Equal(t, proto.Scores{X: 1}, r.Scores)
	})
}

func TestRestartAndResetScore(t *testing.T) {
	r := NewRoom("r", ModeTwoPlayer, bot.Hard)
	playAll(t, r, 0, 3, 1, 4, 2)
	require.Equal(t, proto.Scores{X: 1}, r.Scores)

	r.Restart()
	assert.Equal(t, game.Board{}, r.Current())
	assert.Equal(t, game.PlayerX, r.Next())
	assert.Equal(t, proto.Scores{X: 1}, r.Scores)

	playAll(t, r, 4)
	r.ResetScore()
	assert.Equal(t, game.Board{}, r.Current())
	assert.Equal(t, proto.Scores{}, r.Scores)
}

func TestChangeMode(t *testing.T) {
	r := NewRoom("r", ModeComputer, bot.Hard)
	playAll(t, r, 0)

	require.NoError(t, r.ChangeMode("PVP"))
	assert.Equal(t, ModeTwoPlayer, r.Mode)
	assert.Equal(t, game.Board{}, r.Current())
	assert.Equal(t, game.PlayerX, r.Next())

	require.ErrorIs(t, r.ChangeMode("online"), ErrInvalidMode)
	assert.Equal(t, ModeTwoPlayer, r.Mode)
}

func TestSetDifficulty(t *testing.T) {
	r := NewRoom("r", ModeComputer, bot.Hard)

	require.NoError(t, r.SetDifficulty("easy"))
	assert.Equal(t, bot.Easy, r.Difficulty)

	require.ErrorIs(t, r.SetDifficulty("godlike"), ErrInvalidDifficulty)
	assert.Equal(t, bot.Easy, r.Difficulty)
}

func TestSnapshot(t *testing.T) {
	r := NewRoom("room-9", ModeTwoPlayer, bot.Medium)
	playAll(t, r, 0, 3, 1, 4, 2)

	state := r.Snapshot()
	assert.Equal(t, proto.RoomState{
		RoomID:      "room-9",
		Mode:        "pvp",
		Difficulty:  "medium",
		Board:       []game.PlayerMark{"X", "X", "X", "O", "O", "", "", "", ""},
		Next:        game.PlayerO,
		Winner:      game.PlayerX,
		WinningLine: []int{0, 1, 2},
		IsOver:      true,
		MoveCount:   5,
		Scores:      proto.Scores{X: 1},
		Status:      "X wins this round!",
	}, state)
}
