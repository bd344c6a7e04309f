package room

import (
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/pkg/proto"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameFinished      = errors.New("round is already finished")
	ErrNotYourTurn       = errors.New("it's the computer's turn")
	ErrNotComputerTurn   = errors.New("it's not the computer's turn")
	ErrNoMoveAvailable   = errors.New("no move available")
	ErrNothingToUndo     = errors.New("nothing to undo")
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// Mode decides whether O is played by a second human or by the computer.
type Mode string

const (
	ModeComputer  Mode = "ai"
	ModeTwoPlayer Mode = "pvp"
)

const (
	// FirstMark opens every round.
	FirstMark = game.PlayerX
	// ComputerMark is the mark the computer plays in ModeComputer.
	ComputerMark = game.PlayerO
)

// ParseMode accepts "ai" or "pvp".
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeComputer, ModeTwoPlayer:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// MoveCalculator defines an interface for an agent that can calculate a game move.
type MoveCalculator interface {
	CalculateNextMove(board game.Board, mark game.PlayerMark, difficulty bot.Difficulty) (cell int, found bool)
}

// Room holds one table's rounds and running score. It is not safe for
// concurrent use; the owner serialises access.
type Room struct {
	ID         string
	Mode       Mode
	Difficulty bot.Difficulty
	Scores     proto.Scores

	// history[len-1] is the current board; history[0] is always empty.
	history []game.Board
	next    game.PlayerMark
}

// NewRoom creates a room with an empty board and X to move.
func NewRoom(id string, mode Mode, difficulty bot.Difficulty) *Room {
	r := &Room{
		ID:         id,
		Mode:       mode,
		Difficulty: difficulty,
	}
	r.Restart()
	return r
}

// Play places the next mark for a human player.
func (r *Room) Play(cell int) (game.Verdict, error) {
	if !game.ValidCell(cell) {
		return game.Verdict{}, fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}
	if r.IsOver() {
		return game.Verdict{}, ErrGameFinished
	}
	if r.ComputerToMove() {
		return game.Verdict{}, ErrNotYourTurn
	}
	return r.place(cell)
}

// PlayComputer asks calc for the computer's move and places it.
func (r *Room) PlayComputer(calc MoveCalculator) (int, game.Verdict, error) {
	if !r.ComputerToMove() {
		return 0, game.Verdict{}, ErrNotComputerTurn
	}
	cell, found := calc.CalculateNextMove(r.Current(), r.next, r.Difficulty)
	if !found {
		return 0, game.Verdict{}, ErrNoMoveAvailable
	}
	verdict, err := r.place(cell)
	if err != nil {
		return 0, game.Verdict{}, fmt.Errorf("computer move %d: %w", cell, err)
	}
	return cell, verdict, nil
}

func (r *Room) place(cell int) (game.Verdict, error) {
	if !game.ValidCell(cell) {
		return game.Verdict{}, fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}
	current := r.Current()
	if current[cell] != game.None {
		return game.Verdict{}, ErrCellOccupied
	}

	board := current.Place(cell, r.next)
	r.history = append(r.history, board)
	r.next = r.next.Opponent()

	verdict := game.Evaluate(board)
	switch verdict.Outcome {
	case game.Win:
		if verdict.Winner == game.PlayerX {
			r.Scores.X++
		} else {
			r.Scores.O++
		}
	case game.Draw:
		r.Scores.Draws++
	}
	return verdict, nil
}

// Undo takes back the last move of the current round. In ModeComputer,
// once the computer has answered, its reply and the human's move are both
// taken back so the human is to move again.
func (r *Room) Undo() error {
	if !r.hasMoves() {
		return ErrNothingToUndo
	}
	if r.IsOver() {
		return ErrGameFinished
	}
	steps := 1
	if r.Mode == ModeComputer && r.next != ComputerMark && r.MoveCount() >= 2 {
		steps = 2
	}
	for i := 0; i < steps; i++ {
		r.history = r.history[:len(r.history)-1]
		r.next = r.next.Opponent()
	}
	return nil
}

// Restart clears the board and keeps the score.
func (r *Room) Restart() {
	r.history = []game.Board{{}}
	r.next = FirstMark
}

// ResetScore zeroes the score and restarts the round.
func (r *Room) ResetScore() {
	r.Scores = proto.Scores{}
	r.Restart()
}

// ChangeMode switches mode and restarts the round.
func (r *Room) ChangeMode(mode Mode) error {
	m, err := ParseMode(string(mode))
	if err != nil {
		return err
	}
	r.Mode = m
	r.Restart()
	return nil
}

// SetDifficulty changes how the computer plays from its next move on.
func (r *Room) SetDifficulty(difficulty string) error {
	d, err := bot.ParseDifficulty(difficulty)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDifficulty, err)
	}
	r.Difficulty = d
	return nil
}

func (r *Room) hasMoves() bool {
	return len(r.history) > 1
}
