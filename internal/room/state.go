package room

import (
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/pkg/proto"
	"fmt"
)

// Current returns a copy of the board in play.
func (r *Room) Current() game.Board {
	return r.history[len(r.history)-1]
}

// Next returns the mark to move.
func (r *Room) Next() game.PlayerMark {
	return r.next
}

// Verdict evaluates the current board.
func (r *Room) Verdict() game.Verdict {
	return game.Evaluate(r.Current())
}

// IsOver reports whether the round has been won or drawn.
func (r *Room) IsOver() bool {
	return r.Verdict().IsOver()
}

// CanUndo reports whether Undo would succeed.
func (r *Room) CanUndo() bool {
	return r.hasMoves() && !r.IsOver()
}

// MoveCount is the number of marks placed this round.
func (r *Room) MoveCount() int {
	return len(r.history) - 1
}

// ComputerToMove reports whether the computer owes a move.
func (r *Room) ComputerToMove() bool {
	return r.Mode == ModeComputer && r.next == ComputerMark && !r.IsOver()
}

// StatusMessage is the one-line banner for the current round.
func (r *Room) StatusMessage() string {
	verdict := r.Verdict()
	switch verdict.Outcome {
	case game.Win:
		return fmt.Sprintf("%s wins this round!", verdict.Winner)
	case game.Draw:
		return "It's a draw."
	default:
		return fmt.Sprintf("%s to move", r.next)
	}
}

// Snapshot captures the room for the wire.
func (r *Room) Snapshot() proto.RoomState {
	verdict := r.Verdict()
	state := proto.RoomState{
		RoomID:     r.ID,
		Mode:       string(r.Mode),
		Difficulty: string(r.Difficulty),
		Board:      r.Current().Cells(),
		Next:       r.next,
		IsDraw:     verdict.Outcome == game.Draw,
		IsOver:     verdict.IsOver(),
		CanUndo:    r.CanUndo(),
		MoveCount:  r.MoveCount(),
		Scores:     r.Scores,
		Status:     r.StatusMessage(),
	}
	if verdict.Outcome == game.Win {
		state.Winner = verdict.Winner
		state.WinningLine = verdict.Line[:]
	}
	return state
}
