package bot

import (
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/random"
)

// SelectMove picks a cell for mover with a greedy one-ply heuristic:
// win, block, center, random corner, random side. It returns false only when
// the board has no empty cell.
//
// Only the first opponent threat in ascending cell order is blocked, so a
// double threat beats it.
func SelectMove(board game.Board, mover, opponent game.PlayerMark, rnd random.Random) (cell int, found bool) {
	// 1. Win: Check if the bot can win in the next move
	if cell, found := findWinningMove(board, mover); found {
		return cell, true
	}

	// 2. Block: Check if the opponent is about to win and block them
	if cell, found := findWinningMove(board, opponent); found {
		return cell, true
	}

	// 3. Center: Take the center if it's available
	if board[game.Center] == game.None {
		return game.Center, true
	}

	// 4. Corners: Take an available corner randomly
	if cell, found := pickRandom(board, game.Corners[:], rnd); found {
		return cell, true
	}

	// 5. Sides: Take any available side randomly
	if cell, found := pickRandom(board, game.Sides[:], rnd); found {
		return cell, true
	}

	// Board is full
	return 0, false
}

// CalculateNextMove determines the bot's next move based on the specified difficulty.
// Unknown difficulties play as Hard.
func CalculateNextMove(board game.Board, botMark game.PlayerMark, difficulty Difficulty, rnd random.Random) (cell int, found bool) {
	switch difficulty {
	case Easy:
		return easyMove(board, rnd)
	case Medium:
		return mediumMove(board, botMark, rnd)
	default:
		return SelectMove(board, botMark, botMark.Opponent(), rnd)
	}
}

// easyMove makes a completely random move.
func easyMove(board game.Board, rnd random.Random) (int, bool) {
	availableMoves := board.EmptyCells()
	if len(availableMoves) == 0 {
		return 0, false
	}
	return availableMoves[rnd.Intn(len(availableMoves))], true
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func mediumMove(board game.Board, botMark game.PlayerMark, rnd random.Random) (int, bool) {
	if cell, found := findWinningMove(board, botMark); found {
		return cell, true
	}
	if cell, found := findWinningMove(board, botMark.Opponent()); found {
		return cell, true
	}
	return easyMove(board, rnd)
}

// findWinningMove places mark on each empty cell in ascending order and
// returns the first one that makes mark the winner.
func findWinningMove(board game.Board, mark game.PlayerMark) (int, bool) {
	for _, cell := range board.EmptyCells() {
		if v := game.Evaluate(board.Place(cell, mark)); v.Outcome == game.Win && v.Winner == mark {
			return cell, true
		}
	}
	return 0, false
}

func pickRandom(board game.Board, candidates []int, rnd random.Random) (int, bool) {
	available := make([]int, 0, len(candidates))
	for _, cell := range candidates {
		if board[cell] == game.None {
			available = append(available, cell)
		}
	}
	if len(available) == 0 {
		return 0, false
	}
	return available[rnd.Intn(len(available))], true
}
