package bot

import (
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/random"
	"fmt"
	"strings"
)

// Difficulty selects how the bot plays.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty accepts easy, medium or hard in any case. An empty string is Hard.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case "":
		return Hard, nil
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// BotMoveCalculator implements the room.MoveCalculator interface.
type BotMoveCalculator struct {
	rnd random.Random
}

// NewMoveCalculator creates a calculator that breaks ties with rnd.
func NewMoveCalculator(rnd random.Random) *BotMoveCalculator {
	return &BotMoveCalculator{rnd: rnd}
}

// CalculateNextMove calls the package-level function to satisfy the interface.
func (c *BotMoveCalculator) CalculateNextMove(board game.Board, mark game.PlayerMark, difficulty Difficulty) (int, bool) {
	return CalculateNextMove(board, mark, difficulty, c.rnd)
}
