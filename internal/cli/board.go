package cli

import (
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/random"
	"fmt"

	"github.com/spf13/cobra"
)

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <board>",
		Short: "Report whether a board is won, drawn or still in progress",
		Long: `Report whether a board is won, drawn or still in progress.

The board is nine cells in row order: X, O, and '-', '_' or '.' for empty.
Spaces, commas, '|' and '/' are ignored, so "XX-/OO-/---" works too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := game.ParseBoard(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatVerdict(game.Evaluate(board)))
			return nil
		},
	}
}

func newSuggestCmd() *cobra.Command {
	var (
		mover      string
		difficulty string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "suggest <board>",
		Short: "Print the cell (0-8) the computer would play, or none",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := game.ParseBoard(args[0])
			if err != nil {
				return err
			}
			mark, err := game.ParseMark(mover)
			if err != nil {
				return err
			}
			d, err := bot.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}

			cell, found := bot.CalculateNextMove(board, mark, d, random.New(seed))
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), cell)
			return nil
		},
	}

	cmd.Flags().StringVar(&mover, "mover", "O", "Mark to move: X or O")
	cmd.Flags().StringVar(&difficulty, "difficulty", string(bot.Hard), "Bot difficulty: easy, medium, hard")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for tie-breaks (0 picks one from the clock)")

	return cmd
}

func formatVerdict(v game.Verdict) string {
	switch v.Outcome {
	case game.Win:
		return fmt.Sprintf("%s wins on %d-%d-%d", v.Winner, v.Line[0], v.Line[1], v.Line[2])
	case game.Draw:
		return "draw"
	default:
		return "in progress"
	}
}
