package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe engine, terminal game and play server",
		Long: `tictactoe evaluates boards, suggests computer moves, plays an interactive
game in the terminal, and serves the HTTP and WebSocket play API.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newSuggestCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
