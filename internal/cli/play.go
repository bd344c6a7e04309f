package cli

import (
	"bufio"
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/random"
	"ctchen222/tictactoe-engine/internal/room"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const playHelp = "Enter 1-9 to play, u=undo, r=restart, s=reset score, m=toggle mode, q=quit"

func newPlayCmd() *cobra.Command {
	var (
		mode       string
		difficulty string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the terminal",
		Long: `Play an interactive game in the terminal.

Cells are numbered 1-9 from the top left. X always moves first; in ai mode
the computer plays O and undo takes back your last move together with the
computer's reply.

` + playHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := room.ParseMode(mode)
			if err != nil {
				return err
			}
			d, err := bot.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}

			r := room.NewRoom("terminal", m, d)
			calc := bot.NewMoveCalculator(random.New(seed))
			return runGame(cmd.InOrStdin(), cmd.OutOrStdout(), r, calc)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(room.ModeComputer), "Game mode: ai or pvp")
	cmd.Flags().StringVar(&difficulty, "difficulty", string(bot.Hard), "Bot difficulty: easy, medium, hard")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for the computer (0 picks one from the clock)")

	return cmd
}

// runGame drives r from line commands on in until quit or EOF.
func runGame(in io.Reader, out io.Writer, r *room.Room, calc room.MoveCalculator) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, playHelp)

	for {
		if r.ComputerToMove() {
			cell, _, err := r.PlayComputer(calc)
			if err != nil {
				return fmt.Errorf("computer move: %w", err)
			}
			fmt.Fprintf(out, "Computer plays %d\n", cell+1)
		}

		printRoom(out, r)
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "":
			continue
		case "q", "quit":
			return nil
		case "u", "undo":
			reportErr(out, r.Undo())
		case "r", "restart":
			r.Restart()
		case "s", "score":
			r.ResetScore()
		case "m", "mode":
			next := room.ModeTwoPlayer
			if r.Mode == room.ModeTwoPlayer {
				next = room.ModeComputer
			}
			reportErr(out, r.ChangeMode(next))
			fmt.Fprintf(out, "Mode: %s\n", r.Mode)
		default:
			n, err := strconv.Atoi(input)
			if err != nil {
				fmt.Fprintln(out, playHelp)
				continue
			}
			_, err = r.Play(n - 1)
			reportErr(out, err)
		}
	}
}

func reportErr(out io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
	}
}

func printRoom(out io.Writer, r *room.Room) {
	board := r.Current()
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			i := row*3 + col
			if board[i] == game.None {
				cells[col] = strconv.Itoa(i + 1)
			} else {
				cells[col] = string(board[i])
			}
		}
		fmt.Fprintf(out, " %s \n", strings.Join(cells, " | "))
		if row < 2 {
			fmt.Fprintln(out, "---+---+---")
		}
	}
	fmt.Fprintf(out, "X: %d  O: %d  Draws: %d\n", r.Scores.X, r.Scores.O, r.Scores.Draws)
	fmt.Fprintln(out, r.StatusMessage())
}
