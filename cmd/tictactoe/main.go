package main

import "ctchen222/tictactoe-engine/internal/cli"

func main() {
	cli.Execute()
}
