package models

import "ctchen222/tictactoe-engine/internal/game"

// MoveRequest places a mark on cell 0-8.
type MoveRequest struct {
	Cell *int `json:"cell" binding:"required,min=0,max=8"`
}

// ModeRequest switches a room between "ai" and "pvp".
type ModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=ai pvp"`
}

// DifficultyRequest sets how the computer plays.
type DifficultyRequest struct {
	Difficulty string `json:"difficulty" binding:"required,oneof=easy medium hard"`
}

// EvaluateRequest carries a board either written as nine cells, e.g.
// "XX-OO----", or as a cells array in the RoomState form ("X", "O", "").
type EvaluateRequest struct {
	Board string            `json:"board" binding:"required_without=Cells"`
	Cells []game.PlayerMark `json:"cells" binding:"required_without=Board"`
}

// SuggestRequest asks for the move mover should play on board.
type SuggestRequest struct {
	Board      string            `json:"board" binding:"required_without=Cells"`
	Cells      []game.PlayerMark `json:"cells" binding:"required_without=Board"`
	Mover      string            `json:"mover"`
	Difficulty string            `json:"difficulty"`
}

// SuggestResponse holds the chosen cell. Cell is null when the board is full.
type SuggestResponse struct {
	Cell  *int `json:"cell"`
	Found bool `json:"found"`
}
