package proto

import "ctchen222/tictactoe-engine/internal/game"

// Client message types
const (
	TypeMove       = "move"
	TypeUndo       = "undo"
	TypeRestart    = "restart"
	TypeResetScore = "reset_score"
	TypeMode       = "mode"
	TypeDifficulty = "difficulty"
)

// Server message types
const (
	TypeUpdate = "update"
	TypeError  = "error"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type       string `json:"type" validate:"required,oneof=move undo restart reset_score mode difficulty"`
	Cell       *int   `json:"cell,omitempty" validate:"omitempty,min=0,max=8"`
	Mode       string `json:"mode,omitempty" validate:"required_if=Type mode,omitempty,oneof=ai pvp"`
	Difficulty string `json:"difficulty,omitempty" validate:"required_if=Type difficulty,omitempty,oneof=easy medium hard"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type   string     `json:"type" validate:"required"`
	Reason string     `json:"reason,omitempty"`
	State  *RoomState `json:"state,omitempty"`
}

// Scores counts finished rounds by outcome.
type Scores struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// RoomState is the full snapshot a UI needs to render a room.
type RoomState struct {
	RoomID      string            `json:"roomId"`
	Mode        string            `json:"mode"`
	Difficulty  string            `json:"difficulty"`
	Board       []game.PlayerMark `json:"board"`
	Next        game.PlayerMark   `json:"next"`
	Winner      game.PlayerMark   `json:"winner,omitempty"`
	WinningLine []int             `json:"winningLine,omitempty"`
	IsDraw      bool              `json:"isDraw"`
	IsOver      bool              `json:"isOver"`
	CanUndo     bool              `json:"canUndo"`
	MoveCount   int               `json:"moveCount"`
	Scores      Scores            `json:"scores"`
	Status      string            `json:"status"`
}

// VerdictMessage is the JSON form of a board evaluation.
type VerdictMessage struct {
	Outcome string          `json:"outcome"`
	Winner  game.PlayerMark `json:"winner,omitempty"`
	Line    []int           `json:"line,omitempty"`
}

// NewVerdictMessage converts a verdict for the wire.
func NewVerdictMessage(v game.Verdict) VerdictMessage {
	msg := VerdictMessage{Outcome: v.Outcome.String()}
	if v.Outcome == game.Win {
		msg.Winner = v.Winner
		msg.Line = v.Line[:]
	}
	return msg
}
