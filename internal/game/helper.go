package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidMark  = errors.New("invalid mark")
)

// ParseBoard reads a board written as nine cells, e.g. "XX-OO----".
// X and O are marks; '-', '_' and '.' are empty. Spaces, commas, '|' and '/'
// and line breaks are ignored so "X,X,_/O,O,_/_,_,_" is also accepted.
func ParseBoard(s string) (Board, error) {
	var board Board
	i := 0
	for _, r := range strings.ToUpper(s) {
		switch r {
		case ' ', ',', '|', '/', '\t', '\r', '\n':
			continue
		}
		if i >= CellCount {
			return Board{}, fmt.Errorf("%w: more than %d cells in %q", ErrInvalidBoard, CellCount, s)
		}
		switch r {
		case 'X':
			board[i] = PlayerX
		case 'O':
			board[i] = PlayerO
		case '-', '_', '.':
			board[i] = None
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q at cell %d", ErrInvalidBoard, r, i)
		}
		i++
	}
	if i != CellCount {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, i, CellCount)
	}
	return board, nil
}

// ParseMark parses "X" or "O", case-insensitively.
func ParseMark(s string) (PlayerMark, error) {
	m := PlayerMark(strings.ToUpper(strings.TrimSpace(s)))
	if !m.IsPlayer() {
		return None, fmt.Errorf("%w: %q", ErrInvalidMark, s)
	}
	return m, nil
}

// String renders the board in the compact form accepted by ParseBoard.
func (b Board) String() string {
	var sb strings.Builder
	for _, cell := range b {
		if cell == None {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(string(cell))
	}
	return sb.String()
}

// Cells converts the board to a slice for JSON payloads.
func (b Board) Cells() []PlayerMark {
	cells := make([]PlayerMark, CellCount)
	copy(cells, b[:])
	return cells
}

// BoardFromCells converts a payload slice back into a board.
func BoardFromCells(cells []PlayerMark) (Board, error) {
	var board Board
	if len(cells) != CellCount {
		return board, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, len(cells), CellCount)
	}
	for i, cell := range cells {
		if cell != None && !cell.IsPlayer() {
			return Board{}, fmt.Errorf("%w: cell %d holds %q", ErrInvalidBoard, i, cell)
		}
		board[i] = cell
	}
	return board, nil
}
