package game

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// Outcome is the terminal state of a board.
type Outcome int

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries
	CellMin   = 0
	CellMax   = 8
	CellCount = 9
	Center    = 4
)

const (
	InProgress Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Board is a row-major 3x3 grid. It is an array so every call receives a copy.
type Board [CellCount]PlayerMark

// Line is a triple of cell indices that wins the game when owned by one mark.
type Line [3]int

// Lines lists every winning line: rows, then columns, then diagonals.
// The order decides which line is reported when more than one is complete.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

var (
	Corners = [4]int{0, 2, 6, 8}
	Sides   = [4]int{1, 3, 5, 7}
)

// Verdict is the result of evaluating a board. Winner and Line are only set
// when Outcome is Win.
type Verdict struct {
	Outcome Outcome
	Winner  PlayerMark
	Line    Line
}

// IsOver reports whether the verdict ends the round.
func (v Verdict) IsOver() bool {
	return v.Outcome != InProgress
}

// Evaluate checks the board for a completed line and falls back to a draw
// when every cell is taken.
func Evaluate(board Board) Verdict {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != None && a == b && b == c {
			return Verdict{Outcome: Win, Winner: a, Line: line}
		}
	}

	if board.IsFull() {
		return Verdict{Outcome: Draw}
	}
	return Verdict{Outcome: InProgress}
}

// IsFull reports whether no empty cell is left.
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of empty cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, CellCount)
	for i, cell := range b {
		if cell == None {
			cells = append(cells, i)
		}
	}
	return cells
}

// Place returns a copy of the board with mark at cell.
func (b Board) Place(cell int, mark PlayerMark) Board {
	b[cell] = mark
	return b
}

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// IsPlayer reports whether m is X or O.
func (m PlayerMark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

// ValidCell reports whether cell is a board index.
func ValidCell(cell int) bool {
	return cell >= CellMin && cell <= CellMax
}
