package entity

const (
	EmptyCell Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

const (
	PlayerX = 0
	PlayerO = 1
)

// Mark is the symbol a player leaves in a cell.
type Mark string

// MarkOf returns the mark written by the given player index.
func MarkOf(player int) Mark {
	if player == PlayerX {
		return MarkX
	}
	return MarkO
}

// OtherPlayer returns the opponent of the given player index.
func OtherPlayer(player int) int {
	if player == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Board is a square grid indexed [x][y].
type Board [][]Mark

// NewBoard allocates a size×size board of empty cells.
func NewBoard(size int) Board {
	board := make(Board, size)
	for x := range board {
		board[x] = make([]Mark, size)
	}

	return board
}

func (that Board) IsSet() bool {
	return len(that) > 0
}

func (that Board) InBounds(x, y int) bool {
	return x >= 0 && x < len(that) && y >= 0 && y < len(that[x])
}

// Marked counts the non-empty cells.
func (that Board) Marked() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				count++
			}
		}
	}

	return count
}

func (that Board) Clone() Board {
	clone := make(Board, len(that))
	for x, row := range that {
		clone[x] = append([]Mark(nil), row...)
		if clone[x] == nil {
			clone[x] = []Mark{}
		}
	}

	return clone
}

type Move struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Player int `json:"player"`
}

// Game is the context a machine carries between events.
type Game struct {
	BoardSize int      `json:"boardSize"`
	Board     Board    `json:"board"`
	Moves     []Move   `json:"moves"`
	Message   *Message `json:"message,omitempty"`
}

func NewGame(boardSize int) *Game {
	return &Game{
		BoardSize: boardSize,
		Board:     Board{},
		Moves:     []Move{},
	}
}

// CurrentPlayer derives the player to move from the move history.
func (that *Game) CurrentPlayer() int {
	if len(that.Moves) == 0 {
		return PlayerX
	}

	return OtherPlayer(that.Moves[len(that.Moves)-1].Player)
}

// Clear wipes the board, the moves and the message.
func (that *Game) Clear() {
	that.Board = Board{}
	that.Moves = []Move{}
	that.Message = nil
}

// Clone returns a deep copy safe to hand out to callers.
func (that *Game) Clone() Game {
	clone := Game{
		BoardSize: that.BoardSize,
		Board:     that.Board.Clone(),
		Moves:     append([]Move{}, that.Moves...),
	}

	if that.Message != nil {
		message := *that.Message
		clone.Message = &message
	}

	return clone
}
