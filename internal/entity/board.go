package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Mark is what a cell holds: nothing, or the badge of the player who took it.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Size is the number of rows and columns of the board.
const (
	Size      = 3
	CellCount = Size * Size
)

const (
	firstRowLabel = 'a'
	firstColLabel = '1'
)

var (
	ErrOutOfRange  = fmt.Errorf("%w: coordinate out of range", apperror.ErrMalformedInput)
	ErrInvalidMark = errors.New("invalid mark")
)

func (that Mark) String() string {
	if that == MarkEmpty {
		return " "
	}
	return string(that)
}

func (that Mark) IsPlayerMark() bool {
	return that == MarkX || that == MarkO
}

// Coord addresses one cell; Row and Col are zero-based.
type Coord struct {
	Row int
	Col int
}

// ParseCoord turns move text such as "b2" into a coordinate. The text must be
// exactly a lower case row letter followed by a column number.
func ParseCoord(raw string) (Coord, error) {
	switch {
	case raw == "":
		return Coord{}, fmt.Errorf("%w: empty move", apperror.ErrMalformedInput)
	case len(raw) != 2:
		return Coord{}, fmt.Errorf("%w: %q must be a row letter followed by a column number", apperror.ErrMalformedInput, raw)
	}

	coord := Coord{
		Row: int(raw[0]) - firstRowLabel,
		Col: int(raw[1]) - firstColLabel,
	}

	if !coord.Valid() {
		return Coord{}, fmt.Errorf("%w: unknown cell %q", apperror.ErrMalformedInput, raw)
	}

	return coord, nil
}

func (that Coord) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Coord) String() string {
	return RowLabel(that.Row) + ColLabel(that.Col)
}

func (that Coord) index() int {
	return that.Row*Size + that.Col
}

func RowLabel(row int) string {
	return string(rune(firstRowLabel + row))
}

func ColLabel(col int) string {
	return string(rune(firstColLabel + col))
}

// Line is an ordered triple of cells that wins when uniformly marked.
type Line [Size]Coord

// Lines lists every winning line: rows, then columns, then both diagonals.
var Lines = [...]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board struct {
	cells [CellCount]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// At returns the mark at coord.
func (that *Board) At(coord Coord) (Mark, error) {
	if !coord.Valid() {
		return MarkEmpty, fmt.Errorf("%w: %+v", ErrOutOfRange, coord)
	}
	return that.cells[coord.index()], nil
}

func (that *Board) IsOccupied(coord Coord) bool {
	mark, err := that.At(coord)
	return err == nil && mark != MarkEmpty
}

// Place is the only way a cell changes. A placed mark is never cleared.
func (that *Board) Place(coord Coord, mark Mark) error {
	if !mark.IsPlayerMark() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, string(mark))
	}

	if !coord.Valid() {
		return fmt.Errorf("%w: %+v", ErrOutOfRange, coord)
	}

	if that.cells[coord.index()] != MarkEmpty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, coord)
	}

	that.cells[coord.index()] = mark

	return nil
}

func (that *Board) RemainingEmptyCount() int {
	count := 0
	for _, cell := range that.cells {
		if cell == MarkEmpty {
			count++
		}
	}
	return count
}

func (that *Board) MarksAlongLine(line Line) [Size]Mark {
	var marks [Size]Mark
	for i, coord := range line {
		marks[i], _ = that.At(coord)
	}
	return marks
}

// WinningLine returns the first line fully held by one mark.
func (that *Board) WinningLine() (Line, bool) {
	for _, line := range Lines {
		marks := that.MarksAlongLine(line)
		if marks[0] != MarkEmpty && marks[0] == marks[1] && marks[1] == marks[2] {
			return line, true
		}
	}
	return Line{}, false
}
