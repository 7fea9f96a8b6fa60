package entity

import "strings"

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Cell is the content of one board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerOneCell
	PlayerTwoCell
)

// WinCombos lists rows, then columns, then the two diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Owner returns the player holding the cell, if any.
func (that Cell) Owner() (Player, bool) {
	switch that {
	case PlayerOneCell:
		return PlayerOne, true
	case PlayerTwoCell:
		return PlayerTwo, true
	default:
		return 0, false
	}
}

// Inverted swaps ownership; empty cells stay empty.
func (that Cell) Inverted() Cell {
	switch that {
	case PlayerOneCell:
		return PlayerTwoCell
	case PlayerTwoCell:
		return PlayerOneCell
	default:
		return that
	}
}

func (that Cell) String() string {
	switch that {
	case PlayerOneCell:
		return "1"
	case PlayerTwoCell:
		return "2"
	default:
		return "0"
	}
}

// Board is a row-major 3x3 grid: index = row*3 + col.
type Board [CellCount]Cell

// NewBoard builds a board from three rows.
func NewBoard(rows [BoardSize][BoardSize]Cell) Board {
	var board Board
	for row := range rows {
		for col := range rows[row] {
			board[row*BoardSize+col] = rows[row][col]
		}
	}

	return board
}

func (that Board) At(row, col int) Cell {
	return that[row*BoardSize+col]
}

// Rows returns the board as a 3x3 matrix.
func (that Board) Rows() [BoardSize][BoardSize]Cell {
	var rows [BoardSize][BoardSize]Cell
	for i, cell := range that {
		rows[i/BoardSize][i%BoardSize] = cell
	}

	return rows
}

// SwapColumns exchanges two columns on every row.
func (that *Board) SwapColumns(a, b int) {
	for row := 0; row < BoardSize; row++ {
		i, j := row*BoardSize+a, row*BoardSize+b
		that[i], that[j] = that[j], that[i]
	}
}

// Occupied returns the indices of non-empty cells in board order.
func (that Board) Occupied() []int {
	occupied := make([]int, 0, CellCount)
	for i, cell := range that {
		if cell != EmptyCell {
			occupied = append(occupied, i)
		}
	}

	return occupied
}

func (that Board) Count(cell Cell) int {
	count := 0
	for _, c := range that {
		if c == cell {
			count++
		}
	}

	return count
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// CompletedLine returns the owner of the first full line in WinCombos order.
func (that Board) CompletedLine() (Player, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a.Owner()
		}
	}

	return 0, false
}

// String renders the board as "120/020/100".
func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if i > 0 && i%BoardSize == 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}
