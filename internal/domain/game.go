package domain

import "errors"

// Cell represents a board cell state. X and O double as the two players.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player; Empty stays Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

// Line is a triple of board indices.
type Line [3]int

// Lines lists the winning triples in detection order.
var Lines = [8]Line{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// Errors returned by domain operations.
var (
	ErrInvalidIndex = errors.New("invalid cell index")
)

// ValidIndex reports whether idx addresses a cell.
func ValidIndex(idx int) bool {
	return idx >= 0 && idx < len(Board{})
}

// Detect returns the first completed line and the mark occupying it.
func Detect(b Board) (Cell, Line, bool) {
	for _, ln := range Lines {
		c := b[ln[0]]
		if c != Empty && b[ln[1]] == c && b[ln[2]] == c {
			return c, ln, true
		}
	}
	return Empty, Line{}, false
}

// IsFull reports whether no cell is Empty.
func IsFull(b Board) bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of empty cells in ascending order.
func EmptyCells(b Board) []int {
	out := make([]int, 0, len(b))
	for i, c := range b {
		if c == Empty {
			out = append(out, i)
		}
	}
	return out
}
