package engine

import "fmt"

// Size is the number of cells along each edge of the board.
const Size = 9

// SectionSize is the number of cells along each edge of a section.
const SectionSize = 3

// Cell is the value stored in a board cell. 0 means empty.
type Cell uint8

const Empty Cell = 0

// Board is a fixed Size x Size grid of cell values, indexed [row][col].
type Board struct {
	Cells [Size][Size]Cell
}

// New returns a board with every cell empty.
func New() Board {
	return Board{}
}

func (b *Board) Size() int {
	return Size
}

// SetCell stores a value at c. Values are not range checked.
func (b *Board) SetCell(c Coord, cell Cell) error {
	if !c.InBounds() {
		return fmt.Errorf("set cell %v: out of bounds", c)
	}
	b.Cells[c.Y][c.X] = cell
	return nil
}

// GetCell returns the value at c, or Empty when c is off the board.
func (b *Board) GetCell(c Coord) Cell {
	if !c.InBounds() {
		return Empty
	}
	return b.Cells[c.Y][c.X]
}
