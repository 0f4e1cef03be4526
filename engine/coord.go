package engine

import "fmt"

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X int
	Y int
}

func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Section returns the index in [0, Size) of the 3x3 section holding c,
// counted left to right, top to bottom.
func (c Coord) Section() int {
	return (c.Y/SectionSize)*(Size/SectionSize) + c.X/SectionSize
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
