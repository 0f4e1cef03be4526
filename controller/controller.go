// Package controller maps pointer input onto board cells.
package controller

import (
	"math"

	"github.com/charmbracelet/log"

	"sudoku/engine"
	"sudoku/utils"
)

// Controller owns the board, the last known pointer position and the
// selected cell.
type Controller struct {
	Board engine.Board

	selected    engine.Coord
	hasSelected bool
	pointer     utils.Point
	logger      *log.Logger
}

// New creates a controller with no selection. A nil logger uses log.Default().
func New(board engine.Board, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		Board:  board,
		logger: logger,
	}
}

// OnPointerMove records the pointer position.
func (c *Controller) OnPointerMove(pos utils.Point) {
	c.pointer = pos
}

// Pointer returns the last recorded pointer position.
func (c *Controller) Pointer() utils.Point {
	return c.pointer
}

// Selected returns the selected cell, if any.
func (c *Controller) Selected() (engine.Coord, bool) {
	return c.selected, c.hasSelected
}

// Event handles one input event for a board drawn at pos with the given size.
// A press outside the board keeps the current selection.
func (c *Controller) Event(pos utils.Point, size utils.Point, e Event) {
	switch e.Kind {
	case EventPointerMove:
		c.OnPointerMove(e.Position)
	case EventPrimaryPress:
		bounds := utils.NewRect(pos.X, pos.Y, size.X, size.Y)
		cell, ok := CellAt(bounds, c.pointer)
		if !ok {
			c.logger.Debug("press outside board", "pointer", c.pointer)
			return
		}
		c.selected = cell
		c.hasSelected = true
		c.logger.Info("cell selected", "col", cell.X, "row", cell.Y)
	}
}

// CellAt maps p to the cell under it on a board occupying bounds.
func CellAt(bounds utils.Rect, p utils.Point) (engine.Coord, bool) {
	if !bounds.Contains(p) {
		return engine.Coord{}, false
	}
	d := p.Sub(bounds.Min())
	col := int(math.Floor(d.X / bounds.W * engine.Size))
	row := int(math.Floor(d.Y / bounds.H * engine.Size))
	// d/W may round up to 1 for points a hair inside the far edge.
	if col >= engine.Size {
		col = engine.Size - 1
	}
	if row >= engine.Size {
		row = engine.Size - 1
	}
	return engine.Coord{X: col, Y: row}, true
}
