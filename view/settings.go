package view

import (
	"image/color"

	"sudoku/utils"
)

// Settings is the geometry and color configuration of the board view. It is
// not modified after construction.
type Settings struct {
	// Position of the board's top-left corner.
	Position utils.Point
	// Size of the board along the horizontal and vertical edge.
	SizeX float64
	SizeY float64

	BackgroundColor color.NRGBA
	// BorderColor is carried for configuration compatibility; Draw does not use it.
	BorderColor color.NRGBA
	// Edge around the whole board.
	BoardEdgeColor color.NRGBA
	// Edges between the 3x3 sections.
	SectionEdgeColor color.NRGBA
	// Edges between cells.
	CellEdgeColor color.NRGBA

	BoardEdgeRadius   float64
	SectionEdgeRadius float64
	CellEdgeRadius    float64

	SelectedCellBackgroundColor color.NRGBA
}

// DefaultSettings returns a 400x400 board placed at (10, 10).
func DefaultSettings() Settings {
	return Settings{
		Position:                    utils.Pt(10, 10),
		SizeX:                       400,
		SizeY:                       400,
		BackgroundColor:             lavenderColor,
		BorderColor:                 navyColor,
		BoardEdgeColor:              navyColor,
		SectionEdgeColor:            navyColor,
		CellEdgeColor:               navyColor,
		BoardEdgeRadius:             3,
		SectionEdgeRadius:           2,
		CellEdgeRadius:              1,
		SelectedCellBackgroundColor: paleLavenderColor,
	}
}

// Bounds returns the board rectangle.
func (s Settings) Bounds() utils.Rect {
	return utils.NewRect(s.Position.X, s.Position.Y, s.SizeX, s.SizeY)
}

// Size returns the board size as a point.
func (s Settings) Size() utils.Point {
	return utils.Pt(s.SizeX, s.SizeY)
}
