// Package view lays out the board as a list of draw calls.
package view

import (
	"image/color"

	"sudoku/engine"
	"sudoku/utils"
)

// Selector exposes the currently selected cell.
type Selector interface {
	Selected() (engine.Coord, bool)
}

// View draws a board with the given settings.
type View struct {
	Settings Settings
}

func New(settings Settings) *View {
	return &View{Settings: settings}
}

// EdgeStyle is the color and radius used for a grid line.
type EdgeStyle struct {
	Color  color.NRGBA
	Radius float64
}

// IsSectionEdge reports whether grid line i separates two sections.
func IsSectionEdge(i int) bool {
	return i%engine.SectionSize == 0
}

// LineStyle returns the style of grid line i.
func (v *View) LineStyle(i int) EdgeStyle {
	s := &v.Settings
	if IsSectionEdge(i) {
		return EdgeStyle{Color: s.SectionEdgeColor, Radius: s.SectionEdgeRadius}
	}
	return EdgeStyle{Color: s.CellEdgeColor, Radius: s.CellEdgeRadius}
}

// CellRect returns the screen rectangle of cell c.
func (v *View) CellRect(c engine.Coord) utils.Rect {
	s := &v.Settings
	cellW := s.SizeX / engine.Size
	cellH := s.SizeY / engine.Size
	return utils.NewRect(
		s.Position.X+float64(c.X)*cellW,
		s.Position.Y+float64(c.Y)*cellH,
		cellW,
		cellH,
	)
}

// Draw emits, in paint order: the board background, the selected cell
// highlight, the grid lines and the outer board edge.
func (v *View) Draw(sel Selector, sink Sink) {
	s := &v.Settings
	board := s.Bounds()

	sink.FillRect(board, s.BackgroundColor)

	if sel != nil {
		if c, ok := sel.Selected(); ok {
			sink.FillRect(v.CellRect(c), s.SelectedCellBackgroundColor)
		}
	}

	x2 := board.Right()
	y2 := board.Bottom()
	for i := 0; i < engine.Size; i++ {
		x := utils.Lerp(s.Position.X, x2, 0, engine.Size, float64(i))
		y := utils.Lerp(s.Position.Y, y2, 0, engine.Size, float64(i))
		style := v.LineStyle(i)

		sink.Line(utils.Pt(x, s.Position.Y), utils.Pt(x, y2), style.Color, style.Radius)
		sink.Line(utils.Pt(s.Position.X, y), utils.Pt(x2, y), style.Color, style.Radius)
	}

	sink.StrokeRect(board, s.BoardEdgeColor, s.BoardEdgeRadius)
}
