// Package config provides YAML-based window and board view configuration.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"sudoku/utils"
	"sudoku/view"
)

// ErrInvalidSettings is returned by Validate for unusable geometry.
var ErrInvalidSettings = errors.New("invalid view settings")

// Config is the full application configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Board  BoardConfig  `yaml:"board"`
}

// WindowConfig describes the host window. Sizes are in dp.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// BoardConfig describes where and how the board is drawn.
type BoardConfig struct {
	Position [2]float64   `yaml:"position"`
	Size     [2]float64   `yaml:"size"`
	Colors   ColorConfig  `yaml:"colors"`
	Radius   RadiusConfig `yaml:"radius"`
}

// Color is an RGBA color with float components in [0, 1].
type Color [4]float64

// ColorConfig holds the named board colors.
type ColorConfig struct {
	Background             Color `yaml:"background"`
	Border                 Color `yaml:"border"`
	BoardEdge              Color `yaml:"board_edge"`
	SectionEdge            Color `yaml:"section_edge"`
	CellEdge               Color `yaml:"cell_edge"`
	SelectedCellBackground Color `yaml:"selected_cell_background"`
}

// RadiusConfig holds edge radii. A radius is half the stroke width.
type RadiusConfig struct {
	BoardEdge   float64 `yaml:"board_edge"`
	SectionEdge float64 `yaml:"section_edge"`
	CellEdge    float64 `yaml:"cell_edge"`
}

// Validate checks the geometry the view depends on.
func (c Config) Validate() error {
	b := c.Board
	for i, v := range b.Position {
		if !finite(v) {
			return fmt.Errorf("%w: board position[%d] = %g", ErrInvalidSettings, i, v)
		}
	}
	for i, v := range b.Size {
		if !finite(v) || v <= 0 {
			return fmt.Errorf("%w: board size[%d] = %g, must be positive", ErrInvalidSettings, i, v)
		}
	}
	radii := []struct {
		name string
		r    float64
	}{
		{"board_edge", b.Radius.BoardEdge},
		{"section_edge", b.Radius.SectionEdge},
		{"cell_edge", b.Radius.CellEdge},
	}
	for _, e := range radii {
		if !finite(e.r) || e.r < 0 {
			return fmt.Errorf("%w: radius %s = %g, must not be negative", ErrInvalidSettings, e.name, e.r)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, c.Window.Width, c.Window.Height)
	}
	return nil
}

// ViewSettings converts the board section into view settings.
func (c Config) ViewSettings() view.Settings {
	b := c.Board
	return view.Settings{
		Position:                    utils.Pt(b.Position[0], b.Position[1]),
		SizeX:                       b.Size[0],
		SizeY:                       b.Size[1],
		BackgroundColor:             b.Colors.Background.NRGBA(),
		BorderColor:                 b.Colors.Border.NRGBA(),
		BoardEdgeColor:              b.Colors.BoardEdge.NRGBA(),
		SectionEdgeColor:            b.Colors.SectionEdge.NRGBA(),
		CellEdgeColor:               b.Colors.CellEdge.NRGBA(),
		BoardEdgeRadius:             b.Radius.BoardEdge,
		SectionEdgeRadius:           b.Radius.SectionEdge,
		CellEdgeRadius:              b.Radius.CellEdge,
		SelectedCellBackgroundColor: b.Colors.SelectedCellBackground.NRGBA(),
	}
}

func (c Color) NRGBA() color.NRGBA {
	return view.RGBA(c[0], c[1], c[2], c[3])
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
