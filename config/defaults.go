package config

import (
	_ "embed"
)

//go:embed defaults/view.yaml
var defaultViewYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Sudoku",
			Width:  512,
			Height: 512,
		},
		Board: BoardConfig{
			Position: [2]float64{10, 10},
			Size:     [2]float64{400, 400},
			Colors: ColorConfig{
				Background:             Color{0.8, 0.8, 1.0, 1.0},
				Border:                 Color{0.0, 0.0, 0.2, 1.0},
				BoardEdge:              Color{0.0, 0.0, 0.2, 1.0},
				SectionEdge:            Color{0.0, 0.0, 0.2, 1.0},
				CellEdge:               Color{0.0, 0.0, 0.2, 1.0},
				SelectedCellBackground: Color{0.9, 0.9, 1.0, 1.0},
			},
			Radius: RadiusConfig{
				BoardEdge:   3,
				SectionEdge: 2,
				CellEdge:    1,
			},
		},
	}
}
