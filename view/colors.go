package view

import "image/color"

var (
	lavenderColor     = color.NRGBA{R: 204, G: 204, B: 255, A: 255}
	paleLavenderColor = color.NRGBA{R: 230, G: 230, B: 255, A: 255}
	navyColor         = color.NRGBA{R: 0, G: 0, B: 51, A: 255}
)

// RGBA converts a color given as floats in [0, 1] to NRGBA. Components are
// clamped.
func RGBA(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: channel(a)}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
