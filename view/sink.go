package view

import (
	"fmt"
	"image/color"

	"sudoku/utils"
)

// Sink receives draw calls in paint order. Radii are half the stroke width.
type Sink interface {
	FillRect(r utils.Rect, c color.NRGBA)
	StrokeRect(r utils.Rect, c color.NRGBA, radius float64)
	Line(from, to utils.Point, c color.NRGBA, radius float64)
}

type PrimitiveKind int

const (
	FilledRect PrimitiveKind = iota
	BorderRect
	LinePrimitive
)

func (k PrimitiveKind) String() string {
	switch k {
	case FilledRect:
		return "rect"
	case BorderRect:
		return "border"
	case LinePrimitive:
		return "line"
	default:
		return "unknown"
	}
}

// Primitive is one recorded draw call. Rect is set for rectangles, From and
// To for lines.
type Primitive struct {
	Kind   PrimitiveKind
	Rect   utils.Rect
	From   utils.Point
	To     utils.Point
	Color  color.NRGBA
	Radius float64
}

func (p Primitive) String() string {
	c := fmt.Sprintf("#%02x%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B, p.Color.A)
	switch p.Kind {
	case FilledRect:
		return fmt.Sprintf("%s %v %s", p.Kind, p.Rect, c)
	case BorderRect:
		return fmt.Sprintf("%s %v %s r=%g", p.Kind, p.Rect, c, p.Radius)
	default:
		return fmt.Sprintf("%s %v-%v %s r=%g", p.Kind, p.From, p.To, c, p.Radius)
	}
}

// Recorder is a Sink that keeps every draw call in order.
type Recorder struct {
	Primitives []Primitive
}

func (r *Recorder) FillRect(rect utils.Rect, c color.NRGBA) {
	r.Primitives = append(r.Primitives, Primitive{Kind: FilledRect, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect utils.Rect, c color.NRGBA, radius float64) {
	r.Primitives = append(r.Primitives, Primitive{Kind: BorderRect, Rect: rect, Color: c, Radius: radius})
}

func (r *Recorder) Line(from, to utils.Point, c color.NRGBA, radius float64) {
	r.Primitives = append(r.Primitives, Primitive{Kind: LinePrimitive, From: from, To: to, Color: c, Radius: radius})
}
