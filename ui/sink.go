package ui

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"sudoku/utils"
)

// gioSink paints view primitives into a Gio op list.
type gioSink struct {
	ops *op.Ops
}

func pt(p utils.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

func (s gioSink) rectPath(r utils.Rect) clip.PathSpec {
	var p clip.Path
	p.Begin(s.ops)
	p.MoveTo(pt(utils.Pt(r.X, r.Y)))
	p.LineTo(pt(utils.Pt(r.Right(), r.Y)))
	p.LineTo(pt(utils.Pt(r.Right(), r.Bottom())))
	p.LineTo(pt(utils.Pt(r.X, r.Bottom())))
	p.Close()
	return p.End()
}

func (s gioSink) FillRect(r utils.Rect, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	paint.FillShape(s.ops, c, clip.Outline{Path: s.rectPath(r)}.Op())
}

func (s gioSink) StrokeRect(r utils.Rect, c color.NRGBA, radius float64) {
	if radius <= 0 {
		return
	}
	paint.FillShape(s.ops, c, clip.Stroke{Path: s.rectPath(r), Width: float32(2 * radius)}.Op())
}

func (s gioSink) Line(from, to utils.Point, c color.NRGBA, radius float64) {
	if radius <= 0 {
		return
	}
	var p clip.Path
	p.Begin(s.ops)
	p.MoveTo(pt(from))
	p.LineTo(pt(to))
	paint.FillShape(s.ops, c, clip.Stroke{Path: p.End(), Width: float32(2 * radius)}.Op())
}
