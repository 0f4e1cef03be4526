// Package ui hosts the board in a Gio window.
package ui

import (
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/charmbracelet/log"

	"sudoku/config"
	"sudoku/controller"
	"sudoku/ui/events"
	"sudoku/view"
)

var whiteColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

type UI struct {
	window     config.WindowConfig
	view       *view.View
	controller *controller.Controller
	logger     *log.Logger
}

func New(window config.WindowConfig, v *view.View, c *controller.Controller, logger *log.Logger) *UI {
	if logger == nil {
		logger = log.Default()
	}
	return &UI{
		window:     window,
		view:       v,
		controller: c,
		logger:     logger,
	}
}

// Run opens the window and blocks in the Gio main loop. It does not return.
func (ui *UI) Run() {
	go func() {
		window := new(app.Window)

		size := image.Pt(ui.window.Width, ui.window.Height)
		window.Option(
			app.Title(ui.window.Title),
			app.Size(unit.Dp(size.X), unit.Dp(size.Y)),
			app.MinSize(unit.Dp(size.X), unit.Dp(size.Y)),
			app.MaxSize(unit.Dp(size.X), unit.Dp(size.Y)),
		)
		ui.logger.Info("window opened", "title", ui.window.Title, "width", size.X, "height", size.Y)

		if err := ui.loop(window); err != nil {
			ui.logger.Fatal("window closed", "error", err)
		}
		ui.logger.Info("window closed")
		os.Exit(0)
	}()
	app.Main()
}

func (ui *UI) loop(window *app.Window) error {
	var ops op.Ops

	tag := new(bool)

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			// Board settings are in dp; Gio reports pointer positions in px.
			scale := gtx.Metric.PxPerDp

			if ui.handleEvents(e.Source, tag, scale) {
				ui.logger.Info("escape pressed, closing window")
				window.Perform(system.ActionClose)
			}

			area := clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops)
			event.Op(gtx.Ops, tag)
			paint.Fill(gtx.Ops, whiteColor)
			area.Pop()

			stack := op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(scale, scale))).Push(gtx.Ops)
			ui.view.Draw(ui.controller, gioSink{ops: gtx.Ops})
			stack.Pop()

			e.Frame(gtx.Ops)
		}
	}
}

// handleEvents applies queued input to the controller. It reports whether
// the window was asked to close.
func (ui *UI) handleEvents(source input.Source, tag *bool, scale float32) bool {
	s := &ui.view.Settings
	closing := false
	for {
		ev, ok := source.Event(events.Filters(tag)...)
		if !ok {
			break
		}

		if events.IsClose(ev) {
			closing = true
			continue
		}
		if x, ok := ev.(pointer.Event); ok {
			for _, ce := range events.Translate(x, scale) {
				ui.controller.Event(s.Position, s.Size(), ce)
			}
		}
	}
	return closing
}
