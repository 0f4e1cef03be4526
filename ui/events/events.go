// Package events converts Gio input events into controller events.
package events

import (
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"sudoku/controller"
)

// Filters returns the pointer and key filters the host listens to.
func Filters(tag event.Tag) []event.Filter {
	return []event.Filter{
		pointer.Filter{
			Target: tag,
			Kinds:  pointer.Move | pointer.Press | pointer.Drag,
		},
		key.Filter{Name: key.NameEscape},
	}
}

// Translate converts a pointer event with positions in px into controller
// events in dp. A press is preceded by a move to the press position, so touch
// input that never hovers still selects the touched cell.
func Translate(x pointer.Event, scale float32) []controller.Event {
	move := controller.PointerMove(float64(x.Position.X/scale), float64(x.Position.Y/scale))

	switch x.Kind {
	case pointer.Move, pointer.Drag:
		return []controller.Event{move}
	case pointer.Press:
		if x.Buttons.Contain(pointer.ButtonPrimary) || x.Source == pointer.Touch {
			return []controller.Event{move, controller.PrimaryPress()}
		}
		return []controller.Event{move}
	default:
		return []controller.Event{{Kind: controller.EventOther}}
	}
}

// IsClose reports whether e asks to close the window (Escape pressed).
func IsClose(e event.Event) bool {
	k, ok := e.(key.Event)
	return ok && k.Name == key.NameEscape && k.State == key.Press
}
