package events

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"sudoku/controller"
	"sudoku/engine"
	"sudoku/utils"
)

func TestTranslate(t *testing.T) {
	pos := f32.Pt(100, 60)

	tests := []struct {
		name     string
		ev       pointer.Event
		scale    float32
		expected []controller.Event
	}{
		{
			name:     "move",
			ev:       pointer.Event{Kind: pointer.Move, Position: pos},
			scale:    1,
			expected: []controller.Event{controller.PointerMove(100, 60)},
		},
		{
			name:     "drag",
			ev:       pointer.Event{Kind: pointer.Drag, Position: pos, Buttons: pointer.ButtonPrimary},
			scale:    1,
			expected: []controller.Event{controller.PointerMove(100, 60)},
		},
		{
			name:     "primary press",
			ev:       pointer.Event{Kind: pointer.Press, Position: pos, Buttons: pointer.ButtonPrimary, Source: pointer.Mouse},
			scale:    1,
			expected: []controller.Event{controller.PointerMove(100, 60), controller.PrimaryPress()},
		},
		{
			name:     "touch press",
			ev:       pointer.Event{Kind: pointer.Press, Position: pos, Source: pointer.Touch},
			scale:    1,
			expected: []controller.Event{controller.PointerMove(100, 60), controller.PrimaryPress()},
		},
		{
			name:     "secondary press",
			ev:       pointer.Event{Kind: pointer.Press, Position: pos, Buttons: pointer.ButtonSecondary, Source: pointer.Mouse},
			scale:    1,
			expected: []controller.Event{controller.PointerMove(100, 60)},
		},
		{
			name:     "dp scaling",
			ev:       pointer.Event{Kind: pointer.Move, Position: pos},
			scale:    2,
			expected: []controller.Event{controller.PointerMove(50, 30)},
		},
		{
			name:     "release ignored",
			ev:       pointer.Event{Kind: pointer.Release, Position: pos},
			scale:    1,
			expected: []controller.Event{{Kind: controller.EventOther}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Translate(tc.ev, tc.scale)
			if len(got) != len(tc.expected) {
				t.Fatalf("Translate() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Translate()[%d] = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestTranslatedPressSelectsCell(t *testing.T) {
	c := controller.New(engine.New(), nil)
	press := pointer.Event{Kind: pointer.Press, Position: f32.Pt(240, 80), Buttons: pointer.ButtonPrimary}

	for _, e := range Translate(press, 2) {
		c.Event(utils.Pt(10, 10), utils.Pt(400, 400), e)
	}

	got, ok := c.Selected()
	if !ok || got.X != 2 || got.Y != 0 {
		t.Errorf("Selected() = %v %v, expected (2, 0)", got, ok)
	}
}

func TestIsClose(t *testing.T) {
	tests := []struct {
		name     string
		ev       event.Event
		expected bool
	}{
		{"escape press", key.Event{Name: key.NameEscape, State: key.Press}, true},
		{"escape release", key.Event{Name: key.NameEscape, State: key.Release}, false},
		{"other key", key.Event{Name: key.NameEnter, State: key.Press}, false},
		{"pointer", pointer.Event{Kind: pointer.Press}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsClose(tc.ev); got != tc.expected {
				t.Errorf("IsClose() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
