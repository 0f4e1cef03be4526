package controller

import "sudoku/utils"

// EventKind tags the input events the controller understands.
type EventKind int

const (
	EventOther EventKind = iota
	EventPointerMove
	EventPrimaryPress
)

func (k EventKind) String() string {
	switch k {
	case EventOther:
		return "Other"
	case EventPointerMove:
		return "PointerMove"
	case EventPrimaryPress:
		return "PrimaryPress"
	default:
		return "Unknown"
	}
}

// Event is one input event delivered by the host. Position is only
// meaningful for EventPointerMove.
type Event struct {
	Kind     EventKind
	Position utils.Point
}

func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, Position: utils.Pt(x, y)}
}

func PrimaryPress() Event {
	return Event{Kind: EventPrimaryPress}
}
