package tictactoe

const (
	EventStart EventType = "START"
	EventMove  EventType = "MOVE"
	EventReset EventType = "RESET"

	// eventEndCheck is raised by the machine itself after every move.
	eventEndCheck EventType = "END"
)

type EventType string

// IsValid reports whether a host is allowed to send the event type.
func (that EventType) IsValid() bool {
	switch that {
	case EventStart, EventMove, EventReset:
		return true
	default:
		return false
	}
}

// Event is an input to the machine. X and Y are only read for moves.
type Event struct {
	Type EventType
	X    int
	Y    int
}

func StartEvent() Event {
	return Event{Type: EventStart}
}

func MoveEvent(x, y int) Event {
	return Event{Type: EventMove, X: x, Y: y}
}

func ResetEvent() Event {
	return Event{Type: EventReset}
}
