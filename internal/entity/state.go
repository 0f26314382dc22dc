package entity

import "fmt"

const (
	StateOrigin State = iota
	StatePlaying
	StateEnded
)

// State is a node of the game state machine.
type State int

func (that State) String() string {
	switch that {
	case StateOrigin:
		return "origin"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

func (that State) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "origin":
		*that = StateOrigin
	case "playing":
		*that = StatePlaying
	case "ended":
		*that = StateEnded
	default:
		return fmt.Errorf("%w: %q", ErrUnknownState, text)
	}

	return nil
}
