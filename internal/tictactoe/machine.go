package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-machine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-machine/internal/entity"
)

const (
	DefaultBoardSize = 3
	minBoardSize     = 2
)

type action func(ev Event)

type transitionKey struct {
	from  entity.State
	event EventType
}

type transition struct {
	target entity.State
	// guard, when set, must hold for the transition to be taken.
	guard   func() bool
	actions []action
	// after runs once the target state has been entered.
	after []action
	// raise is dispatched right after the transition completes.
	raise EventType
}

// Machine is a single game session. It is not safe for concurrent use.
type Machine struct {
	logger *slog.Logger

	state entity.State
	game  *entity.Game

	transitions map[transitionKey]transition
	entry       map[entity.State][]action
	exit        map[entity.State][]action
}

func NewMachine(logger *slog.Logger, boardSize int) *Machine {
	machine := &Machine{
		logger: logger.With("component", "machine"),
		state:  entity.StateOrigin,
		game:   entity.NewGame(boardSize),
	}

	machine.entry = map[entity.State][]action{
		entity.StateOrigin: {machine.resetGame},
	}
	machine.exit = map[entity.State][]action{
		entity.StateOrigin: {machine.setUpBoard},
	}

	machine.transitions = map[transitionKey]transition{
		{entity.StateOrigin, EventStart}: {
			target: entity.StatePlaying,
		},
		{entity.StatePlaying, EventMove}: {
			target:  entity.StatePlaying,
			actions: []action{machine.applyMove},
			raise:   eventEndCheck,
		},
		{entity.StatePlaying, eventEndCheck}: {
			target: entity.StateEnded,
			guard:  machine.hasWinner,
		},
		{entity.StatePlaying, EventReset}: {
			target: entity.StateOrigin,
			after:  []action{machine.setUpBoard},
		},
		{entity.StateEnded, EventReset}: {
			target: entity.StateOrigin,
			after:  []action{machine.setUpBoard},
		},
	}

	machine.run(machine.entry[entity.StateOrigin], Event{})

	return machine
}

// Send processes one event to completion, including the end check a move raises.
// Rejected moves are not errors: they are reported through the context message.
func (that *Machine) Send(ev Event) (entity.State, error) {
	if !ev.Type.IsValid() {
		return that.state, fmt.Errorf("%w: %q", apperror.ErrUnknownEvent, ev.Type)
	}

	if err := that.dispatch(ev); err != nil {
		return that.state, err
	}

	return that.state, nil
}

func (that *Machine) State() entity.State {
	return that.state
}

// Snapshot returns a deep copy of the context.
func (that *Machine) Snapshot() entity.Game {
	return that.game.Clone()
}

func (that *Machine) CurrentPlayer() int {
	return that.game.CurrentPlayer()
}

func (that *Machine) dispatch(ev Event) error {
	from := that.state

	tr, ok := that.transitions[transitionKey{from: from, event: ev.Type}]
	if !ok {
		return fmt.Errorf("%w: %s in %s", apperror.ErrEventNotAllowed, ev.Type, from)
	}

	if tr.guard != nil && !tr.guard() {
		return nil
	}

	that.run(that.exit[from], ev)
	that.run(tr.actions, ev)
	that.state = tr.target
	that.run(that.entry[tr.target], ev)
	that.run(tr.after, ev)

	that.logger.Debug("transition", "event", ev.Type, "from", from, "to", that.state)

	if tr.raise != "" {
		return that.dispatch(Event{Type: tr.raise})
	}

	return nil
}

func (that *Machine) run(actions []action, ev Event) {
	for _, act := range actions {
		act(ev)
	}
}
