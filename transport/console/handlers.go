package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-machine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-machine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-machine/internal/tictactoe"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errBadArguments   = errors.New("bad arguments")
)

const helpText = `commands:
  new [size]     create a session and switch to it
  use <id>       switch to another session
  sessions       list sessions
  start          start the game
  move <x> <y>   mark row x, column y
  reset          reset the game
  show           print the board
  json           print the session as JSON
  delete [id]    delete a session, the current one by default
  help           print this list
  quit           leave
  exit           same as quit
`

func (that *Server) handleNew(ctx context.Context, args []string) error {
	size := that.boardSize

	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: size must be a number", errBadArguments)
		}
		size = parsed
	}

	session, err := that.uSession.CreateSession(ctx, size)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	that.current = session.ID
	that.printf("session %s created\n", session.ID)

	return nil
}

func (that *Server) handleUse(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: use <id>", errBadArguments)
	}

	session, err := that.uSession.GetSession(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to switch session: %w", err)
	}

	that.current = session.ID
	render(that.out, session)

	return nil
}

func (that *Server) handleSessions(ctx context.Context, _ []string) error {
	sessions, err := that.uSession.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	for _, session := range sessions {
		marker := " "
		if session.ID == that.current {
			marker = "*"
		}

		that.printf("%s %s %-7s %dx%d moves=%d\n", marker, session.ID, session.State,
			session.Game.BoardSize, session.Game.BoardSize, len(session.Game.Moves))
	}

	return nil
}

func (that *Server) handleStart(ctx context.Context, _ []string) error {
	return that.send(ctx, tictactoe.StartEvent())
}

func (that *Server) handleReset(ctx context.Context, _ []string) error {
	return that.send(ctx, tictactoe.ResetEvent())
}

func (that *Server) handleMove(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: move <x> <y>", errBadArguments)
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: x must be a number", errBadArguments)
	}

	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: y must be a number", errBadArguments)
	}

	return that.send(ctx, tictactoe.MoveEvent(x, y))
}

func (that *Server) handleShow(ctx context.Context, _ []string) error {
	session, err := that.currentSession(ctx)
	if err != nil {
		return err
	}

	render(that.out, session)

	return nil
}

func (that *Server) handleJSON(ctx context.Context, _ []string) error {
	session, err := that.currentSession(ctx)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	that.printf("%s\n", raw)

	return nil
}

func (that *Server) handleDelete(ctx context.Context, args []string) error {
	id := that.current
	if len(args) > 0 {
		id = args[0]
	}

	if id == "" {
		return apperror.ErrNoActiveSession
	}

	if err := that.uSession.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if id == that.current {
		that.current = ""
	}

	that.printf("session %s deleted\n", id)

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	return errQuit
}

// send dispatches ev to the current session and prints the outcome, refused or not.
func (that *Server) send(ctx context.Context, ev tictactoe.Event) error {
	if that.current == "" {
		return apperror.ErrNoActiveSession
	}

	session, err := that.uSession.Send(ctx, that.current, ev)
	if session != nil {
		render(that.out, session)
	}

	if err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}

	return nil
}

func (that *Server) currentSession(ctx context.Context) (*entity.Session, error) {
	if that.current == "" {
		return nil, apperror.ErrNoActiveSession
	}

	session, err := that.uSession.GetSession(ctx, that.current)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}
