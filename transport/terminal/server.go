// Package terminal is a full-screen host for one game session.
package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-machine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-machine/internal/tictactoe"
)

type uSession interface {
	CreateSession(ctx context.Context, boardSize int) (*entity.Session, error)
	Send(ctx context.Context, id string, ev tictactoe.Event) (*entity.Session, error)
}

// Screen is the part of tcell.Screen the host draws on.
type Screen interface {
	Clear()
	Show()
	Sync()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
}

type Server struct {
	logger   *slog.Logger
	uSession uSession
	screen   Screen

	boardSize int
	session   *entity.Session
	// notice holds the last refusal from the machine, shown under the status line.
	notice string

	cursorX int
	cursorY int
}

func New(logger *slog.Logger, uSession uSession, boardSize int, screen Screen) *Server {
	return &Server{
		logger:    logger.With("component", "terminal"),
		uSession:  uSession,
		screen:    screen,
		boardSize: boardSize,
	}
}

// Run creates a session and handles input until the player quits or ctx is done.
func (that *Server) Run(ctx context.Context) error {
	session, err := that.uSession.CreateSession(ctx, that.boardSize)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("could not start terminal: %w", err)
	}

	that.session = session

	stop := context.AfterFunc(ctx, func() {
		if err := that.screen.PostEvent(tcell.NewEventInterrupt(cmdQuit)); err != nil {
			that.logger.Error("failed to post quit", "error", err)
		}
	})
	defer stop()

	for {
		that.draw()

		switch ev := that.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventKey:
			if that.apply(ctx, commandFor(ev)) {
				return nil
			}
		case *tcell.EventInterrupt:
			cmd, _ := ev.Data().(command)
			if that.apply(ctx, cmd) {
				return nil
			}
		}
	}
}

// apply runs cmd and reports whether the host should stop.
func (that *Server) apply(ctx context.Context, cmd command) bool {
	size := len(that.session.Game.Board)

	switch cmd {
	case cmdQuit:
		return true
	case cmdUp:
		that.cursorX = max(that.cursorX-1, 0)
	case cmdDown:
		that.cursorX = min(that.cursorX+1, max(size-1, 0))
	case cmdLeft:
		that.cursorY = max(that.cursorY-1, 0)
	case cmdRight:
		that.cursorY = min(that.cursorY+1, max(size-1, 0))
	case cmdMark:
		that.send(ctx, tictactoe.MoveEvent(that.cursorX, that.cursorY))
	case cmdStart:
		that.send(ctx, tictactoe.StartEvent())
	case cmdReset:
		that.send(ctx, tictactoe.ResetEvent())
	case cmdNone:
	}

	return false
}

func (that *Server) send(ctx context.Context, ev tictactoe.Event) {
	that.notice = ""

	session, err := that.uSession.Send(ctx, that.session.ID, ev)
	if session != nil {
		that.session = session
	}

	if err != nil {
		that.logger.Debug("event refused", "event", ev.Type, "error", err)
		that.notice = err.Error()
	}
}
