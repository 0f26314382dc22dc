package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-machine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-machine/internal/tictactoe"
)

var errQuit = errors.New("quit")

type uSession interface {
	CreateSession(ctx context.Context, boardSize int) (*entity.Session, error)
	Send(ctx context.Context, id string, ev tictactoe.Event) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	ListSessions(ctx context.Context) ([]*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type handler func(ctx context.Context, args []string) error

// Server drives sessions from text commands, one per line.
type Server struct {
	logger   *slog.Logger
	uSession uSession

	boardSize int
	out       io.Writer
	current   string

	handlers map[string]handler
}

func New(logger *slog.Logger, uSession uSession, boardSize int, out io.Writer) *Server {
	server := &Server{
		logger:    logger.With("component", "console"),
		uSession:  uSession,
		boardSize: boardSize,
		out:       out,

		handlers: make(map[string]handler),
	}

	server.handlers["new"] = server.handleNew
	server.handlers["use"] = server.handleUse
	server.handlers["sessions"] = server.handleSessions
	server.handlers["start"] = server.handleStart
	server.handlers["move"] = server.handleMove
	server.handlers["reset"] = server.handleReset
	server.handlers["show"] = server.handleShow
	server.handlers["json"] = server.handleJSON
	server.handlers["delete"] = server.handleDelete
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Run reads commands from in until quit, end of input or ctx is done.
// A session is created first unless one is already selected.
func (that *Server) Run(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	if that.current == "" {
		if err := that.handleNew(ctx, nil); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("could not start console: %w", err)
		}

		that.printf("type \"help\" for commands\n")
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}

			if err := that.handleLine(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}

				log.Debug("command failed", "line", line, "error", err)
				that.printf("error: %v\n", err)
			}
		}
	}
}

func (that *Server) handleLine(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	command := strings.ToLower(fields[0])

	handle, ok := that.handlers[command]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}

	return handle(ctx, fields[1:])
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
