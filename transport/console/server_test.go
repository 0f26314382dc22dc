package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-machine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-machine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-machine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-machine/internal/usecase"
)

func newServer(t *testing.T, boardSize int) (*Server, *bytes.Buffer) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewSessionManager(logger, repository.NewSessionRepository())
	out := &bytes.Buffer{}

	return New(logger, manager, boardSize, out), out
}

func runScript(t *testing.T, server *Server, lines ...string) {
	t.Helper()

	err := server.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n"))
	require.NoError(t, err)
}

func TestServer_Run(t *testing.T) {
	t.Run("Plays a game until X wins", func(t *testing.T) {
		// Given: a console on a 3x3 board
		server, out := newServer(t, 3)

		// When: X completes the first row
		runScript(t, server,
			"start",
			"move 0 0", "move 1 0", "move 0 1", "move 1 1", "move 0 2",
			"quit",
		)

		// Then: the win is printed with the winning row
		output := out.String()
		assert.Contains(t, output, "session ")
		assert.Contains(t, output, "  0  X  X  X\n")
		assert.Contains(t, output, "  1  O  O  .\n")
		assert.Contains(t, output, "state: ended\n[success] X wins!\n")
	})

	t.Run("Rejected moves print the game message", func(t *testing.T) {
		server, out := newServer(t, 3)

		runScript(t, server, "start", "move 0 0", "move 0 0", "move -1 0")

		output := out.String()
		assert.Contains(t, output, "[error] Position is already marked.\n")
		assert.Contains(t, output, "[error] Invalid position.\n")
		assert.Contains(t, output, "state: playing, next: O\n")
	})

	t.Run("Events the machine refuses are reported", func(t *testing.T) {
		server, out := newServer(t, 3)

		runScript(t, server, "move 0 0", "reset")

		output := out.String()
		assert.Contains(t, output, "board 3x3 not set up")
		assert.Contains(t, output, "error: failed to send event")
		assert.Contains(t, output, "is not allowed")
	})

	t.Run("Bad input does not stop the console", func(t *testing.T) {
		server, out := newServer(t, 3)

		runScript(t, server, "fly", "move 1", "move a 1", "new x", "", "start")

		output := out.String()
		assert.Contains(t, output, `error: unknown command: "fly"`)
		assert.Contains(t, output, "error: bad arguments: move <x> <y>")
		assert.Contains(t, output, "error: bad arguments: x must be a number")
		assert.Contains(t, output, "error: bad arguments: size must be a number")
		assert.Contains(t, output, "state: playing, next: X\n")
	})

	t.Run("Small boards fall back with a warning", func(t *testing.T) {
		server, out := newServer(t, 3)

		runScript(t, server, "new 1", "start")

		assert.Contains(t, out.String(), "[warning] Board size cannot be less than 2")
	})

	t.Run("Sessions can be listed, switched and deleted", func(t *testing.T) {
		server, out := newServer(t, 3)

		// Given: a first session that was started
		runScript(t, server, "start")
		first := server.current

		// When: a second one is created and the list is printed
		runScript(t, server, "new 4", "sessions")

		// Then: both are listed and the new one is current
		output := out.String()
		assert.Contains(t, output, "  "+first+" playing 3x3 moves=0\n")
		assert.Contains(t, output, "* "+server.current+" origin  4x4 moves=0\n")

		// When: the second one is deleted and the first is used again
		out.Reset()
		second := server.current
		runScript(t, server, "delete", "show", "use "+first, "move 2 2")

		// Then: commands go to the first session again
		output = out.String()
		assert.Contains(t, output, "session "+second+" deleted")
		assert.Contains(t, output, "error: no active session")
		assert.Contains(t, output, "  2  .  .  X\n")
	})

	t.Run("JSON dump of the session", func(t *testing.T) {
		server, out := newServer(t, 3)
		runScript(t, server, "start", "move 1 2")

		out.Reset()
		runScript(t, server, "json")

		var session entity.Session
		require.NoError(t, json.Unmarshal(out.Bytes(), &session))
		assert.Equal(t, entity.StatePlaying, session.State)
		assert.Equal(t, []entity.Move{{X: 1, Y: 2, Player: entity.PlayerX}}, session.Game.Moves)
		assert.Equal(t, entity.MarkX, session.Game.Board[1][2])
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		server, out := newServer(t, 3)
		ctx, cancel := context.WithCancel(context.Background())

		pr, pw := io.Pipe()
		t.Cleanup(func() { _ = pw.Close() })

		done := make(chan error, 1)
		go func() { done <- server.Run(ctx, pr) }()

		_, err := pw.Write([]byte("help\n"))
		require.NoError(t, err)
		cancel()

		select {
		case err = <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("console did not stop")
		}

		assert.NotEmpty(t, out.String())
	})
}

type mockSessions struct {
	mock.Mock
}

func (that *mockSessions) CreateSession(ctx context.Context, boardSize int) (*entity.Session, error) {
	args := that.Called(ctx, boardSize)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (that *mockSessions) Send(ctx context.Context, id string, ev tictactoe.Event) (*entity.Session, error) {
	args := that.Called(ctx, id, ev)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (that *mockSessions) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	args := that.Called(ctx, id)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (that *mockSessions) ListSessions(ctx context.Context) ([]*entity.Session, error) {
	args := that.Called(ctx)
	sessions, _ := args.Get(0).([]*entity.Session)
	return sessions, args.Error(1)
}

func (that *mockSessions) DeleteSession(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func TestServer_Run_CreateFails(t *testing.T) {
	// Given: a session manager that cannot create sessions
	sessions := &mockSessions{}
	sessions.On("CreateSession", mock.Anything, 3).Return(nil, errors.New("no room")).Once()
	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), sessions, 3, io.Discard)

	// When: the console starts
	err := server.Run(context.Background(), strings.NewReader("start\n"))

	// Then: it gives up before reading commands
	require.EqualError(t, err, "could not start console: failed to create session: no room")
	sessions.AssertExpectations(t)
}

func TestServer_Run_CanceledBeforeStart(t *testing.T) {
	// Given: a context canceled before the console starts
	server, out := newServer(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When: the console runs
	err := server.Run(ctx, strings.NewReader("start\n"))

	// Then: it stops quietly without a session
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestServer_Help(t *testing.T) {
	// Given: a console
	server, out := newServer(t, 3)

	// When: help is asked for
	runScript(t, server, "help", "exit")

	// Then: every registered command is listed
	for name := range server.handlers {
		assert.Contains(t, out.String(), "  "+name, "help is missing %q", name)
	}
}
