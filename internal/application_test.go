package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-machine/internal/config"
)

func TestRunConsole(t *testing.T) {
	t.Run("Plays a scripted game", func(t *testing.T) {
		// Given: a console config and a script where O wins the first column
		conf := &config.Config{BoardSize: 3, UI: config.UIConsole}
		in := strings.NewReader("start\nmove 0 1\nmove 0 0\nmove 1 1\nmove 1 0\nmove 2 2\nmove 2 0\nquit\n")
		out := &bytes.Buffer{}

		// When: the console runs
		err := runConsole(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), conf, in, out)

		// Then: the script ends with O winning
		require.NoError(t, err)
		assert.Contains(t, out.String(), "[success] O wins!")
	})

	t.Run("Stops on end of input", func(t *testing.T) {
		// Given: an empty script
		conf := &config.Config{BoardSize: 3, UI: config.UIConsole}
		out := &bytes.Buffer{}

		// When: the console runs
		err := runConsole(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), conf, strings.NewReader(""), out)

		// Then: a session was created and the console returned
		require.NoError(t, err)
		assert.Contains(t, out.String(), "session ")
	})
}
