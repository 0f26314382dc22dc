package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-machine/internal/entity"
)

// render prints the board with row (x) and column (y) indices, followed by the status line.
func render(w io.Writer, session *entity.Session) {
	var b strings.Builder

	game := session.Game

	if !game.Board.IsSet() {
		fmt.Fprintf(&b, "board %dx%d not set up, type \"start\"\n", game.BoardSize, game.BoardSize)
	} else {
		b.WriteString("   ")
		for y := range game.Board[0] {
			fmt.Fprintf(&b, "%3d", y)
		}
		b.WriteString("\n")

		for x, row := range game.Board {
			fmt.Fprintf(&b, "%3d", x)
			for _, cell := range row {
				mark := string(cell)
				if cell == entity.EmptyCell {
					mark = "."
				}
				fmt.Fprintf(&b, "%3s", mark)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "state: %s", session.State)
	if session.IsPlaying() {
		fmt.Fprintf(&b, ", next: %s", entity.MarkOf(game.CurrentPlayer()))
	}
	b.WriteString("\n")

	if game.Message != nil {
		fmt.Fprintf(&b, "[%s] %s\n", game.Message.Severity, game.Message.Text)
	}

	_, _ = io.WriteString(w, b.String())
}
