package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-machine/internal/entity"
)

const (
	boardLeft = 2
	boardTop  = 1
	cellWidth = 4
)

var (
	styleText   = tcell.StyleDefault
	styleGrid   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCursor = tcell.StyleDefault.Reverse(true)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

func (that *Server) draw() {
	that.screen.Clear()

	game := that.session.Game
	row := boardTop

	if game.Board.IsSet() {
		row = that.drawBoard(game.Board)
	} else {
		that.drawText(boardLeft, row, styleText,
			fmt.Sprintf("%dx%d board, press s to start", game.BoardSize, game.BoardSize))
		row += 2
	}

	status := "state: " + that.session.State.String()
	if that.session.IsPlaying() {
		status += ", next: " + string(entity.MarkOf(game.CurrentPlayer()))
	}
	that.drawText(boardLeft, row, styleText, status)
	row++

	if game.Message != nil {
		that.drawText(boardLeft, row, severityStyle(game.Message.Severity), game.Message.Text)
		row++
	}

	if that.notice != "" {
		that.drawText(boardLeft, row, styleHint, that.notice)
		row++
	}

	that.drawText(boardLeft, row+1, styleHint, "arrows move, enter marks, s start, r reset, q quit")

	that.screen.Show()
}

// drawBoard draws the grid with row x going down and column y going right,
// and returns the first free line below it.
func (that *Server) drawBoard(board entity.Board) int {
	size := len(board)

	for x, cells := range board {
		line := boardTop + x*2

		for y, cell := range cells {
			col := boardLeft + y*cellWidth

			style := styleText
			if x == that.cursorX && y == that.cursorY {
				style = styleCursor
			}

			mark := ' '
			if cell != entity.EmptyCell {
				mark = rune(cell[0])
			}

			that.screen.SetContent(col, line, ' ', nil, style)
			that.screen.SetContent(col+1, line, mark, nil, style)
			that.screen.SetContent(col+2, line, ' ', nil, style)

			if y < size-1 {
				that.screen.SetContent(col+3, line, '|', nil, styleGrid)
			}
		}

		if x < size-1 {
			for i := 0; i < size*cellWidth-1; i++ {
				that.screen.SetContent(boardLeft+i, line+1, '-', nil, styleGrid)
			}
		}
	}

	return boardTop + size*2 + 1
}

func (that *Server) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		that.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func severityStyle(severity entity.Severity) tcell.Style {
	switch severity {
	case entity.SeverityError:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case entity.SeverityWarning:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case entity.SeveritySuccess:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	default:
		return tcell.StyleDefault
	}
}
