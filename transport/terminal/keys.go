package terminal

import "github.com/gdamore/tcell/v2"

type command int

const (
	cmdNone command = iota
	cmdUp
	cmdDown
	cmdLeft
	cmdRight
	cmdMark
	cmdStart
	cmdReset
	cmdQuit
)

// commandFor maps a key press to a command. Arrows and hjkl move the cursor.
func commandFor(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyUp:
		return cmdUp
	case tcell.KeyDown:
		return cmdDown
	case tcell.KeyLeft:
		return cmdLeft
	case tcell.KeyRight:
		return cmdRight
	case tcell.KeyEnter:
		return cmdMark
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return cmdMark
		case 'k':
			return cmdUp
		case 'j':
			return cmdDown
		case 'h':
			return cmdLeft
		case 'l':
			return cmdRight
		case 's', 'S':
			return cmdStart
		case 'r', 'R':
			return cmdReset
		case 'q', 'Q':
			return cmdQuit
		}
	}

	return cmdNone
}
