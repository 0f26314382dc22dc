package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-machine/internal/entity"
)

// hasWinner guards the end check. A fault while reading the board counts as no winner.
func (that *Machine) hasWinner() (won bool) {
	defer func() {
		if r := recover(); r != nil {
			that.logger.Error("failed to evaluate winner", "panic", r)
			won = false
		}
	}()

	winner := findWinner(that.game.Board, that.game.BoardSize)
	if winner == entity.EmptyCell {
		return false
	}

	that.game.Message = entity.NewMessage(entity.SeveritySuccess, fmt.Sprintf("%s wins!", winner))

	return true
}

// findWinner checks rows, columns, the main diagonal and the anti-diagonal, in that order.
func findWinner(board entity.Board, size int) entity.Mark {
	if !board.IsSet() || size < 1 {
		return entity.EmptyCell
	}

	for x := 0; x < size; x++ {
		if mark := lineWinner(size, func(i int) entity.Mark { return board[x][i] }); mark != entity.EmptyCell {
			return mark
		}
	}

	for y := 0; y < size; y++ {
		if mark := lineWinner(size, func(i int) entity.Mark { return board[i][y] }); mark != entity.EmptyCell {
			return mark
		}
	}

	if mark := lineWinner(size, func(i int) entity.Mark { return board[i][i] }); mark != entity.EmptyCell {
		return mark
	}

	return lineWinner(size, func(i int) entity.Mark { return board[i][size-1-i] })
}

// lineWinner returns the mark filling all size cells of a line, or EmptyCell.
func lineWinner(size int, at func(i int) entity.Mark) entity.Mark {
	first := at(0)
	if first == entity.EmptyCell {
		return entity.EmptyCell
	}

	for i := 1; i < size; i++ {
		if at(i) != first {
			return entity.EmptyCell
		}
	}

	return first
}
