package tictactoe

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-machine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-machine/internal/entity"
)

const (
	textInvalidPosition  = "Invalid position."
	textPositionOccupied = "Position is already marked."
	textInvalidBoardSize = "Board size cannot be less than 2. Falling back to 3."
)

// resetGame empties the context on every entry to the origin state.
func (that *Machine) resetGame(_ Event) {
	that.game.Clear()
}

// setUpBoard allocates a fresh board on every exit from the origin state.
func (that *Machine) setUpBoard(_ Event) {
	if that.game.BoardSize < minBoardSize {
		that.logger.Warn("invalid board size, falling back to default",
			"size", that.game.BoardSize, "default", DefaultBoardSize)

		that.game.BoardSize = DefaultBoardSize
		that.game.Message = messageFor(apperror.ErrInvalidBoardSize)
	}

	that.game.Board = entity.NewBoard(that.game.BoardSize)
}

// applyMove marks the cell for the player to move, or leaves an error message and drops the move.
func (that *Machine) applyMove(ev Event) {
	that.game.Message = nil

	player := that.game.CurrentPlayer()

	if err := validateMove(that.game, ev.X, ev.Y); err != nil {
		that.logger.Debug("move rejected", "x", ev.X, "y", ev.Y, "player", player, "error", err)
		that.game.Message = messageFor(err)

		return
	}

	that.game.Moves = append(that.game.Moves, entity.Move{X: ev.X, Y: ev.Y, Player: player})
	that.game.Board[ev.X][ev.Y] = entity.MarkOf(player)
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, x, y int) error {
	if x < 0 || x >= game.BoardSize || y < 0 || y >= game.BoardSize || !game.Board.InBounds(x, y) {
		return apperror.ErrInvalidPosition
	}

	if game.Board[x][y] != entity.EmptyCell {
		return apperror.ErrPositionOccupied
	}

	return nil
}

func messageFor(err error) *entity.Message {
	switch {
	case errors.Is(err, apperror.ErrInvalidPosition):
		return entity.NewMessage(entity.SeverityError, textInvalidPosition)
	case errors.Is(err, apperror.ErrPositionOccupied):
		return entity.NewMessage(entity.SeverityError, textPositionOccupied)
	case errors.Is(err, apperror.ErrInvalidBoardSize):
		return entity.NewMessage(entity.SeverityWarning, textInvalidBoardSize)
	default:
		return entity.NewMessage(entity.SeverityError, err.Error())
	}
}
