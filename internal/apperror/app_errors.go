package apperror

import "errors"

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrPositionOccupied = errors.New("position is already marked")
	ErrInvalidBoardSize = errors.New("board size cannot be less than 2")
	ErrEventNotAllowed  = errors.New("event is not allowed in the current state")
	ErrUnknownEvent     = errors.New("unknown event")
	ErrSessionNotFound  = errors.New("session not found")
	ErrNoActiveSession  = errors.New("no active session")
)
