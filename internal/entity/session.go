package entity

import (
	"errors"
	"time"
)

var ErrUnknownState = errors.New("unknown game state")

// Session is a snapshot of one machine and its context.
type Session struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	Game      Game      `json:"game"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (that *Session) IsPlaying() bool {
	return that.State == StatePlaying
}

func (that *Session) IsEnded() bool {
	return that.State == StateEnded
}
