package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-machine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-machine/internal/tictactoe"
)

var ErrSessionAlreadyExists = errors.New("session already exists")

// Session is a stored machine. Callers must hold the embedded lock while sending events.
type Session struct {
	sync.Mutex

	ID        string
	Machine   *tictactoe.Machine
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context) ([]*Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type memSession struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionRepository returns a process-local store; sessions do not survive a restart.
func NewSessionRepository() SessionRepository {
	return &memSession{
		sessions: make(map[string]*Session),
	}
}

func (that *memSession) Create(ctx context.Context, session *Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[session.ID]; ok {
		return fmt.Errorf("%w: %s", ErrSessionAlreadyExists, session.ID)
	}

	that.sessions[session.ID] = session

	return nil
}

func (that *memSession) GetByID(ctx context.Context, id string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not get session: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	return session, nil
}

// List returns the sessions oldest first.
func (that *memSession) List(ctx context.Context) ([]*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not list sessions: %w", err)
	}

	that.mu.RLock()
	sessions := make([]*Session, 0, len(that.sessions))
	for _, session := range that.sessions {
		sessions = append(sessions, session)
	}
	that.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return sessions, nil
}

func (that *memSession) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}
