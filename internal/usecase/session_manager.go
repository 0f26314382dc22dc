package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-machine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-machine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-machine/internal/tictactoe"
)

type sessionRepo interface {
	Create(ctx context.Context, session *repository.Session) error
	GetByID(ctx context.Context, id string) (*repository.Session, error)
	List(ctx context.Context) ([]*repository.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// SessionManager owns one machine per session and serializes the events sent to each of them.
type SessionManager struct {
	logger      *slog.Logger
	baseLogger  *slog.Logger
	sessionRepo sessionRepo

	newID func() string
	now   func() time.Time
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo) *SessionManager {
	return &SessionManager{
		logger:      logger.With("component", "session-manager"),
		baseLogger:  logger,
		sessionRepo: sessionRepo,

		newID: uuid.NewString,
		now:   time.Now,
	}
}

func (that *SessionManager) CreateSession(ctx context.Context, boardSize int) (*entity.Session, error) {
	now := that.now()

	id := that.newID()

	session := &repository.Session{
		ID:        id,
		Machine:   tictactoe.NewMachine(that.baseLogger.With("session", id), boardSize),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created := snapshot(session)

	if err := that.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "session", session.ID, "boardSize", boardSize)

	return created, nil
}

// Send dispatches ev to the session's machine. The returned snapshot is valid even when
// the event was refused by the machine.
func (that *SessionManager) Send(ctx context.Context, id string, ev tictactoe.Event) (*entity.Session, error) {
	log := that.logger.With("method", "Send", "session", id)

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	if _, err = session.Machine.Send(ev); err != nil {
		log.Debug("event refused", "event", ev.Type, "error", err)

		return snapshot(session), fmt.Errorf("failed to send %s: %w", ev.Type, err)
	}

	session.UpdatedAt = that.now()

	return snapshot(session), nil
}

func (that *SessionManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	return snapshot(session), nil
}

func (that *SessionManager) ListSessions(ctx context.Context) ([]*entity.Session, error) {
	sessions, err := that.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	snapshots := make([]*entity.Session, 0, len(sessions))
	for _, session := range sessions {
		session.Lock()
		snapshots = append(snapshots, snapshot(session))
		session.Unlock()
	}

	return snapshots, nil
}

func (that *SessionManager) DeleteSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session deleted", "session", id)

	return nil
}

// snapshot must be called with the session locked.
func snapshot(session *repository.Session) *entity.Session {
	return &entity.Session{
		ID:        session.ID,
		State:     session.Machine.State(),
		Game:      session.Machine.Snapshot(),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}
