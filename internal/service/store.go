package service

import (
	"context"
	"time"

	"timers/internal/model"
)

// UserStore persists user accounts. GetByUsername returns
// repository.ErrNotFound for unknown names and Create returns
// repository.ErrDuplicate when the username is taken.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// SessionStore maps session ids to users.
type SessionStore interface {
	FindSessionUser(ctx context.Context, sessionID string) (*model.User, error)
	CreateSession(ctx context.Context, userID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type TimerStore interface {
	Create(ctx context.Context, timer *model.Timer) error
	ListByUser(ctx context.Context, userID string, filter model.TimerFilter) ([]model.Timer, error)
	Stop(ctx context.Context, timerID, userID string, end time.Time) error
}
