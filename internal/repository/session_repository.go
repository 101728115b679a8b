package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"timers/internal/model"
)

type SessionRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db, now: time.Now}
}

// CreateSession stores a new session for userID and returns its id.
func (r *SessionRepository) CreateSession(ctx context.Context, userID string) (string, error) {
	sessionID := uuid.NewString()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO sessions (id, user_id, created_at) VALUES (?, ?, ?)`,
		sessionID,
		userID,
		formatTime(r.now()),
	)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return sessionID, nil
}

// FindSessionUser resolves a session id to its user. Unknown and orphaned
// sessions both return ErrNotFound.
func (r *SessionRepository) FindSessionUser(ctx context.Context, sessionID string) (*model.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT u.id, u.username, u.password_hash, u.created_at
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.id = ?`,
		sessionID,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteSession removes the session. Deleting an absent session is not an error.
func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
