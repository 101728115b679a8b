package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"timers/internal/model"
)

type TimerRepository struct {
	db *sql.DB
}

func NewTimerRepository(db *sql.DB) *TimerRepository {
	return &TimerRepository{db: db}
}

func (r *TimerRepository) Create(ctx context.Context, timer *model.Timer) error {
	var endedAt interface{}
	if timer.End != nil {
		endedAt = formatTime(*timer.End)
	}

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO timers (id, user_id, description, started_at, ended_at, is_active)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		timer.ID,
		timer.UserID,
		timer.Description,
		formatTime(timer.Start),
		endedAt,
		timer.End == nil,
	)
	if err != nil {
		return fmt.Errorf("create timer: %w", err)
	}
	return nil
}

func (r *TimerRepository) ListByUser(ctx context.Context, userID string, filter model.TimerFilter) ([]model.Timer, error) {
	query := `SELECT id, user_id, description, started_at, ended_at, is_active
		 FROM timers
		 WHERE user_id = ?`
	args := []interface{}{userID}
	if filter.Active != nil {
		query += ` AND is_active = ?`
		args = append(args, *filter.Active)
	}
	query += ` ORDER BY started_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list timers: %w", err)
	}
	defer rows.Close()

	timers := make([]model.Timer, 0)
	for rows.Next() {
		timer, scanErr := scanTimer(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		timers = append(timers, *timer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timers: %w", err)
	}

	return timers, nil
}

// Stop sets the end time of an active timer owned by userID in a single
// conditional update. It returns ErrNotFound when the user owns no such timer
// and ErrAlreadyStopped when the timer has already ended.
func (r *TimerRepository) Stop(ctx context.Context, timerID, userID string, end time.Time) error {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE timers
		 SET ended_at = ?, is_active = 0
		 WHERE id = ? AND user_id = ? AND ended_at IS NULL`,
		formatTime(end),
		timerID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("stop timer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("stop timer rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var exists int
	err = r.db.QueryRowContext(
		ctx,
		`SELECT 1 FROM timers WHERE id = ? AND user_id = ?`,
		timerID,
		userID,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check stopped timer: %w", err)
	}
	return ErrAlreadyStopped
}

func scanTimer(s scanner) (*model.Timer, error) {
	timer := model.Timer{}
	var startedAt string
	var endedAt sql.NullString
	err := s.Scan(
		&timer.ID,
		&timer.UserID,
		&timer.Description,
		&startedAt,
		&endedAt,
		&timer.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan timer: %w", err)
	}

	parsedStartedAt, err := parseTime(startedAt)
	if err != nil {
		return nil, fmt.Errorf("parse timer started_at: %w", err)
	}
	timer.Start = parsedStartedAt

	if endedAt.Valid {
		parsedEndedAt, parseErr := parseTime(endedAt.String)
		if parseErr != nil {
			return nil, fmt.Errorf("parse timer ended_at: %w", parseErr)
		}
		timer.End = &parsedEndedAt
	}

	return &timer, nil
}
