package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "timers/internal/errors"
	"timers/internal/logging"
	"timers/internal/model"
	"timers/internal/repository"
)

type TimerService struct {
	timers TimerStore
	logger logging.Logger
	now    func() time.Time
}

// TimerView is a timer as the API returns it. Duration (end - start) is nil
// while the timer runs; Progress is now - start. Both are milliseconds.
type TimerView struct {
	model.Timer
	Duration *int64 `json:"duration"`
	Progress int64  `json:"progress"`
}

type StartedTimer struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

func NewTimerService(timers TimerStore, logger logging.Logger) *TimerService {
	return &TimerService{timers: timers, logger: logger, now: time.Now}
}

func (s *TimerService) ListTimers(ctx context.Context, user *model.User, filter model.TimerFilter) ([]TimerView, *apperrors.APIError) {
	timers, err := s.timers.ListByUser(ctx, user.ID, filter)
	if err != nil {
		s.logger.Error(ctx, "list timers", "user_id", user.ID, "error", err)
		return nil, apperrors.Internal("failed to list timers")
	}

	now := s.now().UTC()
	views := make([]TimerView, 0, len(timers))
	for _, timer := range timers {
		views = append(views, toTimerView(timer, now))
	}
	return views, nil
}

func (s *TimerService) StartTimer(ctx context.Context, user *model.User, description string) (*StartedTimer, *apperrors.APIError) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidDescription, "description is required")
	}

	timer := model.Timer{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Description: description,
		Start:       s.now().UTC(),
		IsActive:    true,
	}
	if err := s.timers.Create(ctx, &timer); err != nil {
		s.logger.Error(ctx, "create timer", "user_id", user.ID, "error", err)
		return nil, apperrors.Internal("failed to start timer")
	}

	return &StartedTimer{ID: timer.ID, Description: timer.Description}, nil
}

// StopTimer ends an active timer owned by user. Timers of other users are
// reported as not found.
func (s *TimerService) StopTimer(ctx context.Context, user *model.User, timerID string) *apperrors.APIError {
	err := s.timers.Stop(ctx, timerID, user.ID, s.now().UTC())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NotFound(apperrors.CodeTimerNotFound, "timer not found")
	case errors.Is(err, repository.ErrAlreadyStopped):
		return apperrors.Conflict(apperrors.CodeTimerAlreadyStopped, "timer is already stopped")
	default:
		s.logger.Error(ctx, "stop timer", "timer_id", timerID, "user_id", user.ID, "error", err)
		return apperrors.Internal("failed to stop timer")
	}
}

func toTimerView(timer model.Timer, now time.Time) TimerView {
	view := TimerView{
		Timer:    timer,
		Progress: now.Sub(timer.Start).Milliseconds(),
	}
	if timer.End != nil {
		duration := timer.End.Sub(timer.Start).Milliseconds()
		view.Duration = &duration
	}
	return view
}
