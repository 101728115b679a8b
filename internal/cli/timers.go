package cli

import (
	"context"
	"errors"

	"timers/internal/client"
	apperrors "timers/internal/errors"
)

func (a *App) status(ctx context.Context, selector string) {
	token, err := a.session.Read()
	if err != nil {
		a.fail(pleaseLogin)
		return
	}
	timers, err := a.api.ListTimers(ctx, token)
	if err != nil {
		a.fail(pleaseLogin)
		return
	}

	var active, old []client.Timer
	for _, timer := range timers {
		if timer.IsActive {
			active = append(active, timer)
		} else {
			old = append(old, timer)
		}
	}

	switch selector {
	case "":
		if len(active) == 0 {
			a.fail("You have no active timers")
			return
		}
		a.printTable(active, progressColumn)
	case "old":
		if len(old) == 0 {
			a.fail("You have no old timers")
			return
		}
		a.printTable(old, durationColumn)
	default:
		for _, timer := range active {
			if timer.ID == selector {
				a.printTable([]client.Timer{timer}, progressColumn)
				return
			}
		}
		a.fail("Unknown timer ID %s", selector)
	}
}

func (a *App) start(ctx context.Context) {
	token, err := a.session.Read()
	if err != nil {
		a.fail(pleaseLogin)
		return
	}

	description, err := GetSimpleText(a.reader, "Enter timer's name: ", a.out)
	if err != nil {
		a.fail("%v", err)
		return
	}

	started, err := a.api.StartTimer(ctx, token, description)
	if err != nil {
		var respErr *client.ResponseError
		if errors.As(err, &respErr) && respErr.Code == apperrors.CodeInvalidDescription {
			a.fail("Please enter timer's name!")
			return
		}
		a.fail(pleaseLogin)
		return
	}
	a.success("Started timer %q, ID: %s", started.Description, started.ID)
}

func (a *App) stop(ctx context.Context, timerID string) {
	if timerID == "" {
		a.fail("Please enter timer's ID!")
		return
	}
	token, err := a.session.Read()
	if err != nil {
		a.fail(pleaseLogin)
		return
	}

	err = a.api.StopTimer(ctx, token, timerID)
	switch {
	case err == nil:
		a.success("Timer ID: %s stopped", timerID)
	case errors.Is(err, client.ErrConflict):
		a.fail("Timer ID: %s is already stopped", timerID)
	case errors.Is(err, client.ErrUnauthorized), errors.Is(err, client.ErrUnavailable):
		a.fail(pleaseLogin)
	default:
		a.fail("Please enter correct ID!")
	}
}
