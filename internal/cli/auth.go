package cli

import (
	"context"
	"errors"
	"strings"

	"timers/internal/client"
)

const pleaseLogin = "Please login or signup!"

func (a *App) signup(ctx context.Context) {
	a.authenticate(ctx, a.api.Signup, "Signed up successfully!")
}

func (a *App) login(ctx context.Context) {
	a.authenticate(ctx, a.api.Login, "Logged in successfully!")
}

func (a *App) authenticate(
	ctx context.Context,
	call func(ctx context.Context, username, password string) (string, error),
	successMessage string,
) {
	username, err := GetSimpleText(a.reader, "Username: ", a.out)
	if err != nil {
		a.fail("%v", err)
		return
	}
	password, err := GetPassword(a.out, a.readPassword)
	if err != nil {
		a.fail("%v", err)
		return
	}

	token, err := call(ctx, username, string(password))
	if err != nil {
		a.fail("%s", describeAuthError(err))
		return
	}

	if err := a.session.Write(token); err != nil {
		a.fail("%v", err)
		return
	}
	a.success("%s", successMessage)
}

func (a *App) logout(ctx context.Context) {
	token, err := a.session.Read()
	if err != nil {
		a.fail(pleaseLogin)
		return
	}
	if err := a.session.Remove(); err != nil {
		a.fail("%v", err)
	}

	if err := a.api.Logout(ctx, token); err != nil {
		a.fail(pleaseLogin)
		return
	}
	a.notice("Goodbye!")
}

func describeAuthError(err error) string {
	var respErr *client.ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return capitalize(respErr.Message) + "!"
	}
	if errors.Is(err, client.ErrUnavailable) {
		return "Server is unavailable, try again later"
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
