package cli

import (
	"bufio"
	"context"
	"io"

	"timers/internal/client"
)

// API is the part of the HTTP client the commands use.
type API interface {
	Signup(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, sessionID string) error
	ListTimers(ctx context.Context, sessionID string) ([]client.Timer, error)
	StartTimer(ctx context.Context, sessionID, description string) (*client.StartedTimer, error)
	StopTimer(ctx context.Context, sessionID, timerID string) error
}

type App struct {
	api          API
	session      *SessionFile
	reader       *bufio.Reader
	out          io.Writer
	readPassword func() ([]byte, error)
}

func NewApp(api API, session *SessionFile, in io.Reader, out io.Writer) *App {
	reader := bufio.NewReader(in)
	return &App{
		api:          api,
		session:      session,
		reader:       reader,
		out:          out,
		readPassword: passwordReader(in, reader),
	}
}

// Run executes the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) {
	command := ""
	if len(args) > 0 {
		command = args[0]
	}
	operand := ""
	if len(args) > 1 {
		operand = args[1]
	}

	switch command {
	case "signup":
		a.signup(ctx)
	case "login":
		a.login(ctx)
	case "logout":
		a.logout(ctx)
	case "status":
		a.status(ctx, operand)
	case "start":
		a.start(ctx)
	case "stop":
		a.stop(ctx, operand)
	default:
		a.notice("Welcome to the TimersApp!")
		a.notice("Commands: signup, login, logout, status [old|<id>], start, stop <id>")
	}
}
