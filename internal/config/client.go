package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const sessionFileName = "sb-timers-session"

// ClientConfig holds settings for the timers CLI.
type ClientConfig struct {
	ServerURL   string
	Timeout     time.Duration
	SessionFile string
}

// LoadClient reads the CLI settings from the environment, then lets a leading
// -a flag override the server address. The remaining positional arguments
// (the subcommand and its operands) are returned untouched.
func LoadClient(args []string) (ClientConfig, []string, error) {
	cfg := ClientConfig{
		ServerURL:   getEnv("SERVER", "http://localhost:3000"),
		Timeout:     time.Duration(getEnvInt("TIMERS_TIMEOUT", 10)) * time.Second,
		SessionFile: getEnv("TIMERS_SESSION_FILE", ""),
	}

	fs := flag.NewFlagSet("timers", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the timers server")
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil, err
		}
		cfg.SessionFile = DefaultSessionPath(home, runtime.GOOS)
	}

	return cfg, fs.Args(), nil
}

// DefaultSessionPath is ~/.sb-timers-session, or ~/_sb-timers-session on Windows.
func DefaultSessionPath(home, goos string) string {
	prefix := "."
	if goos == "windows" {
		prefix = "_"
	}
	return filepath.Join(home, prefix+sessionFileName)
}
