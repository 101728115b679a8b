package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"timers/internal/cli"
	"timers/internal/client"
	"timers/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, args, err := config.LoadClient(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "timers: %v\n", err)
		os.Exit(2)
	}

	api := client.New(cfg.ServerURL, cfg.Timeout)
	session := cli.NewSessionFile(cfg.SessionFile)
	cli.NewApp(api, session, os.Stdin, os.Stdout).Run(context.Background(), args)
}
