package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/kiosk404/scryer/internal/scryctl/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	command := cmd.NewDefaultScryCtlCommand()
	if err := command.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
