package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/terratensor/tabtok/cmd/tabtok/cmd"
)

var (
	appVersion = cmd.VersionDev
	commitHash = "dev"
)

func main() {
	// Контекст отменяется по сигналу для корректного завершения.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewCmd(appVersion, commitHash).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
