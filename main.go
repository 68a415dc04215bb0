package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kedare/conlog/cmd"
	"github.com/kedare/conlog/internal/logger"
)

func main() {
	// Diagnostics go to stderr so stdout only carries rendered records.
	logger.InitPterm()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
