package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quotefinder/internal/cli"
)

func main() {
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "quotefinder: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
