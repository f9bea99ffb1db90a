package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"quotefinder/internal/transport"
	"quotefinder/internal/ui/views"
)

// StatsCommand creates the stats command
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show archive statistics",
		Action: func(ctx context.Context, c *cli.Command) error {
			return showStats(ctx, c, c.Root().Writer)
		},
	}
}

// showStats prints archive totals. Unlike the TUI header, a failure here is reported.
func showStats(ctx context.Context, c *cli.Command, out io.Writer) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	client := transport.NewClient(transport.OptionsFromConfig(cfg), log)
	stats, err := client.Stats(ctx)
	if err != nil {
		log.Warn("stats failed", zap.Error(err))
		return errors.New(transport.Message(err))
	}

	_, err = fmt.Fprintln(out, views.FormatStats(*stats))
	return err
}
