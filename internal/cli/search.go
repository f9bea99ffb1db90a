package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"quotefinder/internal/domain"
	"quotefinder/internal/transport"
	"quotefinder/internal/ui/views"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Run one search and print the results",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "speaker",
				Usage: "Only quotes by this speaker (all, ricky, steve, karl)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results (defaults to api.top_k)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return searchQuotes(ctx, c, c.Root().Writer)
		},
	}
}

func searchQuotes(ctx context.Context, c *cli.Command, out io.Writer) error {
	q, err := requireQuery(c)
	if err != nil {
		return err
	}
	speaker, err := domain.ParseSpeaker(c.String("speaker"))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	limit := cfg.API.TopK
	if c.IsSet("limit") {
		limit = c.Int("limit")
	}

	client := transport.NewClient(transport.OptionsFromConfig(cfg), log)
	resp, err := client.Search(ctx, q, limit, speaker)
	if err != nil {
		log.Warn("search failed", zap.String("query", q), zap.Error(err))
		return errors.New(transport.Message(err))
	}

	shown := q
	if resp.Corrected(q) {
		shown = resp.QueryUsed
	}
	_, err = fmt.Fprint(out, views.PlainResults(shown, resp))
	return err
}
