package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"quotefinder/internal/config"
	"quotefinder/internal/logger"
	"quotefinder/internal/query"
)

// NewApp builds the quotefinder command tree. Without a subcommand it runs the TUI.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:      "quotefinder",
		Usage:     "Search the XFM and podcast quote archive from your terminal",
		ArgsUsage: "[query]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:    "env",
				Usage:   "Environment (prod, local, dev); prod skips the proxy prefix",
				Sources: cli.EnvVars("QUOTEFINDER_ENV"),
			},
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "Quote server base URL",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		}, tuiFlags()...),
		Action: runTUI,
		Commands: []*cli.Command{
			TUICommand(),
			SearchCommand(),
			StatsCommand(),
		},
	}
}

// loadConfig reads the config file and applies the global flag overrides
func loadConfig(c *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if env := c.String("env"); env != "" {
		cfg.Env = env
	}
	if u := c.String("api-url"); u != "" {
		cfg.API.BaseURL = u
	}
	if c.Bool("debug") {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.Env, cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return log, nil
}

// queryArg joins the positional arguments into one query
func queryArg(c *cli.Command) string {
	return strings.Join(c.Args().Slice(), " ")
}

// requireQuery returns the normalized positional query or an error when it
// is not eligible for a search
func requireQuery(c *cli.Command) (string, error) {
	q, ok := query.Normalize(queryArg(c))
	if !ok {
		return "", fmt.Errorf("a search query is required")
	}
	return q, nil
}
