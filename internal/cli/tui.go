package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"quotefinder/internal/clipboard"
	"quotefinder/internal/config"
	"quotefinder/internal/domain"
	"quotefinder/internal/eventbus"
	"quotefinder/internal/metrics"
	"quotefinder/internal/search"
	"quotefinder/internal/stats"
	"quotefinder/internal/transport"
	"quotefinder/internal/ui"
)

// forwardedEvents are delivered from the bus into the running program
var forwardedEvents = []domain.EventType{
	domain.EventStatsLoaded,
	domain.EventStatsFailed,
	domain.EventLinkCopied,
	domain.EventCopyFailed,
}

func tuiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "speaker",
			Usage: "Start with a speaker filter (all, ricky, steve, karl)",
		},
	}
}

// TUICommand creates the tui command
func TUICommand() *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Usage:     "Run the interactive search (default)",
		ArgsUsage: "[query]",
		Flags:     tuiFlags(),
		Action:    runTUI,
	}
}

func runTUI(ctx context.Context, c *cli.Command) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	speakerName := cfg.UI.DefaultSpeaker
	if c.IsSet("speaker") {
		speakerName = c.String("speaker")
	}
	speaker, err := domain.ParseSpeaker(speakerName)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting quotefinder",
		zap.String("env", cfg.Env),
		zap.String("api", cfg.API.BaseURL),
	)

	if cfg.Metrics.Addr != "" {
		stop := startMetrics(cfg, log)
		defer stop()
	}

	client := transport.NewClient(transport.OptionsFromConfig(cfg), log)

	session := search.NewSession(ctx, client, cfg.API.TopK, log)
	// No query yet, so this only sets the filter
	session.SetSpeaker(speaker)

	bus := eventbus.New(log)
	defer bus.Close()

	pager := ui.NewPagerOps()
	opts := ui.Options{
		Session:      session,
		Bus:          bus,
		Copier:       clipboard.New(),
		Pager:        pager,
		Logger:       log,
		InitialQuery: queryArg(c),
	}
	if cfg.UI.ShowStats {
		opts.Stats = stats.NewService(client, bus, log)
	}

	model := ui.NewModel(ctx, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	for _, t := range forwardedEvents {
		unsubscribe := bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}

	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("running program: %w", err)
	}
	log.Info("ui exited normally")
	return nil
}

// startMetrics serves /metrics on cfg.Metrics.Addr. Failures are logged only.
func startMetrics(cfg *config.Config, log *zap.Logger) func() {
	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		log.Warn("registering metrics", zap.Error(err))
		return func() {}
	}

	srv := metrics.NewServer(cfg.Metrics.Addr, reg, log)
	if err := srv.Start(); err != nil {
		log.Warn("metrics endpoint unavailable", zap.String("addr", cfg.Metrics.Addr), zap.Error(err))
		return func() {}
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("stopping metrics endpoint", zap.Error(err))
		}
	}
}
