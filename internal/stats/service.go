package stats

import (
	"context"

	"go.uber.org/zap"

	"quotefinder/internal/domain"
	"quotefinder/internal/eventbus"
)

// Fetcher loads archive statistics
type Fetcher interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

// Service loads statistics in the background and publishes the outcome.
// Failures never reach the search state.
type Service struct {
	fetcher Fetcher
	bus     eventbus.EventBus
	logger  *zap.Logger
}

// NewService creates a stats service
func NewService(fetcher Fetcher, bus eventbus.EventBus, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{fetcher: fetcher, bus: bus, logger: logger}
}

// Load fetches statistics and publishes StatsLoaded or StatsFailed
func (s *Service) Load(ctx context.Context) {
	stats, err := s.fetcher.Stats(ctx)
	if err != nil {
		s.logger.Warn("failed to load stats", zap.Error(err))
		s.bus.Publish(domain.StatsFailedEvent{Err: err})
		return
	}

	s.logger.Debug("stats loaded",
		zap.Int("total_quotes", stats.TotalQuotes),
		zap.Int("unique_episodes", stats.UniqueEpisodes),
	)
	s.bus.Publish(domain.StatsLoadedEvent{Stats: *stats})
}
