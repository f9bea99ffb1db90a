package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"quotefinder/internal/domain"
	"quotefinder/internal/metrics"
	"quotefinder/internal/query"
	"quotefinder/internal/transport"
)

// Searcher runs a single search against the quote server
type Searcher interface {
	Search(ctx context.Context, query string, limit int, speaker domain.Speaker) (*domain.SearchResponse, error)
}

// ResultMsg carries the outcome of one search back into the update loop
type ResultMsg struct {
	Generation uint64
	Query      string
	Speaker    domain.Speaker
	Response   *domain.SearchResponse
	Err        error
}

// Session owns the search state of one UI session. It is not safe for
// concurrent use; every method must be called from the update loop.
type Session struct {
	ctx      context.Context
	searcher Searcher
	limit    int
	logger   *zap.Logger

	state      State
	query      string
	speaker    domain.Speaker
	response   *domain.SearchResponse
	toast      string
	generation uint64
	clearToken int
}

// NewSession creates an idle session. ctx bounds every search it starts.
func NewSession(ctx context.Context, searcher Searcher, limit int, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ctx:      ctx,
		searcher: searcher,
		limit:    limit,
		logger:   logger,
		state:    Idle{},
	}
}

func (s *Session) State() State                     { return s.state }
func (s *Session) Query() string                    { return s.query }
func (s *Session) Speaker() domain.Speaker          { return s.speaker }
func (s *Session) Response() *domain.SearchResponse { return s.response }
func (s *Session) Toast() string                    { return s.toast }
func (s *Session) ClearToken() int                  { return s.clearToken }
func (s *Session) Generation() uint64               { return s.generation }

// Results returns the results of the current response, if any
func (s *Session) Results() []domain.SearchResult {
	if s.response == nil {
		return nil
	}
	return s.response.Results
}

// Submit starts a search for raw. Input that is empty after trimming is
// dropped without any state change and yields a nil command.
func (s *Session) Submit(raw string) tea.Cmd {
	q, ok := query.Normalize(raw)
	if !ok {
		return nil
	}
	s.query = q
	return s.begin()
}

// SetSpeaker stores the filter and re-runs the current query under it.
// With no query nothing is fetched.
func (s *Session) SetSpeaker(sp domain.Speaker) tea.Cmd {
	s.speaker = sp
	if s.query == "" {
		return nil
	}
	return s.begin()
}

// SelectSuggestion searches for the suggested query of an empty response
func (s *Session) SelectSuggestion() tea.Cmd {
	empty, ok := s.state.(Empty)
	if !ok || !empty.Response.HasSuggestion() {
		return nil
	}
	s.query = empty.Response.SuggestedQuery
	return s.begin()
}

// Reset returns to the start screen. In-flight searches become stale.
func (s *Session) Reset() {
	s.generation++
	s.clearToken++
	s.state = Idle{}
	s.query = ""
	s.speaker = domain.SpeakerAll
	s.response = nil
	s.toast = ""
}

// DismissError hides the toast and leaves the state alone
func (s *Session) DismissError() {
	s.toast = ""
}

func (s *Session) begin() tea.Cmd {
	s.generation++
	s.toast = ""
	s.response = nil
	s.state = Loading{Query: s.query, Speaker: s.speaker}

	gen, q, sp := s.generation, s.query, s.speaker
	ctx, searcher, limit := s.ctx, s.searcher, s.limit

	s.logger.Debug("search started",
		zap.Uint64("generation", gen),
		zap.String("query", q),
		zap.String("speaker", string(sp)),
	)

	return func() tea.Msg {
		resp, err := searcher.Search(ctx, q, limit, sp)
		return ResultMsg{Generation: gen, Query: q, Speaker: sp, Response: resp, Err: err}
	}
}

// Apply moves the session out of loading using msg. Results of any search
// other than the most recently started one are ignored. It reports whether
// msg changed the state.
func (s *Session) Apply(msg ResultMsg) bool {
	if msg.Generation != s.generation || s.state.Kind() != KindLoading {
		metrics.StaleResponsesTotal.Inc()
		s.logger.Debug("discarding stale search result",
			zap.Uint64("generation", msg.Generation),
			zap.Uint64("current", s.generation),
		)
		return false
	}

	switch {
	case msg.Err != nil || msg.Response == nil:
		message := transport.Message(msg.Err)
		s.state = Failed{Message: message}
		s.toast = message
		s.response = nil
		s.logger.Warn("search failed", zap.String("query", msg.Query), zap.Error(msg.Err))
		metrics.SearchOutcomesTotal.WithLabelValues(KindError.String(), "").Inc()
		return true

	case len(msg.Response.Results) > 0:
		s.response = msg.Response
		s.state = Success{Response: msg.Response}
		if msg.Response.Corrected(msg.Query) {
			s.query = msg.Response.QueryUsed
		}

	default:
		s.response = msg.Response
		s.state = Empty{Response: msg.Response}
	}

	s.logger.Debug("search settled",
		zap.Uint64("generation", msg.Generation),
		zap.String("state", s.state.Kind().String()),
		zap.String("search_type", string(msg.Response.SearchType)),
		zap.Int("results", len(msg.Response.Results)),
	)
	metrics.SearchOutcomesTotal.WithLabelValues(s.state.Kind().String(), string(msg.Response.SearchType)).Inc()
	return true
}
