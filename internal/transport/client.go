package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quotefinder/internal/config"
	"quotefinder/internal/domain"
	"quotefinder/internal/metrics"
)

const (
	endpointSearch = "search"
	endpointStats  = "stats"

	// maxErrorBody caps how much of a failed response is read for its detail
	maxErrorBody = 64 << 10
)

// Options configure a Client
type Options struct {
	BaseURL    string
	Prefix     string        // inserted between BaseURL and the endpoint path
	Timeout    time.Duration // per request; 0 means none
	HTTPClient *http.Client
}

// OptionsFromConfig selects the base path for cfg's environment. prod talks
// to the API directly, every other environment goes through the proxy prefix.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.RequestTimeout.Duration,
	}
	if !cfg.IsProd() {
		opts.Prefix = cfg.API.ProxyPrefix
	}
	return opts
}

// Client talks to the quote server
type Client struct {
	base    string
	timeout time.Duration
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a new quote server client
func NewClient(opts Options, logger *zap.Logger) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	base := strings.TrimRight(opts.BaseURL, "/") + "/" + strings.Trim(opts.Prefix, "/")
	return &Client{
		base:    strings.TrimRight(base, "/"),
		timeout: opts.Timeout,
		http:    hc,
		logger:  logger,
	}
}

// Search runs GET /search. A zero limit lets the server pick its default.
func (c *Client) Search(ctx context.Context, query string, limit int, speaker domain.Speaker) (*domain.SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("top_k", strconv.Itoa(limit))
	}
	if !speaker.IsAll() {
		params.Set("speaker", string(speaker))
	}

	var resp domain.SearchResponse
	if err := c.get(ctx, endpointSearch, "Search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats runs GET /stats
func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := c.get(ctx, endpointStats, "Stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) get(ctx context.Context, endpoint, label string, params url.Values, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.base + "/" + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return newFailure(endpoint, label, fmt.Errorf("build request: %w", err))
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := c.logger.With(
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.TransportRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TransportRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		log.Warn("request failed", zap.Error(err))
		return newFailure(endpoint, label, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		metrics.TransportRequestsTotal.WithLabelValues(endpoint, "http_error").Inc()
		tErr := newStatusError(endpoint, label, resp.StatusCode, body)
		log.Warn("server returned an error",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", tErr.Detail),
		)
		return tErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.TransportRequestsTotal.WithLabelValues(endpoint, "decode_error").Inc()
		log.Warn("undecodable response", zap.Error(err))
		return newFailure(endpoint, label, fmt.Errorf("decode response: %w", err))
	}

	metrics.TransportRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	log.Debug("request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
