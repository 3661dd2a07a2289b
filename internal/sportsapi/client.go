// Package sportsapi provides a client for the API-Sports football endpoints.
package sportsapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is the API-Sports football v3 endpoint.
	DefaultBaseURL = "https://v3.football.api-sports.io/"

	// DefaultTimeout bounds a single request including reading the body.
	DefaultTimeout = 30 * time.Second

	apiKeyHeader = "x-apisports-key"
	maxBodySize  = 32 << 20
)

// Config holds API client configuration.
type Config struct {
	Logger   *slog.Logger
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	RetryMax int
	// RetryWait overrides the minimum backoff between retries.
	RetryWait time.Duration
}

// Client implements the Fetcher interface over HTTP.
type Client struct {
	http    *retryablehttp.Client
	logger  *slog.Logger
	baseURL string
	apiKey  string
}

// New creates a client. An empty API key is rejected; nothing is sent anonymously.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key is required (set api.key or SIDELINE_API_KEY)", common.ErrMissingConfig)
	}

	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("%w: base url %q: %w", common.ErrInvalidConfig, base, err)
	}
	if cfg.RetryMax < 0 {
		return nil, fmt.Errorf("%w: retry max must not be negative", common.ErrInvalidConfig)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rc := retryablehttp.NewClient()
	rc.Logger = logger
	rc.RetryMax = cfg.RetryMax
	if cfg.RetryWait > 0 {
		rc.RetryWaitMin = cfg.RetryWait
		rc.RetryWaitMax = cfg.RetryWait
	}
	// Hand the last response back instead of a "giving up" error so the
	// status code can be reported.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.HTTPClient.Timeout = timeout

	return &Client{
		http:    rc,
		logger:  logger,
		baseURL: strings.TrimRight(base, "/"),
		apiKey:  cfg.APIKey,
	}, nil
}

// Leagues fetches every league the API knows about.
func (c *Client) Leagues(ctx context.Context) ([]model.LeagueRecord, error) {
	body, err := c.get(ctx, "leagues", nil)
	if err != nil {
		return nil, err
	}

	items, err := c.items(body, "leagues")
	if err != nil {
		return nil, err
	}

	leagues := make([]model.LeagueRecord, 0, len(items))
	for _, item := range items {
		leagues = append(leagues, model.LeagueRecord{
			ID:          int(item.Get("league.id").Int()),
			Name:        item.Get("league.name").String(),
			CountryName: item.Get("country.name").String(),
		})
	}

	c.logger.Debug("fetched leagues", "count", len(leagues))
	return leagues, nil
}

// Teams fetches the teams playing in a league.
func (c *Client) Teams(ctx context.Context, leagueID int) ([]model.TeamRecord, error) {
	query := url.Values{}
	query.Set("league", strconv.Itoa(leagueID))

	body, err := c.get(ctx, "teams", query)
	if err != nil {
		return nil, err
	}

	items, err := c.items(body, "teams")
	if err != nil {
		return nil, err
	}

	teams := make([]model.TeamRecord, 0, len(items))
	for _, item := range items {
		teams = append(teams, model.TeamRecord{
			ID:   int(item.Get("team.id").Int()),
			Name: item.Get("team.name").String(),
			Logo: item.Get("team.logo").String(),
		})
	}

	c.logger.Debug("fetched teams", "league_id", leagueID, "count", len(teams))
	return teams, nil
}

// get issues one GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &common.NetworkError{Err: err}
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	logger := c.logger.With("request_id", requestID, "path", path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("request failed", "error", err)
		return nil, &common.NetworkError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Debug("failed to close response body", "error", closeErr)
		}
	}()

	logger.Debug("request completed", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &common.ServerError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &common.NetworkError{Err: err}
	}
	return body, nil
}

// items extracts the "response" array, treating a missing or empty array as
// no results.
func (c *Client) items(body []byte, resource string) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, &common.NetworkError{Err: fmt.Errorf("invalid JSON in %s response", resource)}
	}

	if apiErrs := gjson.GetBytes(body, "errors"); apiErrs.IsObject() && len(apiErrs.Map()) > 0 {
		c.logger.Warn("api reported errors", "resource", resource, "errors", apiErrs.Raw)
	}

	response := gjson.GetBytes(body, "response")
	if !response.IsArray() {
		return nil, &common.EmptyResultError{Resource: resource}
	}

	items := response.Array()
	if len(items) == 0 {
		return nil, &common.EmptyResultError{Resource: resource}
	}
	return items, nil
}

// Ensure Client implements Fetcher interface.
var _ Fetcher = (*Client)(nil)
