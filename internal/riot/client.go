// Package riot is the upstream match-data client. It is the only place
// that talks HTTP to the game data source; rate-limit handling (429 +
// Retry-After with a bounded retry budget) lives here so callers see a
// single terminal error per lookup.
package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://americas.api.riotgames.com"

// StatusError is a terminal non-2xx response from the upstream API.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.Code, e.URL)
}

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// MaxAttempts bounds retries on 429 responses. Attempts beyond the
	// budget surface the 429 as a StatusError.
	MaxAttempts int
	// DefaultRetryAfter is used when a 429 carries no Retry-After hint.
	DefaultRetryAfter time.Duration
	Logger            *zap.Logger
}

// Client fetches raw match documents and league standings.
type Client struct {
	apiKey            string
	baseURL           string
	httpClient        *http.Client
	maxAttempts       int
	defaultRetryAfter time.Duration
	logger            *zap.SugaredLogger
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.DefaultRetryAfter <= 0 {
		cfg.DefaultRetryAfter = 2 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Client{
		apiKey:            cfg.APIKey,
		baseURL:           cfg.BaseURL,
		httpClient:        &http.Client{Timeout: cfg.Timeout},
		maxAttempts:       cfg.MaxAttempts,
		defaultRetryAfter: cfg.DefaultRetryAfter,
		logger:            cfg.Logger.Sugar(),
	}
}

// GetMatch fetches one raw match document by id.
func (c *Client) GetMatch(ctx context.Context, matchID string) (*MatchResponse, error) {
	url := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.baseURL, matchID)

	var match MatchResponse
	if err := c.do(ctx, url, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// GetMatchIDs fetches a page of match ids for a player, newest first.
func (c *Client) GetMatchIDs(ctx context.Context, puuid string, start, count int) ([]string, error) {
	url := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d",
		c.baseURL, puuid, start, count)

	var ids []string
	if err := c.do(ctx, url, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetLeagueEntries fetches the player's ranked standings.
func (c *Client) GetLeagueEntries(ctx context.Context, puuid string) ([]LeagueEntryResponse, error) {
	url := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", c.baseURL, puuid)

	var entries []LeagueEntryResponse
	if err := c.do(ctx, url, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// do issues one GET with the credential header, honoring rate-limit
// responses up to the retry budget.
func (c *Client) do(ctx context.Context, url string, out any) error {
	var lastStatus int

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-Riot-Token", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("upstream request failed: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			wait := c.retryAfter(resp)
			resp.Body.Close()
			lastStatus = resp.StatusCode

			if attempt == c.maxAttempts {
				break
			}
			c.logger.Warnw("Rate limited by upstream, backing off",
				"url", url,
				"retryAfter", wait,
				"attempt", attempt,
			)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return &StatusError{Code: resp.StatusCode, URL: url}
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("decode upstream response: %w", err)
		}
		return nil
	}

	return &StatusError{Code: lastStatus, URL: url}
}

func (c *Client) retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return c.defaultRetryAfter
}
