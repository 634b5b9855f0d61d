package worldcup

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

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/providers"
)

// Config controls how the client reaches the match listing API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches match pages and the teams listing from the World Cup API.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchMatchPage retrieves a single page of matches. It never follows further
// pages; fan-out is the caller's job.
func (c *Client) FetchMatchPage(ctx context.Context, page, pageSize int) (matches.Page, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(resolvePageSize(pageSize)))

	var payload matchesResponse
	if err := c.getJSON(ctx, "/matches", q, &payload); err != nil {
		return matches.Page{}, err
	}
	return mapPage(page, payload), nil
}

// FetchTeams retrieves the upstream teams listing.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	var payload []teamResponse
	if err := c.getJSON(ctx, "/teams", nil, &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", providerName, err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%s: %w: %v", providerName, providers.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    providerName + " rate limited",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("%s: %w %d: %s", providerName, providers.ErrUpstreamStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: %w: %v", providerName, providers.ErrMalformedPayload, err)
	}
	return nil
}
