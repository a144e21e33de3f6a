package bvgapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a simple HTTP client for fetching stop event boards.
type Client struct {
	baseURL    string
	duration   int
	maxResults int
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. duration (minutes)
// and maxResults become the per-request defaults; timeout bounds every
// request.
func NewClient(baseURL string, duration, maxResults int, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		duration:   duration,
		maxResults: maxResults,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Option overrides a query parameter for a single fetch.
type Option func(*fetchParams)

type fetchParams struct {
	duration   int
	maxResults int
}

// WithDuration overrides the time window in minutes.
func WithDuration(minutes int) Option {
	return func(p *fetchParams) { p.duration = minutes }
}

// WithMaxResults overrides the maximum number of items returned.
func WithMaxResults(n int) Option {
	return func(p *fetchParams) { p.maxResults = n }
}

// FetchStopEvents fetches one endpoint's board for one station and returns
// the parsed JSON body. Remarks are always requested.
func (c *Client) FetchStopEvents(ctx context.Context, stationID string, ep Endpoint, opts ...Option) (*StopEventsResponse, error) {
	if stationID == "" {
		return nil, fmt.Errorf("empty station id")
	}
	if !ep.Valid() {
		return nil, fmt.Errorf("unknown endpoint %q", ep)
	}

	p := fetchParams{duration: c.duration, maxResults: c.maxResults}
	for _, o := range opts {
		o(&p)
	}

	u := fmt.Sprintf("%s/stops/%s/%s", c.baseURL, url.PathEscape(stationID), ep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("duration", strconv.Itoa(p.duration))
	q.Set("results", strconv.Itoa(p.maxResults))
	q.Set("remarks", "true")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, u)
	}

	var body StopEventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", ep, err)
	}
	return &body, nil
}
