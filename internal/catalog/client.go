package catalog

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

	"github.com/rshade/pokecatch/internal/fanout"
	"github.com/rshade/pokecatch/internal/logging"
)

const (
	defaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "pokecatch"
	listPath         = "/pokemon"
	maxErrorBody     = 512
)

// Options configures a Client. Zero values select defaults.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// MaxConcurrency bounds in-flight detail requests; 0 means one per reference.
	MaxConcurrency int
}

// ProgressFunc receives the number of resolved records out of total.
type ProgressFunc func(done, total int)

// Client fetches list pages and detail records from the catalog API.
type Client struct {
	// HTTPClient is exported so tests can point it at an httptest server.
	HTTPClient *http.Client

	baseURL        string
	userAgent      string
	maxConcurrency int
}

// NewClient creates a catalog client.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		HTTPClient:     &http.Client{Timeout: timeout},
		baseURL:        baseURL,
		userAgent:      userAgent,
		maxConcurrency: opts.MaxConcurrency,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPage requests the first limit summary references, in server order.
// A limit of zero or less returns an empty page without issuing a request.
func (c *Client) ListPage(ctx context.Context, limit int) ([]SummaryRef, error) {
	if limit <= 0 {
		return []SummaryRef{}, nil
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	endpoint := c.baseURL + listPath + "?" + q.Encode()

	var page ListPage
	if err := c.doRequest(ctx, endpoint, &page); err != nil {
		return nil, fmt.Errorf("failed to list %d entries: %w", limit, err)
	}
	if page.Results == nil {
		return nil, fmt.Errorf("failed to list %d entries: %w: no results array", limit, ErrMalformed)
	}

	logging.FromContext(ctx).Debug().
		Int("limit", limit).
		Int("received", len(page.Results)).
		Int("count", page.Count).
		Msg("list page fetched")

	return page.Results, nil
}

// FetchDetail requests and validates a single detail record.
func (c *Client) FetchDetail(ctx context.Context, detailURL string) (*Pokemon, error) {
	var p Pokemon
	if err := c.doRequest(ctx, detailURL, &p); err != nil {
		return nil, fmt.Errorf("failed to get detail %s: %w", detailURL, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("failed to get detail %s: %w", detailURL, err)
	}
	return &p, nil
}

// Resolve fetches every reference's detail record concurrently and returns
// them in the order of refs. Any failure fails the whole batch and cancels
// the outstanding requests. progress may be nil.
func (c *Client) Resolve(ctx context.Context, refs []SummaryRef, progress ProgressFunc) ([]Pokemon, error) {
	joiner := fanout.NewJoiner[SummaryRef, Pokemon]().WithMaxConcurrency(c.maxConcurrency)
	if progress != nil {
		joiner = joiner.WithProgressCallback(func(s fanout.ProgressSnapshot) {
			progress(s.Done, s.Total)
		})
	}

	records, err := joiner.Join(ctx, refs, func(ctx context.Context, _ int, ref SummaryRef) (Pokemon, error) {
		p, err := c.FetchDetail(ctx, ref.URL)
		if err != nil {
			return Pokemon{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %d entries: %w", len(refs), err)
	}
	return records, nil
}

// Fetch runs one full cycle: list acquisition followed by detail resolution.
func (c *Client) Fetch(ctx context.Context, limit int, progress ProgressFunc) ([]Pokemon, error) {
	refs, err := c.ListPage(ctx, limit)
	if err != nil {
		return nil, err
	}
	return c.Resolve(ctx, refs, progress)
}

// doRequest performs a GET and decodes a JSON body into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err = json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return nil
}
