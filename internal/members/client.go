package members

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/memberadmin/internal/roster"
)

// Fetcher loads the member collection. *Client implements it; tests can
// substitute their own.
type Fetcher interface {
	FetchMembers(ctx context.Context) (roster.Dataset, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// DefaultSourceURL is the member list served for the admin UI exercise.
const DefaultSourceURL = "https://geektrust.s3-ap-southeast-1.amazonaws.com/adminui-problem/members.json"

const (
	defaultUserAgent = "memberadmin/0.1"
	defaultTimeout   = 10 * time.Second
)

// Client reads the member list over HTTP.
type Client struct {
	source    *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for sourceURL. An empty URL selects
// DefaultSourceURL; a non-positive timeout selects the default.
func NewClient(sourceURL string, timeout time.Duration) (*Client, error) {
	source, err := parseSourceURL(sourceURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		source: source,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Source returns the URL the client reads from.
func (c *Client) Source() string {
	if c == nil || c.source == nil {
		return ""
	}
	return c.source.String()
}

// FetchMembers performs a single GET of the member list and decodes it.
func (c *Client) FetchMembers(ctx context.Context) (roster.Dataset, error) {
	if c == nil {
		return roster.Dataset{}, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source.String(), nil)
	if err != nil {
		return roster.Dataset{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return roster.Dataset{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return roster.Dataset{}, fmt.Errorf("GET %s returned status %d", c.source.Path, resp.StatusCode)
	}

	ds, err := roster.Decode(resp.Body)
	if err != nil {
		return roster.Dataset{}, fmt.Errorf("decode response: %w", err)
	}
	return ds, nil
}

func parseSourceURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultSourceURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse source url %q: %w", raw, err)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return nil, fmt.Errorf("source url %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("source url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
