// Package sparql provides a minimal SPARQL-over-HTTP query client. It issues
// parameterized graph queries against a remote knowledge-graph endpoint and
// returns variable-binding rows, isolating network and protocol detail from
// the source adapters built on top of it.
package sparql

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/errors"
)

// DefaultTimeout is the default per-request timeout.
var DefaultTimeout = constants.DefaultQueryTimeout

// Client issues SPARQL queries over HTTP.
type Client struct {
	http      *http.Client
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header for outbound requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// New creates a new SPARQL client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: constants.UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query executes a SPARQL query against the endpoint and returns the binding
// rows. Failures surface as QueryError (transport, remote status) or
// ParseError (malformed response); no retry happens at this layer.
func (c *Client) Query(ctx context.Context, endpoint, query string) ([]Binding, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.WrapValidation("endpoint", err)
	}

	q := u.Query()
	q.Set("query", query)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WrapQuery(u.Host, endpoint, "", 0, err)
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapQuery(u.Host, endpoint, "", 0, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapQuery(u.Host, endpoint, "", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.QueryError{
			Source:     u.Host,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    truncate(string(body), 200),
		}
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.WrapParse(u.Host, err)
	}

	return out.Results.Bindings, nil
}

// truncate shortens remote error bodies so they stay loggable.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
