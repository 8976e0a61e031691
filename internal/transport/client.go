package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/agentstation/catchlog/pkg/constants"
	"github.com/agentstation/catchlog/pkg/errors"
	"github.com/agentstation/catchlog/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client sends JSON requests to one base URL with authentication applied.
type Client struct {
	http    *http.Client
	auth    Authenticator
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the request timeout. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client, e.g. with an
// httptest server's client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a new transport client for baseURL with the specified authenticator.
func New(baseURL string, auth Authenticator, opts ...Option) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	c := &Client{
		http:    &http.Client{Timeout: DefaultHTTPTimeout},
		auth:    auth,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the URL every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL joins path onto the base URL. Path must already be escaped.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// NewRequest builds a request for path with body encoded as JSON when non-nil.
func (c *Client) NewRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WrapParse("json", "request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), reader)
	if err != nil {
		return nil, errors.WrapResource("create", "request", method+" "+path, err)
	}
	return req, nil
}

// DoWithContext performs an HTTP request with the token applied when non-empty.
func (c *Client) DoWithContext(ctx context.Context, req *http.Request, token string) (*http.Response, error) {
	if token != "" {
		c.auth.Apply(req, token)
	}

	req.Header.Set("Accept", "application/json")
	if req.Body != nil && (req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch) {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.FromContext(ctx).Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Bool("authenticated", token != "").
		Msg("Sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapAPI(req.URL.Path, 0, errors.Join(errors.ErrCanceled, err))
		}
		return nil, errors.WrapAPI(req.URL.Path, 0, err)
	}
	return resp, nil
}

// Send builds and performs a request in one call.
func (c *Client) Send(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	req, err := c.NewRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return c.DoWithContext(ctx, req, token)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path, token string) (*http.Response, error) {
	return c.Send(ctx, http.MethodGet, path, token, nil)
}
