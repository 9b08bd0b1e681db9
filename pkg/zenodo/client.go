package zenodo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Base URLs for the two Zenodo environments.
const (
	ProductionBaseURL = "https://zenodo.org/api/"
	SandboxBaseURL    = "https://sandbox.zenodo.org/api/"
)

const httpTimeout = 60 * time.Second

// Config holds the immutable client configuration.
// All fields are fixed at construction; the client never mutates them.
type Config struct {
	// AccessToken is the personal access token attached to every request.
	AccessToken string

	// Proxies maps a URL scheme ("http", "https") to a proxy URL.
	// Requests whose scheme has no entry go direct.
	Proxies map[string]string

	// Sandbox routes all requests to the sandbox environment instead of
	// production.
	Sandbox bool

	// BaseURL overrides the environment base URL. Mainly useful for tests
	// against a local stub server. Must end with a trailing slash.
	BaseURL string

	// HTTPClient overrides the default transport. When set, Proxies is
	// ignored and the caller owns proxy and timeout configuration.
	HTTPClient *http.Client
}

// Client is a thin client for the Zenodo deposition API.
//
// Every method builds exactly one HTTP request (UploadFile builds two) and
// returns the raw [Response] without interpreting the status code. Callers
// decide what a non-2xx response means; see [Known] for the status codes the
// remote service documents.
//
// A Client is safe for concurrent use: all state is read-only after New.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// New creates a Client from cfg.
//
// The access token is attached to every request as the access_token query
// parameter, matching the remote service's token authentication.
func New(cfg Config) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = ProductionBaseURL
		if cfg.Sandbox {
			base = SandboxBaseURL
		}
	}
	if !strings.HasSuffix(base, "/") {
		return nil, fmt.Errorf("base URL must end with a trailing slash: %q", base)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		transport, err := newTransport(cfg.Proxies)
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{Timeout: httpTimeout, Transport: transport}
	}

	return &Client{
		http:    httpClient,
		baseURL: base,
		token:   cfg.AccessToken,
	}, nil
}

// newTransport builds an http.Transport with per-scheme proxy selection.
// A nil or empty proxy map falls back to environment proxy settings, the
// default behavior of http.DefaultTransport.
func newTransport(proxies map[string]string) (*http.Transport, error) {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		transport = &http.Transport{}
	}
	transport = transport.Clone()

	if len(proxies) == 0 {
		return transport, nil
	}

	parsed := make(map[string]*url.URL, len(proxies))
	for scheme, raw := range proxies {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse proxy URL for %s: %w", scheme, err)
		}
		parsed[scheme] = u
	}
	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		return parsed[req.URL.Scheme], nil
	}
	return transport, nil
}

// BaseURL returns the effective API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// authURL appends the path to the base URL and attaches the access token.
// Every request goes through here, so both the deposition endpoints and the
// bucket upload endpoint carry identical authentication.
func (c *Client) authURL(path string) string {
	return c.withToken(c.baseURL + path)
}

// withToken attaches the access_token query parameter to an absolute URL.
func (c *Client) withToken(rawURL string) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "access_token=" + url.QueryEscape(c.token)
}

// do executes a single HTTP request and drains the response into a Response.
// Headers are applied in map order; body may be nil for bodyless methods.
func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
