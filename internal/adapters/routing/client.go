package routing

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is where a locally running routing backend listens.
const DefaultBaseURL = "http://localhost:9090/"

// RouteClient implements RouteProvider against the grid routing backend.
//
// It performs exactly one HTTP request per call and keeps no state beyond
// its configuration: no caching, no retries, no request coalescing.
// Deadlines and cancellation come from the caller's context.
//
// The client is safe for concurrent use.
type RouteClient struct {
	session   *http.Client
	baseURL   *url.URL
	userAgent string
}

type Option func(*RouteClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(rc *RouteClient) {
		if c != nil {
			rc.session = c
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(rc *RouteClient) { rc.userAgent = ua }
}

func NewRouteClient(baseURL string, opts ...Option) (*RouteClient, error) {
	u, err := ParseBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("new route client: %w", err)
	}

	client := &RouteClient{
		session:   &http.Client{},
		baseURL:   u,
		userAgent: "grid-route-client/1.0",
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the endpoint the client talks to.
func (c *RouteClient) BaseURL() string { return c.baseURL.String() }

// ParseBaseURL validates an absolute http(s) URL and ensures the path ends
// with a slash so endpoint names resolve beneath it.
func ParseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("base url is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", raw)
	}

	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""

	return u, nil
}

// endpoint resolves name against the base URL and attaches query.
func (c *RouteClient) endpoint(name string, query url.Values) string {
	u := c.baseURL.ResolveReference(&url.URL{Path: name})
	u.RawQuery = query.Encode()
	return u.String()
}
