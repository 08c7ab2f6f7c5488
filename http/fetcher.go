// Package http provides a net/http-based implementation of
// jobscout.PageFetcher for the guest search endpoint.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jobscout/jobscout"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 15 * time.Second

// Browser-like headers. The guest endpoint rejects requests without a
// recognizable user agent.
const (
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptLanguage = "en-US,en;q=0.9"
)

// Ensure Fetcher implements jobscout.PageFetcher at compile time.
var _ jobscout.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves search-results pages over plain HTTP. It does not
// execute JavaScript; use rod.Fetcher when the endpoint refuses plain
// clients.
type Fetcher struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	proxy   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for page requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxyURL string) Option {
	return func(f *Fetcher) {
		f.proxy = proxyURL
	}
}

// WithBaseURL overrides the search endpoint URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(f *Fetcher) {
		f.baseURL = baseURL
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		baseURL: jobscout.BaseOrigin + jobscout.SearchPath,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := http.DefaultTransport
	if f.proxy != "" {
		proxyURL, err := url.Parse(f.proxy)
		if err != nil {
			return nil, jobscout.Errorf(jobscout.EINVALID, "invalid proxy URL %q: %v", f.proxy, err)
		}
		transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f, nil
}

// FetchPage retrieves one search-results page. Non-200 responses are
// returned as results, not errors; the caller decides how to react.
func (f *Fetcher) FetchPage(ctx context.Context, req jobscout.PageRequest) (*jobscout.PageResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URLForBase(f.baseURL), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept-Language", acceptLanguage)

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &jobscout.PageResult{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
