package jobscout

import (
	"context"
	"net/url"
	"strconv"
)

// SearchPath is the guest search endpoint path on BaseOrigin.
const SearchPath = "/jobs-guest/jobs/api/seeMoreJobPostings/search"

// PageRequest identifies one search-results page.
type PageRequest struct {
	// Keywords is the role search term.
	Keywords string

	// Location filters listings by place.
	Location string

	// Start is the pagination offset (page index times page size).
	Start int
}

// URL returns the full request URL for the guest search endpoint.
func (r PageRequest) URL() string {
	return r.URLForBase(BaseOrigin + SearchPath)
}

// URLForBase returns the request URL against an alternate endpoint base.
// Transports whose endpoint can be overridden in tests use this form; the
// query encoding is identical to URL.
func (r PageRequest) URLForBase(base string) string {
	q := url.Values{}
	q.Set("keywords", r.Keywords)
	q.Set("location", r.Location)
	q.Set("start", strconv.Itoa(r.Start))
	return base + "?" + q.Encode()
}

// PageResult is one fetched search-results page.
type PageResult struct {
	StatusCode int
	Body       string
}

// PageFetcher retrieves search-results pages. Implementations own transport
// policy (timeouts, headers, proxying); the pipeline treats any returned
// error as a transport failure and any non-200 status as a stop signal for
// the current role.
type PageFetcher interface {
	// FetchPage retrieves one page. The context controls timeout and
	// cancellation.
	FetchPage(ctx context.Context, req PageRequest) (*PageResult, error)

	// Close releases transport resources.
	// Must be called when the PageFetcher is no longer needed.
	Close() error
}

// Throttler paces page requests.
type Throttler interface {
	// Wait blocks until the next request is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
