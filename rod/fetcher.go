// Package rod provides a browser-based implementation of jobscout.PageFetcher
// using Chrome automation. It renders the search page in a real browser,
// which gets past the plain-HTTP rejections the guest endpoint sometimes
// serves to non-browser clients.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jobscout/jobscout"
)

// Ensure Fetcher implements jobscout.PageFetcher at compile time.
var _ jobscout.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves search-results pages using headless Chrome.
// A successfully rendered page reports status 200; navigation failures are
// transport failures.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(proxy string) (*Fetcher, error) {
	l := launcher.New().Headless(true)
	if proxy != "" {
		l = l.Proxy(proxy)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// FetchPage navigates to the search URL and returns the rendered HTML.
func (f *Fetcher) FetchPage(ctx context.Context, req jobscout.PageRequest) (*jobscout.PageResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(req.URL()); err != nil {
		return nil, err
	}

	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	return &jobscout.PageResult{
		StatusCode: 200,
		Body:       html,
	}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
