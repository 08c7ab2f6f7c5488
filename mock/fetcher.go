package mock

import (
	"context"

	"github.com/jobscout/jobscout"
)

var _ jobscout.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of jobscout.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, req jobscout.PageRequest) (*jobscout.PageResult, error)
	CloseFn     func() error
}

func (f *PageFetcher) FetchPage(ctx context.Context, req jobscout.PageRequest) (*jobscout.PageResult, error) {
	return f.FetchPageFn(ctx, req)
}

func (f *PageFetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
