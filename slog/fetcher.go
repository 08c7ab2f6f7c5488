// Package slog provides logging decorators for jobscout services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobscout/jobscout"
)

// Ensure LoggingFetcher implements jobscout.PageFetcher.
var _ jobscout.PageFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a PageFetcher with per-request logging.
type LoggingFetcher struct {
	next   jobscout.PageFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next jobscout.PageFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchPage delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) FetchPage(ctx context.Context, req jobscout.PageRequest) (res *jobscout.PageResult, err error) {
	defer func(begin time.Time) {
		status := 0
		bytes := 0
		if res != nil {
			status = res.StatusCode
			bytes = len(res.Body)
		}
		f.logger.Info("fetch page",
			"keywords", req.Keywords,
			"start", req.Start,
			"status", status,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchPage(ctx, req)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
