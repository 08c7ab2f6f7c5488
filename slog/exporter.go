package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobscout/jobscout"
)

// Ensure LoggingExporter implements jobscout.Exporter.
var _ jobscout.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with per-run logging.
type LoggingExporter struct {
	next   jobscout.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next jobscout.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Export delegates to the wrapped exporter and logs the operation.
func (e *LoggingExporter) Export(ctx context.Context, records []*jobscout.JobRecord) (err error) {
	defer func(begin time.Time) {
		e.logger.Info("export",
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Export(ctx, records)
}
