package mock

import (
	"context"

	"github.com/jobscout/jobscout"
)

var _ jobscout.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of jobscout.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, records []*jobscout.JobRecord) error
}

func (e *Exporter) Export(ctx context.Context, records []*jobscout.JobRecord) error {
	return e.ExportFn(ctx, records)
}
