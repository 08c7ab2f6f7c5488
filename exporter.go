package jobscout

import "context"

// Exporter persists a finalized, ordered record set to a sink. The record
// set is already deduplicated, filtered, and sorted; exporters must not
// reorder or mutate it. Exporting an empty set is valid and must not fail:
// tabular sinks still write their header. Missing prerequisites (credentials,
// identifiers) surface as errors before any I/O is attempted.
type Exporter interface {
	Export(ctx context.Context, records []*JobRecord) error
}
