package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jobscout/jobscout"
)

// Compile-time interface verification.
var _ jobscout.Exporter = (*Exporter)(nil)

// Exporter archives each run's record set. Unlike the worksheet sinks it is
// append-only: every export inserts a new run row plus one job row per
// record, so earlier runs stay queryable.
type Exporter struct {
	db *DB
}

// NewExporter creates a new Exporter backed by db.
func NewExporter(db *DB) *Exporter {
	return &Exporter{db: db}
}

// Run is a single archived scrape run.
type Run struct {
	ID          string
	ScrapedAt   time.Time
	RecordCount int
}

// hashRecord computes an xxHash fingerprint over the identifying fields.
func hashRecord(rec *jobscout.JobRecord) string {
	h := xxhash.Sum64String(rec.Link + "\x00" + rec.Title + "\x00" + rec.Company)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// Export inserts a run row and one job row per record.
func (e *Exporter) Export(ctx context.Context, records []*jobscout.JobRecord) error {
	runID := uuid.New().String()

	scrapedAt := time.Now().UTC()
	if len(records) > 0 {
		scrapedAt = records[0].ScrapedAt
	}

	if _, err := e.db.ExecContext(ctx, `
		INSERT INTO runs (id, scraped_at, record_count)
		VALUES (?, ?, ?)
	`, runID, scrapedAt.Format(time.RFC3339), len(records)); err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for _, rec := range records {
		var days any
		if rec.PostedDays != nil {
			days = *rec.PostedDays
		}
		if _, err := e.db.ExecContext(ctx, `
			INSERT INTO jobs (id, run_id, role_keyword, title, company, location, posted, posted_days, link, description, fit_score, tags, record_hash, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), runID, rec.RoleKeyword, rec.Title, rec.Company, rec.Location,
			rec.PostedText, days, rec.Link, rec.Description, rec.FitScore,
			strings.Join(rec.Tags, ", "), hashRecord(rec), rec.Position); err != nil {
			return fmt.Errorf("inserting job %q: %w", rec.Title, err)
		}
	}

	return nil
}

// Runs returns the archived runs, newest first.
func (e *Exporter) Runs(ctx context.Context) ([]*Run, error) {
	rows, err := e.db.QueryContext(ctx, `
		SELECT id, scraped_at, record_count
		FROM runs
		ORDER BY scraped_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var scrapedAt string
		if err := rows.Scan(&run.ID, &scrapedAt, &run.RecordCount); err != nil {
			return nil, err
		}
		run.ScrapedAt, err = time.Parse(time.RFC3339, scrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scraped_at: %w", err)
		}
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// Jobs returns the records archived for a run, in stored position order.
func (e *Exporter) Jobs(ctx context.Context, runID string) ([]*jobscout.JobRecord, error) {
	rows, err := e.db.QueryContext(ctx, `
		SELECT role_keyword, title, company, location, posted, posted_days, link, description, fit_score, tags, position
		FROM jobs
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*jobscout.JobRecord
	for rows.Next() {
		var rec jobscout.JobRecord
		var days sql.NullInt64
		var tags string
		if err := rows.Scan(&rec.RoleKeyword, &rec.Title, &rec.Company, &rec.Location,
			&rec.PostedText, &days, &rec.Link, &rec.Description, &rec.FitScore,
			&tags, &rec.Position); err != nil {
			return nil, err
		}
		if days.Valid {
			d := int(days.Int64)
			rec.PostedDays = &d
		}
		if tags != "" {
			rec.Tags = strings.Split(tags, ", ")
		}
		records = append(records, &rec)
	}

	if records == nil {
		return nil, jobscout.Errorf(jobscout.ENOTFOUND, "run not found")
	}

	return records, rows.Err()
}
