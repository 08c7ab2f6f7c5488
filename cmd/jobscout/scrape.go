package main

import (
	"fmt"
	"os"

	"github.com/jobscout/jobscout"
	"github.com/jobscout/jobscout/fs"
	"github.com/jobscout/jobscout/goquery"
	jobhttp "github.com/jobscout/jobscout/http"
	"github.com/jobscout/jobscout/notion"
	"github.com/jobscout/jobscout/rod"
	"github.com/jobscout/jobscout/scrape"
	"github.com/jobscout/jobscout/sheets"
	jobslog "github.com/jobscout/jobscout/slog"
	"github.com/jobscout/jobscout/sqlite"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	var fc *FileConfig
	if c.Config != "" {
		var err error
		if fc, err = loadFileConfig(c.Config); err != nil {
			return err
		}
	}

	cfg, sink := c.merge(fc)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	// Build the exporter before scraping so a misconfigured sink fails
	// fast instead of discarding minutes of throttled fetching.
	exporter, cleanup, err := c.buildExporter(deps, sink)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	fetcher, err := c.buildFetcher(deps, cfg)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Fetcher:  jobslog.NewLoggingFetcher(fetcher, deps.Logger),
		Cards:    jobslog.NewLoggingCardParser(goquery.NewCardParser(), deps.Logger),
		Throttle: scrape.NewPauseLimiter(cfg.Pause),
		Config:   cfg,
		Logger:   deps.Logger,
	}

	records, err := scraper.Run(deps.Ctx)
	if err != nil {
		return err
	}

	if err := jobslog.NewLoggingExporter(exporter, deps.Logger).Export(deps.Ctx, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d records to %s\n", len(records), sink.Output)
	return nil
}

// buildFetcher returns the test override or constructs the configured
// transport backend.
func (c *ScrapeCmd) buildFetcher(deps *Dependencies, cfg jobscout.Config) (jobscout.PageFetcher, error) {
	if deps.Fetcher != nil {
		return deps.Fetcher, nil
	}
	if c.Browser {
		fetcher, err := rod.NewFetcher(cfg.Proxy)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	}
	return jobhttp.NewFetcher(jobhttp.WithProxy(cfg.Proxy))
}

// buildExporter constructs the configured sink. The returned cleanup func,
// if non-nil, must be called after export.
func (c *ScrapeCmd) buildExporter(deps *Dependencies, sink sinkConfig) (jobscout.Exporter, func(), error) {
	if deps.Exporter != nil {
		return deps.Exporter, nil, nil
	}

	switch sink.Output {
	case "csv":
		e, err := fs.NewExporter(sink.CSVPath)
		return e, nil, err
	case "sheets":
		e, err := sheets.NewExporter(deps.Ctx, sink.SheetID, sink.Worksheet)
		return e, nil, err
	case "notion":
		e, err := notion.NewExporter(os.Getenv("NOTION_TOKEN"), sink.NotionDB)
		return e, nil, err
	case "sqlite":
		db := sqlite.NewDB(sink.DBPath)
		if err := db.Open(); err != nil {
			return nil, nil, fmt.Errorf("failed to open database at %q: %w", sink.DBPath, err)
		}
		return sqlite.NewExporter(db), func() { db.Close() }, nil
	default:
		return nil, nil, jobscout.Errorf(jobscout.EINVALID, "unknown output %q", sink.Output)
	}
}
