package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jobscout/jobscout"
)

// Dependencies holds services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Test overrides. When nil, commands construct real backends.
	Fetcher  jobscout.PageFetcher
	Exporter jobscout.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape   ScrapeCmd   `cmd:"" help:"Scrape job listings and export them"`
	Keywords KeywordsCmd `cmd:"" help:"Print the relevance-scoring vocabulary"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Roles    []string      `short:"r" sep:"," placeholder:"ROLE,..." help:"Role keywords to search"`
	Location string        `help:"Location filter"`
	Pages    int           `short:"p" help:"Result pages per role"`
	Pause    time.Duration `help:"Delay between page requests (floored to 2s)"`
	Proxy    string        `help:"Proxy URL for the fetch backend"`
	MaxDays  int           `name:"max-days" help:"Max listing age in days"`

	Output    string `default:"csv" enum:"csv,sheets,notion,sqlite" help:"Export sink (csv, sheets, notion, sqlite)"`
	CSVPath   string `name:"csv-path" help:"CSV output path (default jobs.csv)"`
	SheetID   string `name:"sheet-id" help:"Google spreadsheet ID"`
	Worksheet string `help:"Worksheet tab name"`
	NotionDB  string `name:"notion-db" help:"Notion database ID"`
	DBPath    string `name:"db-path" help:"SQLite archive path (default jobscout.db)"`

	Browser bool   `short:"b" help:"Fetch pages with a headless browser instead of plain HTTP"`
	Config  string `name:"config" type:"path" help:"YAML config file"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct{}
