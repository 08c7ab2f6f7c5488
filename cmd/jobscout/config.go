package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jobscout/jobscout"
	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration file. Flags take precedence
// over file values; file values take precedence over defaults.
type FileConfig struct {
	Roles    []string      `yaml:"roles"`
	Location string        `yaml:"location"`
	Pages    int           `yaml:"pages"`
	Pause    time.Duration `yaml:"pause"`
	Proxy    string        `yaml:"proxy"`
	MaxDays  int           `yaml:"max_days"`

	Output    string `yaml:"output"`
	CSVPath   string `yaml:"csv_path"`
	SheetID   string `yaml:"sheet_id"`
	Worksheet string `yaml:"worksheet"`
	NotionDB  string `yaml:"notion_db"`
	DBPath    string `yaml:"db_path"`
}

// loadFileConfig reads and parses the YAML config file at path.
func loadFileConfig(path string) (*FileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, jobscout.Errorf(jobscout.EINVALID, "invalid config file %q: %v", path, err)
	}
	return &fc, nil
}

// merge overlays the command's flag values onto the file configuration and
// returns the resolved run parameters plus sink settings. Zero-valued flags
// defer to the file; remaining gaps fall through to Normalize's defaults.
func (c *ScrapeCmd) merge(fc *FileConfig) (jobscout.Config, sinkConfig) {
	if fc == nil {
		fc = &FileConfig{}
	}

	cfg := jobscout.Config{
		Roles:         fc.Roles,
		Location:      fc.Location,
		Pages:         fc.Pages,
		Pause:         fc.Pause,
		Proxy:         fc.Proxy,
		MaxPostedDays: fc.MaxDays,
	}
	if len(c.Roles) > 0 {
		cfg.Roles = c.Roles
	}
	if c.Location != "" {
		cfg.Location = c.Location
	}
	if c.Pages > 0 {
		cfg.Pages = c.Pages
	}
	if c.Pause > 0 {
		cfg.Pause = c.Pause
	}
	if c.Proxy != "" {
		cfg.Proxy = c.Proxy
	}
	if c.MaxDays > 0 {
		cfg.MaxPostedDays = c.MaxDays
	}

	// The output flag defaults to "csv", so a file value wins only when the
	// flag was left at its default.
	output := c.Output
	if output == "csv" && fc.Output != "" {
		output = fc.Output
	}

	sink := sinkConfig{
		Output:    output,
		CSVPath:   firstNonEmpty(c.CSVPath, fc.CSVPath, "jobs.csv"),
		SheetID:   firstNonEmpty(c.SheetID, fc.SheetID),
		Worksheet: firstNonEmpty(c.Worksheet, fc.Worksheet),
		NotionDB:  firstNonEmpty(c.NotionDB, fc.NotionDB),
		DBPath:    firstNonEmpty(c.DBPath, fc.DBPath, "jobscout.db"),
	}

	return cfg.Normalize(), sink
}

// sinkConfig holds the resolved export-sink settings.
type sinkConfig struct {
	Output    string
	CSVPath   string
	SheetID   string
	Worksheet string
	NotionDB  string
	DBPath    string
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
