package jobscout

import (
	"strconv"
	"strings"
	"time"
)

// BaseOrigin is the site origin used to absolutize relative card links.
const BaseOrigin = "https://www.linkedin.com"

// JobRecord represents one extracted job listing. A record is created once
// per parsed card and never mutated afterwards; aggregation only filters,
// reorders, and assigns Position.
type JobRecord struct {
	// RoleKeyword is the search term that produced this record.
	RoleKeyword string

	// Title, Company, Location, and Description are best-effort extractions
	// and may be empty.
	Title       string
	Company     string
	Location    string
	Description string

	// PostedText is the raw relative-date text from the card, e.g. "3 days ago".
	PostedText string

	// PostedDays is the listing age in whole days derived from PostedText.
	// Nil means the text could not be parsed.
	PostedDays *int

	// Link is the absolute listing URL with the query string stripped.
	// Non-empty links serve as the deduplication key.
	Link string

	// FitScore is the relevance estimate in [0, 100].
	FitScore int

	// Tags are the vocabulary keywords found in title or description,
	// in vocabulary order.
	Tags []string

	// ScrapedAt is the UTC timestamp of the run that produced the record.
	ScrapedAt time.Time

	// Position is the record's index in the final ordered set, assigned
	// by Aggregate.
	Position int
}

// Columns returns the canonical column headers shared by all export sinks.
func Columns() []string {
	return []string{
		"role_keyword",
		"title",
		"company",
		"location",
		"posted",
		"posted_days",
		"link",
		"description",
		"fit_score",
		"tags",
		"scraped_at_utc",
	}
}

// Row returns the record's tabular projection in Columns order.
// A nil PostedDays renders as an empty cell.
func (r *JobRecord) Row() []string {
	postedDays := ""
	if r.PostedDays != nil {
		postedDays = strconv.Itoa(*r.PostedDays)
	}
	return []string{
		r.RoleKeyword,
		r.Title,
		r.Company,
		r.Location,
		r.PostedText,
		postedDays,
		r.Link,
		r.Description,
		strconv.Itoa(r.FitScore),
		strings.Join(r.Tags, ", "),
		r.ScrapedAt.Format(time.RFC3339),
	}
}
