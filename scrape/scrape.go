// Package scrape orchestrates the scraping pipeline. It drives each role
// keyword across its result pages, delegates page retrieval to a
// jobscout.PageFetcher, maps card fragments through the extraction pipeline,
// and aggregates the per-role record lists into the final ordered set.
package scrape

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jobscout/jobscout"
)

// PageSize is the number of cards the guest endpoint returns per page.
// Pagination offsets are multiples of this value.
const PageSize = 25

// Scraper runs the pipeline for a single configuration. Roles and pages are
// processed strictly sequentially; the only suspension points are the page
// fetch and the throttle wait.
type Scraper struct {
	Fetcher  jobscout.PageFetcher
	Cards    jobscout.CardParser
	Throttle jobscout.Throttler
	Config   jobscout.Config
	Logger   *slog.Logger
}

// Run scrapes every configured role and returns the aggregated record set.
// A transport failure or non-200 status ends the current role's pagination
// only; the remaining roles still run. Run fails only when the context is
// canceled.
func (s *Scraper) Run(ctx context.Context) ([]*jobscout.JobRecord, error) {
	scrapedAt := time.Now().UTC()

	var all []*jobscout.JobRecord
	for _, role := range s.Config.Roles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.logger().Info("scraping role", "role", role)
		all = append(all, s.scrapeRole(ctx, role, scrapedAt)...)
	}

	return jobscout.Aggregate(all), nil
}

// scrapeRole fetches up to Config.Pages pages for one role and returns the
// records gathered before the first failure, if any.
func (s *Scraper) scrapeRole(ctx context.Context, role string, scrapedAt time.Time) []*jobscout.JobRecord {
	var records []*jobscout.JobRecord

	for page := 0; page < s.Config.Pages; page++ {
		if s.Throttle != nil {
			if err := s.Throttle.Wait(ctx); err != nil {
				s.logger().Error("throttle interrupted", "role", role, "err", err)
				break
			}
		}

		req := jobscout.PageRequest{
			Keywords: role,
			Location: s.Config.Location,
			Start:    page * PageSize,
		}

		res, err := s.Fetcher.FetchPage(ctx, req)
		if err != nil {
			s.logger().Error("failed to fetch jobs", "role", role, "page", page+1, "err", err)
			break
		}
		if res.StatusCode != http.StatusOK {
			s.logger().Warn("unexpected status", "role", role, "page", page+1, "status", res.StatusCode)
			break
		}

		frags, err := s.Cards.ParseCards(res.Body)
		if err != nil {
			s.logger().Warn("failed to parse page", "role", role, "page", page+1, "err", err)
			continue
		}

		dropped := 0
		for _, frag := range frags {
			rec := jobscout.ExtractRecord(frag, role, scrapedAt)
			if rec == nil {
				dropped++
				continue
			}
			records = append(records, rec)
		}
		if dropped > 0 {
			s.logger().Debug("dropped unparsable cards", "role", role, "page", page+1, "count", dropped)
		}
	}

	return records
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
