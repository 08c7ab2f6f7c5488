// Package notion provides the Notion database export sink.
package notion

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/jobscout/jobscout"
	"github.com/jomei/notionapi"
)

// createDelay spaces page-creation calls to stay inside Notion's rate limit.
const createDelay = 300 * time.Millisecond

// descriptionLimit is Notion's maximum rich-text length per property,
// in characters.
const descriptionLimit = 2000

// pageCreator is the slice of the Notion client used by the exporter.
type pageCreator interface {
	Create(ctx context.Context, request *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

// Ensure Exporter implements jobscout.Exporter at compile time.
var _ jobscout.Exporter = (*Exporter)(nil)

// Exporter appends one Notion page per record to a database. Unlike the
// worksheet sinks it does not clear prior contents; each run adds new pages.
type Exporter struct {
	pages      pageCreator
	databaseID notionapi.DatabaseID

	// sleep is overridable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewExporter creates a new Exporter writing to the given database using the
// integration token. Both are checked here so a misconfigured sink fails
// before any scraping happens.
func NewExporter(token, databaseID string) (*Exporter, error) {
	if token == "" {
		return nil, jobscout.Errorf(jobscout.EINVALID, "notion integration token is required")
	}
	if databaseID == "" {
		return nil, jobscout.Errorf(jobscout.EINVALID, "notion database ID is required")
	}
	client := notionapi.NewClient(notionapi.Token(token))
	return &Exporter{
		pages:      client.Page,
		databaseID: notionapi.DatabaseID(databaseID),
		sleep:      sleepCtx,
	}, nil
}

// Export creates one page per record, pausing between calls.
func (e *Exporter) Export(ctx context.Context, records []*jobscout.JobRecord) error {
	for i, rec := range records {
		if i > 0 {
			if err := e.sleep(ctx, createDelay); err != nil {
				return err
			}
		}
		req := &notionapi.PageCreateRequest{
			Parent:     notionapi.Parent{DatabaseID: e.databaseID},
			Properties: PageProperties(rec),
		}
		if _, err := e.pages.Create(ctx, req); err != nil {
			return fmt.Errorf("creating notion page for %q: %w", rec.Title, err)
		}
	}
	return nil
}

// PageProperties maps a record onto the database's property schema.
func PageProperties(rec *jobscout.JobRecord) notionapi.Properties {
	name := rec.Title
	if rec.Company != "" {
		name = fmt.Sprintf("%s @ %s", rec.Title, rec.Company)
	}

	desc := rec.Description
	if utf8.RuneCountInString(desc) > descriptionLimit {
		desc = string([]rune(desc)[:descriptionLimit])
	}

	posted := ""
	if rec.PostedDays != nil {
		posted = strconv.Itoa(*rec.PostedDays)
	}

	tags := make([]notionapi.Option, 0, len(rec.Tags))
	for _, tag := range rec.Tags {
		tags = append(tags, notionapi.Option{Name: tag})
	}

	props := notionapi.Properties{
		"Name":         titleProp(name),
		"Role Keyword": textProp(rec.RoleKeyword),
		"Company":      textProp(rec.Company),
		"Location":     textProp(rec.Location),
		"Posted":       textProp(rec.PostedText),
		"Posted Days":  textProp(posted),
		"Description":  textProp(desc),
		"Fit Score":    &notionapi.NumberProperty{Number: float64(rec.FitScore)},
		"Tags":         &notionapi.MultiSelectProperty{MultiSelect: tags},
	}
	if rec.Link != "" {
		props["Link"] = &notionapi.URLProperty{URL: rec.Link}
	}
	return props
}

func titleProp(text string) *notionapi.TitleProperty {
	return &notionapi.TitleProperty{
		Title: []notionapi.RichText{{
			Text: &notionapi.Text{Content: text},
		}},
	}
}

func textProp(text string) *notionapi.RichTextProperty {
	if text == "" {
		return &notionapi.RichTextProperty{RichText: []notionapi.RichText{}}
	}
	return &notionapi.RichTextProperty{
		RichText: []notionapi.RichText{{
			Text: &notionapi.Text{Content: text},
		}},
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
