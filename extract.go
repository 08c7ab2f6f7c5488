package jobscout

import (
	"strings"
	"time"
)

// ExtractRecord builds a JobRecord from one card fragment. Every field is
// extracted best-effort: a card missing a company, location, or description
// still yields a valid record with empty strings for those fields. Only a
// missing fragment rejects the card (returns nil); field emptiness never does.
func ExtractRecord(frag Fragment, roleKeyword string, scrapedAt time.Time) *JobRecord {
	if frag == nil {
		return nil
	}

	var title, company string
	headings := frag.Headings()
	if len(headings) > 0 {
		title = headings[0]
	}
	if len(headings) > 1 {
		company = headings[1]
	}

	// The first posted-text label wins as the posted date; the first
	// remaining non-empty label wins as the location. Later matches of
	// either kind are ignored.
	var location, postedText string
	for _, label := range frag.Labels() {
		if IsPostedText(label) {
			if postedText == "" {
				postedText = label
			}
		} else if location == "" {
			location = label
		}
	}

	rec := &JobRecord{
		RoleKeyword: roleKeyword,
		Title:       title,
		Company:     company,
		Location:    location,
		PostedText:  postedText,
		ScrapedAt:   scrapedAt,
	}

	if days, ok := ParsePostedDays(postedText); ok {
		rec.PostedDays = &days
	}

	for _, href := range frag.Links() {
		if href != "" {
			rec.Link = NormalizeLink(href)
			break
		}
	}

	if paragraphs := frag.Paragraphs(); len(paragraphs) > 0 {
		rec.Description = paragraphs[0]
	}

	rec.FitScore, rec.Tags = Classify(rec.Title, rec.Description, roleKeyword)

	return rec
}

// NormalizeLink absolutizes a card hyperlink against BaseOrigin and strips
// the query string so tracking parameters never leak into dedup keys.
func NormalizeLink(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if !strings.HasPrefix(href, "http") {
		href = BaseOrigin + href
	}
	link, _, _ := strings.Cut(href, "?")
	return link
}
