// Package goquery provides a goquery-based implementation of
// jobscout.CardParser and jobscout.Fragment for the guest search markup.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jobscout/jobscout"
)

// fallbackClassPattern matches the container classes the site uses when
// results are not rendered as a plain list.
var fallbackClassPattern = regexp.MustCompile(`job-card|result`)

// Ensure CardParser implements jobscout.CardParser at compile time.
var _ jobscout.CardParser = (*CardParser)(nil)

// CardParser locates job cards in a search-results page body using CSS
// selectors. The primary selector is list items; when a page yields none,
// it falls back to div elements whose class mentions a job-card or result.
type CardParser struct{}

// NewCardParser creates a new CardParser.
func NewCardParser() *CardParser {
	return &CardParser{}
}

// ParseCards returns the card fragments found in the page body in document
// order. A body without recognizable cards yields an empty slice.
func (p *CardParser) ParseCards(body string) ([]jobscout.Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, jobscout.Errorf(jobscout.EINVALID, "failed to parse page body: %v", err)
	}

	sel := doc.Find("li")
	if sel.Length() == 0 {
		sel = doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
			class, ok := s.Attr("class")
			return ok && fallbackClassPattern.MatchString(class)
		})
	}

	frags := make([]jobscout.Fragment, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		frags = append(frags, &cardFragment{sel: s})
	})

	return frags, nil
}

// Ensure cardFragment implements jobscout.Fragment at compile time.
var _ jobscout.Fragment = (*cardFragment)(nil)

// cardFragment adapts one goquery selection to the semantic-role accessors
// the extraction pipeline depends on.
type cardFragment struct {
	sel *goquery.Selection
}

// Headings returns the trimmed text of heading elements in document order.
func (f *cardFragment) Headings() []string {
	return f.texts("h1, h2, h3, h4, h5, h6")
}

// Labels returns the trimmed text of span elements in document order.
func (f *cardFragment) Labels() []string {
	return f.texts("span")
}

// Paragraphs returns paragraph text with internal fragments joined by
// single spaces.
func (f *cardFragment) Paragraphs() []string {
	var out []string
	f.sel.Find("p").Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.Join(strings.Fields(s.Text()), " "))
	})
	return out
}

// Links returns trimmed href targets of anchors that carry one.
func (f *cardFragment) Links() []string {
	var out []string
	f.sel.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		out = append(out, strings.TrimSpace(href))
	})
	return out
}

func (f *cardFragment) texts(selector string) []string {
	var out []string
	f.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}
