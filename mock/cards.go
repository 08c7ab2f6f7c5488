package mock

import "github.com/jobscout/jobscout"

var _ jobscout.CardParser = (*CardParser)(nil)

// CardParser is a mock implementation of jobscout.CardParser.
type CardParser struct {
	ParseCardsFn func(body string) ([]jobscout.Fragment, error)
}

func (p *CardParser) ParseCards(body string) ([]jobscout.Fragment, error) {
	return p.ParseCardsFn(body)
}

var _ jobscout.Fragment = (*Fragment)(nil)

// Fragment is a value-based fake implementation of jobscout.Fragment.
type Fragment struct {
	HeadingValues   []string
	LabelValues     []string
	ParagraphValues []string
	LinkValues      []string
}

func (f *Fragment) Headings() []string   { return f.HeadingValues }
func (f *Fragment) Labels() []string     { return f.LabelValues }
func (f *Fragment) Paragraphs() []string { return f.ParagraphValues }
func (f *Fragment) Links() []string      { return f.LinkValues }
