package jobscout

// Fragment is one structurally-delimited unit of markup representing a single
// job listing in a search-results page. Implementations expose descendants by
// semantic role so the extraction pipeline never depends on a markup backend.
// All accessors return values in document order.
type Fragment interface {
	// Headings returns the trimmed text of heading-level elements.
	Headings() []string

	// Labels returns the trimmed text of inline label elements.
	Labels() []string

	// Paragraphs returns paragraph-level text with internal fragments
	// joined by single spaces.
	Paragraphs() []string

	// Links returns the non-empty hyperlink targets.
	Links() []string
}

// CardParser locates candidate card fragments in a search-results page body.
type CardParser interface {
	// ParseCards returns the card fragments found in the page body.
	// A body with no recognizable cards yields an empty slice, not an error.
	ParseCards(body string) ([]Fragment, error)
}
