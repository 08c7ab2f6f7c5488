package goquery_test

import (
	"testing"
	"time"

	"github.com/jobscout/jobscout"
	jsgoquery "github.com/jobscout/jobscout/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPage = `<!DOCTYPE html>
<html>
<body>
<ul>
	<li>
		<h3>Controls Engineer</h3>
		<h4>Acme</h4>
		<span>San Francisco, CA</span>
		<span>2 days ago</span>
		<a href="/jobs/view/123?ref=xyz">View</a>
		<p>Design   MPC controllers
in Python</p>
	</li>
	<li>
		<h3>Autonomy Engineer</h3>
		<h4>Initech</h4>
		<span>Remote</span>
		<span>Yesterday</span>
		<a href="https://www.linkedin.com/jobs/view/456?trk=guest">View</a>
	</li>
</ul>
</body>
</html>`

func TestCardParser_ParseCards(t *testing.T) {
	t.Parallel()

	t.Run("finds list-item cards", func(t *testing.T) {
		t.Parallel()

		frags, err := jsgoquery.NewCardParser().ParseCards(searchPage)

		require.NoError(t, err)
		assert.Len(t, frags, 2)
	})

	t.Run("falls back to job-card divs when no list items exist", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<div class="base-job-card">
				<h3>Robotics Engineer</h3>
			</div>
			<div class="search-result">
				<h3>Controls Engineer</h3>
			</div>
			<div class="sidebar">ignored</div>
		</body></html>`

		frags, err := jsgoquery.NewCardParser().ParseCards(page)

		require.NoError(t, err)
		require.Len(t, frags, 2)
		assert.Equal(t, []string{"Robotics Engineer"}, frags[0].Headings())
		assert.Equal(t, []string{"Controls Engineer"}, frags[1].Headings())
	})

	t.Run("empty body yields no cards", func(t *testing.T) {
		t.Parallel()

		frags, err := jsgoquery.NewCardParser().ParseCards("<html><body></body></html>")

		require.NoError(t, err)
		assert.Empty(t, frags)
	})
}

func TestCardFragment(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T) []jobscout.Fragment {
		t.Helper()
		frags, err := jsgoquery.NewCardParser().ParseCards(searchPage)
		require.NoError(t, err)
		require.Len(t, frags, 2)
		return frags
	}

	t.Run("headings in document order", func(t *testing.T) {
		t.Parallel()

		frags := parse(t)

		assert.Equal(t, []string{"Controls Engineer", "Acme"}, frags[0].Headings())
	})

	t.Run("labels in document order", func(t *testing.T) {
		t.Parallel()

		frags := parse(t)

		assert.Equal(t, []string{"San Francisco, CA", "2 days ago"}, frags[0].Labels())
	})

	t.Run("paragraph fragments joined with single spaces", func(t *testing.T) {
		t.Parallel()

		frags := parse(t)

		assert.Equal(t, []string{"Design MPC controllers in Python"}, frags[0].Paragraphs())
	})

	t.Run("links keep raw hrefs", func(t *testing.T) {
		t.Parallel()

		frags := parse(t)

		assert.Equal(t, []string{"/jobs/view/123?ref=xyz"}, frags[0].Links())
	})

	t.Run("card without paragraphs or extra links", func(t *testing.T) {
		t.Parallel()

		frags := parse(t)

		assert.Empty(t, frags[1].Paragraphs())
		assert.Equal(t, []string{"https://www.linkedin.com/jobs/view/456?trk=guest"}, frags[1].Links())
	})

	t.Run("extraction pipeline consumes goquery fragments", func(t *testing.T) {
		t.Parallel()

		frags := parse(t)
		rec := jobscout.ExtractRecord(frags[0], "Controls Engineer", time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))

		require.NotNil(t, rec)
		assert.Equal(t, "Controls Engineer", rec.Title)
		assert.Equal(t, "Acme", rec.Company)
		assert.Equal(t, "https://www.linkedin.com/jobs/view/123", rec.Link)
		require.NotNil(t, rec.PostedDays)
		assert.Equal(t, 2, *rec.PostedDays)
	})
}
