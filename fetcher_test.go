package jobscout_test

import (
	"testing"

	"github.com/jobscout/jobscout"
	"github.com/stretchr/testify/assert"
)

func TestPageRequestURL(t *testing.T) {
	t.Parallel()

	t.Run("builds the guest search URL", func(t *testing.T) {
		t.Parallel()

		req := jobscout.PageRequest{
			Keywords: "Controls Engineer",
			Location: "United States",
			Start:    25,
		}

		url := req.URL()

		assert.Contains(t, url, "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search?")
		assert.Contains(t, url, "keywords=Controls+Engineer")
		assert.Contains(t, url, "location=United+States")
		assert.Contains(t, url, "start=25")
	})

	t.Run("alternate base keeps the same query encoding", func(t *testing.T) {
		t.Parallel()

		req := jobscout.PageRequest{
			Keywords: "Controls Engineer",
			Location: "United States",
			Start:    25,
		}

		url := req.URLForBase("http://127.0.0.1:8080/search")

		assert.Contains(t, url, "http://127.0.0.1:8080/search?")
		assert.Contains(t, url, "keywords=Controls+Engineer")
		assert.Contains(t, url, "location=United+States")
		assert.Contains(t, url, "start=25")
	})
}
