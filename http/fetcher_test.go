package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobscout/jobscout"
	jshttp "github.com/jobscout/jobscout/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_FetchPage(t *testing.T) {
	t.Parallel()

	t.Run("sends search parameters and browser headers", func(t *testing.T) {
		t.Parallel()

		var gotQuery map[string]string
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{
				"keywords": r.URL.Query().Get("keywords"),
				"location": r.URL.Query().Get("location"),
				"start":    r.URL.Query().Get("start"),
			}
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<html><body><ul><li></li></ul></body></html>"))
		}))
		defer srv.Close()

		f, err := jshttp.NewFetcher(jshttp.WithBaseURL(srv.URL))
		require.NoError(t, err)
		defer f.Close()

		res, err := f.FetchPage(context.Background(), jobscout.PageRequest{
			Keywords: "Controls Engineer",
			Location: "United States",
			Start:    25,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, res.Body, "<li>")
		assert.Equal(t, "Controls Engineer", gotQuery["keywords"])
		assert.Equal(t, "United States", gotQuery["location"])
		assert.Equal(t, "25", gotQuery["start"])
		assert.Contains(t, gotUA, "Mozilla/5.0")
	})

	t.Run("returns non-200 statuses as results", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		f, err := jshttp.NewFetcher(jshttp.WithBaseURL(srv.URL))
		require.NoError(t, err)
		defer f.Close()

		res, err := f.FetchPage(context.Background(), jobscout.PageRequest{Keywords: "x"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	})

	t.Run("returns transport errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // Server is already down.

		f, err := jshttp.NewFetcher(jshttp.WithBaseURL(srv.URL))
		require.NoError(t, err)
		defer f.Close()

		_, err = f.FetchPage(context.Background(), jobscout.PageRequest{Keywords: "x"})

		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		f, err := jshttp.NewFetcher(jshttp.WithBaseURL(srv.URL))
		require.NoError(t, err)
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = f.FetchPage(ctx, jobscout.PageRequest{Keywords: "x"})

		require.Error(t, err)
	})
}

func TestNewFetcher(t *testing.T) {
	t.Parallel()

	t.Run("rejects an unparsable proxy URL", func(t *testing.T) {
		t.Parallel()

		_, err := jshttp.NewFetcher(jshttp.WithProxy("http://bad proxy\x7f"))

		require.Error(t, err)
		assert.Equal(t, jobscout.EINVALID, jobscout.ErrorCode(err))
	})

	t.Run("accepts a valid proxy URL", func(t *testing.T) {
		t.Parallel()

		f, err := jshttp.NewFetcher(jshttp.WithProxy("http://localhost:8080"))

		require.NoError(t, err)
		require.NotNil(t, f)
		assert.NoError(t, f.Close())
	})
}
