package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/jobscout/jobscout"
	"github.com/jobscout/jobscout/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func intPtr(v int) *int { return &v }

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("archives a run with its records", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		e := sqlite.NewExporter(db)
		ctx := context.Background()

		scrapedAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
		records := []*jobscout.JobRecord{
			{
				RoleKeyword: "Robotics Engineer",
				Title:       "Robotics Engineer",
				Company:     "Acme",
				Location:    "Remote",
				PostedText:  "2 days ago",
				PostedDays:  intPtr(2),
				Link:        "https://www.linkedin.com/jobs/view/123",
				Description: "ROS and Python",
				FitScore:    55,
				Tags:        []string{"ROS", "Python"},
				ScrapedAt:   scrapedAt,
				Position:    0,
			},
			{
				RoleKeyword: "Controls Engineer",
				Title:       "Controls Engineer",
				Company:     "Initech",
				ScrapedAt:   scrapedAt,
				Position:    1,
			},
		}

		require.NoError(t, e.Export(ctx, records))

		runs, err := e.Runs(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, 2, runs[0].RecordCount)
		assert.Equal(t, scrapedAt, runs[0].ScrapedAt)

		jobs, err := e.Jobs(ctx, runs[0].ID)
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, "Robotics Engineer", jobs[0].Title)
		require.NotNil(t, jobs[0].PostedDays)
		assert.Equal(t, 2, *jobs[0].PostedDays)
		assert.Equal(t, []string{"ROS", "Python"}, jobs[0].Tags)
		assert.Nil(t, jobs[1].PostedDays)
		assert.Empty(t, jobs[1].Tags)
	})

	t.Run("keeps earlier runs when exporting again", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		e := sqlite.NewExporter(db)
		ctx := context.Background()

		first := []*jobscout.JobRecord{{Title: "A", ScrapedAt: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)}}
		second := []*jobscout.JobRecord{{Title: "B", ScrapedAt: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)}}

		require.NoError(t, e.Export(ctx, first))
		require.NoError(t, e.Export(ctx, second))

		runs, err := e.Runs(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.True(t, runs[0].ScrapedAt.After(runs[1].ScrapedAt))
	})

	t.Run("archives an empty run", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		e := sqlite.NewExporter(db)
		ctx := context.Background()

		require.NoError(t, e.Export(ctx, nil))

		runs, err := e.Runs(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, 0, runs[0].RecordCount)
	})
}

func TestExporter_Jobs(t *testing.T) {
	t.Parallel()

	t.Run("unknown run returns not found", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		e := sqlite.NewExporter(db)

		_, err := e.Jobs(context.Background(), "nope")

		require.Error(t, err)
		assert.Equal(t, jobscout.ENOTFOUND, jobscout.ErrorCode(err))
	})
}
