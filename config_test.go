package jobscout_test

import (
	"testing"
	"time"

	"github.com/jobscout/jobscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigNormalize(t *testing.T) {
	t.Parallel()

	t.Run("trims roles and drops blanks", func(t *testing.T) {
		t.Parallel()

		cfg := jobscout.Config{Roles: []string{" Robotics Engineer ", "", "  "}}.Normalize()

		assert.Equal(t, []string{"Robotics Engineer"}, cfg.Roles)
	})

	t.Run("floors the pause at two seconds", func(t *testing.T) {
		t.Parallel()

		cfg := jobscout.Config{Pause: 500 * time.Millisecond}.Normalize()

		assert.Equal(t, 2*time.Second, cfg.Pause)
	})

	t.Run("keeps a pause above the floor", func(t *testing.T) {
		t.Parallel()

		cfg := jobscout.Config{Pause: 5 * time.Second}.Normalize()

		assert.Equal(t, 5*time.Second, cfg.Pause)
	})

	t.Run("floors pages at one", func(t *testing.T) {
		t.Parallel()

		cfg := jobscout.Config{Pages: 0}.Normalize()

		assert.Equal(t, 1, cfg.Pages)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		cfg := jobscout.Config{}.Normalize()

		assert.Equal(t, jobscout.DefaultLocation, cfg.Location)
		assert.Equal(t, jobscout.DefaultMaxPostedDays, cfg.MaxPostedDays)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a normalized config", func(t *testing.T) {
		t.Parallel()

		cfg := jobscout.Config{Roles: []string{"Controls Engineer"}}.Normalize()

		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects an empty role list", func(t *testing.T) {
		t.Parallel()

		err := jobscout.Config{}.Validate()

		require.Error(t, err)
		assert.Equal(t, jobscout.EINVALID, jobscout.ErrorCode(err))
	})

	t.Run("rejects blank role keywords", func(t *testing.T) {
		t.Parallel()

		err := jobscout.Config{Roles: []string{"   "}}.Validate()

		require.Error(t, err)
		assert.Equal(t, jobscout.EINVALID, jobscout.ErrorCode(err))
	})
}
