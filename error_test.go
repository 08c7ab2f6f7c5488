package jobscout_test

import (
	"errors"
	"testing"

	"github.com/jobscout/jobscout"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := jobscout.Errorf(jobscout.EINVALID, "role list %q is empty", "roles")

	assert.Equal(t, jobscout.EINVALID, jobscout.ErrorCode(err))
	assert.Equal(t, "role list \"roles\" is empty", jobscout.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobscout.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, jobscout.EINTERNAL, jobscout.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobscout.ErrorMessage(nil))
}
