package mock

import (
	"context"

	"github.com/jobscout/jobscout"
)

var _ jobscout.Throttler = (*Throttler)(nil)

// Throttler is a mock implementation of jobscout.Throttler.
type Throttler struct {
	WaitFn func(ctx context.Context) error
}

func (t *Throttler) Wait(ctx context.Context) error {
	if t.WaitFn == nil {
		return nil
	}
	return t.WaitFn(ctx)
}
