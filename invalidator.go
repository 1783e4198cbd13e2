package object

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Invalidator is a registry of cache flush triggers.
type Invalidator struct {
	sync.Mutex

	// SkipInterval defines minimal duration between two invalidations (flood protection), default 15s.
	SkipInterval time.Duration

	// Callbacks contains a list of functions to call on invalidate.
	Callbacks []func()

	lastRun time.Time
}

// Add registers managers to be forcibly flushed on invalidate.
//
// Context values are kept for flush logging, but context cancellation is ignored.
func (i *Invalidator) Add(ctx context.Context, managers ...*Manager) {
	i.Lock()
	defer i.Unlock()

	for _, m := range managers {
		i.Callbacks = append(i.Callbacks, m.FlushFunc(detachedContext{Context: ctx}))
	}
}

// Invalidate triggers callbacks.
func (i *Invalidator) Invalidate() error {
	i.Lock()
	defer i.Unlock()

	if len(i.Callbacks) == 0 {
		return ErrNothingToInvalidate
	}

	if i.SkipInterval == 0 {
		i.SkipInterval = 15 * time.Second
	}

	if time.Since(i.lastRun) < i.SkipInterval {
		return fmt.Errorf("%w at %s, %s did not pass",
			ErrAlreadyInvalidated, i.lastRun.String(), i.SkipInterval.String())
	}

	i.lastRun = time.Now()
	for _, cb := range i.Callbacks {
		cb()
	}

	return nil
}

// detachedContext keeps values of parent context, but is never done.
type detachedContext struct {
	context.Context
}

func (detachedContext) Deadline() (time.Time, bool) { return time.Time{}, false }

func (detachedContext) Done() <-chan struct{} { return nil }

func (detachedContext) Err() error { return nil }
