package object

import (
	"context"
	"errors"

	"github.com/bool64/ctxd"
	"github.com/swaggest/usecase/status"
)

// SentinelError is an error.
type SentinelError string

const (
	// ErrNothingToInvalidate indicates no callbacks were added to Invalidator.
	ErrNothingToInvalidate = SentinelError("nothing to invalidate")

	// ErrAlreadyInvalidated indicates recent invalidation.
	ErrAlreadyInvalidated = SentinelError("already invalidated")
)

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}

var (
	// ErrKeyNotFound indicates missing attribute or cache entry.
	ErrKeyNotFound = status.Wrap(errors.New("key not found"), status.NotFound)

	// ErrImmutable indicates a mutation attempt on an object without write capability.
	ErrImmutable = status.Wrap(errors.New("object is immutable"), status.FailedPrecondition)

	// ErrNotImplemented indicates a builder without build function.
	ErrNotImplemented = status.Wrap(errors.New("build is not implemented"), status.Unimplemented)
)

// keyError adds object name and key to error context.
func keyError(ctx context.Context, err error, message, name, key string) error {
	return ctxd.WrapError(ctx, err, message, "name", name, "key", key)
}
