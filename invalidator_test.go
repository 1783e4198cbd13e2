package object_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vearutop/object"
)

func TestInvalidator_Invalidate(t *testing.T) {
	m1 := object.NewManager()
	m2 := object.NewManager()

	i := &object.Invalidator{}
	err := i.Invalidate()
	assert.True(t, errors.Is(err, object.ErrNothingToInvalidate))

	ctx, cancel := context.WithCancel(context.Background())
	i.Add(ctx, m1, m2)
	cancel()

	m1.Put(ctx, "key", 1)
	m2.Put(ctx, "key", 2)

	assert.True(t, m1.Has(ctx, "key"))
	assert.True(t, m2.Has(ctx, "key"))

	before := m1.LastFlush()

	time.Sleep(time.Millisecond)
	assert.NoError(t, i.Invalidate())

	assert.False(t, m1.Has(ctx, "key"))
	assert.False(t, m2.Has(ctx, "key"))
	assert.True(t, m1.LastFlush().After(before))

	err = i.Invalidate()
	assert.True(t, errors.Is(err, object.ErrAlreadyInvalidated))
}

func TestInvalidator_Invalidate_skipInterval(t *testing.T) {
	calls := 0
	i := &object.Invalidator{
		SkipInterval: time.Nanosecond,
		Callbacks:    []func(){func() { calls++ }},
	}

	assert.NoError(t, i.Invalidate())
	time.Sleep(time.Millisecond)
	assert.NoError(t, i.Invalidate())
	assert.Equal(t, 2, calls)
}
