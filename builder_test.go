package object_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/object"
)

func TestBuilder_Merge(t *testing.T) {
	b := object.NewBuilder()

	res := b.Merge(map[string]interface{}{"a": 1, "b": 2}).
		Merge(map[string]interface{}{"b": 3, "c": 4}).
		With("d", 5)

	assert.Same(t, b, res)
	assert.Equal(t, map[string]interface{}{"a": 1, "b": 3, "c": 4, "d": 5}, b.Configuration())

	// Configuration is a single attribute of builder.
	assert.Equal(t, []string{object.ConfigurationAttribute}, b.Keys())

	b.SetConfiguration(map[string]interface{}{"x": 1})
	assert.Equal(t, map[string]interface{}{"x": 1}, b.Configuration())

	// Returned configuration is a copy.
	c := b.Configuration()
	c["y"] = 2
	assert.Equal(t, map[string]interface{}{"x": 1}, b.Configuration())
}

func TestBuilder_Build_notImplemented(t *testing.T) {
	l := &recordingLogger{}
	b := object.NewBuilder(object.BuilderConfig{Config: object.Config{Logger: l}})
	b.With("a", 1)

	v, err := b.Build(context.Background())
	assert.Nil(t, v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, object.ErrNotImplemented))

	e, found := l.find("build is not implemented")
	require.True(t, found)
	assert.Equal(t, "error", e.level)
}

func TestBuilder_Build(t *testing.T) {
	b := object.NewBuilder(object.BuilderConfig{
		Config: object.Config{Name: "GreeterBuilder"},
		Build: func(ctx context.Context, configuration map[string]interface{}) (interface{}, error) {
			name, ok := configuration["name"].(string)
			if !ok {
				return nil, errors.New("missing name")
			}

			return object.NewImmutable(map[string]interface{}{
				"greeting": fmt.Sprintf("hello, %s", name),
			}), nil
		},
	})

	_, err := b.Build(context.Background())
	assert.EqualError(t, err, "missing name")

	v, err := b.With("name", "gopher").Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello, gopher", v.(*object.Immutable).Get("greeting", nil))
	assert.Equal(t, "GreeterBuilder(configuration=map[name:gopher])", b.String())
}

func TestBuilder_overwrittenConfiguration(t *testing.T) {
	b := object.NewBuilder()
	b.Set(object.ConfigurationAttribute, "broken")

	b.With("a", 1)
	assert.Equal(t, map[string]interface{}{"a": 1}, b.Configuration())
}
