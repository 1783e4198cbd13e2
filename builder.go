package object

import (
	"context"

	"github.com/bool64/ctxd"
)

// ConfigurationAttribute is the attribute name that holds builder configuration.
const ConfigurationAttribute = "configuration"

// BuildFunc makes an object from builder configuration.
type BuildFunc func(ctx context.Context, configuration map[string]interface{}) (interface{}, error)

// BuilderConfig controls builder instance.
type BuilderConfig struct {
	Config

	// Build makes result of Builder.Build, ErrNotImplemented is returned if nil.
	Build BuildFunc
}

// Builder accumulates configuration and makes objects from it.
//
// Please use NewBuilder to create instance.
type Builder struct {
	*Attributed

	build BuildFunc
}

// NewBuilder creates a builder with empty configuration.
func NewBuilder(cfg ...BuilderConfig) *Builder {
	config := BuilderConfig{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	b := &Builder{
		Attributed: newAttributed("Builder", config.Config),
		build:      config.Build,
	}

	b.set(ConfigurationAttribute, map[string]interface{}{})

	return b
}

// configuration returns configuration map, it must be called with lock held.
func (b *Builder) configuration() map[string]interface{} {
	c, ok := b.data[ConfigurationAttribute].(map[string]interface{})
	if !ok {
		c = map[string]interface{}{}
		b.set(ConfigurationAttribute, c)
	}

	return c
}

// Merge adds options to configuration, existing options are overwritten.
func (b *Builder) Merge(options map[string]interface{}) *Builder {
	b.Lock()
	defer b.Unlock()

	c := b.configuration()
	for k, v := range options {
		c[k] = v
	}

	return b
}

// With adds a single option to configuration.
func (b *Builder) With(name string, value interface{}) *Builder {
	return b.Merge(map[string]interface{}{name: value})
}

// Configuration returns a copy of configuration.
func (b *Builder) Configuration() map[string]interface{} {
	b.Lock()
	defer b.Unlock()

	return copyMap(b.configuration())
}

// SetConfiguration replaces configuration with a copy of options.
func (b *Builder) SetConfiguration(options map[string]interface{}) {
	b.Lock()
	defer b.Unlock()

	b.set(ConfigurationAttribute, copyMap(options))
}

// Build makes an object from configuration.
func (b *Builder) Build(ctx context.Context) (interface{}, error) {
	if b.build == nil {
		b.log.Error(ctx, "build is not implemented", "name", b.name)

		return nil, ctxd.WrapError(ctx, ErrNotImplemented, b.name+" must implement build", "name", b.name)
	}

	return b.build(ctx, b.Configuration())
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	res := make(map[string]interface{}, len(m))

	for k, v := range m {
		res[k] = v
	}

	return res
}
