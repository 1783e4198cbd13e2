package object

import (
	"context"
	"sync"
)

var (
	_ ReadWriter = &Attributed{}
	_ Walker     = &Attributed{}
)

// Attributed is a generic container of named attributes.
//
// Please use NewAttributed to create instance.
type Attributed struct {
	sync.RWMutex
	store

	*trait
}

// NewAttributed creates an empty attributed object with optional configuration.
func NewAttributed(cfg ...Config) *Attributed {
	config := Config{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	return newAttributed("Attributed", config)
}

func newAttributed(typeTag string, cfg Config) *Attributed {
	return &Attributed{
		store: newStore(8),
		trait: newTrait(typeTag, cfg),
	}
}

// Get returns attribute value or def if attribute is missing.
func (o *Attributed) Get(name string, def interface{}) interface{} {
	o.RLock()
	defer o.RUnlock()

	return o.get(name, def)
}

// Item returns attribute value or def if attribute is missing.
//
// It is a map-style equivalent of Get.
func (o *Attributed) Item(name string, def interface{}) interface{} {
	return o.Get(name, def)
}

// Lookup returns attribute value and true if it exists.
func (o *Attributed) Lookup(name string) (interface{}, bool) {
	o.RLock()
	defer o.RUnlock()

	return o.lookup(name)
}

// Has checks attribute existence.
func (o *Attributed) Has(name string) bool {
	_, ok := o.Lookup(name)

	return ok
}

// Set inserts or overwrites attribute.
func (o *Attributed) Set(name string, value interface{}) {
	o.Lock()
	defer o.Unlock()

	o.set(name, value)
}

// Delete removes attribute.
func (o *Attributed) Delete(name string) error {
	o.Lock()
	defer o.Unlock()

	if !o.delete(name) {
		return keyError(context.Background(), ErrKeyNotFound, "failed to delete attribute", o.name, name)
	}

	return nil
}

// Keys returns attribute names in insertion order.
func (o *Attributed) Keys() []string {
	o.RLock()
	defer o.RUnlock()

	return o.copyKeys()
}

// Len returns number of attributes.
func (o *Attributed) Len() int {
	o.RLock()
	defer o.RUnlock()

	return len(o.data)
}

// ToMap returns a shallow copy of attributes without excluded names.
//
// All attributes are exported if no names are excluded.
func (o *Attributed) ToMap(exclude ...string) map[string]interface{} {
	o.RLock()
	defer o.RUnlock()

	return o.toMap(exclude)
}

// String renders object as Name(k1=v1, k2=v2) with attributes in insertion order.
func (o *Attributed) String() string {
	o.RLock()
	defer o.RUnlock()

	return o.render(o.name)
}

// Walk walks attributes in insertion order.
//
// Attributes are snapshotted before walking, so walkFn can mutate the object.
func (o *Attributed) Walk(walkFn func(name string, value interface{}) error) (int, error) {
	o.RLock()
	keys := o.copyKeys()
	values := make([]interface{}, len(keys))

	for i, k := range keys {
		values[i] = o.data[k]
	}
	o.RUnlock()

	n := 0

	for i, k := range keys {
		if err := walkFn(k, values[i]); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}

// Freeze returns an immutable copy of attributes that preserves insertion order.
func (o *Attributed) Freeze(cfg ...Config) *Immutable {
	o.RLock()
	s := newStore(len(o.keys))

	for _, k := range o.keys {
		s.set(k, o.data[k])
	}
	o.RUnlock()

	config := Config{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	return &Immutable{
		store: s,
		trait: newTrait("Immutable", config),
	}
}
