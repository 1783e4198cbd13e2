package object

import (
	"context"
	"fmt"
	"sort"
)

var (
	_ Reader = &Immutable{}
	_ Walker = &Immutable{}
)

// Immutable is an attributed object that can not be changed after creation.
//
// It implements Reader, but not Writer. Use Set, SetItem and Delete to mutate
// objects of unknown capabilities and receive ErrImmutable for immutable ones.
type Immutable struct {
	store

	*trait
}

// NewImmutable creates an immutable copy of data with optional configuration.
//
// Attributes are ordered by name, use Attributed.Freeze to keep insertion order.
func NewImmutable(data map[string]interface{}, cfg ...Config) *Immutable {
	config := Config{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	s := newStore(len(keys))
	for _, k := range keys {
		s.set(k, data[k])
	}

	return &Immutable{
		store: s,
		trait: newTrait("Immutable", config),
	}
}

// Get returns attribute value or def if attribute is missing.
func (o *Immutable) Get(name string, def interface{}) interface{} {
	return o.get(name, def)
}

// Item returns attribute value or def if attribute is missing.
func (o *Immutable) Item(name string, def interface{}) interface{} {
	return o.get(name, def)
}

// Lookup returns attribute value and true if it exists.
func (o *Immutable) Lookup(name string) (interface{}, bool) {
	return o.lookup(name)
}

// Has checks attribute existence.
func (o *Immutable) Has(name string) bool {
	_, ok := o.lookup(name)

	return ok
}

// Keys returns attribute names.
func (o *Immutable) Keys() []string {
	return o.copyKeys()
}

// Len returns number of attributes.
func (o *Immutable) Len() int {
	return len(o.data)
}

// ToMap returns a shallow copy of attributes without excluded names.
func (o *Immutable) ToMap(exclude ...string) map[string]interface{} {
	return o.toMap(exclude)
}

// String renders object as Name(k1=v1, k2=v2).
func (o *Immutable) String() string {
	return o.render(o.name)
}

// Walk walks attributes.
func (o *Immutable) Walk(walkFn func(name string, value interface{}) error) (int, error) {
	n := 0

	for _, k := range o.keys {
		if err := walkFn(k, o.data[k]); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}

// Thaw returns a mutable copy of attributes.
func (o *Immutable) Thaw(cfg ...Config) *Attributed {
	config := Config{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	a := newAttributed("Attributed", config)
	for _, k := range o.keys {
		a.set(k, o.data[k])
	}

	return a
}

func (o *Immutable) rejectMutation(ctx context.Context, op, name string) error {
	msg := fmt.Sprintf("cannot %s attribute %q in %s", op, name, o.name)

	if op == opDelete {
		o.log.Warn(ctx, msg, "name", o.name, "key", name)
	} else {
		o.log.Error(ctx, msg, "name", o.name, "key", name)
	}

	return keyError(ctx, ErrImmutable, msg, o.name, name)
}

const (
	opSet     = "set"
	opSetItem = "set item"
	opDelete  = "delete"
)

type mutationRejecter interface {
	rejectMutation(ctx context.Context, op, name string) error
}

func reject(ctx context.Context, r Reader, op, name string) error {
	if mr, ok := r.(mutationRejecter); ok {
		return mr.rejectMutation(ctx, op, name)
	}

	return fmt.Errorf("%w: %T can not %s attribute %q", ErrImmutable, r, op, name)
}

// Set inserts or overwrites attribute of an object if it implements Writer.
//
// ErrImmutable is returned for objects that do not implement Writer.
func Set(ctx context.Context, r Reader, name string, value interface{}) error {
	if w, ok := r.(Writer); ok {
		w.Set(name, value)

		return nil
	}

	return reject(ctx, r, opSet, name)
}

// SetItem is a map-style equivalent of Set.
func SetItem(ctx context.Context, r Reader, name string, value interface{}) error {
	if w, ok := r.(Writer); ok {
		w.Set(name, value)

		return nil
	}

	return reject(ctx, r, opSetItem, name)
}

// Delete removes attribute of an object if it implements Writer.
//
// ErrImmutable is returned for objects that do not implement Writer,
// ErrKeyNotFound is returned for missing attribute.
func Delete(ctx context.Context, r Reader, name string) error {
	if w, ok := r.(Writer); ok {
		return w.Delete(name)
	}

	return reject(ctx, r, opDelete, name)
}
