package object

import (
	"context"
	"fmt"
	"strings"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
)

// Reader reads attributes.
type Reader interface {
	// Get returns attribute value or def if attribute is missing.
	Get(name string, def interface{}) interface{}

	// Lookup returns attribute value and true if it exists.
	Lookup(name string) (interface{}, bool)

	// Has checks attribute existence.
	Has(name string) bool

	// Keys returns attribute names in insertion order.
	Keys() []string

	// ToMap returns a shallow copy of attributes without excluded names.
	ToMap(exclude ...string) map[string]interface{}

	// String renders object as Name(k1=v1, k2=v2).
	String() string
}

// Writer mutates attributes.
type Writer interface {
	// Set inserts or overwrites attribute.
	Set(name string, value interface{})

	// Delete removes attribute, ErrKeyNotFound is returned for missing attribute.
	Delete(name string) error
}

// ReadWriter reads and mutates attributes.
type ReadWriter interface {
	Reader
	Writer
}

// Walker calls function for every attribute and fails on first error returned by that function.
//
// Count of processed attributes is returned.
type Walker interface {
	Walk(func(name string, value interface{}) error) (int, error)
}

// Config controls object instance.
type Config struct {
	// Name is object name, used in rendering, logging and stats.
	// Defaults to a type tag, e.g. "Attributed".
	Name string `yaml:"name"`

	// Logger is an instance of contextualized logger, can be nil.
	Logger ctxd.Logger `yaml:"-"`

	// Stats is metrics collector, can be nil.
	Stats stats.Tracker `yaml:"-"`
}

type trait struct {
	name string
	log  ctxd.Logger
	stat stats.Tracker
}

func newTrait(typeTag string, cfg Config) *trait {
	t := &trait{
		name: cfg.Name,
		log:  cfg.Logger,
		stat: cfg.Stats,
	}

	if t.name == "" {
		t.name = typeTag
	}

	if t.log == nil {
		t.log = ctxd.NoOpLogger{}
	}

	if t.stat == nil {
		t.stat = stats.NoOp{}
	}

	t.log.Info(context.Background(), "initialized "+t.name, "name", t.name)

	return t
}

// Name returns object name.
func (t *trait) Name() string {
	return t.name
}

// store is an insertion ordered map, it is not synchronized.
type store struct {
	keys []string
	data map[string]interface{}
}

func newStore(capacity int) store {
	return store{
		keys: make([]string, 0, capacity),
		data: make(map[string]interface{}, capacity),
	}
}

func (s *store) lookup(name string) (interface{}, bool) {
	v, ok := s.data[name]

	return v, ok
}

func (s *store) get(name string, def interface{}) interface{} {
	if v, ok := s.data[name]; ok {
		return v
	}

	return def
}

func (s *store) set(name string, value interface{}) {
	if _, ok := s.data[name]; !ok {
		s.keys = append(s.keys, name)
	}

	s.data[name] = value
}

func (s *store) delete(name string) bool {
	if _, ok := s.data[name]; !ok {
		return false
	}

	delete(s.data, name)

	for i, k := range s.keys {
		if k == name {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)

			break
		}
	}

	return true
}

func (s *store) copyKeys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)

	return keys
}

func (s *store) toMap(exclude []string) map[string]interface{} {
	var skip map[string]struct{}

	if len(exclude) > 0 {
		skip = make(map[string]struct{}, len(exclude))
		for _, name := range exclude {
			skip[name] = struct{}{}
		}
	}

	res := make(map[string]interface{}, len(s.data))

	for k, v := range s.data {
		if _, found := skip[k]; found {
			continue
		}

		res[k] = v
	}

	return res
}

func (s *store) render(name string) string {
	b := strings.Builder{}

	b.WriteString(name)
	b.WriteByte('(')

	for i, k := range s.keys {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fmt.Sprintf("%v", s.data[k]))
	}

	b.WriteByte(')')

	return b.String()
}
