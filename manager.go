package object

import (
	"context"
	"sync"
	"time"

	pca "github.com/patrickmn/go-cache"
)

// DefaultTimeLimit is a default time limit of Manager cache.
const DefaultTimeLimit = 300 * time.Second

// ZeroTimeLimit is a time limit value to make Manager cache stale as soon as any time passes.
const ZeroTimeLimit = time.Duration(-1)

// ManagerConfig controls manager instance.
type ManagerConfig struct {
	Config `yaml:",inline"`

	// TimeLimit is duration of cache freshness since last flush, default 5m.
	// Use ZeroTimeLimit for zero duration.
	TimeLimit time.Duration `yaml:"time_limit"`

	// Now returns current time, default time.Now.
	Now func() time.Time `yaml:"-"`
}

// Manager is an object with time-limited cache.
//
// Cache entries are not expired individually, whole cache is dropped by Flush
// when it is forced or when time limit has passed since previous flush.
// Call Flush(ctx, false) before accessing cache to have it expired automatically.
//
// Please use NewManager to create instance.
type Manager struct {
	mu        sync.Mutex
	data      *pca.Cache
	timeLimit time.Duration
	lastFlush time.Time
	now       func() time.Time

	attrs *Attributed

	*trait
}

// NewManager creates an instance of manager with optional configuration.
func NewManager(cfg ...ManagerConfig) *Manager {
	config := ManagerConfig{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	if config.TimeLimit == 0 {
		config.TimeLimit = DefaultTimeLimit
	}

	if config.TimeLimit < 0 {
		config.TimeLimit = 0
	}

	if config.Now == nil {
		config.Now = time.Now
	}

	m := &Manager{
		data:      pca.New(pca.NoExpiration, 0),
		timeLimit: config.TimeLimit,
		now:       config.Now,
		trait:     newTrait("Manager", config.Config),
	}

	m.lastFlush = m.now()
	m.attrs = &Attributed{
		store: newStore(8),
		trait: m.trait,
	}

	return m
}

// Attributes returns attributes of the manager itself.
func (m *Manager) Attributes() *Attributed {
	return m.attrs
}

// TimeLimit returns duration of cache freshness.
func (m *Manager) TimeLimit() time.Duration {
	return m.timeLimit
}

// LastFlush returns time of the most recent flush or creation time.
func (m *Manager) LastFlush() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastFlush
}

// Stale checks if time limit has passed since last flush.
func (m *Manager) Stale() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stale()
}

func (m *Manager) stale() bool {
	return m.now().Sub(m.lastFlush) > m.timeLimit
}

// Put adds value to cache.
func (m *Manager) Put(ctx context.Context, key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data.Set(key, value, pca.NoExpiration)

	m.log.Info(ctx, "added to cache", "name", m.name, "key", key)
	m.stat.Add(ctx, MetricPut, 1, "name", m.name)
}

// Update replaces value in cache, missing value is added.
func (m *Manager) Update(ctx context.Context, key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data.Set(key, value, pca.NoExpiration)

	m.log.Info(ctx, "updated in cache", "name", m.name, "key", key)
	m.stat.Add(ctx, MetricUpdate, 1, "name", m.name)
}

// Get returns cached value or ErrKeyNotFound.
func (m *Manager) Get(ctx context.Context, key string) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, found := m.data.Get(key)
	if SkipRead(ctx) {
		found = false
	}

	if !found {
		m.log.Debug(ctx, "cache miss", "name", m.name, "key", key)
		m.stat.Add(ctx, MetricMiss, 1, "name", m.name)

		return nil, keyError(ctx, ErrKeyNotFound, "failed to get from cache", m.name, key)
	}

	m.log.Debug(ctx, "cache hit", "name", m.name, "key", key)
	m.stat.Add(ctx, MetricHit, 1, "name", m.name)

	return v, nil
}

// Has checks if key is in cache.
func (m *Manager) Has(ctx context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, found := m.data.Get(key)

	m.log.Debug(ctx, "checked cache", "name", m.name, "key", key, "found", found)

	return found
}

// Remove deletes value from cache or returns ErrKeyNotFound.
func (m *Manager) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, found := m.data.Get(key); !found {
		return keyError(ctx, ErrKeyNotFound, "failed to remove from cache", m.name, key)
	}

	m.data.Delete(key)

	m.log.Info(ctx, "removed from cache", "name", m.name, "key", key)
	m.stat.Add(ctx, MetricRemove, 1, "name", m.name)

	return nil
}

// Flush drops all cached values if force is true or if cache is stale.
//
// Flush returns true if cache was dropped.
func (m *Manager) Flush(ctx context.Context, force bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !force && !m.stale() {
		return false
	}

	dropped := m.data.ItemCount()

	m.data.Flush()
	m.lastFlush = m.now()

	m.log.Info(ctx, "flushed cache", "name", m.name, "forced", force, "dropped", dropped)
	m.stat.Add(ctx, MetricFlush, 1, "name", m.name)
	m.stat.Set(ctx, MetricItems, 0, "name", m.name)

	return true
}

// FlushFunc returns a function that forces cache flush, it can be used as Invalidator callback.
func (m *Manager) FlushFunc(ctx context.Context) func() {
	return func() {
		m.Flush(ctx, true)
	}
}

// Len returns number of cached values.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.data.ItemCount()
}

// Snapshot returns a shallow copy of cache.
func (m *Manager) Snapshot() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.data.Items()
	res := make(map[string]interface{}, len(items))

	for k, i := range items {
		res[k] = i.Object
	}

	return res
}

// String renders manager attributes as Name(k1=v1, k2=v2).
func (m *Manager) String() string {
	return m.attrs.String()
}
