// Package querycache holds server reads keyed by hierarchical keys with
// staleness, family invalidation and read cancellation.
package querycache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/insightly-cli/internal/logging"
	"github.com/bnema/insightly-cli/internal/ports"
)

// ErrCanceled is returned to readers whose fetch was cancelled through
// Cancel, Remove or Clear.
var ErrCanceled = errors.New("query canceled")

type entry struct {
	value      any
	present    bool
	updatedAt  time.Time
	invalid    bool
	generation uint64
	inflight   *call
}

type call struct {
	done       chan struct{}
	cancel     context.CancelFunc
	generation uint64
	settled    bool
	value      any
	err        error
}

// Snapshot is the state of one key captured before an optimistic write.
type Snapshot struct {
	Key       Key
	Value     any
	Present   bool
	UpdatedAt time.Time
}

type Stats struct {
	Hits      int64
	Misses    int64
	Joined    int64
	Discarded int64
}

type Option func(*Cache)

func WithClock(clock ports.Clock) Option {
	return func(c *Cache) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithRetry retries failed reads up to attempts extra times while retryable
// accepts the error.
func WithRetry(attempts int, backoff time.Duration, retryable func(error) bool) Option {
	return func(c *Cache) {
		c.retry = retryPolicy{attempts: attempts, backoff: backoff, retryable: retryable}
	}
}

type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	clock   ports.Clock
	retry   retryPolicy
	stats   Stats
}

func New(opts ...Option) *Cache {
	c := &Cache{
		entries: map[Key]*entry{},
		clock:   ports.SystemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) entryLocked(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

func (c *Cache) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.present {
		return nil, false
	}
	return e.value, true
}

// Set stores value as fresh data for key. An in-flight read of key will not
// overwrite it.
func (c *Cache) Set(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entryLocked(key)
	c.storeLocked(e, value)
}

func (c *Cache) storeLocked(e *entry, value any) {
	e.value = value
	e.present = true
	e.invalid = false
	e.updatedAt = c.clock.Now()
	e.generation++
}

// Update replaces the value of key with fn(old). fn only runs when key holds
// data and its result is stored only when ok is true.
func (c *Cache) Update(key Key, fn func(old any) (any, bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.entries[key]
	if !exists || !e.present {
		return false
	}

	next, ok := fn(e.value)
	if !ok {
		return false
	}
	e.value = next
	e.generation++
	return true
}

func (c *Cache) Snapshot(key Key) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := Snapshot{Key: key}
	if e, ok := c.entries[key]; ok && e.present {
		snapshot.Value = e.value
		snapshot.Present = true
		snapshot.UpdatedAt = e.updatedAt
	}
	return snapshot
}

// Restore puts back the value captured by snapshot. A snapshot of an empty
// key restores nothing.
func (c *Cache) Restore(snapshot Snapshot) bool {
	if !snapshot.Present {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entryLocked(snapshot.Key)
	e.value = snapshot.Value
	e.present = true
	e.updatedAt = snapshot.UpdatedAt
	e.generation++
	return true
}

// Invalidate marks prefix and every key below it stale. Data stays readable
// until the next fetch replaces it.
func (c *Cache) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key, e := range c.entries {
		if key.Within(prefix) && e.present {
			e.invalid = true
			count++
		}
	}
	logging.Debug().Str("prefix", string(prefix)).Int("keys", count).Msg("cache invalidated")
	return count
}

// Cancel aborts in-flight reads of prefix and every key below it. Readers get
// ErrCanceled and nothing they fetched is committed.
func (c *Cache) Cancel(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key, e := range c.entries {
		if !key.Within(prefix) {
			continue
		}
		e.generation++
		if e.inflight != nil {
			c.cancelLocked(e)
			count++
		}
	}
	return count
}

func (c *Cache) cancelLocked(e *entry) {
	fetch := e.inflight
	e.inflight = nil
	fetch.cancel()
	fetch.settle(nil, ErrCanceled)
}

// Remove drops prefix and every key below it.
func (c *Cache) Remove(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key, e := range c.entries {
		if !key.Within(prefix) {
			continue
		}
		if e.inflight != nil {
			c.cancelLocked(e)
		}
		delete(c.entries, key)
		count++
	}
	return count
}

func (c *Cache) Clear() {
	c.Remove("")
}

// IsStale reports whether key has no data, was invalidated, or is older
// than staleTime.
func (c *Cache) IsStale(key Key, staleTime time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return true
	}
	return c.staleLocked(e, staleTime)
}

func (c *Cache) staleLocked(e *entry, staleTime time.Duration) bool {
	if !e.present || e.invalid {
		return true
	}
	return c.clock.Now().Sub(e.updatedAt) >= staleTime
}

func (c *Cache) Fetching(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	return ok && e.inflight != nil
}

func (c *Cache) Keys() []Key {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]Key, 0, len(c.entries))
	for key, e := range c.entries {
		if e.present {
			keys = append(keys, key)
		}
	}
	return keys
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// settle must be called with the cache lock held.
func (f *call) settle(value any, err error) {
	if f.settled {
		return
	}
	f.settled = true
	f.value = value
	f.err = err
	close(f.done)
}
