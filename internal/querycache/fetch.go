package querycache

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/insightly-cli/internal/logging"
)

type retryPolicy struct {
	attempts  int
	backoff   time.Duration
	retryable func(error) bool
}

// Fetch returns fresh cached data for key, joins an in-flight read of key,
// or runs fn. A result is committed only if nothing wrote or cancelled key
// since the read started.
func Fetch[T any](ctx context.Context, c *Cache, key Key, staleTime time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	c.mu.Lock()
	e := c.entryLocked(key)

	if e.present && !c.staleLocked(e, staleTime) {
		value := e.value
		c.stats.Hits++
		c.mu.Unlock()
		return cast[T](key, value)
	}

	if fetch := e.inflight; fetch != nil {
		c.stats.Joined++
		c.mu.Unlock()
		return wait[T](ctx, key, fetch)
	}

	c.stats.Misses++
	fetchCtx, cancel := context.WithCancel(ctx)
	fetch := &call{done: make(chan struct{}), cancel: cancel, generation: e.generation}
	e.inflight = fetch
	c.mu.Unlock()

	value, err := retryRead(fetchCtx, c.retry, key, fn)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if fetch.settled {
		// cancelled while in flight
		return zero, fetch.err
	}

	current, exists := c.entries[key]
	if exists && current.inflight == fetch {
		current.inflight = nil
	}

	if err != nil {
		fetch.settle(nil, err)
		return zero, err
	}

	if exists && current == e && current.generation == fetch.generation {
		c.storeLocked(current, value)
	} else {
		c.stats.Discarded++
		logging.Debug().Str("key", string(key)).Msg("discarding read for superseded cache entry")
	}

	fetch.settle(value, nil)
	return value, nil
}

// Value returns the cached value of key as T.
func Value[T any](c *Cache, key Key) (T, bool) {
	raw, ok := c.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	value, ok := raw.(T)
	return value, ok
}

func wait[T any](ctx context.Context, key Key, fetch *call) (T, error) {
	var zero T
	select {
	case <-fetch.done:
		if fetch.err != nil {
			return zero, fetch.err
		}
		return cast[T](key, fetch.value)
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func cast[T any](key Key, raw any) (T, error) {
	value, ok := raw.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache key %s holds %T", key, raw)
	}
	return value, nil
}

func retryRead[T any](ctx context.Context, policy retryPolicy, key Key, fn func(context.Context) (T, error)) (T, error) {
	value, err := fn(ctx)
	for attempt := 1; err != nil && attempt <= policy.attempts; attempt++ {
		if policy.retryable == nil || !policy.retryable(err) || ctx.Err() != nil {
			break
		}

		delay := policy.backoff << (attempt - 1)
		logging.Debug().Str("key", string(key)).Int("attempt", attempt).Dur("delay", delay).Err(err).Msg("retrying read")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return value, ctx.Err()
		case <-timer.C:
		}

		value, err = fn(ctx)
	}
	return value, err
}
