// Package notifications collects user-facing messages raised while a command
// runs, including the notices published by the API gateway.
package notifications

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/insightly-cli/internal/adapters/httpapi"
	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/ports"
)

const DefaultLimit = 50

type Center struct {
	mu    sync.Mutex
	items []domain.Notification
	limit int
	clock ports.Clock
	newID func() string
}

type Option func(*Center)

func WithClock(clock ports.Clock) Option {
	return func(c *Center) {
		c.clock = clock
	}
}

// WithLimit bounds the history; the oldest entries are dropped first.
func WithLimit(limit int) Option {
	return func(c *Center) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

func NewCenter(opts ...Option) *Center {
	c := &Center{
		limit: DefaultLimit,
		clock: ports.SystemClock{},
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Center) Add(kind domain.NotificationKind, message string) domain.Notification {
	notification := domain.Notification{
		ID:        c.newID(),
		Kind:      kind,
		Message:   strings.TrimSpace(message),
		Timestamp: c.clock.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, notification)
	if overflow := len(c.items) - c.limit; overflow > 0 {
		c.items = append([]domain.Notification(nil), c.items[overflow:]...)
	}
	return notification
}

func (c *Center) Success(message string) domain.Notification {
	return c.Add(domain.NotificationSuccess, message)
}

func (c *Center) Error(message string) domain.Notification {
	return c.Add(domain.NotificationError, message)
}

func (c *Center) Warning(message string) domain.Notification {
	return c.Add(domain.NotificationWarning, message)
}

func (c *Center) Info(message string) domain.Notification {
	return c.Add(domain.NotificationInfo, message)
}

// List returns notifications oldest first.
func (c *Center) List() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Notification(nil), c.items...)
}

func (c *Center) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Drain returns the pending notifications and empties the center. Repeats of
// the same kind and message collapse into the first one, so a read retried
// against a failing server reports once.
func (c *Center) Drain() []domain.Notification {
	c.mu.Lock()
	items := c.items
	c.items = nil
	c.mu.Unlock()

	type seenKey struct {
		kind    domain.NotificationKind
		message string
	}
	seen := make(map[seenKey]struct{}, len(items))
	drained := items[:0]
	for _, item := range items {
		key := seenKey{kind: item.Kind, message: item.Message}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		drained = append(drained, item)
	}
	if len(drained) == 0 {
		return nil
	}
	return drained
}

// HandleEvent turns gateway events into notifications. It is meant to be
// passed to httpapi.Client.Subscribe.
func (c *Center) HandleEvent(event httpapi.Event) {
	switch event.Type {
	case httpapi.NoticeServerError, httpapi.NoticePermissionDenied, httpapi.NoticeNetworkError:
		c.Error(event.Message)
	case httpapi.NoticeRateLimited, httpapi.EventSessionExpired:
		c.Warning(event.Message)
	}
}
