package httpapi

import (
	"sort"
	"sync"
)

type EventType string

const (
	NoticeServerError      EventType = "server_error"
	NoticePermissionDenied EventType = "permission_denied"
	NoticeRateLimited      EventType = "rate_limited"
	NoticeNetworkError     EventType = "network_error"

	// EventSessionExpired fires once credentials were cleared after a failed
	// refresh. Subscribers send the user back to login.
	EventSessionExpired EventType = "session_expired"
)

var noticeMessages = map[EventType]string{
	NoticeServerError:      "Server error. Please try again later.",
	NoticePermissionDenied: "You don't have permission to perform this action.",
	NoticeRateLimited:      "Too many requests. Please wait a moment and try again.",
	NoticeNetworkError:     "Network error. Please check your connection.",
	EventSessionExpired:    "Your session has expired. Please log in again.",
}

type Event struct {
	Type       EventType
	Message    string
	Method     string
	Path       string
	StatusCode int
	Err        error
}

type Handler func(Event)

type eventBus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
}

func newEventBus() *eventBus {
	return &eventBus{handlers: map[int]Handler{}}
}

func (b *eventBus) subscribe(handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers, id)
		})
	}
}

// emit calls handlers in subscription order, outside the lock.
func (b *eventBus) emit(event Event) {
	if event.Message == "" {
		event.Message = noticeMessages[event.Type]
	}

	b.mu.RLock()
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
