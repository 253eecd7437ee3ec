package nav

import (
	"sort"
	"sync"
)

// EventType identifies a document-level UI event.
type EventType string

const (
	// EventPointerDown fires for every pointer press anywhere in the document.
	EventPointerDown EventType = "pointerdown"
)

// Event is delivered to subscribers of a Bus.
type Event struct {
	Type EventType
	// Inside reports whether the pointer landed within the navigation root.
	Inside bool
}

// Handler handles a single event.
type Handler func(Event)

// Bus is a synchronous, per-session event dispatcher standing in for the
// document. Handlers run on the publisher's goroutine, one at a time.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[EventType]map[int]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType]map[int]Handler)}
}

// Subscribe registers handler for eventType and returns a function that
// removes it again. Calling the returned function more than once is a no-op.
func (b *Bus) Subscribe(eventType EventType, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[int]Handler)
	}
	b.handlers[eventType][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[eventType], id)
	}
}

// Publish delivers ev to every handler subscribed to its type, in
// subscription order.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	subs := b.handlers[ev.Type]
	ids := make([]int, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	handlers := make([]Handler, 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		handlers = append(handlers, subs[id])
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Subscribers returns the number of live handlers for eventType.
func (b *Bus) Subscribers(eventType EventType) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[eventType])
}
