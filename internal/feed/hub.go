package feed

import (
	"sync"
)

// Hub is the in-process Broker used by the server: repositories publish
// after successful writes, and the websocket bridge plus any in-process
// consoles subscribe. Dispatch is synchronous per subscriber.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*hubSubscription
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[int]*hubSubscription),
	}
}

type hubSubscription struct {
	hub        *Hub
	id         int
	collection string
	mask       EventType
	handler    Handler
	once       sync.Once
}

func (s *hubSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		s.hub.mu.Unlock()
	})
}

func (h *Hub) Subscribe(collection string, mask EventType, handler Handler) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &hubSubscription{
		hub:        h,
		id:         h.nextID,
		collection: collection,
		mask:       mask,
		handler:    handler,
	}
	h.subs[sub.id] = sub

	return sub
}

func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	matched := make([]Handler, 0, len(h.subs))
	for _, sub := range h.subs {
		if event.Matches(sub.collection, sub.mask) {
			matched = append(matched, sub.handler)
		}
	}
	h.mu.RUnlock()

	for _, handler := range matched {
		handler(event)
	}
}
