// Package events fans catalog change notifications out to subscribers.
// The catalog service publishes; the WebSocket stream and the metrics
// collector subscribe.
package events

import (
	"sync"

	"github.com/pkordes/whattoeat/internal/domain"
)

// Handler receives one published event. Handlers run synchronously on the
// publishing goroutine and must not block.
type Handler func(domain.Event)

// Broker is a callback list. The zero value is not usable; use NewBroker.
type Broker struct {
	mu   sync.RWMutex
	next uint64
	subs map[uint64]Handler
}

// NewBroker constructs an empty Broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[uint64]Handler)}
}

// Subscribe registers h and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (b *Broker) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers e to every current subscriber.
func (b *Broker) Publish(e domain.Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

// Len returns the number of current subscribers.
func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
