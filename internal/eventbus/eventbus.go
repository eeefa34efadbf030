// Package eventbus is an in-process publish/subscribe channel keyed by event
// type. It keeps no history: an event reaches only the subscribers that are
// registered when it is published.
package eventbus

import (
	"reflect"
	"sync"

	"github.com/gabapcia/walletcore/internal/pkg/types"

	"github.com/google/uuid"
)

// SubscriberID identifies one subscriber across all of its registrations.
type SubscriberID string

// NewSubscriberID returns a random subscriber id.
func NewSubscriberID() SubscriberID {
	return SubscriberID(uuid.NewString())
}

// Bus is safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]map[SubscriberID]func(any)
	subs     map[SubscriberID]types.Set[reflect.Type]
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{
		handlers: make(map[reflect.Type]map[SubscriberID]func(any)),
		subs:     make(map[SubscriberID]types.Set[reflect.Type]),
	}
}

// Subscribe registers handler for events of type T under id. A second
// registration of the same id and type replaces the first.
func Subscribe[T any](b *Bus, id SubscriberID, handler func(T)) {
	t := reflect.TypeFor[T]()

	b.mu.Lock()
	defer b.mu.Unlock()

	byID, ok := b.handlers[t]
	if !ok {
		byID = make(map[SubscriberID]func(any))
		b.handlers[t] = byID
	}
	byID[id] = func(e any) { handler(e.(T)) }

	set, ok := b.subs[id]
	if !ok {
		set = types.NewSet[reflect.Type]()
		b.subs[id] = set
	}
	set.Add(t)
}

// Unsubscribe removes every registration of id at once.
func (b *Bus) Unsubscribe(id SubscriberID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for t := range b.subs[id].All() {
		delete(b.handlers[t], id)
		if len(b.handlers[t]) == 0 {
			delete(b.handlers, t)
		}
	}
	delete(b.subs, id)
}

// Publish delivers event synchronously to the handlers registered for its
// dynamic type. Handlers run without the bus lock held, so they may
// subscribe, unsubscribe or publish. A nil Bus drops the event.
func (b *Bus) Publish(event any) {
	if b == nil {
		return
	}

	b.mu.RLock()
	byID := b.handlers[reflect.TypeOf(event)]
	targets := make([]func(any), 0, len(byID))
	for _, h := range byID {
		targets = append(targets, h)
	}
	b.mu.RUnlock()

	for _, h := range targets {
		h(event)
	}
}

// SubscriberCount returns how many subscribers are registered for T.
func SubscriberCount[T any](b *Bus) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[reflect.TypeFor[T]()])
}
