// Package bus is a small synchronous pub/sub event bus. Widgets republish
// engine notifications here so application code can observe any widget from
// one place. Delivery happens on the publisher's goroutine; handlers must not
// block.
package bus

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topic names an event stream, e.g. "listbox.selected". The wildcard "*"
// subscribes to every topic.
type Topic string

const Wildcard Topic = "*"

// Event is the envelope delivered to handlers.
type Event struct {
	ID      string
	Topic   Topic
	Payload any
	Time    time.Time
}

// Handler receives published events.
type Handler func(Event)

// Subscription identifies one registered handler.
type Subscription string

type entry struct {
	id      Subscription
	topic   Topic
	handler Handler
}

// Bus fans published events out to matching subscribers, in subscription
// order.
type Bus struct {
	mu      sync.Mutex
	entries []entry
}

func New() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for topic (or every topic via Wildcard) and
// returns a Subscription usable with Unsubscribe.
func (b *Bus) Subscribe(topic Topic, h Handler) Subscription {
	if h == nil {
		return ""
	}
	id := Subscription(uuid.NewString())
	b.mu.Lock()
	b.entries = append(b.entries, entry{id: id, topic: topic, handler: h})
	b.mu.Unlock()
	return id
}

// Unsubscribe removes a previously registered handler. Unknown subscriptions
// are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.entries {
		if e.id == sub {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// Publish delivers payload to every subscriber of topic (and wildcard
// subscribers) before returning.
func (b *Bus) Publish(topic Topic, payload any) Event {
	ev := Event{
		ID:      uuid.NewString(),
		Topic:   topic,
		Payload: payload,
		Time:    time.Now(),
	}
	b.mu.Lock()
	matched := make([]Handler, 0, len(b.entries))
	for _, e := range b.entries {
		if e.topic == topic || e.topic == Wildcard {
			matched = append(matched, e.handler)
		}
	}
	b.mu.Unlock()

	for _, h := range matched {
		h(ev)
	}
	return ev
}
