package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls this far behind starts losing events rather than blocking
// publishers.
const subscriberBuffer = 64

// Bus is an in-process publish/subscribe event bus. Publishing never
// blocks; slow subscribers drop events.
type Bus struct {
	mu       sync.RWMutex
	channels map[string]map[string]chan Event
}

// NewBus creates a new Bus
func NewBus() *Bus {
	return &Bus{
		channels: make(map[string]map[string]chan Event),
	}
}

// Publish delivers the event to the channel's subscribers and to the
// AllChannel subscribers. The sends happen under the read lock: a cancel
// closes its channel under the write lock, so a channel observed here
// cannot be closed mid-send. The select/default keeps the sends
// non-blocking, so holding the lock is cheap.
func (b *Bus) Publish(channel string, event Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.channels[channel] {
		b.deliver(ch, channel, event)
	}
	if channel != AllChannel {
		for _, ch := range b.channels[AllChannel] {
			b.deliver(ch, channel, event)
		}
	}
}

func (b *Bus) deliver(ch chan Event, channel string, event Event) {
	select {
	case ch <- event:
	default:
		slog.Warn("Dropping event for slow subscriber",
			"channel", channel, "event_type", event.Type)
	}
}

// Subscribe registers a subscriber on a channel. The returned cancel
// function removes the subscription and closes the channel.
func (b *Bus) Subscribe(channel string) (<-chan Event, func()) {
	id := uuid.New().String()
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	if _, exists := b.channels[channel]; !exists {
		b.channels[channel] = make(map[string]chan Event)
	}
	b.channels[channel][id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if subs, exists := b.channels[channel]; exists {
			if _, ok := subs[id]; ok {
				delete(subs, id)
				close(ch)
			}
			if len(subs) == 0 {
				delete(b.channels, channel)
			}
		}
	}
	return ch, cancel
}

// SubscriberCount returns the number of subscribers on a channel.
func (b *Bus) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.channels[channel])
}
