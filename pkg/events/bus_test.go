package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestPublishReachesChannelSubscribers(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(SessionChannel("s1"))
	defer cancel()

	bus.Publish(SessionChannel("s1"), Event{Type: EventTypePlanCreated, SessionID: "s1"})

	event := receive(t, ch)
	assert.Equal(t, EventTypePlanCreated, event.Type)
	assert.Equal(t, "s1", event.SessionID)
	assert.False(t, event.At.IsZero())
}

func TestPublishDoesNotCrossSessions(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(SessionChannel("s2"))
	defer cancel()

	bus.Publish(SessionChannel("s1"), Event{Type: EventTypePlanCreated, SessionID: "s1"})

	select {
	case event := <-ch:
		t.Fatalf("unexpected event: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAllChannelReceivesEverything(t *testing.T) {
	bus := NewBus()
	all, cancel := bus.Subscribe(AllChannel)
	defer cancel()

	bus.Publish(SessionChannel("s1"), Event{Type: EventTypePlanCreated, SessionID: "s1"})
	bus.Publish(SessionChannel("s2"), Event{Type: EventTypeStateTransition, SessionID: "s2"})

	assert.Equal(t, EventTypePlanCreated, receive(t, all).Type)
	assert.Equal(t, EventTypeStateTransition, receive(t, all).Type)
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe(SessionChannel("s1"))
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer+10; i++ {
			bus.Publish(SessionChannel("s1"), Event{Type: EventTypeMessageProcessed, SessionID: "s1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestCancelRemovesSubscription(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(SessionChannel("s1"))
	require.Equal(t, 1, bus.SubscriberCount(SessionChannel("s1")))

	cancel()
	assert.Equal(t, 0, bus.SubscriberCount(SessionChannel("s1")))

	// The channel is closed.
	_, open := <-ch
	assert.False(t, open)

	// Cancel is idempotent.
	cancel()
}

func TestPublishSurvivesConcurrentCancel(t *testing.T) {
	bus := NewBus()

	// Persistent subscribers keep publishers iterating while other
	// subscriptions churn. A publisher must never send on a channel a
	// concurrent cancel has closed.
	for i := 0; i < 50; i++ {
		_, cancel := bus.Subscribe(SessionChannel("s1"))
		defer cancel()
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					bus.Publish(SessionChannel("s1"), Event{Type: EventTypeMessageProcessed, SessionID: "s1"})
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		_, cancel := bus.Subscribe(SessionChannel("s1"))
		cancel()
	}

	close(done)
	wg.Wait()
}

func TestMetricsCollectorCountsEvents(t *testing.T) {
	bus := NewBus()
	collector := NewMetricsCollector()
	detach := collector.Attach(bus)

	bus.Publish(SessionChannel("s1"), Event{Type: EventTypePlanCreated, SessionID: "s1"})
	bus.Publish(SessionChannel("s1"), Event{Type: EventTypePlanCreated, SessionID: "s1"})
	bus.Publish(SessionChannel("s2"), Event{Type: EventTypeApprovalResolved, SessionID: "s2"})

	// Detach drains the subscription before returning.
	detach()

	snap := collector.Snapshot()
	assert.Equal(t, int64(2), snap.EventCounts[EventTypePlanCreated])
	assert.Equal(t, int64(1), snap.EventCounts[EventTypeApprovalResolved])
}

func TestObserveTransaction(t *testing.T) {
	collector := NewMetricsCollector()

	collector.ObserveTransaction("append_message", 20*time.Millisecond, true)
	collector.ObserveTransaction("append_message", 150*time.Millisecond, true)
	collector.ObserveTransaction("append_message", 5*time.Millisecond, false)

	stats := collector.Snapshot().Transactions["append_message"]
	assert.Equal(t, int64(3), stats.Count)
	assert.Equal(t, int64(1), stats.Rollbacks)
	assert.Equal(t, int64(1), stats.SlowCount)
	assert.Equal(t, int64(150), stats.MaxTimeMS)
	assert.Equal(t, int64(175), stats.TotalTimeMS)
}
