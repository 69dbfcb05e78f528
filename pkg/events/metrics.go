package events

import (
	"sync"
	"time"
)

// TransactionStats aggregates unit-of-work timings for one label.
type TransactionStats struct {
	Count       int64 `json:"count"`
	Rollbacks   int64 `json:"rollbacks"`
	SlowCount   int64 `json:"slow_count"`
	TotalTimeMS int64 `json:"total_time_ms"`
	MaxTimeMS   int64 `json:"max_time_ms"`

	total time.Duration
}

// MetricsSnapshot is a point-in-time copy of collected metrics.
type MetricsSnapshot struct {
	StartedAt    time.Time                   `json:"started_at"`
	UptimeSec    int64                       `json:"uptime_sec"`
	EventCounts  map[string]int64            `json:"event_counts"`
	Transactions map[string]TransactionStats `json:"transactions"`
}

// MetricsCollector accumulates in-memory runtime metrics: domain event
// counts and transaction timings. It implements the unit-of-work's
// TransactionObserver.
type MetricsCollector struct {
	mu           sync.Mutex
	startedAt    time.Time
	eventCounts  map[string]int64
	transactions map[string]*TransactionStats

	slowThreshold time.Duration
}

// NewMetricsCollector creates a new MetricsCollector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		startedAt:     time.Now(),
		eventCounts:   make(map[string]int64),
		transactions:  make(map[string]*TransactionStats),
		slowThreshold: 100 * time.Millisecond,
	}
}

// Attach subscribes the collector to every event on the bus. The returned
// cancel function detaches it.
func (c *MetricsCollector) Attach(bus *Bus) func() {
	ch, cancel := bus.Subscribe(AllChannel)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range ch {
			c.mu.Lock()
			c.eventCounts[event.Type]++
			c.mu.Unlock()
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

// ObserveTransaction records one unit-of-work execution.
func (c *MetricsCollector) ObserveTransaction(label string, duration time.Duration, committed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, exists := c.transactions[label]
	if !exists {
		stats = &TransactionStats{}
		c.transactions[label] = stats
	}
	stats.Count++
	if !committed {
		stats.Rollbacks++
	}
	if duration > c.slowThreshold {
		stats.SlowCount++
	}
	stats.total += duration
	stats.TotalTimeMS = stats.total.Milliseconds()
	if ms := duration.Milliseconds(); ms > stats.MaxTimeMS {
		stats.MaxTimeMS = ms
	}
}

// Snapshot returns a copy of the current metrics.
func (c *MetricsCollector) Snapshot() MetricsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := MetricsSnapshot{
		StartedAt:    c.startedAt,
		UptimeSec:    int64(time.Since(c.startedAt).Seconds()),
		EventCounts:  make(map[string]int64, len(c.eventCounts)),
		Transactions: make(map[string]TransactionStats, len(c.transactions)),
	}
	for k, v := range c.eventCounts {
		snap.EventCounts[k] = v
	}
	for k, v := range c.transactions {
		snap.Transactions[k] = *v
	}
	return snap
}
