package engine

import (
	"sort"
	"sync"
	"time"
)

// Deduplicator drops duplicate tool-result submissions. Browser retries and
// reconnecting gateways can deliver the same (session, call) pair twice;
// only the first within the TTL is processed.
type Deduplicator struct {
	mu         sync.Mutex
	entries    map[string]time.Time
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewDeduplicator creates a new Deduplicator. Non-positive arguments fall
// back to 60s TTL and 10000 entries.
func NewDeduplicator(ttl time.Duration, maxEntries int) *Deduplicator {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	if maxEntries <= 0 {
		maxEntries = 10000
	}
	return &Deduplicator{
		entries:    make(map[string]time.Time),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Seen records the (session, call) pair and reports whether it was already
// seen within the TTL.
func (d *Deduplicator) Seen(sessionID, callID string) bool {
	key := sessionID + "\x00" + callID
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.evictExpired(now)

	if at, exists := d.entries[key]; exists && now.Sub(at) < d.ttl {
		return true
	}

	if len(d.entries) >= d.maxEntries {
		d.purgeOldest()
	}
	d.entries[key] = now
	return false
}

// Len returns the current entry count.
func (d *Deduplicator) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

func (d *Deduplicator) evictExpired(now time.Time) {
	for key, at := range d.entries {
		if now.Sub(at) >= d.ttl {
			delete(d.entries, key)
		}
	}
}

// purgeOldest removes the oldest 20% of entries to make room.
func (d *Deduplicator) purgeOldest() {
	type entry struct {
		key string
		at  time.Time
	}
	all := make([]entry, 0, len(d.entries))
	for key, at := range d.entries {
		all = append(all, entry{key, at})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].at.Before(all[j].at) })

	n := len(all) / 5
	if n == 0 {
		n = 1
	}
	for _, e := range all[:n] {
		delete(d.entries, e.key)
	}
}
