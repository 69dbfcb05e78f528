package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicatorFirstSubmissionPasses(t *testing.T) {
	d := NewDeduplicator(time.Minute, 100)

	assert.False(t, d.Seen("s1", "call-1"))
	assert.True(t, d.Seen("s1", "call-1"))
}

func TestDeduplicatorScopedBySession(t *testing.T) {
	d := NewDeduplicator(time.Minute, 100)

	assert.False(t, d.Seen("s1", "call-1"))
	assert.False(t, d.Seen("s2", "call-1"))
}

func TestDeduplicatorExpiry(t *testing.T) {
	d := NewDeduplicator(time.Minute, 100)
	now := time.Now()
	d.now = func() time.Time { return now }

	assert.False(t, d.Seen("s1", "call-1"))

	now = now.Add(59 * time.Second)
	assert.True(t, d.Seen("s1", "call-1"))

	now = now.Add(2 * time.Second)
	assert.False(t, d.Seen("s1", "call-1"))
}

func TestDeduplicatorPurgesOldestWhenFull(t *testing.T) {
	d := NewDeduplicator(time.Hour, 10)
	now := time.Now()
	d.now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		now = now.Add(time.Second)
		assert.False(t, d.Seen("s1", fmt.Sprintf("call-%d", i)))
	}
	assert.Equal(t, 10, d.Len())

	// The next insert purges the oldest 20%.
	now = now.Add(time.Second)
	assert.False(t, d.Seen("s1", "call-10"))
	assert.Equal(t, 9, d.Len())

	// The oldest entries were purged, so they are fresh again.
	assert.False(t, d.Seen("s1", "call-0"))
	assert.True(t, d.Seen("s1", "call-9"))
}
