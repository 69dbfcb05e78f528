package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAcquireRejectsConcurrentMessage(t *testing.T) {
	m := NewLockManager()

	release, ok := m.TryAcquire("s1")
	require.True(t, ok)

	_, ok = m.TryAcquire("s1")
	assert.False(t, ok)

	release()
	release, ok = m.TryAcquire("s1")
	assert.True(t, ok)
	release()
}

func TestLocksAreIndependentPerSession(t *testing.T) {
	m := NewLockManager()

	release1, ok := m.TryAcquire("s1")
	require.True(t, ok)
	defer release1()

	release2, ok := m.TryAcquire("s2")
	assert.True(t, ok)
	release2()
}

func TestCancelAbortsActiveStream(t *testing.T) {
	m := NewLockManager()

	release, ok := m.TryAcquire("s1")
	require.True(t, ok)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	m.SetCancel("s1", cancel)

	assert.True(t, m.Cancel("s1"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	// The cancel function is consumed.
	assert.False(t, m.Cancel("s1"))
}

func TestCancelWithoutActiveStream(t *testing.T) {
	m := NewLockManager()
	assert.False(t, m.Cancel("unknown"))

	release, ok := m.TryAcquire("s1")
	require.True(t, ok)
	release()
	assert.False(t, m.Cancel("s1"))
}

func TestReleaseClearsCancel(t *testing.T) {
	m := NewLockManager()

	release, ok := m.TryAcquire("s1")
	require.True(t, ok)

	_, cancel := context.WithCancel(context.Background())
	m.SetCancel("s1", cancel)
	release()

	assert.False(t, m.Cancel("s1"))
}

func TestForgetDropsState(t *testing.T) {
	m := NewLockManager()

	release, ok := m.TryAcquire("s1")
	require.True(t, ok)
	release()

	m.Forget("s1")

	release, ok = m.TryAcquire("s1")
	assert.True(t, ok)
	release()
}
