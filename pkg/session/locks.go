// Package session provides per-session concurrency control. Each session
// processes one client message at a time; concurrent messages for the same
// session are rejected rather than queued.
package session

import (
	"context"
	"sync"
)

// LockManager hands out per-session locks and tracks the cancel function
// of the stream currently holding each lock.
type LockManager struct {
	mu       sync.Mutex
	sessions map[string]*sessionState
}

type sessionState struct {
	lock   sync.Mutex
	cancel context.CancelFunc
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{
		sessions: make(map[string]*sessionState),
	}
}

// TryAcquire attempts to take the session's lock without blocking. On
// success it returns a release function; ok is false when another message
// is already being processed for the session.
func (m *LockManager) TryAcquire(sessionID string) (release func(), ok bool) {
	state := m.state(sessionID)
	if !state.lock.TryLock() {
		return nil, false
	}
	return func() {
		m.mu.Lock()
		state.cancel = nil
		m.mu.Unlock()
		state.lock.Unlock()
	}, true
}

// SetCancel registers the cancel function for the session's active stream.
// The caller must hold the session lock.
func (m *LockManager) SetCancel(sessionID string, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, exists := m.sessions[sessionID]; exists {
		state.cancel = cancel
	}
}

// Cancel aborts the session's active stream, if any. Returns whether a
// stream was cancelled.
func (m *LockManager) Cancel(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, exists := m.sessions[sessionID]
	if !exists || state.cancel == nil {
		return false
	}
	state.cancel()
	state.cancel = nil
	return true
}

// Forget drops the session's lock state. Only call for sessions with no
// active stream, e.g. from TTL cleanup.
func (m *LockManager) Forget(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

func (m *LockManager) state(sessionID string) *sessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, exists := m.sessions[sessionID]
	if !exists {
		state = &sessionState{}
		m.sessions[sessionID] = state
	}
	return state
}
