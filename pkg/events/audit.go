package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/maestro-ai/maestro/pkg/models"
)

// auditRingSize bounds the in-memory tail of the audit log.
const auditRingSize = 1000

// AuditRecorder persists audit events. Implemented by services.EventService.
type AuditRecorder interface {
	RecordEvent(ctx context.Context, sessionID, eventType string, payload map[string]any) (*models.AuditEvent, error)
}

// AuditLog records domain events durably and keeps an in-memory ring of the
// most recent entries for fast inspection. Persistence failures are logged,
// not propagated; auditing never fails the operation being audited.
type AuditLog struct {
	mu       sync.Mutex
	ring     []models.AuditEvent
	next     int
	full     bool
	recorder AuditRecorder
	bus      *Bus
}

// NewAuditLog creates a new AuditLog. The recorder may be nil, in which
// case events are kept in memory only.
func NewAuditLog(recorder AuditRecorder, bus *Bus) *AuditLog {
	return &AuditLog{
		ring:     make([]models.AuditEvent, auditRingSize),
		recorder: recorder,
		bus:      bus,
	}
}

// Record persists an audit event and publishes it on the bus.
func (l *AuditLog) Record(ctx context.Context, sessionID, eventType string, payload map[string]any) {
	entry := models.AuditEvent{
		SessionID: sessionID,
		EventType: eventType,
		Payload:   payload,
	}

	if l.recorder != nil {
		persisted, err := l.recorder.RecordEvent(ctx, sessionID, eventType, payload)
		if err != nil {
			slog.Error("Failed to persist audit event",
				"session_id", sessionID, "event_type", eventType, "error", err)
		} else {
			entry = *persisted
		}
	}

	l.mu.Lock()
	l.ring[l.next] = entry
	l.next = (l.next + 1) % auditRingSize
	if l.next == 0 {
		l.full = true
	}
	l.mu.Unlock()

	if l.bus != nil {
		l.bus.Publish(SessionChannel(sessionID), Event{
			Type:      eventType,
			SessionID: sessionID,
			Payload:   payload,
		})
	}
}

// Recent returns up to limit of the most recent entries, oldest first.
func (l *AuditLog) Recent(limit int) []models.AuditEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	size := l.next
	if l.full {
		size = auditRingSize
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]models.AuditEvent, 0, limit)
	start := l.next - limit
	if start < 0 {
		start += auditRingSize
	}
	for i := 0; i < limit; i++ {
		out = append(out, l.ring[(start+i)%auditRingSize])
	}
	return out
}
