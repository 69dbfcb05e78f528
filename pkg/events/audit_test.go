package events

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-ai/maestro/pkg/models"
)

type memoryRecorder struct {
	recorded []models.AuditEvent
	fail     bool
	nextID   int
}

func (r *memoryRecorder) RecordEvent(_ context.Context, sessionID, eventType string, payload map[string]any) (*models.AuditEvent, error) {
	if r.fail {
		return nil, fmt.Errorf("database is down")
	}
	r.nextID++
	ev := models.AuditEvent{ID: r.nextID, SessionID: sessionID, EventType: eventType, Payload: payload}
	r.recorded = append(r.recorded, ev)
	return &ev, nil
}

func TestAuditLogPersistsAndPublishes(t *testing.T) {
	bus := NewBus()
	recorder := &memoryRecorder{}
	log := NewAuditLog(recorder, bus)

	ch, cancel := bus.Subscribe(SessionChannel("s1"))
	defer cancel()

	log.Record(context.Background(), "s1", EventTypePlanCreated, map[string]any{"plan_id": "p1"})

	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, EventTypePlanCreated, recorder.recorded[0].EventType)

	event := receive(t, ch)
	assert.Equal(t, EventTypePlanCreated, event.Type)
	assert.Equal(t, "p1", event.Payload["plan_id"])

	recent := log.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, recorder.recorded[0].ID, recent[0].ID)
}

func TestAuditLogSurvivesPersistenceFailure(t *testing.T) {
	log := NewAuditLog(&memoryRecorder{fail: true}, nil)

	log.Record(context.Background(), "s1", EventTypeApprovalRequested, nil)

	recent := log.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, EventTypeApprovalRequested, recent[0].EventType)
}

func TestAuditLogRecentOrderAndLimit(t *testing.T) {
	log := NewAuditLog(nil, nil)

	for i := 0; i < 5; i++ {
		log.Record(context.Background(), "s1", fmt.Sprintf("event.%d", i), nil)
	}

	recent := log.Recent(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "event.2", recent[0].EventType)
	assert.Equal(t, "event.4", recent[2].EventType)
}

func TestAuditLogRingWraps(t *testing.T) {
	log := NewAuditLog(nil, nil)

	for i := 0; i < auditRingSize+5; i++ {
		log.Record(context.Background(), "s1", fmt.Sprintf("event.%d", i), nil)
	}

	recent := log.Recent(0)
	require.Len(t, recent, auditRingSize)
	assert.Equal(t, "event.5", recent[0].EventType)
	assert.Equal(t, fmt.Sprintf("event.%d", auditRingSize+4), recent[auditRingSize-1].EventType)
}
