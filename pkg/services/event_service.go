package services

import (
	"context"
	"fmt"
	"time"

	"github.com/maestro-ai/maestro/ent"
	"github.com/maestro-ai/maestro/ent/event"
	"github.com/maestro-ai/maestro/pkg/models"
)

// EventService persists the durable audit trail of domain events.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// RecordEvent appends an audit event. Insertion order is the event order.
func (s *EventService) RecordEvent(httpCtx context.Context, sessionID, eventType string, payload map[string]any) (*models.AuditEvent, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if eventType == "" {
		return nil, NewValidationError("event_type", "required")
	}
	if payload == nil {
		payload = map[string]any{}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ev, err := s.client.Event.Create().
		SetSessionID(sessionID).
		SetEventType(eventType).
		SetPayload(payload).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record event: %w", err)
	}
	return eventToModel(ev), nil
}

// ListBySession returns a session's events with ID greater than afterID,
// oldest first. Used for audit views and missed-event catchup.
func (s *EventService) ListBySession(httpCtx context.Context, sessionID string, afterID, limit int) ([]*models.AuditEvent, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	events, err := s.client.Event.Query().
		Where(
			event.SessionIDEQ(sessionID),
			event.IDGT(afterID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	result := make([]*models.AuditEvent, 0, len(events))
	for _, ev := range events {
		result = append(result, eventToModel(ev))
	}
	return result, nil
}

// Stats returns event counts grouped by event type.
func (s *EventService) Stats(httpCtx context.Context) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	var rows []struct {
		EventType string `json:"event_type"`
		Count     int    `json:"count"`
	}
	err := s.client.Event.Query().
		GroupBy(event.FieldEventType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate event stats: %w", err)
	}

	stats := make(map[string]int, len(rows))
	for _, row := range rows {
		stats[row.EventType] = row.Count
	}
	return stats, nil
}

// StatsForSession returns one session's event counts grouped by type.
func (s *EventService) StatsForSession(httpCtx context.Context, sessionID string) (map[string]int, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	var rows []struct {
		EventType string `json:"event_type"`
		Count     int    `json:"count"`
	}
	err := s.client.Event.Query().
		Where(event.SessionIDEQ(sessionID)).
		GroupBy(event.FieldEventType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate session event stats: %w", err)
	}

	stats := make(map[string]int, len(rows))
	for _, row := range rows {
		stats[row.EventType] = row.Count
	}
	return stats, nil
}

// SessionActivity returns event counts grouped by session.
func (s *EventService) SessionActivity(httpCtx context.Context) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	var rows []struct {
		SessionID string `json:"session_id"`
		Count     int    `json:"count"`
	}
	err := s.client.Event.Query().
		GroupBy(event.FieldSessionID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate session activity: %w", err)
	}

	activity := make(map[string]int, len(rows))
	for _, row := range rows {
		activity[row.SessionID] = row.Count
	}
	return activity, nil
}

func eventToModel(ev *ent.Event) *models.AuditEvent {
	return &models.AuditEvent{
		ID:        ev.ID,
		SessionID: ev.SessionID,
		EventType: ev.EventType,
		Payload:   ev.Payload,
		CreatedAt: ev.CreatedAt,
	}
}
