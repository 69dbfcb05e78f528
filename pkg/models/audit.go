package models

import "time"

// AuditEvent is a persisted domain event, ordered by insertion ID.
type AuditEvent struct {
	ID        int            `json:"id"`
	SessionID string         `json:"session_id"`
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}
