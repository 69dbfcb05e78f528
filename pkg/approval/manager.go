package approval

import (
	"context"

	"github.com/maestro-ai/maestro/pkg/events"
	"github.com/maestro-ai/maestro/pkg/models"
	"github.com/maestro-ai/maestro/pkg/services"
)

// Store persists approval requests. Implemented by services.ApprovalService.
type Store interface {
	AddPending(ctx context.Context, req services.AddPendingRequest) (*models.PendingApproval, error)
	GetPending(ctx context.Context, requestID string) (*models.PendingApproval, error)
	ListPending(ctx context.Context, sessionID string, kind *models.ApprovalKind) ([]*models.PendingApproval, error)
	Approve(ctx context.Context, requestID, feedback string) (*models.PendingApproval, error)
	Reject(ctx context.Context, requestID, feedback string) (*models.PendingApproval, error)
}

// Manager combines policy evaluation with the approval store and publishes
// domain events for every approval lifecycle change.
type Manager struct {
	policy *Policy
	store  Store
	audit  *events.AuditLog
}

// NewManager creates a new Manager. The audit log may be nil.
func NewManager(policy *Policy, store Store, audit *events.AuditLog) *Manager {
	return &Manager{
		policy: policy,
		store:  store,
		audit:  audit,
	}
}

// ShouldRequireApproval evaluates the policy for a tool call or plan.
func (m *Manager) ShouldRequireApproval(kind models.ApprovalKind, subject string, arguments map[string]any) (bool, string) {
	return m.policy.ShouldRequireApproval(kind, subject, arguments)
}

// PlanApprovalRequired evaluates the policy for a plan. Unlike tool calls,
// plans default to requiring a human decision: only an enabled policy rule
// can waive the review.
func (m *Manager) PlanApprovalRequired(goal string, details map[string]any) (bool, string) {
	if !m.policy.Enabled {
		return true, ""
	}
	return m.policy.ShouldRequireApproval(models.ApprovalKindPlan, goal, details)
}

// AddPending records an approval request and publishes approval.requested.
func (m *Manager) AddPending(ctx context.Context, req services.AddPendingRequest) (*models.PendingApproval, error) {
	pa, err := m.store.AddPending(ctx, req)
	if err != nil {
		return nil, err
	}
	m.record(ctx, events.EventTypeApprovalRequested, pa)
	return pa, nil
}

// GetPending returns an approval request by ID.
func (m *Manager) GetPending(ctx context.Context, requestID string) (*models.PendingApproval, error) {
	return m.store.GetPending(ctx, requestID)
}

// ListPending returns a session's unresolved approvals.
func (m *Manager) ListPending(ctx context.Context, sessionID string, kind *models.ApprovalKind) ([]*models.PendingApproval, error) {
	return m.store.ListPending(ctx, sessionID, kind)
}

// Approve resolves an approval as approved and publishes approval.resolved.
func (m *Manager) Approve(ctx context.Context, requestID, feedback string) (*models.PendingApproval, error) {
	pa, err := m.store.Approve(ctx, requestID, feedback)
	if err != nil {
		return nil, err
	}
	m.record(ctx, events.EventTypeApprovalResolved, pa)
	return pa, nil
}

// Reject resolves an approval as rejected and publishes approval.resolved.
func (m *Manager) Reject(ctx context.Context, requestID, feedback string) (*models.PendingApproval, error) {
	pa, err := m.store.Reject(ctx, requestID, feedback)
	if err != nil {
		return nil, err
	}
	m.record(ctx, events.EventTypeApprovalResolved, pa)
	return pa, nil
}

func (m *Manager) record(ctx context.Context, eventType string, pa *models.PendingApproval) {
	if m.audit == nil {
		return
	}
	m.audit.Record(ctx, pa.SessionID, eventType, map[string]any{
		"request_id": pa.RequestID,
		"kind":       string(pa.Kind),
		"subject":    pa.Subject,
		"status":     string(pa.Status),
	})
}
