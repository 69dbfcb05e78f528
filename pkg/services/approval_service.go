package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-ai/maestro/ent"
	"github.com/maestro-ai/maestro/ent/pendingapproval"
	"github.com/maestro-ai/maestro/pkg/models"
)

// ApprovalService manages the unified store of pending approvals, covering
// both per-tool HITL requests and whole-plan approvals.
type ApprovalService struct {
	client *ent.Client
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(client *ent.Client) *ApprovalService {
	return &ApprovalService{client: client}
}

// AddPendingRequest is the input for AddPending.
type AddPendingRequest struct {
	RequestID string
	Kind      models.ApprovalKind
	Subject   string
	SessionID string
	Details   map[string]any
	Reason    string
}

// AddPending records a new approval request in PENDING state. The caller
// supplies the request ID so it can double as the tool call ID for HITL
// requests; an empty ID gets a generated one.
func (s *ApprovalService) AddPending(httpCtx context.Context, req AddPendingRequest) (*models.PendingApproval, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Subject == "" {
		return nil, NewValidationError("subject", "required")
	}
	if req.Kind != models.ApprovalKindTool && req.Kind != models.ApprovalKindPlan {
		return nil, NewValidationError("kind", fmt.Sprintf("unknown kind %q", req.Kind))
	}
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.PendingApproval.Create().
		SetID(req.RequestID).
		SetKind(pendingapproval.Kind(req.Kind)).
		SetSubject(req.Subject).
		SetSessionID(req.SessionID).
		SetStatus(pendingapproval.StatusPending).
		SetCreatedAt(time.Now())
	if len(req.Details) > 0 {
		create.SetDetails(req.Details)
	}
	if req.Reason != "" {
		create.SetReason(req.Reason)
	}

	pa, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create pending approval: %w", err)
	}
	return approvalToModel(pa), nil
}

// GetPending returns an approval request by ID regardless of status.
func (s *ApprovalService) GetPending(httpCtx context.Context, requestID string) (*models.PendingApproval, error) {
	if requestID == "" {
		return nil, NewValidationError("request_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	pa, err := s.client.PendingApproval.Get(ctx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}
	return approvalToModel(pa), nil
}

// ListPending returns the session's unresolved approvals, oldest first.
// A nil kind returns both tool and plan approvals.
func (s *ApprovalService) ListPending(httpCtx context.Context, sessionID string, kind *models.ApprovalKind) ([]*models.PendingApproval, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	query := s.client.PendingApproval.Query().
		Where(
			pendingapproval.SessionIDEQ(sessionID),
			pendingapproval.StatusEQ(pendingapproval.StatusPending),
		).
		Order(ent.Asc(pendingapproval.FieldCreatedAt))
	if kind != nil {
		query = query.Where(pendingapproval.KindEQ(pendingapproval.Kind(*kind)))
	}

	approvals, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}

	result := make([]*models.PendingApproval, 0, len(approvals))
	for _, pa := range approvals {
		result = append(result, approvalToModel(pa))
	}
	return result, nil
}

// Approve resolves a pending approval as approved. Resolving an already
// resolved request returns ErrAlreadyResolved; status never moves backwards.
func (s *ApprovalService) Approve(httpCtx context.Context, requestID, feedback string) (*models.PendingApproval, error) {
	return s.resolve(httpCtx, requestID, pendingapproval.StatusApproved, feedback)
}

// Reject resolves a pending approval as rejected.
func (s *ApprovalService) Reject(httpCtx context.Context, requestID, feedback string) (*models.PendingApproval, error) {
	return s.resolve(httpCtx, requestID, pendingapproval.StatusRejected, feedback)
}

func (s *ApprovalService) resolve(httpCtx context.Context, requestID string, status pendingapproval.Status, feedback string) (*models.PendingApproval, error) {
	if requestID == "" {
		return nil, NewValidationError("request_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	pa, err := s.client.PendingApproval.Get(ctx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}
	if pa.Status != pendingapproval.StatusPending {
		return nil, fmt.Errorf("%w: %s is already %s", ErrAlreadyResolved, requestID, pa.Status)
	}

	update := s.client.PendingApproval.UpdateOneID(requestID).
		SetStatus(status).
		SetResolvedAt(time.Now())
	if feedback != "" {
		update.SetResolutionFeedback(feedback)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve approval: %w", err)
	}
	return approvalToModel(updated), nil
}

func approvalToModel(pa *ent.PendingApproval) *models.PendingApproval {
	m := &models.PendingApproval{
		RequestID:  pa.ID,
		Kind:       models.ApprovalKind(pa.Kind),
		Subject:    pa.Subject,
		SessionID:  pa.SessionID,
		Details:    pa.Details,
		Reason:     pa.Reason,
		Status:     models.ApprovalStatus(pa.Status),
		CreatedAt:  pa.CreatedAt,
		ResolvedAt: pa.ResolvedAt,
	}
	if pa.ResolutionFeedback != nil {
		m.ResolutionFeedback = *pa.ResolutionFeedback
	}
	return m
}
