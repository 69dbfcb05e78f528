package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-ai/maestro/ent"
	"github.com/maestro-ai/maestro/ent/executionplan"
	"github.com/maestro-ai/maestro/ent/subtask"
	"github.com/maestro-ai/maestro/pkg/models"
)

const maxGoalLength = 5000

// PlanService manages execution plan and subtask lifecycle.
type PlanService struct {
	client *ent.Client
	uow    *UnitOfWork
}

// NewPlanService creates a new PlanService. A nil uow gets a default
// without an observer.
func NewPlanService(client *ent.Client, uow *UnitOfWork) *PlanService {
	if uow == nil {
		uow = NewUnitOfWork(client, slog.Default(), nil)
	}
	return &PlanService{client: client, uow: uow}
}

// CreatePlan persists an architect draft as a DRAFT plan with PENDING
// subtasks. Draft-local subtask IDs are remapped to globally unique IDs,
// including inside dependency lists.
func (s *PlanService) CreatePlan(httpCtx context.Context, sessionID, conversationID string, draft models.PlanDraft) (*models.Plan, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if draft.Goal == "" {
		return nil, NewValidationError("goal", "required")
	}
	if len(draft.Goal) > maxGoalLength {
		return nil, NewValidationError("goal", fmt.Sprintf("exceeds %d characters", maxGoalLength))
	}
	if len(draft.Subtasks) == 0 {
		return nil, NewValidationError("subtasks", "plan must contain at least one subtask")
	}

	idMap := make(map[string]string, len(draft.Subtasks))
	for i, st := range draft.Subtasks {
		if st.ID == "" {
			return nil, NewValidationError("subtasks", fmt.Sprintf("subtask %d has no id", i))
		}
		if _, dup := idMap[st.ID]; dup {
			return nil, NewValidationError("subtasks", fmt.Sprintf("duplicate subtask id %q", st.ID))
		}
		if st.Description == "" {
			return nil, NewValidationError("subtasks", fmt.Sprintf("subtask %q has no description", st.ID))
		}
		if st.Agent == "" {
			return nil, NewValidationError("subtasks", fmt.Sprintf("subtask %q has no agent", st.ID))
		}
		idMap[st.ID] = uuid.New().String()
	}
	for _, st := range draft.Subtasks {
		for _, dep := range st.Dependencies {
			if dep == st.ID {
				return nil, NewValidationError("subtasks", fmt.Sprintf("subtask %q depends on itself", st.ID))
			}
			if _, ok := idMap[dep]; !ok {
				return nil, NewValidationError("subtasks", fmt.Sprintf("subtask %q depends on unknown subtask %q", st.ID, dep))
			}
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	planID := uuid.New().String()
	now := time.Now()
	err := s.uow.Do(ctx, "create_plan", func(tx *ent.Tx) error {
		_, err := tx.ExecutionPlan.Create().
			SetID(planID).
			SetSessionID(sessionID).
			SetConversationID(conversationID).
			SetGoal(draft.Goal).
			SetStatus(executionplan.StatusDraft).
			SetCreatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}

		builders := make([]*ent.SubtaskCreate, 0, len(draft.Subtasks))
		for _, st := range draft.Subtasks {
			deps := make([]string, 0, len(st.Dependencies))
			for _, dep := range st.Dependencies {
				deps = append(deps, idMap[dep])
			}
			b := tx.Subtask.Create().
				SetID(idMap[st.ID]).
				SetPlanID(planID).
				SetDescription(st.Description).
				SetAssignedAgentID(st.Agent).
				SetStatus(subtask.StatusPending).
				SetCreatedAt(now)
			if len(deps) > 0 {
				b.SetDependencies(deps)
			}
			builders = append(builders, b)
		}
		if _, err := tx.Subtask.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("failed to create subtasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPlan(httpCtx, planID)
}

// GetPlan returns a plan with its subtasks.
func (s *PlanService) GetPlan(httpCtx context.Context, planID string) (*models.Plan, error) {
	if planID == "" {
		return nil, NewValidationError("plan_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	plan, err := s.client.ExecutionPlan.Get(ctx, planID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	subtasks, err := s.client.Subtask.Query().
		Where(subtask.PlanIDEQ(planID)).
		Order(ent.Asc(subtask.FieldCreatedAt), ent.Asc(subtask.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query subtasks: %w", err)
	}

	return planToModel(plan, subtasks), nil
}

// GetActivePlan returns the session's most recent non-terminal plan, or
// ErrNotFound if none exists.
func (s *PlanService) GetActivePlan(httpCtx context.Context, sessionID string) (*models.Plan, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	plan, err := s.client.ExecutionPlan.Query().
		Where(
			executionplan.SessionIDEQ(sessionID),
			executionplan.StatusIn(
				executionplan.StatusDraft,
				executionplan.StatusApproved,
				executionplan.StatusInProgress,
			),
		).
		Order(ent.Desc(executionplan.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query active plan: %w", err)
	}

	return s.GetPlan(httpCtx, plan.ID)
}

// GetLatestPlan returns the session's most recent plan in any status, or
// ErrNotFound if the session has none.
func (s *PlanService) GetLatestPlan(httpCtx context.Context, sessionID string) (*models.Plan, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	plan, err := s.client.ExecutionPlan.Query().
		Where(executionplan.SessionIDEQ(sessionID)).
		Order(ent.Desc(executionplan.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query latest plan: %w", err)
	}

	return s.GetPlan(httpCtx, plan.ID)
}

// UpdatePlanStatus transitions a plan to the target status. Repeating the
// current status is a no-op; anything outside the lifecycle state machine
// returns ErrInvalidTransition. A non-empty reason is recorded in metadata.
func (s *PlanService) UpdatePlanStatus(httpCtx context.Context, planID string, target models.PlanStatus, reason string) (*models.Plan, error) {
	if planID == "" {
		return nil, NewValidationError("plan_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	plan, err := s.client.ExecutionPlan.Get(ctx, planID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	current := models.PlanStatus(plan.Status)
	if current == target {
		return s.GetPlan(httpCtx, planID)
	}
	if !current.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: plan %s %s -> %s", ErrInvalidTransition, planID, current, target)
	}

	now := time.Now()
	update := s.client.ExecutionPlan.UpdateOneID(planID).
		SetStatus(executionplan.Status(target))
	switch target {
	case models.PlanStatusApproved:
		update.SetApprovedAt(now)
	case models.PlanStatusInProgress:
		update.SetStartedAt(now)
	case models.PlanStatusCompleted, models.PlanStatusFailed, models.PlanStatusCancelled:
		update.SetCompletedAt(now)
	}
	if reason != "" {
		metadata := plan.Metadata
		if metadata == nil {
			metadata = map[string]interface{}{}
		}
		metadata["status_reason"] = reason
		update.SetMetadata(metadata)
	}

	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update plan status: %w", err)
	}

	return s.GetPlan(httpCtx, planID)
}

// SetCurrentSubtask records which subtask the engine is executing. An empty
// subtaskID clears the marker.
func (s *PlanService) SetCurrentSubtask(httpCtx context.Context, planID, subtaskID string) error {
	if planID == "" {
		return NewValidationError("plan_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.ExecutionPlan.UpdateOneID(planID)
	if subtaskID == "" {
		update.ClearCurrentSubtaskID()
	} else {
		update.SetCurrentSubtaskID(subtaskID)
	}
	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current subtask: %w", err)
	}
	return nil
}

// UpdateSubtaskStatus transitions a subtask to the target status. Repeating
// a terminal status is an idempotent no-op. Subtasks of terminal plans are
// frozen.
func (s *PlanService) UpdateSubtaskStatus(httpCtx context.Context, subtaskID string, target models.SubtaskStatus, result, errText string) (*models.Subtask, error) {
	if subtaskID == "" {
		return nil, NewValidationError("subtask_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	st, err := s.client.Subtask.Get(ctx, subtaskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subtask: %w", err)
	}

	plan, err := s.client.ExecutionPlan.Get(ctx, st.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan for subtask: %w", err)
	}
	if models.PlanStatus(plan.Status).IsTerminal() {
		return nil, fmt.Errorf("%w: plan %s is %s", ErrInvalidTransition, plan.ID, plan.Status)
	}

	current := models.SubtaskStatus(st.Status)
	if current == target {
		return subtaskToModel(st), nil
	}
	if !current.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: subtask %s %s -> %s", ErrInvalidTransition, subtaskID, current, target)
	}

	now := time.Now()
	update := s.client.Subtask.UpdateOneID(subtaskID).
		SetStatus(subtask.Status(target))
	switch target {
	case models.SubtaskStatusRunning:
		update.SetStartedAt(now)
	case models.SubtaskStatusDone:
		update.SetCompletedAt(now).SetResult(result).ClearError()
	case models.SubtaskStatusFailed:
		update.SetCompletedAt(now).SetError(errText)
	case models.SubtaskStatusPending:
		// Retry: clear the previous attempt's outcome
		update.ClearStartedAt().ClearCompletedAt().ClearResult().ClearError()
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update subtask status: %w", err)
	}
	return subtaskToModel(updated), nil
}

func planToModel(p *ent.ExecutionPlan, subtasks []*ent.Subtask) *models.Plan {
	plan := &models.Plan{
		ID:             p.ID,
		SessionID:      p.SessionID,
		ConversationID: p.ConversationID,
		Goal:           p.Goal,
		Status:         models.PlanStatus(p.Status),
		Metadata:       p.Metadata,
		CreatedAt:      p.CreatedAt,
		ApprovedAt:     p.ApprovedAt,
		StartedAt:      p.StartedAt,
		CompletedAt:    p.CompletedAt,
	}
	if p.CurrentSubtaskID != nil {
		plan.CurrentSubtaskID = *p.CurrentSubtaskID
	}
	plan.Subtasks = make([]*models.Subtask, 0, len(subtasks))
	for _, st := range subtasks {
		plan.Subtasks = append(plan.Subtasks, subtaskToModel(st))
	}
	return plan
}

func subtaskToModel(st *ent.Subtask) *models.Subtask {
	m := &models.Subtask{
		ID:              st.ID,
		PlanID:          st.PlanID,
		Description:     st.Description,
		AssignedAgentID: st.AssignedAgentID,
		Dependencies:    st.Dependencies,
		Status:          models.SubtaskStatus(st.Status),
		CreatedAt:       st.CreatedAt,
		StartedAt:       st.StartedAt,
		CompletedAt:     st.CompletedAt,
	}
	if st.Result != nil {
		m.Result = *st.Result
	}
	if st.Error != nil {
		m.Error = *st.Error
	}
	return m
}
