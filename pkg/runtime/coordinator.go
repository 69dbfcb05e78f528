// Package runtime wires the conversation state machine, agents, approval
// manager and execution engine into the message processing pipeline behind
// the streaming endpoint.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-ai/maestro/pkg/agent"
	"github.com/maestro-ai/maestro/pkg/approval"
	"github.com/maestro-ai/maestro/pkg/events"
	"github.com/maestro-ai/maestro/pkg/fsm"
	"github.com/maestro-ai/maestro/pkg/models"
	"github.com/maestro-ai/maestro/pkg/services"
	"github.com/maestro-ai/maestro/pkg/session"
)

// placeholderPrefix marks temporary session ids assigned by clients before
// the runtime announces the real one.
const placeholderPrefix = "new_"

// ConversationStore is the slice of services.ConversationService the
// coordinator needs.
type ConversationStore interface {
	GetOrCreate(ctx context.Context, sessionID string) (*models.Conversation, bool, error)
	AppendMessage(ctx context.Context, req models.AppendMessageRequest) (*models.Message, error)
	GetHistory(ctx context.Context, sessionID string, limit int) ([]*models.Message, error)
}

// PlanStore is the slice of services.PlanService the coordinator needs.
type PlanStore interface {
	CreatePlan(ctx context.Context, sessionID, conversationID string, draft models.PlanDraft) (*models.Plan, error)
	GetPlan(ctx context.Context, planID string) (*models.Plan, error)
	GetActivePlan(ctx context.Context, sessionID string) (*models.Plan, error)
	GetLatestPlan(ctx context.Context, sessionID string) (*models.Plan, error)
	UpdatePlanStatus(ctx context.Context, planID string, target models.PlanStatus, reason string) (*models.Plan, error)
}

// ContextStore persists per-session agent routing state. Implemented by
// services.AgentContextService.
type ContextStore interface {
	GetOrCreate(ctx context.Context, sessionID string) (*services.AgentContextRecord, error)
	Update(ctx context.Context, sessionID, activeAgent, fsmState string) (*services.AgentContextRecord, error)
}

// PlanEngine executes approved plans. Implemented by engine.Engine.
type PlanEngine interface {
	ExecutePlan(ctx context.Context, planID, sessionID string, out chan<- models.StreamEvent) error
	HandleToolResult(ctx context.Context, sessionID, callID, result, errText string, out chan<- models.StreamEvent) (bool, error)
	CancelExecution(ctx context.Context, planID, reason string) error
}

// MessageClassifier routes user messages. Implemented by agent.Classifier.
type MessageClassifier interface {
	Classify(ctx context.Context, sessionID, content string) (*agent.Classification, error)
}

// PlanProposer drafts plans for compound goals. Implemented by
// agent.Architect.
type PlanProposer interface {
	Propose(ctx context.Context, sessionID, goal string, history []models.Message, feedback string) (*models.PlanDraft, error)
}

// Coordinator processes client messages for sessions: it serializes work
// per session, drives the state machine, and streams events back.
type Coordinator struct {
	locks         *session.LockManager
	machine       *fsm.Orchestrator
	conversations ConversationStore
	plans         PlanStore
	contexts      ContextStore
	approvals     *approval.Manager
	engine        PlanEngine
	registry      *agent.Registry
	classifier    MessageClassifier
	architect     PlanProposer
	audit         *events.AuditLog
	logger        *slog.Logger

	streamTimeout time.Duration
	tools         []agent.ToolDefinition
}

// Config carries the Coordinator's dependencies.
type Config struct {
	Locks         *session.LockManager
	Machine       *fsm.Orchestrator
	Conversations ConversationStore
	Plans         PlanStore
	Contexts      ContextStore
	Approvals     *approval.Manager
	Engine        PlanEngine
	Registry      *agent.Registry
	Classifier    MessageClassifier
	Architect     PlanProposer
	Audit         *events.AuditLog
	Logger        *slog.Logger
	StreamTimeout time.Duration
	Tools         []agent.ToolDefinition
}

// NewCoordinator creates a new Coordinator
func NewCoordinator(cfg Config) *Coordinator {
	if cfg.StreamTimeout <= 0 {
		cfg.StreamTimeout = 10 * time.Minute
	}
	return &Coordinator{
		locks:         cfg.Locks,
		machine:       cfg.Machine,
		conversations: cfg.Conversations,
		plans:         cfg.Plans,
		contexts:      cfg.Contexts,
		approvals:     cfg.Approvals,
		engine:        cfg.Engine,
		registry:      cfg.Registry,
		classifier:    cfg.Classifier,
		architect:     cfg.Architect,
		audit:         cfg.Audit,
		logger:        cfg.Logger,
		streamTimeout: cfg.StreamTimeout,
		tools:         cfg.Tools,
	}
}

// ProcessMessage handles one client message and returns the session id
// (assigned if the request carried none or a placeholder) plus the event
// stream. The channel is closed when processing ends.
func (c *Coordinator) ProcessMessage(ctx context.Context, req *models.AgentMessageRequest) (string, <-chan models.StreamEvent) {
	sessionID := req.SessionID
	assigned := false
	if sessionID == "" || strings.HasPrefix(sessionID, placeholderPrefix) {
		sessionID = uuid.New().String()
		assigned = true
	}

	out := make(chan models.StreamEvent, 64)
	go c.process(ctx, sessionID, assigned, &req.Message, out)
	return sessionID, out
}

func (c *Coordinator) process(parentCtx context.Context, sessionID string, assigned bool, msg *models.ClientMessage, out chan<- models.StreamEvent) {
	defer close(out)

	// Outermost boundary: the client always sees a defined end of stream.
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("panic while processing message",
				"session_id", sessionID, "panic", r)
			c.emit(parentCtx, out, models.NewError(fmt.Sprintf("internal error: %v", r), true))
		}
	}()

	ctx, cancel := context.WithTimeout(parentCtx, c.streamTimeout)
	defer cancel()

	_, created, err := c.conversations.GetOrCreate(ctx, sessionID)
	if err != nil {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("failed to open session: %v", err), true))
		return
	}
	if assigned || created {
		c.emit(ctx, out, models.NewSessionInfo(sessionID))
	}

	release, ok := c.locks.TryAcquire(sessionID)
	if !ok {
		c.emit(ctx, out, models.NewError("another message is already being processed for this session", true))
		return
	}
	defer release()
	c.locks.SetCancel(sessionID, cancel)

	ac, err := c.contexts.GetOrCreate(ctx, sessionID)
	if err != nil {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("failed to load session context: %v", err), true))
		return
	}
	c.restoreMachineState(sessionID, ac)

	// A completed conversation resets transparently on the next message.
	if c.machine.CurrentState(sessionID) == fsm.StateCompleted {
		if _, err := c.machine.Transition(ctx, sessionID, fsm.EventReset, nil); err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
			return
		}
	}

	switch msg.Kind {
	case models.MessageKindUserMessage:
		c.handleUserMessage(ctx, sessionID, ac, msg, out)
	case models.MessageKindToolResult:
		c.handleToolResult(ctx, sessionID, ac, msg, out)
	case models.MessageKindSwitchAgent:
		c.handleSwitchAgent(ctx, sessionID, ac, msg, out)
	case models.MessageKindHITLDecision:
		c.handleHITLDecision(ctx, sessionID, ac, msg, out)
	case models.MessageKindPlanDecision:
		c.handlePlanDecision(ctx, sessionID, ac, msg, out)
	default:
		c.emit(ctx, out, models.NewError(fmt.Sprintf("unknown message type %q", msg.Kind), true))
		return
	}

	c.audit.Record(ctx, sessionID, events.EventTypeMessageProcessed, map[string]any{
		"kind":  msg.Kind,
		"state": string(c.machine.CurrentState(sessionID)),
	})
}

// restoreMachineState rebuilds the in-memory state machine context from the
// persisted agent context after a restart.
func (c *Coordinator) restoreMachineState(sessionID string, ac *services.AgentContextRecord) {
	persisted := fsm.State(ac.FSMState)
	if persisted == fsm.StateIdle {
		return
	}
	if c.machine.CurrentState(sessionID) == fsm.StateIdle {
		c.machine.Restore(sessionID, persisted)
	}
}

// handleUserMessage classifies the message and routes it: atomic tasks run
// on a specialist directly, compound goals go through planning.
func (c *Coordinator) handleUserMessage(ctx context.Context, sessionID string, ac *services.AgentContextRecord, msg *models.ClientMessage, out chan<- models.StreamEvent) {
	// Mid-plan, a user message is the continue signal for the next subtask,
	// not a new conversational turn.
	if c.continueActivePlan(ctx, sessionID, out) {
		return
	}

	role := models.MessageRole(msg.Role)
	if role == "" {
		role = models.RoleUser
	}
	if _, err := c.conversations.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID,
		Role:      role,
		Content:   msg.Content,
	}); err != nil {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("failed to record message: %v", err), true))
		return
	}

	if _, err := c.machine.Transition(ctx, sessionID, fsm.EventReceiveMessage, nil); err != nil {
		c.emit(ctx, out, models.NewError(err.Error(), true))
		return
	}

	classification, err := c.classifier.Classify(ctx, sessionID, msg.Content)
	if err != nil {
		c.failTerminal(ctx, sessionID, fsm.EventClassifyError, err.Error(), out)
		return
	}

	if classification.IsAtomic {
		if _, err := c.machine.Transition(ctx, sessionID, fsm.EventIsAtomicTrue, nil); err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
			return
		}
		c.switchActiveAgent(ctx, sessionID, ac, classification.TargetAgent, "classified as atomic task", out)
		c.runAtomicAgent(ctx, sessionID, classification.TargetAgent, out)
		return
	}

	if _, err := c.machine.Transition(ctx, sessionID, fsm.EventIsAtomicFalse, nil); err != nil {
		c.emit(ctx, out, models.NewError(err.Error(), true))
		return
	}
	if _, err := c.machine.Transition(ctx, sessionID, fsm.EventRouteToArchitect, nil); err != nil {
		c.emit(ctx, out, models.NewError(err.Error(), true))
		return
	}
	c.switchActiveAgent(ctx, sessionID, ac, agent.TypeArchitect, "goal requires planning", out)
	c.runPlanning(ctx, sessionID, msg.Content, "", out)
}

// switchActiveAgent records and announces an active-agent change.
func (c *Coordinator) switchActiveAgent(ctx context.Context, sessionID string, ac *services.AgentContextRecord, target, reason string, out chan<- models.StreamEvent) {
	if ac.ActiveAgent == target {
		return
	}
	from := ac.ActiveAgent
	if _, err := c.contexts.Update(ctx, sessionID, target, ""); err != nil {
		c.logger.Warn("failed to persist active agent",
			"session_id", sessionID, "agent", target, "error", err)
	}
	ac.ActiveAgent = target
	c.emit(ctx, out, models.NewAgentSwitched(from, target, reason))
	c.audit.Record(ctx, sessionID, events.EventTypeAgentSwitched, map[string]any{
		"from": from, "to": target, "reason": reason,
	})
}

// failTerminal routes a processing failure through ERROR_HANDLING and then
// closes the episode so the next message starts from a clean state.
func (c *Coordinator) failTerminal(ctx context.Context, sessionID string, event fsm.EventType, errText string, out chan<- models.StreamEvent) {
	if _, err := c.machine.Transition(ctx, sessionID, event, nil); err != nil {
		c.logger.Warn("failed to enter error handling",
			"session_id", sessionID, "event", event, "error", err)
	}
	c.emit(ctx, out, models.NewError(errText, true))
	if _, err := c.machine.Transition(ctx, sessionID, fsm.EventPlanCancelled, nil); err != nil {
		c.logger.Warn("failed to close error episode",
			"session_id", sessionID, "error", err)
	}
}

func (c *Coordinator) emit(ctx context.Context, out chan<- models.StreamEvent, event models.StreamEvent) {
	select {
	case out <- event:
	case <-ctx.Done():
	}
}
