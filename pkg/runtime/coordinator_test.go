package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-ai/maestro/pkg/agent"
	"github.com/maestro-ai/maestro/pkg/approval"
	"github.com/maestro-ai/maestro/pkg/events"
	"github.com/maestro-ai/maestro/pkg/fsm"
	"github.com/maestro-ai/maestro/pkg/models"
	"github.com/maestro-ai/maestro/pkg/services"
	"github.com/maestro-ai/maestro/pkg/session"
)

// --- in-memory stores -------------------------------------------------

type fakeConversations struct {
	mu       sync.Mutex
	conv     *models.Conversation
	messages []*models.Message
}

func (f *fakeConversations) GetOrCreate(ctx context.Context, sessionID string) (*models.Conversation, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conv != nil {
		return f.conv, false, nil
	}
	f.conv = &models.Conversation{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}
	return f.conv, true, nil
}

func (f *fakeConversations) AppendMessage(ctx context.Context, req models.AppendMessageRequest) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := &models.Message{
		ID:             uuid.New().String(),
		SequenceNumber: len(f.messages) + 1,
		Role:           req.Role,
		Content:        req.Content,
		ToolCalls:      req.ToolCalls,
		ToolCallID:     req.ToolCallID,
		ToolName:       req.ToolName,
		CreatedAt:      time.Now(),
	}
	f.messages = append(f.messages, msg)
	return msg, nil
}

func (f *fakeConversations) GetHistory(ctx context.Context, sessionID string, limit int) ([]*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Message, len(f.messages))
	copy(out, f.messages)
	return out, nil
}

type fakePlans struct {
	mu    sync.Mutex
	plans []*models.Plan
}

func (f *fakePlans) CreatePlan(ctx context.Context, sessionID, conversationID string, draft models.PlanDraft) (*models.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan := &models.Plan{
		ID:             uuid.New().String(),
		SessionID:      sessionID,
		ConversationID: conversationID,
		Goal:           draft.Goal,
		Status:         models.PlanStatusDraft,
		CreatedAt:      time.Now(),
	}
	for _, sd := range draft.Subtasks {
		plan.Subtasks = append(plan.Subtasks, &models.Subtask{
			ID:              sd.ID,
			PlanID:          plan.ID,
			Description:     sd.Description,
			AssignedAgentID: sd.Agent,
			Dependencies:    sd.Dependencies,
			Status:          models.SubtaskStatusPending,
			CreatedAt:       time.Now(),
		})
	}
	f.plans = append(f.plans, plan)
	return plan, nil
}

func (f *fakePlans) GetPlan(ctx context.Context, planID string) (*models.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.plans {
		if p.ID == planID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("plan %s not found", planID)
}

func (f *fakePlans) GetActivePlan(ctx context.Context, sessionID string) (*models.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.plans) - 1; i >= 0; i-- {
		p := f.plans[i]
		if p.SessionID == sessionID && !p.Status.IsTerminal() {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no active plan for session %s", sessionID)
}

func (f *fakePlans) GetLatestPlan(ctx context.Context, sessionID string) (*models.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.plans) - 1; i >= 0; i-- {
		if f.plans[i].SessionID == sessionID {
			return f.plans[i], nil
		}
	}
	return nil, fmt.Errorf("no plan for session %s", sessionID)
}

func (f *fakePlans) UpdatePlanStatus(ctx context.Context, planID string, target models.PlanStatus, reason string) (*models.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.plans {
		if p.ID == planID {
			p.Status = target
			return p, nil
		}
	}
	return nil, fmt.Errorf("plan %s not found", planID)
}

type fakeContexts struct {
	mu      sync.Mutex
	records map[string]*services.AgentContextRecord
}

func newFakeContexts() *fakeContexts {
	return &fakeContexts{records: make(map[string]*services.AgentContextRecord)}
}

func (f *fakeContexts) GetOrCreate(ctx context.Context, sessionID string) (*services.AgentContextRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.records[sessionID]; ok {
		cp := *rec
		return &cp, nil
	}
	rec := &services.AgentContextRecord{
		SessionID:   sessionID,
		ActiveAgent: agent.TypeOrchestrator,
		FSMState:    string(fsm.StateIdle),
		UpdatedAt:   time.Now(),
	}
	f.records[sessionID] = rec
	cp := *rec
	return &cp, nil
}

func (f *fakeContexts) Update(ctx context.Context, sessionID, activeAgent, fsmState string) (*services.AgentContextRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[sessionID]
	if !ok {
		rec = &services.AgentContextRecord{
			SessionID:   sessionID,
			ActiveAgent: agent.TypeOrchestrator,
			FSMState:    string(fsm.StateIdle),
		}
		f.records[sessionID] = rec
	}
	if activeAgent != "" {
		rec.ActiveAgent = activeAgent
	}
	if fsmState != "" {
		rec.FSMState = fsmState
	}
	rec.UpdatedAt = time.Now()
	cp := *rec
	return &cp, nil
}

type fakeApprovalStore struct {
	mu      sync.Mutex
	pending map[string]*models.PendingApproval
}

func newFakeApprovalStore() *fakeApprovalStore {
	return &fakeApprovalStore{pending: make(map[string]*models.PendingApproval)}
}

func (f *fakeApprovalStore) AddPending(ctx context.Context, req services.AddPendingRequest) (*models.PendingApproval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pa := &models.PendingApproval{
		RequestID: req.RequestID,
		Kind:      req.Kind,
		Subject:   req.Subject,
		SessionID: req.SessionID,
		Details:   req.Details,
		Reason:    req.Reason,
		Status:    models.ApprovalStatusPending,
		CreatedAt: time.Now(),
	}
	f.pending[pa.RequestID] = pa
	return pa, nil
}

func (f *fakeApprovalStore) GetPending(ctx context.Context, requestID string) (*models.PendingApproval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pa, ok := f.pending[requestID]
	if !ok {
		return nil, fmt.Errorf("approval %s not found", requestID)
	}
	return pa, nil
}

func (f *fakeApprovalStore) ListPending(ctx context.Context, sessionID string, kind *models.ApprovalKind) ([]*models.PendingApproval, error) {
	return nil, nil
}

func (f *fakeApprovalStore) Approve(ctx context.Context, requestID, feedback string) (*models.PendingApproval, error) {
	return f.resolve(requestID, models.ApprovalStatusApproved, feedback)
}

func (f *fakeApprovalStore) Reject(ctx context.Context, requestID, feedback string) (*models.PendingApproval, error) {
	return f.resolve(requestID, models.ApprovalStatusRejected, feedback)
}

func (f *fakeApprovalStore) resolve(requestID string, status models.ApprovalStatus, feedback string) (*models.PendingApproval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pa, ok := f.pending[requestID]
	if !ok {
		return nil, fmt.Errorf("approval %s not found", requestID)
	}
	pa.Status = status
	pa.ResolutionFeedback = feedback
	return pa, nil
}

// --- scripted collaborators -------------------------------------------

// fakeEngine runs exactly one pending subtask per ExecutePlan call,
// mirroring the real engine's suspension contract.
type fakeEngine struct {
	plans *fakePlans

	mu           sync.Mutex
	executeCalls int
}

func (f *fakeEngine) ExecutePlan(ctx context.Context, planID, sessionID string, out chan<- models.StreamEvent) error {
	f.mu.Lock()
	f.executeCalls++
	f.mu.Unlock()

	plan, err := f.plans.GetPlan(ctx, planID)
	if err != nil {
		return err
	}
	if plan.Status == models.PlanStatusApproved {
		if _, err := f.plans.UpdatePlanStatus(ctx, planID, models.PlanStatusInProgress, ""); err != nil {
			return err
		}
	}

	for _, st := range plan.Subtasks {
		if st.Status != models.SubtaskStatusPending {
			continue
		}
		st.Status = models.SubtaskStatusDone
		st.Result = "done: " + st.Description
		out <- models.NewSubtaskCompleted(st.ID, st.Result, st.AssignedAgentID, 0.1)
		break
	}

	done, _, _, total := plan.Progress()
	if done == total {
		if _, err := f.plans.UpdatePlanStatus(ctx, planID, models.PlanStatusCompleted, ""); err != nil {
			return err
		}
		out <- models.NewExecutionCompleted(planID, string(models.PlanStatusCompleted),
			fmt.Sprintf("%d/%d", done, total), 0.2)
	}
	return nil
}

func (f *fakeEngine) HandleToolResult(ctx context.Context, sessionID, callID, result, errText string, out chan<- models.StreamEvent) (bool, error) {
	// No plan subtask waits on tool calls in these scenarios.
	return false, nil
}

func (f *fakeEngine) CancelExecution(ctx context.Context, planID, reason string) error {
	_, err := f.plans.UpdatePlanStatus(ctx, planID, models.PlanStatusCancelled, reason)
	return err
}

func (f *fakeEngine) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.executeCalls
}

type fakeClassifier struct {
	mu       sync.Mutex
	result   *agent.Classification
	numCalls int
}

func (f *fakeClassifier) Classify(ctx context.Context, sessionID, content string) (*agent.Classification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.numCalls++
	return f.result, nil
}

func (f *fakeClassifier) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.numCalls
}

type fakeArchitect struct {
	draft *models.PlanDraft
}

func (f *fakeArchitect) Propose(ctx context.Context, sessionID, goal string, history []models.Message, feedback string) (*models.PlanDraft, error) {
	return f.draft, nil
}

// scriptedAgent replays one event script per Process call.
type scriptedAgent struct {
	agentType string

	mu      sync.Mutex
	scripts [][]agent.Event
}

func (a *scriptedAgent) Type() string { return a.agentType }

func (a *scriptedAgent) Process(ctx context.Context, input *agent.ProcessInput) (<-chan agent.Event, error) {
	a.mu.Lock()
	var script []agent.Event
	if len(a.scripts) > 0 {
		script = a.scripts[0]
		a.scripts = a.scripts[1:]
	}
	a.mu.Unlock()

	ch := make(chan agent.Event, len(script))
	for _, ev := range script {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

// --- fixture ----------------------------------------------------------

type fixture struct {
	coordinator   *Coordinator
	machine       *fsm.Orchestrator
	conversations *fakeConversations
	plans         *fakePlans
	engine        *fakeEngine
	classifier    *fakeClassifier
	architect     *fakeArchitect
	coder         *scriptedAgent
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	conversations := &fakeConversations{}
	plans := &fakePlans{}
	contexts := newFakeContexts()
	eng := &fakeEngine{plans: plans}
	classifier := &fakeClassifier{result: &agent.Classification{IsAtomic: true, TargetAgent: agent.TypeCoder}}
	architect := &fakeArchitect{}

	coder := &scriptedAgent{agentType: agent.TypeCoder}
	registry := agent.NewRegistry()
	registry.Register(coder)

	audit := events.NewAuditLog(nil, events.NewBus())
	approvals := approval.NewManager(approval.DefaultPolicy(), newFakeApprovalStore(), audit)
	machine := fsm.NewOrchestrator(nil, logger)

	coordinator := NewCoordinator(Config{
		Locks:         session.NewLockManager(),
		Machine:       machine,
		Conversations: conversations,
		Plans:         plans,
		Contexts:      contexts,
		Approvals:     approvals,
		Engine:        eng,
		Registry:      registry,
		Classifier:    classifier,
		Architect:     architect,
		Audit:         audit,
		Logger:        logger,
		StreamTimeout: 5 * time.Second,
	})

	return &fixture{
		coordinator:   coordinator,
		machine:       machine,
		conversations: conversations,
		plans:         plans,
		engine:        eng,
		classifier:    classifier,
		architect:     architect,
		coder:         coder,
	}
}

func (f *fixture) send(t *testing.T, sessionID string, msg models.ClientMessage) (string, []models.StreamEvent) {
	t.Helper()
	id, ch := f.coordinator.ProcessMessage(context.Background(), &models.AgentMessageRequest{
		SessionID: sessionID,
		Message:   msg,
	})

	var got []models.StreamEvent
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return id, got
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatal("stream did not close")
		}
	}
}

func eventTypes(events []models.StreamEvent) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.EventType())
	}
	return out
}

func findEvent(events []models.StreamEvent, eventType string) models.StreamEvent {
	for _, ev := range events {
		if ev.EventType() == eventType {
			return ev
		}
	}
	return nil
}

func twoStepDraft() *models.PlanDraft {
	return &models.PlanDraft{
		Goal: "build and verify",
		Subtasks: []models.SubtaskDraft{
			{ID: "t1", Description: "write the code", Agent: agent.TypeCoder},
			{ID: "t2", Description: "verify the code", Agent: agent.TypeCoder, Dependencies: []string{"t1"}},
		},
	}
}

// --- tests ------------------------------------------------------------

func TestAtomicTurnStreamsTokens(t *testing.T) {
	f := newFixture(t)
	f.coder.scripts = [][]agent.Event{{
		&agent.TokenEvent{Content: "hello "},
		&agent.TokenEvent{Content: "world", IsFinal: true},
	}}

	sessionID, got := f.send(t, "", models.ClientMessage{
		Kind:    models.MessageKindUserMessage,
		Content: "say hello",
	})

	types := eventTypes(got)
	require.NotEmpty(t, types)
	assert.Equal(t, models.EventTypeSessionInfo, types[0])
	assert.Contains(t, types, models.EventTypeAgentSwitched)

	tokens := 0
	for _, ev := range got {
		if msg, ok := ev.(models.AssistantMessageEvent); ok {
			tokens++
			if msg.IsFinal {
				assert.Equal(t, "world", msg.Token)
			}
		}
	}
	assert.Equal(t, 2, tokens)
	assert.Equal(t, fsm.StateCompleted, f.machine.CurrentState(sessionID))
}

func TestPlanApprovalFlowRunsFirstSubtask(t *testing.T) {
	f := newFixture(t)
	f.classifier.result = &agent.Classification{IsAtomic: false, TargetAgent: agent.TypeArchitect}
	f.architect.draft = twoStepDraft()

	sessionID, got := f.send(t, "", models.ClientMessage{
		Kind:    models.MessageKindUserMessage,
		Content: "build the feature and verify it",
	})

	approvalEvent := findEvent(got, models.EventTypePlanApprovalRequired)
	require.NotNil(t, approvalEvent, "expected a plan approval request, got %v", eventTypes(got))
	pae := approvalEvent.(models.PlanApprovalRequiredEvent)
	assert.Equal(t, 2, pae.PlanSummary.SubtasksCount)
	assert.Equal(t, fsm.StatePlanReview, f.machine.CurrentState(sessionID))

	_, got = f.send(t, sessionID, models.ClientMessage{
		Kind:              models.MessageKindPlanDecision,
		ApprovalRequestID: pae.ApprovalRequestID,
		Decision:          models.DecisionApprove,
	})

	types := eventTypes(got)
	assert.Contains(t, types, models.EventTypePlanExecutionStarted)
	assert.Contains(t, types, models.EventTypeSubtaskCompleted)
	assert.NotContains(t, types, models.EventTypeExecutionCompleted)

	// One subtask per request; the session waits for the next client message.
	assert.Equal(t, fsm.StatePlanExecution, f.machine.CurrentState(sessionID))
	plan, err := f.plans.GetActivePlan(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PlanStatusInProgress, plan.Status)
}

func TestUserMessageContinuesInProgressPlan(t *testing.T) {
	f := newFixture(t)
	f.classifier.result = &agent.Classification{IsAtomic: false, TargetAgent: agent.TypeArchitect}
	f.architect.draft = twoStepDraft()

	sessionID, got := f.send(t, "", models.ClientMessage{
		Kind:    models.MessageKindUserMessage,
		Content: "build the feature and verify it",
	})
	pae := findEvent(got, models.EventTypePlanApprovalRequired).(models.PlanApprovalRequiredEvent)
	f.send(t, sessionID, models.ClientMessage{
		Kind:              models.MessageKindPlanDecision,
		ApprovalRequestID: pae.ApprovalRequestID,
		Decision:          models.DecisionApprove,
	})
	require.Equal(t, fsm.StatePlanExecution, f.machine.CurrentState(sessionID))
	classifierCalls := f.classifier.calls()

	// The next user message advances the plan instead of opening a new turn.
	_, got = f.send(t, sessionID, models.ClientMessage{
		Kind:    models.MessageKindUserMessage,
		Content: "continue",
	})

	types := eventTypes(got)
	assert.Contains(t, types, models.EventTypeSubtaskCompleted)
	assert.Contains(t, types, models.EventTypeExecutionCompleted)
	assert.Equal(t, fsm.StateCompleted, f.machine.CurrentState(sessionID))

	plan, err := f.plans.GetLatestPlan(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PlanStatusCompleted, plan.Status)

	// The continue signal never reaches classification.
	assert.Equal(t, classifierCalls, f.classifier.calls())
	assert.Equal(t, 2, f.engine.calls())
}

func TestStrayToolResultContinuesInProgressPlan(t *testing.T) {
	f := newFixture(t)
	f.classifier.result = &agent.Classification{IsAtomic: false, TargetAgent: agent.TypeArchitect}
	f.architect.draft = twoStepDraft()

	sessionID, got := f.send(t, "", models.ClientMessage{
		Kind:    models.MessageKindUserMessage,
		Content: "build the feature and verify it",
	})
	pae := findEvent(got, models.EventTypePlanApprovalRequired).(models.PlanApprovalRequiredEvent)
	f.send(t, sessionID, models.ClientMessage{
		Kind:              models.MessageKindPlanDecision,
		ApprovalRequestID: pae.ApprovalRequestID,
		Decision:          models.DecisionApprove,
	})
	require.Equal(t, fsm.StatePlanExecution, f.machine.CurrentState(sessionID))

	// A tool result nothing waits on still advances the running plan.
	_, got = f.send(t, sessionID, models.ClientMessage{
		Kind:   models.MessageKindToolResult,
		CallID: "stale-call",
		Result: "ok",
	})

	types := eventTypes(got)
	assert.NotContains(t, types, models.EventTypeError)
	assert.Contains(t, types, models.EventTypeExecutionCompleted)
	assert.Equal(t, fsm.StateCompleted, f.machine.CurrentState(sessionID))
}

func TestPlanRejectClosesEpisode(t *testing.T) {
	f := newFixture(t)
	f.classifier.result = &agent.Classification{IsAtomic: false, TargetAgent: agent.TypeArchitect}
	f.architect.draft = twoStepDraft()

	sessionID, got := f.send(t, "", models.ClientMessage{
		Kind:    models.MessageKindUserMessage,
		Content: "build the feature and verify it",
	})
	pae := findEvent(got, models.EventTypePlanApprovalRequired).(models.PlanApprovalRequiredEvent)

	_, got = f.send(t, sessionID, models.ClientMessage{
		Kind:              models.MessageKindPlanDecision,
		ApprovalRequestID: pae.ApprovalRequestID,
		Decision:          models.DecisionReject,
		Feedback:          "not like this",
	})

	assert.Contains(t, eventTypes(got), models.EventTypePlanExecutionRejected)
	assert.Equal(t, fsm.StateIdle, f.machine.CurrentState(sessionID))

	plan, err := f.plans.GetLatestPlan(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PlanStatusCancelled, plan.Status)
}

func TestToolResultResumesAtomicAgent(t *testing.T) {
	f := newFixture(t)
	f.coder.scripts = [][]agent.Event{
		{&agent.ToolCallEvent{CallID: "call-1", Name: "read_file", Arguments: `{"path":"main.go"}`}},
		{&agent.TokenEvent{Content: "the file is fine", IsFinal: true}},
	}

	sessionID, got := f.send(t, "", models.ClientMessage{
		Kind:    models.MessageKindUserMessage,
		Content: "inspect main.go",
	})

	callEvent := findEvent(got, models.EventTypeToolCall)
	require.NotNil(t, callEvent, "expected a tool call, got %v", eventTypes(got))
	assert.Equal(t, "call-1", callEvent.(models.ToolCallEvent).CallID)
	assert.Equal(t, fsm.StateExecution, f.machine.CurrentState(sessionID))

	_, got = f.send(t, sessionID, models.ClientMessage{
		Kind:   models.MessageKindToolResult,
		CallID: "call-1",
		Result: "package main",
	})

	types := eventTypes(got)
	resultEvent := findEvent(got, models.EventTypeToolResult)
	require.NotNil(t, resultEvent, "expected the tool result to be streamed, got %v", types)
	assert.Equal(t, "call-1", resultEvent.(models.ToolResultEvent).CallID)
	assert.Equal(t, "package main", resultEvent.(models.ToolResultEvent).Result)

	assert.Contains(t, types, models.EventTypeAssistantMessage)
	assert.Equal(t, fsm.StateCompleted, f.machine.CurrentState(sessionID))
}

func TestConcurrentMessageRejectedWhileLocked(t *testing.T) {
	f := newFixture(t)

	f.classifier.result = &agent.Classification{IsAtomic: true, TargetAgent: agent.TypeCoder}
	f.coder.scripts = [][]agent.Event{{
		&agent.TokenEvent{Content: "ok", IsFinal: true},
	}}

	// Occupy the session lock directly, the way an in-flight request would.
	sessionID := uuid.New().String()
	f.send(t, sessionID, models.ClientMessage{Kind: models.MessageKindUserMessage, Content: "warm up"})

	release, ok := f.coordinator.locks.TryAcquire(sessionID)
	require.True(t, ok)
	defer release()

	_, got := f.send(t, sessionID, models.ClientMessage{
		Kind:    models.MessageKindUserMessage,
		Content: "second message",
	})

	errEvent := findEvent(got, models.EventTypeError)
	require.NotNil(t, errEvent)
	assert.Contains(t, errEvent.(models.ErrorEvent).Content, "already being processed")
}
