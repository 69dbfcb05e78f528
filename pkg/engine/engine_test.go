package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-ai/maestro/pkg/agent"
	"github.com/maestro-ai/maestro/pkg/models"
	"github.com/maestro-ai/maestro/pkg/services"
)

// fakePlanStore keeps plans in memory with the same lifecycle rules the
// real service enforces.
type fakePlanStore struct {
	mu    sync.Mutex
	plans map[string]*models.Plan
}

func newFakePlanStore(plans ...*models.Plan) *fakePlanStore {
	s := &fakePlanStore{plans: make(map[string]*models.Plan)}
	for _, p := range plans {
		s.plans[p.ID] = p
	}
	return s
}

func (s *fakePlanStore) GetPlan(_ context.Context, planID string) (*models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan, exists := s.plans[planID]
	if !exists {
		return nil, services.ErrNotFound
	}
	return plan, nil
}

func (s *fakePlanStore) GetActivePlan(_ context.Context, sessionID string) (*models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, plan := range s.plans {
		if plan.SessionID == sessionID && !plan.Status.IsTerminal() {
			return plan, nil
		}
	}
	return nil, services.ErrNotFound
}

func (s *fakePlanStore) UpdatePlanStatus(_ context.Context, planID string, target models.PlanStatus, _ string) (*models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan, exists := s.plans[planID]
	if !exists {
		return nil, services.ErrNotFound
	}
	if plan.Status == target {
		return plan, nil
	}
	if !plan.Status.CanTransitionTo(target) {
		return nil, services.ErrInvalidTransition
	}
	plan.Status = target
	return plan, nil
}

func (s *fakePlanStore) SetCurrentSubtask(_ context.Context, planID, subtaskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan, exists := s.plans[planID]
	if !exists {
		return services.ErrNotFound
	}
	plan.CurrentSubtaskID = subtaskID
	return nil
}

func (s *fakePlanStore) UpdateSubtaskStatus(_ context.Context, subtaskID string, target models.SubtaskStatus, result, errText string) (*models.Subtask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, plan := range s.plans {
		if st := plan.SubtaskByID(subtaskID); st != nil {
			if st.Status != target && !st.Status.CanTransitionTo(target) {
				return nil, services.ErrInvalidTransition
			}
			st.Status = target
			if target == models.SubtaskStatusRunning && st.StartedAt == nil {
				now := time.Now()
				st.StartedAt = &now
			}
			if target == models.SubtaskStatusDone {
				st.Result = result
				st.Error = ""
			}
			if target == models.SubtaskStatusFailed {
				st.Error = errText
			}
			return st, nil
		}
	}
	return nil, services.ErrNotFound
}

// fakeConversationStore keeps messages and snapshots in memory.
type fakeConversationStore struct {
	mu        sync.Mutex
	messages  []models.Message
	snapshots map[string]*models.Snapshot
	nextSeq   int
}

func newFakeConversationStore() *fakeConversationStore {
	return &fakeConversationStore{snapshots: make(map[string]*models.Snapshot)}
}

func (s *fakeConversationStore) AppendMessage(_ context.Context, req models.AppendMessageRequest) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	msg := models.Message{
		ID:             fmt.Sprintf("m%d", s.nextSeq),
		SequenceNumber: s.nextSeq,
		Role:           req.Role,
		Content:        req.Content,
		ToolCalls:      req.ToolCalls,
		ToolCallID:     req.ToolCallID,
	}
	s.messages = append(s.messages, msg)
	return &msg, nil
}

func (s *fakeConversationStore) GetHistory(_ context.Context, _ string, _ int) ([]*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Message, len(s.messages))
	for i := range s.messages {
		m := s.messages[i]
		out[i] = &m
	}
	return out, nil
}

func (s *fakeConversationStore) CreateSubtaskSnapshot(_ context.Context, conversationID, subtaskID string) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := &models.Snapshot{
		ID:             "snap-" + subtaskID,
		ConversationID: conversationID,
		SubtaskID:      subtaskID,
		Messages:       append([]models.Message(nil), s.messages...),
	}
	s.snapshots[subtaskID] = snap
	return snap, nil
}

func (s *fakeConversationStore) GetSnapshotForSubtask(_ context.Context, subtaskID string) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, exists := s.snapshots[subtaskID]
	if !exists {
		return nil, services.ErrNotFound
	}
	return snap, nil
}

func (s *fakeConversationStore) RestoreFromSnapshot(_ context.Context, snapshotID string, opts services.RestoreOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, snap := range s.snapshots {
		if snap.ID != snapshotID {
			continue
		}
		var preserved *models.Message
		if opts.PreserveLastResult {
			for i := len(s.messages) - 1; i >= 0; i-- {
				if s.messages[i].Role == models.RoleAssistant {
					m := s.messages[i]
					preserved = &m
					break
				}
			}
		}
		s.messages = append([]models.Message(nil), snap.Messages...)
		if preserved != nil {
			s.messages = append(s.messages, *preserved)
		}
		return nil
	}
	return services.ErrNotFound
}

// scriptedAgent emits a fixed sequence of events per Process call.
type scriptedAgent struct {
	agentType string
	scripts   [][]agent.Event
	calls     int
}

func (a *scriptedAgent) Type() string { return a.agentType }

func (a *scriptedAgent) Process(_ context.Context, _ *agent.ProcessInput) (<-chan agent.Event, error) {
	script := a.scripts[a.calls]
	if a.calls < len(a.scripts)-1 {
		a.calls++
	}
	out := make(chan agent.Event, len(script))
	for _, ev := range script {
		out <- ev
	}
	close(out)
	return out, nil
}

type fakeRegistry struct {
	agents map[string]agent.Agent
}

func (r *fakeRegistry) Get(agentType string) (agent.Agent, error) {
	ag, exists := r.agents[agentType]
	if !exists {
		return nil, fmt.Errorf("unknown agent type: %s", agentType)
	}
	return ag, nil
}

// fakeGate requires approval for tool names in the require set.
type fakeGate struct {
	mu      sync.Mutex
	require map[string]bool
	pending map[string]*models.PendingApproval
}

func newFakeGate(requireTools ...string) *fakeGate {
	g := &fakeGate{require: make(map[string]bool), pending: make(map[string]*models.PendingApproval)}
	for _, name := range requireTools {
		g.require[name] = true
	}
	return g
}

func (g *fakeGate) ShouldRequireApproval(_ models.ApprovalKind, subject string, _ map[string]any) (bool, string) {
	if g.require[subject] {
		return true, "policy"
	}
	return false, ""
}

func (g *fakeGate) AddPending(_ context.Context, req services.AddPendingRequest) (*models.PendingApproval, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	pa := &models.PendingApproval{
		RequestID: req.RequestID,
		Kind:      req.Kind,
		Subject:   req.Subject,
		SessionID: req.SessionID,
		Status:    models.ApprovalStatusPending,
	}
	g.pending[req.RequestID] = pa
	return pa, nil
}

func (g *fakeGate) GetPending(_ context.Context, requestID string) (*models.PendingApproval, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	pa, exists := g.pending[requestID]
	if !exists {
		return nil, services.ErrNotFound
	}
	return pa, nil
}

func (g *fakeGate) resolve(requestID string, status models.ApprovalStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if pa, exists := g.pending[requestID]; exists {
		pa.Status = status
	}
}

func finalText(content string) []agent.Event {
	return []agent.Event{&agent.TokenEvent{Content: content, IsFinal: true}}
}

func collectEvents(out chan models.StreamEvent) []models.StreamEvent {
	close(out)
	var events []models.StreamEvent
	for ev := range out {
		events = append(events, ev)
	}
	return events
}

func eventTypes(events []models.StreamEvent) []string {
	types := make([]string, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.EventType())
	}
	return types
}

func newTestEngine(plans *fakePlanStore, conv *fakeConversationStore, registry *fakeRegistry, gate *fakeGate) *Engine {
	executor := NewSubtaskExecutor(plans, conv, registry, gate, nil, slog.Default())
	return NewEngine(plans, executor, gate, NewDeduplicator(time.Minute, 100), 1, slog.Default())
}

func twoStepPlan() *models.Plan {
	return &models.Plan{
		ID:        "plan-1",
		SessionID: "s1",
		Goal:      "two step goal",
		Status:    models.PlanStatusApproved,
		Subtasks: []*models.Subtask{
			{ID: "sub-1", PlanID: "plan-1", Description: "first step", AssignedAgentID: "coder", Status: models.SubtaskStatusPending},
			{ID: "sub-2", PlanID: "plan-1", Description: "second step", AssignedAgentID: "coder", Status: models.SubtaskStatusPending, Dependencies: []string{"sub-1"}},
		},
	}
}

func TestExecutePlanRunsOneSubtaskPerCall(t *testing.T) {
	plan := twoStepPlan()
	plans := newFakePlanStore(plan)
	conv := newFakeConversationStore()
	coder := &scriptedAgent{agentType: "coder", scripts: [][]agent.Event{finalText("step one done")}}
	eng := newTestEngine(plans, conv, &fakeRegistry{agents: map[string]agent.Agent{"coder": coder}}, newFakeGate())

	out := make(chan models.StreamEvent, 64)
	require.NoError(t, eng.ExecutePlan(context.Background(), "plan-1", "s1", out))

	assert.Equal(t, models.PlanStatusInProgress, plan.Status)
	assert.Equal(t, models.SubtaskStatusDone, plan.Subtasks[0].Status)
	assert.Equal(t, "step one done", plan.Subtasks[0].Result)
	// The second subtask waits for the next call.
	assert.Equal(t, models.SubtaskStatusPending, plan.Subtasks[1].Status)

	types := eventTypes(collectEvents(out))
	assert.Contains(t, types, models.EventTypeStatus)
	assert.Contains(t, types, models.EventTypeSubtaskCompleted)
}

func TestExecutePlanCompletesAfterLastSubtask(t *testing.T) {
	plan := twoStepPlan()
	plans := newFakePlanStore(plan)
	conv := newFakeConversationStore()
	coder := &scriptedAgent{agentType: "coder", scripts: [][]agent.Event{
		finalText("step one done"),
		finalText("step two done"),
	}}
	eng := newTestEngine(plans, conv, &fakeRegistry{agents: map[string]agent.Agent{"coder": coder}}, newFakeGate())

	out := make(chan models.StreamEvent, 64)
	require.NoError(t, eng.ExecutePlan(context.Background(), "plan-1", "s1", out))
	require.NoError(t, eng.ExecutePlan(context.Background(), "plan-1", "s1", out))

	assert.Equal(t, models.PlanStatusCompleted, plan.Status)
	types := eventTypes(collectEvents(out))
	assert.Contains(t, types, models.EventTypeExecutionCompleted)
}

func TestExecutePlanRefusesDraft(t *testing.T) {
	plan := twoStepPlan()
	plan.Status = models.PlanStatusDraft
	eng := newTestEngine(newFakePlanStore(plan), newFakeConversationStore(),
		&fakeRegistry{agents: map[string]agent.Agent{}}, newFakeGate())

	out := make(chan models.StreamEvent, 8)
	err := eng.ExecutePlan(context.Background(), "plan-1", "s1", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not executable")
}

func TestToolCallSuspendsSubtask(t *testing.T) {
	plan := twoStepPlan()
	plans := newFakePlanStore(plan)
	conv := newFakeConversationStore()
	coder := &scriptedAgent{agentType: "coder", scripts: [][]agent.Event{
		{&agent.ToolCallEvent{CallID: "call-1", Name: "read_file", Arguments: `{"path":"main.go"}`}},
		finalText("done after tool"),
	}}
	eng := newTestEngine(plans, conv, &fakeRegistry{agents: map[string]agent.Agent{"coder": coder}}, newFakeGate())

	out := make(chan models.StreamEvent, 64)
	require.NoError(t, eng.ExecutePlan(context.Background(), "plan-1", "s1", out))

	// Suspended: still running, current subtask recorded.
	assert.Equal(t, models.SubtaskStatusRunning, plan.Subtasks[0].Status)
	assert.Equal(t, "sub-1", plan.CurrentSubtaskID)
	types := eventTypes(collectEvents(out))
	assert.Contains(t, types, models.EventTypeToolCall)

	// The tool result resumes and completes the subtask.
	out2 := make(chan models.StreamEvent, 64)
	handled, err := eng.HandleToolResult(context.Background(), "s1", "call-1", "file contents", "", out2)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, models.SubtaskStatusDone, plan.Subtasks[0].Status)

	// The accepted result is echoed to the stream before the agent resumes.
	resumed := collectEvents(out2)
	require.NotEmpty(t, resumed)
	result, ok := resumed[0].(models.ToolResultEvent)
	require.True(t, ok, "expected a tool result first, got %v", eventTypes(resumed))
	assert.Equal(t, "call-1", result.CallID)
	assert.Equal(t, "file contents", result.Result)
}

func TestToolCallRequiringApprovalEmitsApprovalRequest(t *testing.T) {
	plan := twoStepPlan()
	plans := newFakePlanStore(plan)
	gate := newFakeGate("delete_file")
	coder := &scriptedAgent{agentType: "coder", scripts: [][]agent.Event{
		{&agent.ToolCallEvent{CallID: "call-1", Name: "delete_file", Arguments: `{"path":"main.go"}`}},
	}}
	eng := newTestEngine(plans, newFakeConversationStore(), &fakeRegistry{agents: map[string]agent.Agent{"coder": coder}}, gate)

	out := make(chan models.StreamEvent, 64)
	require.NoError(t, eng.ExecutePlan(context.Background(), "plan-1", "s1", out))

	types := eventTypes(collectEvents(out))
	assert.Contains(t, types, models.EventTypeToolApprovalRequired)
	assert.NotContains(t, types, models.EventTypeToolCall)

	pa, err := gate.GetPending(context.Background(), "call-1")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusPending, pa.Status)
}

func TestDuplicateToolResultDroppedSilently(t *testing.T) {
	plan := twoStepPlan()
	plans := newFakePlanStore(plan)
	conv := newFakeConversationStore()
	coder := &scriptedAgent{agentType: "coder", scripts: [][]agent.Event{
		{&agent.ToolCallEvent{CallID: "call-1", Name: "read_file", Arguments: `{}`}},
		finalText("done"),
	}}
	eng := newTestEngine(plans, conv, &fakeRegistry{agents: map[string]agent.Agent{"coder": coder}}, newFakeGate())

	out := make(chan models.StreamEvent, 64)
	require.NoError(t, eng.ExecutePlan(context.Background(), "plan-1", "s1", out))

	out2 := make(chan models.StreamEvent, 64)
	handled, err := eng.HandleToolResult(context.Background(), "s1", "call-1", "contents", "", out2)
	require.NoError(t, err)
	assert.True(t, handled)

	before := len(conv.messages)
	out3 := make(chan models.StreamEvent, 64)
	handled, err = eng.HandleToolResult(context.Background(), "s1", "call-1", "contents", "", out3)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Empty(t, collectEvents(out3))
	assert.Equal(t, before, len(conv.messages))
}

func TestToolResultWithoutActivePlanFallsThrough(t *testing.T) {
	eng := newTestEngine(newFakePlanStore(), newFakeConversationStore(),
		&fakeRegistry{agents: map[string]agent.Agent{}}, newFakeGate())

	out := make(chan models.StreamEvent, 8)
	handled, err := eng.HandleToolResult(context.Background(), "s1", "call-1", "result", "", out)
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestAgentErrorFailsSubtaskAndPlan(t *testing.T) {
	plan := twoStepPlan()
	plans := newFakePlanStore(plan)
	coder := &scriptedAgent{agentType: "coder", scripts: [][]agent.Event{
		{&agent.ErrorEvent{Message: "LLM unavailable"}},
	}}
	eng := newTestEngine(plans, newFakeConversationStore(), &fakeRegistry{agents: map[string]agent.Agent{"coder": coder}}, newFakeGate())

	out := make(chan models.StreamEvent, 64)
	require.NoError(t, eng.ExecutePlan(context.Background(), "plan-1", "s1", out))

	assert.Equal(t, models.SubtaskStatusFailed, plan.Subtasks[0].Status)
	assert.Equal(t, "LLM unavailable", plan.Subtasks[0].Error)
	assert.Equal(t, models.PlanStatusFailed, plan.Status)
}

func TestTruncateTextKeepsRuneBoundary(t *testing.T) {
	assert.Equal(t, "short error", truncateText("short error"))

	// 200 three-byte runes make 600 bytes; a byte cut at 500 would land
	// mid-rune, so the cut backs up to 498 bytes (166 whole runes).
	long := strings.Repeat("世", 200)
	got := truncateText(long)
	assert.Equal(t, 498, len(got))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("世", 166), got)

	ascii := strings.Repeat("x", 600)
	assert.Equal(t, 500, len(truncateText(ascii)))
}

func TestSubtaskSnapshotRestoredAfterCompletion(t *testing.T) {
	plan := twoStepPlan()
	plans := newFakePlanStore(plan)
	conv := newFakeConversationStore()
	// Pre-existing conversation.
	_, err := conv.AppendMessage(context.Background(), models.AppendMessageRequest{
		Role: models.RoleUser, Content: "original goal",
	})
	require.NoError(t, err)

	coder := &scriptedAgent{agentType: "coder", scripts: [][]agent.Event{finalText("subtask result")}}
	eng := newTestEngine(plans, conv, &fakeRegistry{agents: map[string]agent.Agent{"coder": coder}}, newFakeGate())

	out := make(chan models.StreamEvent, 64)
	require.NoError(t, eng.ExecutePlan(context.Background(), "plan-1", "s1", out))

	// Restored to original history plus the preserved result message; the
	// injected subtask prompt is gone.
	require.Len(t, conv.messages, 2)
	assert.Equal(t, "original goal", conv.messages[0].Content)
	assert.Equal(t, models.RoleAssistant, conv.messages[1].Role)
	assert.Equal(t, "subtask result", conv.messages[1].Content)
}

func TestCancelExecutionRefusesCompleted(t *testing.T) {
	plan := twoStepPlan()
	plan.Status = models.PlanStatusCompleted
	eng := newTestEngine(newFakePlanStore(plan), newFakeConversationStore(),
		&fakeRegistry{agents: map[string]agent.Agent{}}, newFakeGate())

	err := eng.CancelExecution(context.Background(), "plan-1", "because")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be cancelled")
}

func TestWaitForApprovalResolution(t *testing.T) {
	plan := twoStepPlan()
	plan.Status = models.PlanStatusInProgress
	plans := newFakePlanStore(plan)
	gate := newFakeGate()
	eng := newTestEngine(plans, newFakeConversationStore(), &fakeRegistry{agents: map[string]agent.Agent{}}, gate)

	_, err := gate.AddPending(context.Background(), services.AddPendingRequest{
		RequestID: "req-1", Kind: models.ApprovalKindTool, Subject: "t", SessionID: "s1",
	})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- eng.WaitForApprovalResolution(context.Background(), "plan-1", "s1", []string{"req-1"}, 5*time.Second)
	}()

	time.Sleep(100 * time.Millisecond)
	gate.resolve("req-1", models.ApprovalStatusApproved)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("waiter did not return after resolution")
	}
}

func TestWaitForApprovalResolutionTimeout(t *testing.T) {
	plan := twoStepPlan()
	plan.Status = models.PlanStatusInProgress
	plans := newFakePlanStore(plan)
	gate := newFakeGate()
	eng := newTestEngine(plans, newFakeConversationStore(), &fakeRegistry{agents: map[string]agent.Agent{}}, gate)

	_, err := gate.AddPending(context.Background(), services.AddPendingRequest{
		RequestID: "req-1", Kind: models.ApprovalKindTool, Subject: "t", SessionID: "s1",
	})
	require.NoError(t, err)

	err = eng.WaitForApprovalResolution(context.Background(), "plan-1", "s1", []string{"req-1"}, 100*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "req-1")
	assert.Equal(t, models.PlanStatusCancelled, plan.Status)
}
