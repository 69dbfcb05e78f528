package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-ai/maestro/pkg/models"
)

func drain(t *testing.T, events <-chan Event) []Event {
	t.Helper()
	var out []Event
	for ev := range events {
		out = append(out, ev)
	}
	return out
}

func TestLLMAgentStreamsTokens(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks("hello ", "world")}
	ag := NewLLMAgent(TypeCoder, llm, "test-model")

	events, err := ag.Process(context.Background(), &ProcessInput{SessionID: "s1", Task: "say hello"})
	require.NoError(t, err)

	out := drain(t, events)
	require.Len(t, out, 2)
	first := out[0].(*TokenEvent)
	assert.Equal(t, "hello ", first.Content)
	assert.False(t, first.IsFinal)
	last := out[1].(*TokenEvent)
	assert.Equal(t, "world", last.Content)
	assert.True(t, last.IsFinal)
}

func TestLLMAgentSynthesizesFinalToken(t *testing.T) {
	// A stream that ends without a final marker still gets a defined end.
	llm := &scriptedLLM{chunks: []Chunk{&TextChunk{Content: "partial"}}}
	ag := NewLLMAgent(TypeCoder, llm, "test-model")

	events, err := ag.Process(context.Background(), &ProcessInput{SessionID: "s1", Task: "x"})
	require.NoError(t, err)

	out := drain(t, events)
	require.Len(t, out, 2)
	assert.True(t, out[1].(*TokenEvent).IsFinal)
}

func TestLLMAgentForwardsToolCall(t *testing.T) {
	llm := &scriptedLLM{chunks: []Chunk{
		&ToolCallChunk{CallID: "call-1", Name: "read_file", Arguments: `{"path":"x"}`},
	}}
	ag := NewLLMAgent(TypeCoder, llm, "test-model")

	events, err := ag.Process(context.Background(), &ProcessInput{SessionID: "s1", Task: "x"})
	require.NoError(t, err)

	out := drain(t, events)
	require.Len(t, out, 1)
	tc := out[0].(*ToolCallEvent)
	assert.Equal(t, "call-1", tc.CallID)
	assert.Equal(t, "read_file", tc.Name)
}

func TestLLMAgentDetectsEmbeddedError(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks("[Error] model exploded")}
	ag := NewLLMAgent(TypeCoder, llm, "test-model")

	events, err := ag.Process(context.Background(), &ProcessInput{SessionID: "s1", Task: "x"})
	require.NoError(t, err)

	out := drain(t, events)
	require.Len(t, out, 1)
	assert.Contains(t, out[0].(*ErrorEvent).Message, "model exploded")
}

func TestBuildMessagesOrder(t *testing.T) {
	input := &ProcessInput{
		SessionID: "s1",
		Task:      "current task",
		Context:   "Results from completed dependencies:\n\n### a\nok\n",
		History: []models.Message{
			{Role: models.RoleUser, Content: "earlier question"},
			{Role: models.RoleAssistant, Content: "earlier answer", ToolCalls: []models.ToolCallRecord{
				{ID: "c1", Name: "read_file", Arguments: `{}`},
			}},
			{Role: models.RoleTool, Content: "file contents", ToolCallID: "c1"},
		},
	}

	messages := BuildMessages("you are a coder", input)
	require.Len(t, messages, 6)

	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "you are a coder", messages[0].Content)
	assert.Equal(t, "system", messages[1].Role)
	assert.Contains(t, messages[1].Content, "completed dependencies")
	assert.Equal(t, "user", messages[2].Role)
	assert.Equal(t, "assistant", messages[3].Role)
	require.Len(t, messages[3].ToolCalls, 1)
	assert.Equal(t, "c1", messages[3].ToolCalls[0].ID)
	assert.Equal(t, "tool", messages[4].Role)
	assert.Equal(t, "c1", messages[4].ToolCallID)
	assert.Equal(t, "user", messages[5].Role)
	assert.Equal(t, "current task", messages[5].Content)
}

func TestBuildMessagesOmitsEmptyParts(t *testing.T) {
	messages := BuildMessages("prompt", &ProcessInput{SessionID: "s1"})
	require.Len(t, messages, 1)
	assert.Equal(t, "system", messages[0].Role)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(NewLLMAgent(TypeCoder, &scriptedLLM{}, "m"))
	r.Register(NewLLMAgent(TypeDebug, &scriptedLLM{}, "m"))

	ag, err := r.Get(TypeCoder)
	require.NoError(t, err)
	assert.Equal(t, TypeCoder, ag.Type())

	_, err = r.Get("nonexistent")
	require.Error(t, err)

	assert.ElementsMatch(t, []string{TypeCoder, TypeDebug}, r.Types())
}

func TestArchitectProposeValidDraft(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks(`{
		"goal": "build the thing",
		"subtasks": [
			{"id": "t1", "description": "scaffold", "agent": "coder", "dependencies": []},
			{"id": "t2", "description": "verify", "agent": "debug", "dependencies": ["t1"]}
		]
	}`)}
	a := NewArchitect(llm, "test-model")

	draft, err := a.Propose(context.Background(), "s1", "build the thing", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "build the thing", draft.Goal)
	require.Len(t, draft.Subtasks, 2)
	assert.Equal(t, []string{"t1"}, draft.Subtasks[1].Dependencies)
}

func TestArchitectRejectsNonExecutingAssignee(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks(`{
		"goal": "g",
		"subtasks": [{"id": "t1", "description": "d", "agent": "architect"}]
	}`)}
	a := NewArchitect(llm, "test-model")

	_, err := a.Propose(context.Background(), "s1", "g", nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-executing agent")
}

func TestArchitectRejectsEmptyDraft(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks(`{"goal": "g", "subtasks": []}`)}
	a := NewArchitect(llm, "test-model")

	_, err := a.Propose(context.Background(), "s1", "g", nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subtasks")
}

func TestArchitectFeedbackAppended(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks(`{
		"goal": "g",
		"subtasks": [{"id": "t1", "description": "d", "agent": "coder"}]
	}`)}
	a := NewArchitect(llm, "test-model")

	_, err := a.Propose(context.Background(), "s1", "g", nil, "make it smaller")
	require.NoError(t, err)

	last := llm.lastInput.Messages[len(llm.lastInput.Messages)-1]
	assert.Contains(t, last.Content, "make it smaller")
}
