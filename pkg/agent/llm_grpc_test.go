package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	llmv1 "github.com/maestro-ai/maestro/proto"
)

func TestWithAuthAttachesBearerKey(t *testing.T) {
	ctx := withAuth(context.Background(), "sk-test")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"Bearer sk-test"}, md.Get("authorization"))
}

func TestWithAuthNoopWithoutKey(t *testing.T) {
	ctx := withAuth(context.Background(), "")

	_, ok := metadata.FromOutgoingContext(ctx)
	assert.False(t, ok)
}

func TestToProtoRequestCarriesToolBindings(t *testing.T) {
	req := toProtoRequest(&CompletionInput{
		SessionID: "s1",
		Model:     "gpt-4o",
		Messages: []ChatMessage{
			{Role: "assistant", ToolCalls: []ToolCall{
				{ID: "c-1", Name: "read_file", Arguments: `{"path":"x"}`},
			}},
			{Role: "tool", Content: "data", ToolCallID: "c-1", ToolName: "read_file"},
		},
		Tools: []ToolDefinition{{Name: "read_file", Description: "reads a file"}},
	})

	require.Len(t, req.Messages, 2)
	require.Len(t, req.Messages[0].ToolCalls, 1)
	assert.Equal(t, "c-1", req.Messages[0].ToolCalls[0].Id)
	assert.Equal(t, "c-1", req.Messages[1].ToolCallId)
	require.Len(t, req.Tools, 1)
	assert.Equal(t, "read_file", req.Tools[0].Name)
}

func TestFromProtoChunkVariants(t *testing.T) {
	text := fromProtoChunk(&llmv1.ChatCompletionChunk{
		Chunk: &llmv1.ChatCompletionChunk_Delta{
			Delta: &llmv1.ContentDelta{Content: "hi", IsFinal: true},
		},
	})
	require.IsType(t, &TextChunk{}, text)
	assert.True(t, text.(*TextChunk).IsFinal)

	call := fromProtoChunk(&llmv1.ChatCompletionChunk{
		Chunk: &llmv1.ChatCompletionChunk_ToolCall{
			ToolCall: &llmv1.ToolCall{Id: "c-1", Name: "read_file"},
		},
	})
	require.IsType(t, &ToolCallChunk{}, call)
	assert.Equal(t, "read_file", call.(*ToolCallChunk).Name)
}
