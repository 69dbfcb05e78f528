package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM returns a fixed chunk sequence for every completion and
// records the last input it saw.
type scriptedLLM struct {
	chunks    []Chunk
	lastInput *CompletionInput
}

func (l *scriptedLLM) ChatCompletion(_ context.Context, input *CompletionInput) (<-chan Chunk, error) {
	l.lastInput = input
	out := make(chan Chunk, len(l.chunks))
	for _, c := range l.chunks {
		out <- c
	}
	close(out)
	return out, nil
}

func (l *scriptedLLM) Close() error { return nil }

func textChunks(parts ...string) []Chunk {
	chunks := make([]Chunk, 0, len(parts))
	for i, p := range parts {
		chunks = append(chunks, &TextChunk{Content: p, IsFinal: i == len(parts)-1})
	}
	return chunks
}

func TestClassifyAtomic(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks(`{"is_atomic": true, "target_agent": "coder"}`)}
	c := NewClassifier(llm, "test-model")

	result, err := c.Classify(context.Background(), "s1", "write a sort function")
	require.NoError(t, err)
	assert.True(t, result.IsAtomic)
	assert.Equal(t, TypeCoder, result.TargetAgent)
}

func TestClassifyStripsCodeFences(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks(
		"```json\n", `{"is_atomic": false, "target_agent": "architect"}`, "\n```",
	)}
	c := NewClassifier(llm, "test-model")

	result, err := c.Classify(context.Background(), "s1", "build me a web app")
	require.NoError(t, err)
	assert.False(t, result.IsAtomic)
	assert.Equal(t, TypeArchitect, result.TargetAgent)
}

func TestClassifyRejectsInvalidAtomicTarget(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks(`{"is_atomic": true, "target_agent": "architect"}`)}
	c := NewClassifier(llm, "test-model")

	_, err := c.Classify(context.Background(), "s1", "do something")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid agent")
}

func TestClassifyRequiresArchitectForCompound(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks(`{"is_atomic": false, "target_agent": "coder"}`)}
	c := NewClassifier(llm, "test-model")

	_, err := c.Classify(context.Background(), "s1", "do many things")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instead of architect")
}

func TestClassifySurfacesStreamError(t *testing.T) {
	llm := &scriptedLLM{chunks: []Chunk{&ErrorChunk{Message: "rate limited"}}}
	c := NewClassifier(llm, "test-model")

	_, err := c.Classify(context.Background(), "s1", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestClassifySurfacesEmbeddedProviderError(t *testing.T) {
	llm := &scriptedLLM{chunks: textChunks("LiteLLM proxy unavailable, try later")}
	c := NewClassifier(llm, "test-model")

	_, err := c.Classify(context.Background(), "s1", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LiteLLM proxy unavailable")
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", `Here is the result: {"a":1}. Done.`, `{"a":1}`},
		{"nested braces", `{"a":{"b":2}}`, `{"a":{"b":2}}`},
		{"no object", "nothing here", "nothing here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}

func TestSniffLLMError(t *testing.T) {
	_, found := SniffLLMError("a perfectly normal answer")
	assert.False(t, found)

	text, found := SniffLLMError("  [Error] upstream timed out")
	assert.True(t, found)
	assert.Contains(t, text, "upstream timed out")

	_, found = SniffLLMError("some output\nNo tool output found\nmore")
	assert.True(t, found)
}
