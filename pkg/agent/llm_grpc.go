package agent

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	llmv1 "github.com/maestro-ai/maestro/proto"
)

// GRPCLLMClient implements LLMClient by calling the LLM proxy via gRPC.
type GRPCLLMClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
	apiKey string
}

// NewGRPCLLMClient creates a new gRPC LLM client. apiKey is the LiteLLM
// proxy key; when set it is attached to every RPC as bearer metadata.
func NewGRPCLLMClient(addr, apiKey string) (*GRPCLLMClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM proxy at %s: %w", addr, err)
	}
	return &GRPCLLMClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
		apiKey: apiKey,
	}, nil
}

// withAuth attaches the proxy API key to the outgoing call metadata.
func withAuth(ctx context.Context, apiKey string) context.Context {
	if apiKey == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+apiKey)
}

// ChatCompletion sends a conversation to the LLM and returns a channel of
// chunks.
func (c *GRPCLLMClient) ChatCompletion(ctx context.Context, input *CompletionInput) (<-chan Chunk, error) {
	ctx = withAuth(ctx, c.apiKey)
	stream, err := c.client.ChatCompletion(ctx, toProtoRequest(input))
	if err != nil {
		return nil, fmt.Errorf("gRPC ChatCompletion call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: false}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoChunk(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCLLMClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(input *CompletionInput) *llmv1.ChatCompletionRequest {
	req := &llmv1.ChatCompletionRequest{
		SessionId: input.SessionID,
		Model:     input.Model,
		Messages:  make([]*llmv1.ChatMessage, len(input.Messages)),
	}
	for i, m := range input.Messages {
		pm := &llmv1.ChatMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallId: m.ToolCallID,
			ToolName:   m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			pm.ToolCalls = append(pm.ToolCalls, &llmv1.ToolCall{
				Id:        tc.ID,
				Name:      tc.Name,
				Arguments: tc.Arguments,
			})
		}
		req.Messages[i] = pm
	}
	for _, t := range input.Tools {
		req.Tools = append(req.Tools, &llmv1.ToolDefinition{
			Name:             t.Name,
			Description:      t.Description,
			ParametersSchema: t.ParametersSchema,
		})
	}
	return req
}

func fromProtoChunk(resp *llmv1.ChatCompletionChunk) Chunk {
	switch c := resp.Chunk.(type) {
	case *llmv1.ChatCompletionChunk_Delta:
		return &TextChunk{Content: c.Delta.Content, IsFinal: c.Delta.IsFinal}
	case *llmv1.ChatCompletionChunk_ToolCall:
		return &ToolCallChunk{
			CallID:    c.ToolCall.Id,
			Name:      c.ToolCall.Name,
			Arguments: c.ToolCall.Arguments,
		}
	case *llmv1.ChatCompletionChunk_Usage:
		return &UsageChunk{
			InputTokens:  c.Usage.InputTokens,
			OutputTokens: c.Usage.OutputTokens,
			TotalTokens:  c.Usage.TotalTokens,
		}
	case *llmv1.ChatCompletionChunk_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Code:      c.Error.Code,
			Retryable: c.Error.Retryable,
		}
	default:
		return nil
	}
}
