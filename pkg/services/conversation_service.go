// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-ai/maestro/ent"
	"github.com/maestro-ai/maestro/ent/conversation"
	"github.com/maestro-ai/maestro/ent/conversationsnapshot"
	"github.com/maestro-ai/maestro/ent/message"
	"github.com/maestro-ai/maestro/pkg/models"
)

// ConversationService manages per-session conversations, their ordered
// message history, and subtask isolation snapshots.
type ConversationService struct {
	client *ent.Client
	uow    *UnitOfWork
}

// NewConversationService creates a new ConversationService. A nil uow gets
// a default without an observer.
func NewConversationService(client *ent.Client, uow *UnitOfWork) *ConversationService {
	if uow == nil {
		uow = NewUnitOfWork(client, slog.Default(), nil)
	}
	return &ConversationService{client: client, uow: uow}
}

// GetOrCreate returns the conversation for a session, creating it lazily on
// first use. Returns (conversation, created, error) where created indicates
// whether a new conversation was created.
func (s *ConversationService) GetOrCreate(httpCtx context.Context, sessionID string) (*models.Conversation, bool, error) {
	if sessionID == "" {
		return nil, false, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.client.Conversation.Query().
		Where(conversation.SessionIDEQ(sessionID)).
		Only(ctx)
	if err == nil {
		return conversationToModel(existing), false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query conversation: %w", err)
	}

	conv, err := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetCreatedAt(time.Now()).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Race: another request created the conversation first, fetch it
			existing, queryErr := s.client.Conversation.Query().
				Where(conversation.SessionIDEQ(sessionID)).
				Only(ctx)
			if queryErr != nil {
				return nil, false, fmt.Errorf("failed to query conversation after constraint error: %w", queryErr)
			}
			return conversationToModel(existing), false, nil
		}
		return nil, false, fmt.Errorf("failed to create conversation: %w", err)
	}

	return conversationToModel(conv), true, nil
}

// AppendMessage appends a message to the session's conversation, assigning
// the next sequence number. Tool messages must bind to a tool call declared
// by a preceding assistant message.
func (s *ConversationService) AppendMessage(httpCtx context.Context, req models.AppendMessageRequest) (*models.Message, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	switch req.Role {
	case models.RoleSystem, models.RoleUser, models.RoleAssistant, models.RoleTool:
	default:
		return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}
	if req.Role == models.RoleTool && req.ToolCallID == "" {
		return nil, NewValidationError("tool_call_id", "required for tool messages")
	}
	if req.Role != models.RoleTool && req.ToolCallID != "" {
		return nil, NewValidationError("tool_call_id", "only valid for tool messages")
	}
	if req.Role != models.RoleAssistant && len(req.ToolCalls) > 0 {
		return nil, NewValidationError("tool_calls", "only valid for assistant messages")
	}

	conv, _, err := s.GetOrCreate(httpCtx, req.SessionID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if req.Role == models.RoleTool {
		if err := s.verifyToolCallBinding(ctx, conv.ID, req.ToolCallID); err != nil {
			return nil, err
		}
	}

	seq, err := s.nextSequenceNumber(ctx, conv.ID)
	if err != nil {
		return nil, err
	}

	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetSequenceNumber(seq).
		SetRole(message.Role(req.Role)).
		SetContent(req.Content).
		SetCreatedAt(time.Now())
	if len(req.ToolCalls) > 0 {
		create.SetToolCalls(toolCallsToJSON(req.ToolCalls))
	}
	if req.ToolCallID != "" {
		create.SetToolCallID(req.ToolCallID)
	}
	if req.ToolName != "" {
		create.SetToolName(req.ToolName)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	if err := s.touch(ctx, conv.ID); err != nil {
		return nil, err
	}

	return messageToModel(msg), nil
}

// GetHistory returns the session's messages in sequence order. A limit of 0
// returns the full history.
func (s *ConversationService) GetHistory(httpCtx context.Context, sessionID string, limit int) ([]*models.Message, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.Conversation.Query().
		Where(conversation.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return []*models.Message{}, nil
		}
		return nil, fmt.Errorf("failed to query conversation: %w", err)
	}

	query := s.client.Message.Query().
		Where(message.ConversationIDEQ(conv.ID)).
		Order(ent.Asc(message.FieldSequenceNumber))
	if limit > 0 {
		query = query.Limit(limit)
	}

	msgs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	result := make([]*models.Message, 0, len(msgs))
	for _, m := range msgs {
		result = append(result, messageToModel(m))
	}
	return result, nil
}

// ListSessions returns conversations ordered by most recent interaction.
// A limit of 0 returns all of them.
func (s *ConversationService) ListSessions(httpCtx context.Context, limit int) ([]*models.Conversation, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	query := s.client.Conversation.Query().
		Order(ent.Desc(conversation.FieldLastInteractionAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	convs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}

	result := make([]*models.Conversation, 0, len(convs))
	for _, c := range convs {
		result = append(result, conversationToModel(c))
	}
	return result, nil
}

// CreateSubtaskSnapshot captures the conversation's current message list so
// it can be restored after the subtask finishes.
func (s *ConversationService) CreateSubtaskSnapshot(httpCtx context.Context, conversationID, subtaskID string) (*models.Snapshot, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	msgs, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Asc(message.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for snapshot: %w", err)
	}

	domainMsgs := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		domainMsgs = append(domainMsgs, *messageToModel(m))
	}

	serialized, err := messagesToJSON(domainMsgs)
	if err != nil {
		return nil, err
	}

	snap, err := s.client.ConversationSnapshot.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		SetSubtaskID(subtaskID).
		SetMessages(serialized).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	return &models.Snapshot{
		ID:             snap.ID,
		ConversationID: snap.ConversationID,
		SubtaskID:      snap.SubtaskID,
		Messages:       domainMsgs,
		CreatedAt:      snap.CreatedAt,
	}, nil
}

// GetSnapshotForSubtask returns the most recent snapshot taken for a
// subtask. Used to restore the conversation when a suspended subtask
// finishes in a later request.
func (s *ConversationService) GetSnapshotForSubtask(httpCtx context.Context, subtaskID string) (*models.Snapshot, error) {
	if subtaskID == "" {
		return nil, NewValidationError("subtask_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	snap, err := s.client.ConversationSnapshot.Query().
		Where(conversationsnapshot.SubtaskIDEQ(subtaskID)).
		Order(ent.Desc(conversationsnapshot.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query subtask snapshot: %w", err)
	}

	msgs, err := messagesFromJSON(snap.Messages)
	if err != nil {
		return nil, err
	}
	return &models.Snapshot{
		ID:             snap.ID,
		ConversationID: snap.ConversationID,
		SubtaskID:      snap.SubtaskID,
		Messages:       msgs,
		CreatedAt:      snap.CreatedAt,
	}, nil
}

// RestoreOptions controls snapshot restore behavior.
type RestoreOptions struct {
	// PreserveLastResult carries the conversation's final assistant message
	// forward past the restore, so the subtask's result survives while its
	// intermediate tool chatter is discarded.
	PreserveLastResult bool
}

// RestoreFromSnapshot replaces the conversation's messages with the
// snapshot's message list.
func (s *ConversationService) RestoreFromSnapshot(httpCtx context.Context, snapshotID string, opts RestoreOptions) error {
	if snapshotID == "" {
		return NewValidationError("snapshot_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	snap, err := s.client.ConversationSnapshot.Query().
		Where(conversationsnapshot.IDEQ(snapshotID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get snapshot: %w", err)
	}

	snapMsgs, err := messagesFromJSON(snap.Messages)
	if err != nil {
		return err
	}

	var lastResult *ent.Message
	if opts.PreserveLastResult {
		lastResult, err = s.client.Message.Query().
			Where(
				message.ConversationIDEQ(snap.ConversationID),
				message.RoleEQ(message.RoleAssistant),
			).
			Order(ent.Desc(message.FieldSequenceNumber)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query last assistant message: %w", err)
		}
	}

	return s.uow.Do(ctx, "restore_snapshot", func(tx *ent.Tx) error {
		if _, err := tx.Message.Delete().
			Where(message.ConversationIDEQ(snap.ConversationID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear conversation: %w", err)
		}

		builders := make([]*ent.MessageCreate, 0, len(snapMsgs)+1)
		for _, m := range snapMsgs {
			b := tx.Message.Create().
				SetID(m.ID).
				SetConversationID(snap.ConversationID).
				SetSequenceNumber(m.SequenceNumber).
				SetRole(message.Role(m.Role)).
				SetContent(m.Content).
				SetCreatedAt(m.CreatedAt)
			if len(m.ToolCalls) > 0 {
				b.SetToolCalls(toolCallsToJSON(m.ToolCalls))
			}
			if m.ToolCallID != "" {
				b.SetToolCallID(m.ToolCallID)
			}
			if m.ToolName != "" {
				b.SetToolName(m.ToolName)
			}
			builders = append(builders, b)
		}
		if lastResult != nil {
			builders = append(builders, tx.Message.Create().
				SetID(uuid.New().String()).
				SetConversationID(snap.ConversationID).
				SetSequenceNumber(len(snapMsgs)).
				SetRole(message.RoleAssistant).
				SetContent(lastResult.Content).
				SetCreatedAt(time.Now()))
		}

		if _, err := tx.Message.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("failed to restore messages: %w", err)
		}
		return nil
	})
}

// DeleteExpired removes conversations whose last interaction predates the
// cutoff and returns their session ids so in-memory state can be released.
// Messages and snapshots cascade.
func (s *ConversationService) DeleteExpired(httpCtx context.Context, cutoff time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	expired, err := s.client.Conversation.Query().
		Where(conversation.LastInteractionAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired conversations: %w", err)
	}
	if len(expired) == 0 {
		return nil, nil
	}

	sessionIDs := make([]string, 0, len(expired))
	for _, c := range expired {
		sessionIDs = append(sessionIDs, c.SessionID)
	}

	if _, err := s.client.Conversation.Delete().
		Where(conversation.LastInteractionAtLT(cutoff)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete expired conversations: %w", err)
	}
	return sessionIDs, nil
}

// verifyToolCallBinding checks that the tool_call_id was declared by the
// most recent assistant message that requested tool calls.
func (s *ConversationService) verifyToolCallBinding(ctx context.Context, conversationID, toolCallID string) error {
	last, err := s.client.Message.Query().
		Where(
			message.ConversationIDEQ(conversationID),
			message.RoleEQ(message.RoleAssistant),
			message.ToolCallsNotNil(),
		).
		Order(ent.Desc(message.FieldSequenceNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NewValidationError("tool_call_id", "no assistant tool calls to bind to")
		}
		return fmt.Errorf("failed to query assistant tool calls: %w", err)
	}

	for _, tc := range toolCallsFromJSON(last.ToolCalls) {
		if tc.ID == toolCallID {
			return nil
		}
	}
	return NewValidationError("tool_call_id", fmt.Sprintf("unknown tool call %q", toolCallID))
}

func (s *ConversationService) nextSequenceNumber(ctx context.Context, conversationID string) (int, error) {
	last, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Desc(message.FieldSequenceNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query last message: %w", err)
	}
	return last.SequenceNumber + 1, nil
}

func (s *ConversationService) touch(ctx context.Context, conversationID string) error {
	_, err := s.client.Conversation.UpdateOneID(conversationID).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}
	return nil
}

func conversationToModel(c *ent.Conversation) *models.Conversation {
	return &models.Conversation{
		ID:                c.ID,
		SessionID:         c.SessionID,
		CreatedAt:         c.CreatedAt,
		LastInteractionAt: c.LastInteractionAt,
	}
}

func messageToModel(m *ent.Message) *models.Message {
	msg := &models.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SequenceNumber: m.SequenceNumber,
		Role:           models.MessageRole(m.Role),
		Content:        m.Content,
		ToolCalls:      toolCallsFromJSON(m.ToolCalls),
		CreatedAt:      m.CreatedAt,
	}
	if m.ToolCallID != nil {
		msg.ToolCallID = *m.ToolCallID
	}
	if m.ToolName != nil {
		msg.ToolName = *m.ToolName
	}
	return msg
}

func toolCallsToJSON(calls []models.ToolCallRecord) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(calls))
	for _, tc := range calls {
		out = append(out, map[string]interface{}{
			"id":        tc.ID,
			"name":      tc.Name,
			"arguments": tc.Arguments,
		})
	}
	return out
}

func toolCallsFromJSON(raw []map[string]interface{}) []models.ToolCallRecord {
	if len(raw) == 0 {
		return nil
	}
	out := make([]models.ToolCallRecord, 0, len(raw))
	for _, m := range raw {
		tc := models.ToolCallRecord{}
		if v, ok := m["id"].(string); ok {
			tc.ID = v
		}
		if v, ok := m["name"].(string); ok {
			tc.Name = v
		}
		if v, ok := m["arguments"].(string); ok {
			tc.Arguments = v
		}
		out = append(out, tc)
	}
	return out
}

func messagesToJSON(msgs []models.Message) ([]map[string]interface{}, error) {
	data, err := json.Marshal(msgs)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize messages: %w", err)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to deserialize messages: %w", err)
	}
	if out == nil {
		out = []map[string]interface{}{}
	}
	return out, nil
}

func messagesFromJSON(raw []map[string]interface{}) ([]models.Message, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot messages: %w", err)
	}
	var out []models.Message
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to deserialize snapshot messages: %w", err)
	}
	return out, nil
}
