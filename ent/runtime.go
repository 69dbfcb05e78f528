// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/maestro-ai/maestro/ent/agentcontext"
	"github.com/maestro-ai/maestro/ent/conversation"
	"github.com/maestro-ai/maestro/ent/conversationsnapshot"
	"github.com/maestro-ai/maestro/ent/event"
	"github.com/maestro-ai/maestro/ent/executionplan"
	"github.com/maestro-ai/maestro/ent/message"
	"github.com/maestro-ai/maestro/ent/pendingapproval"
	"github.com/maestro-ai/maestro/ent/schema"
	"github.com/maestro-ai/maestro/ent/subtask"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentcontextFields := schema.AgentContext{}.Fields()
	_ = agentcontextFields
	// agentcontextDescActiveAgent is the schema descriptor for active_agent field.
	agentcontextDescActiveAgent := agentcontextFields[2].Descriptor()
	// agentcontext.DefaultActiveAgent holds the default value on creation for the active_agent field.
	agentcontext.DefaultActiveAgent = agentcontextDescActiveAgent.Default.(string)
	// agentcontextDescFsmState is the schema descriptor for fsm_state field.
	agentcontextDescFsmState := agentcontextFields[3].Descriptor()
	// agentcontext.DefaultFsmState holds the default value on creation for the fsm_state field.
	agentcontext.DefaultFsmState = agentcontextDescFsmState.Default.(string)
	// agentcontextDescUpdatedAt is the schema descriptor for updated_at field.
	agentcontextDescUpdatedAt := agentcontextFields[5].Descriptor()
	// agentcontext.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentcontext.DefaultUpdatedAt = agentcontextDescUpdatedAt.Default.(func() time.Time)
	// agentcontext.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentcontext.UpdateDefaultUpdatedAt = agentcontextDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[2].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescLastInteractionAt is the schema descriptor for last_interaction_at field.
	conversationDescLastInteractionAt := conversationFields[3].Descriptor()
	// conversation.DefaultLastInteractionAt holds the default value on creation for the last_interaction_at field.
	conversation.DefaultLastInteractionAt = conversationDescLastInteractionAt.Default.(func() time.Time)
	conversationsnapshotFields := schema.ConversationSnapshot{}.Fields()
	_ = conversationsnapshotFields
	// conversationsnapshotDescCreatedAt is the schema descriptor for created_at field.
	conversationsnapshotDescCreatedAt := conversationsnapshotFields[4].Descriptor()
	// conversationsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationsnapshot.DefaultCreatedAt = conversationsnapshotDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	executionplanFields := schema.ExecutionPlan{}.Fields()
	_ = executionplanFields
	// executionplanDescGoal is the schema descriptor for goal field.
	executionplanDescGoal := executionplanFields[3].Descriptor()
	// executionplan.GoalValidator is a validator for the "goal" field. It is called by the builders before save.
	executionplan.GoalValidator = executionplanDescGoal.Validators[0].(func(string) error)
	// executionplanDescCreatedAt is the schema descriptor for created_at field.
	executionplanDescCreatedAt := executionplanFields[7].Descriptor()
	// executionplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionplan.DefaultCreatedAt = executionplanDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	pendingapprovalFields := schema.PendingApproval{}.Fields()
	_ = pendingapprovalFields
	// pendingapprovalDescCreatedAt is the schema descriptor for created_at field.
	pendingapprovalDescCreatedAt := pendingapprovalFields[8].Descriptor()
	// pendingapproval.DefaultCreatedAt holds the default value on creation for the created_at field.
	pendingapproval.DefaultCreatedAt = pendingapprovalDescCreatedAt.Default.(func() time.Time)
	subtaskFields := schema.Subtask{}.Fields()
	_ = subtaskFields
	// subtaskDescCreatedAt is the schema descriptor for created_at field.
	subtaskDescCreatedAt := subtaskFields[8].Descriptor()
	// subtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	subtask.DefaultCreatedAt = subtaskDescCreatedAt.Default.(func() time.Time)
}
