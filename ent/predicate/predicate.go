// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentContext is the predicate function for agentcontext builders.
type AgentContext func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// ConversationSnapshot is the predicate function for conversationsnapshot builders.
type ConversationSnapshot func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ExecutionPlan is the predicate function for executionplan builders.
type ExecutionPlan func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// PendingApproval is the predicate function for pendingapproval builders.
type PendingApproval func(*sql.Selector)

// Subtask is the predicate function for subtask builders.
type Subtask func(*sql.Selector)
