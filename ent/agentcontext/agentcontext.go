// Code generated by ent, DO NOT EDIT.

package agentcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentcontext type in the database.
	Label = "agent_context"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "context_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldActiveAgent holds the string denoting the active_agent field in the database.
	FieldActiveAgent = "active_agent"
	// FieldFsmState holds the string denoting the fsm_state field in the database.
	FieldFsmState = "fsm_state"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agentcontext in the database.
	Table = "agent_contexts"
)

// Columns holds all SQL columns for agentcontext fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldActiveAgent,
	FieldFsmState,
	FieldMetadata,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultActiveAgent holds the default value on creation for the "active_agent" field.
	DefaultActiveAgent string
	// DefaultFsmState holds the default value on creation for the "fsm_state" field.
	DefaultFsmState string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentContext queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByActiveAgent orders the results by the active_agent field.
func ByActiveAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveAgent, opts...).ToFunc()
}

// ByFsmState orders the results by the fsm_state field.
func ByFsmState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFsmState, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
