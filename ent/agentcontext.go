// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-ai/maestro/ent/agentcontext"
)

// AgentContext is the model entity for the AgentContext schema.
type AgentContext struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ActiveAgent holds the value of the "active_agent" field.
	ActiveAgent string `json:"active_agent,omitempty"`
	// FsmState holds the value of the "fsm_state" field.
	FsmState string `json:"fsm_state,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentContext) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentcontext.FieldMetadata:
			values[i] = new([]byte)
		case agentcontext.FieldID, agentcontext.FieldSessionID, agentcontext.FieldActiveAgent, agentcontext.FieldFsmState:
			values[i] = new(sql.NullString)
		case agentcontext.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentContext fields.
func (_m *AgentContext) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentcontext.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentcontext.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case agentcontext.FieldActiveAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_agent", values[i])
			} else if value.Valid {
				_m.ActiveAgent = value.String
			}
		case agentcontext.FieldFsmState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fsm_state", values[i])
			} else if value.Valid {
				_m.FsmState = value.String
			}
		case agentcontext.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case agentcontext.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentContext.
// This includes values selected through modifiers, order, etc.
func (_m *AgentContext) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentContext.
// Note that you need to call AgentContext.Unwrap() before calling this method if this AgentContext
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentContext) Update() *AgentContextUpdateOne {
	return NewAgentContextClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentContext entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentContext) Unwrap() *AgentContext {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentContext is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentContext) String() string {
	var builder strings.Builder
	builder.WriteString("AgentContext(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("active_agent=")
	builder.WriteString(_m.ActiveAgent)
	builder.WriteString(", ")
	builder.WriteString("fsm_state=")
	builder.WriteString(_m.FsmState)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentContexts is a parsable slice of AgentContext.
type AgentContexts []*AgentContext
