// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentContextsColumns holds the columns for the "agent_contexts" table.
	AgentContextsColumns = []*schema.Column{
		{Name: "context_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "active_agent", Type: field.TypeString, Default: "orchestrator"},
		{Name: "fsm_state", Type: field.TypeString, Default: "IDLE"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentContextsTable holds the schema information for the "agent_contexts" table.
	AgentContextsTable = &schema.Table{
		Name:       "agent_contexts",
		Columns:    AgentContextsColumns,
		PrimaryKey: []*schema.Column{AgentContextsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentcontext_session_id",
				Unique:  true,
				Columns: []*schema.Column{AgentContextsColumns[1]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_interaction_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_session_id",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[1]},
			},
			{
				Name:    "conversation_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[3]},
			},
		},
	}
	// ConversationSnapshotsColumns holds the columns for the "conversation_snapshots" table.
	ConversationSnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "subtask_id", Type: field.TypeString, Nullable: true},
		{Name: "messages", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// ConversationSnapshotsTable holds the schema information for the "conversation_snapshots" table.
	ConversationSnapshotsTable = &schema.Table{
		Name:       "conversation_snapshots",
		Columns:    ConversationSnapshotsColumns,
		PrimaryKey: []*schema.Column{ConversationSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_snapshots_conversations_snapshots",
				Columns:    []*schema.Column{ConversationSnapshotsColumns[4]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversationsnapshot_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationSnapshotsColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_session_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// ExecutionPlansColumns holds the columns for the "execution_plans" table.
	ExecutionPlansColumns = []*schema.Column{
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "goal", Type: field.TypeString, Size: 5000},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "approved", "in_progress", "completed", "failed", "cancelled"}, Default: "draft"},
		{Name: "current_subtask_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ExecutionPlansTable holds the schema information for the "execution_plans" table.
	ExecutionPlansTable = &schema.Table{
		Name:       "execution_plans",
		Columns:    ExecutionPlansColumns,
		PrimaryKey: []*schema.Column{ExecutionPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executionplan_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionPlansColumns[1]},
			},
			{
				Name:    "executionplan_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionPlansColumns[4]},
			},
			{
				Name:    "executionplan_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionPlansColumns[1], ExecutionPlansColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant", "tool"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_call_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[8]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[1]},
			},
		},
	}
	// PendingApprovalsColumns holds the columns for the "pending_approvals" table.
	PendingApprovalsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"tool", "plan"}},
		{Name: "subject", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "resolution_feedback", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// PendingApprovalsTable holds the schema information for the "pending_approvals" table.
	PendingApprovalsTable = &schema.Table{
		Name:       "pending_approvals",
		Columns:    PendingApprovalsColumns,
		PrimaryKey: []*schema.Column{PendingApprovalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pendingapproval_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{PendingApprovalsColumns[3], PendingApprovalsColumns[6]},
			},
			{
				Name:    "pendingapproval_session_id_kind_status",
				Unique:  false,
				Columns: []*schema.Column{PendingApprovalsColumns[3], PendingApprovalsColumns[1], PendingApprovalsColumns[6]},
			},
		},
	}
	// SubtasksColumns holds the columns for the "subtasks" table.
	SubtasksColumns = []*schema.Column{
		{Name: "subtask_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "assigned_agent_id", Type: field.TypeString},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "blocked", "running", "done", "failed"}, Default: "pending"},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "plan_id", Type: field.TypeString},
	}
	// SubtasksTable holds the schema information for the "subtasks" table.
	SubtasksTable = &schema.Table{
		Name:       "subtasks",
		Columns:    SubtasksColumns,
		PrimaryKey: []*schema.Column{SubtasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subtasks_execution_plans_subtasks",
				Columns:    []*schema.Column{SubtasksColumns[10]},
				RefColumns: []*schema.Column{ExecutionPlansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subtask_plan_id",
				Unique:  false,
				Columns: []*schema.Column{SubtasksColumns[10]},
			},
			{
				Name:    "subtask_plan_id_status",
				Unique:  false,
				Columns: []*schema.Column{SubtasksColumns[10], SubtasksColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentContextsTable,
		ConversationsTable,
		ConversationSnapshotsTable,
		EventsTable,
		ExecutionPlansTable,
		MessagesTable,
		PendingApprovalsTable,
		SubtasksTable,
	}
)

func init() {
	ConversationSnapshotsTable.ForeignKeys[0].RefTable = ConversationsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	SubtasksTable.ForeignKeys[0].RefTable = ExecutionPlansTable
}
