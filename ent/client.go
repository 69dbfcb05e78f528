// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/maestro-ai/maestro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-ai/maestro/ent/agentcontext"
	"github.com/maestro-ai/maestro/ent/conversation"
	"github.com/maestro-ai/maestro/ent/conversationsnapshot"
	"github.com/maestro-ai/maestro/ent/event"
	"github.com/maestro-ai/maestro/ent/executionplan"
	"github.com/maestro-ai/maestro/ent/message"
	"github.com/maestro-ai/maestro/ent/pendingapproval"
	"github.com/maestro-ai/maestro/ent/subtask"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentContext is the client for interacting with the AgentContext builders.
	AgentContext *AgentContextClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// ConversationSnapshot is the client for interacting with the ConversationSnapshot builders.
	ConversationSnapshot *ConversationSnapshotClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// ExecutionPlan is the client for interacting with the ExecutionPlan builders.
	ExecutionPlan *ExecutionPlanClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// PendingApproval is the client for interacting with the PendingApproval builders.
	PendingApproval *PendingApprovalClient
	// Subtask is the client for interacting with the Subtask builders.
	Subtask *SubtaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentContext = NewAgentContextClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.ConversationSnapshot = NewConversationSnapshotClient(c.config)
	c.Event = NewEventClient(c.config)
	c.ExecutionPlan = NewExecutionPlanClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.PendingApproval = NewPendingApprovalClient(c.config)
	c.Subtask = NewSubtaskClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		AgentContext:         NewAgentContextClient(cfg),
		Conversation:         NewConversationClient(cfg),
		ConversationSnapshot: NewConversationSnapshotClient(cfg),
		Event:                NewEventClient(cfg),
		ExecutionPlan:        NewExecutionPlanClient(cfg),
		Message:              NewMessageClient(cfg),
		PendingApproval:      NewPendingApprovalClient(cfg),
		Subtask:              NewSubtaskClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		AgentContext:         NewAgentContextClient(cfg),
		Conversation:         NewConversationClient(cfg),
		ConversationSnapshot: NewConversationSnapshotClient(cfg),
		Event:                NewEventClient(cfg),
		ExecutionPlan:        NewExecutionPlanClient(cfg),
		Message:              NewMessageClient(cfg),
		PendingApproval:      NewPendingApprovalClient(cfg),
		Subtask:              NewSubtaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentContext.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentContext, c.Conversation, c.ConversationSnapshot, c.Event,
		c.ExecutionPlan, c.Message, c.PendingApproval, c.Subtask,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentContext, c.Conversation, c.ConversationSnapshot, c.Event,
		c.ExecutionPlan, c.Message, c.PendingApproval, c.Subtask,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentContextMutation:
		return c.AgentContext.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *ConversationSnapshotMutation:
		return c.ConversationSnapshot.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *ExecutionPlanMutation:
		return c.ExecutionPlan.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *PendingApprovalMutation:
		return c.PendingApproval.mutate(ctx, m)
	case *SubtaskMutation:
		return c.Subtask.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentContextClient is a client for the AgentContext schema.
type AgentContextClient struct {
	config
}

// NewAgentContextClient returns a client for the AgentContext from the given config.
func NewAgentContextClient(c config) *AgentContextClient {
	return &AgentContextClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentcontext.Hooks(f(g(h())))`.
func (c *AgentContextClient) Use(hooks ...Hook) {
	c.hooks.AgentContext = append(c.hooks.AgentContext, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentcontext.Intercept(f(g(h())))`.
func (c *AgentContextClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentContext = append(c.inters.AgentContext, interceptors...)
}

// Create returns a builder for creating a AgentContext entity.
func (c *AgentContextClient) Create() *AgentContextCreate {
	mutation := newAgentContextMutation(c.config, OpCreate)
	return &AgentContextCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentContext entities.
func (c *AgentContextClient) CreateBulk(builders ...*AgentContextCreate) *AgentContextCreateBulk {
	return &AgentContextCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentContextClient) MapCreateBulk(slice any, setFunc func(*AgentContextCreate, int)) *AgentContextCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentContextCreateBulk{err: fmt.Errorf("calling to AgentContextClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentContextCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentContextCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentContext.
func (c *AgentContextClient) Update() *AgentContextUpdate {
	mutation := newAgentContextMutation(c.config, OpUpdate)
	return &AgentContextUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentContextClient) UpdateOne(_m *AgentContext) *AgentContextUpdateOne {
	mutation := newAgentContextMutation(c.config, OpUpdateOne, withAgentContext(_m))
	return &AgentContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentContextClient) UpdateOneID(id string) *AgentContextUpdateOne {
	mutation := newAgentContextMutation(c.config, OpUpdateOne, withAgentContextID(id))
	return &AgentContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentContext.
func (c *AgentContextClient) Delete() *AgentContextDelete {
	mutation := newAgentContextMutation(c.config, OpDelete)
	return &AgentContextDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentContextClient) DeleteOne(_m *AgentContext) *AgentContextDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentContextClient) DeleteOneID(id string) *AgentContextDeleteOne {
	builder := c.Delete().Where(agentcontext.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentContextDeleteOne{builder}
}

// Query returns a query builder for AgentContext.
func (c *AgentContextClient) Query() *AgentContextQuery {
	return &AgentContextQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentContext},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentContext entity by its id.
func (c *AgentContextClient) Get(ctx context.Context, id string) (*AgentContext, error) {
	return c.Query().Where(agentcontext.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentContextClient) GetX(ctx context.Context, id string) *AgentContext {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentContextClient) Hooks() []Hook {
	return c.hooks.AgentContext
}

// Interceptors returns the client interceptors.
func (c *AgentContextClient) Interceptors() []Interceptor {
	return c.inters.AgentContext
}

func (c *AgentContextClient) mutate(ctx context.Context, m *AgentContextMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentContextCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentContextUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentContextDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentContext mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a Conversation.
func (c *ConversationClient) QueryMessages(_m *Conversation) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.MessagesTable, conversation.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySnapshots queries the snapshots edge of a Conversation.
func (c *ConversationClient) QuerySnapshots(_m *Conversation) *ConversationSnapshotQuery {
	query := (&ConversationSnapshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(conversationsnapshot.Table, conversationsnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.SnapshotsTable, conversation.SnapshotsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// ConversationSnapshotClient is a client for the ConversationSnapshot schema.
type ConversationSnapshotClient struct {
	config
}

// NewConversationSnapshotClient returns a client for the ConversationSnapshot from the given config.
func NewConversationSnapshotClient(c config) *ConversationSnapshotClient {
	return &ConversationSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationsnapshot.Hooks(f(g(h())))`.
func (c *ConversationSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ConversationSnapshot = append(c.hooks.ConversationSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationsnapshot.Intercept(f(g(h())))`.
func (c *ConversationSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationSnapshot = append(c.inters.ConversationSnapshot, interceptors...)
}

// Create returns a builder for creating a ConversationSnapshot entity.
func (c *ConversationSnapshotClient) Create() *ConversationSnapshotCreate {
	mutation := newConversationSnapshotMutation(c.config, OpCreate)
	return &ConversationSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationSnapshot entities.
func (c *ConversationSnapshotClient) CreateBulk(builders ...*ConversationSnapshotCreate) *ConversationSnapshotCreateBulk {
	return &ConversationSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationSnapshotClient) MapCreateBulk(slice any, setFunc func(*ConversationSnapshotCreate, int)) *ConversationSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationSnapshotCreateBulk{err: fmt.Errorf("calling to ConversationSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationSnapshot.
func (c *ConversationSnapshotClient) Update() *ConversationSnapshotUpdate {
	mutation := newConversationSnapshotMutation(c.config, OpUpdate)
	return &ConversationSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationSnapshotClient) UpdateOne(_m *ConversationSnapshot) *ConversationSnapshotUpdateOne {
	mutation := newConversationSnapshotMutation(c.config, OpUpdateOne, withConversationSnapshot(_m))
	return &ConversationSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationSnapshotClient) UpdateOneID(id string) *ConversationSnapshotUpdateOne {
	mutation := newConversationSnapshotMutation(c.config, OpUpdateOne, withConversationSnapshotID(id))
	return &ConversationSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationSnapshot.
func (c *ConversationSnapshotClient) Delete() *ConversationSnapshotDelete {
	mutation := newConversationSnapshotMutation(c.config, OpDelete)
	return &ConversationSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationSnapshotClient) DeleteOne(_m *ConversationSnapshot) *ConversationSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationSnapshotClient) DeleteOneID(id string) *ConversationSnapshotDeleteOne {
	builder := c.Delete().Where(conversationsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationSnapshotDeleteOne{builder}
}

// Query returns a query builder for ConversationSnapshot.
func (c *ConversationSnapshotClient) Query() *ConversationSnapshotQuery {
	return &ConversationSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationSnapshot entity by its id.
func (c *ConversationSnapshotClient) Get(ctx context.Context, id string) (*ConversationSnapshot, error) {
	return c.Query().Where(conversationsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationSnapshotClient) GetX(ctx context.Context, id string) *ConversationSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a ConversationSnapshot.
func (c *ConversationSnapshotClient) QueryConversation(_m *ConversationSnapshot) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversationsnapshot.Table, conversationsnapshot.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversationsnapshot.ConversationTable, conversationsnapshot.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationSnapshotClient) Hooks() []Hook {
	return c.hooks.ConversationSnapshot
}

// Interceptors returns the client interceptors.
func (c *ConversationSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ConversationSnapshot
}

func (c *ConversationSnapshotClient) mutate(ctx context.Context, m *ConversationSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationSnapshot mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// ExecutionPlanClient is a client for the ExecutionPlan schema.
type ExecutionPlanClient struct {
	config
}

// NewExecutionPlanClient returns a client for the ExecutionPlan from the given config.
func NewExecutionPlanClient(c config) *ExecutionPlanClient {
	return &ExecutionPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionplan.Hooks(f(g(h())))`.
func (c *ExecutionPlanClient) Use(hooks ...Hook) {
	c.hooks.ExecutionPlan = append(c.hooks.ExecutionPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionplan.Intercept(f(g(h())))`.
func (c *ExecutionPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionPlan = append(c.inters.ExecutionPlan, interceptors...)
}

// Create returns a builder for creating a ExecutionPlan entity.
func (c *ExecutionPlanClient) Create() *ExecutionPlanCreate {
	mutation := newExecutionPlanMutation(c.config, OpCreate)
	return &ExecutionPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionPlan entities.
func (c *ExecutionPlanClient) CreateBulk(builders ...*ExecutionPlanCreate) *ExecutionPlanCreateBulk {
	return &ExecutionPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionPlanClient) MapCreateBulk(slice any, setFunc func(*ExecutionPlanCreate, int)) *ExecutionPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionPlanCreateBulk{err: fmt.Errorf("calling to ExecutionPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionPlan.
func (c *ExecutionPlanClient) Update() *ExecutionPlanUpdate {
	mutation := newExecutionPlanMutation(c.config, OpUpdate)
	return &ExecutionPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionPlanClient) UpdateOne(_m *ExecutionPlan) *ExecutionPlanUpdateOne {
	mutation := newExecutionPlanMutation(c.config, OpUpdateOne, withExecutionPlan(_m))
	return &ExecutionPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionPlanClient) UpdateOneID(id string) *ExecutionPlanUpdateOne {
	mutation := newExecutionPlanMutation(c.config, OpUpdateOne, withExecutionPlanID(id))
	return &ExecutionPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionPlan.
func (c *ExecutionPlanClient) Delete() *ExecutionPlanDelete {
	mutation := newExecutionPlanMutation(c.config, OpDelete)
	return &ExecutionPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionPlanClient) DeleteOne(_m *ExecutionPlan) *ExecutionPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionPlanClient) DeleteOneID(id string) *ExecutionPlanDeleteOne {
	builder := c.Delete().Where(executionplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionPlanDeleteOne{builder}
}

// Query returns a query builder for ExecutionPlan.
func (c *ExecutionPlanClient) Query() *ExecutionPlanQuery {
	return &ExecutionPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionPlan entity by its id.
func (c *ExecutionPlanClient) Get(ctx context.Context, id string) (*ExecutionPlan, error) {
	return c.Query().Where(executionplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionPlanClient) GetX(ctx context.Context, id string) *ExecutionPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubtasks queries the subtasks edge of a ExecutionPlan.
func (c *ExecutionPlanClient) QuerySubtasks(_m *ExecutionPlan) *SubtaskQuery {
	query := (&SubtaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionplan.Table, executionplan.FieldID, id),
			sqlgraph.To(subtask.Table, subtask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, executionplan.SubtasksTable, executionplan.SubtasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionPlanClient) Hooks() []Hook {
	return c.hooks.ExecutionPlan
}

// Interceptors returns the client interceptors.
func (c *ExecutionPlanClient) Interceptors() []Interceptor {
	return c.inters.ExecutionPlan
}

func (c *ExecutionPlanClient) mutate(ctx context.Context, m *ExecutionPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionPlan mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a Message.
func (c *MessageClient) QueryConversation(_m *Message) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.ConversationTable, message.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// PendingApprovalClient is a client for the PendingApproval schema.
type PendingApprovalClient struct {
	config
}

// NewPendingApprovalClient returns a client for the PendingApproval from the given config.
func NewPendingApprovalClient(c config) *PendingApprovalClient {
	return &PendingApprovalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pendingapproval.Hooks(f(g(h())))`.
func (c *PendingApprovalClient) Use(hooks ...Hook) {
	c.hooks.PendingApproval = append(c.hooks.PendingApproval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pendingapproval.Intercept(f(g(h())))`.
func (c *PendingApprovalClient) Intercept(interceptors ...Interceptor) {
	c.inters.PendingApproval = append(c.inters.PendingApproval, interceptors...)
}

// Create returns a builder for creating a PendingApproval entity.
func (c *PendingApprovalClient) Create() *PendingApprovalCreate {
	mutation := newPendingApprovalMutation(c.config, OpCreate)
	return &PendingApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PendingApproval entities.
func (c *PendingApprovalClient) CreateBulk(builders ...*PendingApprovalCreate) *PendingApprovalCreateBulk {
	return &PendingApprovalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PendingApprovalClient) MapCreateBulk(slice any, setFunc func(*PendingApprovalCreate, int)) *PendingApprovalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PendingApprovalCreateBulk{err: fmt.Errorf("calling to PendingApprovalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PendingApprovalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PendingApprovalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PendingApproval.
func (c *PendingApprovalClient) Update() *PendingApprovalUpdate {
	mutation := newPendingApprovalMutation(c.config, OpUpdate)
	return &PendingApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PendingApprovalClient) UpdateOne(_m *PendingApproval) *PendingApprovalUpdateOne {
	mutation := newPendingApprovalMutation(c.config, OpUpdateOne, withPendingApproval(_m))
	return &PendingApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PendingApprovalClient) UpdateOneID(id string) *PendingApprovalUpdateOne {
	mutation := newPendingApprovalMutation(c.config, OpUpdateOne, withPendingApprovalID(id))
	return &PendingApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PendingApproval.
func (c *PendingApprovalClient) Delete() *PendingApprovalDelete {
	mutation := newPendingApprovalMutation(c.config, OpDelete)
	return &PendingApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PendingApprovalClient) DeleteOne(_m *PendingApproval) *PendingApprovalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PendingApprovalClient) DeleteOneID(id string) *PendingApprovalDeleteOne {
	builder := c.Delete().Where(pendingapproval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PendingApprovalDeleteOne{builder}
}

// Query returns a query builder for PendingApproval.
func (c *PendingApprovalClient) Query() *PendingApprovalQuery {
	return &PendingApprovalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePendingApproval},
		inters: c.Interceptors(),
	}
}

// Get returns a PendingApproval entity by its id.
func (c *PendingApprovalClient) Get(ctx context.Context, id string) (*PendingApproval, error) {
	return c.Query().Where(pendingapproval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PendingApprovalClient) GetX(ctx context.Context, id string) *PendingApproval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PendingApprovalClient) Hooks() []Hook {
	return c.hooks.PendingApproval
}

// Interceptors returns the client interceptors.
func (c *PendingApprovalClient) Interceptors() []Interceptor {
	return c.inters.PendingApproval
}

func (c *PendingApprovalClient) mutate(ctx context.Context, m *PendingApprovalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PendingApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PendingApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PendingApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PendingApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PendingApproval mutation op: %q", m.Op())
	}
}

// SubtaskClient is a client for the Subtask schema.
type SubtaskClient struct {
	config
}

// NewSubtaskClient returns a client for the Subtask from the given config.
func NewSubtaskClient(c config) *SubtaskClient {
	return &SubtaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtask.Hooks(f(g(h())))`.
func (c *SubtaskClient) Use(hooks ...Hook) {
	c.hooks.Subtask = append(c.hooks.Subtask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtask.Intercept(f(g(h())))`.
func (c *SubtaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subtask = append(c.inters.Subtask, interceptors...)
}

// Create returns a builder for creating a Subtask entity.
func (c *SubtaskClient) Create() *SubtaskCreate {
	mutation := newSubtaskMutation(c.config, OpCreate)
	return &SubtaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subtask entities.
func (c *SubtaskClient) CreateBulk(builders ...*SubtaskCreate) *SubtaskCreateBulk {
	return &SubtaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubtaskClient) MapCreateBulk(slice any, setFunc func(*SubtaskCreate, int)) *SubtaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubtaskCreateBulk{err: fmt.Errorf("calling to SubtaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubtaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubtaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subtask.
func (c *SubtaskClient) Update() *SubtaskUpdate {
	mutation := newSubtaskMutation(c.config, OpUpdate)
	return &SubtaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubtaskClient) UpdateOne(_m *Subtask) *SubtaskUpdateOne {
	mutation := newSubtaskMutation(c.config, OpUpdateOne, withSubtask(_m))
	return &SubtaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubtaskClient) UpdateOneID(id string) *SubtaskUpdateOne {
	mutation := newSubtaskMutation(c.config, OpUpdateOne, withSubtaskID(id))
	return &SubtaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subtask.
func (c *SubtaskClient) Delete() *SubtaskDelete {
	mutation := newSubtaskMutation(c.config, OpDelete)
	return &SubtaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubtaskClient) DeleteOne(_m *Subtask) *SubtaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubtaskClient) DeleteOneID(id string) *SubtaskDeleteOne {
	builder := c.Delete().Where(subtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubtaskDeleteOne{builder}
}

// Query returns a query builder for Subtask.
func (c *SubtaskClient) Query() *SubtaskQuery {
	return &SubtaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubtask},
		inters: c.Interceptors(),
	}
}

// Get returns a Subtask entity by its id.
func (c *SubtaskClient) Get(ctx context.Context, id string) (*Subtask, error) {
	return c.Query().Where(subtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubtaskClient) GetX(ctx context.Context, id string) *Subtask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPlan queries the plan edge of a Subtask.
func (c *SubtaskClient) QueryPlan(_m *Subtask) *ExecutionPlanQuery {
	query := (&ExecutionPlanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subtask.Table, subtask.FieldID, id),
			sqlgraph.To(executionplan.Table, executionplan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subtask.PlanTable, subtask.PlanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubtaskClient) Hooks() []Hook {
	return c.hooks.Subtask
}

// Interceptors returns the client interceptors.
func (c *SubtaskClient) Interceptors() []Interceptor {
	return c.inters.Subtask
}

func (c *SubtaskClient) mutate(ctx context.Context, m *SubtaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubtaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubtaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubtaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubtaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subtask mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentContext, Conversation, ConversationSnapshot, Event, ExecutionPlan, Message,
		PendingApproval, Subtask []ent.Hook
	}
	inters struct {
		AgentContext, Conversation, ConversationSnapshot, Event, ExecutionPlan, Message,
		PendingApproval, Subtask []ent.Interceptor
	}
)
