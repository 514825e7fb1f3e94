// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/showroom-hq/showroom/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/showroom-hq/showroom/ent/chatmessage"
	"github.com/showroom-hq/showroom/ent/customdemo"
	"github.com/showroom-hq/showroom/ent/demoenvironment"
	"github.com/showroom-hq/showroom/ent/event"
	"github.com/showroom-hq/showroom/ent/timelineevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// CustomDemo is the client for interacting with the CustomDemo builders.
	CustomDemo *CustomDemoClient
	// DemoEnvironment is the client for interacting with the DemoEnvironment builders.
	DemoEnvironment *DemoEnvironmentClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// TimelineEvent is the client for interacting with the TimelineEvent builders.
	TimelineEvent *TimelineEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.CustomDemo = NewCustomDemoClient(c.config)
	c.DemoEnvironment = NewDemoEnvironmentClient(c.config)
	c.Event = NewEventClient(c.config)
	c.TimelineEvent = NewTimelineEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ChatMessage:     NewChatMessageClient(cfg),
		CustomDemo:      NewCustomDemoClient(cfg),
		DemoEnvironment: NewDemoEnvironmentClient(cfg),
		Event:           NewEventClient(cfg),
		TimelineEvent:   NewTimelineEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ChatMessage:     NewChatMessageClient(cfg),
		CustomDemo:      NewCustomDemoClient(cfg),
		DemoEnvironment: NewDemoEnvironmentClient(cfg),
		Event:           NewEventClient(cfg),
		TimelineEvent:   NewTimelineEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatMessage.
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
	c.ChatMessage.Use(hooks...)
	c.CustomDemo.Use(hooks...)
	c.DemoEnvironment.Use(hooks...)
	c.Event.Use(hooks...)
	c.TimelineEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChatMessage.Intercept(interceptors...)
	c.CustomDemo.Intercept(interceptors...)
	c.DemoEnvironment.Intercept(interceptors...)
	c.Event.Intercept(interceptors...)
	c.TimelineEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *CustomDemoMutation:
		return c.CustomDemo.mutate(ctx, m)
	case *DemoEnvironmentMutation:
		return c.DemoEnvironment.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *TimelineEventMutation:
		return c.TimelineEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatMessageClient is a client for the ChatMessage schema.
type ChatMessageClient struct {
	config
}

// NewChatMessageClient returns a client for the ChatMessage from the given config.
func NewChatMessageClient(c config) *ChatMessageClient {
	return &ChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatmessage.Hooks(f(g(h())))`.
func (c *ChatMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatMessage = append(c.hooks.ChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatmessage.Intercept(f(g(h())))`.
func (c *ChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatMessage = append(c.inters.ChatMessage, interceptors...)
}

// Create returns a builder for creating a ChatMessage entity.
func (c *ChatMessageClient) Create() *ChatMessageCreate {
	mutation := newChatMessageMutation(c.config, OpCreate)
	return &ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatMessage entities.
func (c *ChatMessageClient) CreateBulk(builders ...*ChatMessageCreate) *ChatMessageCreateBulk {
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatMessageClient) MapCreateBulk(slice any, setFunc func(*ChatMessageCreate, int)) *ChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatMessageCreateBulk{err: fmt.Errorf("calling to ChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatMessage.
func (c *ChatMessageClient) Update() *ChatMessageUpdate {
	mutation := newChatMessageMutation(c.config, OpUpdate)
	return &ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatMessageClient) UpdateOne(_m *ChatMessage) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessage(_m))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatMessageClient) UpdateOneID(id string) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessageID(id))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatMessage.
func (c *ChatMessageClient) Delete() *ChatMessageDelete {
	mutation := newChatMessageMutation(c.config, OpDelete)
	return &ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatMessageClient) DeleteOne(_m *ChatMessage) *ChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatMessageClient) DeleteOneID(id string) *ChatMessageDeleteOne {
	builder := c.Delete().Where(chatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatMessageDeleteOne{builder}
}

// Query returns a query builder for ChatMessage.
func (c *ChatMessageClient) Query() *ChatMessageQuery {
	return &ChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatMessage entity by its id.
func (c *ChatMessageClient) Get(ctx context.Context, id string) (*ChatMessage, error) {
	return c.Query().Where(chatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatMessageClient) GetX(ctx context.Context, id string) *ChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEnvironment queries the environment edge of a ChatMessage.
func (c *ChatMessageClient) QueryEnvironment(_m *ChatMessage) *DemoEnvironmentQuery {
	query := (&DemoEnvironmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatmessage.Table, chatmessage.FieldID, id),
			sqlgraph.To(demoenvironment.Table, demoenvironment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatmessage.EnvironmentTable, chatmessage.EnvironmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatMessageClient) Hooks() []Hook {
	return c.hooks.ChatMessage
}

// Interceptors returns the client interceptors.
func (c *ChatMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatMessage
}

func (c *ChatMessageClient) mutate(ctx context.Context, m *ChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatMessage mutation op: %q", m.Op())
	}
}

// CustomDemoClient is a client for the CustomDemo schema.
type CustomDemoClient struct {
	config
}

// NewCustomDemoClient returns a client for the CustomDemo from the given config.
func NewCustomDemoClient(c config) *CustomDemoClient {
	return &CustomDemoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customdemo.Hooks(f(g(h())))`.
func (c *CustomDemoClient) Use(hooks ...Hook) {
	c.hooks.CustomDemo = append(c.hooks.CustomDemo, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customdemo.Intercept(f(g(h())))`.
func (c *CustomDemoClient) Intercept(interceptors ...Interceptor) {
	c.inters.CustomDemo = append(c.inters.CustomDemo, interceptors...)
}

// Create returns a builder for creating a CustomDemo entity.
func (c *CustomDemoClient) Create() *CustomDemoCreate {
	mutation := newCustomDemoMutation(c.config, OpCreate)
	return &CustomDemoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CustomDemo entities.
func (c *CustomDemoClient) CreateBulk(builders ...*CustomDemoCreate) *CustomDemoCreateBulk {
	return &CustomDemoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomDemoClient) MapCreateBulk(slice any, setFunc func(*CustomDemoCreate, int)) *CustomDemoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomDemoCreateBulk{err: fmt.Errorf("calling to CustomDemoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomDemoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomDemoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CustomDemo.
func (c *CustomDemoClient) Update() *CustomDemoUpdate {
	mutation := newCustomDemoMutation(c.config, OpUpdate)
	return &CustomDemoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomDemoClient) UpdateOne(_m *CustomDemo) *CustomDemoUpdateOne {
	mutation := newCustomDemoMutation(c.config, OpUpdateOne, withCustomDemo(_m))
	return &CustomDemoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomDemoClient) UpdateOneID(id string) *CustomDemoUpdateOne {
	mutation := newCustomDemoMutation(c.config, OpUpdateOne, withCustomDemoID(id))
	return &CustomDemoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CustomDemo.
func (c *CustomDemoClient) Delete() *CustomDemoDelete {
	mutation := newCustomDemoMutation(c.config, OpDelete)
	return &CustomDemoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomDemoClient) DeleteOne(_m *CustomDemo) *CustomDemoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomDemoClient) DeleteOneID(id string) *CustomDemoDeleteOne {
	builder := c.Delete().Where(customdemo.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomDemoDeleteOne{builder}
}

// Query returns a query builder for CustomDemo.
func (c *CustomDemoClient) Query() *CustomDemoQuery {
	return &CustomDemoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomDemo},
		inters: c.Interceptors(),
	}
}

// Get returns a CustomDemo entity by its id.
func (c *CustomDemoClient) Get(ctx context.Context, id string) (*CustomDemo, error) {
	return c.Query().Where(customdemo.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomDemoClient) GetX(ctx context.Context, id string) *CustomDemo {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CustomDemoClient) Hooks() []Hook {
	return c.hooks.CustomDemo
}

// Interceptors returns the client interceptors.
func (c *CustomDemoClient) Interceptors() []Interceptor {
	return c.inters.CustomDemo
}

func (c *CustomDemoClient) mutate(ctx context.Context, m *CustomDemoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomDemoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomDemoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomDemoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomDemoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CustomDemo mutation op: %q", m.Op())
	}
}

// DemoEnvironmentClient is a client for the DemoEnvironment schema.
type DemoEnvironmentClient struct {
	config
}

// NewDemoEnvironmentClient returns a client for the DemoEnvironment from the given config.
func NewDemoEnvironmentClient(c config) *DemoEnvironmentClient {
	return &DemoEnvironmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `demoenvironment.Hooks(f(g(h())))`.
func (c *DemoEnvironmentClient) Use(hooks ...Hook) {
	c.hooks.DemoEnvironment = append(c.hooks.DemoEnvironment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `demoenvironment.Intercept(f(g(h())))`.
func (c *DemoEnvironmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.DemoEnvironment = append(c.inters.DemoEnvironment, interceptors...)
}

// Create returns a builder for creating a DemoEnvironment entity.
func (c *DemoEnvironmentClient) Create() *DemoEnvironmentCreate {
	mutation := newDemoEnvironmentMutation(c.config, OpCreate)
	return &DemoEnvironmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DemoEnvironment entities.
func (c *DemoEnvironmentClient) CreateBulk(builders ...*DemoEnvironmentCreate) *DemoEnvironmentCreateBulk {
	return &DemoEnvironmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DemoEnvironmentClient) MapCreateBulk(slice any, setFunc func(*DemoEnvironmentCreate, int)) *DemoEnvironmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DemoEnvironmentCreateBulk{err: fmt.Errorf("calling to DemoEnvironmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DemoEnvironmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DemoEnvironmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DemoEnvironment.
func (c *DemoEnvironmentClient) Update() *DemoEnvironmentUpdate {
	mutation := newDemoEnvironmentMutation(c.config, OpUpdate)
	return &DemoEnvironmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DemoEnvironmentClient) UpdateOne(_m *DemoEnvironment) *DemoEnvironmentUpdateOne {
	mutation := newDemoEnvironmentMutation(c.config, OpUpdateOne, withDemoEnvironment(_m))
	return &DemoEnvironmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DemoEnvironmentClient) UpdateOneID(id string) *DemoEnvironmentUpdateOne {
	mutation := newDemoEnvironmentMutation(c.config, OpUpdateOne, withDemoEnvironmentID(id))
	return &DemoEnvironmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DemoEnvironment.
func (c *DemoEnvironmentClient) Delete() *DemoEnvironmentDelete {
	mutation := newDemoEnvironmentMutation(c.config, OpDelete)
	return &DemoEnvironmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DemoEnvironmentClient) DeleteOne(_m *DemoEnvironment) *DemoEnvironmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DemoEnvironmentClient) DeleteOneID(id string) *DemoEnvironmentDeleteOne {
	builder := c.Delete().Where(demoenvironment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DemoEnvironmentDeleteOne{builder}
}

// Query returns a query builder for DemoEnvironment.
func (c *DemoEnvironmentClient) Query() *DemoEnvironmentQuery {
	return &DemoEnvironmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDemoEnvironment},
		inters: c.Interceptors(),
	}
}

// Get returns a DemoEnvironment entity by its id.
func (c *DemoEnvironmentClient) Get(ctx context.Context, id string) (*DemoEnvironment, error) {
	return c.Query().Where(demoenvironment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DemoEnvironmentClient) GetX(ctx context.Context, id string) *DemoEnvironment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a DemoEnvironment.
func (c *DemoEnvironmentClient) QueryMessages(_m *DemoEnvironment) *ChatMessageQuery {
	query := (&ChatMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(demoenvironment.Table, demoenvironment.FieldID, id),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, demoenvironment.MessagesTable, demoenvironment.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTimelineEvents queries the timeline_events edge of a DemoEnvironment.
func (c *DemoEnvironmentClient) QueryTimelineEvents(_m *DemoEnvironment) *TimelineEventQuery {
	query := (&TimelineEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(demoenvironment.Table, demoenvironment.FieldID, id),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, demoenvironment.TimelineEventsTable, demoenvironment.TimelineEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DemoEnvironmentClient) Hooks() []Hook {
	return c.hooks.DemoEnvironment
}

// Interceptors returns the client interceptors.
func (c *DemoEnvironmentClient) Interceptors() []Interceptor {
	return c.inters.DemoEnvironment
}

func (c *DemoEnvironmentClient) mutate(ctx context.Context, m *DemoEnvironmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DemoEnvironmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DemoEnvironmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DemoEnvironmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DemoEnvironmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DemoEnvironment mutation op: %q", m.Op())
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

// TimelineEventClient is a client for the TimelineEvent schema.
type TimelineEventClient struct {
	config
}

// NewTimelineEventClient returns a client for the TimelineEvent from the given config.
func NewTimelineEventClient(c config) *TimelineEventClient {
	return &TimelineEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timelineevent.Hooks(f(g(h())))`.
func (c *TimelineEventClient) Use(hooks ...Hook) {
	c.hooks.TimelineEvent = append(c.hooks.TimelineEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timelineevent.Intercept(f(g(h())))`.
func (c *TimelineEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimelineEvent = append(c.inters.TimelineEvent, interceptors...)
}

// Create returns a builder for creating a TimelineEvent entity.
func (c *TimelineEventClient) Create() *TimelineEventCreate {
	mutation := newTimelineEventMutation(c.config, OpCreate)
	return &TimelineEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimelineEvent entities.
func (c *TimelineEventClient) CreateBulk(builders ...*TimelineEventCreate) *TimelineEventCreateBulk {
	return &TimelineEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimelineEventClient) MapCreateBulk(slice any, setFunc func(*TimelineEventCreate, int)) *TimelineEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimelineEventCreateBulk{err: fmt.Errorf("calling to TimelineEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimelineEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimelineEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimelineEvent.
func (c *TimelineEventClient) Update() *TimelineEventUpdate {
	mutation := newTimelineEventMutation(c.config, OpUpdate)
	return &TimelineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimelineEventClient) UpdateOne(_m *TimelineEvent) *TimelineEventUpdateOne {
	mutation := newTimelineEventMutation(c.config, OpUpdateOne, withTimelineEvent(_m))
	return &TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimelineEventClient) UpdateOneID(id string) *TimelineEventUpdateOne {
	mutation := newTimelineEventMutation(c.config, OpUpdateOne, withTimelineEventID(id))
	return &TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimelineEvent.
func (c *TimelineEventClient) Delete() *TimelineEventDelete {
	mutation := newTimelineEventMutation(c.config, OpDelete)
	return &TimelineEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimelineEventClient) DeleteOne(_m *TimelineEvent) *TimelineEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimelineEventClient) DeleteOneID(id string) *TimelineEventDeleteOne {
	builder := c.Delete().Where(timelineevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimelineEventDeleteOne{builder}
}

// Query returns a query builder for TimelineEvent.
func (c *TimelineEventClient) Query() *TimelineEventQuery {
	return &TimelineEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimelineEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TimelineEvent entity by its id.
func (c *TimelineEventClient) Get(ctx context.Context, id string) (*TimelineEvent, error) {
	return c.Query().Where(timelineevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimelineEventClient) GetX(ctx context.Context, id string) *TimelineEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEnvironment queries the environment edge of a TimelineEvent.
func (c *TimelineEventClient) QueryEnvironment(_m *TimelineEvent) *DemoEnvironmentQuery {
	query := (&DemoEnvironmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, id),
			sqlgraph.To(demoenvironment.Table, demoenvironment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.EnvironmentTable, timelineevent.EnvironmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TimelineEventClient) Hooks() []Hook {
	return c.hooks.TimelineEvent
}

// Interceptors returns the client interceptors.
func (c *TimelineEventClient) Interceptors() []Interceptor {
	return c.inters.TimelineEvent
}

func (c *TimelineEventClient) mutate(ctx context.Context, m *TimelineEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimelineEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimelineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimelineEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TimelineEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatMessage, CustomDemo, DemoEnvironment, Event, TimelineEvent []ent.Hook
	}
	inters struct {
		ChatMessage, CustomDemo, DemoEnvironment, Event, TimelineEvent []ent.Interceptor
	}
)
