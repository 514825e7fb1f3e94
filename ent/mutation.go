// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/showroom-hq/showroom/ent/chatmessage"
	"github.com/showroom-hq/showroom/ent/customdemo"
	"github.com/showroom-hq/showroom/ent/demoenvironment"
	"github.com/showroom-hq/showroom/ent/event"
	"github.com/showroom-hq/showroom/ent/predicate"
	"github.com/showroom-hq/showroom/ent/timelineevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage     = "ChatMessage"
	TypeCustomDemo      = "CustomDemo"
	TypeDemoEnvironment = "DemoEnvironment"
	TypeEvent           = "Event"
	TypeTimelineEvent   = "TimelineEvent"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	sequence_number    *int
	addsequence_number *int
	role               *chatmessage.Role
	content            *string
	tool_calls         *[]map[string]interface{}
	appendtool_calls   []map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	environment        *string
	clearedenvironment bool
	done               bool
	oldValue           func(context.Context) (*ChatMessage, error)
	predicates         []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEnvID sets the "env_id" field.
func (m *ChatMessageMutation) SetEnvID(s string) {
	m.environment = &s
}

// EnvID returns the value of the "env_id" field in the mutation.
func (m *ChatMessageMutation) EnvID() (r string, exists bool) {
	v := m.environment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvID returns the old "env_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldEnvID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvID: %w", err)
	}
	return oldValue.EnvID, nil
}

// ResetEnvID resets all changes to the "env_id" field.
func (m *ChatMessageMutation) ResetEnvID() {
	m.environment = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *ChatMessageMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *ChatMessageMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *ChatMessageMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *ChatMessageMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *ChatMessageMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetToolCalls sets the "tool_calls" field.
func (m *ChatMessageMutation) SetToolCalls(value []map[string]interface{}) {
	m.tool_calls = &value
	m.appendtool_calls = nil
}

// ToolCalls returns the value of the "tool_calls" field in the mutation.
func (m *ChatMessageMutation) ToolCalls() (r []map[string]interface{}, exists bool) {
	v := m.tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCalls returns the old "tool_calls" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldToolCalls(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCalls: %w", err)
	}
	return oldValue.ToolCalls, nil
}

// AppendToolCalls adds value to the "tool_calls" field.
func (m *ChatMessageMutation) AppendToolCalls(value []map[string]interface{}) {
	m.appendtool_calls = append(m.appendtool_calls, value...)
}

// AppendedToolCalls returns the list of values that were appended to the "tool_calls" field in this mutation.
func (m *ChatMessageMutation) AppendedToolCalls() ([]map[string]interface{}, bool) {
	if len(m.appendtool_calls) == 0 {
		return nil, false
	}
	return m.appendtool_calls, true
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (m *ChatMessageMutation) ClearToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	m.clearedFields[chatmessage.FieldToolCalls] = struct{}{}
}

// ToolCallsCleared returns if the "tool_calls" field was cleared in this mutation.
func (m *ChatMessageMutation) ToolCallsCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldToolCalls]
	return ok
}

// ResetToolCalls resets all changes to the "tool_calls" field.
func (m *ChatMessageMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	delete(m.clearedFields, chatmessage.FieldToolCalls)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEnvironmentID sets the "environment" edge to the DemoEnvironment entity by id.
func (m *ChatMessageMutation) SetEnvironmentID(id string) {
	m.environment = &id
}

// ClearEnvironment clears the "environment" edge to the DemoEnvironment entity.
func (m *ChatMessageMutation) ClearEnvironment() {
	m.clearedenvironment = true
	m.clearedFields[chatmessage.FieldEnvID] = struct{}{}
}

// EnvironmentCleared reports if the "environment" edge to the DemoEnvironment entity was cleared.
func (m *ChatMessageMutation) EnvironmentCleared() bool {
	return m.clearedenvironment
}

// EnvironmentID returns the "environment" edge ID in the mutation.
func (m *ChatMessageMutation) EnvironmentID() (id string, exists bool) {
	if m.environment != nil {
		return *m.environment, true
	}
	return
}

// EnvironmentIDs returns the "environment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EnvironmentID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) EnvironmentIDs() (ids []string) {
	if id := m.environment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEnvironment resets all changes to the "environment" edge.
func (m *ChatMessageMutation) ResetEnvironment() {
	m.environment = nil
	m.clearedenvironment = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.environment != nil {
		fields = append(fields, chatmessage.FieldEnvID)
	}
	if m.sequence_number != nil {
		fields = append(fields, chatmessage.FieldSequenceNumber)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.tool_calls != nil {
		fields = append(fields, chatmessage.FieldToolCalls)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldEnvID:
		return m.EnvID()
	case chatmessage.FieldSequenceNumber:
		return m.SequenceNumber()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldToolCalls:
		return m.ToolCalls()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldEnvID:
		return m.OldEnvID(ctx)
	case chatmessage.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldToolCalls:
		return m.OldToolCalls(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldEnvID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvID(v)
		return nil
	case chatmessage.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldToolCalls:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCalls(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, chatmessage.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldToolCalls) {
		fields = append(fields, chatmessage.FieldToolCalls)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldToolCalls:
		m.ClearToolCalls()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldEnvID:
		m.ResetEnvID()
		return nil
	case chatmessage.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldToolCalls:
		m.ResetToolCalls()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.environment != nil {
		edges = append(edges, chatmessage.EdgeEnvironment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeEnvironment:
		if id := m.environment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedenvironment {
		edges = append(edges, chatmessage.EdgeEnvironment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeEnvironment:
		return m.clearedenvironment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeEnvironment:
		m.ClearEnvironment()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeEnvironment:
		m.ResetEnvironment()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// CustomDemoMutation represents an operation that mutates the CustomDemo nodes in the graph.
type CustomDemoMutation struct {
	config
	op               Op
	typ              string
	id               *string
	env_id           *string
	template_id      *string
	env_type         *customdemo.EnvType
	config_overrides *map[string]interface{}
	created_by       *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CustomDemo, error)
	predicates       []predicate.CustomDemo
}

var _ ent.Mutation = (*CustomDemoMutation)(nil)

// customdemoOption allows management of the mutation configuration using functional options.
type customdemoOption func(*CustomDemoMutation)

// newCustomDemoMutation creates new mutation for the CustomDemo entity.
func newCustomDemoMutation(c config, op Op, opts ...customdemoOption) *CustomDemoMutation {
	m := &CustomDemoMutation{
		config:        c,
		op:            op,
		typ:           TypeCustomDemo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCustomDemoID sets the ID field of the mutation.
func withCustomDemoID(id string) customdemoOption {
	return func(m *CustomDemoMutation) {
		var (
			err   error
			once  sync.Once
			value *CustomDemo
		)
		m.oldValue = func(ctx context.Context) (*CustomDemo, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CustomDemo.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCustomDemo sets the old CustomDemo of the mutation.
func withCustomDemo(node *CustomDemo) customdemoOption {
	return func(m *CustomDemoMutation) {
		m.oldValue = func(context.Context) (*CustomDemo, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CustomDemoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CustomDemoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CustomDemo entities.
func (m *CustomDemoMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CustomDemoMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CustomDemoMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CustomDemo.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEnvID sets the "env_id" field.
func (m *CustomDemoMutation) SetEnvID(s string) {
	m.env_id = &s
}

// EnvID returns the value of the "env_id" field in the mutation.
func (m *CustomDemoMutation) EnvID() (r string, exists bool) {
	v := m.env_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvID returns the old "env_id" field's value of the CustomDemo entity.
// If the CustomDemo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomDemoMutation) OldEnvID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvID: %w", err)
	}
	return oldValue.EnvID, nil
}

// ResetEnvID resets all changes to the "env_id" field.
func (m *CustomDemoMutation) ResetEnvID() {
	m.env_id = nil
}

// SetTemplateID sets the "template_id" field.
func (m *CustomDemoMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *CustomDemoMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the CustomDemo entity.
// If the CustomDemo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomDemoMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *CustomDemoMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetEnvType sets the "env_type" field.
func (m *CustomDemoMutation) SetEnvType(ct customdemo.EnvType) {
	m.env_type = &ct
}

// EnvType returns the value of the "env_type" field in the mutation.
func (m *CustomDemoMutation) EnvType() (r customdemo.EnvType, exists bool) {
	v := m.env_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvType returns the old "env_type" field's value of the CustomDemo entity.
// If the CustomDemo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomDemoMutation) OldEnvType(ctx context.Context) (v customdemo.EnvType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvType: %w", err)
	}
	return oldValue.EnvType, nil
}

// ResetEnvType resets all changes to the "env_type" field.
func (m *CustomDemoMutation) ResetEnvType() {
	m.env_type = nil
}

// SetConfigOverrides sets the "config_overrides" field.
func (m *CustomDemoMutation) SetConfigOverrides(value map[string]interface{}) {
	m.config_overrides = &value
}

// ConfigOverrides returns the value of the "config_overrides" field in the mutation.
func (m *CustomDemoMutation) ConfigOverrides() (r map[string]interface{}, exists bool) {
	v := m.config_overrides
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigOverrides returns the old "config_overrides" field's value of the CustomDemo entity.
// If the CustomDemo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomDemoMutation) OldConfigOverrides(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigOverrides is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigOverrides requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigOverrides: %w", err)
	}
	return oldValue.ConfigOverrides, nil
}

// ClearConfigOverrides clears the value of the "config_overrides" field.
func (m *CustomDemoMutation) ClearConfigOverrides() {
	m.config_overrides = nil
	m.clearedFields[customdemo.FieldConfigOverrides] = struct{}{}
}

// ConfigOverridesCleared returns if the "config_overrides" field was cleared in this mutation.
func (m *CustomDemoMutation) ConfigOverridesCleared() bool {
	_, ok := m.clearedFields[customdemo.FieldConfigOverrides]
	return ok
}

// ResetConfigOverrides resets all changes to the "config_overrides" field.
func (m *CustomDemoMutation) ResetConfigOverrides() {
	m.config_overrides = nil
	delete(m.clearedFields, customdemo.FieldConfigOverrides)
}

// SetCreatedBy sets the "created_by" field.
func (m *CustomDemoMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *CustomDemoMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the CustomDemo entity.
// If the CustomDemo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomDemoMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *CustomDemoMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[customdemo.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *CustomDemoMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[customdemo.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *CustomDemoMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, customdemo.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *CustomDemoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CustomDemoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CustomDemo entity.
// If the CustomDemo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomDemoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CustomDemoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CustomDemoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CustomDemoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CustomDemo entity.
// If the CustomDemo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomDemoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CustomDemoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CustomDemoMutation builder.
func (m *CustomDemoMutation) Where(ps ...predicate.CustomDemo) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CustomDemoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CustomDemoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CustomDemo, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CustomDemoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CustomDemoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CustomDemo).
func (m *CustomDemoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CustomDemoMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.env_id != nil {
		fields = append(fields, customdemo.FieldEnvID)
	}
	if m.template_id != nil {
		fields = append(fields, customdemo.FieldTemplateID)
	}
	if m.env_type != nil {
		fields = append(fields, customdemo.FieldEnvType)
	}
	if m.config_overrides != nil {
		fields = append(fields, customdemo.FieldConfigOverrides)
	}
	if m.created_by != nil {
		fields = append(fields, customdemo.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, customdemo.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, customdemo.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CustomDemoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case customdemo.FieldEnvID:
		return m.EnvID()
	case customdemo.FieldTemplateID:
		return m.TemplateID()
	case customdemo.FieldEnvType:
		return m.EnvType()
	case customdemo.FieldConfigOverrides:
		return m.ConfigOverrides()
	case customdemo.FieldCreatedBy:
		return m.CreatedBy()
	case customdemo.FieldCreatedAt:
		return m.CreatedAt()
	case customdemo.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CustomDemoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case customdemo.FieldEnvID:
		return m.OldEnvID(ctx)
	case customdemo.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case customdemo.FieldEnvType:
		return m.OldEnvType(ctx)
	case customdemo.FieldConfigOverrides:
		return m.OldConfigOverrides(ctx)
	case customdemo.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case customdemo.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case customdemo.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CustomDemo field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomDemoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case customdemo.FieldEnvID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvID(v)
		return nil
	case customdemo.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case customdemo.FieldEnvType:
		v, ok := value.(customdemo.EnvType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvType(v)
		return nil
	case customdemo.FieldConfigOverrides:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigOverrides(v)
		return nil
	case customdemo.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case customdemo.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case customdemo.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CustomDemo field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CustomDemoMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CustomDemoMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomDemoMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CustomDemo numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CustomDemoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(customdemo.FieldConfigOverrides) {
		fields = append(fields, customdemo.FieldConfigOverrides)
	}
	if m.FieldCleared(customdemo.FieldCreatedBy) {
		fields = append(fields, customdemo.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CustomDemoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CustomDemoMutation) ClearField(name string) error {
	switch name {
	case customdemo.FieldConfigOverrides:
		m.ClearConfigOverrides()
		return nil
	case customdemo.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown CustomDemo nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CustomDemoMutation) ResetField(name string) error {
	switch name {
	case customdemo.FieldEnvID:
		m.ResetEnvID()
		return nil
	case customdemo.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case customdemo.FieldEnvType:
		m.ResetEnvType()
		return nil
	case customdemo.FieldConfigOverrides:
		m.ResetConfigOverrides()
		return nil
	case customdemo.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case customdemo.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case customdemo.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CustomDemo field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CustomDemoMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CustomDemoMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CustomDemoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CustomDemoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CustomDemoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CustomDemoMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CustomDemoMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CustomDemo unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CustomDemoMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CustomDemo edge %s", name)
}

// DemoEnvironmentMutation represents an operation that mutates the DemoEnvironment nodes in the graph.
type DemoEnvironmentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	template_id            *string
	env_type               *demoenvironment.EnvType
	created_by             *string
	created_at             *time.Time
	last_interaction_at    *time.Time
	clearedFields          map[string]struct{}
	messages               map[string]struct{}
	removedmessages        map[string]struct{}
	clearedmessages        bool
	timeline_events        map[string]struct{}
	removedtimeline_events map[string]struct{}
	clearedtimeline_events bool
	done                   bool
	oldValue               func(context.Context) (*DemoEnvironment, error)
	predicates             []predicate.DemoEnvironment
}

var _ ent.Mutation = (*DemoEnvironmentMutation)(nil)

// demoenvironmentOption allows management of the mutation configuration using functional options.
type demoenvironmentOption func(*DemoEnvironmentMutation)

// newDemoEnvironmentMutation creates new mutation for the DemoEnvironment entity.
func newDemoEnvironmentMutation(c config, op Op, opts ...demoenvironmentOption) *DemoEnvironmentMutation {
	m := &DemoEnvironmentMutation{
		config:        c,
		op:            op,
		typ:           TypeDemoEnvironment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDemoEnvironmentID sets the ID field of the mutation.
func withDemoEnvironmentID(id string) demoenvironmentOption {
	return func(m *DemoEnvironmentMutation) {
		var (
			err   error
			once  sync.Once
			value *DemoEnvironment
		)
		m.oldValue = func(ctx context.Context) (*DemoEnvironment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DemoEnvironment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDemoEnvironment sets the old DemoEnvironment of the mutation.
func withDemoEnvironment(node *DemoEnvironment) demoenvironmentOption {
	return func(m *DemoEnvironmentMutation) {
		m.oldValue = func(context.Context) (*DemoEnvironment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DemoEnvironmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DemoEnvironmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DemoEnvironment entities.
func (m *DemoEnvironmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DemoEnvironmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DemoEnvironmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DemoEnvironment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateID sets the "template_id" field.
func (m *DemoEnvironmentMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *DemoEnvironmentMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the DemoEnvironment entity.
// If the DemoEnvironment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DemoEnvironmentMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *DemoEnvironmentMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetEnvType sets the "env_type" field.
func (m *DemoEnvironmentMutation) SetEnvType(dt demoenvironment.EnvType) {
	m.env_type = &dt
}

// EnvType returns the value of the "env_type" field in the mutation.
func (m *DemoEnvironmentMutation) EnvType() (r demoenvironment.EnvType, exists bool) {
	v := m.env_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvType returns the old "env_type" field's value of the DemoEnvironment entity.
// If the DemoEnvironment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DemoEnvironmentMutation) OldEnvType(ctx context.Context) (v demoenvironment.EnvType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvType: %w", err)
	}
	return oldValue.EnvType, nil
}

// ResetEnvType resets all changes to the "env_type" field.
func (m *DemoEnvironmentMutation) ResetEnvType() {
	m.env_type = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *DemoEnvironmentMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *DemoEnvironmentMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the DemoEnvironment entity.
// If the DemoEnvironment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DemoEnvironmentMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *DemoEnvironmentMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[demoenvironment.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *DemoEnvironmentMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[demoenvironment.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *DemoEnvironmentMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, demoenvironment.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *DemoEnvironmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DemoEnvironmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DemoEnvironment entity.
// If the DemoEnvironment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DemoEnvironmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DemoEnvironmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *DemoEnvironmentMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *DemoEnvironmentMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the DemoEnvironment entity.
// If the DemoEnvironment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DemoEnvironmentMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *DemoEnvironmentMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[demoenvironment.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *DemoEnvironmentMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[demoenvironment.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *DemoEnvironmentMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, demoenvironment.FieldLastInteractionAt)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *DemoEnvironmentMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *DemoEnvironmentMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *DemoEnvironmentMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *DemoEnvironmentMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *DemoEnvironmentMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *DemoEnvironmentMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *DemoEnvironmentMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by ids.
func (m *DemoEnvironmentMutation) AddTimelineEventIDs(ids ...string) {
	if m.timeline_events == nil {
		m.timeline_events = make(map[string]struct{})
	}
	for i := range ids {
		m.timeline_events[ids[i]] = struct{}{}
	}
}

// ClearTimelineEvents clears the "timeline_events" edge to the TimelineEvent entity.
func (m *DemoEnvironmentMutation) ClearTimelineEvents() {
	m.clearedtimeline_events = true
}

// TimelineEventsCleared reports if the "timeline_events" edge to the TimelineEvent entity was cleared.
func (m *DemoEnvironmentMutation) TimelineEventsCleared() bool {
	return m.clearedtimeline_events
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to the TimelineEvent entity by IDs.
func (m *DemoEnvironmentMutation) RemoveTimelineEventIDs(ids ...string) {
	if m.removedtimeline_events == nil {
		m.removedtimeline_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.timeline_events, ids[i])
		m.removedtimeline_events[ids[i]] = struct{}{}
	}
}

// RemovedTimelineEvents returns the removed IDs of the "timeline_events" edge to the TimelineEvent entity.
func (m *DemoEnvironmentMutation) RemovedTimelineEventsIDs() (ids []string) {
	for id := range m.removedtimeline_events {
		ids = append(ids, id)
	}
	return
}

// TimelineEventsIDs returns the "timeline_events" edge IDs in the mutation.
func (m *DemoEnvironmentMutation) TimelineEventsIDs() (ids []string) {
	for id := range m.timeline_events {
		ids = append(ids, id)
	}
	return
}

// ResetTimelineEvents resets all changes to the "timeline_events" edge.
func (m *DemoEnvironmentMutation) ResetTimelineEvents() {
	m.timeline_events = nil
	m.clearedtimeline_events = false
	m.removedtimeline_events = nil
}

// Where appends a list predicates to the DemoEnvironmentMutation builder.
func (m *DemoEnvironmentMutation) Where(ps ...predicate.DemoEnvironment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DemoEnvironmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DemoEnvironmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DemoEnvironment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DemoEnvironmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DemoEnvironmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DemoEnvironment).
func (m *DemoEnvironmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DemoEnvironmentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.template_id != nil {
		fields = append(fields, demoenvironment.FieldTemplateID)
	}
	if m.env_type != nil {
		fields = append(fields, demoenvironment.FieldEnvType)
	}
	if m.created_by != nil {
		fields = append(fields, demoenvironment.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, demoenvironment.FieldCreatedAt)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, demoenvironment.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DemoEnvironmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case demoenvironment.FieldTemplateID:
		return m.TemplateID()
	case demoenvironment.FieldEnvType:
		return m.EnvType()
	case demoenvironment.FieldCreatedBy:
		return m.CreatedBy()
	case demoenvironment.FieldCreatedAt:
		return m.CreatedAt()
	case demoenvironment.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DemoEnvironmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case demoenvironment.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case demoenvironment.FieldEnvType:
		return m.OldEnvType(ctx)
	case demoenvironment.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case demoenvironment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case demoenvironment.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown DemoEnvironment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DemoEnvironmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case demoenvironment.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case demoenvironment.FieldEnvType:
		v, ok := value.(demoenvironment.EnvType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvType(v)
		return nil
	case demoenvironment.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case demoenvironment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case demoenvironment.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown DemoEnvironment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DemoEnvironmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DemoEnvironmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DemoEnvironmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DemoEnvironment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DemoEnvironmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(demoenvironment.FieldCreatedBy) {
		fields = append(fields, demoenvironment.FieldCreatedBy)
	}
	if m.FieldCleared(demoenvironment.FieldLastInteractionAt) {
		fields = append(fields, demoenvironment.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DemoEnvironmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DemoEnvironmentMutation) ClearField(name string) error {
	switch name {
	case demoenvironment.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case demoenvironment.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown DemoEnvironment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DemoEnvironmentMutation) ResetField(name string) error {
	switch name {
	case demoenvironment.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case demoenvironment.FieldEnvType:
		m.ResetEnvType()
		return nil
	case demoenvironment.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case demoenvironment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case demoenvironment.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown DemoEnvironment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DemoEnvironmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.messages != nil {
		edges = append(edges, demoenvironment.EdgeMessages)
	}
	if m.timeline_events != nil {
		edges = append(edges, demoenvironment.EdgeTimelineEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DemoEnvironmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case demoenvironment.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case demoenvironment.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.timeline_events))
		for id := range m.timeline_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DemoEnvironmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, demoenvironment.EdgeMessages)
	}
	if m.removedtimeline_events != nil {
		edges = append(edges, demoenvironment.EdgeTimelineEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DemoEnvironmentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case demoenvironment.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case demoenvironment.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.removedtimeline_events))
		for id := range m.removedtimeline_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DemoEnvironmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmessages {
		edges = append(edges, demoenvironment.EdgeMessages)
	}
	if m.clearedtimeline_events {
		edges = append(edges, demoenvironment.EdgeTimelineEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DemoEnvironmentMutation) EdgeCleared(name string) bool {
	switch name {
	case demoenvironment.EdgeMessages:
		return m.clearedmessages
	case demoenvironment.EdgeTimelineEvents:
		return m.clearedtimeline_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DemoEnvironmentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DemoEnvironment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DemoEnvironmentMutation) ResetEdge(name string) error {
	switch name {
	case demoenvironment.EdgeMessages:
		m.ResetMessages()
		return nil
	case demoenvironment.EdgeTimelineEvents:
		m.ResetTimelineEvents()
		return nil
	}
	return fmt.Errorf("unknown DemoEnvironment edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	env_id        *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEnvID sets the "env_id" field.
func (m *EventMutation) SetEnvID(s string) {
	m.env_id = &s
}

// EnvID returns the value of the "env_id" field in the mutation.
func (m *EventMutation) EnvID() (r string, exists bool) {
	v := m.env_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvID returns the old "env_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEnvID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvID: %w", err)
	}
	return oldValue.EnvID, nil
}

// ResetEnvID resets all changes to the "env_id" field.
func (m *EventMutation) ResetEnvID() {
	m.env_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.env_id != nil {
		fields = append(fields, event.FieldEnvID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEnvID:
		return m.EnvID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEnvID:
		return m.OldEnvID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEnvID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEnvID:
		m.ResetEnvID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// TimelineEventMutation represents an operation that mutates the TimelineEvent nodes in the graph.
type TimelineEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	sequence_number     *int
	addsequence_number  *int
	event_type          *timelineevent.EventType
	status              *timelineevent.Status
	title               *string
	detail              *string
	highlighted_feature *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	environment         *string
	clearedenvironment  bool
	done                bool
	oldValue            func(context.Context) (*TimelineEvent, error)
	predicates          []predicate.TimelineEvent
}

var _ ent.Mutation = (*TimelineEventMutation)(nil)

// timelineeventOption allows management of the mutation configuration using functional options.
type timelineeventOption func(*TimelineEventMutation)

// newTimelineEventMutation creates new mutation for the TimelineEvent entity.
func newTimelineEventMutation(c config, op Op, opts ...timelineeventOption) *TimelineEventMutation {
	m := &TimelineEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTimelineEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimelineEventID sets the ID field of the mutation.
func withTimelineEventID(id string) timelineeventOption {
	return func(m *TimelineEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TimelineEvent
		)
		m.oldValue = func(ctx context.Context) (*TimelineEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimelineEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimelineEvent sets the old TimelineEvent of the mutation.
func withTimelineEvent(node *TimelineEvent) timelineeventOption {
	return func(m *TimelineEventMutation) {
		m.oldValue = func(context.Context) (*TimelineEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimelineEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimelineEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimelineEvent entities.
func (m *TimelineEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimelineEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimelineEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimelineEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEnvID sets the "env_id" field.
func (m *TimelineEventMutation) SetEnvID(s string) {
	m.environment = &s
}

// EnvID returns the value of the "env_id" field in the mutation.
func (m *TimelineEventMutation) EnvID() (r string, exists bool) {
	v := m.environment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvID returns the old "env_id" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldEnvID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvID: %w", err)
	}
	return oldValue.EnvID, nil
}

// ResetEnvID resets all changes to the "env_id" field.
func (m *TimelineEventMutation) ResetEnvID() {
	m.environment = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *TimelineEventMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *TimelineEventMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *TimelineEventMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *TimelineEventMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *TimelineEventMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetEventType sets the "event_type" field.
func (m *TimelineEventMutation) SetEventType(tt timelineevent.EventType) {
	m.event_type = &tt
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *TimelineEventMutation) EventType() (r timelineevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldEventType(ctx context.Context) (v timelineevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *TimelineEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetStatus sets the "status" field.
func (m *TimelineEventMutation) SetStatus(t timelineevent.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TimelineEventMutation) Status() (r timelineevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldStatus(ctx context.Context) (v timelineevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TimelineEventMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *TimelineEventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TimelineEventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TimelineEventMutation) ResetTitle() {
	m.title = nil
}

// SetDetail sets the "detail" field.
func (m *TimelineEventMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *TimelineEventMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *TimelineEventMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[timelineevent.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *TimelineEventMutation) DetailCleared() bool {
	_, ok := m.clearedFields[timelineevent.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *TimelineEventMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, timelineevent.FieldDetail)
}

// SetHighlightedFeature sets the "highlighted_feature" field.
func (m *TimelineEventMutation) SetHighlightedFeature(s string) {
	m.highlighted_feature = &s
}

// HighlightedFeature returns the value of the "highlighted_feature" field in the mutation.
func (m *TimelineEventMutation) HighlightedFeature() (r string, exists bool) {
	v := m.highlighted_feature
	if v == nil {
		return
	}
	return *v, true
}

// OldHighlightedFeature returns the old "highlighted_feature" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldHighlightedFeature(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighlightedFeature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighlightedFeature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighlightedFeature: %w", err)
	}
	return oldValue.HighlightedFeature, nil
}

// ClearHighlightedFeature clears the value of the "highlighted_feature" field.
func (m *TimelineEventMutation) ClearHighlightedFeature() {
	m.highlighted_feature = nil
	m.clearedFields[timelineevent.FieldHighlightedFeature] = struct{}{}
}

// HighlightedFeatureCleared returns if the "highlighted_feature" field was cleared in this mutation.
func (m *TimelineEventMutation) HighlightedFeatureCleared() bool {
	_, ok := m.clearedFields[timelineevent.FieldHighlightedFeature]
	return ok
}

// ResetHighlightedFeature resets all changes to the "highlighted_feature" field.
func (m *TimelineEventMutation) ResetHighlightedFeature() {
	m.highlighted_feature = nil
	delete(m.clearedFields, timelineevent.FieldHighlightedFeature)
}

// SetCreatedAt sets the "created_at" field.
func (m *TimelineEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimelineEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TimelineEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEnvironmentID sets the "environment" edge to the DemoEnvironment entity by id.
func (m *TimelineEventMutation) SetEnvironmentID(id string) {
	m.environment = &id
}

// ClearEnvironment clears the "environment" edge to the DemoEnvironment entity.
func (m *TimelineEventMutation) ClearEnvironment() {
	m.clearedenvironment = true
	m.clearedFields[timelineevent.FieldEnvID] = struct{}{}
}

// EnvironmentCleared reports if the "environment" edge to the DemoEnvironment entity was cleared.
func (m *TimelineEventMutation) EnvironmentCleared() bool {
	return m.clearedenvironment
}

// EnvironmentID returns the "environment" edge ID in the mutation.
func (m *TimelineEventMutation) EnvironmentID() (id string, exists bool) {
	if m.environment != nil {
		return *m.environment, true
	}
	return
}

// EnvironmentIDs returns the "environment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EnvironmentID instead. It exists only for internal usage by the builders.
func (m *TimelineEventMutation) EnvironmentIDs() (ids []string) {
	if id := m.environment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEnvironment resets all changes to the "environment" edge.
func (m *TimelineEventMutation) ResetEnvironment() {
	m.environment = nil
	m.clearedenvironment = false
}

// Where appends a list predicates to the TimelineEventMutation builder.
func (m *TimelineEventMutation) Where(ps ...predicate.TimelineEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimelineEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimelineEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimelineEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimelineEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimelineEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimelineEvent).
func (m *TimelineEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimelineEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.environment != nil {
		fields = append(fields, timelineevent.FieldEnvID)
	}
	if m.sequence_number != nil {
		fields = append(fields, timelineevent.FieldSequenceNumber)
	}
	if m.event_type != nil {
		fields = append(fields, timelineevent.FieldEventType)
	}
	if m.status != nil {
		fields = append(fields, timelineevent.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, timelineevent.FieldTitle)
	}
	if m.detail != nil {
		fields = append(fields, timelineevent.FieldDetail)
	}
	if m.highlighted_feature != nil {
		fields = append(fields, timelineevent.FieldHighlightedFeature)
	}
	if m.created_at != nil {
		fields = append(fields, timelineevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimelineEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timelineevent.FieldEnvID:
		return m.EnvID()
	case timelineevent.FieldSequenceNumber:
		return m.SequenceNumber()
	case timelineevent.FieldEventType:
		return m.EventType()
	case timelineevent.FieldStatus:
		return m.Status()
	case timelineevent.FieldTitle:
		return m.Title()
	case timelineevent.FieldDetail:
		return m.Detail()
	case timelineevent.FieldHighlightedFeature:
		return m.HighlightedFeature()
	case timelineevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimelineEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timelineevent.FieldEnvID:
		return m.OldEnvID(ctx)
	case timelineevent.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case timelineevent.FieldEventType:
		return m.OldEventType(ctx)
	case timelineevent.FieldStatus:
		return m.OldStatus(ctx)
	case timelineevent.FieldTitle:
		return m.OldTitle(ctx)
	case timelineevent.FieldDetail:
		return m.OldDetail(ctx)
	case timelineevent.FieldHighlightedFeature:
		return m.OldHighlightedFeature(ctx)
	case timelineevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TimelineEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimelineEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timelineevent.FieldEnvID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvID(v)
		return nil
	case timelineevent.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case timelineevent.FieldEventType:
		v, ok := value.(timelineevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case timelineevent.FieldStatus:
		v, ok := value.(timelineevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case timelineevent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case timelineevent.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case timelineevent.FieldHighlightedFeature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighlightedFeature(v)
		return nil
	case timelineevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimelineEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, timelineevent.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimelineEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case timelineevent.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimelineEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case timelineevent.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimelineEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(timelineevent.FieldDetail) {
		fields = append(fields, timelineevent.FieldDetail)
	}
	if m.FieldCleared(timelineevent.FieldHighlightedFeature) {
		fields = append(fields, timelineevent.FieldHighlightedFeature)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimelineEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimelineEventMutation) ClearField(name string) error {
	switch name {
	case timelineevent.FieldDetail:
		m.ClearDetail()
		return nil
	case timelineevent.FieldHighlightedFeature:
		m.ClearHighlightedFeature()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimelineEventMutation) ResetField(name string) error {
	switch name {
	case timelineevent.FieldEnvID:
		m.ResetEnvID()
		return nil
	case timelineevent.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case timelineevent.FieldEventType:
		m.ResetEventType()
		return nil
	case timelineevent.FieldStatus:
		m.ResetStatus()
		return nil
	case timelineevent.FieldTitle:
		m.ResetTitle()
		return nil
	case timelineevent.FieldDetail:
		m.ResetDetail()
		return nil
	case timelineevent.FieldHighlightedFeature:
		m.ResetHighlightedFeature()
		return nil
	case timelineevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimelineEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.environment != nil {
		edges = append(edges, timelineevent.EdgeEnvironment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimelineEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case timelineevent.EdgeEnvironment:
		if id := m.environment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimelineEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimelineEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimelineEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedenvironment {
		edges = append(edges, timelineevent.EdgeEnvironment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimelineEventMutation) EdgeCleared(name string) bool {
	switch name {
	case timelineevent.EdgeEnvironment:
		return m.clearedenvironment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimelineEventMutation) ClearEdge(name string) error {
	switch name {
	case timelineevent.EdgeEnvironment:
		m.ClearEnvironment()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimelineEventMutation) ResetEdge(name string) error {
	switch name {
	case timelineevent.EdgeEnvironment:
		m.ResetEnvironment()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent edge %s", name)
}
