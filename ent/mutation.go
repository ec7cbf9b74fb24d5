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
	"github.com/suiteops/suitepilot/ent/artifact"
	"github.com/suiteops/suitepilot/ent/auditevent"
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/entitymapping"
	"github.com/suiteops/suitepilot/ent/patch"
	"github.com/suiteops/suitepilot/ent/policyprofile"
	"github.com/suiteops/suitepilot/ent/predicate"
	"github.com/suiteops/suitepilot/ent/run"
	"github.com/suiteops/suitepilot/ent/tenant"
	"github.com/suiteops/suitepilot/ent/workspace"
	"github.com/suiteops/suitepilot/ent/workspacefile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArtifact      = "Artifact"
	TypeAuditEvent    = "AuditEvent"
	TypeChangeset     = "Changeset"
	TypeEntityMapping = "EntityMapping"
	TypePatch         = "Patch"
	TypePolicyProfile = "PolicyProfile"
	TypeRun           = "Run"
	TypeTenant        = "Tenant"
	TypeWorkspace     = "Workspace"
	TypeWorkspaceFile = "WorkspaceFile"
)

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op            Op
	typ           string
	id            *string
	artifact_type *artifact.ArtifactType
	content       *[]byte
	sha256        *string
	size_bytes    *int
	addsize_bytes *int
	truncated     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*Artifact, error)
	predicates    []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ArtifactMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ArtifactMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ArtifactMutation) ResetRunID() {
	m.run = nil
}

// SetArtifactType sets the "artifact_type" field.
func (m *ArtifactMutation) SetArtifactType(at artifact.ArtifactType) {
	m.artifact_type = &at
}

// ArtifactType returns the value of the "artifact_type" field in the mutation.
func (m *ArtifactMutation) ArtifactType() (r artifact.ArtifactType, exists bool) {
	v := m.artifact_type
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactType returns the old "artifact_type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldArtifactType(ctx context.Context) (v artifact.ArtifactType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactType: %w", err)
	}
	return oldValue.ArtifactType, nil
}

// ResetArtifactType resets all changes to the "artifact_type" field.
func (m *ArtifactMutation) ResetArtifactType() {
	m.artifact_type = nil
}

// SetContent sets the "content" field.
func (m *ArtifactMutation) SetContent(b []byte) {
	m.content = &b
}

// Content returns the value of the "content" field in the mutation.
func (m *ArtifactMutation) Content() (r []byte, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldContent(ctx context.Context) (v []byte, err error) {
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
func (m *ArtifactMutation) ResetContent() {
	m.content = nil
}

// SetSha256 sets the "sha256" field.
func (m *ArtifactMutation) SetSha256(s string) {
	m.sha256 = &s
}

// Sha256 returns the value of the "sha256" field in the mutation.
func (m *ArtifactMutation) Sha256() (r string, exists bool) {
	v := m.sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldSha256 returns the old "sha256" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSha256: %w", err)
	}
	return oldValue.Sha256, nil
}

// ResetSha256 resets all changes to the "sha256" field.
func (m *ArtifactMutation) ResetSha256() {
	m.sha256 = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *ArtifactMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *ArtifactMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *ArtifactMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *ArtifactMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *ArtifactMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetTruncated sets the "truncated" field.
func (m *ArtifactMutation) SetTruncated(b bool) {
	m.truncated = &b
}

// Truncated returns the value of the "truncated" field in the mutation.
func (m *ArtifactMutation) Truncated() (r bool, exists bool) {
	v := m.truncated
	if v == nil {
		return
	}
	return *v, true
}

// OldTruncated returns the old "truncated" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldTruncated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTruncated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTruncated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTruncated: %w", err)
	}
	return oldValue.Truncated, nil
}

// ResetTruncated resets all changes to the "truncated" field.
func (m *ArtifactMutation) ResetTruncated() {
	m.truncated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *ArtifactMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[artifact.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *ArtifactMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ArtifactMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ArtifactMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, artifact.FieldRunID)
	}
	if m.artifact_type != nil {
		fields = append(fields, artifact.FieldArtifactType)
	}
	if m.content != nil {
		fields = append(fields, artifact.FieldContent)
	}
	if m.sha256 != nil {
		fields = append(fields, artifact.FieldSha256)
	}
	if m.size_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	if m.truncated != nil {
		fields = append(fields, artifact.FieldTruncated)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldRunID:
		return m.RunID()
	case artifact.FieldArtifactType:
		return m.ArtifactType()
	case artifact.FieldContent:
		return m.Content()
	case artifact.FieldSha256:
		return m.Sha256()
	case artifact.FieldSizeBytes:
		return m.SizeBytes()
	case artifact.FieldTruncated:
		return m.Truncated()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldRunID:
		return m.OldRunID(ctx)
	case artifact.FieldArtifactType:
		return m.OldArtifactType(ctx)
	case artifact.FieldContent:
		return m.OldContent(ctx)
	case artifact.FieldSha256:
		return m.OldSha256(ctx)
	case artifact.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case artifact.FieldTruncated:
		return m.OldTruncated(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case artifact.FieldArtifactType:
		v, ok := value.(artifact.ArtifactType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactType(v)
		return nil
	case artifact.FieldContent:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case artifact.FieldSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSha256(v)
		return nil
	case artifact.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case artifact.FieldTruncated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTruncated(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldRunID:
		m.ResetRunID()
		return nil
	case artifact.FieldArtifactType:
		m.ResetArtifactType()
		return nil
	case artifact.FieldContent:
		m.ResetContent()
		return nil
	case artifact.FieldSha256:
		m.ResetSha256()
		return nil
	case artifact.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case artifact.FieldTruncated:
		m.ResetTruncated()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, artifact.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case artifact.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, artifact.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case artifact.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	switch name {
	case artifact.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	switch name {
	case artifact.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// AuditEventMutation represents an operation that mutates the AuditEvent nodes in the graph.
type AuditEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	actor_id       *string
	category       *string
	action         *string
	resource_type  *string
	resource_id    *string
	correlation_id *string
	payload        *map[string]interface{}
	status         *auditevent.Status
	error_message  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AuditEvent, error)
	predicates     []predicate.AuditEvent
}

var _ ent.Mutation = (*AuditEventMutation)(nil)

// auditeventOption allows management of the mutation configuration using functional options.
type auditeventOption func(*AuditEventMutation)

// newAuditEventMutation creates new mutation for the AuditEvent entity.
func newAuditEventMutation(c config, op Op, opts ...auditeventOption) *AuditEventMutation {
	m := &AuditEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEventID sets the ID field of the mutation.
func withAuditEventID(id string) auditeventOption {
	return func(m *AuditEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEvent
		)
		m.oldValue = func(ctx context.Context) (*AuditEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEvent sets the old AuditEvent of the mutation.
func withAuditEvent(node *AuditEvent) auditeventOption {
	return func(m *AuditEventMutation) {
		m.oldValue = func(context.Context) (*AuditEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEvent entities.
func (m *AuditEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AuditEventMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AuditEventMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AuditEventMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetActorID sets the "actor_id" field.
func (m *AuditEventMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *AuditEventMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *AuditEventMutation) ResetActorID() {
	m.actor_id = nil
}

// SetCategory sets the "category" field.
func (m *AuditEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *AuditEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AuditEventMutation) ResetCategory() {
	m.category = nil
}

// SetAction sets the "action" field.
func (m *AuditEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEventMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditEventMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditEventMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *AuditEventMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[auditevent.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *AuditEventMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditEventMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, auditevent.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *AuditEventMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditEventMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *AuditEventMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[auditevent.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *AuditEventMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditEventMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, auditevent.FieldResourceID)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *AuditEventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *AuditEventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *AuditEventMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetPayload sets the "payload" field.
func (m *AuditEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AuditEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
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

// ClearPayload clears the value of the "payload" field.
func (m *AuditEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[auditevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *AuditEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *AuditEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, auditevent.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *AuditEventMutation) SetStatus(a auditevent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditEventMutation) Status() (r auditevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldStatus(ctx context.Context) (v auditevent.Status, err error) {
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
func (m *AuditEventMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AuditEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AuditEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AuditEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[auditevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AuditEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AuditEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, auditevent.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AuditEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEventMutation builder.
func (m *AuditEventMutation) Where(ps ...predicate.AuditEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEvent).
func (m *AuditEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, auditevent.FieldTenantID)
	}
	if m.actor_id != nil {
		fields = append(fields, auditevent.FieldActorID)
	}
	if m.category != nil {
		fields = append(fields, auditevent.FieldCategory)
	}
	if m.action != nil {
		fields = append(fields, auditevent.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditevent.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditevent.FieldResourceID)
	}
	if m.correlation_id != nil {
		fields = append(fields, auditevent.FieldCorrelationID)
	}
	if m.payload != nil {
		fields = append(fields, auditevent.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, auditevent.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, auditevent.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, auditevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditevent.FieldTenantID:
		return m.TenantID()
	case auditevent.FieldActorID:
		return m.ActorID()
	case auditevent.FieldCategory:
		return m.Category()
	case auditevent.FieldAction:
		return m.Action()
	case auditevent.FieldResourceType:
		return m.ResourceType()
	case auditevent.FieldResourceID:
		return m.ResourceID()
	case auditevent.FieldCorrelationID:
		return m.CorrelationID()
	case auditevent.FieldPayload:
		return m.Payload()
	case auditevent.FieldStatus:
		return m.Status()
	case auditevent.FieldErrorMessage:
		return m.ErrorMessage()
	case auditevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditevent.FieldTenantID:
		return m.OldTenantID(ctx)
	case auditevent.FieldActorID:
		return m.OldActorID(ctx)
	case auditevent.FieldCategory:
		return m.OldCategory(ctx)
	case auditevent.FieldAction:
		return m.OldAction(ctx)
	case auditevent.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditevent.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditevent.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case auditevent.FieldPayload:
		return m.OldPayload(ctx)
	case auditevent.FieldStatus:
		return m.OldStatus(ctx)
	case auditevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case auditevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditevent.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case auditevent.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case auditevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case auditevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditevent.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditevent.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditevent.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case auditevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case auditevent.FieldStatus:
		v, ok := value.(auditevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case auditevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case auditevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditevent.FieldResourceType) {
		fields = append(fields, auditevent.FieldResourceType)
	}
	if m.FieldCleared(auditevent.FieldResourceID) {
		fields = append(fields, auditevent.FieldResourceID)
	}
	if m.FieldCleared(auditevent.FieldPayload) {
		fields = append(fields, auditevent.FieldPayload)
	}
	if m.FieldCleared(auditevent.FieldErrorMessage) {
		fields = append(fields, auditevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEventMutation) ClearField(name string) error {
	switch name {
	case auditevent.FieldResourceType:
		m.ClearResourceType()
		return nil
	case auditevent.FieldResourceID:
		m.ClearResourceID()
		return nil
	case auditevent.FieldPayload:
		m.ClearPayload()
		return nil
	case auditevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEventMutation) ResetField(name string) error {
	switch name {
	case auditevent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case auditevent.FieldActorID:
		m.ResetActorID()
		return nil
	case auditevent.FieldCategory:
		m.ResetCategory()
		return nil
	case auditevent.FieldAction:
		m.ResetAction()
		return nil
	case auditevent.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditevent.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditevent.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case auditevent.FieldPayload:
		m.ResetPayload()
		return nil
	case auditevent.FieldStatus:
		m.ResetStatus()
		return nil
	case auditevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case auditevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent edge %s", name)
}

// ChangesetMutation represents an operation that mutates the Changeset nodes in the graph.
type ChangesetMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	title            *string
	rationale        *string
	status           *changeset.Status
	proposed_by      *string
	reviewed_by      *string
	applied_by       *string
	submitted_at     *time.Time
	reviewed_at      *time.Time
	applied_at       *time.Time
	rejection_reason *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *string
	clearedworkspace bool
	patches          map[string]struct{}
	removedpatches   map[string]struct{}
	clearedpatches   bool
	done             bool
	oldValue         func(context.Context) (*Changeset, error)
	predicates       []predicate.Changeset
}

var _ ent.Mutation = (*ChangesetMutation)(nil)

// changesetOption allows management of the mutation configuration using functional options.
type changesetOption func(*ChangesetMutation)

// newChangesetMutation creates new mutation for the Changeset entity.
func newChangesetMutation(c config, op Op, opts ...changesetOption) *ChangesetMutation {
	m := &ChangesetMutation{
		config:        c,
		op:            op,
		typ:           TypeChangeset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChangesetID sets the ID field of the mutation.
func withChangesetID(id string) changesetOption {
	return func(m *ChangesetMutation) {
		var (
			err   error
			once  sync.Once
			value *Changeset
		)
		m.oldValue = func(ctx context.Context) (*Changeset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Changeset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChangeset sets the old Changeset of the mutation.
func withChangeset(node *Changeset) changesetOption {
	return func(m *ChangesetMutation) {
		m.oldValue = func(context.Context) (*Changeset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChangesetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChangesetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Changeset entities.
func (m *ChangesetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChangesetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChangesetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Changeset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ChangesetMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ChangesetMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ChangesetMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ChangesetMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ChangesetMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ChangesetMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetTitle sets the "title" field.
func (m *ChangesetMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChangesetMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *ChangesetMutation) ResetTitle() {
	m.title = nil
}

// SetRationale sets the "rationale" field.
func (m *ChangesetMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *ChangesetMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ClearRationale clears the value of the "rationale" field.
func (m *ChangesetMutation) ClearRationale() {
	m.rationale = nil
	m.clearedFields[changeset.FieldRationale] = struct{}{}
}

// RationaleCleared returns if the "rationale" field was cleared in this mutation.
func (m *ChangesetMutation) RationaleCleared() bool {
	_, ok := m.clearedFields[changeset.FieldRationale]
	return ok
}

// ResetRationale resets all changes to the "rationale" field.
func (m *ChangesetMutation) ResetRationale() {
	m.rationale = nil
	delete(m.clearedFields, changeset.FieldRationale)
}

// SetStatus sets the "status" field.
func (m *ChangesetMutation) SetStatus(c changeset.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ChangesetMutation) Status() (r changeset.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldStatus(ctx context.Context) (v changeset.Status, err error) {
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
func (m *ChangesetMutation) ResetStatus() {
	m.status = nil
}

// SetProposedBy sets the "proposed_by" field.
func (m *ChangesetMutation) SetProposedBy(s string) {
	m.proposed_by = &s
}

// ProposedBy returns the value of the "proposed_by" field in the mutation.
func (m *ChangesetMutation) ProposedBy() (r string, exists bool) {
	v := m.proposed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedBy returns the old "proposed_by" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldProposedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedBy: %w", err)
	}
	return oldValue.ProposedBy, nil
}

// ResetProposedBy resets all changes to the "proposed_by" field.
func (m *ChangesetMutation) ResetProposedBy() {
	m.proposed_by = nil
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *ChangesetMutation) SetReviewedBy(s string) {
	m.reviewed_by = &s
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *ChangesetMutation) ReviewedBy() (r string, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldReviewedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *ChangesetMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[changeset.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *ChangesetMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[changeset.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *ChangesetMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, changeset.FieldReviewedBy)
}

// SetAppliedBy sets the "applied_by" field.
func (m *ChangesetMutation) SetAppliedBy(s string) {
	m.applied_by = &s
}

// AppliedBy returns the value of the "applied_by" field in the mutation.
func (m *ChangesetMutation) AppliedBy() (r string, exists bool) {
	v := m.applied_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedBy returns the old "applied_by" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldAppliedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedBy: %w", err)
	}
	return oldValue.AppliedBy, nil
}

// ClearAppliedBy clears the value of the "applied_by" field.
func (m *ChangesetMutation) ClearAppliedBy() {
	m.applied_by = nil
	m.clearedFields[changeset.FieldAppliedBy] = struct{}{}
}

// AppliedByCleared returns if the "applied_by" field was cleared in this mutation.
func (m *ChangesetMutation) AppliedByCleared() bool {
	_, ok := m.clearedFields[changeset.FieldAppliedBy]
	return ok
}

// ResetAppliedBy resets all changes to the "applied_by" field.
func (m *ChangesetMutation) ResetAppliedBy() {
	m.applied_by = nil
	delete(m.clearedFields, changeset.FieldAppliedBy)
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *ChangesetMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *ChangesetMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldSubmittedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (m *ChangesetMutation) ClearSubmittedAt() {
	m.submitted_at = nil
	m.clearedFields[changeset.FieldSubmittedAt] = struct{}{}
}

// SubmittedAtCleared returns if the "submitted_at" field was cleared in this mutation.
func (m *ChangesetMutation) SubmittedAtCleared() bool {
	_, ok := m.clearedFields[changeset.FieldSubmittedAt]
	return ok
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *ChangesetMutation) ResetSubmittedAt() {
	m.submitted_at = nil
	delete(m.clearedFields, changeset.FieldSubmittedAt)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *ChangesetMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *ChangesetMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *ChangesetMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[changeset.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *ChangesetMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[changeset.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *ChangesetMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, changeset.FieldReviewedAt)
}

// SetAppliedAt sets the "applied_at" field.
func (m *ChangesetMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *ChangesetMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldAppliedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (m *ChangesetMutation) ClearAppliedAt() {
	m.applied_at = nil
	m.clearedFields[changeset.FieldAppliedAt] = struct{}{}
}

// AppliedAtCleared returns if the "applied_at" field was cleared in this mutation.
func (m *ChangesetMutation) AppliedAtCleared() bool {
	_, ok := m.clearedFields[changeset.FieldAppliedAt]
	return ok
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *ChangesetMutation) ResetAppliedAt() {
	m.applied_at = nil
	delete(m.clearedFields, changeset.FieldAppliedAt)
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *ChangesetMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *ChangesetMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldRejectionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *ChangesetMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[changeset.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *ChangesetMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[changeset.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *ChangesetMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, changeset.FieldRejectionReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChangesetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChangesetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ChangesetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChangesetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChangesetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Changeset entity.
// If the Changeset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangesetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ChangesetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *ChangesetMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[changeset.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *ChangesetMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *ChangesetMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *ChangesetMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// AddPatchIDs adds the "patches" edge to the Patch entity by ids.
func (m *ChangesetMutation) AddPatchIDs(ids ...string) {
	if m.patches == nil {
		m.patches = make(map[string]struct{})
	}
	for i := range ids {
		m.patches[ids[i]] = struct{}{}
	}
}

// ClearPatches clears the "patches" edge to the Patch entity.
func (m *ChangesetMutation) ClearPatches() {
	m.clearedpatches = true
}

// PatchesCleared reports if the "patches" edge to the Patch entity was cleared.
func (m *ChangesetMutation) PatchesCleared() bool {
	return m.clearedpatches
}

// RemovePatchIDs removes the "patches" edge to the Patch entity by IDs.
func (m *ChangesetMutation) RemovePatchIDs(ids ...string) {
	if m.removedpatches == nil {
		m.removedpatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.patches, ids[i])
		m.removedpatches[ids[i]] = struct{}{}
	}
}

// RemovedPatches returns the removed IDs of the "patches" edge to the Patch entity.
func (m *ChangesetMutation) RemovedPatchesIDs() (ids []string) {
	for id := range m.removedpatches {
		ids = append(ids, id)
	}
	return
}

// PatchesIDs returns the "patches" edge IDs in the mutation.
func (m *ChangesetMutation) PatchesIDs() (ids []string) {
	for id := range m.patches {
		ids = append(ids, id)
	}
	return
}

// ResetPatches resets all changes to the "patches" edge.
func (m *ChangesetMutation) ResetPatches() {
	m.patches = nil
	m.clearedpatches = false
	m.removedpatches = nil
}

// Where appends a list predicates to the ChangesetMutation builder.
func (m *ChangesetMutation) Where(ps ...predicate.Changeset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChangesetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChangesetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Changeset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChangesetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChangesetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Changeset).
func (m *ChangesetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChangesetMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, changeset.FieldTenantID)
	}
	if m.workspace != nil {
		fields = append(fields, changeset.FieldWorkspaceID)
	}
	if m.title != nil {
		fields = append(fields, changeset.FieldTitle)
	}
	if m.rationale != nil {
		fields = append(fields, changeset.FieldRationale)
	}
	if m.status != nil {
		fields = append(fields, changeset.FieldStatus)
	}
	if m.proposed_by != nil {
		fields = append(fields, changeset.FieldProposedBy)
	}
	if m.reviewed_by != nil {
		fields = append(fields, changeset.FieldReviewedBy)
	}
	if m.applied_by != nil {
		fields = append(fields, changeset.FieldAppliedBy)
	}
	if m.submitted_at != nil {
		fields = append(fields, changeset.FieldSubmittedAt)
	}
	if m.reviewed_at != nil {
		fields = append(fields, changeset.FieldReviewedAt)
	}
	if m.applied_at != nil {
		fields = append(fields, changeset.FieldAppliedAt)
	}
	if m.rejection_reason != nil {
		fields = append(fields, changeset.FieldRejectionReason)
	}
	if m.created_at != nil {
		fields = append(fields, changeset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, changeset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChangesetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case changeset.FieldTenantID:
		return m.TenantID()
	case changeset.FieldWorkspaceID:
		return m.WorkspaceID()
	case changeset.FieldTitle:
		return m.Title()
	case changeset.FieldRationale:
		return m.Rationale()
	case changeset.FieldStatus:
		return m.Status()
	case changeset.FieldProposedBy:
		return m.ProposedBy()
	case changeset.FieldReviewedBy:
		return m.ReviewedBy()
	case changeset.FieldAppliedBy:
		return m.AppliedBy()
	case changeset.FieldSubmittedAt:
		return m.SubmittedAt()
	case changeset.FieldReviewedAt:
		return m.ReviewedAt()
	case changeset.FieldAppliedAt:
		return m.AppliedAt()
	case changeset.FieldRejectionReason:
		return m.RejectionReason()
	case changeset.FieldCreatedAt:
		return m.CreatedAt()
	case changeset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChangesetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case changeset.FieldTenantID:
		return m.OldTenantID(ctx)
	case changeset.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case changeset.FieldTitle:
		return m.OldTitle(ctx)
	case changeset.FieldRationale:
		return m.OldRationale(ctx)
	case changeset.FieldStatus:
		return m.OldStatus(ctx)
	case changeset.FieldProposedBy:
		return m.OldProposedBy(ctx)
	case changeset.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case changeset.FieldAppliedBy:
		return m.OldAppliedBy(ctx)
	case changeset.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case changeset.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case changeset.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	case changeset.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	case changeset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case changeset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Changeset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangesetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case changeset.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case changeset.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case changeset.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case changeset.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case changeset.FieldStatus:
		v, ok := value.(changeset.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case changeset.FieldProposedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedBy(v)
		return nil
	case changeset.FieldReviewedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case changeset.FieldAppliedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedBy(v)
		return nil
	case changeset.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case changeset.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case changeset.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	case changeset.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	case changeset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case changeset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Changeset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChangesetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChangesetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangesetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Changeset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChangesetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(changeset.FieldRationale) {
		fields = append(fields, changeset.FieldRationale)
	}
	if m.FieldCleared(changeset.FieldReviewedBy) {
		fields = append(fields, changeset.FieldReviewedBy)
	}
	if m.FieldCleared(changeset.FieldAppliedBy) {
		fields = append(fields, changeset.FieldAppliedBy)
	}
	if m.FieldCleared(changeset.FieldSubmittedAt) {
		fields = append(fields, changeset.FieldSubmittedAt)
	}
	if m.FieldCleared(changeset.FieldReviewedAt) {
		fields = append(fields, changeset.FieldReviewedAt)
	}
	if m.FieldCleared(changeset.FieldAppliedAt) {
		fields = append(fields, changeset.FieldAppliedAt)
	}
	if m.FieldCleared(changeset.FieldRejectionReason) {
		fields = append(fields, changeset.FieldRejectionReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChangesetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChangesetMutation) ClearField(name string) error {
	switch name {
	case changeset.FieldRationale:
		m.ClearRationale()
		return nil
	case changeset.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case changeset.FieldAppliedBy:
		m.ClearAppliedBy()
		return nil
	case changeset.FieldSubmittedAt:
		m.ClearSubmittedAt()
		return nil
	case changeset.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	case changeset.FieldAppliedAt:
		m.ClearAppliedAt()
		return nil
	case changeset.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	}
	return fmt.Errorf("unknown Changeset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChangesetMutation) ResetField(name string) error {
	switch name {
	case changeset.FieldTenantID:
		m.ResetTenantID()
		return nil
	case changeset.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case changeset.FieldTitle:
		m.ResetTitle()
		return nil
	case changeset.FieldRationale:
		m.ResetRationale()
		return nil
	case changeset.FieldStatus:
		m.ResetStatus()
		return nil
	case changeset.FieldProposedBy:
		m.ResetProposedBy()
		return nil
	case changeset.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case changeset.FieldAppliedBy:
		m.ResetAppliedBy()
		return nil
	case changeset.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case changeset.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case changeset.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	case changeset.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	case changeset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case changeset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Changeset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChangesetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.workspace != nil {
		edges = append(edges, changeset.EdgeWorkspace)
	}
	if m.patches != nil {
		edges = append(edges, changeset.EdgePatches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChangesetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case changeset.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case changeset.EdgePatches:
		ids := make([]ent.Value, 0, len(m.patches))
		for id := range m.patches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChangesetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpatches != nil {
		edges = append(edges, changeset.EdgePatches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChangesetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case changeset.EdgePatches:
		ids := make([]ent.Value, 0, len(m.removedpatches))
		for id := range m.removedpatches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChangesetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedworkspace {
		edges = append(edges, changeset.EdgeWorkspace)
	}
	if m.clearedpatches {
		edges = append(edges, changeset.EdgePatches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChangesetMutation) EdgeCleared(name string) bool {
	switch name {
	case changeset.EdgeWorkspace:
		return m.clearedworkspace
	case changeset.EdgePatches:
		return m.clearedpatches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChangesetMutation) ClearEdge(name string) error {
	switch name {
	case changeset.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Changeset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChangesetMutation) ResetEdge(name string) error {
	switch name {
	case changeset.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case changeset.EdgePatches:
		m.ResetPatches()
		return nil
	}
	return fmt.Errorf("unknown Changeset edge %s", name)
}

// EntityMappingMutation represents an operation that mutates the EntityMapping nodes in the graph.
type EntityMappingMutation struct {
	config
	op            Op
	typ           string
	id            *string
	entity_type   *string
	script_id     *string
	natural_name  *string
	description   *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	tenant        *string
	clearedtenant bool
	done          bool
	oldValue      func(context.Context) (*EntityMapping, error)
	predicates    []predicate.EntityMapping
}

var _ ent.Mutation = (*EntityMappingMutation)(nil)

// entitymappingOption allows management of the mutation configuration using functional options.
type entitymappingOption func(*EntityMappingMutation)

// newEntityMappingMutation creates new mutation for the EntityMapping entity.
func newEntityMappingMutation(c config, op Op, opts ...entitymappingOption) *EntityMappingMutation {
	m := &EntityMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityMappingID sets the ID field of the mutation.
func withEntityMappingID(id string) entitymappingOption {
	return func(m *EntityMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityMapping
		)
		m.oldValue = func(ctx context.Context) (*EntityMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityMapping sets the old EntityMapping of the mutation.
func withEntityMapping(node *EntityMapping) entitymappingOption {
	return func(m *EntityMappingMutation) {
		m.oldValue = func(context.Context) (*EntityMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityMapping entities.
func (m *EntityMappingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMappingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMappingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *EntityMappingMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *EntityMappingMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the EntityMapping entity.
// If the EntityMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMappingMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *EntityMappingMutation) ResetTenantID() {
	m.tenant = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntityMappingMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityMappingMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the EntityMapping entity.
// If the EntityMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMappingMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityMappingMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetScriptID sets the "script_id" field.
func (m *EntityMappingMutation) SetScriptID(s string) {
	m.script_id = &s
}

// ScriptID returns the value of the "script_id" field in the mutation.
func (m *EntityMappingMutation) ScriptID() (r string, exists bool) {
	v := m.script_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptID returns the old "script_id" field's value of the EntityMapping entity.
// If the EntityMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMappingMutation) OldScriptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptID: %w", err)
	}
	return oldValue.ScriptID, nil
}

// ResetScriptID resets all changes to the "script_id" field.
func (m *EntityMappingMutation) ResetScriptID() {
	m.script_id = nil
}

// SetNaturalName sets the "natural_name" field.
func (m *EntityMappingMutation) SetNaturalName(s string) {
	m.natural_name = &s
}

// NaturalName returns the value of the "natural_name" field in the mutation.
func (m *EntityMappingMutation) NaturalName() (r string, exists bool) {
	v := m.natural_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNaturalName returns the old "natural_name" field's value of the EntityMapping entity.
// If the EntityMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMappingMutation) OldNaturalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNaturalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNaturalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNaturalName: %w", err)
	}
	return oldValue.NaturalName, nil
}

// ResetNaturalName resets all changes to the "natural_name" field.
func (m *EntityMappingMutation) ResetNaturalName() {
	m.natural_name = nil
}

// SetDescription sets the "description" field.
func (m *EntityMappingMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EntityMappingMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the EntityMapping entity.
// If the EntityMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMappingMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *EntityMappingMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[entitymapping.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *EntityMappingMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[entitymapping.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *EntityMappingMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, entitymapping.FieldDescription)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EntityMappingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EntityMappingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EntityMapping entity.
// If the EntityMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMappingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EntityMappingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *EntityMappingMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[entitymapping.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *EntityMappingMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *EntityMappingMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *EntityMappingMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the EntityMappingMutation builder.
func (m *EntityMappingMutation) Where(ps ...predicate.EntityMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityMapping).
func (m *EntityMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMappingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant != nil {
		fields = append(fields, entitymapping.FieldTenantID)
	}
	if m.entity_type != nil {
		fields = append(fields, entitymapping.FieldEntityType)
	}
	if m.script_id != nil {
		fields = append(fields, entitymapping.FieldScriptID)
	}
	if m.natural_name != nil {
		fields = append(fields, entitymapping.FieldNaturalName)
	}
	if m.description != nil {
		fields = append(fields, entitymapping.FieldDescription)
	}
	if m.updated_at != nil {
		fields = append(fields, entitymapping.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitymapping.FieldTenantID:
		return m.TenantID()
	case entitymapping.FieldEntityType:
		return m.EntityType()
	case entitymapping.FieldScriptID:
		return m.ScriptID()
	case entitymapping.FieldNaturalName:
		return m.NaturalName()
	case entitymapping.FieldDescription:
		return m.Description()
	case entitymapping.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitymapping.FieldTenantID:
		return m.OldTenantID(ctx)
	case entitymapping.FieldEntityType:
		return m.OldEntityType(ctx)
	case entitymapping.FieldScriptID:
		return m.OldScriptID(ctx)
	case entitymapping.FieldNaturalName:
		return m.OldNaturalName(ctx)
	case entitymapping.FieldDescription:
		return m.OldDescription(ctx)
	case entitymapping.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitymapping.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case entitymapping.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entitymapping.FieldScriptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptID(v)
		return nil
	case entitymapping.FieldNaturalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNaturalName(v)
		return nil
	case entitymapping.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case entitymapping.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMappingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMappingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EntityMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMappingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entitymapping.FieldDescription) {
		fields = append(fields, entitymapping.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMappingMutation) ClearField(name string) error {
	switch name {
	case entitymapping.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown EntityMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMappingMutation) ResetField(name string) error {
	switch name {
	case entitymapping.FieldTenantID:
		m.ResetTenantID()
		return nil
	case entitymapping.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entitymapping.FieldScriptID:
		m.ResetScriptID()
		return nil
	case entitymapping.FieldNaturalName:
		m.ResetNaturalName()
		return nil
	case entitymapping.FieldDescription:
		m.ResetDescription()
		return nil
	case entitymapping.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, entitymapping.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMappingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entitymapping.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, entitymapping.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMappingMutation) EdgeCleared(name string) bool {
	switch name {
	case entitymapping.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMappingMutation) ClearEdge(name string) error {
	switch name {
	case entitymapping.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown EntityMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMappingMutation) ResetEdge(name string) error {
	switch name {
	case entitymapping.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown EntityMapping edge %s", name)
}

// PatchMutation represents an operation that mutates the Patch nodes in the graph.
type PatchMutation struct {
	config
	op               Op
	typ              string
	id               *string
	operation        *patch.Operation
	file_path        *string
	baseline_sha256  *string
	unified_diff     *string
	new_content      *string
	apply_order      *int
	addapply_order   *int
	clearedFields    map[string]struct{}
	changeset        *string
	clearedchangeset bool
	done             bool
	oldValue         func(context.Context) (*Patch, error)
	predicates       []predicate.Patch
}

var _ ent.Mutation = (*PatchMutation)(nil)

// patchOption allows management of the mutation configuration using functional options.
type patchOption func(*PatchMutation)

// newPatchMutation creates new mutation for the Patch entity.
func newPatchMutation(c config, op Op, opts ...patchOption) *PatchMutation {
	m := &PatchMutation{
		config:        c,
		op:            op,
		typ:           TypePatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatchID sets the ID field of the mutation.
func withPatchID(id string) patchOption {
	return func(m *PatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Patch
		)
		m.oldValue = func(ctx context.Context) (*Patch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatch sets the old Patch of the mutation.
func withPatch(node *Patch) patchOption {
	return func(m *PatchMutation) {
		m.oldValue = func(context.Context) (*Patch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patch entities.
func (m *PatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChangesetID sets the "changeset_id" field.
func (m *PatchMutation) SetChangesetID(s string) {
	m.changeset = &s
}

// ChangesetID returns the value of the "changeset_id" field in the mutation.
func (m *PatchMutation) ChangesetID() (r string, exists bool) {
	v := m.changeset
	if v == nil {
		return
	}
	return *v, true
}

// OldChangesetID returns the old "changeset_id" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldChangesetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangesetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangesetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangesetID: %w", err)
	}
	return oldValue.ChangesetID, nil
}

// ResetChangesetID resets all changes to the "changeset_id" field.
func (m *PatchMutation) ResetChangesetID() {
	m.changeset = nil
}

// SetOperation sets the "operation" field.
func (m *PatchMutation) SetOperation(pa patch.Operation) {
	m.operation = &pa
}

// Operation returns the value of the "operation" field in the mutation.
func (m *PatchMutation) Operation() (r patch.Operation, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldOperation(ctx context.Context) (v patch.Operation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *PatchMutation) ResetOperation() {
	m.operation = nil
}

// SetFilePath sets the "file_path" field.
func (m *PatchMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *PatchMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *PatchMutation) ResetFilePath() {
	m.file_path = nil
}

// SetBaselineSha256 sets the "baseline_sha256" field.
func (m *PatchMutation) SetBaselineSha256(s string) {
	m.baseline_sha256 = &s
}

// BaselineSha256 returns the value of the "baseline_sha256" field in the mutation.
func (m *PatchMutation) BaselineSha256() (r string, exists bool) {
	v := m.baseline_sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineSha256 returns the old "baseline_sha256" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldBaselineSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineSha256: %w", err)
	}
	return oldValue.BaselineSha256, nil
}

// ResetBaselineSha256 resets all changes to the "baseline_sha256" field.
func (m *PatchMutation) ResetBaselineSha256() {
	m.baseline_sha256 = nil
}

// SetUnifiedDiff sets the "unified_diff" field.
func (m *PatchMutation) SetUnifiedDiff(s string) {
	m.unified_diff = &s
}

// UnifiedDiff returns the value of the "unified_diff" field in the mutation.
func (m *PatchMutation) UnifiedDiff() (r string, exists bool) {
	v := m.unified_diff
	if v == nil {
		return
	}
	return *v, true
}

// OldUnifiedDiff returns the old "unified_diff" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldUnifiedDiff(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnifiedDiff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnifiedDiff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnifiedDiff: %w", err)
	}
	return oldValue.UnifiedDiff, nil
}

// ClearUnifiedDiff clears the value of the "unified_diff" field.
func (m *PatchMutation) ClearUnifiedDiff() {
	m.unified_diff = nil
	m.clearedFields[patch.FieldUnifiedDiff] = struct{}{}
}

// UnifiedDiffCleared returns if the "unified_diff" field was cleared in this mutation.
func (m *PatchMutation) UnifiedDiffCleared() bool {
	_, ok := m.clearedFields[patch.FieldUnifiedDiff]
	return ok
}

// ResetUnifiedDiff resets all changes to the "unified_diff" field.
func (m *PatchMutation) ResetUnifiedDiff() {
	m.unified_diff = nil
	delete(m.clearedFields, patch.FieldUnifiedDiff)
}

// SetNewContent sets the "new_content" field.
func (m *PatchMutation) SetNewContent(s string) {
	m.new_content = &s
}

// NewContent returns the value of the "new_content" field in the mutation.
func (m *PatchMutation) NewContent() (r string, exists bool) {
	v := m.new_content
	if v == nil {
		return
	}
	return *v, true
}

// OldNewContent returns the old "new_content" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldNewContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewContent: %w", err)
	}
	return oldValue.NewContent, nil
}

// ClearNewContent clears the value of the "new_content" field.
func (m *PatchMutation) ClearNewContent() {
	m.new_content = nil
	m.clearedFields[patch.FieldNewContent] = struct{}{}
}

// NewContentCleared returns if the "new_content" field was cleared in this mutation.
func (m *PatchMutation) NewContentCleared() bool {
	_, ok := m.clearedFields[patch.FieldNewContent]
	return ok
}

// ResetNewContent resets all changes to the "new_content" field.
func (m *PatchMutation) ResetNewContent() {
	m.new_content = nil
	delete(m.clearedFields, patch.FieldNewContent)
}

// SetApplyOrder sets the "apply_order" field.
func (m *PatchMutation) SetApplyOrder(i int) {
	m.apply_order = &i
	m.addapply_order = nil
}

// ApplyOrder returns the value of the "apply_order" field in the mutation.
func (m *PatchMutation) ApplyOrder() (r int, exists bool) {
	v := m.apply_order
	if v == nil {
		return
	}
	return *v, true
}

// OldApplyOrder returns the old "apply_order" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldApplyOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplyOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplyOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplyOrder: %w", err)
	}
	return oldValue.ApplyOrder, nil
}

// AddApplyOrder adds i to the "apply_order" field.
func (m *PatchMutation) AddApplyOrder(i int) {
	if m.addapply_order != nil {
		*m.addapply_order += i
	} else {
		m.addapply_order = &i
	}
}

// AddedApplyOrder returns the value that was added to the "apply_order" field in this mutation.
func (m *PatchMutation) AddedApplyOrder() (r int, exists bool) {
	v := m.addapply_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetApplyOrder resets all changes to the "apply_order" field.
func (m *PatchMutation) ResetApplyOrder() {
	m.apply_order = nil
	m.addapply_order = nil
}

// ClearChangeset clears the "changeset" edge to the Changeset entity.
func (m *PatchMutation) ClearChangeset() {
	m.clearedchangeset = true
	m.clearedFields[patch.FieldChangesetID] = struct{}{}
}

// ChangesetCleared reports if the "changeset" edge to the Changeset entity was cleared.
func (m *PatchMutation) ChangesetCleared() bool {
	return m.clearedchangeset
}

// ChangesetIDs returns the "changeset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChangesetID instead. It exists only for internal usage by the builders.
func (m *PatchMutation) ChangesetIDs() (ids []string) {
	if id := m.changeset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChangeset resets all changes to the "changeset" edge.
func (m *PatchMutation) ResetChangeset() {
	m.changeset = nil
	m.clearedchangeset = false
}

// Where appends a list predicates to the PatchMutation builder.
func (m *PatchMutation) Where(ps ...predicate.Patch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patch).
func (m *PatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatchMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.changeset != nil {
		fields = append(fields, patch.FieldChangesetID)
	}
	if m.operation != nil {
		fields = append(fields, patch.FieldOperation)
	}
	if m.file_path != nil {
		fields = append(fields, patch.FieldFilePath)
	}
	if m.baseline_sha256 != nil {
		fields = append(fields, patch.FieldBaselineSha256)
	}
	if m.unified_diff != nil {
		fields = append(fields, patch.FieldUnifiedDiff)
	}
	if m.new_content != nil {
		fields = append(fields, patch.FieldNewContent)
	}
	if m.apply_order != nil {
		fields = append(fields, patch.FieldApplyOrder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patch.FieldChangesetID:
		return m.ChangesetID()
	case patch.FieldOperation:
		return m.Operation()
	case patch.FieldFilePath:
		return m.FilePath()
	case patch.FieldBaselineSha256:
		return m.BaselineSha256()
	case patch.FieldUnifiedDiff:
		return m.UnifiedDiff()
	case patch.FieldNewContent:
		return m.NewContent()
	case patch.FieldApplyOrder:
		return m.ApplyOrder()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patch.FieldChangesetID:
		return m.OldChangesetID(ctx)
	case patch.FieldOperation:
		return m.OldOperation(ctx)
	case patch.FieldFilePath:
		return m.OldFilePath(ctx)
	case patch.FieldBaselineSha256:
		return m.OldBaselineSha256(ctx)
	case patch.FieldUnifiedDiff:
		return m.OldUnifiedDiff(ctx)
	case patch.FieldNewContent:
		return m.OldNewContent(ctx)
	case patch.FieldApplyOrder:
		return m.OldApplyOrder(ctx)
	}
	return nil, fmt.Errorf("unknown Patch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patch.FieldChangesetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangesetID(v)
		return nil
	case patch.FieldOperation:
		v, ok := value.(patch.Operation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case patch.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case patch.FieldBaselineSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineSha256(v)
		return nil
	case patch.FieldUnifiedDiff:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnifiedDiff(v)
		return nil
	case patch.FieldNewContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewContent(v)
		return nil
	case patch.FieldApplyOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplyOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Patch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatchMutation) AddedFields() []string {
	var fields []string
	if m.addapply_order != nil {
		fields = append(fields, patch.FieldApplyOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patch.FieldApplyOrder:
		return m.AddedApplyOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patch.FieldApplyOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddApplyOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Patch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patch.FieldUnifiedDiff) {
		fields = append(fields, patch.FieldUnifiedDiff)
	}
	if m.FieldCleared(patch.FieldNewContent) {
		fields = append(fields, patch.FieldNewContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatchMutation) ClearField(name string) error {
	switch name {
	case patch.FieldUnifiedDiff:
		m.ClearUnifiedDiff()
		return nil
	case patch.FieldNewContent:
		m.ClearNewContent()
		return nil
	}
	return fmt.Errorf("unknown Patch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatchMutation) ResetField(name string) error {
	switch name {
	case patch.FieldChangesetID:
		m.ResetChangesetID()
		return nil
	case patch.FieldOperation:
		m.ResetOperation()
		return nil
	case patch.FieldFilePath:
		m.ResetFilePath()
		return nil
	case patch.FieldBaselineSha256:
		m.ResetBaselineSha256()
		return nil
	case patch.FieldUnifiedDiff:
		m.ResetUnifiedDiff()
		return nil
	case patch.FieldNewContent:
		m.ResetNewContent()
		return nil
	case patch.FieldApplyOrder:
		m.ResetApplyOrder()
		return nil
	}
	return fmt.Errorf("unknown Patch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.changeset != nil {
		edges = append(edges, patch.EdgeChangeset)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patch.EdgeChangeset:
		if id := m.changeset; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchangeset {
		edges = append(edges, patch.EdgeChangeset)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatchMutation) EdgeCleared(name string) bool {
	switch name {
	case patch.EdgeChangeset:
		return m.clearedchangeset
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatchMutation) ClearEdge(name string) error {
	switch name {
	case patch.EdgeChangeset:
		m.ClearChangeset()
		return nil
	}
	return fmt.Errorf("unknown Patch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatchMutation) ResetEdge(name string) error {
	switch name {
	case patch.EdgeChangeset:
		m.ResetChangeset()
		return nil
	}
	return fmt.Errorf("unknown Patch edge %s", name)
}

// PolicyProfileMutation represents an operation that mutates the PolicyProfile nodes in the graph.
type PolicyProfileMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	name                       *string
	read_only_mode             *bool
	max_rows_per_query         *int
	addmax_rows_per_query      *int
	require_row_limit          *bool
	blocked_fields             *[]string
	appendblocked_fields       []string
	allowed_record_types       *[]string
	appendallowed_record_types []string
	tool_allowlist             *[]string
	appendtool_allowlist       []string
	active                     *bool
	locked                     *bool
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	tenant                     *string
	clearedtenant              bool
	done                       bool
	oldValue                   func(context.Context) (*PolicyProfile, error)
	predicates                 []predicate.PolicyProfile
}

var _ ent.Mutation = (*PolicyProfileMutation)(nil)

// policyprofileOption allows management of the mutation configuration using functional options.
type policyprofileOption func(*PolicyProfileMutation)

// newPolicyProfileMutation creates new mutation for the PolicyProfile entity.
func newPolicyProfileMutation(c config, op Op, opts ...policyprofileOption) *PolicyProfileMutation {
	m := &PolicyProfileMutation{
		config:        c,
		op:            op,
		typ:           TypePolicyProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPolicyProfileID sets the ID field of the mutation.
func withPolicyProfileID(id string) policyprofileOption {
	return func(m *PolicyProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *PolicyProfile
		)
		m.oldValue = func(ctx context.Context) (*PolicyProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PolicyProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPolicyProfile sets the old PolicyProfile of the mutation.
func withPolicyProfile(node *PolicyProfile) policyprofileOption {
	return func(m *PolicyProfileMutation) {
		m.oldValue = func(context.Context) (*PolicyProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PolicyProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PolicyProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PolicyProfile entities.
func (m *PolicyProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PolicyProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PolicyProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PolicyProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *PolicyProfileMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PolicyProfileMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PolicyProfileMutation) ResetTenantID() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *PolicyProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PolicyProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PolicyProfileMutation) ResetName() {
	m.name = nil
}

// SetReadOnlyMode sets the "read_only_mode" field.
func (m *PolicyProfileMutation) SetReadOnlyMode(b bool) {
	m.read_only_mode = &b
}

// ReadOnlyMode returns the value of the "read_only_mode" field in the mutation.
func (m *PolicyProfileMutation) ReadOnlyMode() (r bool, exists bool) {
	v := m.read_only_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldReadOnlyMode returns the old "read_only_mode" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldReadOnlyMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadOnlyMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadOnlyMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadOnlyMode: %w", err)
	}
	return oldValue.ReadOnlyMode, nil
}

// ResetReadOnlyMode resets all changes to the "read_only_mode" field.
func (m *PolicyProfileMutation) ResetReadOnlyMode() {
	m.read_only_mode = nil
}

// SetMaxRowsPerQuery sets the "max_rows_per_query" field.
func (m *PolicyProfileMutation) SetMaxRowsPerQuery(i int) {
	m.max_rows_per_query = &i
	m.addmax_rows_per_query = nil
}

// MaxRowsPerQuery returns the value of the "max_rows_per_query" field in the mutation.
func (m *PolicyProfileMutation) MaxRowsPerQuery() (r int, exists bool) {
	v := m.max_rows_per_query
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRowsPerQuery returns the old "max_rows_per_query" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldMaxRowsPerQuery(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRowsPerQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRowsPerQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRowsPerQuery: %w", err)
	}
	return oldValue.MaxRowsPerQuery, nil
}

// AddMaxRowsPerQuery adds i to the "max_rows_per_query" field.
func (m *PolicyProfileMutation) AddMaxRowsPerQuery(i int) {
	if m.addmax_rows_per_query != nil {
		*m.addmax_rows_per_query += i
	} else {
		m.addmax_rows_per_query = &i
	}
}

// AddedMaxRowsPerQuery returns the value that was added to the "max_rows_per_query" field in this mutation.
func (m *PolicyProfileMutation) AddedMaxRowsPerQuery() (r int, exists bool) {
	v := m.addmax_rows_per_query
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRowsPerQuery resets all changes to the "max_rows_per_query" field.
func (m *PolicyProfileMutation) ResetMaxRowsPerQuery() {
	m.max_rows_per_query = nil
	m.addmax_rows_per_query = nil
}

// SetRequireRowLimit sets the "require_row_limit" field.
func (m *PolicyProfileMutation) SetRequireRowLimit(b bool) {
	m.require_row_limit = &b
}

// RequireRowLimit returns the value of the "require_row_limit" field in the mutation.
func (m *PolicyProfileMutation) RequireRowLimit() (r bool, exists bool) {
	v := m.require_row_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldRequireRowLimit returns the old "require_row_limit" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldRequireRowLimit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequireRowLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequireRowLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequireRowLimit: %w", err)
	}
	return oldValue.RequireRowLimit, nil
}

// ResetRequireRowLimit resets all changes to the "require_row_limit" field.
func (m *PolicyProfileMutation) ResetRequireRowLimit() {
	m.require_row_limit = nil
}

// SetBlockedFields sets the "blocked_fields" field.
func (m *PolicyProfileMutation) SetBlockedFields(s []string) {
	m.blocked_fields = &s
	m.appendblocked_fields = nil
}

// BlockedFields returns the value of the "blocked_fields" field in the mutation.
func (m *PolicyProfileMutation) BlockedFields() (r []string, exists bool) {
	v := m.blocked_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedFields returns the old "blocked_fields" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldBlockedFields(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedFields: %w", err)
	}
	return oldValue.BlockedFields, nil
}

// AppendBlockedFields adds s to the "blocked_fields" field.
func (m *PolicyProfileMutation) AppendBlockedFields(s []string) {
	m.appendblocked_fields = append(m.appendblocked_fields, s...)
}

// AppendedBlockedFields returns the list of values that were appended to the "blocked_fields" field in this mutation.
func (m *PolicyProfileMutation) AppendedBlockedFields() ([]string, bool) {
	if len(m.appendblocked_fields) == 0 {
		return nil, false
	}
	return m.appendblocked_fields, true
}

// ClearBlockedFields clears the value of the "blocked_fields" field.
func (m *PolicyProfileMutation) ClearBlockedFields() {
	m.blocked_fields = nil
	m.appendblocked_fields = nil
	m.clearedFields[policyprofile.FieldBlockedFields] = struct{}{}
}

// BlockedFieldsCleared returns if the "blocked_fields" field was cleared in this mutation.
func (m *PolicyProfileMutation) BlockedFieldsCleared() bool {
	_, ok := m.clearedFields[policyprofile.FieldBlockedFields]
	return ok
}

// ResetBlockedFields resets all changes to the "blocked_fields" field.
func (m *PolicyProfileMutation) ResetBlockedFields() {
	m.blocked_fields = nil
	m.appendblocked_fields = nil
	delete(m.clearedFields, policyprofile.FieldBlockedFields)
}

// SetAllowedRecordTypes sets the "allowed_record_types" field.
func (m *PolicyProfileMutation) SetAllowedRecordTypes(s []string) {
	m.allowed_record_types = &s
	m.appendallowed_record_types = nil
}

// AllowedRecordTypes returns the value of the "allowed_record_types" field in the mutation.
func (m *PolicyProfileMutation) AllowedRecordTypes() (r []string, exists bool) {
	v := m.allowed_record_types
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedRecordTypes returns the old "allowed_record_types" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldAllowedRecordTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedRecordTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedRecordTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedRecordTypes: %w", err)
	}
	return oldValue.AllowedRecordTypes, nil
}

// AppendAllowedRecordTypes adds s to the "allowed_record_types" field.
func (m *PolicyProfileMutation) AppendAllowedRecordTypes(s []string) {
	m.appendallowed_record_types = append(m.appendallowed_record_types, s...)
}

// AppendedAllowedRecordTypes returns the list of values that were appended to the "allowed_record_types" field in this mutation.
func (m *PolicyProfileMutation) AppendedAllowedRecordTypes() ([]string, bool) {
	if len(m.appendallowed_record_types) == 0 {
		return nil, false
	}
	return m.appendallowed_record_types, true
}

// ClearAllowedRecordTypes clears the value of the "allowed_record_types" field.
func (m *PolicyProfileMutation) ClearAllowedRecordTypes() {
	m.allowed_record_types = nil
	m.appendallowed_record_types = nil
	m.clearedFields[policyprofile.FieldAllowedRecordTypes] = struct{}{}
}

// AllowedRecordTypesCleared returns if the "allowed_record_types" field was cleared in this mutation.
func (m *PolicyProfileMutation) AllowedRecordTypesCleared() bool {
	_, ok := m.clearedFields[policyprofile.FieldAllowedRecordTypes]
	return ok
}

// ResetAllowedRecordTypes resets all changes to the "allowed_record_types" field.
func (m *PolicyProfileMutation) ResetAllowedRecordTypes() {
	m.allowed_record_types = nil
	m.appendallowed_record_types = nil
	delete(m.clearedFields, policyprofile.FieldAllowedRecordTypes)
}

// SetToolAllowlist sets the "tool_allowlist" field.
func (m *PolicyProfileMutation) SetToolAllowlist(s []string) {
	m.tool_allowlist = &s
	m.appendtool_allowlist = nil
}

// ToolAllowlist returns the value of the "tool_allowlist" field in the mutation.
func (m *PolicyProfileMutation) ToolAllowlist() (r []string, exists bool) {
	v := m.tool_allowlist
	if v == nil {
		return
	}
	return *v, true
}

// OldToolAllowlist returns the old "tool_allowlist" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldToolAllowlist(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolAllowlist is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolAllowlist requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolAllowlist: %w", err)
	}
	return oldValue.ToolAllowlist, nil
}

// AppendToolAllowlist adds s to the "tool_allowlist" field.
func (m *PolicyProfileMutation) AppendToolAllowlist(s []string) {
	m.appendtool_allowlist = append(m.appendtool_allowlist, s...)
}

// AppendedToolAllowlist returns the list of values that were appended to the "tool_allowlist" field in this mutation.
func (m *PolicyProfileMutation) AppendedToolAllowlist() ([]string, bool) {
	if len(m.appendtool_allowlist) == 0 {
		return nil, false
	}
	return m.appendtool_allowlist, true
}

// ClearToolAllowlist clears the value of the "tool_allowlist" field.
func (m *PolicyProfileMutation) ClearToolAllowlist() {
	m.tool_allowlist = nil
	m.appendtool_allowlist = nil
	m.clearedFields[policyprofile.FieldToolAllowlist] = struct{}{}
}

// ToolAllowlistCleared returns if the "tool_allowlist" field was cleared in this mutation.
func (m *PolicyProfileMutation) ToolAllowlistCleared() bool {
	_, ok := m.clearedFields[policyprofile.FieldToolAllowlist]
	return ok
}

// ResetToolAllowlist resets all changes to the "tool_allowlist" field.
func (m *PolicyProfileMutation) ResetToolAllowlist() {
	m.tool_allowlist = nil
	m.appendtool_allowlist = nil
	delete(m.clearedFields, policyprofile.FieldToolAllowlist)
}

// SetActive sets the "active" field.
func (m *PolicyProfileMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *PolicyProfileMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *PolicyProfileMutation) ResetActive() {
	m.active = nil
}

// SetLocked sets the "locked" field.
func (m *PolicyProfileMutation) SetLocked(b bool) {
	m.locked = &b
}

// Locked returns the value of the "locked" field in the mutation.
func (m *PolicyProfileMutation) Locked() (r bool, exists bool) {
	v := m.locked
	if v == nil {
		return
	}
	return *v, true
}

// OldLocked returns the old "locked" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldLocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocked: %w", err)
	}
	return oldValue.Locked, nil
}

// ResetLocked resets all changes to the "locked" field.
func (m *PolicyProfileMutation) ResetLocked() {
	m.locked = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PolicyProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PolicyProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PolicyProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PolicyProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PolicyProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PolicyProfile entity.
// If the PolicyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PolicyProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *PolicyProfileMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[policyprofile.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *PolicyProfileMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *PolicyProfileMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *PolicyProfileMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the PolicyProfileMutation builder.
func (m *PolicyProfileMutation) Where(ps ...predicate.PolicyProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PolicyProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PolicyProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PolicyProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PolicyProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PolicyProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PolicyProfile).
func (m *PolicyProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PolicyProfileMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tenant != nil {
		fields = append(fields, policyprofile.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, policyprofile.FieldName)
	}
	if m.read_only_mode != nil {
		fields = append(fields, policyprofile.FieldReadOnlyMode)
	}
	if m.max_rows_per_query != nil {
		fields = append(fields, policyprofile.FieldMaxRowsPerQuery)
	}
	if m.require_row_limit != nil {
		fields = append(fields, policyprofile.FieldRequireRowLimit)
	}
	if m.blocked_fields != nil {
		fields = append(fields, policyprofile.FieldBlockedFields)
	}
	if m.allowed_record_types != nil {
		fields = append(fields, policyprofile.FieldAllowedRecordTypes)
	}
	if m.tool_allowlist != nil {
		fields = append(fields, policyprofile.FieldToolAllowlist)
	}
	if m.active != nil {
		fields = append(fields, policyprofile.FieldActive)
	}
	if m.locked != nil {
		fields = append(fields, policyprofile.FieldLocked)
	}
	if m.created_at != nil {
		fields = append(fields, policyprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, policyprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PolicyProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case policyprofile.FieldTenantID:
		return m.TenantID()
	case policyprofile.FieldName:
		return m.Name()
	case policyprofile.FieldReadOnlyMode:
		return m.ReadOnlyMode()
	case policyprofile.FieldMaxRowsPerQuery:
		return m.MaxRowsPerQuery()
	case policyprofile.FieldRequireRowLimit:
		return m.RequireRowLimit()
	case policyprofile.FieldBlockedFields:
		return m.BlockedFields()
	case policyprofile.FieldAllowedRecordTypes:
		return m.AllowedRecordTypes()
	case policyprofile.FieldToolAllowlist:
		return m.ToolAllowlist()
	case policyprofile.FieldActive:
		return m.Active()
	case policyprofile.FieldLocked:
		return m.Locked()
	case policyprofile.FieldCreatedAt:
		return m.CreatedAt()
	case policyprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PolicyProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case policyprofile.FieldTenantID:
		return m.OldTenantID(ctx)
	case policyprofile.FieldName:
		return m.OldName(ctx)
	case policyprofile.FieldReadOnlyMode:
		return m.OldReadOnlyMode(ctx)
	case policyprofile.FieldMaxRowsPerQuery:
		return m.OldMaxRowsPerQuery(ctx)
	case policyprofile.FieldRequireRowLimit:
		return m.OldRequireRowLimit(ctx)
	case policyprofile.FieldBlockedFields:
		return m.OldBlockedFields(ctx)
	case policyprofile.FieldAllowedRecordTypes:
		return m.OldAllowedRecordTypes(ctx)
	case policyprofile.FieldToolAllowlist:
		return m.OldToolAllowlist(ctx)
	case policyprofile.FieldActive:
		return m.OldActive(ctx)
	case policyprofile.FieldLocked:
		return m.OldLocked(ctx)
	case policyprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case policyprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PolicyProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicyProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case policyprofile.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case policyprofile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case policyprofile.FieldReadOnlyMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadOnlyMode(v)
		return nil
	case policyprofile.FieldMaxRowsPerQuery:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRowsPerQuery(v)
		return nil
	case policyprofile.FieldRequireRowLimit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequireRowLimit(v)
		return nil
	case policyprofile.FieldBlockedFields:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedFields(v)
		return nil
	case policyprofile.FieldAllowedRecordTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedRecordTypes(v)
		return nil
	case policyprofile.FieldToolAllowlist:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolAllowlist(v)
		return nil
	case policyprofile.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case policyprofile.FieldLocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocked(v)
		return nil
	case policyprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case policyprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PolicyProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PolicyProfileMutation) AddedFields() []string {
	var fields []string
	if m.addmax_rows_per_query != nil {
		fields = append(fields, policyprofile.FieldMaxRowsPerQuery)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PolicyProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case policyprofile.FieldMaxRowsPerQuery:
		return m.AddedMaxRowsPerQuery()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicyProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case policyprofile.FieldMaxRowsPerQuery:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRowsPerQuery(v)
		return nil
	}
	return fmt.Errorf("unknown PolicyProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PolicyProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(policyprofile.FieldBlockedFields) {
		fields = append(fields, policyprofile.FieldBlockedFields)
	}
	if m.FieldCleared(policyprofile.FieldAllowedRecordTypes) {
		fields = append(fields, policyprofile.FieldAllowedRecordTypes)
	}
	if m.FieldCleared(policyprofile.FieldToolAllowlist) {
		fields = append(fields, policyprofile.FieldToolAllowlist)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PolicyProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PolicyProfileMutation) ClearField(name string) error {
	switch name {
	case policyprofile.FieldBlockedFields:
		m.ClearBlockedFields()
		return nil
	case policyprofile.FieldAllowedRecordTypes:
		m.ClearAllowedRecordTypes()
		return nil
	case policyprofile.FieldToolAllowlist:
		m.ClearToolAllowlist()
		return nil
	}
	return fmt.Errorf("unknown PolicyProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PolicyProfileMutation) ResetField(name string) error {
	switch name {
	case policyprofile.FieldTenantID:
		m.ResetTenantID()
		return nil
	case policyprofile.FieldName:
		m.ResetName()
		return nil
	case policyprofile.FieldReadOnlyMode:
		m.ResetReadOnlyMode()
		return nil
	case policyprofile.FieldMaxRowsPerQuery:
		m.ResetMaxRowsPerQuery()
		return nil
	case policyprofile.FieldRequireRowLimit:
		m.ResetRequireRowLimit()
		return nil
	case policyprofile.FieldBlockedFields:
		m.ResetBlockedFields()
		return nil
	case policyprofile.FieldAllowedRecordTypes:
		m.ResetAllowedRecordTypes()
		return nil
	case policyprofile.FieldToolAllowlist:
		m.ResetToolAllowlist()
		return nil
	case policyprofile.FieldActive:
		m.ResetActive()
		return nil
	case policyprofile.FieldLocked:
		m.ResetLocked()
		return nil
	case policyprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case policyprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PolicyProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PolicyProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, policyprofile.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PolicyProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case policyprofile.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PolicyProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PolicyProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PolicyProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, policyprofile.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PolicyProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case policyprofile.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PolicyProfileMutation) ClearEdge(name string) error {
	switch name {
	case policyprofile.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown PolicyProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PolicyProfileMutation) ResetEdge(name string) error {
	switch name {
	case policyprofile.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown PolicyProfile edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	tenant_id                  *string
	changeset_id               *string
	run_type                   *run.RunType
	status                     *run.Status
	exit_code                  *int
	addexit_code               *int
	error_category             *string
	error_message              *string
	materialized_file_count    *int
	addmaterialized_file_count *int
	correlation_id             *string
	triggered_by               *string
	created_at                 *time.Time
	started_at                 *time.Time
	completed_at               *time.Time
	duration_ms                *int
	addduration_ms             *int
	clearedFields              map[string]struct{}
	workspace                  *string
	clearedworkspace           bool
	artifacts                  map[string]struct{}
	removedartifacts           map[string]struct{}
	clearedartifacts           bool
	done                       bool
	oldValue                   func(context.Context) (*Run, error)
	predicates                 []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RunMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RunMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RunMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *RunMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *RunMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *RunMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetChangesetID sets the "changeset_id" field.
func (m *RunMutation) SetChangesetID(s string) {
	m.changeset_id = &s
}

// ChangesetID returns the value of the "changeset_id" field in the mutation.
func (m *RunMutation) ChangesetID() (r string, exists bool) {
	v := m.changeset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChangesetID returns the old "changeset_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldChangesetID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangesetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangesetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangesetID: %w", err)
	}
	return oldValue.ChangesetID, nil
}

// ClearChangesetID clears the value of the "changeset_id" field.
func (m *RunMutation) ClearChangesetID() {
	m.changeset_id = nil
	m.clearedFields[run.FieldChangesetID] = struct{}{}
}

// ChangesetIDCleared returns if the "changeset_id" field was cleared in this mutation.
func (m *RunMutation) ChangesetIDCleared() bool {
	_, ok := m.clearedFields[run.FieldChangesetID]
	return ok
}

// ResetChangesetID resets all changes to the "changeset_id" field.
func (m *RunMutation) ResetChangesetID() {
	m.changeset_id = nil
	delete(m.clearedFields, run.FieldChangesetID)
}

// SetRunType sets the "run_type" field.
func (m *RunMutation) SetRunType(rt run.RunType) {
	m.run_type = &rt
}

// RunType returns the value of the "run_type" field in the mutation.
func (m *RunMutation) RunType() (r run.RunType, exists bool) {
	v := m.run_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRunType returns the old "run_type" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRunType(ctx context.Context) (v run.RunType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunType: %w", err)
	}
	return oldValue.RunType, nil
}

// ResetRunType resets all changes to the "run_type" field.
func (m *RunMutation) ResetRunType() {
	m.run_type = nil
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
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
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetExitCode sets the "exit_code" field.
func (m *RunMutation) SetExitCode(i int) {
	m.exit_code = &i
	m.addexit_code = nil
}

// ExitCode returns the value of the "exit_code" field in the mutation.
func (m *RunMutation) ExitCode() (r int, exists bool) {
	v := m.exit_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExitCode returns the old "exit_code" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldExitCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitCode: %w", err)
	}
	return oldValue.ExitCode, nil
}

// AddExitCode adds i to the "exit_code" field.
func (m *RunMutation) AddExitCode(i int) {
	if m.addexit_code != nil {
		*m.addexit_code += i
	} else {
		m.addexit_code = &i
	}
}

// AddedExitCode returns the value that was added to the "exit_code" field in this mutation.
func (m *RunMutation) AddedExitCode() (r int, exists bool) {
	v := m.addexit_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearExitCode clears the value of the "exit_code" field.
func (m *RunMutation) ClearExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
	m.clearedFields[run.FieldExitCode] = struct{}{}
}

// ExitCodeCleared returns if the "exit_code" field was cleared in this mutation.
func (m *RunMutation) ExitCodeCleared() bool {
	_, ok := m.clearedFields[run.FieldExitCode]
	return ok
}

// ResetExitCode resets all changes to the "exit_code" field.
func (m *RunMutation) ResetExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
	delete(m.clearedFields, run.FieldExitCode)
}

// SetErrorCategory sets the "error_category" field.
func (m *RunMutation) SetErrorCategory(s string) {
	m.error_category = &s
}

// ErrorCategory returns the value of the "error_category" field in the mutation.
func (m *RunMutation) ErrorCategory() (r string, exists bool) {
	v := m.error_category
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCategory returns the old "error_category" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCategory: %w", err)
	}
	return oldValue.ErrorCategory, nil
}

// ClearErrorCategory clears the value of the "error_category" field.
func (m *RunMutation) ClearErrorCategory() {
	m.error_category = nil
	m.clearedFields[run.FieldErrorCategory] = struct{}{}
}

// ErrorCategoryCleared returns if the "error_category" field was cleared in this mutation.
func (m *RunMutation) ErrorCategoryCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorCategory]
	return ok
}

// ResetErrorCategory resets all changes to the "error_category" field.
func (m *RunMutation) ResetErrorCategory() {
	m.error_category = nil
	delete(m.clearedFields, run.FieldErrorCategory)
}

// SetErrorMessage sets the "error_message" field.
func (m *RunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[run.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, run.FieldErrorMessage)
}

// SetMaterializedFileCount sets the "materialized_file_count" field.
func (m *RunMutation) SetMaterializedFileCount(i int) {
	m.materialized_file_count = &i
	m.addmaterialized_file_count = nil
}

// MaterializedFileCount returns the value of the "materialized_file_count" field in the mutation.
func (m *RunMutation) MaterializedFileCount() (r int, exists bool) {
	v := m.materialized_file_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterializedFileCount returns the old "materialized_file_count" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldMaterializedFileCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterializedFileCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterializedFileCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterializedFileCount: %w", err)
	}
	return oldValue.MaterializedFileCount, nil
}

// AddMaterializedFileCount adds i to the "materialized_file_count" field.
func (m *RunMutation) AddMaterializedFileCount(i int) {
	if m.addmaterialized_file_count != nil {
		*m.addmaterialized_file_count += i
	} else {
		m.addmaterialized_file_count = &i
	}
}

// AddedMaterializedFileCount returns the value that was added to the "materialized_file_count" field in this mutation.
func (m *RunMutation) AddedMaterializedFileCount() (r int, exists bool) {
	v := m.addmaterialized_file_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaterializedFileCount clears the value of the "materialized_file_count" field.
func (m *RunMutation) ClearMaterializedFileCount() {
	m.materialized_file_count = nil
	m.addmaterialized_file_count = nil
	m.clearedFields[run.FieldMaterializedFileCount] = struct{}{}
}

// MaterializedFileCountCleared returns if the "materialized_file_count" field was cleared in this mutation.
func (m *RunMutation) MaterializedFileCountCleared() bool {
	_, ok := m.clearedFields[run.FieldMaterializedFileCount]
	return ok
}

// ResetMaterializedFileCount resets all changes to the "materialized_file_count" field.
func (m *RunMutation) ResetMaterializedFileCount() {
	m.materialized_file_count = nil
	m.addmaterialized_file_count = nil
	delete(m.clearedFields, run.FieldMaterializedFileCount)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *RunMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *RunMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *RunMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *RunMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *RunMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTriggeredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *RunMutation) ResetTriggeredBy() {
	m.triggered_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *RunMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *RunMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *RunMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *RunMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *RunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[run.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *RunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[run.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *RunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, run.FieldDurationMs)
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *RunMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[run.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *RunMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *RunMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *RunMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by ids.
func (m *RunMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the Artifact entity.
func (m *RunMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the Artifact entity was cleared.
func (m *RunMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the Artifact entity by IDs.
func (m *RunMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the Artifact entity.
func (m *RunMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *RunMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *RunMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.tenant_id != nil {
		fields = append(fields, run.FieldTenantID)
	}
	if m.workspace != nil {
		fields = append(fields, run.FieldWorkspaceID)
	}
	if m.changeset_id != nil {
		fields = append(fields, run.FieldChangesetID)
	}
	if m.run_type != nil {
		fields = append(fields, run.FieldRunType)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.exit_code != nil {
		fields = append(fields, run.FieldExitCode)
	}
	if m.error_category != nil {
		fields = append(fields, run.FieldErrorCategory)
	}
	if m.error_message != nil {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.materialized_file_count != nil {
		fields = append(fields, run.FieldMaterializedFileCount)
	}
	if m.correlation_id != nil {
		fields = append(fields, run.FieldCorrelationID)
	}
	if m.triggered_by != nil {
		fields = append(fields, run.FieldTriggeredBy)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, run.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldTenantID:
		return m.TenantID()
	case run.FieldWorkspaceID:
		return m.WorkspaceID()
	case run.FieldChangesetID:
		return m.ChangesetID()
	case run.FieldRunType:
		return m.RunType()
	case run.FieldStatus:
		return m.Status()
	case run.FieldExitCode:
		return m.ExitCode()
	case run.FieldErrorCategory:
		return m.ErrorCategory()
	case run.FieldErrorMessage:
		return m.ErrorMessage()
	case run.FieldMaterializedFileCount:
		return m.MaterializedFileCount()
	case run.FieldCorrelationID:
		return m.CorrelationID()
	case run.FieldTriggeredBy:
		return m.TriggeredBy()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	case run.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldTenantID:
		return m.OldTenantID(ctx)
	case run.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case run.FieldChangesetID:
		return m.OldChangesetID(ctx)
	case run.FieldRunType:
		return m.OldRunType(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldExitCode:
		return m.OldExitCode(ctx)
	case run.FieldErrorCategory:
		return m.OldErrorCategory(ctx)
	case run.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case run.FieldMaterializedFileCount:
		return m.OldMaterializedFileCount(ctx)
	case run.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case run.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case run.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case run.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case run.FieldChangesetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangesetID(v)
		return nil
	case run.FieldRunType:
		v, ok := value.(run.RunType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunType(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitCode(v)
		return nil
	case run.FieldErrorCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCategory(v)
		return nil
	case run.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case run.FieldMaterializedFileCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterializedFileCount(v)
		return nil
	case run.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case run.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case run.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addexit_code != nil {
		fields = append(fields, run.FieldExitCode)
	}
	if m.addmaterialized_file_count != nil {
		fields = append(fields, run.FieldMaterializedFileCount)
	}
	if m.addduration_ms != nil {
		fields = append(fields, run.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldExitCode:
		return m.AddedExitCode()
	case run.FieldMaterializedFileCount:
		return m.AddedMaterializedFileCount()
	case run.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExitCode(v)
		return nil
	case run.FieldMaterializedFileCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaterializedFileCount(v)
		return nil
	case run.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldChangesetID) {
		fields = append(fields, run.FieldChangesetID)
	}
	if m.FieldCleared(run.FieldExitCode) {
		fields = append(fields, run.FieldExitCode)
	}
	if m.FieldCleared(run.FieldErrorCategory) {
		fields = append(fields, run.FieldErrorCategory)
	}
	if m.FieldCleared(run.FieldErrorMessage) {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.FieldCleared(run.FieldMaterializedFileCount) {
		fields = append(fields, run.FieldMaterializedFileCount)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.FieldCleared(run.FieldDurationMs) {
		fields = append(fields, run.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldChangesetID:
		m.ClearChangesetID()
		return nil
	case run.FieldExitCode:
		m.ClearExitCode()
		return nil
	case run.FieldErrorCategory:
		m.ClearErrorCategory()
		return nil
	case run.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case run.FieldMaterializedFileCount:
		m.ClearMaterializedFileCount()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case run.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldTenantID:
		m.ResetTenantID()
		return nil
	case run.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case run.FieldChangesetID:
		m.ResetChangesetID()
		return nil
	case run.FieldRunType:
		m.ResetRunType()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldExitCode:
		m.ResetExitCode()
		return nil
	case run.FieldErrorCategory:
		m.ResetErrorCategory()
		return nil
	case run.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case run.FieldMaterializedFileCount:
		m.ResetMaterializedFileCount()
		return nil
	case run.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case run.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case run.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.workspace != nil {
		edges = append(edges, run.EdgeWorkspace)
	}
	if m.artifacts != nil {
		edges = append(edges, run.EdgeArtifacts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedartifacts != nil {
		edges = append(edges, run.EdgeArtifacts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedworkspace {
		edges = append(edges, run.EdgeWorkspace)
	}
	if m.clearedartifacts {
		edges = append(edges, run.EdgeArtifacts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeWorkspace:
		return m.clearedworkspace
	case run.EdgeArtifacts:
		return m.clearedartifacts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	case run.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case run.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	status                 *tenant.Status
	created_at             *time.Time
	clearedFields          map[string]struct{}
	workspaces             map[string]struct{}
	removedworkspaces      map[string]struct{}
	clearedworkspaces      bool
	policy_profiles        map[string]struct{}
	removedpolicy_profiles map[string]struct{}
	clearedpolicy_profiles bool
	entity_mappings        map[string]struct{}
	removedentity_mappings map[string]struct{}
	clearedentity_mappings bool
	done                   bool
	oldValue               func(context.Context) (*Tenant, error)
	predicates             []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id string) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *TenantMutation) SetStatus(t tenant.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TenantMutation) Status() (r tenant.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldStatus(ctx context.Context) (v tenant.Status, err error) {
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
func (m *TenantMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddWorkspaceIDs adds the "workspaces" edge to the Workspace entity by ids.
func (m *TenantMutation) AddWorkspaceIDs(ids ...string) {
	if m.workspaces == nil {
		m.workspaces = make(map[string]struct{})
	}
	for i := range ids {
		m.workspaces[ids[i]] = struct{}{}
	}
}

// ClearWorkspaces clears the "workspaces" edge to the Workspace entity.
func (m *TenantMutation) ClearWorkspaces() {
	m.clearedworkspaces = true
}

// WorkspacesCleared reports if the "workspaces" edge to the Workspace entity was cleared.
func (m *TenantMutation) WorkspacesCleared() bool {
	return m.clearedworkspaces
}

// RemoveWorkspaceIDs removes the "workspaces" edge to the Workspace entity by IDs.
func (m *TenantMutation) RemoveWorkspaceIDs(ids ...string) {
	if m.removedworkspaces == nil {
		m.removedworkspaces = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.workspaces, ids[i])
		m.removedworkspaces[ids[i]] = struct{}{}
	}
}

// RemovedWorkspaces returns the removed IDs of the "workspaces" edge to the Workspace entity.
func (m *TenantMutation) RemovedWorkspacesIDs() (ids []string) {
	for id := range m.removedworkspaces {
		ids = append(ids, id)
	}
	return
}

// WorkspacesIDs returns the "workspaces" edge IDs in the mutation.
func (m *TenantMutation) WorkspacesIDs() (ids []string) {
	for id := range m.workspaces {
		ids = append(ids, id)
	}
	return
}

// ResetWorkspaces resets all changes to the "workspaces" edge.
func (m *TenantMutation) ResetWorkspaces() {
	m.workspaces = nil
	m.clearedworkspaces = false
	m.removedworkspaces = nil
}

// AddPolicyProfileIDs adds the "policy_profiles" edge to the PolicyProfile entity by ids.
func (m *TenantMutation) AddPolicyProfileIDs(ids ...string) {
	if m.policy_profiles == nil {
		m.policy_profiles = make(map[string]struct{})
	}
	for i := range ids {
		m.policy_profiles[ids[i]] = struct{}{}
	}
}

// ClearPolicyProfiles clears the "policy_profiles" edge to the PolicyProfile entity.
func (m *TenantMutation) ClearPolicyProfiles() {
	m.clearedpolicy_profiles = true
}

// PolicyProfilesCleared reports if the "policy_profiles" edge to the PolicyProfile entity was cleared.
func (m *TenantMutation) PolicyProfilesCleared() bool {
	return m.clearedpolicy_profiles
}

// RemovePolicyProfileIDs removes the "policy_profiles" edge to the PolicyProfile entity by IDs.
func (m *TenantMutation) RemovePolicyProfileIDs(ids ...string) {
	if m.removedpolicy_profiles == nil {
		m.removedpolicy_profiles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.policy_profiles, ids[i])
		m.removedpolicy_profiles[ids[i]] = struct{}{}
	}
}

// RemovedPolicyProfiles returns the removed IDs of the "policy_profiles" edge to the PolicyProfile entity.
func (m *TenantMutation) RemovedPolicyProfilesIDs() (ids []string) {
	for id := range m.removedpolicy_profiles {
		ids = append(ids, id)
	}
	return
}

// PolicyProfilesIDs returns the "policy_profiles" edge IDs in the mutation.
func (m *TenantMutation) PolicyProfilesIDs() (ids []string) {
	for id := range m.policy_profiles {
		ids = append(ids, id)
	}
	return
}

// ResetPolicyProfiles resets all changes to the "policy_profiles" edge.
func (m *TenantMutation) ResetPolicyProfiles() {
	m.policy_profiles = nil
	m.clearedpolicy_profiles = false
	m.removedpolicy_profiles = nil
}

// AddEntityMappingIDs adds the "entity_mappings" edge to the EntityMapping entity by ids.
func (m *TenantMutation) AddEntityMappingIDs(ids ...string) {
	if m.entity_mappings == nil {
		m.entity_mappings = make(map[string]struct{})
	}
	for i := range ids {
		m.entity_mappings[ids[i]] = struct{}{}
	}
}

// ClearEntityMappings clears the "entity_mappings" edge to the EntityMapping entity.
func (m *TenantMutation) ClearEntityMappings() {
	m.clearedentity_mappings = true
}

// EntityMappingsCleared reports if the "entity_mappings" edge to the EntityMapping entity was cleared.
func (m *TenantMutation) EntityMappingsCleared() bool {
	return m.clearedentity_mappings
}

// RemoveEntityMappingIDs removes the "entity_mappings" edge to the EntityMapping entity by IDs.
func (m *TenantMutation) RemoveEntityMappingIDs(ids ...string) {
	if m.removedentity_mappings == nil {
		m.removedentity_mappings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.entity_mappings, ids[i])
		m.removedentity_mappings[ids[i]] = struct{}{}
	}
}

// RemovedEntityMappings returns the removed IDs of the "entity_mappings" edge to the EntityMapping entity.
func (m *TenantMutation) RemovedEntityMappingsIDs() (ids []string) {
	for id := range m.removedentity_mappings {
		ids = append(ids, id)
	}
	return
}

// EntityMappingsIDs returns the "entity_mappings" edge IDs in the mutation.
func (m *TenantMutation) EntityMappingsIDs() (ids []string) {
	for id := range m.entity_mappings {
		ids = append(ids, id)
	}
	return
}

// ResetEntityMappings resets all changes to the "entity_mappings" edge.
func (m *TenantMutation) ResetEntityMappings() {
	m.entity_mappings = nil
	m.clearedentity_mappings = false
	m.removedentity_mappings = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.status != nil {
		fields = append(fields, tenant.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldStatus:
		return m.Status()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldStatus:
		return m.OldStatus(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldStatus:
		v, ok := value.(tenant.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldStatus:
		m.ResetStatus()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.workspaces != nil {
		edges = append(edges, tenant.EdgeWorkspaces)
	}
	if m.policy_profiles != nil {
		edges = append(edges, tenant.EdgePolicyProfiles)
	}
	if m.entity_mappings != nil {
		edges = append(edges, tenant.EdgeEntityMappings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeWorkspaces:
		ids := make([]ent.Value, 0, len(m.workspaces))
		for id := range m.workspaces {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgePolicyProfiles:
		ids := make([]ent.Value, 0, len(m.policy_profiles))
		for id := range m.policy_profiles {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeEntityMappings:
		ids := make([]ent.Value, 0, len(m.entity_mappings))
		for id := range m.entity_mappings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedworkspaces != nil {
		edges = append(edges, tenant.EdgeWorkspaces)
	}
	if m.removedpolicy_profiles != nil {
		edges = append(edges, tenant.EdgePolicyProfiles)
	}
	if m.removedentity_mappings != nil {
		edges = append(edges, tenant.EdgeEntityMappings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeWorkspaces:
		ids := make([]ent.Value, 0, len(m.removedworkspaces))
		for id := range m.removedworkspaces {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgePolicyProfiles:
		ids := make([]ent.Value, 0, len(m.removedpolicy_profiles))
		for id := range m.removedpolicy_profiles {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeEntityMappings:
		ids := make([]ent.Value, 0, len(m.removedentity_mappings))
		for id := range m.removedentity_mappings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedworkspaces {
		edges = append(edges, tenant.EdgeWorkspaces)
	}
	if m.clearedpolicy_profiles {
		edges = append(edges, tenant.EdgePolicyProfiles)
	}
	if m.clearedentity_mappings {
		edges = append(edges, tenant.EdgeEntityMappings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	switch name {
	case tenant.EdgeWorkspaces:
		return m.clearedworkspaces
	case tenant.EdgePolicyProfiles:
		return m.clearedpolicy_profiles
	case tenant.EdgeEntityMappings:
		return m.clearedentity_mappings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	switch name {
	case tenant.EdgeWorkspaces:
		m.ResetWorkspaces()
		return nil
	case tenant.EdgePolicyProfiles:
		m.ResetPolicyProfiles()
		return nil
	case tenant.EdgeEntityMappings:
		m.ResetEntityMappings()
		return nil
	}
	return fmt.Errorf("unknown Tenant edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	tenant            *string
	clearedtenant     bool
	files             map[string]struct{}
	removedfiles      map[string]struct{}
	clearedfiles      bool
	changesets        map[string]struct{}
	removedchangesets map[string]struct{}
	clearedchangesets bool
	runs              map[string]struct{}
	removedruns       map[string]struct{}
	clearedruns       bool
	done              bool
	oldValue          func(context.Context) (*Workspace, error)
	predicates        []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id string) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workspace entities.
func (m *WorkspaceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *WorkspaceMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *WorkspaceMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *WorkspaceMutation) ResetTenantID() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *WorkspaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkspaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkspaceMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkspaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkspaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkspaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *WorkspaceMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[workspace.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *WorkspaceMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *WorkspaceMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *WorkspaceMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// AddFileIDs adds the "files" edge to the WorkspaceFile entity by ids.
func (m *WorkspaceMutation) AddFileIDs(ids ...string) {
	if m.files == nil {
		m.files = make(map[string]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the WorkspaceFile entity.
func (m *WorkspaceMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the WorkspaceFile entity was cleared.
func (m *WorkspaceMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the WorkspaceFile entity by IDs.
func (m *WorkspaceMutation) RemoveFileIDs(ids ...string) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the WorkspaceFile entity.
func (m *WorkspaceMutation) RemovedFilesIDs() (ids []string) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *WorkspaceMutation) FilesIDs() (ids []string) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *WorkspaceMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddChangesetIDs adds the "changesets" edge to the Changeset entity by ids.
func (m *WorkspaceMutation) AddChangesetIDs(ids ...string) {
	if m.changesets == nil {
		m.changesets = make(map[string]struct{})
	}
	for i := range ids {
		m.changesets[ids[i]] = struct{}{}
	}
}

// ClearChangesets clears the "changesets" edge to the Changeset entity.
func (m *WorkspaceMutation) ClearChangesets() {
	m.clearedchangesets = true
}

// ChangesetsCleared reports if the "changesets" edge to the Changeset entity was cleared.
func (m *WorkspaceMutation) ChangesetsCleared() bool {
	return m.clearedchangesets
}

// RemoveChangesetIDs removes the "changesets" edge to the Changeset entity by IDs.
func (m *WorkspaceMutation) RemoveChangesetIDs(ids ...string) {
	if m.removedchangesets == nil {
		m.removedchangesets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.changesets, ids[i])
		m.removedchangesets[ids[i]] = struct{}{}
	}
}

// RemovedChangesets returns the removed IDs of the "changesets" edge to the Changeset entity.
func (m *WorkspaceMutation) RemovedChangesetsIDs() (ids []string) {
	for id := range m.removedchangesets {
		ids = append(ids, id)
	}
	return
}

// ChangesetsIDs returns the "changesets" edge IDs in the mutation.
func (m *WorkspaceMutation) ChangesetsIDs() (ids []string) {
	for id := range m.changesets {
		ids = append(ids, id)
	}
	return
}

// ResetChangesets resets all changes to the "changesets" edge.
func (m *WorkspaceMutation) ResetChangesets() {
	m.changesets = nil
	m.clearedchangesets = false
	m.removedchangesets = nil
}

// AddRunIDs adds the "runs" edge to the Run entity by ids.
func (m *WorkspaceMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the Run entity.
func (m *WorkspaceMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the Run entity was cleared.
func (m *WorkspaceMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the Run entity by IDs.
func (m *WorkspaceMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the Run entity.
func (m *WorkspaceMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *WorkspaceMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *WorkspaceMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant != nil {
		fields = append(fields, workspace.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, workspace.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workspace.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldTenantID:
		return m.TenantID()
	case workspace.FieldName:
		return m.Name()
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	case workspace.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldTenantID:
		return m.OldTenantID(ctx)
	case workspace.FieldName:
		return m.OldName(ctx)
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workspace.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case workspace.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workspace.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldTenantID:
		m.ResetTenantID()
		return nil
	case workspace.FieldName:
		m.ResetName()
		return nil
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workspace.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.tenant != nil {
		edges = append(edges, workspace.EdgeTenant)
	}
	if m.files != nil {
		edges = append(edges, workspace.EdgeFiles)
	}
	if m.changesets != nil {
		edges = append(edges, workspace.EdgeChangesets)
	}
	if m.runs != nil {
		edges = append(edges, workspace.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case workspace.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeChangesets:
		ids := make([]ent.Value, 0, len(m.changesets))
		for id := range m.changesets {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedfiles != nil {
		edges = append(edges, workspace.EdgeFiles)
	}
	if m.removedchangesets != nil {
		edges = append(edges, workspace.EdgeChangesets)
	}
	if m.removedruns != nil {
		edges = append(edges, workspace.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeChangesets:
		ids := make([]ent.Value, 0, len(m.removedchangesets))
		for id := range m.removedchangesets {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtenant {
		edges = append(edges, workspace.EdgeTenant)
	}
	if m.clearedfiles {
		edges = append(edges, workspace.EdgeFiles)
	}
	if m.clearedchangesets {
		edges = append(edges, workspace.EdgeChangesets)
	}
	if m.clearedruns {
		edges = append(edges, workspace.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	switch name {
	case workspace.EdgeTenant:
		return m.clearedtenant
	case workspace.EdgeFiles:
		return m.clearedfiles
	case workspace.EdgeChangesets:
		return m.clearedchangesets
	case workspace.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	switch name {
	case workspace.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	switch name {
	case workspace.EdgeTenant:
		m.ResetTenant()
		return nil
	case workspace.EdgeFiles:
		m.ResetFiles()
		return nil
	case workspace.EdgeChangesets:
		m.ResetChangesets()
		return nil
	case workspace.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Workspace edge %s", name)
}

// WorkspaceFileMutation represents an operation that mutates the WorkspaceFile nodes in the graph.
type WorkspaceFileMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	_path            *string
	content          *string
	sha256           *string
	size_bytes       *int
	addsize_bytes    *int
	mime_type        *string
	is_directory     *bool
	locked_by        *string
	locked_at        *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *string
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*WorkspaceFile, error)
	predicates       []predicate.WorkspaceFile
}

var _ ent.Mutation = (*WorkspaceFileMutation)(nil)

// workspacefileOption allows management of the mutation configuration using functional options.
type workspacefileOption func(*WorkspaceFileMutation)

// newWorkspaceFileMutation creates new mutation for the WorkspaceFile entity.
func newWorkspaceFileMutation(c config, op Op, opts ...workspacefileOption) *WorkspaceFileMutation {
	m := &WorkspaceFileMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspaceFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceFileID sets the ID field of the mutation.
func withWorkspaceFileID(id string) workspacefileOption {
	return func(m *WorkspaceFileMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkspaceFile
		)
		m.oldValue = func(ctx context.Context) (*WorkspaceFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkspaceFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspaceFile sets the old WorkspaceFile of the mutation.
func withWorkspaceFile(node *WorkspaceFile) workspacefileOption {
	return func(m *WorkspaceFileMutation) {
		m.oldValue = func(context.Context) (*WorkspaceFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkspaceFile entities.
func (m *WorkspaceFileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceFileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceFileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkspaceFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *WorkspaceFileMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *WorkspaceFileMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *WorkspaceFileMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *WorkspaceFileMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *WorkspaceFileMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *WorkspaceFileMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetPath sets the "path" field.
func (m *WorkspaceFileMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *WorkspaceFileMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *WorkspaceFileMutation) ResetPath() {
	m._path = nil
}

// SetContent sets the "content" field.
func (m *WorkspaceFileMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *WorkspaceFileMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldContent(ctx context.Context) (v string, err error) {
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
func (m *WorkspaceFileMutation) ResetContent() {
	m.content = nil
}

// SetSha256 sets the "sha256" field.
func (m *WorkspaceFileMutation) SetSha256(s string) {
	m.sha256 = &s
}

// Sha256 returns the value of the "sha256" field in the mutation.
func (m *WorkspaceFileMutation) Sha256() (r string, exists bool) {
	v := m.sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldSha256 returns the old "sha256" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSha256: %w", err)
	}
	return oldValue.Sha256, nil
}

// ResetSha256 resets all changes to the "sha256" field.
func (m *WorkspaceFileMutation) ResetSha256() {
	m.sha256 = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *WorkspaceFileMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *WorkspaceFileMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *WorkspaceFileMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *WorkspaceFileMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *WorkspaceFileMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetMimeType sets the "mime_type" field.
func (m *WorkspaceFileMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *WorkspaceFileMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *WorkspaceFileMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetIsDirectory sets the "is_directory" field.
func (m *WorkspaceFileMutation) SetIsDirectory(b bool) {
	m.is_directory = &b
}

// IsDirectory returns the value of the "is_directory" field in the mutation.
func (m *WorkspaceFileMutation) IsDirectory() (r bool, exists bool) {
	v := m.is_directory
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDirectory returns the old "is_directory" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldIsDirectory(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDirectory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDirectory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDirectory: %w", err)
	}
	return oldValue.IsDirectory, nil
}

// ResetIsDirectory resets all changes to the "is_directory" field.
func (m *WorkspaceFileMutation) ResetIsDirectory() {
	m.is_directory = nil
}

// SetLockedBy sets the "locked_by" field.
func (m *WorkspaceFileMutation) SetLockedBy(s string) {
	m.locked_by = &s
}

// LockedBy returns the value of the "locked_by" field in the mutation.
func (m *WorkspaceFileMutation) LockedBy() (r string, exists bool) {
	v := m.locked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedBy returns the old "locked_by" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldLockedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedBy: %w", err)
	}
	return oldValue.LockedBy, nil
}

// ClearLockedBy clears the value of the "locked_by" field.
func (m *WorkspaceFileMutation) ClearLockedBy() {
	m.locked_by = nil
	m.clearedFields[workspacefile.FieldLockedBy] = struct{}{}
}

// LockedByCleared returns if the "locked_by" field was cleared in this mutation.
func (m *WorkspaceFileMutation) LockedByCleared() bool {
	_, ok := m.clearedFields[workspacefile.FieldLockedBy]
	return ok
}

// ResetLockedBy resets all changes to the "locked_by" field.
func (m *WorkspaceFileMutation) ResetLockedBy() {
	m.locked_by = nil
	delete(m.clearedFields, workspacefile.FieldLockedBy)
}

// SetLockedAt sets the "locked_at" field.
func (m *WorkspaceFileMutation) SetLockedAt(t time.Time) {
	m.locked_at = &t
}

// LockedAt returns the value of the "locked_at" field in the mutation.
func (m *WorkspaceFileMutation) LockedAt() (r time.Time, exists bool) {
	v := m.locked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedAt returns the old "locked_at" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldLockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedAt: %w", err)
	}
	return oldValue.LockedAt, nil
}

// ClearLockedAt clears the value of the "locked_at" field.
func (m *WorkspaceFileMutation) ClearLockedAt() {
	m.locked_at = nil
	m.clearedFields[workspacefile.FieldLockedAt] = struct{}{}
}

// LockedAtCleared returns if the "locked_at" field was cleared in this mutation.
func (m *WorkspaceFileMutation) LockedAtCleared() bool {
	_, ok := m.clearedFields[workspacefile.FieldLockedAt]
	return ok
}

// ResetLockedAt resets all changes to the "locked_at" field.
func (m *WorkspaceFileMutation) ResetLockedAt() {
	m.locked_at = nil
	delete(m.clearedFields, workspacefile.FieldLockedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceFileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceFileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkspaceFileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkspaceFileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkspaceFileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkspaceFile entity.
// If the WorkspaceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceFileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkspaceFileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *WorkspaceFileMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[workspacefile.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *WorkspaceFileMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *WorkspaceFileMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *WorkspaceFileMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the WorkspaceFileMutation builder.
func (m *WorkspaceFileMutation) Where(ps ...predicate.WorkspaceFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkspaceFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkspaceFile).
func (m *WorkspaceFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceFileMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.workspace != nil {
		fields = append(fields, workspacefile.FieldWorkspaceID)
	}
	if m.tenant_id != nil {
		fields = append(fields, workspacefile.FieldTenantID)
	}
	if m._path != nil {
		fields = append(fields, workspacefile.FieldPath)
	}
	if m.content != nil {
		fields = append(fields, workspacefile.FieldContent)
	}
	if m.sha256 != nil {
		fields = append(fields, workspacefile.FieldSha256)
	}
	if m.size_bytes != nil {
		fields = append(fields, workspacefile.FieldSizeBytes)
	}
	if m.mime_type != nil {
		fields = append(fields, workspacefile.FieldMimeType)
	}
	if m.is_directory != nil {
		fields = append(fields, workspacefile.FieldIsDirectory)
	}
	if m.locked_by != nil {
		fields = append(fields, workspacefile.FieldLockedBy)
	}
	if m.locked_at != nil {
		fields = append(fields, workspacefile.FieldLockedAt)
	}
	if m.created_at != nil {
		fields = append(fields, workspacefile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workspacefile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspacefile.FieldWorkspaceID:
		return m.WorkspaceID()
	case workspacefile.FieldTenantID:
		return m.TenantID()
	case workspacefile.FieldPath:
		return m.Path()
	case workspacefile.FieldContent:
		return m.Content()
	case workspacefile.FieldSha256:
		return m.Sha256()
	case workspacefile.FieldSizeBytes:
		return m.SizeBytes()
	case workspacefile.FieldMimeType:
		return m.MimeType()
	case workspacefile.FieldIsDirectory:
		return m.IsDirectory()
	case workspacefile.FieldLockedBy:
		return m.LockedBy()
	case workspacefile.FieldLockedAt:
		return m.LockedAt()
	case workspacefile.FieldCreatedAt:
		return m.CreatedAt()
	case workspacefile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspacefile.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case workspacefile.FieldTenantID:
		return m.OldTenantID(ctx)
	case workspacefile.FieldPath:
		return m.OldPath(ctx)
	case workspacefile.FieldContent:
		return m.OldContent(ctx)
	case workspacefile.FieldSha256:
		return m.OldSha256(ctx)
	case workspacefile.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case workspacefile.FieldMimeType:
		return m.OldMimeType(ctx)
	case workspacefile.FieldIsDirectory:
		return m.OldIsDirectory(ctx)
	case workspacefile.FieldLockedBy:
		return m.OldLockedBy(ctx)
	case workspacefile.FieldLockedAt:
		return m.OldLockedAt(ctx)
	case workspacefile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workspacefile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkspaceFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspacefile.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case workspacefile.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case workspacefile.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case workspacefile.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case workspacefile.FieldSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSha256(v)
		return nil
	case workspacefile.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case workspacefile.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case workspacefile.FieldIsDirectory:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDirectory(v)
		return nil
	case workspacefile.FieldLockedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedBy(v)
		return nil
	case workspacefile.FieldLockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedAt(v)
		return nil
	case workspacefile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workspacefile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkspaceFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceFileMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, workspacefile.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workspacefile.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workspacefile.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown WorkspaceFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workspacefile.FieldLockedBy) {
		fields = append(fields, workspacefile.FieldLockedBy)
	}
	if m.FieldCleared(workspacefile.FieldLockedAt) {
		fields = append(fields, workspacefile.FieldLockedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceFileMutation) ClearField(name string) error {
	switch name {
	case workspacefile.FieldLockedBy:
		m.ClearLockedBy()
		return nil
	case workspacefile.FieldLockedAt:
		m.ClearLockedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceFileMutation) ResetField(name string) error {
	switch name {
	case workspacefile.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case workspacefile.FieldTenantID:
		m.ResetTenantID()
		return nil
	case workspacefile.FieldPath:
		m.ResetPath()
		return nil
	case workspacefile.FieldContent:
		m.ResetContent()
		return nil
	case workspacefile.FieldSha256:
		m.ResetSha256()
		return nil
	case workspacefile.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case workspacefile.FieldMimeType:
		m.ResetMimeType()
		return nil
	case workspacefile.FieldIsDirectory:
		m.ResetIsDirectory()
		return nil
	case workspacefile.FieldLockedBy:
		m.ResetLockedBy()
		return nil
	case workspacefile.FieldLockedAt:
		m.ResetLockedAt()
		return nil
	case workspacefile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workspacefile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, workspacefile.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspacefile.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, workspacefile.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceFileMutation) EdgeCleared(name string) bool {
	switch name {
	case workspacefile.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceFileMutation) ClearEdge(name string) error {
	switch name {
	case workspacefile.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceFileMutation) ResetEdge(name string) error {
	switch name {
	case workspacefile.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceFile edge %s", name)
}
