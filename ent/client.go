// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/trilogy-group/nexus-agents/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trilogy-group/nexus-agents/ent/aggregatedentity"
	"github.com/trilogy-group/nexus-agents/ent/artifact"
	"github.com/trilogy-group/nexus-agents/ent/event"
	"github.com/trilogy-group/nexus-agents/ent/evidence"
	"github.com/trilogy-group/nexus-agents/ent/insight"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/project"
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/ent/source"
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
	"github.com/trilogy-group/nexus-agents/ent/spikypov"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AggregatedEntity is the client for interacting with the AggregatedEntity builders.
	AggregatedEntity *AggregatedEntityClient
	// Artifact is the client for interacting with the Artifact builders.
	Artifact *ArtifactClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Evidence is the client for interacting with the Evidence builders.
	Evidence *EvidenceClient
	// Insight is the client for interacting with the Insight builders.
	Insight *InsightClient
	// KnowledgeNode is the client for interacting with the KnowledgeNode builders.
	KnowledgeNode *KnowledgeNodeClient
	// KnowledgeNodeSource is the client for interacting with the KnowledgeNodeSource builders.
	KnowledgeNodeSource *KnowledgeNodeSourceClient
	// Operation is the client for interacting with the Operation builders.
	Operation *OperationClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// ReportSection is the client for interacting with the ReportSection builders.
	ReportSection *ReportSectionClient
	// ResearchTask is the client for interacting with the ResearchTask builders.
	ResearchTask *ResearchTaskClient
	// Source is the client for interacting with the Source builders.
	Source *SourceClient
	// SourceSummary is the client for interacting with the SourceSummary builders.
	SourceSummary *SourceSummaryClient
	// SpikyPOV is the client for interacting with the SpikyPOV builders.
	SpikyPOV *SpikyPOVClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AggregatedEntity = NewAggregatedEntityClient(c.config)
	c.Artifact = NewArtifactClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Evidence = NewEvidenceClient(c.config)
	c.Insight = NewInsightClient(c.config)
	c.KnowledgeNode = NewKnowledgeNodeClient(c.config)
	c.KnowledgeNodeSource = NewKnowledgeNodeSourceClient(c.config)
	c.Operation = NewOperationClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.ReportSection = NewReportSectionClient(c.config)
	c.ResearchTask = NewResearchTaskClient(c.config)
	c.Source = NewSourceClient(c.config)
	c.SourceSummary = NewSourceSummaryClient(c.config)
	c.SpikyPOV = NewSpikyPOVClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		AggregatedEntity:    NewAggregatedEntityClient(cfg),
		Artifact:            NewArtifactClient(cfg),
		Event:               NewEventClient(cfg),
		Evidence:            NewEvidenceClient(cfg),
		Insight:             NewInsightClient(cfg),
		KnowledgeNode:       NewKnowledgeNodeClient(cfg),
		KnowledgeNodeSource: NewKnowledgeNodeSourceClient(cfg),
		Operation:           NewOperationClient(cfg),
		Project:             NewProjectClient(cfg),
		ReportSection:       NewReportSectionClient(cfg),
		ResearchTask:        NewResearchTaskClient(cfg),
		Source:              NewSourceClient(cfg),
		SourceSummary:       NewSourceSummaryClient(cfg),
		SpikyPOV:            NewSpikyPOVClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		AggregatedEntity:    NewAggregatedEntityClient(cfg),
		Artifact:            NewArtifactClient(cfg),
		Event:               NewEventClient(cfg),
		Evidence:            NewEvidenceClient(cfg),
		Insight:             NewInsightClient(cfg),
		KnowledgeNode:       NewKnowledgeNodeClient(cfg),
		KnowledgeNodeSource: NewKnowledgeNodeSourceClient(cfg),
		Operation:           NewOperationClient(cfg),
		Project:             NewProjectClient(cfg),
		ReportSection:       NewReportSectionClient(cfg),
		ResearchTask:        NewResearchTaskClient(cfg),
		Source:              NewSourceClient(cfg),
		SourceSummary:       NewSourceSummaryClient(cfg),
		SpikyPOV:            NewSpikyPOVClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AggregatedEntity.
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
		c.AggregatedEntity, c.Artifact, c.Event, c.Evidence, c.Insight, c.KnowledgeNode,
		c.KnowledgeNodeSource, c.Operation, c.Project, c.ReportSection, c.ResearchTask,
		c.Source, c.SourceSummary, c.SpikyPOV,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AggregatedEntity, c.Artifact, c.Event, c.Evidence, c.Insight, c.KnowledgeNode,
		c.KnowledgeNodeSource, c.Operation, c.Project, c.ReportSection, c.ResearchTask,
		c.Source, c.SourceSummary, c.SpikyPOV,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AggregatedEntityMutation:
		return c.AggregatedEntity.mutate(ctx, m)
	case *ArtifactMutation:
		return c.Artifact.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *EvidenceMutation:
		return c.Evidence.mutate(ctx, m)
	case *InsightMutation:
		return c.Insight.mutate(ctx, m)
	case *KnowledgeNodeMutation:
		return c.KnowledgeNode.mutate(ctx, m)
	case *KnowledgeNodeSourceMutation:
		return c.KnowledgeNodeSource.mutate(ctx, m)
	case *OperationMutation:
		return c.Operation.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *ReportSectionMutation:
		return c.ReportSection.mutate(ctx, m)
	case *ResearchTaskMutation:
		return c.ResearchTask.mutate(ctx, m)
	case *SourceMutation:
		return c.Source.mutate(ctx, m)
	case *SourceSummaryMutation:
		return c.SourceSummary.mutate(ctx, m)
	case *SpikyPOVMutation:
		return c.SpikyPOV.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AggregatedEntityClient is a client for the AggregatedEntity schema.
type AggregatedEntityClient struct {
	config
}

// NewAggregatedEntityClient returns a client for the AggregatedEntity from the given config.
func NewAggregatedEntityClient(c config) *AggregatedEntityClient {
	return &AggregatedEntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `aggregatedentity.Hooks(f(g(h())))`.
func (c *AggregatedEntityClient) Use(hooks ...Hook) {
	c.hooks.AggregatedEntity = append(c.hooks.AggregatedEntity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `aggregatedentity.Intercept(f(g(h())))`.
func (c *AggregatedEntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.AggregatedEntity = append(c.inters.AggregatedEntity, interceptors...)
}

// Create returns a builder for creating a AggregatedEntity entity.
func (c *AggregatedEntityClient) Create() *AggregatedEntityCreate {
	mutation := newAggregatedEntityMutation(c.config, OpCreate)
	return &AggregatedEntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AggregatedEntity entities.
func (c *AggregatedEntityClient) CreateBulk(builders ...*AggregatedEntityCreate) *AggregatedEntityCreateBulk {
	return &AggregatedEntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AggregatedEntityClient) MapCreateBulk(slice any, setFunc func(*AggregatedEntityCreate, int)) *AggregatedEntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AggregatedEntityCreateBulk{err: fmt.Errorf("calling to AggregatedEntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AggregatedEntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AggregatedEntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AggregatedEntity.
func (c *AggregatedEntityClient) Update() *AggregatedEntityUpdate {
	mutation := newAggregatedEntityMutation(c.config, OpUpdate)
	return &AggregatedEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AggregatedEntityClient) UpdateOne(_m *AggregatedEntity) *AggregatedEntityUpdateOne {
	mutation := newAggregatedEntityMutation(c.config, OpUpdateOne, withAggregatedEntity(_m))
	return &AggregatedEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AggregatedEntityClient) UpdateOneID(id string) *AggregatedEntityUpdateOne {
	mutation := newAggregatedEntityMutation(c.config, OpUpdateOne, withAggregatedEntityID(id))
	return &AggregatedEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AggregatedEntity.
func (c *AggregatedEntityClient) Delete() *AggregatedEntityDelete {
	mutation := newAggregatedEntityMutation(c.config, OpDelete)
	return &AggregatedEntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AggregatedEntityClient) DeleteOne(_m *AggregatedEntity) *AggregatedEntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AggregatedEntityClient) DeleteOneID(id string) *AggregatedEntityDeleteOne {
	builder := c.Delete().Where(aggregatedentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AggregatedEntityDeleteOne{builder}
}

// Query returns a query builder for AggregatedEntity.
func (c *AggregatedEntityClient) Query() *AggregatedEntityQuery {
	return &AggregatedEntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAggregatedEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a AggregatedEntity entity by its id.
func (c *AggregatedEntityClient) Get(ctx context.Context, id string) (*AggregatedEntity, error) {
	return c.Query().Where(aggregatedentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AggregatedEntityClient) GetX(ctx context.Context, id string) *AggregatedEntity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AggregatedEntityClient) Hooks() []Hook {
	return c.hooks.AggregatedEntity
}

// Interceptors returns the client interceptors.
func (c *AggregatedEntityClient) Interceptors() []Interceptor {
	return c.inters.AggregatedEntity
}

func (c *AggregatedEntityClient) mutate(ctx context.Context, m *AggregatedEntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AggregatedEntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AggregatedEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AggregatedEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AggregatedEntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AggregatedEntity mutation op: %q", m.Op())
	}
}

// ArtifactClient is a client for the Artifact schema.
type ArtifactClient struct {
	config
}

// NewArtifactClient returns a client for the Artifact from the given config.
func NewArtifactClient(c config) *ArtifactClient {
	return &ArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `artifact.Hooks(f(g(h())))`.
func (c *ArtifactClient) Use(hooks ...Hook) {
	c.hooks.Artifact = append(c.hooks.Artifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `artifact.Intercept(f(g(h())))`.
func (c *ArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Artifact = append(c.inters.Artifact, interceptors...)
}

// Create returns a builder for creating a Artifact entity.
func (c *ArtifactClient) Create() *ArtifactCreate {
	mutation := newArtifactMutation(c.config, OpCreate)
	return &ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Artifact entities.
func (c *ArtifactClient) CreateBulk(builders ...*ArtifactCreate) *ArtifactCreateBulk {
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArtifactClient) MapCreateBulk(slice any, setFunc func(*ArtifactCreate, int)) *ArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArtifactCreateBulk{err: fmt.Errorf("calling to ArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Artifact.
func (c *ArtifactClient) Update() *ArtifactUpdate {
	mutation := newArtifactMutation(c.config, OpUpdate)
	return &ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArtifactClient) UpdateOne(_m *Artifact) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifact(_m))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArtifactClient) UpdateOneID(id string) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifactID(id))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Artifact.
func (c *ArtifactClient) Delete() *ArtifactDelete {
	mutation := newArtifactMutation(c.config, OpDelete)
	return &ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArtifactClient) DeleteOne(_m *Artifact) *ArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArtifactClient) DeleteOneID(id string) *ArtifactDeleteOne {
	builder := c.Delete().Where(artifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArtifactDeleteOne{builder}
}

// Query returns a query builder for Artifact.
func (c *ArtifactClient) Query() *ArtifactQuery {
	return &ArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a Artifact entity by its id.
func (c *ArtifactClient) Get(ctx context.Context, id string) (*Artifact, error) {
	return c.Query().Where(artifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArtifactClient) GetX(ctx context.Context, id string) *Artifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Artifact.
func (c *ArtifactClient) QueryTask(_m *Artifact) *ResearchTaskQuery {
	query := (&ResearchTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(artifact.Table, artifact.FieldID, id),
			sqlgraph.To(researchtask.Table, researchtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, artifact.TaskTable, artifact.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArtifactClient) Hooks() []Hook {
	return c.hooks.Artifact
}

// Interceptors returns the client interceptors.
func (c *ArtifactClient) Interceptors() []Interceptor {
	return c.inters.Artifact
}

func (c *ArtifactClient) mutate(ctx context.Context, m *ArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Artifact mutation op: %q", m.Op())
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

// QueryTask queries the task edge of a Event.
func (c *EventClient) QueryTask(_m *Event) *ResearchTaskQuery {
	query := (&ResearchTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(researchtask.Table, researchtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.TaskTable, event.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
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

// EvidenceClient is a client for the Evidence schema.
type EvidenceClient struct {
	config
}

// NewEvidenceClient returns a client for the Evidence from the given config.
func NewEvidenceClient(c config) *EvidenceClient {
	return &EvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evidence.Hooks(f(g(h())))`.
func (c *EvidenceClient) Use(hooks ...Hook) {
	c.hooks.Evidence = append(c.hooks.Evidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evidence.Intercept(f(g(h())))`.
func (c *EvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Evidence = append(c.inters.Evidence, interceptors...)
}

// Create returns a builder for creating a Evidence entity.
func (c *EvidenceClient) Create() *EvidenceCreate {
	mutation := newEvidenceMutation(c.config, OpCreate)
	return &EvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Evidence entities.
func (c *EvidenceClient) CreateBulk(builders ...*EvidenceCreate) *EvidenceCreateBulk {
	return &EvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvidenceClient) MapCreateBulk(slice any, setFunc func(*EvidenceCreate, int)) *EvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvidenceCreateBulk{err: fmt.Errorf("calling to EvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Evidence.
func (c *EvidenceClient) Update() *EvidenceUpdate {
	mutation := newEvidenceMutation(c.config, OpUpdate)
	return &EvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvidenceClient) UpdateOne(_m *Evidence) *EvidenceUpdateOne {
	mutation := newEvidenceMutation(c.config, OpUpdateOne, withEvidence(_m))
	return &EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvidenceClient) UpdateOneID(id string) *EvidenceUpdateOne {
	mutation := newEvidenceMutation(c.config, OpUpdateOne, withEvidenceID(id))
	return &EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Evidence.
func (c *EvidenceClient) Delete() *EvidenceDelete {
	mutation := newEvidenceMutation(c.config, OpDelete)
	return &EvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvidenceClient) DeleteOne(_m *Evidence) *EvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvidenceClient) DeleteOneID(id string) *EvidenceDeleteOne {
	builder := c.Delete().Where(evidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvidenceDeleteOne{builder}
}

// Query returns a query builder for Evidence.
func (c *EvidenceClient) Query() *EvidenceQuery {
	return &EvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a Evidence entity by its id.
func (c *EvidenceClient) Get(ctx context.Context, id string) (*Evidence, error) {
	return c.Query().Where(evidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvidenceClient) GetX(ctx context.Context, id string) *Evidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOperation queries the operation edge of a Evidence.
func (c *EvidenceClient) QueryOperation(_m *Evidence) *OperationQuery {
	query := (&OperationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evidence.Table, evidence.FieldID, id),
			sqlgraph.To(operation.Table, operation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evidence.OperationTable, evidence.OperationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvidenceClient) Hooks() []Hook {
	return c.hooks.Evidence
}

// Interceptors returns the client interceptors.
func (c *EvidenceClient) Interceptors() []Interceptor {
	return c.inters.Evidence
}

func (c *EvidenceClient) mutate(ctx context.Context, m *EvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Evidence mutation op: %q", m.Op())
	}
}

// InsightClient is a client for the Insight schema.
type InsightClient struct {
	config
}

// NewInsightClient returns a client for the Insight from the given config.
func NewInsightClient(c config) *InsightClient {
	return &InsightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `insight.Hooks(f(g(h())))`.
func (c *InsightClient) Use(hooks ...Hook) {
	c.hooks.Insight = append(c.hooks.Insight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `insight.Intercept(f(g(h())))`.
func (c *InsightClient) Intercept(interceptors ...Interceptor) {
	c.inters.Insight = append(c.inters.Insight, interceptors...)
}

// Create returns a builder for creating a Insight entity.
func (c *InsightClient) Create() *InsightCreate {
	mutation := newInsightMutation(c.config, OpCreate)
	return &InsightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Insight entities.
func (c *InsightClient) CreateBulk(builders ...*InsightCreate) *InsightCreateBulk {
	return &InsightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InsightClient) MapCreateBulk(slice any, setFunc func(*InsightCreate, int)) *InsightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InsightCreateBulk{err: fmt.Errorf("calling to InsightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InsightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InsightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Insight.
func (c *InsightClient) Update() *InsightUpdate {
	mutation := newInsightMutation(c.config, OpUpdate)
	return &InsightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InsightClient) UpdateOne(_m *Insight) *InsightUpdateOne {
	mutation := newInsightMutation(c.config, OpUpdateOne, withInsight(_m))
	return &InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InsightClient) UpdateOneID(id string) *InsightUpdateOne {
	mutation := newInsightMutation(c.config, OpUpdateOne, withInsightID(id))
	return &InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Insight.
func (c *InsightClient) Delete() *InsightDelete {
	mutation := newInsightMutation(c.config, OpDelete)
	return &InsightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InsightClient) DeleteOne(_m *Insight) *InsightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InsightClient) DeleteOneID(id string) *InsightDeleteOne {
	builder := c.Delete().Where(insight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InsightDeleteOne{builder}
}

// Query returns a query builder for Insight.
func (c *InsightClient) Query() *InsightQuery {
	return &InsightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInsight},
		inters: c.Interceptors(),
	}
}

// Get returns a Insight entity by its id.
func (c *InsightClient) Get(ctx context.Context, id string) (*Insight, error) {
	return c.Query().Where(insight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InsightClient) GetX(ctx context.Context, id string) *Insight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Insight.
func (c *InsightClient) QueryTask(_m *Insight) *ResearchTaskQuery {
	query := (&ResearchTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insight.Table, insight.FieldID, id),
			sqlgraph.To(researchtask.Table, researchtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, insight.TaskTable, insight.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InsightClient) Hooks() []Hook {
	return c.hooks.Insight
}

// Interceptors returns the client interceptors.
func (c *InsightClient) Interceptors() []Interceptor {
	return c.inters.Insight
}

func (c *InsightClient) mutate(ctx context.Context, m *InsightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InsightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InsightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InsightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Insight mutation op: %q", m.Op())
	}
}

// KnowledgeNodeClient is a client for the KnowledgeNode schema.
type KnowledgeNodeClient struct {
	config
}

// NewKnowledgeNodeClient returns a client for the KnowledgeNode from the given config.
func NewKnowledgeNodeClient(c config) *KnowledgeNodeClient {
	return &KnowledgeNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgenode.Hooks(f(g(h())))`.
func (c *KnowledgeNodeClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeNode = append(c.hooks.KnowledgeNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgenode.Intercept(f(g(h())))`.
func (c *KnowledgeNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeNode = append(c.inters.KnowledgeNode, interceptors...)
}

// Create returns a builder for creating a KnowledgeNode entity.
func (c *KnowledgeNodeClient) Create() *KnowledgeNodeCreate {
	mutation := newKnowledgeNodeMutation(c.config, OpCreate)
	return &KnowledgeNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeNode entities.
func (c *KnowledgeNodeClient) CreateBulk(builders ...*KnowledgeNodeCreate) *KnowledgeNodeCreateBulk {
	return &KnowledgeNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeNodeClient) MapCreateBulk(slice any, setFunc func(*KnowledgeNodeCreate, int)) *KnowledgeNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeNodeCreateBulk{err: fmt.Errorf("calling to KnowledgeNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeNode.
func (c *KnowledgeNodeClient) Update() *KnowledgeNodeUpdate {
	mutation := newKnowledgeNodeMutation(c.config, OpUpdate)
	return &KnowledgeNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeNodeClient) UpdateOne(_m *KnowledgeNode) *KnowledgeNodeUpdateOne {
	mutation := newKnowledgeNodeMutation(c.config, OpUpdateOne, withKnowledgeNode(_m))
	return &KnowledgeNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeNodeClient) UpdateOneID(id string) *KnowledgeNodeUpdateOne {
	mutation := newKnowledgeNodeMutation(c.config, OpUpdateOne, withKnowledgeNodeID(id))
	return &KnowledgeNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeNode.
func (c *KnowledgeNodeClient) Delete() *KnowledgeNodeDelete {
	mutation := newKnowledgeNodeMutation(c.config, OpDelete)
	return &KnowledgeNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeNodeClient) DeleteOne(_m *KnowledgeNode) *KnowledgeNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeNodeClient) DeleteOneID(id string) *KnowledgeNodeDeleteOne {
	builder := c.Delete().Where(knowledgenode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeNodeDeleteOne{builder}
}

// Query returns a query builder for KnowledgeNode.
func (c *KnowledgeNodeClient) Query() *KnowledgeNodeQuery {
	return &KnowledgeNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeNode},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeNode entity by its id.
func (c *KnowledgeNodeClient) Get(ctx context.Context, id string) (*KnowledgeNode, error) {
	return c.Query().Where(knowledgenode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeNodeClient) GetX(ctx context.Context, id string) *KnowledgeNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a KnowledgeNode.
func (c *KnowledgeNodeClient) QueryTask(_m *KnowledgeNode) *ResearchTaskQuery {
	query := (&ResearchTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgenode.Table, knowledgenode.FieldID, id),
			sqlgraph.To(researchtask.Table, researchtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgenode.TaskTable, knowledgenode.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySourceLinks queries the source_links edge of a KnowledgeNode.
func (c *KnowledgeNodeClient) QuerySourceLinks(_m *KnowledgeNode) *KnowledgeNodeSourceQuery {
	query := (&KnowledgeNodeSourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgenode.Table, knowledgenode.FieldID, id),
			sqlgraph.To(knowledgenodesource.Table, knowledgenodesource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, knowledgenode.SourceLinksTable, knowledgenode.SourceLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeNodeClient) Hooks() []Hook {
	return c.hooks.KnowledgeNode
}

// Interceptors returns the client interceptors.
func (c *KnowledgeNodeClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeNode
}

func (c *KnowledgeNodeClient) mutate(ctx context.Context, m *KnowledgeNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeNode mutation op: %q", m.Op())
	}
}

// KnowledgeNodeSourceClient is a client for the KnowledgeNodeSource schema.
type KnowledgeNodeSourceClient struct {
	config
}

// NewKnowledgeNodeSourceClient returns a client for the KnowledgeNodeSource from the given config.
func NewKnowledgeNodeSourceClient(c config) *KnowledgeNodeSourceClient {
	return &KnowledgeNodeSourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgenodesource.Hooks(f(g(h())))`.
func (c *KnowledgeNodeSourceClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeNodeSource = append(c.hooks.KnowledgeNodeSource, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgenodesource.Intercept(f(g(h())))`.
func (c *KnowledgeNodeSourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeNodeSource = append(c.inters.KnowledgeNodeSource, interceptors...)
}

// Create returns a builder for creating a KnowledgeNodeSource entity.
func (c *KnowledgeNodeSourceClient) Create() *KnowledgeNodeSourceCreate {
	mutation := newKnowledgeNodeSourceMutation(c.config, OpCreate)
	return &KnowledgeNodeSourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeNodeSource entities.
func (c *KnowledgeNodeSourceClient) CreateBulk(builders ...*KnowledgeNodeSourceCreate) *KnowledgeNodeSourceCreateBulk {
	return &KnowledgeNodeSourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeNodeSourceClient) MapCreateBulk(slice any, setFunc func(*KnowledgeNodeSourceCreate, int)) *KnowledgeNodeSourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeNodeSourceCreateBulk{err: fmt.Errorf("calling to KnowledgeNodeSourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeNodeSourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeNodeSourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeNodeSource.
func (c *KnowledgeNodeSourceClient) Update() *KnowledgeNodeSourceUpdate {
	mutation := newKnowledgeNodeSourceMutation(c.config, OpUpdate)
	return &KnowledgeNodeSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeNodeSourceClient) UpdateOne(_m *KnowledgeNodeSource) *KnowledgeNodeSourceUpdateOne {
	mutation := newKnowledgeNodeSourceMutation(c.config, OpUpdateOne, withKnowledgeNodeSource(_m))
	return &KnowledgeNodeSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeNodeSourceClient) UpdateOneID(id string) *KnowledgeNodeSourceUpdateOne {
	mutation := newKnowledgeNodeSourceMutation(c.config, OpUpdateOne, withKnowledgeNodeSourceID(id))
	return &KnowledgeNodeSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeNodeSource.
func (c *KnowledgeNodeSourceClient) Delete() *KnowledgeNodeSourceDelete {
	mutation := newKnowledgeNodeSourceMutation(c.config, OpDelete)
	return &KnowledgeNodeSourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeNodeSourceClient) DeleteOne(_m *KnowledgeNodeSource) *KnowledgeNodeSourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeNodeSourceClient) DeleteOneID(id string) *KnowledgeNodeSourceDeleteOne {
	builder := c.Delete().Where(knowledgenodesource.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeNodeSourceDeleteOne{builder}
}

// Query returns a query builder for KnowledgeNodeSource.
func (c *KnowledgeNodeSourceClient) Query() *KnowledgeNodeSourceQuery {
	return &KnowledgeNodeSourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeNodeSource},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeNodeSource entity by its id.
func (c *KnowledgeNodeSourceClient) Get(ctx context.Context, id string) (*KnowledgeNodeSource, error) {
	return c.Query().Where(knowledgenodesource.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeNodeSourceClient) GetX(ctx context.Context, id string) *KnowledgeNodeSource {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a KnowledgeNodeSource.
func (c *KnowledgeNodeSourceClient) QueryNode(_m *KnowledgeNodeSource) *KnowledgeNodeQuery {
	query := (&KnowledgeNodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgenodesource.Table, knowledgenodesource.FieldID, id),
			sqlgraph.To(knowledgenode.Table, knowledgenode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgenodesource.NodeTable, knowledgenodesource.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySource queries the source edge of a KnowledgeNodeSource.
func (c *KnowledgeNodeSourceClient) QuerySource(_m *KnowledgeNodeSource) *SourceQuery {
	query := (&SourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgenodesource.Table, knowledgenodesource.FieldID, id),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgenodesource.SourceTable, knowledgenodesource.SourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeNodeSourceClient) Hooks() []Hook {
	return c.hooks.KnowledgeNodeSource
}

// Interceptors returns the client interceptors.
func (c *KnowledgeNodeSourceClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeNodeSource
}

func (c *KnowledgeNodeSourceClient) mutate(ctx context.Context, m *KnowledgeNodeSourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeNodeSourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeNodeSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeNodeSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeNodeSourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeNodeSource mutation op: %q", m.Op())
	}
}

// OperationClient is a client for the Operation schema.
type OperationClient struct {
	config
}

// NewOperationClient returns a client for the Operation from the given config.
func NewOperationClient(c config) *OperationClient {
	return &OperationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `operation.Hooks(f(g(h())))`.
func (c *OperationClient) Use(hooks ...Hook) {
	c.hooks.Operation = append(c.hooks.Operation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `operation.Intercept(f(g(h())))`.
func (c *OperationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Operation = append(c.inters.Operation, interceptors...)
}

// Create returns a builder for creating a Operation entity.
func (c *OperationClient) Create() *OperationCreate {
	mutation := newOperationMutation(c.config, OpCreate)
	return &OperationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Operation entities.
func (c *OperationClient) CreateBulk(builders ...*OperationCreate) *OperationCreateBulk {
	return &OperationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OperationClient) MapCreateBulk(slice any, setFunc func(*OperationCreate, int)) *OperationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OperationCreateBulk{err: fmt.Errorf("calling to OperationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OperationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OperationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Operation.
func (c *OperationClient) Update() *OperationUpdate {
	mutation := newOperationMutation(c.config, OpUpdate)
	return &OperationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OperationClient) UpdateOne(_m *Operation) *OperationUpdateOne {
	mutation := newOperationMutation(c.config, OpUpdateOne, withOperation(_m))
	return &OperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OperationClient) UpdateOneID(id string) *OperationUpdateOne {
	mutation := newOperationMutation(c.config, OpUpdateOne, withOperationID(id))
	return &OperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Operation.
func (c *OperationClient) Delete() *OperationDelete {
	mutation := newOperationMutation(c.config, OpDelete)
	return &OperationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OperationClient) DeleteOne(_m *Operation) *OperationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OperationClient) DeleteOneID(id string) *OperationDeleteOne {
	builder := c.Delete().Where(operation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OperationDeleteOne{builder}
}

// Query returns a query builder for Operation.
func (c *OperationClient) Query() *OperationQuery {
	return &OperationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOperation},
		inters: c.Interceptors(),
	}
}

// Get returns a Operation entity by its id.
func (c *OperationClient) Get(ctx context.Context, id string) (*Operation, error) {
	return c.Query().Where(operation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OperationClient) GetX(ctx context.Context, id string) *Operation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Operation.
func (c *OperationClient) QueryTask(_m *Operation) *ResearchTaskQuery {
	query := (&ResearchTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(operation.Table, operation.FieldID, id),
			sqlgraph.To(researchtask.Table, researchtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, operation.TaskTable, operation.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvidence queries the evidence edge of a Operation.
func (c *OperationClient) QueryEvidence(_m *Operation) *EvidenceQuery {
	query := (&EvidenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(operation.Table, operation.FieldID, id),
			sqlgraph.To(evidence.Table, evidence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, operation.EvidenceTable, operation.EvidenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OperationClient) Hooks() []Hook {
	return c.hooks.Operation
}

// Interceptors returns the client interceptors.
func (c *OperationClient) Interceptors() []Interceptor {
	return c.inters.Operation
}

func (c *OperationClient) mutate(ctx context.Context, m *OperationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OperationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OperationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OperationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Operation mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a Project.
func (c *ProjectClient) QueryTasks(_m *Project) *ResearchTaskQuery {
	query := (&ResearchTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(researchtask.Table, researchtask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.TasksTable, project.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// ReportSectionClient is a client for the ReportSection schema.
type ReportSectionClient struct {
	config
}

// NewReportSectionClient returns a client for the ReportSection from the given config.
func NewReportSectionClient(c config) *ReportSectionClient {
	return &ReportSectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportsection.Hooks(f(g(h())))`.
func (c *ReportSectionClient) Use(hooks ...Hook) {
	c.hooks.ReportSection = append(c.hooks.ReportSection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportsection.Intercept(f(g(h())))`.
func (c *ReportSectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportSection = append(c.inters.ReportSection, interceptors...)
}

// Create returns a builder for creating a ReportSection entity.
func (c *ReportSectionClient) Create() *ReportSectionCreate {
	mutation := newReportSectionMutation(c.config, OpCreate)
	return &ReportSectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportSection entities.
func (c *ReportSectionClient) CreateBulk(builders ...*ReportSectionCreate) *ReportSectionCreateBulk {
	return &ReportSectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportSectionClient) MapCreateBulk(slice any, setFunc func(*ReportSectionCreate, int)) *ReportSectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportSectionCreateBulk{err: fmt.Errorf("calling to ReportSectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportSectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportSectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportSection.
func (c *ReportSectionClient) Update() *ReportSectionUpdate {
	mutation := newReportSectionMutation(c.config, OpUpdate)
	return &ReportSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportSectionClient) UpdateOne(_m *ReportSection) *ReportSectionUpdateOne {
	mutation := newReportSectionMutation(c.config, OpUpdateOne, withReportSection(_m))
	return &ReportSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportSectionClient) UpdateOneID(id string) *ReportSectionUpdateOne {
	mutation := newReportSectionMutation(c.config, OpUpdateOne, withReportSectionID(id))
	return &ReportSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportSection.
func (c *ReportSectionClient) Delete() *ReportSectionDelete {
	mutation := newReportSectionMutation(c.config, OpDelete)
	return &ReportSectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportSectionClient) DeleteOne(_m *ReportSection) *ReportSectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportSectionClient) DeleteOneID(id string) *ReportSectionDeleteOne {
	builder := c.Delete().Where(reportsection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportSectionDeleteOne{builder}
}

// Query returns a query builder for ReportSection.
func (c *ReportSectionClient) Query() *ReportSectionQuery {
	return &ReportSectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportSection},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportSection entity by its id.
func (c *ReportSectionClient) Get(ctx context.Context, id string) (*ReportSection, error) {
	return c.Query().Where(reportsection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportSectionClient) GetX(ctx context.Context, id string) *ReportSection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a ReportSection.
func (c *ReportSectionClient) QueryTask(_m *ReportSection) *ResearchTaskQuery {
	query := (&ResearchTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportsection.Table, reportsection.FieldID, id),
			sqlgraph.To(researchtask.Table, researchtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportsection.TaskTable, reportsection.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportSectionClient) Hooks() []Hook {
	return c.hooks.ReportSection
}

// Interceptors returns the client interceptors.
func (c *ReportSectionClient) Interceptors() []Interceptor {
	return c.inters.ReportSection
}

func (c *ReportSectionClient) mutate(ctx context.Context, m *ReportSectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportSectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportSectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportSection mutation op: %q", m.Op())
	}
}

// ResearchTaskClient is a client for the ResearchTask schema.
type ResearchTaskClient struct {
	config
}

// NewResearchTaskClient returns a client for the ResearchTask from the given config.
func NewResearchTaskClient(c config) *ResearchTaskClient {
	return &ResearchTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchtask.Hooks(f(g(h())))`.
func (c *ResearchTaskClient) Use(hooks ...Hook) {
	c.hooks.ResearchTask = append(c.hooks.ResearchTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchtask.Intercept(f(g(h())))`.
func (c *ResearchTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchTask = append(c.inters.ResearchTask, interceptors...)
}

// Create returns a builder for creating a ResearchTask entity.
func (c *ResearchTaskClient) Create() *ResearchTaskCreate {
	mutation := newResearchTaskMutation(c.config, OpCreate)
	return &ResearchTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchTask entities.
func (c *ResearchTaskClient) CreateBulk(builders ...*ResearchTaskCreate) *ResearchTaskCreateBulk {
	return &ResearchTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchTaskClient) MapCreateBulk(slice any, setFunc func(*ResearchTaskCreate, int)) *ResearchTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchTaskCreateBulk{err: fmt.Errorf("calling to ResearchTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchTask.
func (c *ResearchTaskClient) Update() *ResearchTaskUpdate {
	mutation := newResearchTaskMutation(c.config, OpUpdate)
	return &ResearchTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchTaskClient) UpdateOne(_m *ResearchTask) *ResearchTaskUpdateOne {
	mutation := newResearchTaskMutation(c.config, OpUpdateOne, withResearchTask(_m))
	return &ResearchTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchTaskClient) UpdateOneID(id string) *ResearchTaskUpdateOne {
	mutation := newResearchTaskMutation(c.config, OpUpdateOne, withResearchTaskID(id))
	return &ResearchTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchTask.
func (c *ResearchTaskClient) Delete() *ResearchTaskDelete {
	mutation := newResearchTaskMutation(c.config, OpDelete)
	return &ResearchTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchTaskClient) DeleteOne(_m *ResearchTask) *ResearchTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchTaskClient) DeleteOneID(id string) *ResearchTaskDeleteOne {
	builder := c.Delete().Where(researchtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchTaskDeleteOne{builder}
}

// Query returns a query builder for ResearchTask.
func (c *ResearchTaskClient) Query() *ResearchTaskQuery {
	return &ResearchTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchTask entity by its id.
func (c *ResearchTaskClient) Get(ctx context.Context, id string) (*ResearchTask, error) {
	return c.Query().Where(researchtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchTaskClient) GetX(ctx context.Context, id string) *ResearchTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a ResearchTask.
func (c *ResearchTaskClient) QueryProject(_m *ResearchTask) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, researchtask.ProjectTable, researchtask.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOperations queries the operations edge of a ResearchTask.
func (c *ResearchTaskClient) QueryOperations(_m *ResearchTask) *OperationQuery {
	query := (&OperationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, id),
			sqlgraph.To(operation.Table, operation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.OperationsTable, researchtask.OperationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySourceSummaries queries the source_summaries edge of a ResearchTask.
func (c *ResearchTaskClient) QuerySourceSummaries(_m *ResearchTask) *SourceSummaryQuery {
	query := (&SourceSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, id),
			sqlgraph.To(sourcesummary.Table, sourcesummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.SourceSummariesTable, researchtask.SourceSummariesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKnowledgeNodes queries the knowledge_nodes edge of a ResearchTask.
func (c *ResearchTaskClient) QueryKnowledgeNodes(_m *ResearchTask) *KnowledgeNodeQuery {
	query := (&KnowledgeNodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, id),
			sqlgraph.To(knowledgenode.Table, knowledgenode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.KnowledgeNodesTable, researchtask.KnowledgeNodesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInsights queries the insights edge of a ResearchTask.
func (c *ResearchTaskClient) QueryInsights(_m *ResearchTask) *InsightQuery {
	query := (&InsightClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, id),
			sqlgraph.To(insight.Table, insight.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.InsightsTable, researchtask.InsightsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySpikyPovs queries the spiky_povs edge of a ResearchTask.
func (c *ResearchTaskClient) QuerySpikyPovs(_m *ResearchTask) *SpikyPOVQuery {
	query := (&SpikyPOVClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, id),
			sqlgraph.To(spikypov.Table, spikypov.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.SpikyPovsTable, researchtask.SpikyPovsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReportSections queries the report_sections edge of a ResearchTask.
func (c *ResearchTaskClient) QueryReportSections(_m *ResearchTask) *ReportSectionQuery {
	query := (&ReportSectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, id),
			sqlgraph.To(reportsection.Table, reportsection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.ReportSectionsTable, researchtask.ReportSectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArtifacts queries the artifacts edge of a ResearchTask.
func (c *ResearchTaskClient) QueryArtifacts(_m *ResearchTask) *ArtifactQuery {
	query := (&ArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, id),
			sqlgraph.To(artifact.Table, artifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.ArtifactsTable, researchtask.ArtifactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a ResearchTask.
func (c *ResearchTaskClient) QueryEvents(_m *ResearchTask) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.EventsTable, researchtask.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchTaskClient) Hooks() []Hook {
	return c.hooks.ResearchTask
}

// Interceptors returns the client interceptors.
func (c *ResearchTaskClient) Interceptors() []Interceptor {
	return c.inters.ResearchTask
}

func (c *ResearchTaskClient) mutate(ctx context.Context, m *ResearchTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchTask mutation op: %q", m.Op())
	}
}

// SourceClient is a client for the Source schema.
type SourceClient struct {
	config
}

// NewSourceClient returns a client for the Source from the given config.
func NewSourceClient(c config) *SourceClient {
	return &SourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `source.Hooks(f(g(h())))`.
func (c *SourceClient) Use(hooks ...Hook) {
	c.hooks.Source = append(c.hooks.Source, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `source.Intercept(f(g(h())))`.
func (c *SourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Source = append(c.inters.Source, interceptors...)
}

// Create returns a builder for creating a Source entity.
func (c *SourceClient) Create() *SourceCreate {
	mutation := newSourceMutation(c.config, OpCreate)
	return &SourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Source entities.
func (c *SourceClient) CreateBulk(builders ...*SourceCreate) *SourceCreateBulk {
	return &SourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceClient) MapCreateBulk(slice any, setFunc func(*SourceCreate, int)) *SourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceCreateBulk{err: fmt.Errorf("calling to SourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Source.
func (c *SourceClient) Update() *SourceUpdate {
	mutation := newSourceMutation(c.config, OpUpdate)
	return &SourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceClient) UpdateOne(_m *Source) *SourceUpdateOne {
	mutation := newSourceMutation(c.config, OpUpdateOne, withSource(_m))
	return &SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceClient) UpdateOneID(id string) *SourceUpdateOne {
	mutation := newSourceMutation(c.config, OpUpdateOne, withSourceID(id))
	return &SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Source.
func (c *SourceClient) Delete() *SourceDelete {
	mutation := newSourceMutation(c.config, OpDelete)
	return &SourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceClient) DeleteOne(_m *Source) *SourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceClient) DeleteOneID(id string) *SourceDeleteOne {
	builder := c.Delete().Where(source.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceDeleteOne{builder}
}

// Query returns a query builder for Source.
func (c *SourceClient) Query() *SourceQuery {
	return &SourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSource},
		inters: c.Interceptors(),
	}
}

// Get returns a Source entity by its id.
func (c *SourceClient) Get(ctx context.Context, id string) (*Source, error) {
	return c.Query().Where(source.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceClient) GetX(ctx context.Context, id string) *Source {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySummaries queries the summaries edge of a Source.
func (c *SourceClient) QuerySummaries(_m *Source) *SourceSummaryQuery {
	query := (&SourceSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(source.Table, source.FieldID, id),
			sqlgraph.To(sourcesummary.Table, sourcesummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, source.SummariesTable, source.SummariesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNodeLinks queries the node_links edge of a Source.
func (c *SourceClient) QueryNodeLinks(_m *Source) *KnowledgeNodeSourceQuery {
	query := (&KnowledgeNodeSourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(source.Table, source.FieldID, id),
			sqlgraph.To(knowledgenodesource.Table, knowledgenodesource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, source.NodeLinksTable, source.NodeLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceClient) Hooks() []Hook {
	return c.hooks.Source
}

// Interceptors returns the client interceptors.
func (c *SourceClient) Interceptors() []Interceptor {
	return c.inters.Source
}

func (c *SourceClient) mutate(ctx context.Context, m *SourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Source mutation op: %q", m.Op())
	}
}

// SourceSummaryClient is a client for the SourceSummary schema.
type SourceSummaryClient struct {
	config
}

// NewSourceSummaryClient returns a client for the SourceSummary from the given config.
func NewSourceSummaryClient(c config) *SourceSummaryClient {
	return &SourceSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcesummary.Hooks(f(g(h())))`.
func (c *SourceSummaryClient) Use(hooks ...Hook) {
	c.hooks.SourceSummary = append(c.hooks.SourceSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcesummary.Intercept(f(g(h())))`.
func (c *SourceSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceSummary = append(c.inters.SourceSummary, interceptors...)
}

// Create returns a builder for creating a SourceSummary entity.
func (c *SourceSummaryClient) Create() *SourceSummaryCreate {
	mutation := newSourceSummaryMutation(c.config, OpCreate)
	return &SourceSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceSummary entities.
func (c *SourceSummaryClient) CreateBulk(builders ...*SourceSummaryCreate) *SourceSummaryCreateBulk {
	return &SourceSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceSummaryClient) MapCreateBulk(slice any, setFunc func(*SourceSummaryCreate, int)) *SourceSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceSummaryCreateBulk{err: fmt.Errorf("calling to SourceSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceSummary.
func (c *SourceSummaryClient) Update() *SourceSummaryUpdate {
	mutation := newSourceSummaryMutation(c.config, OpUpdate)
	return &SourceSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceSummaryClient) UpdateOne(_m *SourceSummary) *SourceSummaryUpdateOne {
	mutation := newSourceSummaryMutation(c.config, OpUpdateOne, withSourceSummary(_m))
	return &SourceSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceSummaryClient) UpdateOneID(id string) *SourceSummaryUpdateOne {
	mutation := newSourceSummaryMutation(c.config, OpUpdateOne, withSourceSummaryID(id))
	return &SourceSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceSummary.
func (c *SourceSummaryClient) Delete() *SourceSummaryDelete {
	mutation := newSourceSummaryMutation(c.config, OpDelete)
	return &SourceSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceSummaryClient) DeleteOne(_m *SourceSummary) *SourceSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceSummaryClient) DeleteOneID(id string) *SourceSummaryDeleteOne {
	builder := c.Delete().Where(sourcesummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceSummaryDeleteOne{builder}
}

// Query returns a query builder for SourceSummary.
func (c *SourceSummaryClient) Query() *SourceSummaryQuery {
	return &SourceSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceSummary entity by its id.
func (c *SourceSummaryClient) Get(ctx context.Context, id string) (*SourceSummary, error) {
	return c.Query().Where(sourcesummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceSummaryClient) GetX(ctx context.Context, id string) *SourceSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a SourceSummary.
func (c *SourceSummaryClient) QueryTask(_m *SourceSummary) *ResearchTaskQuery {
	query := (&ResearchTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcesummary.Table, sourcesummary.FieldID, id),
			sqlgraph.To(researchtask.Table, researchtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sourcesummary.TaskTable, sourcesummary.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySource queries the source edge of a SourceSummary.
func (c *SourceSummaryClient) QuerySource(_m *SourceSummary) *SourceQuery {
	query := (&SourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcesummary.Table, sourcesummary.FieldID, id),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sourcesummary.SourceTable, sourcesummary.SourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceSummaryClient) Hooks() []Hook {
	return c.hooks.SourceSummary
}

// Interceptors returns the client interceptors.
func (c *SourceSummaryClient) Interceptors() []Interceptor {
	return c.inters.SourceSummary
}

func (c *SourceSummaryClient) mutate(ctx context.Context, m *SourceSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceSummary mutation op: %q", m.Op())
	}
}

// SpikyPOVClient is a client for the SpikyPOV schema.
type SpikyPOVClient struct {
	config
}

// NewSpikyPOVClient returns a client for the SpikyPOV from the given config.
func NewSpikyPOVClient(c config) *SpikyPOVClient {
	return &SpikyPOVClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `spikypov.Hooks(f(g(h())))`.
func (c *SpikyPOVClient) Use(hooks ...Hook) {
	c.hooks.SpikyPOV = append(c.hooks.SpikyPOV, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `spikypov.Intercept(f(g(h())))`.
func (c *SpikyPOVClient) Intercept(interceptors ...Interceptor) {
	c.inters.SpikyPOV = append(c.inters.SpikyPOV, interceptors...)
}

// Create returns a builder for creating a SpikyPOV entity.
func (c *SpikyPOVClient) Create() *SpikyPOVCreate {
	mutation := newSpikyPOVMutation(c.config, OpCreate)
	return &SpikyPOVCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SpikyPOV entities.
func (c *SpikyPOVClient) CreateBulk(builders ...*SpikyPOVCreate) *SpikyPOVCreateBulk {
	return &SpikyPOVCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpikyPOVClient) MapCreateBulk(slice any, setFunc func(*SpikyPOVCreate, int)) *SpikyPOVCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpikyPOVCreateBulk{err: fmt.Errorf("calling to SpikyPOVClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpikyPOVCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpikyPOVCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SpikyPOV.
func (c *SpikyPOVClient) Update() *SpikyPOVUpdate {
	mutation := newSpikyPOVMutation(c.config, OpUpdate)
	return &SpikyPOVUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpikyPOVClient) UpdateOne(_m *SpikyPOV) *SpikyPOVUpdateOne {
	mutation := newSpikyPOVMutation(c.config, OpUpdateOne, withSpikyPOV(_m))
	return &SpikyPOVUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpikyPOVClient) UpdateOneID(id string) *SpikyPOVUpdateOne {
	mutation := newSpikyPOVMutation(c.config, OpUpdateOne, withSpikyPOVID(id))
	return &SpikyPOVUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SpikyPOV.
func (c *SpikyPOVClient) Delete() *SpikyPOVDelete {
	mutation := newSpikyPOVMutation(c.config, OpDelete)
	return &SpikyPOVDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpikyPOVClient) DeleteOne(_m *SpikyPOV) *SpikyPOVDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpikyPOVClient) DeleteOneID(id string) *SpikyPOVDeleteOne {
	builder := c.Delete().Where(spikypov.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpikyPOVDeleteOne{builder}
}

// Query returns a query builder for SpikyPOV.
func (c *SpikyPOVClient) Query() *SpikyPOVQuery {
	return &SpikyPOVQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpikyPOV},
		inters: c.Interceptors(),
	}
}

// Get returns a SpikyPOV entity by its id.
func (c *SpikyPOVClient) Get(ctx context.Context, id string) (*SpikyPOV, error) {
	return c.Query().Where(spikypov.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpikyPOVClient) GetX(ctx context.Context, id string) *SpikyPOV {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a SpikyPOV.
func (c *SpikyPOVClient) QueryTask(_m *SpikyPOV) *ResearchTaskQuery {
	query := (&ResearchTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(spikypov.Table, spikypov.FieldID, id),
			sqlgraph.To(researchtask.Table, researchtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, spikypov.TaskTable, spikypov.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SpikyPOVClient) Hooks() []Hook {
	return c.hooks.SpikyPOV
}

// Interceptors returns the client interceptors.
func (c *SpikyPOVClient) Interceptors() []Interceptor {
	return c.inters.SpikyPOV
}

func (c *SpikyPOVClient) mutate(ctx context.Context, m *SpikyPOVMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpikyPOVCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpikyPOVUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpikyPOVUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpikyPOVDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SpikyPOV mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AggregatedEntity, Artifact, Event, Evidence, Insight, KnowledgeNode,
		KnowledgeNodeSource, Operation, Project, ReportSection, ResearchTask, Source,
		SourceSummary, SpikyPOV []ent.Hook
	}
	inters struct {
		AggregatedEntity, Artifact, Event, Evidence, Insight, KnowledgeNode,
		KnowledgeNodeSource, Operation, Project, ReportSection, ResearchTask, Source,
		SourceSummary, SpikyPOV []ent.Interceptor
	}
)
