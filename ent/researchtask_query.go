// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/artifact"
	"github.com/trilogy-group/nexus-agents/ent/event"
	"github.com/trilogy-group/nexus-agents/ent/insight"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
	"github.com/trilogy-group/nexus-agents/ent/project"
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
	"github.com/trilogy-group/nexus-agents/ent/spikypov"
)

// ResearchTaskQuery is the builder for querying ResearchTask entities.
type ResearchTaskQuery struct {
	config
	ctx                 *QueryContext
	order               []researchtask.OrderOption
	inters              []Interceptor
	predicates          []predicate.ResearchTask
	withProject         *ProjectQuery
	withOperations      *OperationQuery
	withSourceSummaries *SourceSummaryQuery
	withKnowledgeNodes  *KnowledgeNodeQuery
	withInsights        *InsightQuery
	withSpikyPovs       *SpikyPOVQuery
	withReportSections  *ReportSectionQuery
	withArtifacts       *ArtifactQuery
	withEvents          *EventQuery
	modifiers           []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ResearchTaskQuery builder.
func (_q *ResearchTaskQuery) Where(ps ...predicate.ResearchTask) *ResearchTaskQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ResearchTaskQuery) Limit(limit int) *ResearchTaskQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ResearchTaskQuery) Offset(offset int) *ResearchTaskQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ResearchTaskQuery) Unique(unique bool) *ResearchTaskQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ResearchTaskQuery) Order(o ...researchtask.OrderOption) *ResearchTaskQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProject chains the current query on the "project" edge.
func (_q *ResearchTaskQuery) QueryProject() *ProjectQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, selector),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, researchtask.ProjectTable, researchtask.ProjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOperations chains the current query on the "operations" edge.
func (_q *ResearchTaskQuery) QueryOperations() *OperationQuery {
	query := (&OperationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, selector),
			sqlgraph.To(operation.Table, operation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.OperationsTable, researchtask.OperationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySourceSummaries chains the current query on the "source_summaries" edge.
func (_q *ResearchTaskQuery) QuerySourceSummaries() *SourceSummaryQuery {
	query := (&SourceSummaryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, selector),
			sqlgraph.To(sourcesummary.Table, sourcesummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.SourceSummariesTable, researchtask.SourceSummariesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryKnowledgeNodes chains the current query on the "knowledge_nodes" edge.
func (_q *ResearchTaskQuery) QueryKnowledgeNodes() *KnowledgeNodeQuery {
	query := (&KnowledgeNodeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, selector),
			sqlgraph.To(knowledgenode.Table, knowledgenode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.KnowledgeNodesTable, researchtask.KnowledgeNodesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryInsights chains the current query on the "insights" edge.
func (_q *ResearchTaskQuery) QueryInsights() *InsightQuery {
	query := (&InsightClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, selector),
			sqlgraph.To(insight.Table, insight.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.InsightsTable, researchtask.InsightsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySpikyPovs chains the current query on the "spiky_povs" edge.
func (_q *ResearchTaskQuery) QuerySpikyPovs() *SpikyPOVQuery {
	query := (&SpikyPOVClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, selector),
			sqlgraph.To(spikypov.Table, spikypov.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.SpikyPovsTable, researchtask.SpikyPovsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReportSections chains the current query on the "report_sections" edge.
func (_q *ResearchTaskQuery) QueryReportSections() *ReportSectionQuery {
	query := (&ReportSectionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, selector),
			sqlgraph.To(reportsection.Table, reportsection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.ReportSectionsTable, researchtask.ReportSectionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryArtifacts chains the current query on the "artifacts" edge.
func (_q *ResearchTaskQuery) QueryArtifacts() *ArtifactQuery {
	query := (&ArtifactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, selector),
			sqlgraph.To(artifact.Table, artifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.ArtifactsTable, researchtask.ArtifactsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *ResearchTaskQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchtask.Table, researchtask.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchtask.EventsTable, researchtask.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ResearchTask entity from the query.
// Returns a *NotFoundError when no ResearchTask was found.
func (_q *ResearchTaskQuery) First(ctx context.Context) (*ResearchTask, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{researchtask.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ResearchTaskQuery) FirstX(ctx context.Context) *ResearchTask {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ResearchTask ID from the query.
// Returns a *NotFoundError when no ResearchTask ID was found.
func (_q *ResearchTaskQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{researchtask.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ResearchTaskQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ResearchTask entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ResearchTask entity is found.
// Returns a *NotFoundError when no ResearchTask entities are found.
func (_q *ResearchTaskQuery) Only(ctx context.Context) (*ResearchTask, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{researchtask.Label}
	default:
		return nil, &NotSingularError{researchtask.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ResearchTaskQuery) OnlyX(ctx context.Context) *ResearchTask {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ResearchTask ID in the query.
// Returns a *NotSingularError when more than one ResearchTask ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ResearchTaskQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{researchtask.Label}
	default:
		err = &NotSingularError{researchtask.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ResearchTaskQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ResearchTasks.
func (_q *ResearchTaskQuery) All(ctx context.Context) ([]*ResearchTask, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ResearchTask, *ResearchTaskQuery]()
	return withInterceptors[[]*ResearchTask](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ResearchTaskQuery) AllX(ctx context.Context) []*ResearchTask {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ResearchTask IDs.
func (_q *ResearchTaskQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(researchtask.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ResearchTaskQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ResearchTaskQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ResearchTaskQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ResearchTaskQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ResearchTaskQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ResearchTaskQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ResearchTaskQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ResearchTaskQuery) Clone() *ResearchTaskQuery {
	if _q == nil {
		return nil
	}
	return &ResearchTaskQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]researchtask.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.ResearchTask{}, _q.predicates...),
		withProject:         _q.withProject.Clone(),
		withOperations:      _q.withOperations.Clone(),
		withSourceSummaries: _q.withSourceSummaries.Clone(),
		withKnowledgeNodes:  _q.withKnowledgeNodes.Clone(),
		withInsights:        _q.withInsights.Clone(),
		withSpikyPovs:       _q.withSpikyPovs.Clone(),
		withReportSections:  _q.withReportSections.Clone(),
		withArtifacts:       _q.withArtifacts.Clone(),
		withEvents:          _q.withEvents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProject tells the query-builder to eager-load the nodes that are connected to
// the "project" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchTaskQuery) WithProject(opts ...func(*ProjectQuery)) *ResearchTaskQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProject = query
	return _q
}

// WithOperations tells the query-builder to eager-load the nodes that are connected to
// the "operations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchTaskQuery) WithOperations(opts ...func(*OperationQuery)) *ResearchTaskQuery {
	query := (&OperationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOperations = query
	return _q
}

// WithSourceSummaries tells the query-builder to eager-load the nodes that are connected to
// the "source_summaries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchTaskQuery) WithSourceSummaries(opts ...func(*SourceSummaryQuery)) *ResearchTaskQuery {
	query := (&SourceSummaryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSourceSummaries = query
	return _q
}

// WithKnowledgeNodes tells the query-builder to eager-load the nodes that are connected to
// the "knowledge_nodes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchTaskQuery) WithKnowledgeNodes(opts ...func(*KnowledgeNodeQuery)) *ResearchTaskQuery {
	query := (&KnowledgeNodeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withKnowledgeNodes = query
	return _q
}

// WithInsights tells the query-builder to eager-load the nodes that are connected to
// the "insights" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchTaskQuery) WithInsights(opts ...func(*InsightQuery)) *ResearchTaskQuery {
	query := (&InsightClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInsights = query
	return _q
}

// WithSpikyPovs tells the query-builder to eager-load the nodes that are connected to
// the "spiky_povs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchTaskQuery) WithSpikyPovs(opts ...func(*SpikyPOVQuery)) *ResearchTaskQuery {
	query := (&SpikyPOVClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSpikyPovs = query
	return _q
}

// WithReportSections tells the query-builder to eager-load the nodes that are connected to
// the "report_sections" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchTaskQuery) WithReportSections(opts ...func(*ReportSectionQuery)) *ResearchTaskQuery {
	query := (&ReportSectionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReportSections = query
	return _q
}

// WithArtifacts tells the query-builder to eager-load the nodes that are connected to
// the "artifacts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchTaskQuery) WithArtifacts(opts ...func(*ArtifactQuery)) *ResearchTaskQuery {
	query := (&ArtifactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArtifacts = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchTaskQuery) WithEvents(opts ...func(*EventQuery)) *ResearchTaskQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ResearchTask.Query().
//		GroupBy(researchtask.FieldTitle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ResearchTaskQuery) GroupBy(field string, fields ...string) *ResearchTaskGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ResearchTaskGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = researchtask.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//	}
//
//	client.ResearchTask.Query().
//		Select(researchtask.FieldTitle).
//		Scan(ctx, &v)
func (_q *ResearchTaskQuery) Select(fields ...string) *ResearchTaskSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ResearchTaskSelect{ResearchTaskQuery: _q}
	sbuild.label = researchtask.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ResearchTaskSelect configured with the given aggregations.
func (_q *ResearchTaskQuery) Aggregate(fns ...AggregateFunc) *ResearchTaskSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ResearchTaskQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !researchtask.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ResearchTaskQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ResearchTask, error) {
	var (
		nodes       = []*ResearchTask{}
		_spec       = _q.querySpec()
		loadedTypes = [9]bool{
			_q.withProject != nil,
			_q.withOperations != nil,
			_q.withSourceSummaries != nil,
			_q.withKnowledgeNodes != nil,
			_q.withInsights != nil,
			_q.withSpikyPovs != nil,
			_q.withReportSections != nil,
			_q.withArtifacts != nil,
			_q.withEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ResearchTask).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ResearchTask{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withProject; query != nil {
		if err := _q.loadProject(ctx, query, nodes, nil,
			func(n *ResearchTask, e *Project) { n.Edges.Project = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOperations; query != nil {
		if err := _q.loadOperations(ctx, query, nodes,
			func(n *ResearchTask) { n.Edges.Operations = []*Operation{} },
			func(n *ResearchTask, e *Operation) { n.Edges.Operations = append(n.Edges.Operations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSourceSummaries; query != nil {
		if err := _q.loadSourceSummaries(ctx, query, nodes,
			func(n *ResearchTask) { n.Edges.SourceSummaries = []*SourceSummary{} },
			func(n *ResearchTask, e *SourceSummary) { n.Edges.SourceSummaries = append(n.Edges.SourceSummaries, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withKnowledgeNodes; query != nil {
		if err := _q.loadKnowledgeNodes(ctx, query, nodes,
			func(n *ResearchTask) { n.Edges.KnowledgeNodes = []*KnowledgeNode{} },
			func(n *ResearchTask, e *KnowledgeNode) { n.Edges.KnowledgeNodes = append(n.Edges.KnowledgeNodes, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withInsights; query != nil {
		if err := _q.loadInsights(ctx, query, nodes,
			func(n *ResearchTask) { n.Edges.Insights = []*Insight{} },
			func(n *ResearchTask, e *Insight) { n.Edges.Insights = append(n.Edges.Insights, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSpikyPovs; query != nil {
		if err := _q.loadSpikyPovs(ctx, query, nodes,
			func(n *ResearchTask) { n.Edges.SpikyPovs = []*SpikyPOV{} },
			func(n *ResearchTask, e *SpikyPOV) { n.Edges.SpikyPovs = append(n.Edges.SpikyPovs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReportSections; query != nil {
		if err := _q.loadReportSections(ctx, query, nodes,
			func(n *ResearchTask) { n.Edges.ReportSections = []*ReportSection{} },
			func(n *ResearchTask, e *ReportSection) { n.Edges.ReportSections = append(n.Edges.ReportSections, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withArtifacts; query != nil {
		if err := _q.loadArtifacts(ctx, query, nodes,
			func(n *ResearchTask) { n.Edges.Artifacts = []*Artifact{} },
			func(n *ResearchTask, e *Artifact) { n.Edges.Artifacts = append(n.Edges.Artifacts, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *ResearchTask) { n.Edges.Events = []*Event{} },
			func(n *ResearchTask, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ResearchTaskQuery) loadProject(ctx context.Context, query *ProjectQuery, nodes []*ResearchTask, init func(*ResearchTask), assign func(*ResearchTask, *Project)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ResearchTask)
	for i := range nodes {
		if nodes[i].ProjectID == nil {
			continue
		}
		fk := *nodes[i].ProjectID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(project.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "project_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ResearchTaskQuery) loadOperations(ctx context.Context, query *OperationQuery, nodes []*ResearchTask, init func(*ResearchTask), assign func(*ResearchTask, *Operation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchTask)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(operation.FieldTaskID)
	}
	query.Where(predicate.Operation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchtask.OperationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchTaskQuery) loadSourceSummaries(ctx context.Context, query *SourceSummaryQuery, nodes []*ResearchTask, init func(*ResearchTask), assign func(*ResearchTask, *SourceSummary)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchTask)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(sourcesummary.FieldTaskID)
	}
	query.Where(predicate.SourceSummary(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchtask.SourceSummariesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchTaskQuery) loadKnowledgeNodes(ctx context.Context, query *KnowledgeNodeQuery, nodes []*ResearchTask, init func(*ResearchTask), assign func(*ResearchTask, *KnowledgeNode)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchTask)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(knowledgenode.FieldTaskID)
	}
	query.Where(predicate.KnowledgeNode(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchtask.KnowledgeNodesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchTaskQuery) loadInsights(ctx context.Context, query *InsightQuery, nodes []*ResearchTask, init func(*ResearchTask), assign func(*ResearchTask, *Insight)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchTask)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(insight.FieldTaskID)
	}
	query.Where(predicate.Insight(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchtask.InsightsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchTaskQuery) loadSpikyPovs(ctx context.Context, query *SpikyPOVQuery, nodes []*ResearchTask, init func(*ResearchTask), assign func(*ResearchTask, *SpikyPOV)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchTask)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(spikypov.FieldTaskID)
	}
	query.Where(predicate.SpikyPOV(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchtask.SpikyPovsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchTaskQuery) loadReportSections(ctx context.Context, query *ReportSectionQuery, nodes []*ResearchTask, init func(*ResearchTask), assign func(*ResearchTask, *ReportSection)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchTask)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(reportsection.FieldTaskID)
	}
	query.Where(predicate.ReportSection(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchtask.ReportSectionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchTaskQuery) loadArtifacts(ctx context.Context, query *ArtifactQuery, nodes []*ResearchTask, init func(*ResearchTask), assign func(*ResearchTask, *Artifact)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchTask)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(artifact.FieldTaskID)
	}
	query.Where(predicate.Artifact(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchtask.ArtifactsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchTaskQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*ResearchTask, init func(*ResearchTask), assign func(*ResearchTask, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchTask)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldTaskID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchtask.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ResearchTaskQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ResearchTaskQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(researchtask.Table, researchtask.Columns, sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchtask.FieldID)
		for i := range fields {
			if fields[i] != researchtask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProject != nil {
			_spec.Node.AddColumnOnce(researchtask.FieldProjectID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ResearchTaskQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(researchtask.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = researchtask.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *ResearchTaskQuery) ForUpdate(opts ...sql.LockOption) *ResearchTaskQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *ResearchTaskQuery) ForShare(opts ...sql.LockOption) *ResearchTaskQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ResearchTaskGroupBy is the group-by builder for ResearchTask entities.
type ResearchTaskGroupBy struct {
	selector
	build *ResearchTaskQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ResearchTaskGroupBy) Aggregate(fns ...AggregateFunc) *ResearchTaskGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ResearchTaskGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResearchTaskQuery, *ResearchTaskGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ResearchTaskGroupBy) sqlScan(ctx context.Context, root *ResearchTaskQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ResearchTaskSelect is the builder for selecting fields of ResearchTask entities.
type ResearchTaskSelect struct {
	*ResearchTaskQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ResearchTaskSelect) Aggregate(fns ...AggregateFunc) *ResearchTaskSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ResearchTaskSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResearchTaskQuery, *ResearchTaskSelect](ctx, _s.ResearchTaskQuery, _s, _s.inters, v)
}

func (_s *ResearchTaskSelect) sqlScan(ctx context.Context, root *ResearchTaskQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
