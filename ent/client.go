// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Yashshokeen-11/ALP/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/Yashshokeen-11/ALP/ent/concept"
	"github.com/Yashshokeen-11/ALP/ent/llmrequestevent"
	"github.com/Yashshokeen-11/ALP/ent/masteryfact"
	"github.com/Yashshokeen-11/ALP/ent/mistakerecord"
	"github.com/Yashshokeen-11/ALP/ent/pathevent"
	"github.com/Yashshokeen-11/ALP/ent/prereqedge"
	"github.com/Yashshokeen-11/ALP/ent/reviewstate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Concept is the client for interacting with the Concept builders.
	Concept *ConceptClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MasteryFact is the client for interacting with the MasteryFact builders.
	MasteryFact *MasteryFactClient
	// MistakeRecord is the client for interacting with the MistakeRecord builders.
	MistakeRecord *MistakeRecordClient
	// PathEvent is the client for interacting with the PathEvent builders.
	PathEvent *PathEventClient
	// PrereqEdge is the client for interacting with the PrereqEdge builders.
	PrereqEdge *PrereqEdgeClient
	// ReviewState is the client for interacting with the ReviewState builders.
	ReviewState *ReviewStateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Concept = NewConceptClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MasteryFact = NewMasteryFactClient(c.config)
	c.MistakeRecord = NewMistakeRecordClient(c.config)
	c.PathEvent = NewPathEventClient(c.config)
	c.PrereqEdge = NewPrereqEdgeClient(c.config)
	c.ReviewState = NewReviewStateClient(c.config)
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
		Concept:         NewConceptClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MasteryFact:     NewMasteryFactClient(cfg),
		MistakeRecord:   NewMistakeRecordClient(cfg),
		PathEvent:       NewPathEventClient(cfg),
		PrereqEdge:      NewPrereqEdgeClient(cfg),
		ReviewState:     NewReviewStateClient(cfg),
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
		Concept:         NewConceptClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MasteryFact:     NewMasteryFactClient(cfg),
		MistakeRecord:   NewMistakeRecordClient(cfg),
		PathEvent:       NewPathEventClient(cfg),
		PrereqEdge:      NewPrereqEdgeClient(cfg),
		ReviewState:     NewReviewStateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Concept.
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
		c.Concept, c.LLMRequestEvent, c.MasteryFact, c.MistakeRecord, c.PathEvent,
		c.PrereqEdge, c.ReviewState,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Concept, c.LLMRequestEvent, c.MasteryFact, c.MistakeRecord, c.PathEvent,
		c.PrereqEdge, c.ReviewState,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConceptMutation:
		return c.Concept.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MasteryFactMutation:
		return c.MasteryFact.mutate(ctx, m)
	case *MistakeRecordMutation:
		return c.MistakeRecord.mutate(ctx, m)
	case *PathEventMutation:
		return c.PathEvent.mutate(ctx, m)
	case *PrereqEdgeMutation:
		return c.PrereqEdge.mutate(ctx, m)
	case *ReviewStateMutation:
		return c.ReviewState.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConceptClient is a client for the Concept schema.
type ConceptClient struct {
	config
}

// NewConceptClient returns a client for the Concept from the given config.
func NewConceptClient(c config) *ConceptClient {
	return &ConceptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `concept.Hooks(f(g(h())))`.
func (c *ConceptClient) Use(hooks ...Hook) {
	c.hooks.Concept = append(c.hooks.Concept, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `concept.Intercept(f(g(h())))`.
func (c *ConceptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Concept = append(c.inters.Concept, interceptors...)
}

// Create returns a builder for creating a Concept entity.
func (c *ConceptClient) Create() *ConceptCreate {
	mutation := newConceptMutation(c.config, OpCreate)
	return &ConceptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Concept entities.
func (c *ConceptClient) CreateBulk(builders ...*ConceptCreate) *ConceptCreateBulk {
	return &ConceptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptClient) MapCreateBulk(slice any, setFunc func(*ConceptCreate, int)) *ConceptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptCreateBulk{err: fmt.Errorf("calling to ConceptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Concept.
func (c *ConceptClient) Update() *ConceptUpdate {
	mutation := newConceptMutation(c.config, OpUpdate)
	return &ConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptClient) UpdateOne(_m *Concept) *ConceptUpdateOne {
	mutation := newConceptMutation(c.config, OpUpdateOne, withConcept(_m))
	return &ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptClient) UpdateOneID(id int) *ConceptUpdateOne {
	mutation := newConceptMutation(c.config, OpUpdateOne, withConceptID(id))
	return &ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Concept.
func (c *ConceptClient) Delete() *ConceptDelete {
	mutation := newConceptMutation(c.config, OpDelete)
	return &ConceptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptClient) DeleteOne(_m *Concept) *ConceptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptClient) DeleteOneID(id int) *ConceptDeleteOne {
	builder := c.Delete().Where(concept.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptDeleteOne{builder}
}

// Query returns a query builder for Concept.
func (c *ConceptClient) Query() *ConceptQuery {
	return &ConceptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConcept},
		inters: c.Interceptors(),
	}
}

// Get returns a Concept entity by its id.
func (c *ConceptClient) Get(ctx context.Context, id int) (*Concept, error) {
	return c.Query().Where(concept.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptClient) GetX(ctx context.Context, id int) *Concept {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptClient) Hooks() []Hook {
	return c.hooks.Concept
}

// Interceptors returns the client interceptors.
func (c *ConceptClient) Interceptors() []Interceptor {
	return c.inters.Concept
}

func (c *ConceptClient) mutate(ctx context.Context, m *ConceptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Concept mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MasteryFactClient is a client for the MasteryFact schema.
type MasteryFactClient struct {
	config
}

// NewMasteryFactClient returns a client for the MasteryFact from the given config.
func NewMasteryFactClient(c config) *MasteryFactClient {
	return &MasteryFactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryfact.Hooks(f(g(h())))`.
func (c *MasteryFactClient) Use(hooks ...Hook) {
	c.hooks.MasteryFact = append(c.hooks.MasteryFact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryfact.Intercept(f(g(h())))`.
func (c *MasteryFactClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryFact = append(c.inters.MasteryFact, interceptors...)
}

// Create returns a builder for creating a MasteryFact entity.
func (c *MasteryFactClient) Create() *MasteryFactCreate {
	mutation := newMasteryFactMutation(c.config, OpCreate)
	return &MasteryFactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryFact entities.
func (c *MasteryFactClient) CreateBulk(builders ...*MasteryFactCreate) *MasteryFactCreateBulk {
	return &MasteryFactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryFactClient) MapCreateBulk(slice any, setFunc func(*MasteryFactCreate, int)) *MasteryFactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryFactCreateBulk{err: fmt.Errorf("calling to MasteryFactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryFactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryFactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryFact.
func (c *MasteryFactClient) Update() *MasteryFactUpdate {
	mutation := newMasteryFactMutation(c.config, OpUpdate)
	return &MasteryFactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryFactClient) UpdateOne(_m *MasteryFact) *MasteryFactUpdateOne {
	mutation := newMasteryFactMutation(c.config, OpUpdateOne, withMasteryFact(_m))
	return &MasteryFactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryFactClient) UpdateOneID(id int) *MasteryFactUpdateOne {
	mutation := newMasteryFactMutation(c.config, OpUpdateOne, withMasteryFactID(id))
	return &MasteryFactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryFact.
func (c *MasteryFactClient) Delete() *MasteryFactDelete {
	mutation := newMasteryFactMutation(c.config, OpDelete)
	return &MasteryFactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryFactClient) DeleteOne(_m *MasteryFact) *MasteryFactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryFactClient) DeleteOneID(id int) *MasteryFactDeleteOne {
	builder := c.Delete().Where(masteryfact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryFactDeleteOne{builder}
}

// Query returns a query builder for MasteryFact.
func (c *MasteryFactClient) Query() *MasteryFactQuery {
	return &MasteryFactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryFact},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryFact entity by its id.
func (c *MasteryFactClient) Get(ctx context.Context, id int) (*MasteryFact, error) {
	return c.Query().Where(masteryfact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryFactClient) GetX(ctx context.Context, id int) *MasteryFact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryFactClient) Hooks() []Hook {
	return c.hooks.MasteryFact
}

// Interceptors returns the client interceptors.
func (c *MasteryFactClient) Interceptors() []Interceptor {
	return c.inters.MasteryFact
}

func (c *MasteryFactClient) mutate(ctx context.Context, m *MasteryFactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryFactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryFactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryFactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryFactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryFact mutation op: %q", m.Op())
	}
}

// MistakeRecordClient is a client for the MistakeRecord schema.
type MistakeRecordClient struct {
	config
}

// NewMistakeRecordClient returns a client for the MistakeRecord from the given config.
func NewMistakeRecordClient(c config) *MistakeRecordClient {
	return &MistakeRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mistakerecord.Hooks(f(g(h())))`.
func (c *MistakeRecordClient) Use(hooks ...Hook) {
	c.hooks.MistakeRecord = append(c.hooks.MistakeRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mistakerecord.Intercept(f(g(h())))`.
func (c *MistakeRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MistakeRecord = append(c.inters.MistakeRecord, interceptors...)
}

// Create returns a builder for creating a MistakeRecord entity.
func (c *MistakeRecordClient) Create() *MistakeRecordCreate {
	mutation := newMistakeRecordMutation(c.config, OpCreate)
	return &MistakeRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MistakeRecord entities.
func (c *MistakeRecordClient) CreateBulk(builders ...*MistakeRecordCreate) *MistakeRecordCreateBulk {
	return &MistakeRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MistakeRecordClient) MapCreateBulk(slice any, setFunc func(*MistakeRecordCreate, int)) *MistakeRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MistakeRecordCreateBulk{err: fmt.Errorf("calling to MistakeRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MistakeRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MistakeRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MistakeRecord.
func (c *MistakeRecordClient) Update() *MistakeRecordUpdate {
	mutation := newMistakeRecordMutation(c.config, OpUpdate)
	return &MistakeRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MistakeRecordClient) UpdateOne(_m *MistakeRecord) *MistakeRecordUpdateOne {
	mutation := newMistakeRecordMutation(c.config, OpUpdateOne, withMistakeRecord(_m))
	return &MistakeRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MistakeRecordClient) UpdateOneID(id int) *MistakeRecordUpdateOne {
	mutation := newMistakeRecordMutation(c.config, OpUpdateOne, withMistakeRecordID(id))
	return &MistakeRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MistakeRecord.
func (c *MistakeRecordClient) Delete() *MistakeRecordDelete {
	mutation := newMistakeRecordMutation(c.config, OpDelete)
	return &MistakeRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MistakeRecordClient) DeleteOne(_m *MistakeRecord) *MistakeRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MistakeRecordClient) DeleteOneID(id int) *MistakeRecordDeleteOne {
	builder := c.Delete().Where(mistakerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MistakeRecordDeleteOne{builder}
}

// Query returns a query builder for MistakeRecord.
func (c *MistakeRecordClient) Query() *MistakeRecordQuery {
	return &MistakeRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMistakeRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MistakeRecord entity by its id.
func (c *MistakeRecordClient) Get(ctx context.Context, id int) (*MistakeRecord, error) {
	return c.Query().Where(mistakerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MistakeRecordClient) GetX(ctx context.Context, id int) *MistakeRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MistakeRecordClient) Hooks() []Hook {
	return c.hooks.MistakeRecord
}

// Interceptors returns the client interceptors.
func (c *MistakeRecordClient) Interceptors() []Interceptor {
	return c.inters.MistakeRecord
}

func (c *MistakeRecordClient) mutate(ctx context.Context, m *MistakeRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MistakeRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MistakeRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MistakeRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MistakeRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MistakeRecord mutation op: %q", m.Op())
	}
}

// PathEventClient is a client for the PathEvent schema.
type PathEventClient struct {
	config
}

// NewPathEventClient returns a client for the PathEvent from the given config.
func NewPathEventClient(c config) *PathEventClient {
	return &PathEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pathevent.Hooks(f(g(h())))`.
func (c *PathEventClient) Use(hooks ...Hook) {
	c.hooks.PathEvent = append(c.hooks.PathEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pathevent.Intercept(f(g(h())))`.
func (c *PathEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PathEvent = append(c.inters.PathEvent, interceptors...)
}

// Create returns a builder for creating a PathEvent entity.
func (c *PathEventClient) Create() *PathEventCreate {
	mutation := newPathEventMutation(c.config, OpCreate)
	return &PathEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PathEvent entities.
func (c *PathEventClient) CreateBulk(builders ...*PathEventCreate) *PathEventCreateBulk {
	return &PathEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PathEventClient) MapCreateBulk(slice any, setFunc func(*PathEventCreate, int)) *PathEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PathEventCreateBulk{err: fmt.Errorf("calling to PathEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PathEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PathEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PathEvent.
func (c *PathEventClient) Update() *PathEventUpdate {
	mutation := newPathEventMutation(c.config, OpUpdate)
	return &PathEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PathEventClient) UpdateOne(_m *PathEvent) *PathEventUpdateOne {
	mutation := newPathEventMutation(c.config, OpUpdateOne, withPathEvent(_m))
	return &PathEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PathEventClient) UpdateOneID(id int) *PathEventUpdateOne {
	mutation := newPathEventMutation(c.config, OpUpdateOne, withPathEventID(id))
	return &PathEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PathEvent.
func (c *PathEventClient) Delete() *PathEventDelete {
	mutation := newPathEventMutation(c.config, OpDelete)
	return &PathEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PathEventClient) DeleteOne(_m *PathEvent) *PathEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PathEventClient) DeleteOneID(id int) *PathEventDeleteOne {
	builder := c.Delete().Where(pathevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PathEventDeleteOne{builder}
}

// Query returns a query builder for PathEvent.
func (c *PathEventClient) Query() *PathEventQuery {
	return &PathEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePathEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PathEvent entity by its id.
func (c *PathEventClient) Get(ctx context.Context, id int) (*PathEvent, error) {
	return c.Query().Where(pathevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PathEventClient) GetX(ctx context.Context, id int) *PathEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PathEventClient) Hooks() []Hook {
	return c.hooks.PathEvent
}

// Interceptors returns the client interceptors.
func (c *PathEventClient) Interceptors() []Interceptor {
	return c.inters.PathEvent
}

func (c *PathEventClient) mutate(ctx context.Context, m *PathEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PathEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PathEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PathEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PathEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PathEvent mutation op: %q", m.Op())
	}
}

// PrereqEdgeClient is a client for the PrereqEdge schema.
type PrereqEdgeClient struct {
	config
}

// NewPrereqEdgeClient returns a client for the PrereqEdge from the given config.
func NewPrereqEdgeClient(c config) *PrereqEdgeClient {
	return &PrereqEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prereqedge.Hooks(f(g(h())))`.
func (c *PrereqEdgeClient) Use(hooks ...Hook) {
	c.hooks.PrereqEdge = append(c.hooks.PrereqEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prereqedge.Intercept(f(g(h())))`.
func (c *PrereqEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.PrereqEdge = append(c.inters.PrereqEdge, interceptors...)
}

// Create returns a builder for creating a PrereqEdge entity.
func (c *PrereqEdgeClient) Create() *PrereqEdgeCreate {
	mutation := newPrereqEdgeMutation(c.config, OpCreate)
	return &PrereqEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PrereqEdge entities.
func (c *PrereqEdgeClient) CreateBulk(builders ...*PrereqEdgeCreate) *PrereqEdgeCreateBulk {
	return &PrereqEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PrereqEdgeClient) MapCreateBulk(slice any, setFunc func(*PrereqEdgeCreate, int)) *PrereqEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PrereqEdgeCreateBulk{err: fmt.Errorf("calling to PrereqEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PrereqEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PrereqEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PrereqEdge.
func (c *PrereqEdgeClient) Update() *PrereqEdgeUpdate {
	mutation := newPrereqEdgeMutation(c.config, OpUpdate)
	return &PrereqEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PrereqEdgeClient) UpdateOne(_m *PrereqEdge) *PrereqEdgeUpdateOne {
	mutation := newPrereqEdgeMutation(c.config, OpUpdateOne, withPrereqEdge(_m))
	return &PrereqEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PrereqEdgeClient) UpdateOneID(id int) *PrereqEdgeUpdateOne {
	mutation := newPrereqEdgeMutation(c.config, OpUpdateOne, withPrereqEdgeID(id))
	return &PrereqEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PrereqEdge.
func (c *PrereqEdgeClient) Delete() *PrereqEdgeDelete {
	mutation := newPrereqEdgeMutation(c.config, OpDelete)
	return &PrereqEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PrereqEdgeClient) DeleteOne(_m *PrereqEdge) *PrereqEdgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PrereqEdgeClient) DeleteOneID(id int) *PrereqEdgeDeleteOne {
	builder := c.Delete().Where(prereqedge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PrereqEdgeDeleteOne{builder}
}

// Query returns a query builder for PrereqEdge.
func (c *PrereqEdgeClient) Query() *PrereqEdgeQuery {
	return &PrereqEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrereqEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a PrereqEdge entity by its id.
func (c *PrereqEdgeClient) Get(ctx context.Context, id int) (*PrereqEdge, error) {
	return c.Query().Where(prereqedge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PrereqEdgeClient) GetX(ctx context.Context, id int) *PrereqEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PrereqEdgeClient) Hooks() []Hook {
	return c.hooks.PrereqEdge
}

// Interceptors returns the client interceptors.
func (c *PrereqEdgeClient) Interceptors() []Interceptor {
	return c.inters.PrereqEdge
}

func (c *PrereqEdgeClient) mutate(ctx context.Context, m *PrereqEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PrereqEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PrereqEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PrereqEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PrereqEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PrereqEdge mutation op: %q", m.Op())
	}
}

// ReviewStateClient is a client for the ReviewState schema.
type ReviewStateClient struct {
	config
}

// NewReviewStateClient returns a client for the ReviewState from the given config.
func NewReviewStateClient(c config) *ReviewStateClient {
	return &ReviewStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewstate.Hooks(f(g(h())))`.
func (c *ReviewStateClient) Use(hooks ...Hook) {
	c.hooks.ReviewState = append(c.hooks.ReviewState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewstate.Intercept(f(g(h())))`.
func (c *ReviewStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewState = append(c.inters.ReviewState, interceptors...)
}

// Create returns a builder for creating a ReviewState entity.
func (c *ReviewStateClient) Create() *ReviewStateCreate {
	mutation := newReviewStateMutation(c.config, OpCreate)
	return &ReviewStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewState entities.
func (c *ReviewStateClient) CreateBulk(builders ...*ReviewStateCreate) *ReviewStateCreateBulk {
	return &ReviewStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewStateClient) MapCreateBulk(slice any, setFunc func(*ReviewStateCreate, int)) *ReviewStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewStateCreateBulk{err: fmt.Errorf("calling to ReviewStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewState.
func (c *ReviewStateClient) Update() *ReviewStateUpdate {
	mutation := newReviewStateMutation(c.config, OpUpdate)
	return &ReviewStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewStateClient) UpdateOne(_m *ReviewState) *ReviewStateUpdateOne {
	mutation := newReviewStateMutation(c.config, OpUpdateOne, withReviewState(_m))
	return &ReviewStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewStateClient) UpdateOneID(id int) *ReviewStateUpdateOne {
	mutation := newReviewStateMutation(c.config, OpUpdateOne, withReviewStateID(id))
	return &ReviewStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewState.
func (c *ReviewStateClient) Delete() *ReviewStateDelete {
	mutation := newReviewStateMutation(c.config, OpDelete)
	return &ReviewStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewStateClient) DeleteOne(_m *ReviewState) *ReviewStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewStateClient) DeleteOneID(id int) *ReviewStateDeleteOne {
	builder := c.Delete().Where(reviewstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewStateDeleteOne{builder}
}

// Query returns a query builder for ReviewState.
func (c *ReviewStateClient) Query() *ReviewStateQuery {
	return &ReviewStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewState},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewState entity by its id.
func (c *ReviewStateClient) Get(ctx context.Context, id int) (*ReviewState, error) {
	return c.Query().Where(reviewstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewStateClient) GetX(ctx context.Context, id int) *ReviewState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewStateClient) Hooks() []Hook {
	return c.hooks.ReviewState
}

// Interceptors returns the client interceptors.
func (c *ReviewStateClient) Interceptors() []Interceptor {
	return c.inters.ReviewState
}

func (c *ReviewStateClient) mutate(ctx context.Context, m *ReviewStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewState mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Concept, LLMRequestEvent, MasteryFact, MistakeRecord, PathEvent, PrereqEdge,
		ReviewState []ent.Hook
	}
	inters struct {
		Concept, LLMRequestEvent, MasteryFact, MistakeRecord, PathEvent, PrereqEdge,
		ReviewState []ent.Interceptor
	}
)
