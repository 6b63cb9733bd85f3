// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cozmiclearning/cozmic/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/cozmiclearning/cozmic/ent/adaptivesession"
	"github.com/cozmiclearning/cozmic/ent/answerevent"
	"github.com/cozmiclearning/cozmic/ent/assessmentresult"
	"github.com/cozmiclearning/cozmic/ent/llmrequestevent"
	"github.com/cozmiclearning/cozmic/ent/questionpool"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdaptiveSession is the client for interacting with the AdaptiveSession builders.
	AdaptiveSession *AdaptiveSessionClient
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// AssessmentResult is the client for interacting with the AssessmentResult builders.
	AssessmentResult *AssessmentResultClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// QuestionPool is the client for interacting with the QuestionPool builders.
	QuestionPool *QuestionPoolClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdaptiveSession = NewAdaptiveSessionClient(c.config)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.AssessmentResult = NewAssessmentResultClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.QuestionPool = NewQuestionPoolClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AdaptiveSession:  NewAdaptiveSessionClient(cfg),
		AnswerEvent:      NewAnswerEventClient(cfg),
		AssessmentResult: NewAssessmentResultClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		QuestionPool:     NewQuestionPoolClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AdaptiveSession:  NewAdaptiveSessionClient(cfg),
		AnswerEvent:      NewAnswerEventClient(cfg),
		AssessmentResult: NewAssessmentResultClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		QuestionPool:     NewQuestionPoolClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdaptiveSession.
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
	c.AdaptiveSession.Use(hooks...)
	c.AnswerEvent.Use(hooks...)
	c.AssessmentResult.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.QuestionPool.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AdaptiveSession.Intercept(interceptors...)
	c.AnswerEvent.Intercept(interceptors...)
	c.AssessmentResult.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.QuestionPool.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdaptiveSessionMutation:
		return c.AdaptiveSession.mutate(ctx, m)
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *AssessmentResultMutation:
		return c.AssessmentResult.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuestionPoolMutation:
		return c.QuestionPool.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdaptiveSessionClient is a client for the AdaptiveSession schema.
type AdaptiveSessionClient struct {
	config
}

// NewAdaptiveSessionClient returns a client for the AdaptiveSession from the given config.
func NewAdaptiveSessionClient(c config) *AdaptiveSessionClient {
	return &AdaptiveSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adaptivesession.Hooks(f(g(h())))`.
func (c *AdaptiveSessionClient) Use(hooks ...Hook) {
	c.hooks.AdaptiveSession = append(c.hooks.AdaptiveSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adaptivesession.Intercept(f(g(h())))`.
func (c *AdaptiveSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdaptiveSession = append(c.inters.AdaptiveSession, interceptors...)
}

// Create returns a builder for creating a AdaptiveSession entity.
func (c *AdaptiveSessionClient) Create() *AdaptiveSessionCreate {
	mutation := newAdaptiveSessionMutation(c.config, OpCreate)
	return &AdaptiveSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdaptiveSession entities.
func (c *AdaptiveSessionClient) CreateBulk(builders ...*AdaptiveSessionCreate) *AdaptiveSessionCreateBulk {
	return &AdaptiveSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdaptiveSessionClient) MapCreateBulk(slice any, setFunc func(*AdaptiveSessionCreate, int)) *AdaptiveSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdaptiveSessionCreateBulk{err: fmt.Errorf("calling to AdaptiveSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdaptiveSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdaptiveSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdaptiveSession.
func (c *AdaptiveSessionClient) Update() *AdaptiveSessionUpdate {
	mutation := newAdaptiveSessionMutation(c.config, OpUpdate)
	return &AdaptiveSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdaptiveSessionClient) UpdateOne(_m *AdaptiveSession) *AdaptiveSessionUpdateOne {
	mutation := newAdaptiveSessionMutation(c.config, OpUpdateOne, withAdaptiveSession(_m))
	return &AdaptiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdaptiveSessionClient) UpdateOneID(id int) *AdaptiveSessionUpdateOne {
	mutation := newAdaptiveSessionMutation(c.config, OpUpdateOne, withAdaptiveSessionID(id))
	return &AdaptiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdaptiveSession.
func (c *AdaptiveSessionClient) Delete() *AdaptiveSessionDelete {
	mutation := newAdaptiveSessionMutation(c.config, OpDelete)
	return &AdaptiveSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdaptiveSessionClient) DeleteOne(_m *AdaptiveSession) *AdaptiveSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdaptiveSessionClient) DeleteOneID(id int) *AdaptiveSessionDeleteOne {
	builder := c.Delete().Where(adaptivesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdaptiveSessionDeleteOne{builder}
}

// Query returns a query builder for AdaptiveSession.
func (c *AdaptiveSessionClient) Query() *AdaptiveSessionQuery {
	return &AdaptiveSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdaptiveSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AdaptiveSession entity by its id.
func (c *AdaptiveSessionClient) Get(ctx context.Context, id int) (*AdaptiveSession, error) {
	return c.Query().Where(adaptivesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdaptiveSessionClient) GetX(ctx context.Context, id int) *AdaptiveSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdaptiveSessionClient) Hooks() []Hook {
	return c.hooks.AdaptiveSession
}

// Interceptors returns the client interceptors.
func (c *AdaptiveSessionClient) Interceptors() []Interceptor {
	return c.inters.AdaptiveSession
}

func (c *AdaptiveSessionClient) mutate(ctx context.Context, m *AdaptiveSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdaptiveSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdaptiveSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdaptiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdaptiveSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdaptiveSession mutation op: %q", m.Op())
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// AssessmentResultClient is a client for the AssessmentResult schema.
type AssessmentResultClient struct {
	config
}

// NewAssessmentResultClient returns a client for the AssessmentResult from the given config.
func NewAssessmentResultClient(c config) *AssessmentResultClient {
	return &AssessmentResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentresult.Hooks(f(g(h())))`.
func (c *AssessmentResultClient) Use(hooks ...Hook) {
	c.hooks.AssessmentResult = append(c.hooks.AssessmentResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentresult.Intercept(f(g(h())))`.
func (c *AssessmentResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentResult = append(c.inters.AssessmentResult, interceptors...)
}

// Create returns a builder for creating a AssessmentResult entity.
func (c *AssessmentResultClient) Create() *AssessmentResultCreate {
	mutation := newAssessmentResultMutation(c.config, OpCreate)
	return &AssessmentResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentResult entities.
func (c *AssessmentResultClient) CreateBulk(builders ...*AssessmentResultCreate) *AssessmentResultCreateBulk {
	return &AssessmentResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentResultClient) MapCreateBulk(slice any, setFunc func(*AssessmentResultCreate, int)) *AssessmentResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentResultCreateBulk{err: fmt.Errorf("calling to AssessmentResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentResult.
func (c *AssessmentResultClient) Update() *AssessmentResultUpdate {
	mutation := newAssessmentResultMutation(c.config, OpUpdate)
	return &AssessmentResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentResultClient) UpdateOne(_m *AssessmentResult) *AssessmentResultUpdateOne {
	mutation := newAssessmentResultMutation(c.config, OpUpdateOne, withAssessmentResult(_m))
	return &AssessmentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentResultClient) UpdateOneID(id int) *AssessmentResultUpdateOne {
	mutation := newAssessmentResultMutation(c.config, OpUpdateOne, withAssessmentResultID(id))
	return &AssessmentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentResult.
func (c *AssessmentResultClient) Delete() *AssessmentResultDelete {
	mutation := newAssessmentResultMutation(c.config, OpDelete)
	return &AssessmentResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentResultClient) DeleteOne(_m *AssessmentResult) *AssessmentResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentResultClient) DeleteOneID(id int) *AssessmentResultDeleteOne {
	builder := c.Delete().Where(assessmentresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentResultDeleteOne{builder}
}

// Query returns a query builder for AssessmentResult.
func (c *AssessmentResultClient) Query() *AssessmentResultQuery {
	return &AssessmentResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentResult},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentResult entity by its id.
func (c *AssessmentResultClient) Get(ctx context.Context, id int) (*AssessmentResult, error) {
	return c.Query().Where(assessmentresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentResultClient) GetX(ctx context.Context, id int) *AssessmentResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentResultClient) Hooks() []Hook {
	return c.hooks.AssessmentResult
}

// Interceptors returns the client interceptors.
func (c *AssessmentResultClient) Interceptors() []Interceptor {
	return c.inters.AssessmentResult
}

func (c *AssessmentResultClient) mutate(ctx context.Context, m *AssessmentResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentResult mutation op: %q", m.Op())
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

// QuestionPoolClient is a client for the QuestionPool schema.
type QuestionPoolClient struct {
	config
}

// NewQuestionPoolClient returns a client for the QuestionPool from the given config.
func NewQuestionPoolClient(c config) *QuestionPoolClient {
	return &QuestionPoolClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionpool.Hooks(f(g(h())))`.
func (c *QuestionPoolClient) Use(hooks ...Hook) {
	c.hooks.QuestionPool = append(c.hooks.QuestionPool, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionpool.Intercept(f(g(h())))`.
func (c *QuestionPoolClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionPool = append(c.inters.QuestionPool, interceptors...)
}

// Create returns a builder for creating a QuestionPool entity.
func (c *QuestionPoolClient) Create() *QuestionPoolCreate {
	mutation := newQuestionPoolMutation(c.config, OpCreate)
	return &QuestionPoolCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionPool entities.
func (c *QuestionPoolClient) CreateBulk(builders ...*QuestionPoolCreate) *QuestionPoolCreateBulk {
	return &QuestionPoolCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionPoolClient) MapCreateBulk(slice any, setFunc func(*QuestionPoolCreate, int)) *QuestionPoolCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionPoolCreateBulk{err: fmt.Errorf("calling to QuestionPoolClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionPoolCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionPoolCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionPool.
func (c *QuestionPoolClient) Update() *QuestionPoolUpdate {
	mutation := newQuestionPoolMutation(c.config, OpUpdate)
	return &QuestionPoolUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionPoolClient) UpdateOne(_m *QuestionPool) *QuestionPoolUpdateOne {
	mutation := newQuestionPoolMutation(c.config, OpUpdateOne, withQuestionPool(_m))
	return &QuestionPoolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionPoolClient) UpdateOneID(id int) *QuestionPoolUpdateOne {
	mutation := newQuestionPoolMutation(c.config, OpUpdateOne, withQuestionPoolID(id))
	return &QuestionPoolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionPool.
func (c *QuestionPoolClient) Delete() *QuestionPoolDelete {
	mutation := newQuestionPoolMutation(c.config, OpDelete)
	return &QuestionPoolDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionPoolClient) DeleteOne(_m *QuestionPool) *QuestionPoolDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionPoolClient) DeleteOneID(id int) *QuestionPoolDeleteOne {
	builder := c.Delete().Where(questionpool.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionPoolDeleteOne{builder}
}

// Query returns a query builder for QuestionPool.
func (c *QuestionPoolClient) Query() *QuestionPoolQuery {
	return &QuestionPoolQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionPool},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionPool entity by its id.
func (c *QuestionPoolClient) Get(ctx context.Context, id int) (*QuestionPool, error) {
	return c.Query().Where(questionpool.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionPoolClient) GetX(ctx context.Context, id int) *QuestionPool {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionPoolClient) Hooks() []Hook {
	return c.hooks.QuestionPool
}

// Interceptors returns the client interceptors.
func (c *QuestionPoolClient) Interceptors() []Interceptor {
	return c.inters.QuestionPool
}

func (c *QuestionPoolClient) mutate(ctx context.Context, m *QuestionPoolMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionPoolCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionPoolUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionPoolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionPoolDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionPool mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdaptiveSession, AnswerEvent, AssessmentResult, LLMRequestEvent,
		QuestionPool []ent.Hook
	}
	inters struct {
		AdaptiveSession, AnswerEvent, AssessmentResult, LLMRequestEvent,
		QuestionPool []ent.Interceptor
	}
)
