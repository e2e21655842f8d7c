package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	funcschema "github.com/funcschema/go-funcschema"
	"github.com/funcschema/go-funcschema/schema"
)

// Registry keeps registered functions and their derived schema documents.
// All operations are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]entry

	logger  *slog.Logger
	tracer  trace.Tracer
	meter   metric.Meter
	metrics *otelMetrics
}

// entry is one registered function with its pre-built schema documents.
type entry struct {
	instanceID string
	fn         funcschema.Function
	documents  map[schema.Dialect]schema.Document
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for registry operations.
// When unset, no spans are created.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Registry) {
		r.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter for registry counters.
// When unset, no metrics are recorded.
func WithMeter(meter metric.Meter) Option {
	return func(r *Registry) {
		r.meter = meter
	}
}

// New creates an empty registry. Instrument creation failures are logged
// and disable metrics rather than failing construction.
func New(opts ...Option) *Registry {
	r := &Registry{entries: make(map[string]entry)}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.meter != nil {
		metrics, err := newOTelMetrics(r.meter)
		if err != nil {
			r.logger.Warn("metric instruments unavailable", "error", err)
		} else {
			r.metrics = metrics
		}
	}
	return r
}

// Register adds a function and pre-builds its schema documents for both
// dialects. Returns a unique instance ID for the registration.
//
// Registering a name that already exists returns an error wrapping
// funcschema.ErrDuplicateFunction.
func (r *Registry) Register(ctx context.Context, fn funcschema.Function) (string, error) {
	if r.tracer != nil {
		var span trace.Span
		ctx, span = r.tracer.Start(ctx, "registry.register")
		defer span.End()
		span.SetAttributes(
			attribute.String("function.name", fn.Name),
			attribute.Int("function.params", len(fn.Params)),
		)
	}

	if fn.Name == "" {
		return "", fmt.Errorf("register: function name is required")
	}

	documents := map[schema.Dialect]schema.Document{
		schema.DialectOpenAI: funcschema.GetFunctionSchema(fn),
		schema.DialectClaude: funcschema.GetFunctionSchema(fn, funcschema.WithDialect(schema.DialectClaude)),
	}

	r.mu.Lock()
	if _, exists := r.entries[fn.Name]; exists {
		r.mu.Unlock()
		return "", fmt.Errorf("register %q: %w", fn.Name, funcschema.ErrDuplicateFunction)
	}
	instanceID := uuid.NewString()
	r.entries[fn.Name] = entry{instanceID: instanceID, fn: fn, documents: documents}
	r.order = append(r.order, fn.Name)
	r.mu.Unlock()

	r.logger.Info("function registered",
		"name", fn.Name,
		"instance_id", instanceID,
		"params", len(fn.Params))

	if r.metrics != nil {
		r.metrics.registrations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("function", fn.Name)))
	}

	return instanceID, nil
}

// Deregister removes a function by name. Removing an unknown name returns an
// error wrapping funcschema.ErrFunctionNotFound.
func (r *Registry) Deregister(ctx context.Context, name string) error {
	r.mu.Lock()
	if _, exists := r.entries[name]; !exists {
		r.mu.Unlock()
		return fmt.Errorf("deregister %q: %w", name, funcschema.ErrFunctionNotFound)
	}
	delete(r.entries, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	r.logger.Info("function deregistered", "name", name)
	return nil
}

// Lookup returns the registered function by name.
func (r *Registry) Lookup(name string) (funcschema.Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return funcschema.Function{}, false
	}
	return e.fn, true
}

// Schema returns the schema document for a registered function in the given
// dialect. Documents for the two known dialects are pre-built at
// registration; any other dialect is derived on the fly.
func (r *Registry) Schema(ctx context.Context, name string, dialect schema.Dialect) (schema.Document, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return schema.Document{}, fmt.Errorf("schema %q: %w", name, funcschema.ErrFunctionNotFound)
	}

	if r.metrics != nil {
		r.metrics.lookups.Add(ctx, 1, metric.WithAttributes(
			attribute.String("function", name),
			attribute.String("dialect", string(dialect))))
	}

	if doc, ok := e.documents[dialect]; ok {
		return doc, nil
	}
	return funcschema.GetFunctionSchema(e.fn, funcschema.WithDialect(dialect)), nil
}

// Schemas returns the schema documents of all registered functions in the
// given dialect, in registration order.
func (r *Registry) Schemas(ctx context.Context, dialect schema.Dialect) []schema.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schema.Document, 0, len(r.order))
	for _, name := range r.order {
		e := r.entries[name]
		if doc, ok := e.documents[dialect]; ok {
			out = append(out, doc)
			continue
		}
		out = append(out, funcschema.GetFunctionSchema(e.fn, funcschema.WithDialect(dialect)))
	}
	return out
}

// Names returns the registered function names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of registered functions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
