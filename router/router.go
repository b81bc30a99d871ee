package router

import (
	"net/http"
	"sort"
	"strings"

	"github.com/pathtree/pathtree/observability"
	"github.com/pathtree/pathtree/routing"
)

// PathEngine is the contract the router requires from a path-matching
// engine. routing.Tree is the default implementation; any conformant
// matcher with the same precedence guarantees can be substituted via
// WithEngine.
type PathEngine interface {
	Add(pattern string, ep Endpoint)
	Recognize(path string) (routing.Match[Endpoint], bool)
	Len() int
}

// Builder accumulates route registrations; it holds one path engine
// per HTTP method plus the set of every registered path template.
// Build consumes the builder and produces the immutable Router that
// serves lookups. Registration is single-threaded.
type Builder struct {
	engines   [methodCount]PathEngine
	paths     map[string]struct{}
	newEngine func() PathEngine
	logger    observability.Logger
	built     bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used during registration and build.
func WithLogger(logger observability.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithEngine sets the factory for per-method path engines.
func WithEngine(factory func() PathEngine) BuilderOption {
	return func(b *Builder) {
		b.newEngine = factory
	}
}

// NewBuilder returns an empty builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		paths:     make(map[string]struct{}),
		newEngine: func() PathEngine { return routing.NewTree[Endpoint]() },
		logger:    observability.NopLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add registers an endpoint for a path template and method, creating
// the method's engine on first use. Re-adding an identical
// (path, method) pair replaces the earlier endpoint; the config layer
// rejects such duplicates before they reach the builder.
func (b *Builder) Add(path string, method Method, ep Endpoint) {
	if b.built {
		panic("pathtree: Add called after Build")
	}
	b.engine(method).Add(path, ep)
	b.paths[path] = struct{}{}
	b.logger.Debug("route registered",
		observability.String("method", method.String()),
		observability.String("path", path),
	)
}

// engine returns the path engine for a method, creating it lazily.
func (b *Builder) engine(m Method) PathEngine {
	if b.engines[m] == nil {
		b.engines[m] = b.newEngine()
	}
	return b.engines[m]
}

// Build finalizes the route table and returns the router. For every
// registered path it probes which methods have an endpoint, then
// back-fills the gaps: a 204 OPTIONS endpoint whose Allow header
// lists the supported methods, and a 405 endpoint for every other
// uncovered method. HEAD is left uncovered on purpose so that lookups
// fall through to GET. Build never replaces a caller-registered
// endpoint, and it can run only once; the builder is spent afterward.
func (b *Builder) Build() *Router {
	if b.built {
		panic("pathtree: Build called twice")
	}
	b.built = true

	// Deterministic synthesis order.
	paths := make([]string, 0, len(b.paths))
	for path := range b.paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		supported := b.supportedMethods(path)

		if !supported[MethodOptions] {
			b.engine(MethodOptions).Add(path, staticEndpoint{
				status: http.StatusNoContent,
				allow:  allowHeader(supported),
			})
			supported[MethodOptions] = true
		}

		// The 405 responses advertise OPTIONS as well, since the
		// path now answers it.
		allow := allowHeader(supported)
		for m := Method(0); int(m) < methodCount; m++ {
			if supported[m] || m == MethodHead {
				continue
			}
			b.engine(m).Add(path, staticEndpoint{
				status: http.StatusMethodNotAllowed,
				allow:  allow,
			})
		}

		b.logger.Debug("default endpoints synthesized",
			observability.String("path", path),
			observability.String("allow", allow),
		)
	}

	metrics := getRouterMetrics()
	metrics.paths.Set(float64(len(paths)))

	b.logger.Info("route table finalized",
		observability.Int("paths", len(paths)),
	)

	return &Router{engines: b.engines, metrics: metrics}
}

// supportedMethods probes every method's engine with the path and
// reports which ones already have an endpoint for it.
func (b *Builder) supportedMethods(path string) [methodCount]bool {
	var supported [methodCount]bool
	for m := Method(0); int(m) < methodCount; m++ {
		eng := b.engines[m]
		if eng == nil {
			continue
		}
		if _, ok := eng.Recognize(path); ok {
			supported[m] = true
		}
	}
	return supported
}

// allowHeader renders a supported-methods set as an Allow header
// value, comma-space joined in method declaration order.
func allowHeader(supported [methodCount]bool) string {
	tokens := make([]string, 0, methodCount)
	for m := Method(0); int(m) < methodCount; m++ {
		if supported[m] {
			tokens = append(tokens, m.String())
		}
	}
	return strings.Join(tokens, ", ")
}

// Router is the immutable routing table produced by Build. Lookups
// perform no mutation and no locking, so a Router is safe for
// unbounded concurrent use.
type Router struct {
	engines [methodCount]PathEngine
	metrics *routerMetrics
}

// Selection is the outcome of a lookup: the endpoint to invoke plus
// the parameter bindings extracted from the path. Every lookup yields
// a Selection; an unroutable request gets the built-in 404 endpoint.
type Selection struct {
	Endpoint Endpoint
	Params   routing.Params
}

// Route selects the endpoint for a request path and method. A HEAD
// request whose path has no HEAD endpoint is retried once as GET, so
// it inherits whatever GET would produce, including a synthesized
// 405. The substitution happens exactly once.
func (r *Router) Route(path string, method Method) Selection {
	if sel, ok := r.lookup(path, method); ok {
		r.metrics.lookups.WithLabelValues(outcomeMatched).Inc()
		return sel
	}

	if method == MethodHead {
		if sel, ok := r.lookup(path, MethodGet); ok {
			r.metrics.lookups.WithLabelValues(outcomeHeadFallback).Inc()
			return sel
		}
	}

	r.metrics.lookups.WithLabelValues(outcomeNotFound).Inc()
	return Selection{Endpoint: notFoundEndpoint, Params: routing.Params{}}
}

// lookup probes a single method's engine.
func (r *Router) lookup(path string, method Method) (Selection, bool) {
	if int(method) >= methodCount {
		return Selection{}, false
	}
	eng := r.engines[method]
	if eng == nil {
		return Selection{}, false
	}
	match, ok := eng.Recognize(path)
	if !ok {
		return Selection{}, false
	}
	return Selection{Endpoint: match.Value, Params: match.Params}, true
}
