package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pathtree/pathtree/router"
)

// EndpointRegistry maps the endpoint names used in route tables to
// the endpoint implementations supplied by the application.
type EndpointRegistry struct {
	mu        sync.RWMutex
	endpoints map[string]router.Endpoint
}

// NewEndpointRegistry creates an empty registry.
func NewEndpointRegistry() *EndpointRegistry {
	return &EndpointRegistry{
		endpoints: make(map[string]router.Endpoint),
	}
}

// Register binds a name to an endpoint. Registering an already-bound
// name is an error; endpoint names are the stable identity the route
// table refers to.
func (r *EndpointRegistry) Register(name string, ep router.Endpoint) error {
	if name == "" {
		return fmt.Errorf("endpoint name must not be empty")
	}
	if ep == nil {
		return fmt.Errorf("endpoint %q must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.endpoints[name]; exists {
		return fmt.Errorf("duplicate endpoint name: %s", name)
	}
	r.endpoints[name] = ep
	return nil
}

// Lookup returns the endpoint bound to a name.
func (r *EndpointRegistry) Lookup(name string) (router.Endpoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ep, ok := r.endpoints[name]
	return ep, ok
}

// Names returns all registered endpoint names, sorted.
func (r *EndpointRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.endpoints))
	for name := range r.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
