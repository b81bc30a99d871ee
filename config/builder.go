package config

import (
	"fmt"

	"github.com/pathtree/pathtree/router"
)

// BuildRouter validates a route table, resolves its endpoint names
// against the registry, and produces a finalized router ready to
// serve lookups.
func BuildRouter(t *RouteTable, reg *EndpointRegistry, opts ...router.BuilderOption) (*router.Router, error) {
	if reg == nil {
		return nil, fmt.Errorf("endpoint registry is required")
	}
	if err := t.Validate(reg); err != nil {
		return nil, err
	}

	b := router.NewBuilder(opts...)
	for _, route := range t.Routes {
		// Validate already resolved every name and token.
		ep, _ := reg.Lookup(route.Endpoint)
		for _, token := range route.Methods {
			method, _ := router.ParseMethod(token)
			b.Add(route.Path, method, ep)
		}
	}

	return b.Build(), nil
}
