package config

// RouteTable is the root of a declarative route configuration
// document. It names endpoints rather than embedding them; the
// application supplies the implementations through an
// EndpointRegistry when the table is turned into a router.
type RouteTable struct {
	Routes []Route `yaml:"routes"`
}

// Route binds a path template to a named endpoint for a set of HTTP
// methods.
type Route struct {
	// Path is the template, e.g. "/users/:id" or "/static/*filepath".
	Path string `yaml:"path"`

	// Methods lists the HTTP method tokens the endpoint serves.
	Methods []string `yaml:"methods"`

	// Endpoint is the registry name of the endpoint implementation.
	Endpoint string `yaml:"endpoint"`
}
