package router

import (
	"context"
	"net/http"

	"github.com/pathtree/pathtree/routing"
)

// Response is the routing-visible shape of an HTTP response. The
// dispatch layer that invokes endpoints decides how to write it to
// the wire; the router only produces Response values for the
// endpoints it synthesizes itself.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Endpoint handles a request that routing has matched. The router
// stores and returns endpoints without ever inspecting them; the only
// endpoints it constructs are the synthetic OPTIONS, 405, and 404
// responders.
type Endpoint interface {
	Serve(ctx context.Context, req *http.Request, params routing.Params) (*Response, error)
}

// EndpointFunc adapts an ordinary function to the Endpoint interface.
type EndpointFunc func(ctx context.Context, req *http.Request, params routing.Params) (*Response, error)

// Serve calls f.
func (f EndpointFunc) Serve(ctx context.Context, req *http.Request, params routing.Params) (*Response, error) {
	return f(ctx, req, params)
}

// staticEndpoint serves a fixed status code with an optional Allow
// header and an empty body. One value type covers all three synthetic
// responses; only the status and header contents differ.
type staticEndpoint struct {
	status int
	allow  string
}

func (e staticEndpoint) Serve(context.Context, *http.Request, routing.Params) (*Response, error) {
	header := make(http.Header)
	if e.allow != "" {
		header.Set("Allow", e.allow)
	}
	return &Response{Status: e.status, Header: header}, nil
}

// notFoundEndpoint answers every lookup that matched nothing.
var notFoundEndpoint Endpoint = staticEndpoint{status: http.StatusNotFound}
