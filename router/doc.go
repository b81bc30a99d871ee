// Package router selects the endpoint for an incoming request's path
// and HTTP method.
//
// The router keeps one path-matching engine per method plus the set
// of every registered path template. Registration happens on a
// Builder; calling Build finalizes the table and back-fills default
// endpoints before any traffic is served:
//
//   - paths without an OPTIONS endpoint get a synthesized 204
//     responder whose Allow header lists the methods the path
//     supports;
//   - every other uncovered method gets a synthesized 405 responder
//     with the same Allow header, except HEAD, which instead falls
//     back to GET at lookup time.
//
// The resulting Router is immutable: Route never mutates state, so it
// may be called from any number of goroutines without locking. A
// lookup always produces a Selection; when nothing matches at all it
// carries the built-in 404 endpoint.
//
// # Usage
//
//	b := router.NewBuilder()
//	b.Add("/users/:id", router.MethodGet, showUser)
//	b.Add("/users", router.MethodPost, createUser)
//	r := b.Build()
//
//	sel := r.Route("/users/42", router.MethodGet)
//	resp, err := sel.Endpoint.Serve(ctx, req, sel.Params)
package router
