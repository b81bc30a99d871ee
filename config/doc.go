// Package config loads declarative route tables and turns them into
// routers.
//
// A route table is a YAML document listing path templates, the HTTP
// methods each one serves, and the name of the endpoint that handles
// them:
//
//	routes:
//	  - path: /users/:id
//	    methods: [GET, PUT]
//	    endpoint: users.show
//	  - path: /static/*filepath
//	    methods: [GET]
//	    endpoint: static.files
//
// Endpoint names are resolved through an EndpointRegistry populated
// by the application. BuildRouter validates the table (well-formed
// templates, known method tokens, resolvable endpoint names, no
// duplicate path+method pairs) and produces a finalized
// router.Router.
//
// Environment variable references (${VAR}, ${VAR:-default}) are
// substituted while loading. A Watcher can keep rebuilding the router
// as the file changes; each rebuild delivers a brand-new immutable
// router to the callback.
package config
