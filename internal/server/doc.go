// Package server provides HTTP routing, middleware, and a read-only library API.
//
// # Router Infrastructure
//
// The [Router] interface registers read-only routes with middleware support.
//
// [ReadRouter] uses [http.ServeMux] internally. Each route is wrapped in [ReadOnly], then in the shared
// [Middleware] with the first added outermost, so every other method gets a 405 with an Allow header.
//
// # Library Handler
//
// [LibraryHandler] serves the library file as JSON. The file is loaded on every request,
// so volumes appended by a concurrent fetch show up without a restart.
//
//	GET /health          → {"status":"ok"}
//	GET /volumes         → the whole library
//	GET /volumes/{isbn}  → a single volume (hyphens are ignored), 404 when absent
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
