package server

import "net/http"

var _ Router = (*ReadRouter)(nil)

// ReadRouter is a [Router] whose routes only answer GET and HEAD.
//
// Every route is wrapped with [ReadOnly] first, then the shared middleware in the order it was added.
type ReadRouter struct {
	mux   *http.ServeMux
	chain []Middleware
}

// NewReadRouter creates a [ReadRouter] with middleware applied to every route registered afterwards.
func NewReadRouter(middleware ...Middleware) *ReadRouter {
	return &ReadRouter{mux: http.NewServeMux(), chain: middleware}
}

// Use appends middleware; routes registered earlier keep their chain.
func (r *ReadRouter) Use(middleware ...Middleware) {
	r.chain = append(r.chain, middleware...)
}

// Get serves handler on path for GET and HEAD.
func (r *ReadRouter) Get(path string, handler http.Handler) {
	r.mux.Handle(path, r.wrap(handler))
}

// Mount serves handler on each of its [Handler.Routes].
func (r *ReadRouter) Mount(handler Handler) {
	wrapped := r.wrap(handler)
	for _, route := range handler.Routes() {
		r.mux.Handle(route, wrapped)
	}
}

func (r *ReadRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *ReadRouter) wrap(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(r.chain) - 1; i >= 0; i-- {
		wrapped = r.chain[i](wrapped)
	}
	return ReadOnly(wrapped)
}
