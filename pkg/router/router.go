package router

import (
	"context"
	"net/http"

	"github.com/rs/cors"
	"github.com/streamdrop-lab/backend/config"
	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/pkg/authenticator"
	"github.com/streamdrop-lab/backend/pkg/logger"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before or after the handler. It may return a derived
// context to replace the request context, or nil to keep the current one.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, in registration order.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux
	ctx context.Context

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger)
	ctx = xcontext.WithDB(ctx, db)
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration.Duration))

	return &Router{mux: http.NewServeMux(), ctx: ctx}
}

// Branch returns a router sharing the same mux and base context but with its
// own middleware and closer chains. Routes registered on the branch only run
// the branch's chains.
func (r *Router) Branch() *Router {
	clone := &Router{mux: r.mux, ctx: r.ctx}
	clone.befores = append(clone.befores, r.befores...)
	clone.afters = append(clone.afters, r.afters...)
	clone.closers = append(clone.closers, r.closers...)
	return clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r.Branch(), http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r.Branch(), http.MethodPost, handler))
}

func (r *Router) Static(pattern, root string) {
	r.mux.Handle(pattern, http.FileServer(http.Dir(root)))
}

// Handle mounts a raw http.Handler, bypassing the request lifecycle.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) Handler() http.Handler {
	return cors.AllowAll().Handler(r.mux)
}
