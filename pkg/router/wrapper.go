package router

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		ctx := xcontext.WithHTTPRequest(router.ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		ctx = handleRequest(ctx, router, method, handler)

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}

func handleRequest[Request, Response any](
	ctx context.Context,
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) context.Context {
	var err error
	if ctx, err = runMiddlewares(ctx, router.befores); err != nil {
		ctx = xcontext.WithError(ctx, err)
		writeResponse(ctx)
		return ctx
	}

	var req Request
	switch method {
	case http.MethodGet:
		err = bindQuery(xcontext.HTTPRequest(ctx).URL.Query(), &req)
	case http.MethodPost:
		err = json.NewDecoder(xcontext.HTTPRequest(ctx).Body).Decode(&req)
	}
	if err != nil {
		ctx = xcontext.WithError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
		writeResponse(ctx)
		return ctx
	}

	resp, err := handler(ctx, &req)
	if err != nil {
		ctx = xcontext.WithError(ctx, err)
	} else {
		ctx = xcontext.WithResponse(ctx, resp)
	}

	if afterCtx, err := runMiddlewares(ctx, router.afters); err != nil {
		ctx = xcontext.WithError(afterCtx, err)
	} else {
		ctx = afterCtx
	}

	writeResponse(ctx)
	return ctx
}

func runMiddlewares(ctx context.Context, middlewares []MiddlewareFunc) (context.Context, error) {
	for _, middleware := range middlewares {
		newCtx, err := middleware(ctx)
		if err != nil {
			return ctx, err
		}

		if newCtx != nil {
			ctx = newCtx
		}
	}

	return ctx, nil
}
