package middleware

import "net/http"

// Middleware decorates an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds the given middleware into one. The first argument becomes
// the outermost wrapper: Chain(a, b)(h) serves a, then b, then h.
func Chain(stack ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		wrapped := h
		for i := len(stack) - 1; i >= 0; i-- {
			wrapped = stack[i](wrapped)
		}
		return wrapped
	}
}
