package middleware

import (
	"crypto/subtle"
	"net/http"
)

// SharedSecret guards machine-to-machine endpoints (the sweep) behind a
// constant-time comparison of the X-Sweep-Secret header. An empty
// configured secret closes the endpoint entirely.
func SharedSecret(header, secret string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(header)
			if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
