package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/nashirhq/nashir-backend/internal/config"
)

// CORS returns middleware serving the Cross-Origin Resource Sharing
// contract for the configured origins. Preflight OPTIONS requests are
// answered with 204 and never reach the handlers.
func CORS(cfg config.CORSConfig) Middleware {
	raw := strings.Split(cfg.AllowedOrigins, ",")
	allowed := make([]string, 0, len(raw))
	for _, o := range raw {
		allowed = append(allowed, strings.TrimSpace(o))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); originAllowed(origin, allowed) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return false
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
