package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/config"
	"github.com/nashirhq/nashir-backend/internal/transport/middleware"
)

// tokenValidator validates access tokens for the auth middleware.
type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Handlers groups the REST handlers the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Topics   *TopicHandler
	Publish  *PublishHandler
	Schedule *ScheduleHandler
	Social   *SocialHandler
}

// NewRouter assembles all REST routes with the middleware stack. The sweep
// endpoint sits outside the user-auth surface and is guarded by the shared
// sweep secret instead.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	validator tokenValidator,
	limiter *middleware.RateLimiter,
	h Handlers,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/topics", h.Topics.Create)
	mux.HandleFunc("GET /api/topics", h.Topics.List)
	mux.HandleFunc("GET /api/topics/{id}", h.Topics.Get)
	mux.HandleFunc("GET /api/topics/{id}/drafts", h.Topics.ListDrafts)

	mux.HandleFunc("POST /api/topics/{id}/generate-prompt", h.Topics.GeneratePrompt)
	mux.HandleFunc("POST /api/topics/{id}/approve", h.Topics.Approve)
	mux.HandleFunc("POST /api/topics/{id}/revert", h.Topics.Revert)
	mux.HandleFunc("POST /api/topics/{id}/generate-article", h.Topics.GenerateArticle)
	mux.HandleFunc("POST /api/topics/{id}/generate-linkedin", h.Topics.GenerateLinkedIn)
	mux.HandleFunc("POST /api/topics/{id}/lock", h.Topics.Lock)
	mux.HandleFunc("DELETE /api/topics/{id}/lock", h.Topics.Unlock)
	mux.HandleFunc("DELETE /api/topics/{id}/lock/force", h.Topics.ForceUnlock)

	mux.HandleFunc("POST /api/topics/{id}/publish", h.Publish.PublishArticle)
	mux.HandleFunc("POST /api/topics/{id}/publish-linkedin", h.Publish.PublishLinkedIn)

	mux.HandleFunc("POST /api/jobs", h.Schedule.Schedule)
	mux.HandleFunc("GET /api/jobs", h.Schedule.ListJobs)
	mux.HandleFunc("DELETE /api/drafts/{id}/jobs", h.Schedule.Cancel)

	mux.HandleFunc("POST /api/linkedin/connect", h.Social.Connect)
	mux.HandleFunc("GET /api/linkedin/callback", h.Social.Callback)
	mux.HandleFunc("GET /api/linkedin/status", h.Social.Status)
	mux.HandleFunc("DELETE /api/linkedin/connection", h.Social.Disconnect)

	mux.Handle("POST /internal/sweep",
		middleware.SharedSecret("X-Sweep-Secret", cfg.Scheduler.SweepSecret)(
			http.HandlerFunc(h.Schedule.Sweep)))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(validator),
	)(mux)
}
