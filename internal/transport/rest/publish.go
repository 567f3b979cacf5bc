package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/service/publish"
	"github.com/nashirhq/nashir-backend/internal/service/social"
)

// sitePublishService defines the minimal interface for website publication.
type sitePublishService interface {
	PublishArticle(ctx context.Context, topicID uuid.UUID) (*publish.Result, error)
}

// linkedInPublishService defines the minimal interface for LinkedIn delivery.
type linkedInPublishService interface {
	PublishLinkedIn(ctx context.Context, topicID uuid.UUID) (*social.Result, error)
}

// PublishHandler serves the immediate-publication REST endpoints.
type PublishHandler struct {
	site     sitePublishService
	linkedin linkedInPublishService
	log      *slog.Logger
}

// NewPublishHandler creates a PublishHandler. linkedin may be nil when
// LinkedIn publishing is not configured.
func NewPublishHandler(site sitePublishService, linkedin linkedInPublishService, logger *slog.Logger) *PublishHandler {
	return &PublishHandler{site: site, linkedin: linkedin, log: logger.With("handler", "publish")}
}

type publishResponse struct {
	Topic   topicResponse `json:"topic"`
	URLEn   string        `json:"urlEn"`
	URLAr   string        `json:"urlAr"`
	Warning string        `json:"warning,omitempty"`
}

type linkedInPublishResponse struct {
	Topic       topicResponse `json:"topic"`
	PermalinkEn string        `json:"permalinkEn"`
	PermalinkAr string        `json:"permalinkAr"`
	Warning     string        `json:"warning,omitempty"`
}

// PublishArticle handles POST /api/topics/{id}/publish.
func (h *PublishHandler) PublishArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.site.PublishArticle(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, publishResponse{
		Topic:   toTopicResponse(res.Topic),
		URLEn:   res.URLEn,
		URLAr:   res.URLAr,
		Warning: res.Warning,
	})
}

// PublishLinkedIn handles POST /api/topics/{id}/publish-linkedin.
func (h *PublishHandler) PublishLinkedIn(w http.ResponseWriter, r *http.Request) {
	if h.linkedin == nil {
		writeError(w, http.StatusNotImplemented, "linkedin publishing is disabled")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.linkedin.PublishLinkedIn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, linkedInPublishResponse{
		Topic:       toTopicResponse(res.Topic),
		PermalinkEn: res.PermalinkEn,
		PermalinkAr: res.PermalinkAr,
		Warning:     res.Warning,
	})
}
