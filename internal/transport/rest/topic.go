package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/domain"
	"github.com/nashirhq/nashir-backend/internal/service/workflow"
	"github.com/nashirhq/nashir-backend/internal/transport/middleware"
)

// workflowService defines the minimal interface needed by TopicHandler.
type workflowService interface {
	CreateTopic(ctx context.Context, in workflow.CreateTopicInput) (*domain.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListTopics(ctx context.Context) ([]*domain.Topic, error)
	ListDrafts(ctx context.Context, topicID uuid.UUID) ([]*domain.ContentDraft, error)
	GeneratePrompt(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	Approve(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	Revert(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GenerateArticle(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GenerateLinkedIn(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	Lock(ctx context.Context, topicID uuid.UUID) error
	Unlock(ctx context.Context, topicID uuid.UUID) error
	ForceUnlock(ctx context.Context, topicID uuid.UUID) error
}

// TopicHandler serves topic and pipeline-stage REST endpoints.
type TopicHandler struct {
	svc workflowService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc workflowService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type createTopicRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Source      string   `json:"source"`
	Keywords    []string `json:"keywords"`
	Priority    int      `json:"priority"`
}

type topicResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Source      string   `json:"source"`
	Keywords    []string `json:"keywords,omitempty"`
	Priority    int      `json:"priority"`
	Status      string   `json:"status"`

	Prompt   *domain.PromptArtifacts   `json:"prompt,omitempty"`
	Article  *domain.ArticleArtifacts  `json:"article,omitempty"`
	LinkedIn *domain.LinkedInArtifacts `json:"linkedin,omitempty"`

	LockedBy *string    `json:"lockedBy,omitempty"`
	LockedAt *time.Time `json:"lockedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type draftResponse struct {
	ID                string     `json:"id"`
	TopicID           string     `json:"topicId"`
	Kind              string     `json:"kind"`
	Language          string     `json:"language"`
	Title             string     `json:"title"`
	Body              string     `json:"body"`
	Status            string     `json:"status"`
	Slug              string     `json:"slug,omitempty"`
	URL               string     `json:"url,omitempty"`
	ExternalPermalink *string    `json:"externalPermalink,omitempty"`
	PublishAttempts   int        `json:"publishAttempts"`
	LastError         *string    `json:"lastError,omitempty"`
	PublishedAt       *time.Time `json:"publishedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.CreateTopic(r.Context(), workflow.CreateTopicInput{
		Title:       req.Title,
		Description: req.Description,
		Source:      domain.TopicSource(req.Source),
		Keywords:    req.Keywords,
		Priority:    req.Priority,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(t))
}

// Get handles GET /api/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListTopics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListDrafts handles GET /api/topics/{id}/drafts.
func (h *TopicHandler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	drafts, err := h.svc.ListDrafts(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]draftResponse, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, toDraftResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

// GeneratePrompt handles POST /api/topics/{id}/generate-prompt.
func (h *TopicHandler) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	h.stage(w, r, h.svc.GeneratePrompt)
}

// Approve handles POST /api/topics/{id}/approve.
func (h *TopicHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.stage(w, r, h.svc.Approve)
}

// Revert handles POST /api/topics/{id}/revert.
func (h *TopicHandler) Revert(w http.ResponseWriter, r *http.Request) {
	h.stage(w, r, h.svc.Revert)
}

// GenerateArticle handles POST /api/topics/{id}/generate-article.
func (h *TopicHandler) GenerateArticle(w http.ResponseWriter, r *http.Request) {
	h.stage(w, r, h.svc.GenerateArticle)
}

// GenerateLinkedIn handles POST /api/topics/{id}/generate-linkedin.
func (h *TopicHandler) GenerateLinkedIn(w http.ResponseWriter, r *http.Request) {
	h.stage(w, r, h.svc.GenerateLinkedIn)
}

// stage runs a pipeline-stage operation and renders the updated topic.
func (h *TopicHandler) stage(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Topic, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Lock handles POST /api/topics/{id}/lock.
func (h *TopicHandler) Lock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Lock(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Unlock handles DELETE /api/topics/{id}/lock.
func (h *TopicHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Unlock(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ForceUnlock handles DELETE /api/topics/{id}/lock/force. Admin only:
// evicts another editor's lock.
func (h *TopicHandler) ForceUnlock(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.ForceUnlock(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toTopicResponse(t *domain.Topic) topicResponse {
	resp := topicResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Source:      string(t.Source),
		Keywords:    t.Keywords,
		Priority:    t.Priority,
		Status:      string(t.Status),
		Prompt:      t.Prompt,
		Article:     t.Article,
		LinkedIn:    t.LinkedIn,
		LockedAt:    t.LockedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.LockedBy != nil {
		s := t.LockedBy.String()
		resp.LockedBy = &s
	}
	return resp
}

func toDraftResponse(d *domain.ContentDraft) draftResponse {
	return draftResponse{
		ID:                d.ID.String(),
		TopicID:           d.TopicID.String(),
		Kind:              string(d.Kind),
		Language:          string(d.Language),
		Title:             d.Title,
		Body:              d.Body,
		Status:            string(d.Status),
		Slug:              d.Slug,
		URL:               d.URL,
		ExternalPermalink: d.ExternalPermalink,
		PublishAttempts:   d.PublishAttempts,
		LastError:         d.LastError,
		PublishedAt:       d.PublishedAt,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}
