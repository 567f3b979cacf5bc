// Package workflow implements the editorial pipeline: topics move from
// idea to approved bilingual article through explicit, validated status
// transitions. Every status change is a compare-and-swap against the
// status the caller observed, so two editors racing on one topic cannot
// both win.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/adapter/drafter"
	"github.com/nashirhq/nashir-backend/internal/domain"
	"github.com/nashirhq/nashir-backend/pkg/ctxutil"
)

type topicRepo interface {
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context) ([]*domain.Topic, error)
	UpdateStatus(ctx context.Context, t *domain.Topic, expected domain.Status) (*domain.Topic, error)
	AcquireLock(ctx context.Context, topicID, actor uuid.UUID) error
	ReleaseLock(ctx context.Context, topicID, actor uuid.UUID) error
	ForceReleaseLock(ctx context.Context, topicID uuid.UUID) error
}

type draftRepo interface {
	Upsert(ctx context.Context, d *domain.ContentDraft) (*domain.ContentDraft, error)
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.ContentDraft, error)
}

type drafterClient interface {
	GeneratePrompt(ctx context.Context, t *domain.Topic) (string, error)
	GenerateArticle(ctx context.Context, prompt string, lang domain.Language) (*drafter.Article, error)
	GenerateSocialPost(ctx context.Context, articleTitle, articleURL string, lang domain.Language) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides editorial pipeline operations.
type Service struct {
	topics  topicRepo
	drafts  draftRepo
	drafter drafterClient
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Workflow service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	drafts draftRepo,
	drafterClient drafterClient,
	tx txManager,
) *Service {
	return &Service{
		topics:  topics,
		drafts:  drafts,
		drafter: drafterClient,
		tx:      tx,
		log:     log.With("service", "workflow"),
	}
}

// actorFromCtx extracts the authenticated editor from the context.
func actorFromCtx(ctx context.Context) (uuid.UUID, error) {
	actor, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return actor, nil
}

// transition loads the topic, verifies the actor may edit it, applies the
// requested status change in memory, and persists it conditional on the
// status observed at load.
func (s *Service) transition(ctx context.Context, topicID uuid.UUID, to domain.Status, patch domain.ArtifactPatch) (*domain.Topic, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if t.IsLocked(actor) {
		return nil, fmt.Errorf("topic %s: %w", topicID, domain.ErrLocked)
	}

	expected := t.Status
	if err := t.ApplyTransition(to, patch); err != nil {
		return nil, err
	}

	return s.topics.UpdateStatus(ctx, t, expected)
}
