package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

// GetTopic returns a topic by id.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.topics.GetByID(ctx, topicID)
}

// ListTopics returns all topics ordered by priority then recency.
func (s *Service) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.topics.List(ctx)
}

// ListDrafts returns the drafts attached to a topic.
func (s *Service) ListDrafts(ctx context.Context, topicID uuid.UUID) ([]*domain.ContentDraft, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	if _, err := s.topics.GetByID(ctx, topicID); err != nil {
		return nil, err
	}
	return s.drafts.ListByTopic(ctx, topicID)
}
