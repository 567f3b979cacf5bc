package workflow

import (
	"context"
	"log/slog"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

// CreateTopic registers a new content idea in status pending.
func (s *Service) CreateTopic(ctx context.Context, in CreateTopicInput) (*domain.Topic, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := s.topics.Create(ctx, &domain.Topic{
		Title:       in.Title,
		Description: in.Description,
		Source:      in.Source,
		Keywords:    in.Keywords,
		Priority:    in.Priority,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", created.ID.String()),
		slog.String("source", string(created.Source)))

	return created, nil
}
