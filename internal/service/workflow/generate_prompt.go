package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

// GeneratePrompt drafts a generation prompt for a pending topic and moves
// it to prompt_ready for human review.
func (s *Service) GeneratePrompt(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if t.IsLocked(actor) {
		return nil, domain.ErrLocked
	}
	if !domain.CanTransition(t.Status, domain.StatusPromptReady) {
		return nil, domain.ErrInvalidTransition
	}

	prompt, err := s.drafter.GeneratePrompt(ctx, t)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated, err := s.transition(ctx, topicID, domain.StatusPromptReady, domain.ArtifactPatch{
		Prompt: &domain.PromptArtifacts{Prompt: prompt, GeneratedAt: &now},
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "prompt generated",
		slog.String("topic_id", topicID.String()))

	return updated, nil
}
