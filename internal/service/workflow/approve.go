package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

// approvals maps each reviewable status to the status approval moves it to.
var approvals = map[domain.Status]domain.Status{
	domain.StatusPromptReady:   domain.StatusPromptApproved,
	domain.StatusArticleReady:  domain.StatusArticleApproved,
	domain.StatusLinkedInReady: domain.StatusLinkedInApproved,
}

// Approve records a human approval of the topic's current stage output.
// Only the three *_ready states are reviewable.
func (s *Service) Approve(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}

	t, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	to, ok := approvals[t.Status]
	if !ok {
		return nil, fmt.Errorf("topic %s: status %s is not awaiting review: %w",
			topicID, t.Status, domain.ErrPrecondition)
	}

	updated, err := s.transition(ctx, topicID, to, domain.ArtifactPatch{})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "stage approved",
		slog.String("topic_id", topicID.String()),
		slog.String("status", string(updated.Status)))

	return updated, nil
}

// Revert returns a topic stuck in a transient state (a crash mid-generation
// or mid-publish) to the preceding approved state so the operation can be
// retried.
func (s *Service) Revert(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}

	t, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	target, ok := domain.RevertTarget(t.Status)
	if !ok {
		return nil, fmt.Errorf("topic %s: status %s is not revertible: %w",
			topicID, t.Status, domain.ErrPrecondition)
	}

	updated, err := s.transition(ctx, topicID, target, domain.ArtifactPatch{})
	if err != nil {
		return nil, err
	}

	s.log.WarnContext(ctx, "topic reverted",
		slog.String("topic_id", topicID.String()),
		slog.String("from", string(t.Status)),
		slog.String("to", string(target)))

	return updated, nil
}
