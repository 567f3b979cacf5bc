package workflow

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Lock takes the topic's edit lock for the calling editor. Re-locking a
// topic the editor already holds is allowed.
func (s *Service) Lock(ctx context.Context, topicID uuid.UUID) error {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := s.topics.AcquireLock(ctx, topicID, actor); err != nil {
		return err
	}

	s.log.DebugContext(ctx, "topic locked",
		slog.String("topic_id", topicID.String()),
		slog.String("actor", actor.String()))

	return nil
}

// Unlock releases the topic's edit lock if the calling editor holds it.
// Unlocking a topic that is not locked is a no-op.
func (s *Service) Unlock(ctx context.Context, topicID uuid.UUID) error {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	return s.topics.ReleaseLock(ctx, topicID, actor)
}

// ForceUnlock releases the topic's edit lock regardless of the holder.
// The transport layer restricts this to admins; the release is logged so
// the evicted editor's lock loss can be traced.
func (s *Service) ForceUnlock(ctx context.Context, topicID uuid.UUID) error {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := s.topics.ForceReleaseLock(ctx, topicID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "topic force unlocked",
		slog.String("topic_id", topicID.String()),
		slog.String("actor", actor.String()))

	return nil
}
