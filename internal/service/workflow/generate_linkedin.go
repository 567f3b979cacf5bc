package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

// GenerateLinkedIn drafts the bilingual LinkedIn posts promoting a
// published article and moves the topic to linkedin_ready for review.
func (s *Service) GenerateLinkedIn(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
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
	if !domain.CanTransition(t.Status, domain.StatusLinkedInReady) {
		return nil, domain.ErrInvalidTransition
	}
	if t.Article == nil || t.Article.URLEn == "" {
		return nil, fmt.Errorf("topic %s has no published article: %w", topicID, domain.ErrPrecondition)
	}

	texts := make(map[domain.Language]string, len(domain.Languages))
	for _, lang := range domain.Languages {
		articleURL := t.Article.URLEn
		if lang == domain.LanguageArabic && t.Article.URLAr != "" {
			articleURL = t.Article.URLAr
		}

		text, err := s.drafter.GenerateSocialPost(ctx, t.Title, articleURL, lang)
		if err != nil {
			return nil, err
		}
		texts[lang] = text
	}

	var updated *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, lang := range domain.Languages {
			if _, err := s.drafts.Upsert(txCtx, &domain.ContentDraft{
				TopicID:  topicID,
				Kind:     domain.DraftKindSocialPost,
				Language: lang,
				Body:     texts[lang],
			}); err != nil {
				return err
			}
		}

		patch := domain.LinkedInArtifacts{
			PostBodyEn: texts[domain.LanguageEnglish],
			PostBodyAr: texts[domain.LanguageArabic],
		}

		var txErr error
		updated, txErr = s.transition(txCtx, topicID, domain.StatusLinkedInReady, domain.ArtifactPatch{LinkedIn: &patch})
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "linkedin posts drafted",
		slog.String("topic_id", topicID.String()))

	return updated, nil
}
