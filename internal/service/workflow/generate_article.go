package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/adapter/drafter"
	"github.com/nashirhq/nashir-backend/internal/domain"
)

// GenerateArticle drafts the bilingual article for a prompt-approved topic.
//
// The topic is first moved to the transient article_generating state; that
// compare-and-swap doubles as the claim, so a second concurrent generation
// for the same topic fails with ErrConflict or ErrInvalidTransition. If
// drafting fails the topic is reverted to prompt_approved so the editor
// can retry.
func (s *Service) GenerateArticle(ctx context.Context, topicID uuid.UUID) (t *domain.Topic, err error) {
	claimed, err := s.transition(ctx, topicID, domain.StatusArticleGenerating, domain.ArtifactPatch{})
	if err != nil {
		return nil, err
	}

	defer func() {
		if err == nil {
			return
		}
		if _, revertErr := s.transition(ctx, topicID, domain.StatusPromptApproved, domain.ArtifactPatch{}); revertErr != nil {
			s.log.ErrorContext(ctx, "revert after failed generation failed",
				slog.String("topic_id", topicID.String()),
				slog.String("error", revertErr.Error()))
		}
	}()

	if claimed.Prompt == nil || claimed.Prompt.Prompt == "" {
		return nil, fmt.Errorf("topic %s has no approved prompt: %w", topicID, domain.ErrPrecondition)
	}

	// Drafting happens outside the transaction; only the writes are atomic.
	drafted := make(map[domain.Language]*drafter.Article, len(domain.Languages))
	for _, lang := range domain.Languages {
		article, genErr := s.drafter.GenerateArticle(ctx, claimed.Prompt.Prompt, lang)
		if genErr != nil {
			err = genErr
			return nil, err
		}
		drafted[lang] = article
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		patch := domain.ArticleArtifacts{}
		for _, lang := range domain.Languages {
			saved, upsertErr := s.drafts.Upsert(txCtx, &domain.ContentDraft{
				TopicID:  topicID,
				Kind:     domain.DraftKindArticle,
				Language: lang,
				Title:    drafted[lang].Title,
				Body:     drafted[lang].Body,
			})
			if upsertErr != nil {
				return upsertErr
			}

			switch lang {
			case domain.LanguageEnglish:
				patch.DraftIDEn = &saved.ID
			case domain.LanguageArabic:
				patch.DraftIDAr = &saved.ID
			}
		}

		var txErr error
		t, txErr = s.transition(txCtx, topicID, domain.StatusArticleReady, domain.ArtifactPatch{Article: &patch})
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "article drafted",
		slog.String("topic_id", topicID.String()),
		slog.Int("languages", len(domain.Languages)))

	return t, nil
}
