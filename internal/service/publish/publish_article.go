package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

// PublishArticle takes the topic's approved bilingual article live.
//
// The topic is first moved to the transient publishing state; that
// compare-and-swap is the claim, so concurrent publishes of the same topic
// resolve to one winner. Calling PublishArticle on an already-published
// topic is a no-op success returning the existing URLs. A failure after
// the claim reverts the topic to article_approved for retry.
func (s *Service) PublishArticle(ctx context.Context, topicID uuid.UUID) (res *Result, err error) {
	t, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	// Idempotent re-entry: already live, nothing to do.
	if t.Article != nil && t.Article.PublishedAt != nil && !t.Status.IsTransient() &&
		t.Status != domain.StatusArticleApproved && t.Status != domain.StatusArticleReady {
		return &Result{Topic: t, URLEn: t.Article.URLEn, URLAr: t.Article.URLAr}, nil
	}

	claimed := t
	if t.Status != domain.StatusPublishing {
		expected := t.Status
		if applyErr := t.ApplyTransition(domain.StatusPublishing, domain.ArtifactPatch{}); applyErr != nil {
			return nil, applyErr
		}
		claimed, err = s.topics.UpdateStatus(ctx, t, expected)
		if err != nil {
			return nil, err
		}
	}

	defer func() {
		if err == nil {
			return
		}
		if revertErr := s.revert(ctx, topicID); revertErr != nil {
			s.log.ErrorContext(ctx, "revert after failed publish failed",
				slog.String("topic_id", topicID.String()),
				slog.String("error", revertErr.Error()))
		}
	}()

	if claimed.Article == nil || claimed.Article.DraftIDEn == nil || claimed.Article.DraftIDAr == nil {
		return nil, fmt.Errorf("topic %s: article drafts missing: %w", topicID, domain.ErrPrecondition)
	}

	enDraft, err := s.publishableDraft(ctx, *claimed.Article.DraftIDEn, domain.LanguageEnglish)
	if err != nil {
		return nil, err
	}
	if _, err := s.publishableDraft(ctx, *claimed.Article.DraftIDAr, domain.LanguageArabic); err != nil {
		return nil, err
	}

	slug, err := slugFor(claimed, enDraft.Title)
	if err != nil {
		return nil, err
	}

	urlEn := s.articleURL(slug, domain.LanguageEnglish)
	urlAr := s.articleURL(slug, domain.LanguageArabic)

	var published *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, markErr := s.drafts.MarkPublished(txCtx, *claimed.Article.DraftIDEn,
			domain.DraftStatusPublished, slug, urlEn); markErr != nil {
			return markErr
		}
		if _, markErr := s.drafts.MarkPublished(txCtx, *claimed.Article.DraftIDAr,
			domain.DraftStatusPublished, slug, urlAr); markErr != nil {
			return markErr
		}

		now := time.Now()
		expected := claimed.Status
		if applyErr := claimed.ApplyTransition(domain.StatusPublished, domain.ArtifactPatch{
			Article: &domain.ArticleArtifacts{
				Slug:        slug,
				URLEn:       urlEn,
				URLAr:       urlAr,
				PublishedAt: &now,
			},
		}); applyErr != nil {
			return applyErr
		}

		var txErr error
		published, txErr = s.topics.UpdateStatus(txCtx, claimed, expected)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	res = &Result{Topic: published, URLEn: urlEn, URLAr: urlAr}

	// Search engine notification never fails a publish.
	if s.indexer != nil {
		if notifyErr := s.indexer.Notify(ctx, []string{urlEn, urlAr}); notifyErr != nil {
			s.log.WarnContext(ctx, "index notification failed",
				slog.String("topic_id", topicID.String()),
				slog.String("error", notifyErr.Error()))
			res.Warning = fmt.Sprintf("published, but index notification failed: %v", notifyErr)
		}
	}

	s.log.InfoContext(ctx, "article published",
		slog.String("topic_id", topicID.String()),
		slog.String("slug", slug))

	return res, nil
}

// PublishByDraft publishes the article belonging to the draft. Used by the
// scheduler, whose jobs reference drafts rather than topics.
func (s *Service) PublishByDraft(ctx context.Context, draftID uuid.UUID) (*Result, error) {
	d, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if d.Kind != domain.DraftKindArticle {
		return nil, fmt.Errorf("draft %s is not an article: %w", draftID, domain.ErrPrecondition)
	}

	return s.PublishArticle(ctx, d.TopicID)
}

// publishableDraft loads an article draft and verifies it has content.
// A missing or empty draft is a precondition failure, not a not-found.
func (s *Service) publishableDraft(ctx context.Context, draftID uuid.UUID, lang domain.Language) (*domain.ContentDraft, error) {
	d, err := s.drafts.GetByID(ctx, draftID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%s article draft %s missing: %w", lang, draftID, domain.ErrPrecondition)
	}
	if err != nil {
		return nil, err
	}
	if d.Body == "" {
		return nil, fmt.Errorf("%s article draft %s has an empty body: %w", lang, draftID, domain.ErrPrecondition)
	}
	return d, nil
}

// revert returns a topic stuck in publishing to article_approved.
func (s *Service) revert(ctx context.Context, topicID uuid.UUID) error {
	t, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return err
	}
	if t.Status != domain.StatusPublishing {
		return nil
	}

	expected := t.Status
	if err := t.ApplyTransition(domain.StatusArticleApproved, domain.ArtifactPatch{}); err != nil {
		return err
	}
	_, err = s.topics.UpdateStatus(ctx, t, expected)
	return err
}
