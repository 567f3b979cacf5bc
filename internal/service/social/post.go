package social

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

// PublishLinkedIn posts the topic's approved bilingual LinkedIn drafts
// with the calling user's credential. Every draft is committed to our own
// record before its network call; a bounced delivery therefore does not
// fail the operation. It comes back as Result.Warning with the topic left
// at its approved status for a manual retry.
func (s *Service) PublishLinkedIn(ctx context.Context, topicID uuid.UUID) (*Result, error) {
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

	return s.postTopic(ctx, t, actor)
}

// PostByDraft posts the LinkedIn package of the topic the draft belongs
// to, using the configured publisher credential. Used by the scheduler.
func (s *Service) PostByDraft(ctx context.Context, draftID uuid.UUID) (*Result, error) {
	d, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if d.Kind != domain.DraftKindSocialPost {
		return nil, fmt.Errorf("draft %s is not a social post: %w", draftID, domain.ErrPrecondition)
	}
	if s.publisherID == uuid.Nil {
		return nil, fmt.Errorf("no publisher account configured: %w", domain.ErrNotConnected)
	}

	t, err := s.topics.GetByID(ctx, d.TopicID)
	if err != nil {
		return nil, err
	}

	return s.postTopic(ctx, t, s.publisherID)
}

// postTopic delivers both language drafts and records the permalinks.
//
// Before each network call the draft is stamped published with its article
// URL, so the post is never lost on our side even if the network bounces.
// Delivery is resumable: a draft that already carries a permalink is not
// posted again, and a bounced draft keeps its committed record with the
// error noted. The topic transition happens last, only once every draft
// is delivered.
func (s *Service) postTopic(ctx context.Context, t *domain.Topic, userID uuid.UUID) (*Result, error) {
	// Already delivered; return the recorded permalinks.
	if t.Status == domain.StatusLinkedInPublished && t.LinkedIn != nil && t.LinkedIn.PermalinkEn != "" {
		return &Result{Topic: t, PermalinkEn: t.LinkedIn.PermalinkEn, PermalinkAr: t.LinkedIn.PermalinkAr}, nil
	}
	if !domain.CanTransition(t.Status, domain.StatusLinkedInPublished) {
		return nil, fmt.Errorf("topic %s in %s: %w", t.ID, t.Status, domain.ErrInvalidTransition)
	}
	if t.Article == nil || t.Article.URLEn == "" || t.Article.URLAr == "" {
		return nil, fmt.Errorf("topic %s has no published article urls: %w", t.ID, domain.ErrPrecondition)
	}

	cred, err := s.creds.Get(ctx, userID, domain.ProviderLinkedIn)
	if err != nil {
		return nil, err
	}
	if cred.IsExpired(time.Now()) {
		return nil, fmt.Errorf("linkedin credential for user %s expired at %s: %w",
			userID, cred.ExpiresAt.Format(time.RFC3339), domain.ErrTokenExpired)
	}

	accessToken, err := s.cipher.Open(cred.TokenCiphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt access token: %w", err)
	}

	permalinks := make(map[domain.Language]string, len(domain.Languages))
	var warnings []string
	for _, lang := range domain.Languages {
		d, err := s.drafts.GetByKey(ctx, t.ID, domain.DraftKindSocialPost, lang)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no %s linkedin draft for topic %s: %w", lang, t.ID, domain.ErrPrecondition)
		}
		if err != nil {
			return nil, err
		}

		if d.ExternalPermalink != nil && *d.ExternalPermalink != "" {
			permalinks[lang] = *d.ExternalPermalink
			continue
		}

		// Commit the post to our own record before touching the network.
		if !d.IsPublished() {
			if _, err := s.drafts.MarkPublished(ctx, d.ID,
				domain.DraftStatusPublished, t.Article.Slug, articleURL(t, lang)); err != nil {
				return nil, err
			}
		}

		permalink, postErr := s.client.Post(ctx, accessToken, cred.MemberURN, d.Body)
		if postErr != nil {
			if recErr := s.drafts.RecordPostError(ctx, d.ID, postErr.Error()); recErr != nil {
				s.log.ErrorContext(ctx, "recording delivery error failed",
					slog.String("draft_id", d.ID.String()),
					slog.String("error", recErr.Error()))
			}
			warnings = append(warnings, fmt.Sprintf("%s post not delivered: %v", lang, postErr))
			continue
		}

		if _, err := s.drafts.StorePermalink(ctx, d.ID, permalink); err != nil {
			return nil, err
		}
		permalinks[lang] = permalink
	}

	if len(warnings) > 0 {
		warning := strings.Join(warnings, "; ")
		s.log.WarnContext(ctx, "linkedin delivery incomplete",
			slog.String("topic_id", t.ID.String()),
			slog.String("warning", warning))
		return &Result{
			Topic:       t,
			PermalinkEn: permalinks[domain.LanguageEnglish],
			PermalinkAr: permalinks[domain.LanguageArabic],
			Warning:     warning,
		}, nil
	}

	now := time.Now()
	expected := t.Status
	if err := t.ApplyTransition(domain.StatusLinkedInPublished, domain.ArtifactPatch{
		LinkedIn: &domain.LinkedInArtifacts{
			PermalinkEn: permalinks[domain.LanguageEnglish],
			PermalinkAr: permalinks[domain.LanguageArabic],
			PostedAt:    &now,
		},
	}); err != nil {
		return nil, err
	}

	updated, err := s.topics.UpdateStatus(ctx, t, expected)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "linkedin posts published",
		slog.String("topic_id", t.ID.String()))

	return &Result{
		Topic:       updated,
		PermalinkEn: permalinks[domain.LanguageEnglish],
		PermalinkAr: permalinks[domain.LanguageArabic],
	}, nil
}

// articleURL returns the published article URL for the language.
func articleURL(t *domain.Topic, lang domain.Language) string {
	if lang == domain.LanguageArabic {
		return t.Article.URLAr
	}
	return t.Article.URLEn
}
