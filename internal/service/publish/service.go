// Package publish takes approved bilingual articles live on the website.
//
// Publication is idempotent: publishing an already-published topic returns
// the existing URLs without touching state, and re-publishing after a
// content update keeps the original slug so links never break.
package publish

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/config"
	"github.com/nashirhq/nashir-backend/internal/domain"
)

type topicRepo interface {
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	UpdateStatus(ctx context.Context, t *domain.Topic, expected domain.Status) (*domain.Topic, error)
}

type draftRepo interface {
	GetByID(ctx context.Context, draftID uuid.UUID) (*domain.ContentDraft, error)
	MarkPublished(ctx context.Context, draftID uuid.UUID, status domain.DraftStatus, slug, url string) (*domain.ContentDraft, error)
}

type indexNotifier interface {
	Notify(ctx context.Context, urls []string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service publishes approved articles to the website.
type Service struct {
	topics  topicRepo
	drafts  draftRepo
	indexer indexNotifier
	tx      txManager
	site    config.SiteConfig
	log     *slog.Logger
}

// NewService creates a new Publish service. indexer may be nil when search
// engine notification is disabled.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	drafts draftRepo,
	indexer indexNotifier,
	tx txManager,
	site config.SiteConfig,
) *Service {
	return &Service{
		topics:  topics,
		drafts:  drafts,
		indexer: indexer,
		tx:      tx,
		site:    site,
		log:     log.With("service", "publish"),
	}
}

// Result reports the outcome of a publish operation. Warning carries a
// non-fatal follow-up failure (such as an indexer rejection) that must not
// be mistaken for a failed publish.
type Result struct {
	Topic   *domain.Topic
	URLEn   string
	URLAr   string
	Warning string
}

// articleURL builds the public URL for the slug in the given language.
func (s *Service) articleURL(slug string, lang domain.Language) string {
	base := strings.TrimSuffix(s.site.BaseURL, "/")
	if lang == domain.LanguageArabic {
		return base + s.site.ArabicPrefix + s.site.BlogPath + "/" + slug
	}
	return base + s.site.BlogPath + "/" + slug
}

// slugFor picks the topic's permanent slug: an already-published topic
// keeps its slug, otherwise it is derived from the English draft title.
func slugFor(t *domain.Topic, enTitle string) (string, error) {
	if t.Article != nil && t.Article.Slug != "" {
		return t.Article.Slug, nil
	}

	slug := domain.Slugify(enTitle)
	if slug == "" {
		slug = domain.Slugify(t.Title)
	}
	if slug == "" {
		return "", fmt.Errorf("topic %s: cannot derive slug: %w", t.ID, domain.ErrPrecondition)
	}
	return slug, nil
}
