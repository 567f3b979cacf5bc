// Package draft implements the ContentDraft repository using PostgreSQL.
package draft

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/nashirhq/nashir-backend/internal/adapter/postgres"
	"github.com/nashirhq/nashir-backend/internal/domain"
)

// Repo provides content draft persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new content draft repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const draftColumns = `
    id, topic_id, kind, language, title, body, status,
    slug, url, external_permalink, publish_attempts,
    last_attempt_at, last_error, published_at, created_at, updated_at`

const createDraftSQL = `
INSERT INTO content_drafts (topic_id, kind, language, title, body)
VALUES ($1, $2, $3, $4, $5)
RETURNING` + draftColumns

const upsertDraftSQL = `
INSERT INTO content_drafts (topic_id, kind, language, title, body)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (topic_id, kind, language) DO UPDATE
SET title      = EXCLUDED.title,
    body       = EXCLUDED.body,
    updated_at = now()
RETURNING` + draftColumns

const getDraftByIDSQL = `
SELECT` + draftColumns + `
FROM content_drafts
WHERE id = $1`

const getDraftByKeySQL = `
SELECT` + draftColumns + `
FROM content_drafts
WHERE topic_id = $1 AND kind = $2 AND language = $3`

const listDraftsByTopicSQL = `
SELECT` + draftColumns + `
FROM content_drafts
WHERE topic_id = $1
ORDER BY kind, language`

const markPublishedSQL = `
UPDATE content_drafts
SET status           = $2,
    slug             = $3,
    url              = $4,
    published_at     = COALESCE(published_at, now()),
    publish_attempts = publish_attempts + 1,
    last_attempt_at  = now(),
    last_error       = NULL,
    updated_at       = now()
WHERE id = $1
RETURNING` + draftColumns

const recordPostErrorSQL = `
UPDATE content_drafts
SET publish_attempts = publish_attempts + 1,
    last_attempt_at  = now(),
    last_error       = $2,
    updated_at       = now()
WHERE id = $1`

const storePermalinkSQL = `
UPDATE content_drafts
SET status             = 'posted',
    external_permalink = $2,
    published_at       = COALESCE(published_at, now()),
    publish_attempts   = publish_attempts + 1,
    last_attempt_at    = now(),
    last_error         = NULL,
    updated_at         = now()
WHERE id = $1
RETURNING` + draftColumns

// Create inserts a new draft. A draft for the same topic, kind and language
// already existing surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, d *domain.ContentDraft) (*domain.ContentDraft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createDraftSQL,
		d.TopicID, string(d.Kind), string(d.Language), d.Title, d.Body,
	)

	created, err := scanDraft(row)
	if err != nil {
		return nil, postgres.MapError(err, "draft", uuid.Nil)
	}

	return created, nil
}

// Upsert inserts the draft or, if one already exists for the same topic,
// kind and language, replaces its title and body. Regeneration reuses the
// existing row so published URLs stay stable.
func (r *Repo) Upsert(ctx context.Context, d *domain.ContentDraft) (*domain.ContentDraft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, upsertDraftSQL,
		d.TopicID, string(d.Kind), string(d.Language), d.Title, d.Body,
	)

	saved, err := scanDraft(row)
	if err != nil {
		return nil, postgres.MapError(err, "draft", uuid.Nil)
	}

	return saved, nil
}

// GetByID returns a draft by primary key.
func (r *Repo) GetByID(ctx context.Context, draftID uuid.UUID) (*domain.ContentDraft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDraft(q.QueryRow(ctx, getDraftByIDSQL, draftID))
	if err != nil {
		return nil, postgres.MapError(err, "draft", draftID)
	}

	return d, nil
}

// GetByKey returns the draft for a topic, kind and language.
func (r *Repo) GetByKey(ctx context.Context, topicID uuid.UUID, kind domain.DraftKind, lang domain.Language) (*domain.ContentDraft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDraft(q.QueryRow(ctx, getDraftByKeySQL, topicID, string(kind), string(lang)))
	if err != nil {
		return nil, postgres.MapError(err, "draft", topicID)
	}

	return d, nil
}

// ListByTopic returns all drafts belonging to a topic.
func (r *Repo) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.ContentDraft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDraftsByTopicSQL, topicID)
	if err != nil {
		return nil, fmt.Errorf("list drafts for topic %s: %w", topicID, err)
	}
	defer rows.Close()

	drafts := []*domain.ContentDraft{}
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("list drafts for topic %s: %w", topicID, err)
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drafts for topic %s: %w", topicID, err)
	}

	return drafts, nil
}

// MarkPublished stamps the draft with its public slug and URL and moves it
// to the given terminal success status. published_at is set on the first
// successful publish and kept on later re-publishes of the same draft.
func (r *Repo) MarkPublished(ctx context.Context, draftID uuid.UUID, status domain.DraftStatus, slug, url string) (*domain.ContentDraft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDraft(q.QueryRow(ctx, markPublishedSQL, draftID, string(status), slug, url))
	if err != nil {
		return nil, postgres.MapError(err, "draft", draftID)
	}

	return d, nil
}

// RecordPostError notes a bounced external delivery on the draft. The
// status is left alone: the draft stays committed to our own record and
// only the delivery error is kept for the manual retry.
func (r *Repo) RecordPostError(ctx context.Context, draftID uuid.UUID, cause string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, recordPostErrorSQL, draftID, cause)
	if err != nil {
		return postgres.MapError(err, "draft", draftID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", draftID, domain.ErrNotFound)
	}

	return nil
}

// StorePermalink records the external permalink returned by a social
// network and marks the draft posted.
func (r *Repo) StorePermalink(ctx context.Context, draftID uuid.UUID, permalink string) (*domain.ContentDraft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDraft(q.QueryRow(ctx, storePermalinkSQL, draftID, permalink))
	if err != nil {
		return nil, postgres.MapError(err, "draft", draftID)
	}

	return d, nil
}

// scanDraft scans one row (pgx.Row or pgx.Rows) into a domain.ContentDraft.
func scanDraft(row pgx.Row) (*domain.ContentDraft, error) {
	var (
		d         domain.ContentDraft
		kind      string
		language  string
		status    string
		permalink pgtype.Text
		lastErr   pgtype.Text
		attempted *time.Time
		published *time.Time
	)

	err := row.Scan(
		&d.ID, &d.TopicID, &kind, &language, &d.Title, &d.Body, &status,
		&d.Slug, &d.URL, &permalink, &d.PublishAttempts,
		&attempted, &lastErr, &published, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Kind = domain.DraftKind(kind)
	d.Language = domain.Language(language)
	d.Status = domain.DraftStatus(status)
	d.ExternalPermalink = postgres.PgTextToPtr(permalink)
	d.LastError = postgres.PgTextToPtr(lastErr)
	d.LastAttemptAt = attempted
	d.PublishedAt = published

	return &d, nil
}
