// Package topic implements the Topic repository using PostgreSQL.
// Stage artifacts are stored as jsonb columns; status changes go through
// a conditional update (compare-and-swap on the status column) so two
// concurrent transitions for the same topic cannot both win.
package topic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/nashirhq/nashir-backend/internal/adapter/postgres"
	"github.com/nashirhq/nashir-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new topic repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const topicColumns = `
    id, title, description, source, keywords, priority, status,
    prompt_artifacts, article_artifacts, linkedin_artifacts,
    locked_by, locked_at, created_at, updated_at`

const createTopicSQL = `
INSERT INTO topics (title, description, source, keywords, priority)
VALUES ($1, $2, $3, $4, $5)
RETURNING` + topicColumns

const getTopicByIDSQL = `
SELECT` + topicColumns + `
FROM topics
WHERE id = $1`

const listTopicsSQL = `
SELECT` + topicColumns + `
FROM topics
ORDER BY priority DESC, created_at DESC`

const updateStatusSQL = `
UPDATE topics
SET status             = $3,
    prompt_artifacts   = COALESCE($4, prompt_artifacts),
    article_artifacts  = COALESCE($5, article_artifacts),
    linkedin_artifacts = COALESCE($6, linkedin_artifacts),
    updated_at         = now()
WHERE id = $1 AND status = $2
RETURNING` + topicColumns

const acquireLockSQL = `
UPDATE topics
SET locked_by = $2, locked_at = now(), updated_at = now()
WHERE id = $1 AND (locked_by IS NULL OR locked_by = $2)`

const releaseLockSQL = `
UPDATE topics
SET locked_by = NULL, locked_at = NULL, updated_at = now()
WHERE id = $1 AND locked_by = $2`

const forceReleaseLockSQL = `
UPDATE topics
SET locked_by = NULL, locked_at = NULL, updated_at = now()
WHERE id = $1`

// Create inserts a new topic in status pending and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	keywords := t.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	row := q.QueryRow(ctx, createTopicSQL,
		t.Title, t.Description, string(t.Source), keywords, t.Priority,
	)

	created, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}

	return created, nil
}

// GetByID returns a topic by primary key.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(q.QueryRow(ctx, getTopicByIDSQL, topicID))
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	return t, nil
}

// List returns all topics ordered by priority then recency.
// Returns an empty slice (not nil) when there are no topics.
func (r *Repo) List(ctx context.Context) ([]*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listTopicsSQL)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	topics := []*domain.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("list topics: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}

// UpdateStatus persists the topic's status and artifacts, conditional on
// the stored status still being expected (compare-and-swap). Returns
// domain.ErrConflict when another transition won the race, and
// domain.ErrNotFound when the topic does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, t *domain.Topic, expected domain.Status) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	prompt, err := marshalArtifact(t.Prompt)
	if err != nil {
		return nil, fmt.Errorf("topic %s: marshal prompt artifacts: %w", t.ID, err)
	}
	article, err := marshalArtifact(t.Article)
	if err != nil {
		return nil, fmt.Errorf("topic %s: marshal article artifacts: %w", t.ID, err)
	}
	linkedin, err := marshalArtifact(t.LinkedIn)
	if err != nil {
		return nil, fmt.Errorf("topic %s: marshal linkedin artifacts: %w", t.ID, err)
	}

	row := q.QueryRow(ctx, updateStatusSQL,
		t.ID, string(expected), string(t.Status), prompt, article, linkedin,
	)

	updated, err := scanTopic(row)
	if err == nil {
		return updated, nil
	}
	if err != pgx.ErrNoRows {
		return nil, postgres.MapError(err, "topic", t.ID)
	}

	// No row matched: either the topic is gone or the status moved under us.
	if _, getErr := r.GetByID(ctx, t.ID); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("topic %s: status changed concurrently (expected %s): %w",
		t.ID, expected, domain.ErrConflict)
}

// AcquireLock sets the topic's edit lock for the actor. Re-acquiring a
// lock already held by the same actor is allowed. Returns domain.ErrLocked
// when another editor holds the lock, domain.ErrNotFound for unknown ids.
func (r *Repo) AcquireLock(ctx context.Context, topicID, actor uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, acquireLockSQL, topicID, actor)
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if _, getErr := r.GetByID(ctx, topicID); getErr != nil {
		return getErr
	}
	return fmt.Errorf("topic %s: %w", topicID, domain.ErrLocked)
}

// ReleaseLock clears the topic's edit lock if the actor holds it.
// Releasing a lock that is not held is a no-op.
func (r *Repo) ReleaseLock(ctx context.Context, topicID, actor uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, releaseLockSQL, topicID, actor); err != nil {
		return postgres.MapError(err, "topic", topicID)
	}

	return nil
}

// ForceReleaseLock clears the topic's edit lock no matter who holds it.
// Returns domain.ErrNotFound for unknown ids.
func (r *Repo) ForceReleaseLock(ctx context.Context, topicID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, forceReleaseLockSQL, topicID)
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// scanTopic scans one row (pgx.Row or pgx.Rows) into a domain.Topic.
func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var (
		t           domain.Topic
		description pgtype.Text
		source      string
		status      string
		prompt      []byte
		article     []byte
		linkedin    []byte
		lockedBy    *uuid.UUID
		lockedAt    *time.Time
	)

	err := row.Scan(
		&t.ID, &t.Title, &description, &source, &t.Keywords, &t.Priority, &status,
		&prompt, &article, &linkedin,
		&lockedBy, &lockedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Description = postgres.PgTextToPtr(description)
	t.Source = domain.TopicSource(source)
	t.Status = domain.Status(status)
	t.LockedBy = lockedBy
	t.LockedAt = lockedAt

	if err := unmarshalArtifact(prompt, &t.Prompt); err != nil {
		return nil, fmt.Errorf("prompt artifacts: %w", err)
	}
	if err := unmarshalArtifact(article, &t.Article); err != nil {
		return nil, fmt.Errorf("article artifacts: %w", err)
	}
	if err := unmarshalArtifact(linkedin, &t.LinkedIn); err != nil {
		return nil, fmt.Errorf("linkedin artifacts: %w", err)
	}

	return &t, nil
}

// marshalArtifact serializes an artifact struct for a jsonb column.
// A nil artifact becomes SQL NULL, which COALESCE leaves untouched.
func marshalArtifact(v any) ([]byte, error) {
	switch a := v.(type) {
	case *domain.PromptArtifacts:
		if a == nil {
			return nil, nil
		}
	case *domain.ArticleArtifacts:
		if a == nil {
			return nil, nil
		}
	case *domain.LinkedInArtifacts:
		if a == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

// unmarshalArtifact deserializes a jsonb column into the artifact pointer.
func unmarshalArtifact[T any](data []byte, dst **T) error {
	if len(data) == 0 {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*dst = &v
	return nil
}
