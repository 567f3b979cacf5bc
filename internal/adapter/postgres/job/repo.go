// Package job implements the ScheduledJob repository using PostgreSQL.
//
// Claiming is done with FOR UPDATE SKIP LOCKED inside a single UPDATE so
// concurrent sweeps never pick up the same job. A claim moves the job to
// executing; resolution (MarkSucceeded / MarkFailed) is a separate write,
// and jobs stuck in executing past a staleness window are returned to
// pending by ReclaimStale.
package job

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/nashirhq/nashir-backend/internal/adapter/postgres"
	"github.com/nashirhq/nashir-backend/internal/domain"
)

// Repo provides scheduled job persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new scheduled job repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const jobColumns = `
    id, draft_id, run_at, targets, status, attempts,
    claimed_at, executed_at, last_error, created_at, updated_at`

const createJobSQL = `
INSERT INTO scheduled_jobs (draft_id, run_at, targets)
VALUES ($1, $2, $3)
RETURNING` + jobColumns

const getJobByIDSQL = `
SELECT` + jobColumns + `
FROM scheduled_jobs
WHERE id = $1`

const cancelPendingSQL = `
UPDATE scheduled_jobs
SET status = 'cancelled', updated_at = now()
WHERE draft_id = $1 AND status = 'pending'`

const claimDueSQL = `
UPDATE scheduled_jobs
SET status     = 'executing',
    attempts   = attempts + 1,
    claimed_at = now(),
    updated_at = now()
WHERE id IN (
    SELECT id
    FROM scheduled_jobs
    WHERE status = 'pending' AND run_at <= $1
    ORDER BY run_at
    LIMIT $2
    FOR UPDATE SKIP LOCKED
)
RETURNING` + jobColumns

const markSucceededSQL = `
UPDATE scheduled_jobs
SET status      = 'succeeded',
    executed_at = now(),
    last_error  = NULL,
    updated_at  = now()
WHERE id = $1 AND status = 'executing'`

const markFailedSQL = `
UPDATE scheduled_jobs
SET status      = 'failed',
    executed_at = now(),
    last_error  = $2,
    updated_at  = now()
WHERE id = $1 AND status = 'executing'`

const requeueSQL = `
UPDATE scheduled_jobs
SET status     = 'pending',
    claimed_at = NULL,
    updated_at = now()
WHERE id = $1 AND status = 'executing'`

const reclaimStaleSQL = `
UPDATE scheduled_jobs
SET status     = 'pending',
    claimed_at = NULL,
    updated_at = now()
WHERE status = 'executing' AND claimed_at < $1`

// Create inserts a new pending job. Referencing a missing draft surfaces
// as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, j *domain.ScheduledJob) (*domain.ScheduledJob, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	targets := make([]string, len(j.Targets))
	for i, tgt := range j.Targets {
		targets[i] = string(tgt)
	}

	created, err := scanJob(q.QueryRow(ctx, createJobSQL, j.DraftID, j.RunAt, targets))
	if err != nil {
		return nil, postgres.MapError(err, "job", uuid.Nil)
	}

	return created, nil
}

// GetByID returns a job by primary key.
func (r *Repo) GetByID(ctx context.Context, jobID uuid.UUID) (*domain.ScheduledJob, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	j, err := scanJob(q.QueryRow(ctx, getJobByIDSQL, jobID))
	if err != nil {
		return nil, postgres.MapError(err, "job", jobID)
	}

	return j, nil
}

// ListFilter narrows List results. Zero-value fields are not applied.
type ListFilter struct {
	DraftID  uuid.UUID
	Status   domain.JobStatus
	DueUntil time.Time
	Limit    uint64
}

// List returns jobs matching the filter, soonest first.
func (r *Repo) List(ctx context.Context, f ListFilter) ([]*domain.ScheduledJob, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select("id", "draft_id", "run_at", "targets", "status", "attempts",
			"claimed_at", "executed_at", "last_error", "created_at", "updated_at").
		From("scheduled_jobs").
		OrderBy("run_at ASC")

	if f.DraftID != uuid.Nil {
		builder = builder.Where(sq.Eq{"draft_id": f.DraftID})
	}
	if f.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(f.Status)})
	}
	if !f.DueUntil.IsZero() {
		builder = builder.Where(sq.LtOrEq{"run_at": f.DueUntil})
	}
	if f.Limit > 0 {
		builder = builder.Limit(f.Limit)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list jobs query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*domain.ScheduledJob{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("list jobs: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return jobs, nil
}

// CancelPending cancels every pending job for the draft and reports how
// many were cancelled. Having nothing to cancel is not an error.
func (r *Repo) CancelPending(ctx context.Context, draftID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, cancelPendingSQL, draftID)
	if err != nil {
		return 0, postgres.MapError(err, "job", draftID)
	}

	return tag.RowsAffected(), nil
}

// ClaimDue atomically claims up to limit due pending jobs for execution.
// Jobs already locked by a concurrent sweep are skipped, so every due job
// is claimed by exactly one caller.
func (r *Repo) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*domain.ScheduledJob, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, claimDueSQL, now, limit)
	if err != nil {
		return nil, fmt.Errorf("claim due jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*domain.ScheduledJob{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("claim due jobs: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("claim due jobs: %w", err)
	}

	return jobs, nil
}

// MarkSucceeded resolves an executing job as succeeded. The job must still
// be in executing; anything else means the claim was lost and the caller's
// result is discarded with domain.ErrConflict.
func (r *Repo) MarkSucceeded(ctx context.Context, jobID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markSucceededSQL, jobID)
	if err != nil {
		return postgres.MapError(err, "job", jobID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: not executing: %w", jobID, domain.ErrConflict)
	}

	return nil
}

// MarkFailed resolves an executing job as failed, recording the cause.
func (r *Repo) MarkFailed(ctx context.Context, jobID uuid.UUID, cause string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markFailedSQL, jobID, cause)
	if err != nil {
		return postgres.MapError(err, "job", jobID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: not executing: %w", jobID, domain.ErrConflict)
	}

	return nil
}

// Requeue returns a claimed job to pending unresolved, keeping its attempt
// count. Used for claimed jobs the sweep had no budget left to start.
func (r *Repo) Requeue(ctx context.Context, jobID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, requeueSQL, jobID)
	if err != nil {
		return postgres.MapError(err, "job", jobID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: not executing: %w", jobID, domain.ErrConflict)
	}

	return nil
}

// ReclaimStale returns jobs claimed before the cutoff back to pending so
// the next sweep retries them. Reports how many were reclaimed.
func (r *Repo) ReclaimStale(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, reclaimStaleSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("reclaim stale jobs: %w", err)
	}

	return tag.RowsAffected(), nil
}

// scanJob scans one row (pgx.Row or pgx.Rows) into a domain.ScheduledJob.
func scanJob(row pgx.Row) (*domain.ScheduledJob, error) {
	var (
		j        domain.ScheduledJob
		targets  []string
		status   string
		claimed  *time.Time
		executed *time.Time
		lastErr  pgtype.Text
	)

	err := row.Scan(
		&j.ID, &j.DraftID, &j.RunAt, &targets, &status, &j.Attempts,
		&claimed, &executed, &lastErr, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	j.Targets = make([]domain.PublishTarget, len(targets))
	for i, tgt := range targets {
		j.Targets[i] = domain.PublishTarget(tgt)
	}
	j.Status = domain.JobStatus(status)
	j.ClaimedAt = claimed
	j.ExecutedAt = executed
	j.LastError = postgres.PgTextToPtr(lastErr)

	return &j, nil
}
