// Package schedule defers publish actions to a future time and executes
// them from a periodic sweep.
//
// There is no in-process timer: an external cron invoker hits the sweep
// endpoint on a fixed cadence, and all mutual exclusion lives in the
// store. A sweep claims due jobs with a conditional update, so two
// overlapping sweeps never fire the same job twice.
package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/adapter/postgres/job"
	"github.com/nashirhq/nashir-backend/internal/config"
	"github.com/nashirhq/nashir-backend/internal/domain"
	"github.com/nashirhq/nashir-backend/internal/service/publish"
	"github.com/nashirhq/nashir-backend/internal/service/social"
	"github.com/nashirhq/nashir-backend/pkg/ctxutil"
)

type jobRepo interface {
	Create(ctx context.Context, j *domain.ScheduledJob) (*domain.ScheduledJob, error)
	List(ctx context.Context, f job.ListFilter) ([]*domain.ScheduledJob, error)
	CancelPending(ctx context.Context, draftID uuid.UUID) (int64, error)
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*domain.ScheduledJob, error)
	MarkSucceeded(ctx context.Context, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, cause string) error
	Requeue(ctx context.Context, jobID uuid.UUID) error
	ReclaimStale(ctx context.Context, cutoff time.Time) (int64, error)
}

type sitePublisher interface {
	PublishByDraft(ctx context.Context, draftID uuid.UUID) (*publish.Result, error)
}

type socialPublisher interface {
	PostByDraft(ctx context.Context, draftID uuid.UUID) (*social.Result, error)
}

// Service persists publish intents and executes them when due.
type Service struct {
	jobs   jobRepo
	site   sitePublisher
	social socialPublisher
	cfg    config.SchedulerConfig
	log    *slog.Logger

	now func() time.Time
}

// NewService creates a new Schedule service. social may be nil when
// LinkedIn publishing is disabled; jobs targeting it then fail.
func NewService(
	log *slog.Logger,
	jobs jobRepo,
	site sitePublisher,
	socialPub socialPublisher,
	cfg config.SchedulerConfig,
) *Service {
	return &Service{
		jobs:   jobs,
		site:   site,
		social: socialPub,
		cfg:    cfg,
		log:    log.With("service", "schedule"),
		now:    time.Now,
	}
}

func actorFromCtx(ctx context.Context) (uuid.UUID, error) {
	actor, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return actor, nil
}
