package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/adapter/postgres/job"
	"github.com/nashirhq/nashir-backend/internal/domain"
)

// ScheduleInput is a request to publish a draft at a future time.
type ScheduleInput struct {
	DraftID uuid.UUID
	RunAt   time.Time
	Targets []domain.PublishTarget
}

// Validate checks the input against now. RunAt must be strictly in the
// future; a past or zero timestamp is an ErrInvalidSchedule, not a field
// validation error, so the API can report it distinctly.
func (in *ScheduleInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if in.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draftId", Message: "is required"})
	}
	if len(in.Targets) == 0 {
		errs = append(errs, domain.FieldError{Field: "targets", Message: "at least one target is required"})
	}
	for _, tgt := range in.Targets {
		if !tgt.IsValid() {
			errs = append(errs, domain.FieldError{Field: "targets", Message: fmt.Sprintf("unknown target %q", tgt)})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if !in.RunAt.After(now) {
		return fmt.Errorf("run_at %s is not in the future: %w",
			in.RunAt.Format(time.RFC3339), domain.ErrInvalidSchedule)
	}

	return nil
}

// Schedule persists a pending job for the draft.
func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (*domain.ScheduledJob, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}

	if err := in.Validate(s.now()); err != nil {
		return nil, err
	}

	created, err := s.jobs.Create(ctx, &domain.ScheduledJob{
		DraftID: in.DraftID,
		RunAt:   in.RunAt,
		Targets: in.Targets,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "job scheduled",
		slog.String("job_id", created.ID.String()),
		slog.String("draft_id", in.DraftID.String()),
		slog.Time("run_at", in.RunAt))

	return created, nil
}

// Cancel marks the draft's pending jobs cancelled and reports how many
// were affected. Cancelling when nothing is pending is a silent no-op;
// a job already claimed by a sweep is past the point of cancellation.
func (s *Service) Cancel(ctx context.Context, draftID uuid.UUID) (int64, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return 0, err
	}

	cancelled, err := s.jobs.CancelPending(ctx, draftID)
	if err != nil {
		return 0, err
	}

	if cancelled > 0 {
		s.log.InfoContext(ctx, "jobs cancelled",
			slog.String("draft_id", draftID.String()),
			slog.Int64("count", cancelled))
	}

	return cancelled, nil
}

// ListJobs returns jobs matching the filter, soonest first.
func (s *Service) ListJobs(ctx context.Context, f job.ListFilter) ([]*domain.ScheduledJob, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}

	return s.jobs.List(ctx, f)
}
