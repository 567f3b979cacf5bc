package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

// SweepResult aggregates one sweep invocation.
type SweepResult struct {
	Reclaimed int64 `json:"reclaimed"`
	Succeeded int   `json:"succeeded"`
	Failed    int   `json:"failed"`
	Skipped   int   `json:"skipped"`
}

// Sweep reclaims stuck jobs, claims every due pending job, and executes
// them within the configured wall-clock budget.
//
// One job's failure never aborts the rest: it is recorded on the job row
// and counted. Jobs claimed after the budget runs out are requeued
// unstarted and counted as skipped; the next sweep picks them up.
func (s *Service) Sweep(ctx context.Context) (*SweepResult, error) {
	start := s.now()
	deadline := start.Add(s.cfg.SweepBudget)
	res := &SweepResult{}

	reclaimed, err := s.jobs.ReclaimStale(ctx, start.Add(-s.cfg.ClaimTTL))
	if err != nil {
		return nil, err
	}
	res.Reclaimed = reclaimed

	for {
		if !s.now().Before(deadline) {
			break
		}

		batch, err := s.jobs.ClaimDue(ctx, start, s.cfg.BatchSize)
		if err != nil {
			return res, err
		}
		if len(batch) == 0 {
			break
		}

		for _, j := range batch {
			if !s.now().Before(deadline) {
				if err := s.jobs.Requeue(ctx, j.ID); err != nil {
					s.log.ErrorContext(ctx, "requeue over-budget job failed",
						slog.String("job_id", j.ID.String()),
						slog.String("error", err.Error()))
				}
				res.Skipped++
				continue
			}

			if execErr := s.execute(ctx, j); execErr != nil {
				s.log.WarnContext(ctx, "job failed",
					slog.String("job_id", j.ID.String()),
					slog.String("draft_id", j.DraftID.String()),
					slog.String("error", execErr.Error()))
				if err := s.jobs.MarkFailed(ctx, j.ID, execErr.Error()); err != nil {
					s.log.ErrorContext(ctx, "recording job failure failed",
						slog.String("job_id", j.ID.String()),
						slog.String("error", err.Error()))
				}
				res.Failed++
				continue
			}

			if err := s.jobs.MarkSucceeded(ctx, j.ID); err != nil {
				s.log.ErrorContext(ctx, "recording job success failed",
					slog.String("job_id", j.ID.String()),
					slog.String("error", err.Error()))
			}
			res.Succeeded++
		}

		if len(batch) < s.cfg.BatchSize {
			break
		}
	}

	s.log.InfoContext(ctx, "sweep finished",
		slog.Int64("reclaimed", res.Reclaimed),
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed),
		slog.Int("skipped", res.Skipped),
		slog.Duration("elapsed", s.now().Sub(start)))

	return res, nil
}

// execute runs one claimed job against each of its targets.
func (s *Service) execute(ctx context.Context, j *domain.ScheduledJob) error {
	for _, target := range j.Targets {
		switch target {
		case domain.TargetSite:
			res, err := s.site.PublishByDraft(ctx, j.DraftID)
			if err != nil {
				return fmt.Errorf("site: %w", err)
			}
			if res.Warning != "" {
				s.log.WarnContext(ctx, "site publish warning",
					slog.String("job_id", j.ID.String()),
					slog.String("warning", res.Warning))
			}
		case domain.TargetLinkedIn:
			if s.social == nil {
				return fmt.Errorf("linkedin publishing is disabled")
			}
			res, err := s.social.PostByDraft(ctx, j.DraftID)
			if err != nil {
				return fmt.Errorf("linkedin: %w", err)
			}
			if res.Warning != "" {
				// The post is committed on our side; the bounced delivery
				// still fails the job so an operator sees and retries it.
				return fmt.Errorf("linkedin: %s", res.Warning)
			}
		default:
			return fmt.Errorf("unknown target %q", target)
		}
	}

	return nil
}
