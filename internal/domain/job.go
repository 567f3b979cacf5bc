package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of a scheduled publish job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusExecuting JobStatus = "executing"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusExecuting, JobStatusSucceeded, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true for resolved states; a terminal job is never
// picked up by a sweep again.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed || s == JobStatusCancelled
}

// PublishTarget is a delivery channel for a scheduled job.
type PublishTarget string

const (
	TargetSite     PublishTarget = "site"
	TargetLinkedIn PublishTarget = "linkedin"
)

func (t PublishTarget) IsValid() bool {
	return t == TargetSite || t == TargetLinkedIn
}

// ScheduledJob is a persisted intent to execute a publish/post action at
// or after RunAt. RunAt must be strictly in the future at creation. A
// cancelled job must never execute; a job claimed as executing but never
// resolved is reclaimed after a staleness window.
type ScheduledJob struct {
	ID       uuid.UUID
	DraftID  uuid.UUID
	RunAt    time.Time
	Targets  []PublishTarget
	Status   JobStatus
	Attempts int

	ClaimedAt  *time.Time
	ExecutedAt *time.Time
	LastError  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDue returns true if the job should be picked up by a sweep at now.
func (j *ScheduledJob) IsDue(now time.Time) bool {
	return j.Status == JobStatusPending && !j.RunAt.After(now)
}
