package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/adapter/postgres/job"
	"github.com/nashirhq/nashir-backend/internal/domain"
	"github.com/nashirhq/nashir-backend/internal/service/publish"
	"github.com/nashirhq/nashir-backend/internal/service/social"
)

//go:generate moq -out mocks_test.go -pkg schedule . jobRepo sitePublisher socialPublisher

var (
	_ jobRepo         = &jobRepoMock{}
	_ sitePublisher   = &sitePublisherMock{}
	_ socialPublisher = &socialPublisherMock{}
)

type jobRepoMock struct {
	CreateFunc        func(ctx context.Context, j *domain.ScheduledJob) (*domain.ScheduledJob, error)
	ListFunc          func(ctx context.Context, f job.ListFilter) ([]*domain.ScheduledJob, error)
	CancelPendingFunc func(ctx context.Context, draftID uuid.UUID) (int64, error)
	ClaimDueFunc      func(ctx context.Context, now time.Time, limit int) ([]*domain.ScheduledJob, error)
	MarkSucceededFunc func(ctx context.Context, jobID uuid.UUID) error
	MarkFailedFunc    func(ctx context.Context, jobID uuid.UUID, cause string) error
	RequeueFunc       func(ctx context.Context, jobID uuid.UUID) error
	ReclaimStaleFunc  func(ctx context.Context, cutoff time.Time) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			J   *domain.ScheduledJob
		}
		List []struct {
			Ctx context.Context
			F   job.ListFilter
		}
		CancelPending []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
		ClaimDue []struct {
			Ctx   context.Context
			Now   time.Time
			Limit int
		}
		MarkSucceeded []struct {
			Ctx   context.Context
			JobID uuid.UUID
		}
		MarkFailed []struct {
			Ctx   context.Context
			JobID uuid.UUID
			Cause string
		}
		Requeue []struct {
			Ctx   context.Context
			JobID uuid.UUID
		}
		ReclaimStale []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
	}
	lockCreate        sync.RWMutex
	lockList          sync.RWMutex
	lockCancelPending sync.RWMutex
	lockClaimDue      sync.RWMutex
	lockMarkSucceeded sync.RWMutex
	lockMarkFailed    sync.RWMutex
	lockRequeue       sync.RWMutex
	lockReclaimStale  sync.RWMutex
}

func (mock *jobRepoMock) Create(ctx context.Context, j *domain.ScheduledJob) (*domain.ScheduledJob, error) {
	if mock.CreateFunc == nil {
		panic("jobRepoMock.CreateFunc: method is nil but jobRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		J   *domain.ScheduledJob
	}{Ctx: ctx, J: j}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, j)
}

func (mock *jobRepoMock) CreateCalls() []struct {
	Ctx context.Context
	J   *domain.ScheduledJob
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *jobRepoMock) List(ctx context.Context, f job.ListFilter) ([]*domain.ScheduledJob, error) {
	if mock.ListFunc == nil {
		panic("jobRepoMock.ListFunc: method is nil but jobRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   job.ListFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *jobRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   job.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *jobRepoMock) CancelPending(ctx context.Context, draftID uuid.UUID) (int64, error) {
	if mock.CancelPendingFunc == nil {
		panic("jobRepoMock.CancelPendingFunc: method is nil but jobRepo.CancelPending was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
	}{Ctx: ctx, DraftID: draftID}
	mock.lockCancelPending.Lock()
	mock.calls.CancelPending = append(mock.calls.CancelPending, callInfo)
	mock.lockCancelPending.Unlock()
	return mock.CancelPendingFunc(ctx, draftID)
}

func (mock *jobRepoMock) CancelPendingCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockCancelPending.RLock()
	calls := mock.calls.CancelPending
	mock.lockCancelPending.RUnlock()
	return calls
}

func (mock *jobRepoMock) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*domain.ScheduledJob, error) {
	if mock.ClaimDueFunc == nil {
		panic("jobRepoMock.ClaimDueFunc: method is nil but jobRepo.ClaimDue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Now   time.Time
		Limit int
	}{Ctx: ctx, Now: now, Limit: limit}
	mock.lockClaimDue.Lock()
	mock.calls.ClaimDue = append(mock.calls.ClaimDue, callInfo)
	mock.lockClaimDue.Unlock()
	return mock.ClaimDueFunc(ctx, now, limit)
}

func (mock *jobRepoMock) ClaimDueCalls() []struct {
	Ctx   context.Context
	Now   time.Time
	Limit int
} {
	mock.lockClaimDue.RLock()
	calls := mock.calls.ClaimDue
	mock.lockClaimDue.RUnlock()
	return calls
}

func (mock *jobRepoMock) MarkSucceeded(ctx context.Context, jobID uuid.UUID) error {
	if mock.MarkSucceededFunc == nil {
		panic("jobRepoMock.MarkSucceededFunc: method is nil but jobRepo.MarkSucceeded was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		JobID uuid.UUID
	}{Ctx: ctx, JobID: jobID}
	mock.lockMarkSucceeded.Lock()
	mock.calls.MarkSucceeded = append(mock.calls.MarkSucceeded, callInfo)
	mock.lockMarkSucceeded.Unlock()
	return mock.MarkSucceededFunc(ctx, jobID)
}

func (mock *jobRepoMock) MarkSucceededCalls() []struct {
	Ctx   context.Context
	JobID uuid.UUID
} {
	mock.lockMarkSucceeded.RLock()
	calls := mock.calls.MarkSucceeded
	mock.lockMarkSucceeded.RUnlock()
	return calls
}

func (mock *jobRepoMock) MarkFailed(ctx context.Context, jobID uuid.UUID, cause string) error {
	if mock.MarkFailedFunc == nil {
		panic("jobRepoMock.MarkFailedFunc: method is nil but jobRepo.MarkFailed was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		JobID uuid.UUID
		Cause string
	}{Ctx: ctx, JobID: jobID, Cause: cause}
	mock.lockMarkFailed.Lock()
	mock.calls.MarkFailed = append(mock.calls.MarkFailed, callInfo)
	mock.lockMarkFailed.Unlock()
	return mock.MarkFailedFunc(ctx, jobID, cause)
}

func (mock *jobRepoMock) MarkFailedCalls() []struct {
	Ctx   context.Context
	JobID uuid.UUID
	Cause string
} {
	mock.lockMarkFailed.RLock()
	calls := mock.calls.MarkFailed
	mock.lockMarkFailed.RUnlock()
	return calls
}

func (mock *jobRepoMock) Requeue(ctx context.Context, jobID uuid.UUID) error {
	if mock.RequeueFunc == nil {
		panic("jobRepoMock.RequeueFunc: method is nil but jobRepo.Requeue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		JobID uuid.UUID
	}{Ctx: ctx, JobID: jobID}
	mock.lockRequeue.Lock()
	mock.calls.Requeue = append(mock.calls.Requeue, callInfo)
	mock.lockRequeue.Unlock()
	return mock.RequeueFunc(ctx, jobID)
}

func (mock *jobRepoMock) RequeueCalls() []struct {
	Ctx   context.Context
	JobID uuid.UUID
} {
	mock.lockRequeue.RLock()
	calls := mock.calls.Requeue
	mock.lockRequeue.RUnlock()
	return calls
}

func (mock *jobRepoMock) ReclaimStale(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.ReclaimStaleFunc == nil {
		panic("jobRepoMock.ReclaimStaleFunc: method is nil but jobRepo.ReclaimStale was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockReclaimStale.Lock()
	mock.calls.ReclaimStale = append(mock.calls.ReclaimStale, callInfo)
	mock.lockReclaimStale.Unlock()
	return mock.ReclaimStaleFunc(ctx, cutoff)
}

func (mock *jobRepoMock) ReclaimStaleCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.lockReclaimStale.RLock()
	calls := mock.calls.ReclaimStale
	mock.lockReclaimStale.RUnlock()
	return calls
}

type sitePublisherMock struct {
	PublishByDraftFunc func(ctx context.Context, draftID uuid.UUID) (*publish.Result, error)

	calls struct {
		PublishByDraft []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
	}
	lockPublishByDraft sync.RWMutex
}

func (mock *sitePublisherMock) PublishByDraft(ctx context.Context, draftID uuid.UUID) (*publish.Result, error) {
	if mock.PublishByDraftFunc == nil {
		panic("sitePublisherMock.PublishByDraftFunc: method is nil but sitePublisher.PublishByDraft was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
	}{Ctx: ctx, DraftID: draftID}
	mock.lockPublishByDraft.Lock()
	mock.calls.PublishByDraft = append(mock.calls.PublishByDraft, callInfo)
	mock.lockPublishByDraft.Unlock()
	return mock.PublishByDraftFunc(ctx, draftID)
}

func (mock *sitePublisherMock) PublishByDraftCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockPublishByDraft.RLock()
	calls := mock.calls.PublishByDraft
	mock.lockPublishByDraft.RUnlock()
	return calls
}

type socialPublisherMock struct {
	PostByDraftFunc func(ctx context.Context, draftID uuid.UUID) (*social.Result, error)

	calls struct {
		PostByDraft []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
	}
	lockPostByDraft sync.RWMutex
}

func (mock *socialPublisherMock) PostByDraft(ctx context.Context, draftID uuid.UUID) (*social.Result, error) {
	if mock.PostByDraftFunc == nil {
		panic("socialPublisherMock.PostByDraftFunc: method is nil but socialPublisher.PostByDraft was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
	}{Ctx: ctx, DraftID: draftID}
	mock.lockPostByDraft.Lock()
	mock.calls.PostByDraft = append(mock.calls.PostByDraft, callInfo)
	mock.lockPostByDraft.Unlock()
	return mock.PostByDraftFunc(ctx, draftID)
}

func (mock *socialPublisherMock) PostByDraftCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockPostByDraft.RLock()
	calls := mock.calls.PostByDraft
	mock.lockPostByDraft.RUnlock()
	return calls
}
