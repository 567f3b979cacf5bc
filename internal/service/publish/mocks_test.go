package publish

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg publish . topicRepo draftRepo indexNotifier txManager

var (
	_ topicRepo     = &topicRepoMock{}
	_ draftRepo     = &draftRepoMock{}
	_ indexNotifier = &indexNotifierMock{}
	_ txManager     = &txManagerMock{}
)

type topicRepoMock struct {
	GetByIDFunc      func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	UpdateStatusFunc func(ctx context.Context, t *domain.Topic, expected domain.Status) (*domain.Topic, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		UpdateStatus []struct {
			Ctx      context.Context
			T        *domain.Topic
			Expected domain.Status
		}
	}
	lockGetByID      sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, topicID)
}

func (mock *topicRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) UpdateStatus(ctx context.Context, t *domain.Topic, expected domain.Status) (*domain.Topic, error) {
	if mock.UpdateStatusFunc == nil {
		panic("topicRepoMock.UpdateStatusFunc: method is nil but topicRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		T        *domain.Topic
		Expected domain.Status
	}{Ctx: ctx, T: t, Expected: expected}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, t, expected)
}

func (mock *topicRepoMock) UpdateStatusCalls() []struct {
	Ctx      context.Context
	T        *domain.Topic
	Expected domain.Status
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

type draftRepoMock struct {
	GetByIDFunc       func(ctx context.Context, draftID uuid.UUID) (*domain.ContentDraft, error)
	MarkPublishedFunc func(ctx context.Context, draftID uuid.UUID, status domain.DraftStatus, slug, url string) (*domain.ContentDraft, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
		MarkPublished []struct {
			Ctx     context.Context
			DraftID uuid.UUID
			Status  domain.DraftStatus
			Slug    string
			URL     string
		}
	}
	lockGetByID       sync.RWMutex
	lockMarkPublished sync.RWMutex
}

func (mock *draftRepoMock) GetByID(ctx context.Context, draftID uuid.UUID) (*domain.ContentDraft, error) {
	if mock.GetByIDFunc == nil {
		panic("draftRepoMock.GetByIDFunc: method is nil but draftRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
	}{Ctx: ctx, DraftID: draftID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, draftID)
}

func (mock *draftRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *draftRepoMock) MarkPublished(ctx context.Context, draftID uuid.UUID, status domain.DraftStatus, slug, url string) (*domain.ContentDraft, error) {
	if mock.MarkPublishedFunc == nil {
		panic("draftRepoMock.MarkPublishedFunc: method is nil but draftRepo.MarkPublished was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
		Status  domain.DraftStatus
		Slug    string
		URL     string
	}{Ctx: ctx, DraftID: draftID, Status: status, Slug: slug, URL: url}
	mock.lockMarkPublished.Lock()
	mock.calls.MarkPublished = append(mock.calls.MarkPublished, callInfo)
	mock.lockMarkPublished.Unlock()
	return mock.MarkPublishedFunc(ctx, draftID, status, slug, url)
}

func (mock *draftRepoMock) MarkPublishedCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
	Status  domain.DraftStatus
	Slug    string
	URL     string
} {
	mock.lockMarkPublished.RLock()
	calls := mock.calls.MarkPublished
	mock.lockMarkPublished.RUnlock()
	return calls
}

type indexNotifierMock struct {
	NotifyFunc func(ctx context.Context, urls []string) error

	calls struct {
		Notify []struct {
			Ctx  context.Context
			URLs []string
		}
	}
	lockNotify sync.RWMutex
}

func (mock *indexNotifierMock) Notify(ctx context.Context, urls []string) error {
	if mock.NotifyFunc == nil {
		panic("indexNotifierMock.NotifyFunc: method is nil but indexNotifier.Notify was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		URLs []string
	}{Ctx: ctx, URLs: urls}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, urls)
}

func (mock *indexNotifierMock) NotifyCalls() []struct {
	Ctx  context.Context
	URLs []string
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
