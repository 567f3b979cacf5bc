package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateFunc           func(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByIDFunc          func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListFunc             func(ctx context.Context) ([]*domain.Topic, error)
	UpdateStatusFunc     func(ctx context.Context, t *domain.Topic, expected domain.Status) (*domain.Topic, error)
	AcquireLockFunc      func(ctx context.Context, topicID, actor uuid.UUID) error
	ReleaseLockFunc      func(ctx context.Context, topicID, actor uuid.UUID) error
	ForceReleaseLockFunc func(ctx context.Context, topicID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Topic
		}
		GetByID []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		UpdateStatus []struct {
			Ctx      context.Context
			T        *domain.Topic
			Expected domain.Status
		}
		AcquireLock []struct {
			Ctx     context.Context
			TopicID uuid.UUID
			Actor   uuid.UUID
		}
		ReleaseLock []struct {
			Ctx     context.Context
			TopicID uuid.UUID
			Actor   uuid.UUID
		}
		ForceReleaseLock []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockList             sync.RWMutex
	lockUpdateStatus     sync.RWMutex
	lockAcquireLock      sync.RWMutex
	lockReleaseLock      sync.RWMutex
	lockForceReleaseLock sync.RWMutex
}

func (mock *topicRepoMock) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Topic
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Topic
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *topicRepoMock) List(ctx context.Context) ([]*domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *topicRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
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

func (mock *topicRepoMock) AcquireLock(ctx context.Context, topicID, actor uuid.UUID) error {
	if mock.AcquireLockFunc == nil {
		panic("topicRepoMock.AcquireLockFunc: method is nil but topicRepo.AcquireLock was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
		Actor   uuid.UUID
	}{Ctx: ctx, TopicID: topicID, Actor: actor}
	mock.lockAcquireLock.Lock()
	mock.calls.AcquireLock = append(mock.calls.AcquireLock, callInfo)
	mock.lockAcquireLock.Unlock()
	return mock.AcquireLockFunc(ctx, topicID, actor)
}

func (mock *topicRepoMock) AcquireLockCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
	Actor   uuid.UUID
} {
	mock.lockAcquireLock.RLock()
	calls := mock.calls.AcquireLock
	mock.lockAcquireLock.RUnlock()
	return calls
}

func (mock *topicRepoMock) ReleaseLock(ctx context.Context, topicID, actor uuid.UUID) error {
	if mock.ReleaseLockFunc == nil {
		panic("topicRepoMock.ReleaseLockFunc: method is nil but topicRepo.ReleaseLock was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
		Actor   uuid.UUID
	}{Ctx: ctx, TopicID: topicID, Actor: actor}
	mock.lockReleaseLock.Lock()
	mock.calls.ReleaseLock = append(mock.calls.ReleaseLock, callInfo)
	mock.lockReleaseLock.Unlock()
	return mock.ReleaseLockFunc(ctx, topicID, actor)
}

func (mock *topicRepoMock) ReleaseLockCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
	Actor   uuid.UUID
} {
	mock.lockReleaseLock.RLock()
	calls := mock.calls.ReleaseLock
	mock.lockReleaseLock.RUnlock()
	return calls
}

func (mock *topicRepoMock) ForceReleaseLock(ctx context.Context, topicID uuid.UUID) error {
	if mock.ForceReleaseLockFunc == nil {
		panic("topicRepoMock.ForceReleaseLockFunc: method is nil but topicRepo.ForceReleaseLock was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockForceReleaseLock.Lock()
	mock.calls.ForceReleaseLock = append(mock.calls.ForceReleaseLock, callInfo)
	mock.lockForceReleaseLock.Unlock()
	return mock.ForceReleaseLockFunc(ctx, topicID)
}

func (mock *topicRepoMock) ForceReleaseLockCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockForceReleaseLock.RLock()
	calls := mock.calls.ForceReleaseLock
	mock.lockForceReleaseLock.RUnlock()
	return calls
}
