package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	UpsertFunc      func(ctx context.Context, d *domain.ContentDraft) (*domain.ContentDraft, error)
	ListByTopicFunc func(ctx context.Context, topicID uuid.UUID) ([]*domain.ContentDraft, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			D   *domain.ContentDraft
		}
		ListByTopic []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
	}
	lockUpsert      sync.RWMutex
	lockListByTopic sync.RWMutex
}

func (mock *draftRepoMock) Upsert(ctx context.Context, d *domain.ContentDraft) (*domain.ContentDraft, error) {
	if mock.UpsertFunc == nil {
		panic("draftRepoMock.UpsertFunc: method is nil but draftRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.ContentDraft
	}{Ctx: ctx, D: d}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, d)
}

func (mock *draftRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	D   *domain.ContentDraft
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *draftRepoMock) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.ContentDraft, error) {
	if mock.ListByTopicFunc == nil {
		panic("draftRepoMock.ListByTopicFunc: method is nil but draftRepo.ListByTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockListByTopic.Lock()
	mock.calls.ListByTopic = append(mock.calls.ListByTopic, callInfo)
	mock.lockListByTopic.Unlock()
	return mock.ListByTopicFunc(ctx, topicID)
}

func (mock *draftRepoMock) ListByTopicCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockListByTopic.RLock()
	calls := mock.calls.ListByTopic
	mock.lockListByTopic.RUnlock()
	return calls
}
