package social

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/adapter/linkedin"
	"github.com/nashirhq/nashir-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg social . credentialRepo draftRepo topicRepo linkedInClient tokenCipher stateTokens

var (
	_ credentialRepo = &credentialRepoMock{}
	_ draftRepo      = &draftRepoMock{}
	_ topicRepo      = &topicRepoMock{}
	_ linkedInClient = &linkedInClientMock{}
	_ tokenCipher    = &tokenCipherMock{}
	_ stateTokens    = &stateTokensMock{}
)

type credentialRepoMock struct {
	UpsertFunc func(ctx context.Context, c *domain.SocialCredential) (*domain.SocialCredential, error)
	GetFunc    func(ctx context.Context, userID uuid.UUID, provider domain.SocialProvider) (*domain.SocialCredential, error)
	DeleteFunc func(ctx context.Context, userID uuid.UUID, provider domain.SocialProvider) error

	calls struct {
		Upsert []struct {
			Ctx context.Context
			C   *domain.SocialCredential
		}
		Get []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Provider domain.SocialProvider
		}
		Delete []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Provider domain.SocialProvider
		}
	}
	lockUpsert sync.RWMutex
	lockGet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *credentialRepoMock) Upsert(ctx context.Context, c *domain.SocialCredential) (*domain.SocialCredential, error) {
	if mock.UpsertFunc == nil {
		panic("credentialRepoMock.UpsertFunc: method is nil but credentialRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.SocialCredential
	}{Ctx: ctx, C: c}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, c)
}

func (mock *credentialRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	C   *domain.SocialCredential
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *credentialRepoMock) Get(ctx context.Context, userID uuid.UUID, provider domain.SocialProvider) (*domain.SocialCredential, error) {
	if mock.GetFunc == nil {
		panic("credentialRepoMock.GetFunc: method is nil but credentialRepo.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Provider domain.SocialProvider
	}{Ctx: ctx, UserID: userID, Provider: provider}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, provider)
}

func (mock *credentialRepoMock) GetCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Provider domain.SocialProvider
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *credentialRepoMock) Delete(ctx context.Context, userID uuid.UUID, provider domain.SocialProvider) error {
	if mock.DeleteFunc == nil {
		panic("credentialRepoMock.DeleteFunc: method is nil but credentialRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Provider domain.SocialProvider
	}{Ctx: ctx, UserID: userID, Provider: provider}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, provider)
}

func (mock *credentialRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Provider domain.SocialProvider
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type draftRepoMock struct {
	GetByIDFunc         func(ctx context.Context, draftID uuid.UUID) (*domain.ContentDraft, error)
	GetByKeyFunc        func(ctx context.Context, topicID uuid.UUID, kind domain.DraftKind, lang domain.Language) (*domain.ContentDraft, error)
	MarkPublishedFunc   func(ctx context.Context, draftID uuid.UUID, status domain.DraftStatus, slug, url string) (*domain.ContentDraft, error)
	StorePermalinkFunc  func(ctx context.Context, draftID uuid.UUID, permalink string) (*domain.ContentDraft, error)
	RecordPostErrorFunc func(ctx context.Context, draftID uuid.UUID, cause string) error

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
		GetByKey []struct {
			Ctx     context.Context
			TopicID uuid.UUID
			Kind    domain.DraftKind
			Lang    domain.Language
		}
		MarkPublished []struct {
			Ctx     context.Context
			DraftID uuid.UUID
			Status  domain.DraftStatus
			Slug    string
			URL     string
		}
		StorePermalink []struct {
			Ctx       context.Context
			DraftID   uuid.UUID
			Permalink string
		}
		RecordPostError []struct {
			Ctx     context.Context
			DraftID uuid.UUID
			Cause   string
		}
	}
	lockGetByID         sync.RWMutex
	lockGetByKey        sync.RWMutex
	lockMarkPublished   sync.RWMutex
	lockStorePermalink  sync.RWMutex
	lockRecordPostError sync.RWMutex
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

func (mock *draftRepoMock) GetByKey(ctx context.Context, topicID uuid.UUID, kind domain.DraftKind, lang domain.Language) (*domain.ContentDraft, error) {
	if mock.GetByKeyFunc == nil {
		panic("draftRepoMock.GetByKeyFunc: method is nil but draftRepo.GetByKey was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
		Kind    domain.DraftKind
		Lang    domain.Language
	}{Ctx: ctx, TopicID: topicID, Kind: kind, Lang: lang}
	mock.lockGetByKey.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, callInfo)
	mock.lockGetByKey.Unlock()
	return mock.GetByKeyFunc(ctx, topicID, kind, lang)
}

func (mock *draftRepoMock) GetByKeyCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
	Kind    domain.DraftKind
	Lang    domain.Language
} {
	mock.lockGetByKey.RLock()
	calls := mock.calls.GetByKey
	mock.lockGetByKey.RUnlock()
	return calls
}

func (mock *draftRepoMock) StorePermalink(ctx context.Context, draftID uuid.UUID, permalink string) (*domain.ContentDraft, error) {
	if mock.StorePermalinkFunc == nil {
		panic("draftRepoMock.StorePermalinkFunc: method is nil but draftRepo.StorePermalink was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DraftID   uuid.UUID
		Permalink string
	}{Ctx: ctx, DraftID: draftID, Permalink: permalink}
	mock.lockStorePermalink.Lock()
	mock.calls.StorePermalink = append(mock.calls.StorePermalink, callInfo)
	mock.lockStorePermalink.Unlock()
	return mock.StorePermalinkFunc(ctx, draftID, permalink)
}

func (mock *draftRepoMock) StorePermalinkCalls() []struct {
	Ctx       context.Context
	DraftID   uuid.UUID
	Permalink string
} {
	mock.lockStorePermalink.RLock()
	calls := mock.calls.StorePermalink
	mock.lockStorePermalink.RUnlock()
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

func (mock *draftRepoMock) RecordPostError(ctx context.Context, draftID uuid.UUID, cause string) error {
	if mock.RecordPostErrorFunc == nil {
		panic("draftRepoMock.RecordPostErrorFunc: method is nil but draftRepo.RecordPostError was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
		Cause   string
	}{Ctx: ctx, DraftID: draftID, Cause: cause}
	mock.lockRecordPostError.Lock()
	mock.calls.RecordPostError = append(mock.calls.RecordPostError, callInfo)
	mock.lockRecordPostError.Unlock()
	return mock.RecordPostErrorFunc(ctx, draftID, cause)
}

func (mock *draftRepoMock) RecordPostErrorCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
	Cause   string
} {
	mock.lockRecordPostError.RLock()
	calls := mock.calls.RecordPostError
	mock.lockRecordPostError.RUnlock()
	return calls
}

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

type linkedInClientMock struct {
	AuthorizeURLFunc func(state string) string
	ExchangeFunc     func(ctx context.Context, code string) (*linkedin.Token, error)
	PostFunc         func(ctx context.Context, accessToken, authorURN, text string) (string, error)

	calls struct {
		AuthorizeURL []struct {
			State string
		}
		Exchange []struct {
			Ctx  context.Context
			Code string
		}
		Post []struct {
			Ctx         context.Context
			AccessToken string
			AuthorURN   string
			Text        string
		}
	}
	lockAuthorizeURL sync.RWMutex
	lockExchange     sync.RWMutex
	lockPost         sync.RWMutex
}

func (mock *linkedInClientMock) AuthorizeURL(state string) string {
	if mock.AuthorizeURLFunc == nil {
		panic("linkedInClientMock.AuthorizeURLFunc: method is nil but linkedInClient.AuthorizeURL was just called")
	}
	callInfo := struct {
		State string
	}{State: state}
	mock.lockAuthorizeURL.Lock()
	mock.calls.AuthorizeURL = append(mock.calls.AuthorizeURL, callInfo)
	mock.lockAuthorizeURL.Unlock()
	return mock.AuthorizeURLFunc(state)
}

func (mock *linkedInClientMock) AuthorizeURLCalls() []struct {
	State string
} {
	mock.lockAuthorizeURL.RLock()
	calls := mock.calls.AuthorizeURL
	mock.lockAuthorizeURL.RUnlock()
	return calls
}

func (mock *linkedInClientMock) Exchange(ctx context.Context, code string) (*linkedin.Token, error) {
	if mock.ExchangeFunc == nil {
		panic("linkedInClientMock.ExchangeFunc: method is nil but linkedInClient.Exchange was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockExchange.Lock()
	mock.calls.Exchange = append(mock.calls.Exchange, callInfo)
	mock.lockExchange.Unlock()
	return mock.ExchangeFunc(ctx, code)
}

func (mock *linkedInClientMock) ExchangeCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockExchange.RLock()
	calls := mock.calls.Exchange
	mock.lockExchange.RUnlock()
	return calls
}

func (mock *linkedInClientMock) Post(ctx context.Context, accessToken, authorURN, text string) (string, error) {
	if mock.PostFunc == nil {
		panic("linkedInClientMock.PostFunc: method is nil but linkedInClient.Post was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AccessToken string
		AuthorURN   string
		Text        string
	}{Ctx: ctx, AccessToken: accessToken, AuthorURN: authorURN, Text: text}
	mock.lockPost.Lock()
	mock.calls.Post = append(mock.calls.Post, callInfo)
	mock.lockPost.Unlock()
	return mock.PostFunc(ctx, accessToken, authorURN, text)
}

func (mock *linkedInClientMock) PostCalls() []struct {
	Ctx         context.Context
	AccessToken string
	AuthorURN   string
	Text        string
} {
	mock.lockPost.RLock()
	calls := mock.calls.Post
	mock.lockPost.RUnlock()
	return calls
}

type tokenCipherMock struct {
	SealFunc func(plaintext string) ([]byte, error)
	OpenFunc func(ciphertext []byte) (string, error)

	calls struct {
		Seal []struct {
			Plaintext string
		}
		Open []struct {
			Ciphertext []byte
		}
	}
	lockSeal sync.RWMutex
	lockOpen sync.RWMutex
}

func (mock *tokenCipherMock) Seal(plaintext string) ([]byte, error) {
	if mock.SealFunc == nil {
		panic("tokenCipherMock.SealFunc: method is nil but tokenCipher.Seal was just called")
	}
	callInfo := struct {
		Plaintext string
	}{Plaintext: plaintext}
	mock.lockSeal.Lock()
	mock.calls.Seal = append(mock.calls.Seal, callInfo)
	mock.lockSeal.Unlock()
	return mock.SealFunc(plaintext)
}

func (mock *tokenCipherMock) SealCalls() []struct {
	Plaintext string
} {
	mock.lockSeal.RLock()
	calls := mock.calls.Seal
	mock.lockSeal.RUnlock()
	return calls
}

func (mock *tokenCipherMock) Open(ciphertext []byte) (string, error) {
	if mock.OpenFunc == nil {
		panic("tokenCipherMock.OpenFunc: method is nil but tokenCipher.Open was just called")
	}
	callInfo := struct {
		Ciphertext []byte
	}{Ciphertext: ciphertext}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ciphertext)
}

func (mock *tokenCipherMock) OpenCalls() []struct {
	Ciphertext []byte
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

type stateTokensMock struct {
	GenerateStateTokenFunc func() (raw string, hash string, err error)

	calls struct {
		GenerateStateToken []struct{}
	}
	lockGenerateStateToken sync.RWMutex
}

func (mock *stateTokensMock) GenerateStateToken() (string, string, error) {
	if mock.GenerateStateTokenFunc == nil {
		panic("stateTokensMock.GenerateStateTokenFunc: method is nil but stateTokens.GenerateStateToken was just called")
	}
	mock.lockGenerateStateToken.Lock()
	mock.calls.GenerateStateToken = append(mock.calls.GenerateStateToken, struct{}{})
	mock.lockGenerateStateToken.Unlock()
	return mock.GenerateStateTokenFunc()
}

func (mock *stateTokensMock) GenerateStateTokenCalls() []struct{} {
	mock.lockGenerateStateToken.RLock()
	calls := mock.calls.GenerateStateToken
	mock.lockGenerateStateToken.RUnlock()
	return calls
}
