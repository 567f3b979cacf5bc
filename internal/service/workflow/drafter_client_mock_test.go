package workflow

import (
	"context"
	"sync"

	"github.com/nashirhq/nashir-backend/internal/adapter/drafter"
	"github.com/nashirhq/nashir-backend/internal/domain"
)

var _ drafterClient = &drafterClientMock{}

type drafterClientMock struct {
	GeneratePromptFunc     func(ctx context.Context, t *domain.Topic) (string, error)
	GenerateArticleFunc    func(ctx context.Context, prompt string, lang domain.Language) (*drafter.Article, error)
	GenerateSocialPostFunc func(ctx context.Context, articleTitle, articleURL string, lang domain.Language) (string, error)

	calls struct {
		GeneratePrompt []struct {
			Ctx context.Context
			T   *domain.Topic
		}
		GenerateArticle []struct {
			Ctx    context.Context
			Prompt string
			Lang   domain.Language
		}
		GenerateSocialPost []struct {
			Ctx          context.Context
			ArticleTitle string
			ArticleURL   string
			Lang         domain.Language
		}
	}
	lockGeneratePrompt     sync.RWMutex
	lockGenerateArticle    sync.RWMutex
	lockGenerateSocialPost sync.RWMutex
}

func (mock *drafterClientMock) GeneratePrompt(ctx context.Context, t *domain.Topic) (string, error) {
	if mock.GeneratePromptFunc == nil {
		panic("drafterClientMock.GeneratePromptFunc: method is nil but drafterClient.GeneratePrompt was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Topic
	}{Ctx: ctx, T: t}
	mock.lockGeneratePrompt.Lock()
	mock.calls.GeneratePrompt = append(mock.calls.GeneratePrompt, callInfo)
	mock.lockGeneratePrompt.Unlock()
	return mock.GeneratePromptFunc(ctx, t)
}

func (mock *drafterClientMock) GeneratePromptCalls() []struct {
	Ctx context.Context
	T   *domain.Topic
} {
	mock.lockGeneratePrompt.RLock()
	calls := mock.calls.GeneratePrompt
	mock.lockGeneratePrompt.RUnlock()
	return calls
}

func (mock *drafterClientMock) GenerateArticle(ctx context.Context, prompt string, lang domain.Language) (*drafter.Article, error) {
	if mock.GenerateArticleFunc == nil {
		panic("drafterClientMock.GenerateArticleFunc: method is nil but drafterClient.GenerateArticle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
		Lang   domain.Language
	}{Ctx: ctx, Prompt: prompt, Lang: lang}
	mock.lockGenerateArticle.Lock()
	mock.calls.GenerateArticle = append(mock.calls.GenerateArticle, callInfo)
	mock.lockGenerateArticle.Unlock()
	return mock.GenerateArticleFunc(ctx, prompt, lang)
}

func (mock *drafterClientMock) GenerateArticleCalls() []struct {
	Ctx    context.Context
	Prompt string
	Lang   domain.Language
} {
	mock.lockGenerateArticle.RLock()
	calls := mock.calls.GenerateArticle
	mock.lockGenerateArticle.RUnlock()
	return calls
}

func (mock *drafterClientMock) GenerateSocialPost(ctx context.Context, articleTitle, articleURL string, lang domain.Language) (string, error) {
	if mock.GenerateSocialPostFunc == nil {
		panic("drafterClientMock.GenerateSocialPostFunc: method is nil but drafterClient.GenerateSocialPost was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ArticleTitle string
		ArticleURL   string
		Lang         domain.Language
	}{Ctx: ctx, ArticleTitle: articleTitle, ArticleURL: articleURL, Lang: lang}
	mock.lockGenerateSocialPost.Lock()
	mock.calls.GenerateSocialPost = append(mock.calls.GenerateSocialPost, callInfo)
	mock.lockGenerateSocialPost.Unlock()
	return mock.GenerateSocialPostFunc(ctx, articleTitle, articleURL, lang)
}

func (mock *drafterClientMock) GenerateSocialPostCalls() []struct {
	Ctx          context.Context
	ArticleTitle string
	ArticleURL   string
	Lang         domain.Language
} {
	mock.lockGenerateSocialPost.RLock()
	calls := mock.calls.GenerateSocialPost
	mock.lockGenerateSocialPost.RUnlock()
	return calls
}
