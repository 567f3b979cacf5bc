// Package social publishes approved LinkedIn drafts and manages the
// OAuth credentials that authorize them.
//
// Third-party network variability stays inside this package: callers get
// domain sentinels (ErrNotConnected, ErrTokenExpired) and a normalized
// Result, never a transport error they have to interpret. Stored tokens
// are decrypted only at the point of use and never logged or returned.
package social

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nashirhq/nashir-backend/internal/adapter/linkedin"
	"github.com/nashirhq/nashir-backend/internal/domain"
	"github.com/nashirhq/nashir-backend/pkg/ctxutil"
)

type credentialRepo interface {
	Upsert(ctx context.Context, c *domain.SocialCredential) (*domain.SocialCredential, error)
	Get(ctx context.Context, userID uuid.UUID, provider domain.SocialProvider) (*domain.SocialCredential, error)
	Delete(ctx context.Context, userID uuid.UUID, provider domain.SocialProvider) error
}

type draftRepo interface {
	GetByID(ctx context.Context, draftID uuid.UUID) (*domain.ContentDraft, error)
	GetByKey(ctx context.Context, topicID uuid.UUID, kind domain.DraftKind, lang domain.Language) (*domain.ContentDraft, error)
	MarkPublished(ctx context.Context, draftID uuid.UUID, status domain.DraftStatus, slug, url string) (*domain.ContentDraft, error)
	StorePermalink(ctx context.Context, draftID uuid.UUID, permalink string) (*domain.ContentDraft, error)
	RecordPostError(ctx context.Context, draftID uuid.UUID, cause string) error
}

type topicRepo interface {
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	UpdateStatus(ctx context.Context, t *domain.Topic, expected domain.Status) (*domain.Topic, error)
}

type linkedInClient interface {
	AuthorizeURL(state string) string
	Exchange(ctx context.Context, code string) (*linkedin.Token, error)
	Post(ctx context.Context, accessToken, authorURN, text string) (string, error)
}

type tokenCipher interface {
	Seal(plaintext string) ([]byte, error)
	Open(ciphertext []byte) (string, error)
}

type stateTokens interface {
	GenerateStateToken() (raw string, hash string, err error)
}

// Service connects LinkedIn accounts and delivers approved posts.
type Service struct {
	creds  credentialRepo
	drafts draftRepo
	topics topicRepo
	client linkedInClient
	cipher tokenCipher
	tokens stateTokens

	// publisherID is the account whose credential scheduled posts use.
	publisherID uuid.UUID

	log *slog.Logger
}

// NewService creates a new Social service. publisherID may be uuid.Nil
// when scheduled LinkedIn publishing is not configured.
func NewService(
	log *slog.Logger,
	creds credentialRepo,
	drafts draftRepo,
	topics topicRepo,
	client linkedInClient,
	cipher tokenCipher,
	tokens stateTokens,
	publisherID uuid.UUID,
) *Service {
	return &Service{
		creds:       creds,
		drafts:      drafts,
		topics:      topics,
		client:      client,
		cipher:      cipher,
		tokens:      tokens,
		publisherID: publisherID,
		log:         log.With("service", "social"),
	}
}

// Result reports a LinkedIn delivery. A non-empty Warning means the posts
// are committed to our own record but at least one delivery bounced; the
// topic keeps its approved status and delivery must be retried.
type Result struct {
	Topic       *domain.Topic
	PermalinkEn string
	PermalinkAr string
	Warning     string
}

// ConnectIntent starts the OAuth redirect dance. State travels to the
// provider raw; StateHash goes into a short-lived cookie and is compared
// against the state echoed back on callback.
type ConnectIntent struct {
	AuthorizeURL string
	State        string
	StateHash    string
}

// ConnectionStatus exposes derived credential metadata. The token itself
// never leaves the service.
type ConnectionStatus struct {
	Connected bool
	ExpiresAt *time.Time
	Scope     string
	MemberURN string
}

func actorFromCtx(ctx context.Context) (uuid.UUID, error) {
	actor, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return actor, nil
}
