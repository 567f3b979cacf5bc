package social

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nashirhq/nashir-backend/internal/auth"
	"github.com/nashirhq/nashir-backend/internal/domain"
)

// BeginConnect starts the LinkedIn OAuth flow for the calling user.
func (s *Service) BeginConnect(ctx context.Context) (*ConnectIntent, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}

	raw, hash, err := s.tokens.GenerateStateToken()
	if err != nil {
		return nil, fmt.Errorf("generate state token: %w", err)
	}

	return &ConnectIntent{
		AuthorizeURL: s.client.AuthorizeURL(raw),
		State:        raw,
		StateHash:    hash,
	}, nil
}

// CompleteConnect finishes the OAuth callback: verifies the state echoed
// by the provider against the hash bound to the caller's cookie, exchanges
// the code, and stores the encrypted credential.
func (s *Service) CompleteConnect(ctx context.Context, code, state, stateHash string) (*ConnectionStatus, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if state == "" || stateHash == "" || auth.HashToken(state) != stateHash {
		return nil, fmt.Errorf("oauth state mismatch: %w", domain.ErrForbidden)
	}
	if code == "" {
		return nil, fmt.Errorf("missing authorization code: %w", domain.ErrValidation)
	}

	token, err := s.client.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	ciphertext, err := s.cipher.Seal(token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("encrypt access token: %w", err)
	}

	saved, err := s.creds.Upsert(ctx, &domain.SocialCredential{
		UserID:          actor,
		Provider:        domain.ProviderLinkedIn,
		TokenCiphertext: ciphertext,
		ExpiresAt:       token.ExpiresAt,
		Scope:           token.Scope,
		MemberURN:       token.MemberURN,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "linkedin account connected",
		slog.String("user_id", actor.String()),
		slog.Time("expires_at", saved.ExpiresAt))

	return credentialStatus(saved), nil
}

// Status reports the calling user's LinkedIn connection. A missing
// credential is a normal answer, not an error.
func (s *Service) Status(ctx context.Context) (*ConnectionStatus, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	cred, err := s.creds.Get(ctx, actor, domain.ProviderLinkedIn)
	if errors.Is(err, domain.ErrNotConnected) {
		return &ConnectionStatus{Connected: false}, nil
	}
	if err != nil {
		return nil, err
	}

	return credentialStatus(cred), nil
}

// Disconnect removes the calling user's stored LinkedIn credential.
// Disconnecting an absent credential is a no-op.
func (s *Service) Disconnect(ctx context.Context) error {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := s.creds.Delete(ctx, actor, domain.ProviderLinkedIn); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "linkedin account disconnected",
		slog.String("user_id", actor.String()))

	return nil
}

func credentialStatus(c *domain.SocialCredential) *ConnectionStatus {
	expiresAt := c.ExpiresAt
	return &ConnectionStatus{
		Connected: true,
		ExpiresAt: &expiresAt,
		Scope:     c.Scope,
		MemberURN: c.MemberURN,
	}
}
