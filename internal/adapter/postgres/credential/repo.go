// Package credential implements the SocialCredential repository using
// PostgreSQL. Tokens arrive here already encrypted; this package never
// sees plaintext.
package credential

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/nashirhq/nashir-backend/internal/adapter/postgres"
	"github.com/nashirhq/nashir-backend/internal/domain"
)

// Repo provides social credential persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new social credential repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const credentialColumns = `
    id, user_id, provider, token_ciphertext, expires_at, scope, member_urn,
    created_at, updated_at`

const upsertCredentialSQL = `
INSERT INTO social_credentials (user_id, provider, token_ciphertext, expires_at, scope, member_urn)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, provider) DO UPDATE
SET token_ciphertext = EXCLUDED.token_ciphertext,
    expires_at       = EXCLUDED.expires_at,
    scope            = EXCLUDED.scope,
    member_urn       = EXCLUDED.member_urn,
    updated_at       = now()
RETURNING` + credentialColumns

const getCredentialSQL = `
SELECT` + credentialColumns + `
FROM social_credentials
WHERE user_id = $1 AND provider = $2`

const deleteCredentialSQL = `
DELETE FROM social_credentials
WHERE user_id = $1 AND provider = $2`

// Upsert stores the credential, replacing any existing one for the same
// user and provider. Reconnecting always overwrites the stored token.
func (r *Repo) Upsert(ctx context.Context, c *domain.SocialCredential) (*domain.SocialCredential, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, upsertCredentialSQL,
		c.UserID, string(c.Provider), c.TokenCiphertext, c.ExpiresAt, c.Scope, c.MemberURN,
	)

	saved, err := scanCredential(row)
	if err != nil {
		return nil, postgres.MapError(err, "credential", c.UserID)
	}

	return saved, nil
}

// Get returns the credential for a user and provider.
// Returns domain.ErrNotConnected when no credential is stored.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, provider domain.SocialProvider) (*domain.SocialCredential, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCredential(q.QueryRow(ctx, getCredentialSQL, userID, string(provider)))
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("%s credential for user %s: %w", provider, userID, domain.ErrNotConnected)
	}
	if err != nil {
		return nil, postgres.MapError(err, "credential", userID)
	}

	return c, nil
}

// Delete removes the credential for a user and provider. Deleting an
// absent credential is a no-op.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, provider domain.SocialProvider) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteCredentialSQL, userID, string(provider)); err != nil {
		return postgres.MapError(err, "credential", userID)
	}

	return nil
}

// scanCredential scans one row into a domain.SocialCredential.
func scanCredential(row pgx.Row) (*domain.SocialCredential, error) {
	var (
		c        domain.SocialCredential
		provider string
	)

	err := row.Scan(
		&c.ID, &c.UserID, &provider, &c.TokenCiphertext, &c.ExpiresAt, &c.Scope, &c.MemberURN,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Provider = domain.SocialProvider(provider)
	return &c, nil
}
