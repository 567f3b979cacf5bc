package domain

import (
	"time"

	"github.com/google/uuid"
)

// SocialProvider is a third-party publishing platform.
type SocialProvider string

const (
	ProviderLinkedIn SocialProvider = "linkedin"
)

func (p SocialProvider) IsValid() bool {
	return p == ProviderLinkedIn
}

// SocialCredential is a stored OAuth credential for a social platform.
// The access token is encrypted at rest; only derived metadata (expiry,
// scope, member URN) is ever exposed outside the Social Publisher.
type SocialCredential struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Provider SocialProvider

	// TokenCiphertext is the AES-GCM encrypted access token. It is
	// decrypted only at the point of use and never logged.
	TokenCiphertext []byte
	ExpiresAt       time.Time
	Scope           string
	MemberURN       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired returns true if the credential can no longer authenticate
// calls at the given time.
func (c *SocialCredential) IsExpired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
