package repository

import (
	"context"
	"time"
)

// RevocationRepository defines the denylist of revoked token IDs. A token
// stays listed until its natural expiry, after which the signature check
// rejects it anyway.
type RevocationRepository interface {
	// Revoke marks the token ID revoked for the given remaining lifetime
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	// IsRevoked checks whether the token ID has been revoked
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
