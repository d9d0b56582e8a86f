package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mehraj28/Payroll-Mangement/pkg/telemetry"
)

const revocationKeyPrefix = "auth:revoked:"

// RedisRevocationRepository implements RevocationRepository using Redis.
// Entries carry a TTL equal to the token's remaining life, so the denylist
// never grows past the set of still-valid tokens.
type RedisRevocationRepository struct {
	client *redis.Client
}

// NewRedisRevocationRepository creates a new RedisRevocationRepository
func NewRedisRevocationRepository(client *redis.Client) *RedisRevocationRepository {
	return &RedisRevocationRepository{client: client}
}

// Revoke marks the token ID revoked for the given remaining lifetime
func (r *RedisRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.redis.revocation.revoke")
	defer span.End()

	span.SetAttributes(attribute.String("token_id", tokenID))

	if ttl <= 0 {
		// Already past expiry; nothing to deny.
		span.SetStatus(codes.Ok, "token already expired")
		return nil
	}

	if err := r.client.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// IsRevoked checks whether the token ID has been revoked
func (r *RedisRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.redis.revocation.is_revoked")
	defer span.End()

	span.SetAttributes(attribute.String("token_id", tokenID))

	err := r.client.Get(ctx, revocationKeyPrefix+tokenID).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			span.SetStatus(codes.Ok, "")
			return false, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return true, nil
}
