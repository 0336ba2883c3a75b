package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Auth sessions map a user ID to the SHA-256 hash of their active token.
// A token is only accepted while its hash matches the stored session, which
// makes sign-out and admin revocation effective immediately.

// SaveAuthSession stores the active token hash for a user with a TTL.
func SaveAuthSession(client *redis.Client, userID, tokenHash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, AuthSessionPrefix+userID, tokenHash, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession returns the stored token hash for a user, or redis.Nil.
func GetAuthSession(client *redis.Client, userID string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Get(ctx, AuthSessionPrefix+userID).Result()
}

// RevokeAuthSession deletes a user's auth session, invalidating their token.
func RevokeAuthSession(client *redis.Client, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, AuthSessionPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to revoke auth session: %w", err)
	}
	return nil
}

// TouchAuthSession extends the session TTL on successful authentication.
func TouchAuthSession(client *redis.Client, userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client.Expire(ctx, AuthSessionPrefix+userID, AuthSessionTTL)
}
