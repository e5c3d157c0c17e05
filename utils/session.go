package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// revocationStore is the slice of the auth cache the session denylist needs.
type revocationStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// sessionRevocations is backed by the auth cache once InitAuthCache has run.
var sessionRevocations revocationStore

const revokedSessionPrefix = "session:revoked:"

// revokedSessionKey hashes the token so raw JWTs never land in Redis.
func revokedSessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedSessionPrefix + hex.EncodeToString(sum[:])
}

// RevokeSession denylists a session token for ttl, after which the token has
// expired on its own anyway. Logout calls this so a copied cookie dies with
// the session instead of staying valid for the rest of the seven days.
func RevokeSession(token string, ttl time.Duration) error {
	if sessionRevocations == nil || token == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return sessionRevocations.Set(ctx, revokedSessionKey(token), "1", ttl).Err()
}

// IsSessionRevoked reports whether a token has been denylisted. The check fails
// open when the auth cache is unavailable so a Redis outage cannot lock every
// signed-in user out.
func IsSessionRevoked(token string) bool {
	if sessionRevocations == nil || token == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := sessionRevocations.Exists(ctx, revokedSessionKey(token)).Result()
	if err != nil {
		GetLogger().Warn("session revocation check failed", zap.Error(err))
		return false
	}
	return n > 0
}
