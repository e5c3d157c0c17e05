package utils

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

// memRevocationStore stands in for the Redis auth cache.
type memRevocationStore struct {
	keys map[string]time.Duration
}

func (s *memRevocationStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	s.keys[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (s *memRevocationStore) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := s.keys[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func withRevocationStore(t *testing.T, store revocationStore) {
	t.Helper()
	orig := sessionRevocations
	sessionRevocations = store
	t.Cleanup(func() { sessionRevocations = orig })
}

func TestRevokeSessionDenylistsOnlyThatToken(t *testing.T) {
	store := &memRevocationStore{keys: make(map[string]time.Duration)}
	withRevocationStore(t, store)

	revoked, err := GenerateSessionToken("user-1", "a@b.com", "Asha", "salon_admin", "salon-1", "")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	other, err := GenerateSessionToken("user-2", "c@d.com", "Ben", "customer", "", "")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	if IsSessionRevoked(revoked) {
		t.Error("fresh token reported revoked")
	}
	if err := RevokeSession(revoked, SessionTokenTTL); err != nil {
		t.Fatalf("RevokeSession: %v", err)
	}
	if !IsSessionRevoked(revoked) {
		t.Error("revoked token not reported revoked")
	}
	if IsSessionRevoked(other) {
		t.Error("unrelated token reported revoked")
	}

	// The denylist entry must not outlive the token it blocks.
	for key, ttl := range store.keys {
		if ttl != SessionTokenTTL {
			t.Errorf("denylist ttl for %s = %v, want %v", key, ttl, SessionTokenTTL)
		}
		if key == revokedSessionPrefix+revoked {
			t.Error("raw token stored as denylist key")
		}
	}
}

func TestSessionRevocationFailsOpenWithoutCache(t *testing.T) {
	withRevocationStore(t, nil)

	if IsSessionRevoked("any-token") {
		t.Error("token reported revoked with no auth cache configured")
	}
	if err := RevokeSession("any-token", time.Minute); err != nil {
		t.Errorf("RevokeSession without cache: %v", err)
	}
}
