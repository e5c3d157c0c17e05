package utils

import (
	"strings"
	"testing"

	"salonq/config"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("user-1", "a@b.com", "Asha", "salon_admin", "salon-1", "Shear Genius")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, ok := VerifySessionToken(token)
	if !ok {
		t.Fatal("freshly issued token did not verify")
	}
	if claims.UserID != "user-1" || claims.Role != "salon_admin" {
		t.Errorf("claims = %+v, want user-1/salon_admin", claims)
	}
	if claims.SalonID != "salon-1" || claims.SalonName != "Shear Genius" {
		t.Errorf("salon claims = %q/%q", claims.SalonID, claims.SalonName)
	}
}

func TestSessionTokenFailsClosed(t *testing.T) {
	token, err := GenerateSessionToken("user-1", "a@b.com", "Asha", "customer", "", "")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	// Tamper with the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	if _, ok := VerifySessionToken(tampered); ok {
		t.Error("tampered token verified")
	}
	if _, ok := VerifySessionToken(""); ok {
		t.Error("empty token verified")
	}
	if _, ok := VerifySessionToken("not-a-jwt"); ok {
		t.Error("garbage token verified")
	}
}

func TestSigningKeyFollowsConfiguredSecret(t *testing.T) {
	orig := config.AppConfig.JWTSecret
	t.Cleanup(func() { config.AppConfig.JWTSecret = orig })

	config.AppConfig.JWTSecret = "configured-secret"
	token, err := GenerateSessionToken("user-1", "a@b.com", "Asha", "customer", "", "")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if _, ok := VerifySessionToken(token); !ok {
		t.Fatal("token signed with the configured secret did not verify")
	}

	// Rotating the configured secret must invalidate previously issued tokens.
	config.AppConfig.JWTSecret = "rotated-secret"
	if _, ok := VerifySessionToken(token); ok {
		t.Error("token signed with the old secret still verifies after rotation")
	}
}

func TestGuestTokenIsNotASessionToken(t *testing.T) {
	guest, err := GenerateGuestToken("+911234567890")
	if err != nil {
		t.Fatalf("GenerateGuestToken: %v", err)
	}

	phone, ok := VerifyGuestToken(guest)
	if !ok || phone != "+911234567890" {
		t.Fatalf("VerifyGuestToken = %q, %v", phone, ok)
	}

	// The two token kinds must not be interchangeable.
	if _, ok := VerifySessionToken(guest); ok {
		t.Error("guest token accepted as a session token")
	}
	session, err := GenerateSessionToken("user-1", "a@b.com", "Asha", "customer", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := VerifyGuestToken(session); ok {
		t.Error("session token accepted as a guest token")
	}
}
