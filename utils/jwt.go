package utils

import (
	"errors"
	"os"
	"time"

	"salonq/config"

	"github.com/golang-jwt/jwt"
)

// SessionTokenTTL is how long an issued session token stays valid.
const SessionTokenTTL = 7 * 24 * time.Hour

// GuestTokenTTL is how long a phone-possession guest token stays valid.
const GuestTokenTTL = 15 * time.Minute

// SessionCookieName is the HTTP-only cookie carrying the session token.
// LegacySessionCookieName is accepted on read for clients issued before the rename.
const (
	SessionCookieName       = "salonq_token"
	LegacySessionCookieName = "token"
)

// signingKey resolves the JWT secret. The loaded config wins so that a secret
// set in config.yaml and one set in the environment cannot diverge; the env var
// covers tooling that runs before LoadConfig, and the dev fallback is not for
// production.
func signingKey() []byte {
	if config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("salonq-dev-secret")
}

// SessionClaims is the verified identity carried by a session token.
type SessionClaims struct {
	UserID    string
	Email     string
	Name      string
	Role      string
	SalonID   string
	SalonName string
}

// GenerateSessionToken creates a signed JWT embedding the user's identity, role and
// salon affiliation. SalonID/SalonName may be empty for customers and main admins.
func GenerateSessionToken(userID, email, name, role, salonID, salonName string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       userID,
		"email":     email,
		"name":      name,
		"role":      role,
		"salonId":   salonID,
		"salonName": salonName,
		"iat":       now.Unix(),
		"exp":       now.Add(SessionTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// GenerateGuestToken creates a short-lived token proving possession of a phone number.
// Issued only after OTP verification; customer-facing queue endpoints require it.
func GenerateGuestToken(phone string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   phone,
		"kind":  "guest",
		"phone": phone,
		"iat":   now.Unix(),
		"exp":   now.Add(GuestTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingKey(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// VerifySessionToken parses and validates a session token. Verification fails closed:
// any malformed, expired or tampered token yields ok=false, never an error to the caller.
func VerifySessionToken(tokenString string) (*SessionClaims, bool) {
	claims, err := parseToken(tokenString)
	if err != nil {
		return nil, false
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, false
	}
	sc := &SessionClaims{UserID: sub, Role: role}
	sc.Email, _ = claims["email"].(string)
	sc.Name, _ = claims["name"].(string)
	sc.SalonID, _ = claims["salonId"].(string)
	sc.SalonName, _ = claims["salonName"].(string)
	return sc, true
}

// VerifyGuestToken validates a guest token and returns the proven phone number.
func VerifyGuestToken(tokenString string) (string, bool) {
	claims, err := parseToken(tokenString)
	if err != nil {
		return "", false
	}
	if kind, _ := claims["kind"].(string); kind != "guest" {
		return "", false
	}
	phone, _ := claims["phone"].(string)
	if phone == "" {
		return "", false
	}
	return phone, true
}
