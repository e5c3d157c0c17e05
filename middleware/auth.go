package middleware

import (
	"net/http"
	"strings"

	userRepoPkg "salonq/database/repository/user"
	"salonq/models"
	"salonq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID     = "userID"
	CtxRole       = "role"
	CtxSalonID    = "salonID"
	CtxClaims     = "claims"
	CtxGuestPhone = "guestPhone"
)

// ExtractSessionToken pulls the session token from the request. The HTTP-only
// cookie is the primary transport; the legacy cookie name and the Authorization
// header are accepted for older clients.
func ExtractSessionToken(c *gin.Context) string {
	if token, err := c.Cookie(utils.SessionCookieName); err == nil && token != "" {
		return token
	}
	if token, err := c.Cookie(utils.LegacySessionCookieName); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  "unauthenticated",
	})
}

// SessionAuth requires a valid session token of any role.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractSessionToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}
		claims, ok := utils.VerifySessionToken(token)
		if !ok {
			abortUnauthorized(c)
			return
		}
		if utils.IsSessionRevoked(token) {
			abortUnauthorized(c)
			return
		}
		c.Set(CtxClaims, claims)
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// SalonAdminAuth requires a salon_admin (or main_admin) session and resolves the
// salon the caller manages. The token's salonId claim is the fast path; tokens
// issued before the user onboarded their salon fall back to a user lookup.
func SalonAdminAuth(userRepo userRepoPkg.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractSessionToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}
		claims, ok := utils.VerifySessionToken(token)
		if !ok {
			abortUnauthorized(c)
			return
		}
		if utils.IsSessionRevoked(token) {
			abortUnauthorized(c)
			return
		}
		if claims.Role != models.RoleSalonAdmin && claims.Role != models.RoleMainAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Salon admin access required",
				"code":  "forbidden",
			})
			return
		}

		salonID := claims.SalonID
		if salonID == "" && claims.Role == models.RoleSalonAdmin {
			usr, err := userRepo.GetByID(claims.UserID)
			if err != nil {
				utils.GetLogger().Error("SalonAdminAuth: user lookup failed",
					zap.String("userId", claims.UserID), zap.Error(err))
				abortUnauthorized(c)
				return
			}
			if usr == nil {
				abortUnauthorized(c)
				return
			}
			salonID = usr.SalonID
		}
		if salonID == "" && claims.Role == models.RoleSalonAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "No salon linked to this account",
				"code":  "forbidden",
			})
			return
		}

		c.Set(CtxClaims, claims)
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxSalonID, salonID)
		c.Next()
	}
}

// MainAdminAuth requires a main_admin session.
func MainAdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractSessionToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}
		claims, ok := utils.VerifySessionToken(token)
		if !ok {
			abortUnauthorized(c)
			return
		}
		if utils.IsSessionRevoked(token) {
			abortUnauthorized(c)
			return
		}
		if claims.Role != models.RoleMainAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
				"code":  "forbidden",
			})
			return
		}
		c.Set(CtxClaims, claims)
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// GuestAuth requires a guest token proving phone possession. Customer-facing
// queue endpoints use this instead of an account session.
func GuestAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		phone, ok := utils.VerifyGuestToken(strings.TrimPrefix(authHeader, "Bearer "))
		if !ok {
			abortUnauthorized(c)
			return
		}
		c.Set(CtxGuestPhone, phone)
		c.Next()
	}
}
