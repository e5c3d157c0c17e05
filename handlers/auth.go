package handlers

import (
	"net/http"

	"salonq/config"
	"salonq/middleware"
	"salonq/services/user"
	"salonq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and session management.
type AuthHandler struct {
	UserService user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserService: svc}
}

// setSessionCookie attaches the session token as an HTTP-only cookie. The token
// is also returned in the body for clients that prefer the Authorization header.
func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(utils.SessionCookieName, token, int(utils.SessionTokenTTL.Seconds()),
		"/", "", config.IsProduction(), true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", config.IsProduction(), true)
	c.SetCookie(utils.LegacySessionCookieName, "", -1, "/", "", config.IsProduction(), true)
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.UserService.Register(req)
	if err != nil {
		logger.Warn("registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setSessionCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	setSessionCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout. The token is denylisted for its
// remaining lifetime, so a copy of the cookie stops working immediately instead
// of staying valid until the seven-day expiry.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if token := middleware.ExtractSessionToken(c); token != "" {
		if err := utils.RevokeSession(token, utils.SessionTokenTTL); err != nil {
			getLogger(c).Warn("failed to revoke session on logout", zap.Error(err))
		}
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// MeHandler handles GET /api/auth/me. It echoes the verified session claims so
// clients can restore their UI state without a database round trip.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	claimsVal, ok := c.Get(middleware.CtxClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	claims, ok := claimsVal.(*utils.SessionClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        claims.UserID,
		"email":     claims.Email,
		"name":      claims.Name,
		"role":      claims.Role,
		"salonId":   claims.SalonID,
		"salonName": claims.SalonName,
	})
}
