package handlers

import (
	"net/http"

	"salonq/middleware"
	"salonq/services/salon"

	"github.com/gin-gonic/gin"
)

// SalonHandler serves salon onboarding and profile management.
type SalonHandler struct {
	Service salon.SalonService
}

func NewSalonHandler(svc salon.SalonService) *SalonHandler {
	return &SalonHandler{Service: svc}
}

// OnboardHandler handles POST /api/salon/onboard. Any authenticated salon_admin
// without a salon may register one; it starts in pending status.
func (h *SalonHandler) OnboardHandler(c *gin.Context) {
	userIDVal, ok := c.Get(middleware.CtxUserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var req salon.OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.AdminID, _ = userIDVal.(string)

	sal, err := h.Service.Onboard(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sal)
}

// MySalonHandler handles GET /api/salon/me.
func (h *SalonHandler) MySalonHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	sal, err := h.Service.GetByID(salonID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sal)
}

// UpdateProfileHandler handles PATCH /api/salon/profile.
func (h *SalonHandler) UpdateProfileHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sal, err := h.Service.UpdateProfile(salonID, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sal)
}
