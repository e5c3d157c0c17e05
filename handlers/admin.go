package handlers

import (
	"net/http"

	"salonq/services/salon"
	"salonq/services/user"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the main admin's platform-wide surface.
type AdminHandler struct {
	Users  user.UserService
	Salons salon.SalonService
}

func NewAdminHandler(users user.UserService, salons salon.SalonService) *AdminHandler {
	return &AdminHandler{Users: users, Salons: salons}
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListSalonsHandler handles GET /api/admin/salons?status=. Unlike the public
// directory this lists every status, pending onboarding requests included.
func (h *AdminHandler) ListSalonsHandler(c *gin.Context) {
	salons, err := h.Salons.ListByStatus(c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, salons)
}

// SetSalonStatusHandler handles PATCH /api/admin/salons/:id/status.
func (h *AdminHandler) SetSalonStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sal, err := h.Salons.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sal)
}
