package handlers

import (
	"net/http"
	"strings"

	"salonq/middleware"
	"salonq/services/queue"

	"github.com/gin-gonic/gin"
)

// SalonQueueHandler serves the salon admin's queue management endpoints.
type SalonQueueHandler struct {
	Service queue.QueueService
}

func NewSalonQueueHandler(svc queue.QueueService) *SalonQueueHandler {
	return &SalonQueueHandler{Service: svc}
}

// actorFrom builds the authorization actor from context values set by the auth
// middleware.
func actorFrom(c *gin.Context) queue.Actor {
	actor := queue.Actor{}
	if v, ok := c.Get(middleware.CtxUserID); ok {
		actor.UserID, _ = v.(string)
	}
	if v, ok := c.Get(middleware.CtxRole); ok {
		actor.Role, _ = v.(string)
	}
	if v, ok := c.Get(middleware.CtxSalonID); ok {
		actor.SalonID, _ = v.(string)
	}
	return actor
}

// salonIDFrom returns the tenant resolved by SalonAdminAuth.
func salonIDFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxSalonID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// ListQueueHandler handles GET /api/salon/queue. An optional comma-separated
// status query narrows the view.
func (h *SalonQueueHandler) ListQueueHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}

	var statuses []string
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}

	entries, err := h.Service.ListSalonQueue(salonID, statuses)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListPendingHandler handles GET /api/salon/queue/pending.
func (h *SalonQueueHandler) ListPendingHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	entries, err := h.Service.ListPendingApprovals(salonID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ApproveHandler handles POST /api/salon/queue/:id/approve.
func (h *SalonQueueHandler) ApproveHandler(c *gin.Context) {
	entry, err := h.Service.Approve(actorFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// RejectHandler handles POST /api/salon/queue/:id/reject.
func (h *SalonQueueHandler) RejectHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	// Body is optional; a missing reason gets a default downstream.
	_ = c.ShouldBindJSON(&req)

	entry, err := h.Service.Reject(actorFrom(c), c.Param("id"), req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateStatusHandler handles PATCH /api/salon/queue/:id/status.
func (h *SalonQueueHandler) UpdateStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Service.UpdateStatus(actorFrom(c), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DashboardHandler handles GET /api/salon/dashboard.
func (h *SalonQueueHandler) DashboardHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	stats, err := h.Service.DashboardStats(salonID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
