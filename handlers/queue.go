package handlers

import (
	"net/http"

	"salonq/middleware"
	"salonq/services/queue"

	"github.com/gin-gonic/gin"
)

// QueueHandler serves the customer-facing queue endpoints. Every route is gated
// by a guest token, so the verified phone number always comes from the context,
// never from the request body.
type QueueHandler struct {
	Service queue.QueueService
}

func NewQueueHandler(svc queue.QueueService) *QueueHandler {
	return &QueueHandler{Service: svc}
}

func guestPhone(c *gin.Context) (string, bool) {
	val, ok := c.Get(middleware.CtxGuestPhone)
	if !ok {
		return "", false
	}
	phone, ok := val.(string)
	return phone, ok && phone != ""
}

// CheckInHandler handles POST /api/queue/check-in.
func (h *QueueHandler) CheckInHandler(c *gin.Context) {
	phone, ok := guestPhone(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var req queue.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// The phone is taken from the verified token, whatever the body says.
	req.CustomerPhone = phone

	entry, err := h.Service.CheckIn(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// MyCheckInsHandler handles GET /api/queue/mine.
func (h *QueueHandler) MyCheckInsHandler(c *gin.Context) {
	phone, ok := guestPhone(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	entries, err := h.Service.ListByPhone(phone)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetEntryHandler handles GET /api/queue/:id. Guests may only read their own
// entries.
func (h *QueueHandler) GetEntryHandler(c *gin.Context) {
	phone, ok := guestPhone(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	entry, err := h.Service.GetEntry(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if entry.CustomerPhone != phone {
		c.JSON(http.StatusForbidden, gin.H{"error": "This check-in belongs to a different customer"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CancelHandler handles POST /api/queue/:id/cancel.
func (h *QueueHandler) CancelHandler(c *gin.Context) {
	phone, ok := guestPhone(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	entry, err := h.Service.Cancel(phone, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
