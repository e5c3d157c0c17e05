package handlers

import (
	"net/http"

	"salonq/services/queue"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps a service-layer error onto the HTTP response. Typed
// errors carry their own status and code; anything else becomes an opaque 500.
func respondServiceError(c *gin.Context, err error) {
	if qe, ok := queue.AsQueueError(err); ok {
		c.JSON(qe.Status, gin.H{"error": qe.Message, "code": qe.Code})
		return
	}
	getLogger(c).Error("unhandled service error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  queue.ErrCodeUpstream,
	})
}
