package handlers

import (
	"net/http"

	"salonq/services/payment"
	"salonq/services/queue"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves order creation before checkout and the signed callback
// afterwards. The verify endpoint is unauthenticated on purpose: the HMAC
// signature over orderId|paymentId is the credential.
type PaymentHandler struct {
	Payments payment.PaymentService
	Queue    queue.QueueService
}

func NewPaymentHandler(payments payment.PaymentService, queueSvc queue.QueueService) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Queue: queueSvc}
}

// CreateOrderHandler handles POST /api/payments/order. The guest must own the
// entry being paid for; the amount comes from the snapshotted service prices,
// never from the client.
func (h *PaymentHandler) CreateOrderHandler(c *gin.Context) {
	phone, ok := guestPhone(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var req struct {
		EntryID string `json:"entryId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Queue.GetEntry(req.EntryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if entry.CustomerPhone != phone {
		c.JSON(http.StatusForbidden, gin.H{"error": "This check-in belongs to a different customer"})
		return
	}

	amountPaise := int64(entry.TotalPrice() * 100)
	orderID, err := h.Payments.CreateOrder(entry.ID, amountPaise, "")
	if err != nil {
		getLogger(c).Error("order creation failed",
			zap.String("entryId", entry.ID), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId":     orderID,
		"amountPaise": amountPaise,
		"entryId":     entry.ID,
	})
}

// VerifyHandler handles POST /api/payments/verify.
func (h *PaymentHandler) VerifyHandler(c *gin.Context) {
	var req struct {
		EntryID   string `json:"entryId" binding:"required"`
		OrderID   string `json:"razorpay_order_id" binding:"required"`
		PaymentID string `json:"razorpay_payment_id" binding:"required"`
		Signature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Payments.VerifyAndRecord(req.EntryID, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
