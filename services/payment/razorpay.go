package payment

import (
	"time"

	queueRepo "salonq/database/repository/queue"
	"salonq/models"
	"salonq/services/queue"
	"salonq/utils"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// RazorpayPaymentService implements PaymentService against Razorpay.
type RazorpayPaymentService struct {
	Client    *razorpay.Client
	KeySecret string
	QueueRepo queueRepo.QueueRepository
}

// NewRazorpayPaymentService creates a PaymentService using the given credentials.
func NewRazorpayPaymentService(keyID, keySecret string, repo queueRepo.QueueRepository) *RazorpayPaymentService {
	return &RazorpayPaymentService{
		Client:    razorpay.NewClient(keyID, keySecret),
		KeySecret: keySecret,
		QueueRepo: repo,
	}
}

// CreateOrder registers an order with Razorpay for the queue entry and records the
// order ID on it, so that only a callback for this order can mark the entry paid.
func (s *RazorpayPaymentService) CreateOrder(entryID string, amountPaise int64, currency string) (string, error) {
	if amountPaise <= 0 {
		return "", queue.NewInvalidInputError("amount must be positive")
	}
	if currency == "" {
		currency = "INR"
	}

	entry, err := s.QueueRepo.GetByID(entryID)
	if err != nil {
		return "", queue.NewUpstreamError("failed to load queue entry")
	}
	if entry == nil {
		return "", queue.NewNotFoundError("queue entry not found")
	}
	if entry.Payment.Status == models.PaymentStatusPaid || entry.Payment.Status == models.PaymentStatusRefunded {
		return "", queue.NewAlreadyProcessedError("payment for this entry was already processed")
	}

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  entryID,
	}
	order, err := s.Client.Order.Create(data, nil)
	if err != nil {
		utils.GetLogger().Error("razorpay order creation failed", zap.Error(err))
		return "", queue.NewUpstreamError("payment provider rejected the order")
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", queue.NewUpstreamError("payment provider returned no order id")
	}

	info := entry.Payment
	info.Status = models.PaymentStatusUnpaid
	info.OrderID = orderID
	if err := s.QueueRepo.SetPayment(entryID, info); err != nil {
		return "", queue.NewUpstreamError("failed to record order")
	}
	return orderID, nil
}

// VerifyAndRecord matches a provider callback to a queue entry. The signature is
// recomputed locally and compared in constant time; on success the payment fields
// and paid-at timestamp are recorded without advancing the entry's lifecycle.
func (s *RazorpayPaymentService) VerifyAndRecord(entryID, orderID, paymentID, signature string) (*models.QueueEntry, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, queue.NewInvalidInputError("orderId, paymentId and signature are required")
	}

	entry, err := s.QueueRepo.GetByID(entryID)
	if err != nil {
		return nil, queue.NewUpstreamError("failed to load queue entry")
	}
	if entry == nil {
		return nil, queue.NewNotFoundError("queue entry not found")
	}

	if !VerifySignature(orderID, paymentID, signature, s.KeySecret) {
		utils.GetLogger().Warn("payment signature mismatch",
			zap.String("entryId", entryID), zap.String("orderId", orderID))
		return nil, queue.NewInvalidInputError("payment signature mismatch")
	}

	// A valid signature only proves the pair came from the provider. The order
	// must also be the one created for this entry, or a signed callback for a
	// cheaper order could mark any entry paid.
	if entry.Payment.OrderID != orderID {
		utils.GetLogger().Warn("payment order mismatch",
			zap.String("entryId", entryID), zap.String("orderId", orderID))
		return nil, queue.NewInvalidInputError("order does not correspond to this entry")
	}

	now := time.Now()
	info := models.PaymentInfo{
		Status:    models.PaymentStatusPaid,
		OrderID:   orderID,
		PaymentID: paymentID,
		Signature: signature,
		PaidAt:    &now,
	}
	if err := s.QueueRepo.SetPayment(entryID, info); err != nil {
		return nil, queue.NewUpstreamError("failed to record payment")
	}

	entry.Payment = info
	return entry, nil
}

// Refund returns a captured payment, in full when amountPaise is zero.
func (s *RazorpayPaymentService) Refund(paymentID string, amountPaise int64) error {
	data := map[string]interface{}{}
	_, err := s.Client.Payment.Refund(paymentID, int(amountPaise), data, nil)
	if err != nil {
		utils.GetLogger().Error("razorpay refund failed",
			zap.String("paymentId", paymentID), zap.Error(err))
		return queue.NewUpstreamError("payment provider refused the refund")
	}
	return nil
}
