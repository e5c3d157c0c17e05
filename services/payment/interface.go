package payment

import "salonq/models"

// PaymentService fronts the payment provider: order creation before checkout,
// signed-callback correlation afterwards, and refunds for rejected paid entries.
type PaymentService interface {
	// CreateOrder registers an order with the provider for the given queue entry and
	// returns its ID. The order ID is persisted on the entry so the verify callback
	// can be matched back to it.
	CreateOrder(entryID string, amountPaise int64, currency string) (string, error)
	// VerifyAndRecord matches a provider callback to a queue entry. A bad signature,
	// or an order ID other than the one created for the entry, leaves the entry
	// untouched. A good one records the payment fields; the entry's lifecycle state
	// is not advanced, approval still governs queue admission.
	VerifyAndRecord(entryID, orderID, paymentID, signature string) (*models.QueueEntry, error)
	// Refund returns a captured payment, in full when amountPaise is zero.
	Refund(paymentID string, amountPaise int64) error
}
