package models

import "time"

// Queue entry statuses. The booking and check-in vocabularies of earlier iterations
// are reconciled into this single enum: "pending" maps to StatusPendingApproval and
// "waiting" is the confirmed-equivalent walk-in state.
const (
	StatusPendingApproval = "pending_approval"
	StatusWaiting         = "waiting"
	StatusConfirmed       = "confirmed"
	StatusInProgress      = "in_progress"
	StatusCompleted       = "completed"
	StatusCancelled       = "cancelled"
	StatusRejected        = "rejected"
)

// Payment statuses on a queue entry.
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// IsTerminalStatus reports whether a status admits no further transitions.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// ServiceSnapshot freezes the requested service's name, price and duration at
// check-in time so later catalog edits don't rewrite history.
type ServiceSnapshot struct {
	ServiceID       string  `bson:"service_id" json:"serviceId"`
	Name            string  `bson:"name" json:"name"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"duration_minutes" json:"durationMinutes"`
}

// PaymentInfo holds the payment provider correlation fields.
type PaymentInfo struct {
	Status    string     `bson:"status" json:"status"`
	OrderID   string     `bson:"order_id,omitempty" json:"orderId,omitempty"`
	PaymentID string     `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Signature string     `bson:"signature,omitempty" json:"-"`
	PaidAt    *time.Time `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
}

// QueueEntry is one customer's request to be served, tracked through the status
// lifecycle. SalonID never changes after creation; QueueNumber is unique and strictly
// increasing per salon and is never reused.
type QueueEntry struct {
	ID                   string            `bson:"id" json:"id"`
	SalonID              string            `bson:"salon_id" json:"salonId"`
	CustomerName         string            `bson:"customer_name" json:"customerName"`
	CustomerPhone        string            `bson:"customer_phone" json:"customerPhone"`
	Services             []ServiceSnapshot `bson:"services" json:"services"`
	StaffID              string            `bson:"staff_id,omitempty" json:"staffId,omitempty"`
	QueueNumber          int64             `bson:"queue_number" json:"queueNumber"`
	Status               string            `bson:"status" json:"status"`
	EstimatedWaitMinutes int               `bson:"estimated_wait_minutes" json:"estimatedWaitMinutes"`
	RejectionReason      string            `bson:"rejection_reason,omitempty" json:"rejectionReason,omitempty"`
	ApprovedBy           string            `bson:"approved_by,omitempty" json:"approvedBy,omitempty"`
	ApprovedAt           *time.Time        `bson:"approved_at,omitempty" json:"approvedAt,omitempty"`
	Payment              PaymentInfo       `bson:"payment" json:"payment"`
	CreatedAt            time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time         `bson:"updated_at" json:"updatedAt"`
}

// TotalPrice sums the snapshotted service prices.
func (e *QueueEntry) TotalPrice() float64 {
	var total float64
	for _, s := range e.Services {
		total += s.Price
	}
	return total
}

// TotalDurationMinutes sums the snapshotted service durations.
func (e *QueueEntry) TotalDurationMinutes() int {
	var total int
	for _, s := range e.Services {
		total += s.DurationMinutes
	}
	return total
}
