package queue

import "salonq/models"

// PerCustomerWaitMinutes is the fixed per-customer service estimate used for wait
// time calculations. The resulting figure is advisory and never recomputed as the
// queue drains.
const PerCustomerWaitMinutes = 15

// Actor identifies who is requesting a transition, after authentication.
type Actor struct {
	UserID  string
	Role    string
	SalonID string // resolved tenant for salon admins, empty otherwise
}

// CheckInRequest is the intake payload for a new queue entry.
type CheckInRequest struct {
	SalonID          string   `json:"salonId"`
	CustomerName     string   `json:"customerName"`
	CustomerPhone    string   `json:"customerPhone"`
	ServiceIDs       []string `json:"serviceIds"`
	StaffID          string   `json:"staffId,omitempty"`
	RequiresApproval bool     `json:"requiresApproval"`
}

// DashboardStats is the salon admin's aggregate view.
type DashboardStats struct {
	ActiveQueue          int64   `json:"activeQueue"`
	TodayCheckIns        int64   `json:"todayCheckIns"`
	TodayRevenue         float64 `json:"todayRevenue"`
	EstimatedWaitMinutes int     `json:"estimatedWaitMinutes"`
}

// TaskEnqueuer dispatches side effects (refunds, customer SMS) after a state
// transition has committed. Implementations must be retryable and at-least-once;
// the state machine never blocks on them inline.
type TaskEnqueuer interface {
	EnqueueRefund(p models.RefundPayload) error
	EnqueueNotify(p models.NotifyPayload) error
}

// QueueService governs the queue entry lifecycle and the salon-level bookkeeping
// that hangs off it.
type QueueService interface {
	// CheckIn creates a queue entry, assigns its queue number and wait estimate,
	// and increments the salon's queue count.
	CheckIn(req CheckInRequest) (*models.QueueEntry, error)
	// GetEntry fetches one entry; the phone must match unless the caller is staff.
	GetEntry(id string) (*models.QueueEntry, error)
	// ListByPhone returns the customer's entries across salons.
	ListByPhone(phone string) ([]models.QueueEntry, error)
	// ListSalonQueue returns a salon's entries, optionally filtered by status.
	ListSalonQueue(salonID string, statuses []string) ([]models.QueueEntry, error)
	// ListPendingApprovals returns the salon's entries awaiting sign-off.
	ListPendingApprovals(salonID string) ([]models.QueueEntry, error)
	// Approve moves a pending_approval entry to confirmed. Idempotency-guarded.
	Approve(actor Actor, entryID string) (*models.QueueEntry, error)
	// Reject moves a pending_approval entry to rejected, recording the reason and
	// scheduling a refund when the entry was already paid. Idempotency-guarded.
	Reject(actor Actor, entryID, reason string) (*models.QueueEntry, error)
	// UpdateStatus applies a generic transition per the allowed-transition table.
	UpdateStatus(actor Actor, entryID, newStatus string) (*models.QueueEntry, error)
	// Cancel is the customer-initiated cancellation, authorized by phone possession.
	Cancel(phone, entryID string) (*models.QueueEntry, error)
	// DashboardStats aggregates the salon admin dashboard numbers.
	DashboardStats(salonID string) (*DashboardStats, error)
}
