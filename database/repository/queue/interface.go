package queueRepo

import (
	"time"

	"salonq/models"

	"go.mongodb.org/mongo-driver/bson"
)

// QueueRepository defines data access for queue entries. Everything that must be
// correct under concurrent check-ins or transitions is expressed as an atomic
// operation here rather than as application-level read-modify-write.
type QueueRepository interface {
	// GetByID retrieves a queue entry by its unique ID, or nil if absent.
	GetByID(id string) (*models.QueueEntry, error)
	// ListBySalon retrieves a salon's entries, newest first, optionally filtered to
	// the given statuses (nil for all).
	ListBySalon(salonID string, statuses []string) ([]models.QueueEntry, error)
	// ListByPhone retrieves a customer's entries across salons, newest first.
	ListByPhone(phone string) ([]models.QueueEntry, error)
	// Create inserts a new queue entry.
	Create(entry *models.QueueEntry) error

	// NextQueueNumber atomically increments and returns the per-salon counter.
	// Numbers are strictly increasing and never reused; gaps are fine.
	NextQueueNumber(salonID string) (int64, error)
	// CountActive counts the salon's entries in a non-terminal status.
	CountActive(salonID string) (int64, error)
	// CountCreatedSince counts the salon's entries created at or after the cutoff.
	CountCreatedSince(salonID string, since time.Time) (int64, error)
	// PaidRevenueSince sums snapshotted service prices of entries paid since the cutoff.
	PaidRevenueSince(salonID string, since time.Time) (float64, error)
	// ActiveCountsBySalon returns non-terminal entry counts keyed by salon ID.
	ActiveCountsBySalon() (map[string]int64, error)

	// TransitionStatus applies the $set update to the entry only if its current status
	// is one of allowedFrom, and returns the entry as it was before the update. It
	// returns (nil, nil) when no document matched, which callers disambiguate into
	// NotFound or AlreadyProcessed.
	TransitionStatus(id string, allowedFrom []string, set bson.M) (*models.QueueEntry, error)
	// SetPayment records payment correlation fields without touching the lifecycle.
	SetPayment(id string, payment models.PaymentInfo) error
}
