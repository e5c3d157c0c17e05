package queue

import (
	"fmt"
	"time"

	"salonq/models"
	"salonq/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultRejectionReason is recorded when a salon admin rejects without giving one.
const DefaultRejectionReason = "Rejected by salon"

// authorizeEntry enforces the tenant boundary: salon admins may only touch entries
// of their own salon, main admins may touch any. Checked before any mutation.
func authorizeEntry(actor Actor, entry *models.QueueEntry) error {
	switch actor.Role {
	case models.RoleMainAdmin:
		return nil
	case models.RoleSalonAdmin:
		if actor.SalonID != "" && actor.SalonID == entry.SalonID {
			return nil
		}
		return NewForbiddenError("entry belongs to a different salon")
	default:
		return NewForbiddenError("insufficient role")
	}
}

// Approve moves a pending_approval entry to confirmed and stamps the approver.
// The transition is guarded on the entry still being pending_approval; a second
// approve reports AlreadyProcessed and leaves the queue count untouched.
func (s *DefaultQueueService) Approve(actor Actor, entryID string) (*models.QueueEntry, error) {
	entry, err := s.GetEntry(entryID)
	if err != nil {
		return nil, err
	}
	if err := authorizeEntry(actor, entry); err != nil {
		return nil, err
	}

	now := time.Now()
	previous, err := s.Repo.TransitionStatus(entryID, []string{models.StatusPendingApproval}, bson.M{
		"status":      models.StatusConfirmed,
		"approved_by": actor.UserID,
		"approved_at": now,
	})
	if err != nil {
		return nil, NewUpstreamError("failed to approve queue entry")
	}
	if previous == nil {
		return nil, NewAlreadyProcessedError("queue entry is no longer awaiting approval")
	}

	s.notify(entry.CustomerPhone,
		fmt.Sprintf("Your check-in #%d is confirmed. Estimated wait: %d minutes.",
			entry.QueueNumber, entry.EstimatedWaitMinutes))

	entry.Status = models.StatusConfirmed
	entry.ApprovedBy = actor.UserID
	entry.ApprovedAt = &now
	return entry, nil
}

// Reject moves a pending_approval entry to rejected, records the reason, and
// decrements the salon's queue count. If the entry was already paid, a refund task
// is enqueued after the transition commits; the refund itself runs out of band.
func (s *DefaultQueueService) Reject(actor Actor, entryID, reason string) (*models.QueueEntry, error) {
	entry, err := s.GetEntry(entryID)
	if err != nil {
		return nil, err
	}
	if err := authorizeEntry(actor, entry); err != nil {
		return nil, err
	}

	if reason == "" {
		reason = DefaultRejectionReason
	}

	previous, err := s.Repo.TransitionStatus(entryID, []string{models.StatusPendingApproval}, bson.M{
		"status":           models.StatusRejected,
		"rejection_reason": reason,
	})
	if err != nil {
		return nil, NewUpstreamError("failed to reject queue entry")
	}
	if previous == nil {
		return nil, NewAlreadyProcessedError("queue entry is no longer awaiting approval")
	}

	s.onLeftQueue(previous)

	if previous.Payment.Status == models.PaymentStatusPaid {
		s.scheduleRefund(previous, reason)
	}
	s.notify(entry.CustomerPhone,
		fmt.Sprintf("Your check-in #%d was declined: %s", entry.QueueNumber, reason))

	entry.Status = models.StatusRejected
	entry.RejectionReason = reason
	return entry, nil
}

// UpdateStatus applies a generic transition per the allowed-transition table. The
// first transition into a terminal status decrements the salon's queue count,
// exactly once, keyed on the entry's previous status.
func (s *DefaultQueueService) UpdateStatus(actor Actor, entryID, newStatus string) (*models.QueueEntry, error) {
	if !ValidStatus(newStatus) {
		return nil, NewInvalidInputError("unknown status: " + newStatus)
	}
	allowedFrom := sourcesFor(newStatus)
	if len(allowedFrom) == 0 {
		return nil, NewInvalidInputError("no entry may transition to " + newStatus)
	}

	entry, err := s.GetEntry(entryID)
	if err != nil {
		return nil, err
	}
	if err := authorizeEntry(actor, entry); err != nil {
		return nil, err
	}

	previous, err := s.Repo.TransitionStatus(entryID, allowedFrom, bson.M{
		"status": newStatus,
	})
	if err != nil {
		return nil, NewUpstreamError("failed to update queue entry status")
	}
	if previous == nil {
		// The guarded update missed: either the entry reached a terminal state in the
		// meantime or the requested transition is not allowed from its current status.
		current, err := s.GetEntry(entryID)
		if err != nil {
			return nil, err
		}
		if models.IsTerminalStatus(current.Status) {
			return nil, NewAlreadyProcessedError("queue entry is already in a terminal state")
		}
		return nil, NewInvalidInputError(
			fmt.Sprintf("cannot transition from %s to %s", current.Status, newStatus))
	}

	if models.IsTerminalStatus(newStatus) {
		s.onLeftQueue(previous)
	}
	if newStatus == models.StatusCancelled || newStatus == models.StatusRejected {
		s.notify(previous.CustomerPhone,
			fmt.Sprintf("Your check-in #%d was %s.", previous.QueueNumber, newStatus))
	}

	utils.GetLogger().Info("queue entry transitioned",
		zap.String("entryId", entryID),
		zap.String("from", previous.Status),
		zap.String("to", newStatus),
		zap.String("actor", actor.UserID))

	entry.Status = newStatus
	return entry, nil
}

func (s *DefaultQueueService) scheduleRefund(entry *models.QueueEntry, reason string) {
	if s.Tasks == nil {
		utils.GetLogger().Warn("no task enqueuer configured; refund not scheduled",
			zap.String("entryId", entry.ID))
		return
	}
	payload := models.RefundPayload{
		EntryID:     entry.ID,
		PaymentID:   entry.Payment.PaymentID,
		AmountPaise: int64(entry.TotalPrice() * 100),
		Reason:      reason,
	}
	if err := s.Tasks.EnqueueRefund(payload); err != nil {
		utils.GetLogger().Error("failed to enqueue refund",
			zap.String("entryId", entry.ID), zap.Error(err))
	}
}
