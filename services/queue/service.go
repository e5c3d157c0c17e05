package queue

import (
	"fmt"
	"time"

	catalogRepo "salonq/database/repository/catalog"
	queueRepo "salonq/database/repository/queue"
	salonRepo "salonq/database/repository/salon"
	"salonq/models"
	"salonq/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultQueueService is the production QueueService backed by the mongo repositories.
type DefaultQueueService struct {
	Repo        queueRepo.QueueRepository
	SalonRepo   salonRepo.SalonRepository
	ServiceRepo catalogRepo.ServiceRepository
	StaffRepo   catalogRepo.StaffRepository
	Tasks       TaskEnqueuer
}

// CheckIn creates a queue entry for the salon, snapshotting the requested services,
// assigning the next queue number and a point-in-time wait estimate, and bumping the
// salon's queue count by one.
func (s *DefaultQueueService) CheckIn(req CheckInRequest) (*models.QueueEntry, error) {
	if req.SalonID == "" || req.CustomerName == "" || req.CustomerPhone == "" {
		return nil, NewInvalidInputError("salonId, customerName and customerPhone are required")
	}
	if len(req.ServiceIDs) == 0 {
		return nil, NewInvalidInputError("at least one service is required")
	}

	salon, err := s.SalonRepo.GetByID(req.SalonID)
	if err != nil {
		return nil, NewUpstreamError("failed to load salon")
	}
	if salon == nil {
		return nil, NewNotFoundError("salon not found")
	}
	if salon.Status != models.SalonStatusApproved {
		return nil, NewInvalidInputError("salon is not accepting check-ins")
	}

	snapshots := make([]models.ServiceSnapshot, 0, len(req.ServiceIDs))
	for _, serviceID := range req.ServiceIDs {
		svc, err := s.ServiceRepo.GetByID(serviceID)
		if err != nil {
			return nil, NewUpstreamError("failed to load service")
		}
		if svc == nil || svc.SalonID != req.SalonID {
			return nil, NewInvalidInputError(fmt.Sprintf("service %s does not belong to this salon", serviceID))
		}
		snapshots = append(snapshots, models.ServiceSnapshot{
			ServiceID:       svc.ID,
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	if req.StaffID != "" {
		st, err := s.StaffRepo.GetByID(req.StaffID)
		if err != nil {
			return nil, NewUpstreamError("failed to load staff")
		}
		if st == nil || st.SalonID != req.SalonID {
			return nil, NewInvalidInputError("staff member does not belong to this salon")
		}
	}

	// Wait estimate uses the queue depth before this entry joins it.
	activeBefore, err := s.Repo.CountActive(req.SalonID)
	if err != nil {
		return nil, NewUpstreamError("failed to compute queue depth")
	}

	queueNumber, err := s.Repo.NextQueueNumber(req.SalonID)
	if err != nil {
		return nil, NewUpstreamError("failed to assign queue number")
	}

	status := models.StatusWaiting
	if req.RequiresApproval {
		status = models.StatusPendingApproval
	}

	entry := &models.QueueEntry{
		ID:                   uuid.New().String(),
		SalonID:              req.SalonID,
		CustomerName:         req.CustomerName,
		CustomerPhone:        req.CustomerPhone,
		Services:             snapshots,
		StaffID:              req.StaffID,
		QueueNumber:          queueNumber,
		Status:               status,
		EstimatedWaitMinutes: int(activeBefore) * PerCustomerWaitMinutes,
		Payment:              models.PaymentInfo{Status: models.PaymentStatusUnpaid},
	}

	if err := s.Repo.Create(entry); err != nil {
		return nil, NewUpstreamError("failed to create queue entry")
	}
	if err := s.SalonRepo.IncQueueCount(req.SalonID, 1); err != nil {
		utils.GetLogger().Error("CheckIn: queue count increment failed",
			zap.String("salonId", req.SalonID), zap.Error(err))
	}

	return entry, nil
}

// GetEntry fetches one queue entry by ID.
func (s *DefaultQueueService) GetEntry(id string) (*models.QueueEntry, error) {
	entry, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, NewUpstreamError("failed to load queue entry")
	}
	if entry == nil {
		return nil, NewNotFoundError("queue entry not found")
	}
	return entry, nil
}

// ListByPhone returns the customer's entries across salons.
func (s *DefaultQueueService) ListByPhone(phone string) ([]models.QueueEntry, error) {
	if phone == "" {
		return nil, NewInvalidInputError("phone is required")
	}
	entries, err := s.Repo.ListByPhone(phone)
	if err != nil {
		return nil, NewUpstreamError("failed to list queue entries")
	}
	return entries, nil
}

// ListSalonQueue returns a salon's entries, optionally filtered by status.
func (s *DefaultQueueService) ListSalonQueue(salonID string, statuses []string) ([]models.QueueEntry, error) {
	for _, st := range statuses {
		if !ValidStatus(st) {
			return nil, NewInvalidInputError("invalid status filter: " + st)
		}
	}
	entries, err := s.Repo.ListBySalon(salonID, statuses)
	if err != nil {
		return nil, NewUpstreamError("failed to list salon queue")
	}
	return entries, nil
}

// ListPendingApprovals returns the salon's entries awaiting sign-off.
func (s *DefaultQueueService) ListPendingApprovals(salonID string) ([]models.QueueEntry, error) {
	entries, err := s.Repo.ListBySalon(salonID, []string{models.StatusPendingApproval})
	if err != nil {
		return nil, NewUpstreamError("failed to list pending approvals")
	}
	return entries, nil
}

// Cancel is the customer-initiated cancellation. Authorization is possession of the
// entry's phone number (proven upstream by the OTP guest token). The guarded update
// checks the entry's previous status, so a cancel that lost the race to another
// terminal transition never touches the salon counter.
func (s *DefaultQueueService) Cancel(phone, entryID string) (*models.QueueEntry, error) {
	entry, err := s.GetEntry(entryID)
	if err != nil {
		return nil, err
	}
	if entry.CustomerPhone != phone {
		return nil, NewForbiddenError("entry belongs to a different customer")
	}

	previous, err := s.Repo.TransitionStatus(entryID, nonTerminalStatuses(), bson.M{
		"status": models.StatusCancelled,
	})
	if err != nil {
		return nil, NewUpstreamError("failed to cancel queue entry")
	}
	if previous == nil {
		return nil, NewAlreadyProcessedError("queue entry is already in a terminal state")
	}

	s.onLeftQueue(previous)
	s.notify(entry.CustomerPhone, fmt.Sprintf("Your check-in #%d has been cancelled.", entry.QueueNumber))

	entry.Status = models.StatusCancelled
	return entry, nil
}

// DashboardStats aggregates the salon admin dashboard numbers.
func (s *DefaultQueueService) DashboardStats(salonID string) (*DashboardStats, error) {
	active, err := s.Repo.CountActive(salonID)
	if err != nil {
		return nil, NewUpstreamError("failed to count active queue")
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	checkIns, err := s.Repo.CountCreatedSince(salonID, midnight)
	if err != nil {
		return nil, NewUpstreamError("failed to count today's check-ins")
	}
	revenue, err := s.Repo.PaidRevenueSince(salonID, midnight)
	if err != nil {
		return nil, NewUpstreamError("failed to aggregate today's revenue")
	}

	return &DashboardStats{
		ActiveQueue:          active,
		TodayCheckIns:        checkIns,
		TodayRevenue:         revenue,
		EstimatedWaitMinutes: int(active) * PerCustomerWaitMinutes,
	}, nil
}

// onLeftQueue decrements the salon's queue count after an entry's first transition
// into a terminal status. Callers must only invoke it with the pre-transition entry
// returned by a guarded update.
func (s *DefaultQueueService) onLeftQueue(previous *models.QueueEntry) {
	if err := s.SalonRepo.IncQueueCount(previous.SalonID, -1); err != nil {
		utils.GetLogger().Error("queue count decrement failed",
			zap.String("salonId", previous.SalonID),
			zap.String("entryId", previous.ID),
			zap.Error(err))
	}
}

func (s *DefaultQueueService) notify(phone, message string) {
	if s.Tasks == nil {
		return
	}
	if err := s.Tasks.EnqueueNotify(models.NotifyPayload{Phone: phone, Message: message}); err != nil {
		utils.GetLogger().Error("failed to enqueue notification", zap.Error(err))
	}
}
