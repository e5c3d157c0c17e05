package salon

import (
	salonRepo "salonq/database/repository/salon"
	userRepo "salonq/database/repository/user"
	"salonq/models"
	"salonq/services/queue"
	"salonq/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultSalonService is the production SalonService.
type DefaultSalonService struct {
	Repo     salonRepo.SalonRepository
	UserRepo userRepo.UserRepository
}

// Onboard registers a pending salon and links the owning user to it. The salon only
// becomes visible to customers once a main admin approves it.
func (s *DefaultSalonService) Onboard(req OnboardRequest) (*models.Salon, error) {
	usr, err := s.UserRepo.GetByID(req.AdminID)
	if err != nil {
		return nil, queue.NewUpstreamError("failed to load user")
	}
	if usr == nil {
		return nil, queue.NewNotFoundError("user not found")
	}
	if usr.Role != models.RoleSalonAdmin {
		return nil, queue.NewForbiddenError("only salon admins can register a salon")
	}
	if usr.SalonID != "" {
		return nil, queue.NewInvalidInputError("user already owns a salon")
	}

	var location *models.GeoPoint
	if req.Longitude != nil && req.Latitude != nil {
		location = &models.GeoPoint{
			Type:        "Point",
			Coordinates: []float64{*req.Longitude, *req.Latitude},
		}
	}

	sal := &models.Salon{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Location: location,
		Status:   models.SalonStatusPending,
		AdminID:  req.AdminID,
	}
	if err := s.Repo.Create(sal); err != nil {
		utils.GetLogger().Error("Onboard: failed to create salon", zap.Error(err))
		return nil, queue.NewUpstreamError("failed to register salon")
	}

	// Link the user record so the authorization guard's fallback lookup finds the
	// salon even for tokens issued before this point.
	if err := s.UserRepo.UpdateSetDocument(req.AdminID, bson.M{"salon_id": sal.ID}); err != nil {
		utils.GetLogger().Error("Onboard: failed to link salon to user",
			zap.String("salonId", sal.ID), zap.Error(err))
	}

	return sal, nil
}

// GetByID fetches one salon.
func (s *DefaultSalonService) GetByID(id string) (*models.Salon, error) {
	sal, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, queue.NewUpstreamError("failed to load salon")
	}
	if sal == nil {
		return nil, queue.NewNotFoundError("salon not found")
	}
	return sal, nil
}

// ListByStatus lists salons, "" for all.
func (s *DefaultSalonService) ListByStatus(status string) ([]models.Salon, error) {
	if status != "" && !validSalonStatus(status) {
		return nil, queue.NewInvalidInputError("invalid salon status: " + status)
	}
	salons, err := s.Repo.GetAll(status)
	if err != nil {
		return nil, queue.NewUpstreamError("failed to list salons")
	}
	return salons, nil
}

// FindNearby lists approved salons within radiusMeters of a point.
func (s *DefaultSalonService) FindNearby(longitude, latitude, radiusMeters float64) ([]models.Salon, error) {
	if radiusMeters <= 0 {
		radiusMeters = 5000
	}
	salons, err := s.Repo.FindNearby(longitude, latitude, radiusMeters)
	if err != nil {
		return nil, queue.NewUpstreamError("failed to search nearby salons")
	}
	return salons, nil
}

// SetStatus is the main-admin moderation action. Salons are never hard-deleted;
// rejected and suspended salons simply leave the public directory.
func (s *DefaultSalonService) SetStatus(id, status string) (*models.Salon, error) {
	if !validSalonStatus(status) {
		return nil, queue.NewInvalidInputError("invalid salon status: " + status)
	}
	sal, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSetDocument(id, bson.M{"status": status}); err != nil {
		return nil, queue.NewUpstreamError("failed to update salon status")
	}
	sal.Status = status
	return sal, nil
}

// UpdateProfile applies a salon admin's edits to their own salon. Only a fixed set
// of fields is writable through this path.
func (s *DefaultSalonService) UpdateProfile(id string, updates map[string]interface{}) (*models.Salon, error) {
	doc := bson.M{}
	for _, field := range []string{"name", "phone", "email", "address"} {
		if v, ok := updates[field]; ok {
			doc[field] = v
		}
	}
	if len(doc) == 0 {
		return nil, queue.NewInvalidInputError("no updatable fields supplied")
	}
	if err := s.Repo.UpdateSetDocument(id, doc); err != nil {
		return nil, queue.NewUpstreamError("failed to update salon profile")
	}
	return s.GetByID(id)
}

func validSalonStatus(status string) bool {
	switch status {
	case models.SalonStatusPending, models.SalonStatusApproved,
		models.SalonStatusRejected, models.SalonStatusSuspended:
		return true
	}
	return false
}
