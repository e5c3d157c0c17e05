package catalog

import (
	"context"

	catalogRepo "salonq/database/repository/catalog"
	"salonq/models"
	"salonq/services/queue"
	"salonq/services/storage"
	"salonq/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ServiceInput is the create/update payload for a salon service.
type ServiceInput struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required"`
	DurationMinutes int     `json:"durationMinutes" binding:"required"`
	Category        string  `json:"category"`
	ImagePath       string  `json:"-"`
}

// StaffInput is the create/update payload for a staff member.
type StaffInput struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	ImagePath string `json:"-"`
}

// CatalogService is the salon-scoped CRUD surface for services and staff. Every
// mutation takes the resolved tenant ID and refuses to touch records of another
// salon.
type CatalogService interface {
	ListServices(salonID string) ([]models.Service, error)
	CreateService(salonID string, in ServiceInput) (*models.Service, error)
	UpdateService(salonID, serviceID string, in ServiceInput) (*models.Service, error)
	DeleteService(salonID, serviceID string) error

	ListStaff(salonID string) ([]models.Staff, error)
	CreateStaff(salonID string, in StaffInput) (*models.Staff, error)
	UpdateStaff(salonID, staffID string, in StaffInput) (*models.Staff, error)
	DeleteStaff(salonID, staffID string) error
}

// DefaultCatalogService is the production CatalogService.
type DefaultCatalogService struct {
	ServiceRepo catalogRepo.ServiceRepository
	StaffRepo   catalogRepo.StaffRepository
	Storage     storage.StorageService
}

// ListServices lists a salon's services.
func (s *DefaultCatalogService) ListServices(salonID string) ([]models.Service, error) {
	services, err := s.ServiceRepo.ListBySalon(salonID)
	if err != nil {
		return nil, queue.NewUpstreamError("failed to list services")
	}
	return services, nil
}

// CreateService adds a service to the salon, uploading its image when supplied.
func (s *DefaultCatalogService) CreateService(salonID string, in ServiceInput) (*models.Service, error) {
	if in.DurationMinutes <= 0 || in.Price < 0 {
		return nil, queue.NewInvalidInputError("price and duration must be positive")
	}

	svc := &models.Service{
		ID:              uuid.New().String(),
		SalonID:         salonID,
		Name:            in.Name,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		Category:        in.Category,
	}
	if in.ImagePath != "" {
		url, publicID, err := s.uploadImage(in.ImagePath, "services")
		if err == nil {
			svc.ImageURL = url
			svc.ImageID = publicID
		}
	}
	if err := s.ServiceRepo.Create(svc); err != nil {
		return nil, queue.NewUpstreamError("failed to create service")
	}
	return svc, nil
}

// UpdateService edits a salon's own service.
func (s *DefaultCatalogService) UpdateService(salonID, serviceID string, in ServiceInput) (*models.Service, error) {
	svc, err := s.getOwnedService(salonID, serviceID)
	if err != nil {
		return nil, err
	}

	doc := bson.M{
		"name":             in.Name,
		"price":            in.Price,
		"duration_minutes": in.DurationMinutes,
		"category":         in.Category,
	}
	if in.ImagePath != "" {
		url, publicID, err := s.uploadImage(in.ImagePath, "services")
		if err == nil {
			if svc.ImageID != "" {
				s.deleteImage(svc.ImageID)
			}
			doc["image_url"] = url
			doc["image_id"] = publicID
		}
	}
	if err := s.ServiceRepo.UpdateSetDocument(serviceID, doc); err != nil {
		return nil, queue.NewUpstreamError("failed to update service")
	}
	return s.ServiceRepo.GetByID(serviceID)
}

// DeleteService removes a salon's own service along with its stored image.
func (s *DefaultCatalogService) DeleteService(salonID, serviceID string) error {
	svc, err := s.getOwnedService(salonID, serviceID)
	if err != nil {
		return err
	}
	if err := s.ServiceRepo.Delete(serviceID); err != nil {
		return queue.NewUpstreamError("failed to delete service")
	}
	if svc.ImageID != "" {
		s.deleteImage(svc.ImageID)
	}
	return nil
}

// ListStaff lists a salon's staff.
func (s *DefaultCatalogService) ListStaff(salonID string) ([]models.Staff, error) {
	staff, err := s.StaffRepo.ListBySalon(salonID)
	if err != nil {
		return nil, queue.NewUpstreamError("failed to list staff")
	}
	return staff, nil
}

// CreateStaff adds a staff member to the salon.
func (s *DefaultCatalogService) CreateStaff(salonID string, in StaffInput) (*models.Staff, error) {
	st := &models.Staff{
		ID:        uuid.New().String(),
		SalonID:   salonID,
		Name:      in.Name,
		Specialty: in.Specialty,
	}
	if in.ImagePath != "" {
		url, publicID, err := s.uploadImage(in.ImagePath, "staff")
		if err == nil {
			st.ImageURL = url
			st.ImageID = publicID
		}
	}
	if err := s.StaffRepo.Create(st); err != nil {
		return nil, queue.NewUpstreamError("failed to create staff")
	}
	return st, nil
}

// UpdateStaff edits a salon's own staff member.
func (s *DefaultCatalogService) UpdateStaff(salonID, staffID string, in StaffInput) (*models.Staff, error) {
	st, err := s.getOwnedStaff(salonID, staffID)
	if err != nil {
		return nil, err
	}

	doc := bson.M{
		"name":      in.Name,
		"specialty": in.Specialty,
	}
	if in.ImagePath != "" {
		url, publicID, err := s.uploadImage(in.ImagePath, "staff")
		if err == nil {
			if st.ImageID != "" {
				s.deleteImage(st.ImageID)
			}
			doc["image_url"] = url
			doc["image_id"] = publicID
		}
	}
	if err := s.StaffRepo.UpdateSetDocument(staffID, doc); err != nil {
		return nil, queue.NewUpstreamError("failed to update staff")
	}
	return s.StaffRepo.GetByID(staffID)
}

// DeleteStaff removes a salon's own staff member along with their stored image.
func (s *DefaultCatalogService) DeleteStaff(salonID, staffID string) error {
	st, err := s.getOwnedStaff(salonID, staffID)
	if err != nil {
		return err
	}
	if err := s.StaffRepo.Delete(staffID); err != nil {
		return queue.NewUpstreamError("failed to delete staff")
	}
	if st.ImageID != "" {
		s.deleteImage(st.ImageID)
	}
	return nil
}

func (s *DefaultCatalogService) getOwnedService(salonID, serviceID string) (*models.Service, error) {
	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return nil, queue.NewUpstreamError("failed to load service")
	}
	if svc == nil {
		return nil, queue.NewNotFoundError("service not found")
	}
	if svc.SalonID != salonID {
		return nil, queue.NewForbiddenError("service belongs to a different salon")
	}
	return svc, nil
}

func (s *DefaultCatalogService) getOwnedStaff(salonID, staffID string) (*models.Staff, error) {
	st, err := s.StaffRepo.GetByID(staffID)
	if err != nil {
		return nil, queue.NewUpstreamError("failed to load staff")
	}
	if st == nil {
		return nil, queue.NewNotFoundError("staff member not found")
	}
	if st.SalonID != salonID {
		return nil, queue.NewForbiddenError("staff member belongs to a different salon")
	}
	return st, nil
}

func (s *DefaultCatalogService) uploadImage(localPath, folder string) (string, string, error) {
	if s.Storage == nil {
		return "", "", nil
	}
	url, publicID, err := s.Storage.UploadFile(context.Background(), localPath, folder)
	if err != nil {
		utils.GetLogger().Warn("image upload failed", zap.Error(err))
		return "", "", err
	}
	return url, publicID, nil
}

func (s *DefaultCatalogService) deleteImage(publicID string) {
	if s.Storage == nil {
		return
	}
	if err := s.Storage.DeleteFile(context.Background(), publicID); err != nil {
		utils.GetLogger().Warn("image delete failed",
			zap.String("publicId", publicID), zap.Error(err))
	}
}
