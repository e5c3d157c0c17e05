package catalogRepo

import (
	"salonq/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ServiceRepository defines methods for salon service data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID, or nil if absent.
	GetByID(id string) (*models.Service, error)
	// ListBySalon retrieves all services belonging to a salon.
	ListBySalon(salonID string) ([]models.Service, error)
	// Create inserts a new service record.
	Create(service *models.Service) error
	// UpdateSetDocument applies a $set update to a service record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}

// StaffRepository defines methods for salon staff data access.
type StaffRepository interface {
	// GetByID retrieves a staff member by its unique ID, or nil if absent.
	GetByID(id string) (*models.Staff, error)
	// ListBySalon retrieves all staff belonging to a salon.
	ListBySalon(salonID string) ([]models.Staff, error)
	// Create inserts a new staff record.
	Create(staff *models.Staff) error
	// UpdateSetDocument applies a $set update to a staff record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a staff record by its ID.
	Delete(id string) error
}
