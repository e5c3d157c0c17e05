package salon

import "salonq/models"

// OnboardRequest carries a new salon registration.
type OnboardRequest struct {
	Name      string   `json:"name" binding:"required"`
	Phone     string   `json:"phone" binding:"required"`
	Email     string   `json:"email"`
	Address   string   `json:"address" binding:"required"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
	AdminID   string   `json:"-"`
}

// SalonService manages salon onboarding, moderation and the public directory.
type SalonService interface {
	// Onboard registers a pending salon owned by the given admin user and links the
	// user back to it for authorization.
	Onboard(req OnboardRequest) (*models.Salon, error)
	// GetByID fetches one salon.
	GetByID(id string) (*models.Salon, error)
	// ListByStatus lists salons, "" for all; approved-only is the public directory.
	ListByStatus(status string) ([]models.Salon, error)
	// FindNearby lists approved salons within radiusMeters of a point.
	FindNearby(longitude, latitude, radiusMeters float64) ([]models.Salon, error)
	// SetStatus is the main-admin moderation action: approve, reject or suspend.
	SetStatus(id, status string) (*models.Salon, error)
	// UpdateProfile applies a salon admin's edits to their own salon.
	UpdateProfile(id string, updates map[string]interface{}) (*models.Salon, error)
}
