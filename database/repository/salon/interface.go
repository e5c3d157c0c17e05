package salonRepo

import (
	"salonq/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SalonRepository defines methods for salon data access.
type SalonRepository interface {
	// GetByID retrieves a salon by its unique ID, or nil if absent.
	GetByID(id string) (*models.Salon, error)
	// GetAll retrieves all salons, optionally filtered by status ("" for all).
	GetAll(status string) ([]models.Salon, error)
	// FindNearby retrieves approved salons within radiusMeters of the given point.
	FindNearby(longitude, latitude float64, radiusMeters float64) ([]models.Salon, error)
	// Create inserts a new salon record.
	Create(salon *models.Salon) error
	// UpdateSetDocument applies a $set update to a salon record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// IncQueueCount atomically adjusts queue_count by delta. Decrements are guarded so
	// the count never drops below zero.
	IncQueueCount(id string, delta int) error
	// SetQueueCount overwrites queue_count, used only by reconciliation.
	SetQueueCount(id string, count int) error
}
