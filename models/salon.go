package models

import "time"

// Salon statuses.
const (
	SalonStatusPending   = "pending"
	SalonStatusApproved  = "approved"
	SalonStatusRejected  = "rejected"
	SalonStatusSuspended = "suspended"
)

// GeoPoint is a GeoJSON point, stored under a 2dsphere index for nearby lookups.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// Salon is the tenant unit. QueueCount is derived state maintained by the queue
// state machine through atomic increments; it must never go negative.
type Salon struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Phone      string    `bson:"phone" json:"phone"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	Address    string    `bson:"address" json:"address"`
	Location   *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	Status     string    `bson:"status" json:"status"`
	QueueCount int       `bson:"queue_count" json:"queueCount"`
	AdminID    string    `bson:"admin_id" json:"adminId"`
	ImageURL   string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	ImageID    string    `bson:"image_id,omitempty" json:"-"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
