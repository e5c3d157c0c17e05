package models

import "time"

// Service is a bookable offering belonging to exactly one salon.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	SalonID         string    `bson:"salon_id" json:"salonId"`
	Name            string    `bson:"name" json:"name"`
	Price           float64   `bson:"price" json:"price"`
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	Category        string    `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL        string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	ImageID         string    `bson:"image_id,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
